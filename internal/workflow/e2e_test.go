package workflow_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"backport.dev/backport/internal/git"
	"backport.dev/backport/internal/output"
	"backport.dev/backport/internal/patch"
	"backport.dev/backport/internal/version"
	"backport.dev/backport/internal/workflow"
	"backport.dev/backport/testhelpers"
)

// setupVendoredRepo builds a repository with pkg@1.2.3 and pkg@1.2.5
// carrying the patchable source, and pkg@1.3.0 where the find text is gone.
func setupVendoredRepo(t *testing.T) (*testhelpers.GitRepo, string) {
	t.Helper()

	repo, err := testhelpers.NewGitRepo(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, repo.WriteFile("src/index.js", "function do_nothing {\n  return\n}\n"))
	require.NoError(t, repo.CommitAll("vendor pkg 1.2"))
	require.NoError(t, repo.Tag("pkg@1.2.3"))
	require.NoError(t, repo.Tag("pkg@1.2.5"))

	require.NoError(t, repo.WriteFile("src/index.js", "function renamed_away {\n  return\n}\n"))
	require.NoError(t, repo.CommitAll("vendor pkg 1.3"))
	require.NoError(t, repo.Tag("pkg@1.3.0"))

	bare, err := repo.AddBareRemote("origin")
	require.NoError(t, err)

	return repo, bare
}

func loadPatchSet(t *testing.T) *patch.Set {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "index.js"), []byte(editDoc), 0o644))

	set, err := patch.LoadSet(dir)
	require.NoError(t, err)
	return set
}

func TestEndToEnd(t *testing.T) {
	t.Run("patches, commits, and pushes only versions with a diff", func(t *testing.T) {
		repo, bare := setupVendoredRepo(t)
		ctx := context.Background()

		runner := git.NewCommandRunner(repo.Dir)
		tags, err := runner.ListTags(ctx, version.TagGlob("pkg"))
		require.NoError(t, err)

		versions := version.Resolve(tags, "pkg", nil)
		require.Len(t, versions, 2)
		require.Equal(t, "1.2.5", versions[0].String())
		require.Equal(t, "1.3.0", versions[1].String())

		wf := workflow.New(runner, loadPatchSet(t), output.NewSplog(), workflow.Options{
			Package: "pkg",
			Mode:    patch.Apply,
		})

		summary, err := wf.Run(ctx, versions)
		require.NoError(t, err)
		require.Len(t, summary.Results, 2)

		// 1.2.5: block found, branch committed and pushed.
		patched := summary.Results[0]
		require.Equal(t, 1, patched.Found())
		require.True(t, patched.Committed)
		require.True(t, patched.Pushed)
		require.True(t, repo.BranchExists("backport/pkg-1.2"))
		require.True(t, testhelpers.RemoteBranchExists(bare, "backport/pkg-1.2"))

		// 1.3.0: block not found, no diff, branch pruned, nothing pushed.
		pruned := summary.Results[1]
		require.Equal(t, 0, pruned.Found())
		require.True(t, pruned.DiffEmpty)
		require.False(t, pruned.Pushed)
		require.False(t, repo.BranchExists("backport/pkg-1.3"))
		require.False(t, testhelpers.RemoteBranchExists(bare, "backport/pkg-1.3"))

		// The run returns to the default branch.
		branch, err := repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "main", branch)

		// The pushed branch carries the applied edit.
		require.NoError(t, repo.CheckoutBranch("backport/pkg-1.2"))
		content, err := repo.ReadFile("src/index.js")
		require.NoError(t, err)
		require.Contains(t, content, "function do_something {")
	})

	t.Run("dry run leaves the repository untouched", func(t *testing.T) {
		repo, bare := setupVendoredRepo(t)
		ctx := context.Background()

		runner := git.NewCommandRunner(repo.Dir)
		tags, err := runner.ListTags(ctx, version.TagGlob("pkg"))
		require.NoError(t, err)
		versions := version.Resolve(tags, "pkg", nil)

		wf := workflow.New(runner, loadPatchSet(t), output.NewSplog(), workflow.Options{
			Package: "pkg",
			Mode:    patch.DryRun,
		})

		summary, err := wf.Run(ctx, versions)
		require.NoError(t, err)

		for _, result := range summary.Results {
			require.True(t, result.Discarded)
			require.False(t, result.Committed)
			require.False(t, repo.BranchExists(result.Branch))
			require.False(t, testhelpers.RemoteBranchExists(bare, result.Branch))
		}

		clean, err := repo.IsClean()
		require.NoError(t, err)
		require.True(t, clean)

		branch, err := repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "main", branch)
	})

	t.Run("lower bound skips older minor lines", func(t *testing.T) {
		repo, _ := setupVendoredRepo(t)
		ctx := context.Background()

		runner := git.NewCommandRunner(repo.Dir)
		tags, err := runner.ListTags(ctx, version.TagGlob("pkg"))
		require.NoError(t, err)

		min, err := version.Parse("1.3.0")
		require.NoError(t, err)

		versions := version.Resolve(tags, "pkg", &min)
		require.Len(t, versions, 1)
		require.Equal(t, "1.3.0", versions[0].String())
	})
}
