// Package workflow drives git through the per-version branch lifecycle:
// tag checkout, branch creation or reuse, patch application, diff
// detection, commit and push, and rollback on dry runs.
package workflow

import (
	"context"
	"fmt"

	"backport.dev/backport/internal/git"
	"backport.dev/backport/internal/output"
	"backport.dev/backport/internal/patch"
	"backport.dev/backport/internal/version"
)

// defaultBranchCandidates are tried in order when returning to the
// repository's default branch. "Does not exist" is swallowed.
var defaultBranchCandidates = []string{"main", "master"}

// Options configures a backport run.
type Options struct {
	Package string
	Remote  string
	Mode    patch.Mode
}

// Workflow processes resolved versions strictly in order, one at a time.
type Workflow struct {
	runner  git.Runner
	engine  *patch.Engine
	patches *patch.Set
	splog   *output.Splog
	opts    Options
}

// New creates a workflow over the given runner and patch set. The engine
// writes into the runner's working directory.
func New(runner git.Runner, patches *patch.Set, splog *output.Splog, opts Options) *Workflow {
	if opts.Remote == "" {
		opts.Remote = "origin"
	}
	return &Workflow{
		runner:  runner,
		engine:  patch.NewEngine(runner.GetWorkingDir()),
		patches: patches,
		splog:   splog,
		opts:    opts,
	}
}

// Run processes every version in order. Checkout, commit, and push failures
// abort the remaining run; earlier versions are left as committed/pushed.
// The repository is returned to its default branch afterwards regardless.
func (w *Workflow) Run(ctx context.Context, versions []version.Version) (*Summary, error) {
	summary := &Summary{}

	defer w.returnToDefaultBranch(ctx)

	for _, v := range versions {
		result, err := w.processVersion(ctx, v)
		if err != nil {
			return summary, fmt.Errorf("processing %s: %w", version.TagName(w.opts.Package, v), err)
		}
		summary.Results = append(summary.Results, result)
	}

	return summary, nil
}

// processVersion walks one version through the branch lifecycle.
func (w *Workflow) processVersion(ctx context.Context, v version.Version) (StepResult, error) {
	tag := version.TagName(w.opts.Package, v)
	branch := BranchName(w.opts.Package, v)
	result := StepResult{Version: v, Tag: tag, Branch: branch}

	w.splog.Newline()
	w.splog.Info("Processing %s", output.ColorCyan(tag))

	// Detached checkout so no branch pointer is left on the tag.
	if err := w.runner.CheckoutDetached(ctx, tag); err != nil {
		return result, err
	}

	if w.runner.BranchExists(ctx, branch) {
		if err := w.runner.CheckoutBranch(ctx, branch); err != nil {
			return result, err
		}
		result.BranchReused = true
		w.splog.Info("Reusing branch %s", output.ColorBranchName(branch))
	} else {
		if err := w.runner.CreateAndCheckoutBranch(ctx, branch); err != nil {
			return result, err
		}
		w.splog.Info("Created branch %s", output.ColorBranchName(branch))
	}

	result.Documents = w.applyPatches(branch)

	return w.finishVersion(ctx, result)
}

// applyPatches runs the engine over every document in enumeration order.
// Per-document read/write failures are reported and do not abort the run.
func (w *Workflow) applyPatches(branch string) []patch.Result {
	results := make([]patch.Result, 0, w.patches.Len())

	for _, doc := range w.patches.Documents {
		res, err := w.engine.ApplyDocument(doc, branch, w.opts.Mode)
		if err != nil {
			w.splog.Error("%s: %v", doc.Path, err)
			continue
		}
		w.reportDocument(doc, res)
		results = append(results, res)
	}

	return results
}

// reportDocument prints the per-document outcome, with full find/replace
// text in show mode.
func (w *Workflow) reportDocument(doc patch.Document, res patch.Result) {
	switch {
	case res.Created:
		w.splog.Info("  %s: new file (%d/%d)", res.Document, res.Found, res.Total)
	case res.Overwrote:
		w.splog.Info("  %s: full replacement (%d/%d)", res.Document, res.Found, res.Total)
	default:
		w.splog.Info("  %s: %d/%d blocks found", res.Document, res.Found, res.Total)
	}

	for i, block := range res.Blocks {
		if block.Outcome == patch.NotFound {
			w.splog.Warn("  %s: block %d not found", res.Document, i+1)
		}
		if w.opts.Mode == patch.ShowOnly {
			w.splog.Page(fmt.Sprintf("--- block %d find ---\n%s\n--- block %d replace ---\n%s\n",
				i+1, block.Block.Find, i+1, block.Block.Replace))
		}
	}
}

// finishVersion takes the patched branch to its terminal state.
func (w *Workflow) finishVersion(ctx context.Context, result StepResult) (StepResult, error) {
	if w.opts.Mode != patch.Apply {
		// Dry runs always roll back: nothing was written, so the branch
		// can be dropped without losing work.
		if err := w.discardBranch(ctx, result.Branch); err != nil {
			return result, err
		}
		result.Discarded = true
		w.splog.Info("Dry run: rolled back %s", output.ColorBranchName(result.Branch))
		return result, nil
	}

	dirty, err := w.runner.HasUncommittedChanges(ctx)
	if err != nil {
		return result, err
	}

	if !dirty {
		// No-op versions are pruned, not failures.
		if err := w.discardBranch(ctx, result.Branch); err != nil {
			return result, err
		}
		result.DiffEmpty = true
		w.splog.Info("No changes for %s, pruned %s", result.Tag, output.ColorBranchName(result.Branch))
		return result, nil
	}

	if err := w.runner.StageAll(ctx); err != nil {
		return result, err
	}
	if err := w.runner.Commit(ctx, commitMessage(result.Tag, result.Version)); err != nil {
		return result, err
	}
	result.Committed = true

	if err := w.runner.PushBranch(ctx, w.opts.Remote, result.Branch); err != nil {
		return result, err
	}
	result.Pushed = true
	w.splog.Info("Pushed %s to %s", output.ColorBranchName(result.Branch), w.opts.Remote)

	return result, nil
}

// discardBranch leaves the branch, then deletes it. When neither default
// branch exists the checkout detaches so the deletion still succeeds.
func (w *Workflow) discardBranch(ctx context.Context, branch string) error {
	if w.returnToDefaultBranch(ctx) == "" {
		if err := w.runner.CheckoutDetached(ctx, "HEAD"); err != nil {
			return err
		}
	}
	return w.runner.DeleteBranch(ctx, branch)
}

// returnToDefaultBranch tries the candidate default branches in order and
// returns the one checked out, or "" if none exists.
func (w *Workflow) returnToDefaultBranch(ctx context.Context) string {
	for _, candidate := range defaultBranchCandidates {
		if !w.runner.BranchExists(ctx, candidate) {
			continue
		}
		if err := w.runner.CheckoutBranch(ctx, candidate); err != nil {
			continue
		}
		return candidate
	}
	return ""
}

// commitMessage embeds the original tag and version in the commit.
func commitMessage(tag string, v version.Version) string {
	return fmt.Sprintf("Backport security patches onto %s (%s)", tag, v)
}

// RenderSummary prints the end-of-run summary.
func (w *Workflow) RenderSummary(summary *Summary) {
	if len(summary.Results) == 0 {
		w.splog.Info("No versions to process.")
		return
	}

	w.splog.Newline()
	w.splog.Info("Summary:")
	for _, r := range summary.Results {
		w.splog.Info("  %s  %s  %d/%d blocks  %s",
			r.Tag,
			output.ColorBranchName(r.Branch),
			r.Found(), r.Total(),
			statusColor(r))
	}

	if w.opts.Mode == patch.Apply {
		w.splog.Info("Pushed %d of %d branch(es).", summary.PushedCount(), len(summary.Results))
	}
}

// statusColor styles a terminal state for the summary line.
func statusColor(r StepResult) string {
	switch {
	case r.Pushed:
		return output.ColorGreen(r.Status())
	case r.DiffEmpty, r.Discarded:
		return output.ColorYellow(r.Status())
	default:
		return output.ColorDim(r.Status())
	}
}
