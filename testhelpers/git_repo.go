// Package testhelpers provides a temp-directory git repository harness for
// tests that exercise real git.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const textFileName = "test.txt"

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory using 'git init'.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Initialize new repository with optimized config
	// Use git -c flags to avoid reading global config and set local configs
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	// Configure Git user (required for commits)
	if err := repo.RunGit("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGit("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// RunGit executes a git command in the repository directory.
// Uses GIT_CONFIG_GLOBAL=/dev/null to avoid reading global config.
func (r *GitRepo) RunGit(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return nil
}

// RunGitOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// WriteFile writes a file relative to the repository root, creating parent
// directories as needed.
func (r *GitRepo) WriteFile(relPath, content string) error {
	path := filepath.Join(r.Dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// ReadFile reads a file relative to the repository root.
func (r *GitRepo) ReadFile(relPath string) (string, error) {
	data, err := os.ReadFile(filepath.Join(r.Dir, filepath.FromSlash(relPath)))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CreateChangeAndCommit writes content to the default test file, stages
// everything, and commits.
func (r *GitRepo) CreateChangeAndCommit(content, message string) error {
	if err := r.WriteFile(textFileName, content); err != nil {
		return err
	}
	return r.CommitAll(message)
}

// CommitAll stages everything and commits with the given message.
func (r *GitRepo) CommitAll(message string) error {
	if err := r.RunGit("add", "-A"); err != nil {
		return err
	}
	return r.RunGit("commit", "-m", message)
}

// Tag creates a lightweight tag at HEAD.
func (r *GitRepo) Tag(name string) error {
	return r.RunGit("tag", name)
}

// CheckoutBranch checks out an existing branch.
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.RunGit("checkout", name)
}

// CreateAndCheckoutBranch creates and checks out a branch at HEAD.
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	return r.RunGit("checkout", "-b", name)
}

// CurrentBranch returns the checked-out branch name, or "HEAD" when detached.
func (r *GitRepo) CurrentBranch() (string, error) {
	return r.RunGitOutput("rev-parse", "--abbrev-ref", "HEAD")
}

// BranchExists reports whether a local branch exists.
func (r *GitRepo) BranchExists(name string) bool {
	_, err := r.RunGitOutput("rev-parse", "--verify", "--quiet", "refs/heads/"+name)
	return err == nil
}

// IsClean reports whether the working tree has no changes.
func (r *GitRepo) IsClean() (bool, error) {
	out, err := r.RunGitOutput("status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out == "", nil
}

// AddBareRemote creates a bare repository beside the worktree and registers
// it as a remote, so push tests stay local.
func (r *GitRepo) AddBareRemote(name string) (string, error) {
	barePath := r.Dir + "-" + name + ".git"

	cmd := exec.Command("git", "init", "--bare", barePath)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to init bare remote: %w", err)
	}

	if err := r.RunGit("remote", "add", name, barePath); err != nil {
		return "", err
	}
	return barePath, nil
}

// RemoteBranchExists reports whether a branch exists in a bare remote.
func RemoteBranchExists(barePath, name string) bool {
	cmd := exec.Command("git", "rev-parse", "--verify", "--quiet", "refs/heads/"+name)
	cmd.Dir = barePath
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	return cmd.Run() == nil
}
