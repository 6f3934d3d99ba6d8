package git

import (
	"context"
	"fmt"

	backporterrors "backport.dev/backport/internal/errors"
)

// GetCurrentBranch returns the name of the currently checked-out branch.
func (r *CommandRunner) GetCurrentBranch(ctx context.Context) (string, error) {
	name, err := r.Run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return name, nil
}

// BranchExists probes whether a local branch exists. A failed probe means
// the branch does not exist; that is an expected condition, not an error.
func (r *CommandRunner) BranchExists(ctx context.Context, branchName string) bool {
	_, err := r.Run(ctx, "rev-parse", "--verify", "--quiet", "refs/heads/"+branchName)
	return err == nil
}

// CheckoutBranch checks out an existing branch. A missing branch surfaces
// as ErrBranchNotFound.
func (r *CommandRunner) CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.Run(ctx, "checkout", branchName)
	if err != nil {
		if !r.BranchExists(ctx, branchName) {
			return backporterrors.NewBranchNotFoundError(branchName)
		}
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CreateAndCheckoutBranch creates and checks out a new branch at HEAD
func (r *CommandRunner) CreateAndCheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.Run(ctx, "checkout", "-b", branchName)
	if err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CheckoutDetached checks out a revision in detached HEAD state, leaving no
// branch pointer behind. An unresolvable revision surfaces as ErrTagNotFound.
func (r *CommandRunner) CheckoutDetached(ctx context.Context, revision string) error {
	_, err := r.Run(ctx, "checkout", "--detach", revision)
	if err != nil {
		return backporterrors.NewTagNotFoundError(revision, err)
	}
	return nil
}

// DeleteBranch force-deletes a local branch. A missing branch surfaces as
// ErrBranchNotFound.
func (r *CommandRunner) DeleteBranch(ctx context.Context, branchName string) error {
	_, err := r.Run(ctx, "branch", "-D", branchName)
	if err != nil {
		if !r.BranchExists(ctx, branchName) {
			return backporterrors.NewBranchNotFoundError(branchName)
		}
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}
