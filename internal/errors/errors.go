// Package errors provides sentinel errors and custom error types for the backport application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrTagNotFound indicates that a tag could not be resolved
	ErrTagNotFound = errors.New("tag not found")

	// ErrNotARepository indicates that the target path is not a git repository
	ErrNotARepository = errors.New("not a git repository")
)

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// TagNotFoundError represents an error when a release tag cannot be resolved
type TagNotFoundError struct {
	Tag string
	Err error
}

func (e *TagNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tag %s cannot be resolved: %v", e.Tag, e.Err)
	}
	return fmt.Sprintf("tag %s cannot be resolved", e.Tag)
}

// Is returns true if the target error is ErrTagNotFound
func (e *TagNotFoundError) Is(target error) bool {
	return target == ErrTagNotFound
}

func (e *TagNotFoundError) Unwrap() error {
	return e.Err
}

// NewTagNotFoundError creates a new TagNotFoundError
func NewTagNotFoundError(tag string, err error) *TagNotFoundError {
	return &TagNotFoundError{Tag: tag, Err: err}
}

// ResolutionError represents a failure to enumerate versions for a package
type ResolutionError struct {
	Package string
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve versions for %s: %v", e.Package, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// NewResolutionError creates a new ResolutionError
func NewResolutionError(pkg string, err error) *ResolutionError {
	return &ResolutionError{Package: pkg, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
