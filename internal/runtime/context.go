// Package runtime provides a context type that holds the git runner and
// logger for use throughout the application. This avoids passing multiple
// parameters.
package runtime

import (
	"backport.dev/backport/internal/git"
	"backport.dev/backport/internal/output"
)

// Context provides access to the git runner and output for commands
type Context struct {
	Runner   git.Runner
	Splog    *output.Splog
	RepoRoot string
}

// NewContext validates the repository path and wires up the runner and
// logger. logFilePath is optional; when set, console output is mirrored to
// a rotating log file.
func NewContext(repoPath, logFilePath string) (*Context, error) {
	repoRoot, err := git.ResolveRepoRoot(repoPath)
	if err != nil {
		return nil, err
	}

	splog, err := output.NewSplogWithConfig(logFilePath)
	if err != nil {
		return nil, err
	}

	return &Context{
		Runner:   git.NewCommandRunner(repoRoot),
		Splog:    splog,
		RepoRoot: repoRoot,
	}, nil
}
