// Package cli wires the cobra command surface to the backport workflow.
package cli

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	backporterrors "backport.dev/backport/internal/errors"
	"backport.dev/backport/internal/output"
	"backport.dev/backport/internal/patch"
	"backport.dev/backport/internal/runtime"
	"backport.dev/backport/internal/version"
	"backport.dev/backport/internal/workflow"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(buildVersion, commit, date string) *cobra.Command {
	var (
		repoPath    string
		patchesPath string
		remote      string
		dryRun      bool
		show        bool
		yes         bool
		logFile     string
	)

	rootCmd := &cobra.Command{
		Use:   "backport <package> [minVersion]",
		Short: "Backport security patches across every still-relevant minor release line of a vendored package",
		Long: `Backport applies a directory of find/replace patch documents to every
still-relevant minor release line of a package vendored as <package>@<version>
tags. For each qualifying version it creates a branch, applies the patches,
commits, and pushes to the remote.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptions{
				Package:     args[0],
				RepoPath:    repoPath,
				PatchesPath: patchesPath,
				Remote:      remote,
				DryRun:      dryRun,
				Show:        show,
				Yes:         yes,
				LogFile:     logFile,
			}
			if len(args) > 1 {
				min, err := version.Parse(args[1])
				if err != nil {
					return err
				}
				opts.MinVersion = &min
			}
			return runBackport(cmd, opts)
		},
	}

	rootCmd.Flags().StringVarP(&repoPath, "repo", "r", ".", "Path to the consumer repository")
	rootCmd.Flags().StringVarP(&patchesPath, "patches", "p", "patches", "Directory of patch documents, mirrored onto the target tree")
	rootCmd.Flags().StringVar(&remote, "remote", "origin", "Remote to push backport branches to")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Match patches and roll every branch back without committing or pushing")
	rootCmd.Flags().BoolVar(&show, "show", false, "Like --dry-run, additionally printing each block's full find/replace text")
	rootCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt before committing and pushing")
	rootCmd.Flags().StringVar(&logFile, "log-file", os.Getenv("BACKPORT_LOG_FILE"), "Mirror output to a rotating log file")

	rootCmd.AddCommand(newVersionCmd(buildVersion, commit, date))

	return rootCmd
}

type runOptions struct {
	Package     string
	MinVersion  *version.Version
	RepoPath    string
	PatchesPath string
	Remote      string
	DryRun      bool
	Show        bool
	Yes         bool
	LogFile     string
}

func (o runOptions) mode() patch.Mode {
	switch {
	case o.Show:
		return patch.ShowOnly
	case o.DryRun:
		return patch.DryRun
	default:
		return patch.Apply
	}
}

func runBackport(cmd *cobra.Command, opts runOptions) error {
	ctx := cmd.Context()

	rctx, err := runtime.NewContext(opts.RepoPath, opts.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = rctx.Splog.Close() }()
	splog := rctx.Splog

	patches, err := patch.LoadSet(opts.PatchesPath)
	if err != nil {
		return err
	}
	if patches.Len() == 0 {
		return fmt.Errorf("no patch documents found under %s", opts.PatchesPath)
	}

	tags, err := rctx.Runner.ListTags(ctx, version.TagGlob(opts.Package))
	if err != nil {
		return backporterrors.NewResolutionError(opts.Package, err)
	}

	versions := version.Resolve(tags, opts.Package, opts.MinVersion)
	if len(versions) == 0 {
		splog.Info("No versions of %s to process.", opts.Package)
		return nil
	}

	splog.Info("Backporting %d patch document(s) of %s across %d version(s)",
		patches.Len(), output.ColorCyan(opts.Package), len(versions))

	mode := opts.mode()
	if mode == patch.Apply && !opts.Yes {
		ok, err := confirmPush(len(versions), opts.Remote)
		if err != nil {
			return err
		}
		if !ok {
			splog.Info("Aborted.")
			return nil
		}
	}

	wf := workflow.New(rctx.Runner, patches, splog, workflow.Options{
		Package: opts.Package,
		Remote:  opts.Remote,
		Mode:    mode,
	})

	summary, runErr := wf.Run(ctx, versions)
	wf.RenderSummary(summary)
	return runErr
}

// confirmPush asks before a mutating run. Non-interactive invocations
// proceed as if confirmed; --yes skips the prompt entirely.
func confirmPush(versionCount int, remote string) (bool, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return true, nil
	}

	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("This will commit and push up to %d branch(es) to %s. Continue?", versionCount, remote),
		Default: true,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("canceled")
	}
	return confirmed, nil
}
