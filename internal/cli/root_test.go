package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"backport.dev/backport/internal/cli"
)

func TestRootCmd(t *testing.T) {
	t.Run("requires a package argument", func(t *testing.T) {
		cmd := cli.NewRootCmd("dev", "none", "unknown")
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{})

		err := cmd.Execute()
		require.Error(t, err)
	})

	t.Run("rejects a malformed minimum version", func(t *testing.T) {
		cmd := cli.NewRootCmd("dev", "none", "unknown")
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"pkg", "not-a-version"})

		err := cmd.Execute()
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid version")
	})

	t.Run("version subcommand prints build info", func(t *testing.T) {
		out := &bytes.Buffer{}
		cmd := cli.NewRootCmd("1.4.0", "abc123", "2026-01-01")
		cmd.SetOut(out)
		cmd.SetArgs([]string{"version"})

		require.NoError(t, cmd.Execute())
		require.Contains(t, out.String(), "backport 1.4.0")
		require.Contains(t, out.String(), "abc123")
	})
}
