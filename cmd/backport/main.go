package main

import (
	"fmt"
	"os"

	"backport.dev/backport/internal/cli"
	"backport.dev/backport/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.ColorRed(err.Error()))
		os.Exit(1)
	}
}
