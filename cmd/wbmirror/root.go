// Package main provides the entry point for the wbmirror CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for wbmirror.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wbmirror",
		Short: "Mirror a Wayback Machine snapshot for offline browsing",
		Long: `wbmirror downloads every resource reachable inside one Wayback Machine
snapshot (a single 14-digit capture timestamp) and writes a self-contained
local mirror. Links inside saved HTML are rewritten to relative filesystem
paths so the copy is navigable without network access.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewMirrorCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
