// Package main provides the entry point for the wbmirror CLI.
package main

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version information set by ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// getVersion returns the version string, preferring build info when
// the binary was installed with go install.
func getVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

// getCommit returns the commit hash from build info when available.
func getCommit() string {
	if commit != "unknown" {
		return commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return commit
}

// getDate returns the build date from build info when available.
func getDate() string {
	if date != "unknown" {
		return date
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				return setting.Value
			}
		}
	}
	return date
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("wbmirror version %s\n", getVersion())
			cmd.Printf("  commit: %s\n", getCommit())
			cmd.Printf("  built:  %s\n", getDate())
		},
	}
}
