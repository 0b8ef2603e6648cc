package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestNewRootCmd tests the root command construction.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if cmd.Use != "wbmirror" {
			t.Errorf("expected Use to be 'wbmirror', got %s", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if cmd.Short == "" {
			t.Error("expected Short description to be set")
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		names := make(map[string]bool)
		for _, sub := range cmd.Commands() {
			names[sub.Name()] = true
		}
		for _, want := range []string{"mirror", "version"} {
			if !names[want] {
				t.Errorf("expected subcommand %q to be registered", want)
			}
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if cmd.PersistentFlags().Lookup("verbose") == nil {
			t.Error("expected persistent flag 'verbose' to be defined")
		}
	})

	t.Run("help output mentions snapshot mirroring", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"--help"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Wayback Machine") {
			t.Errorf("expected help to mention the Wayback Machine, got:\n%s", buf.String())
		}
	})
}
