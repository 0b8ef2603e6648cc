// Package main provides the entry point for the wbmirror CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wbmirror/wbmirror/internal/config"
	"github.com/wbmirror/wbmirror/internal/crawler"
	"github.com/wbmirror/wbmirror/internal/database"
	"github.com/wbmirror/wbmirror/internal/log"
	"github.com/wbmirror/wbmirror/internal/report"
	"github.com/wbmirror/wbmirror/internal/snapshot"
)

// NewMirrorCmd creates the mirror command.
func NewMirrorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirror <archived-url> <output-dir>",
		Short: "Mirror one snapshot into a local directory",
		Long: `Mirror downloads the given archived page and everything it references
inside the same snapshot, writing a browsable tree under <output-dir>.

The archived URL may be given in any of the accepted spellings:

  https://web.archive.org/web/20250408214013/https://example.com/
  //web.archive.org/web/20250408214013/https://example.com/
  /web/20250408214013/https://example.com/

Links in saved HTML are rewritten to relative filesystem paths, so the
mirror works offline. Resources captured under a different timestamp are
left untouched.`,
		Example: `  wbmirror mirror https://web.archive.org/web/20250408214013/https://example.com/ ./mirror
  wbmirror mirror --delay 500ms --json -o report.json https://web.archive.org/web/20250408214013/https://example.com/ ./mirror`,
		Args: cobra.ExactArgs(2),
		RunE: runMirrorCmd,
	}

	cmd.Flags().String("timestamp", "", "Pin the target snapshot timestamp (14 digits); default is derived from the seed")
	cmd.Flags().Duration("delay", config.DefaultCrawlDelay, "Pause between archive requests")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout, "Per-request timeout")
	cmd.Flags().String("user-agent", config.DefaultUserAgent, "User-Agent header sent with every request")
	cmd.Flags().Int64("max-body-size", config.DefaultMaxBodySize, "Maximum response body size in bytes")
	cmd.Flags().Bool("manifest", true, "Record each resource into a manifest database in the output directory")
	cmd.Flags().BoolP("json", "j", false, "Output the run summary in JSON format")
	cmd.Flags().BoolP("markdown", "m", false, "Output the run summary in Markdown format")
	cmd.Flags().BoolP("yaml", "y", false, "Output the run summary in YAML format")
	cmd.Flags().StringP("output", "o", "", "Also write the summary to the given file")

	return cmd
}

// runMirrorCmd executes one mirror run.
func runMirrorCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Handle Ctrl+C gracefully: the drain stops and the partial summary is
	// still reported.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Warn("interrupt received, stopping after the current resource")
		cancel()
	}()

	snap, err := targetSnapshot(cfg)
	if err != nil {
		return err
	}

	// Validate the seed against the snapshot before touching the filesystem,
	// so a bad invocation leaves no output directory behind.
	norm, ok := snap.Normalize(cfg.Seed)
	if !ok || !snap.Contains(norm) {
		return fmt.Errorf("%w: %s is not inside snapshot %s",
			crawler.ErrSeedNotInSnapshot, cfg.Seed, snap.Timestamp())
	}

	if err := os.MkdirAll(cfg.OutputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	spiderOpts := []crawler.SpiderOption{
		crawler.WithDelay(cfg.CrawlDelay),
		crawler.WithLogger(logger),
	}

	if cfg.Manifest {
		db, err := database.Open(cfg.OutputDir, database.DefaultOptions())
		if err != nil {
			return err
		}
		defer db.Close() //nolint:errcheck // Best-effort close on exit

		if _, err := db.RecordRun(ctx, norm, snap.Timestamp(), time.Now()); err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
		spiderOpts = append(spiderOpts, crawler.WithRecorder(db))
	}

	fetcher := crawler.NewHTTPFetcher(
		crawler.WithTimeout(cfg.Timeout),
		crawler.WithUserAgent(cfg.UserAgent),
		crawler.WithMaxBodySize(cfg.MaxBodySize),
	)
	spider := crawler.NewSpider(fetcher, snap, cfg.OutputDir, spiderOpts...)

	summary, err := spider.Mirror(ctx, cfg.Seed)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	writer, cleanup, err := setupWriter(cfg, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := writer.Write(summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if summary.Failed > 0 {
		logger.Warn("run finished with failures", "failed", summary.Failed, "mirrored", summary.Mirrored())
	}

	return nil
}

// buildConfig assembles the run configuration from command-line flags and
// positional arguments.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Seed = args[0]
	cfg.OutputDir = args[1]

	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	if cfg.Timestamp, err = cmd.Flags().GetString("timestamp"); err != nil {
		return nil, fmt.Errorf("failed to get timestamp flag: %w", err)
	}
	if cfg.CrawlDelay, err = cmd.Flags().GetDuration("delay"); err != nil {
		return nil, fmt.Errorf("failed to get delay flag: %w", err)
	}
	if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return nil, fmt.Errorf("failed to get timeout flag: %w", err)
	}
	if cfg.UserAgent, err = cmd.Flags().GetString("user-agent"); err != nil {
		return nil, fmt.Errorf("failed to get user-agent flag: %w", err)
	}
	if cfg.MaxBodySize, err = cmd.Flags().GetInt64("max-body-size"); err != nil {
		return nil, fmt.Errorf("failed to get max-body-size flag: %w", err)
	}
	if cfg.Manifest, err = cmd.Flags().GetBool("manifest"); err != nil {
		return nil, fmt.Errorf("failed to get manifest flag: %w", err)
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, fmt.Errorf("failed to get json flag: %w", err)
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, fmt.Errorf("failed to get markdown flag: %w", err)
	}
	if cfg.YAMLReport, err = cmd.Flags().GetBool("yaml"); err != nil {
		return nil, fmt.Errorf("failed to get yaml flag: %w", err)
	}
	if cfg.OutputPath, err = cmd.Flags().GetString("output"); err != nil {
		return nil, fmt.Errorf("failed to get output flag: %w", err)
	}

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// targetSnapshot resolves the snapshot this run targets: the explicit
// --timestamp override when given, otherwise the capture prefix of the seed.
func targetSnapshot(cfg *config.Config) (*snapshot.Snapshot, error) {
	if cfg.Timestamp != "" {
		return snapshot.New(cfg.Timestamp)
	}
	return snapshot.FromArchiveURL(cfg.Seed)
}

// setupLogger creates a logger writing to stderr, so reports on stdout stay
// machine-readable. Attribute values are capped to keep long archived
// addresses from flooding log lines.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(log.NewTruncateHandler(handler, log.DefaultMaxValueLength))
}

// setupWriter selects the report writer from the configuration. The
// returned cleanup closes the optional output file and must always be
// called.
func setupWriter(cfg *config.Config, cmd *cobra.Command) (report.Writer, func(), error) {
	newWriter := func(output *os.File) report.Writer {
		switch {
		case cfg.JSONReport:
			return report.NewJSONWriter(output, report.WithPrettyPrint())
		case cfg.MarkdownReport:
			return report.NewMarkdownWriter(output)
		case cfg.YAMLReport:
			return report.NewYAMLWriter(output)
		default:
			return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
		}
	}

	stdout := os.Stdout
	if cfg.OutputPath == "" {
		return newWriter(stdout), func() {}, nil
	}

	file, err := report.CreateOutputFile(cfg.OutputPath)
	if err != nil {
		return nil, func() {}, err
	}
	cleanup := func() {
		if err := file.Close(); err != nil {
			cmd.PrintErrf("failed to close report file: %v\n", err)
		}
	}

	return report.NewMultiWriter(newWriter(stdout), newWriter(file)), cleanup, nil
}
