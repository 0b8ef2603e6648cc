package crawler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/wbmirror/wbmirror/internal/config"
	"github.com/wbmirror/wbmirror/internal/model"
	"github.com/wbmirror/wbmirror/internal/snapshot"
)

// ErrSeedNotInSnapshot is returned when the seed address does not classify
// inside the target snapshot. It is the only error that aborts a run; every
// per-resource failure is contained.
var ErrSeedNotInSnapshot = errors.New("seed address is not within the target snapshot")

// Recorder receives the outcome of each processed address. The manifest
// database implements it; a nil recorder disables recording.
type Recorder interface {
	RecordResource(ctx context.Context, res *model.Resource) error
}

// Spider drains a frontier of archived addresses belonging to one snapshot
// and writes a link-rewritten mirror tree.
//
// The frontier and visited set are owned exclusively by the Spider; no
// other component reads or writes them. Duplicates may be enqueued freely
// and are collapsed at dequeue time, so every distinct archived address is
// fetched at most once per run.
type Spider struct {
	// fetcher is the network boundary.
	fetcher Fetcher

	// snap fixes the capture timestamp this run targets.
	snap *snapshot.Snapshot

	// outDir is the root of the mirror tree.
	outDir string

	// delay is the fixed pause after each processed address. This is a
	// politeness setting toward the archive host.
	delay time.Duration

	// logger receives per-resource progress. Never nil after NewSpider.
	logger *slog.Logger

	// recorder receives per-resource outcomes. May be nil.
	recorder Recorder

	// visited tracks archived addresses already dequeued and processed.
	// It strictly grows and is checked before any fetch.
	visited map[string]bool
}

// SpiderOption configures a Spider.
type SpiderOption func(*Spider)

// WithDelay sets the pause after each processed address.
func WithDelay(d time.Duration) SpiderOption {
	return func(s *Spider) {
		s.delay = d
	}
}

// WithLogger sets the logger for per-resource progress.
func WithLogger(logger *slog.Logger) SpiderOption {
	return func(s *Spider) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder sets the recorder receiving per-resource outcomes.
func WithRecorder(r Recorder) SpiderOption {
	return func(s *Spider) {
		s.recorder = r
	}
}

// NewSpider creates a Spider mirroring snap into outDir through fetcher.
//
// Design decision: We require an external Fetcher because:
//  1. HTTP configuration (timeout, user agent) is the fetcher's concern
//  2. Tests exercise the whole traversal against an in-memory fetcher
//  3. Consistent with keeping the network out of the core loop
func NewSpider(fetcher Fetcher, snap *snapshot.Snapshot, outDir string, opts ...SpiderOption) *Spider {
	s := &Spider{
		fetcher: fetcher,
		snap:    snap,
		outDir:  outDir,
		delay:   config.DefaultCrawlDelay,
		logger:  slog.Default(),
		visited: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Mirror drains the frontier starting from seed and returns the run
// summary. The seed must classify inside the target snapshot; otherwise
// ErrSeedNotInSnapshot is returned before anything is fetched or written.
//
// Every per-resource failure (fetch error, bad status, unwritable file) is
// contained: the address stays visited, the failure is counted, and the
// rest of the frontier is processed. A canceled context stops the drain and
// returns the partial summary along with the context error.
func (s *Spider) Mirror(ctx context.Context, seed string) (*model.Summary, error) {
	norm, ok := s.snap.Normalize(seed)
	if !ok || !s.snap.Contains(norm) {
		return nil, ErrSeedNotInSnapshot
	}

	summary := &model.Summary{
		Seed:      norm,
		Timestamp: s.snap.Timestamp(),
		OutputDir: s.outDir,
		StartedAt: time.Now(),
	}
	defer func() {
		summary.Duration = time.Since(summary.StartedAt)
	}()

	frontier := []string{norm}
	for len(frontier) > 0 {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		current := frontier[0]
		frontier = frontier[1:]

		if s.visited[current] {
			continue
		}
		s.visited[current] = true

		res, err := s.fetcher.Fetch(ctx, current)
		if err != nil {
			// No retry: the address stays visited, so a later discovery of
			// the same link never re-fetches it.
			s.logger.Warn("fetch failed", "url", current, "error", err)
			summary.Failed++
			summary.Failures = append(summary.Failures, current)
			s.record(ctx, &model.Resource{
				ArchivedURL: current,
				OriginalURL: originalOrSelf(current),
				Status:      model.StatusFailed,
				FetchedAt:   time.Now(),
			})
			continue
		}

		discovered, err := s.process(ctx, current, res, summary)
		if err != nil {
			s.logger.Warn("write failed", "url", current, "error", err)
			summary.Failed++
			summary.Failures = append(summary.Failures, current)
			continue
		}
		frontier = append(frontier, discovered...)

		// Politeness pause between requests.
		if s.delay > 0 && len(frontier) > 0 {
			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			case <-time.After(s.delay):
			}
		}
	}

	return summary, nil
}

// process writes one fetched resource and returns newly discovered links.
func (s *Spider) process(ctx context.Context, current string, res *FetchResult, summary *model.Summary) ([]string, error) {
	original := originalOrSelf(current)
	localPath := LocalPath(s.outDir, original)

	if err := os.MkdirAll(filepath.Dir(localPath), 0750); err != nil {
		return nil, err
	}

	var discovered []string
	var data []byte

	if model.IsMarkup(res.ContentType) {
		text := DecodeText(res.Body, res.ContentType)
		links := ExtractLinks(s.snap, text)

		for _, link := range links {
			if !s.visited[link] {
				discovered = append(discovered, link)
			}
		}

		data = []byte(Rewrite(text, s.replacements(localPath, links)))
		summary.Documents++
	} else {
		data = res.Body
		summary.Assets++
	}

	// Existing files at the same computed path are overwritten, so a re-run
	// against the same output directory refreshes rather than duplicates.
	if err := os.WriteFile(localPath, data, 0600); err != nil {
		return nil, err
	}
	summary.Bytes += int64(len(data))

	s.logger.Debug("mirrored", "url", current, "path", localPath, "bytes", len(data))
	s.record(ctx, &model.Resource{
		ArchivedURL: current,
		OriginalURL: original,
		LocalPath:   localPath,
		ContentType: res.ContentType,
		Size:        int64(len(data)),
		Status:      model.StatusMirrored,
		FetchedAt:   time.Now(),
	})

	return discovered, nil
}

// replacements builds the per-document map from each referenced archived
// address to the relative path from docPath's directory to that resource's
// own destination. The map is recomputed for every document and never
// shared. Links whose original address cannot be recovered get no entry and
// keep pointing at the archive.
func (s *Spider) replacements(docPath string, links []string) map[string]string {
	repl := make(map[string]string, len(links))
	for _, link := range links {
		original, ok := snapshot.RecoverOriginal(link)
		if !ok {
			continue
		}
		rel, ok := RelativePath(docPath, LocalPath(s.outDir, original))
		if !ok {
			continue
		}
		repl[link] = rel
	}
	return repl
}

// record forwards a resource outcome to the recorder, if any. Recorder
// failures are logged and contained like any other per-resource failure.
func (s *Spider) record(ctx context.Context, res *model.Resource) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordResource(ctx, res); err != nil {
		s.logger.Warn("manifest record failed", "url", res.ArchivedURL, "error", err)
	}
}

// originalOrSelf recovers the original address, falling back to the
// archived address itself when recovery fails.
func originalOrSelf(archived string) string {
	if original, ok := snapshot.RecoverOriginal(archived); ok {
		return original
	}
	return archived
}
