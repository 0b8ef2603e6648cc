package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wbmirror/wbmirror/internal/config"
)

// Fetcher retrieves one archived resource. It is the network boundary of
// the crawl: the Spider depends only on this interface, which keeps the
// traversal testable without an archive host.
//
// A nil error means the resource was retrieved with a success status.
// Transport errors, timeouts, and non-2xx statuses are all reported
// uniformly as errors; the Spider treats any of them as a per-resource
// failure and moves on.
type Fetcher interface {
	Fetch(ctx context.Context, archivedURL string) (*FetchResult, error)
}

// FetchResult is the successful outcome of a fetch.
type FetchResult struct {
	// Body is the raw response body, bounded by the fetcher's size limit.
	Body []byte

	// ContentType is the Content-Type header value, possibly empty.
	ContentType string
}

// HTTPFetcher fetches archived resources from the Wayback Machine over
// HTTPS.
//
// Design decision: We hold the http.Client in a struct rather than passing
// it per call because:
//  1. Client configuration (timeout, pooling) should be consistent
//  2. Connection reuse matters when draining a large frontier
//  3. Easier to test with httptest servers
type HTTPFetcher struct {
	// client is the underlying HTTP client. Its Timeout bounds each request.
	client *http.Client

	// userAgent is the fixed client identifier sent with every request.
	userAgent string

	// maxBodySize limits the response body size read per resource.
	maxBodySize int64
}

// HTTPFetcherOption configures an HTTPFetcher.
type HTTPFetcherOption func(*HTTPFetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		f.client.Timeout = d
	}
}

// WithUserAgent sets the client identifier sent with every request.
func WithUserAgent(ua string) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size to read.
func WithMaxBodySize(size int64) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		f.maxBodySize = size
	}
}

// NewHTTPFetcher creates an HTTPFetcher with the default timeout, user
// agent, and body size limit.
func NewHTTPFetcher(opts ...HTTPFetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:      &http.Client{Timeout: config.DefaultTimeout},
		userAgent:   config.DefaultUserAgent,
		maxBodySize: config.DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch retrieves a single archived resource.
func (f *HTTPFetcher) Fetch(ctx context.Context, archivedURL string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archivedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", archivedURL, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Best-effort close on a read-only body

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", archivedURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", archivedURL, err)
	}

	return &FetchResult{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
