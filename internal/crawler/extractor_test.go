package crawler

import (
	"reflect"
	"testing"

	"github.com/wbmirror/wbmirror/internal/snapshot"
)

const testPrefix = "https://web.archive.org/web/20250408214013"

func testSnapshot(t *testing.T) *snapshot.Snapshot {
	t.Helper()
	s, err := snapshot.New("20250408214013")
	if err != nil {
		t.Fatalf("failed to create snapshot: %v", err)
	}
	return s
}

// TestExtractLinks tests regex link discovery over the three reference shapes.
func TestExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("attribute references", func(t *testing.T) {
		t.Parallel()

		markup := `<a href="` + testPrefix + `/https://example.com/about">About</a>
			<img src='` + testPrefix + `im_/https://example.com/logo.png'>
			<img data-src="` + testPrefix + `im_/https://example.com/lazy.png">
			<div data-href="` + testPrefix + `/https://example.com/panel">x</div>
			<a HREF="` + testPrefix + `/https://example.com/upper">case</a>`

		got := ExtractLinks(testSnapshot(t), markup)
		want := []string{
			testPrefix + "/https://example.com/about",
			testPrefix + "im_/https://example.com/logo.png",
			testPrefix + "im_/https://example.com/lazy.png",
			testPrefix + "/https://example.com/panel",
			testPrefix + "/https://example.com/upper",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("srcset keeps URL tokens and drops descriptors", func(t *testing.T) {
		t.Parallel()

		markup := `<img srcset="` + testPrefix + `im_/https://example.com/s.png 1x,
			` + testPrefix + `im_/https://example.com/l.png 2x">`

		got := ExtractLinks(testSnapshot(t), markup)
		want := []string{
			testPrefix + "im_/https://example.com/s.png",
			testPrefix + "im_/https://example.com/l.png",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("css url references in all quoting styles", func(t *testing.T) {
		t.Parallel()

		markup := `<style>
			body { background: url(` + testPrefix + `im_/https://example.com/bg.png); }
			.a { background: url("` + testPrefix + `im_/https://example.com/a.png"); }
		</style>
		<div style="background: url('/web/20250408214013im_/https://example.com/b.png')"></div>`

		got := ExtractLinks(testSnapshot(t), markup)
		want := []string{
			testPrefix + "im_/https://example.com/bg.png",
			testPrefix + "im_/https://example.com/a.png",
			testPrefix + "im_/https://example.com/b.png",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("normalizes protocol-relative and path-only forms", func(t *testing.T) {
		t.Parallel()

		markup := `<a href="//web.archive.org/web/20250408214013/https://example.com/a">a</a>
			<script src="/web/20250408214013js_/https://example.com/app.js"></script>`

		got := ExtractLinks(testSnapshot(t), markup)
		want := []string{
			testPrefix + "/https://example.com/a",
			testPrefix + "js_/https://example.com/app.js",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("filters out-of-snapshot and foreign references", func(t *testing.T) {
		t.Parallel()

		markup := `<a href="https://web.archive.org/web/19990101000000/https://example.com/old">old</a>
			<a href="https://example.com/direct">direct</a>
			<a href="mailto:user@example.com">mail</a>
			<a href="javascript:void(0)">js</a>
			<a href="#section">anchor</a>`

		if got := ExtractLinks(testSnapshot(t), markup); len(got) != 0 {
			t.Errorf("expected no links, got %v", got)
		}
	})

	t.Run("deduplicates repeated references", func(t *testing.T) {
		t.Parallel()

		link := testPrefix + "/https://example.com/about"
		markup := `<a href="` + link + `">one</a><a href="` + link + `">two</a>
			<style>.x { background: url("` + link + `"); }</style>`

		got := ExtractLinks(testSnapshot(t), markup)
		if !reflect.DeepEqual(got, []string{link}) {
			t.Errorf("expected single deduplicated link, got %v", got)
		}
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		markup := `<a href="` + testPrefix + `/https://example.com/ok">ok</a>
			<a href=` + testPrefix + `/https://example.com/unquoted>
			<img src="unterminated
			<<<>>> url( url(" srcset=,,,`

		got := ExtractLinks(testSnapshot(t), markup)
		// Only the well-formed quoted reference is extracted; everything
		// else is silently skipped.
		if !reflect.DeepEqual(got, []string{testPrefix + "/https://example.com/ok"}) {
			t.Errorf("expected single link from malformed markup, got %v", got)
		}
	})

	t.Run("empty markup yields nothing", func(t *testing.T) {
		t.Parallel()

		if got := ExtractLinks(testSnapshot(t), ""); len(got) != 0 {
			t.Errorf("expected no links, got %v", got)
		}
	})
}
