package crawler

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// LocalPath maps an original resource address to its destination file under
// rootDir, preserving host and path structure:
//
//	https://example.com/            -> rootDir/example.com/index.html
//	https://example.com/docs/       -> rootDir/example.com/docs/index.html
//	https://example.com/about       -> rootDir/example.com/about/index.html
//	https://example.com/app.js      -> rootDir/example.com/app.js
//
// An extensionless final segment is treated as a directory. The mapping is
// a pure function of (rootDir, originalURL): the spider computes the same
// destination once when saving a resource and again when rewriting links to
// it from other documents, where the content type is no longer known, so
// nothing type-dependent may influence the result.
//
// When the caller could not recover an original address it passes the
// archived address itself; the mirror then lands under the archive host's
// own name (rootDir/web.archive.org/web/...), which is lossy but keeps the
// pipeline total.
func LocalPath(rootDir, originalURL string) string {
	u, err := url.Parse(originalURL)
	if err != nil {
		// Unparseable addresses degrade to a single path segment so the
		// resource still lands somewhere under rootDir.
		return filepath.Join(rootDir, sanitizeSegment(originalURL))
	}

	p := u.Path
	switch {
	case p == "" || strings.HasSuffix(p, "/"):
		p += "index.html"
	case path.Ext(path.Base(p)) == "":
		p += "/index.html"
	}

	return filepath.Join(rootDir, u.Host, filepath.FromSlash(strings.TrimPrefix(p, "/")))
}

// RelativePath computes the forward-slash relative path from the directory
// containing fromFile to toFile. Reports false when no relative path exists
// (differing volume roots on Windows).
func RelativePath(fromFile, toFile string) (string, bool) {
	rel, err := filepath.Rel(filepath.Dir(fromFile), toFile)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// sanitizeSegment flattens an arbitrary string into one usable path segment.
func sanitizeSegment(s string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", ":", "_")
	return r.Replace(s)
}
