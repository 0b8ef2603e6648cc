// Package crawler mirrors one Wayback Machine snapshot to local storage.
//
// # Architecture
//
// The package is designed around the Spider type, which drains a FIFO
// frontier of archived addresses. For each address it fetches the resource,
// maps the recovered original URL to a local file, extracts further
// in-snapshot links from markup, rewrites those links to relative local
// paths, and writes the result. A visited set guarantees at most one fetch
// per distinct archived address.
//
// # Components
//
//   - Spider: the fetch/dedupe/enqueue control loop
//   - Fetcher: the network boundary (HTTPFetcher is the real implementation)
//   - ExtractLinks: regex link discovery in markup
//   - LocalPath: deterministic remote-to-filesystem mapping
//   - Rewrite: literal link substitution for offline navigation
//   - DecodeText: permissive charset decoding of fetched markup
//
// # Link discovery and rewriting are textual
//
// Design decision: Links are discovered with regular expressions and
// rewritten with literal string substitution instead of parsing the
// document. Archived pages are full of markup the archive's own injection
// has bent out of shape; a DOM round-trip would re-serialize (and so alter)
// content on exactly the inputs we need to preserve, while the textual pass
// leaves everything but the matched addresses byte-identical.
//
// # Politeness
//
// The crawl is strictly sequential with a fixed delay after each processed
// address and a bounded per-request timeout, to rate-limit traffic toward
// the archive host.
package crawler
