// Package database provides SQLite-based storage for the wbmirror run
// manifest.
//
// The MirrorDB lives inside the output directory next to the mirror tree
// and stores:
//   - Run records (seed, snapshot timestamp, start time)
//   - Per-resource outcomes (archived/original URL, local path, content
//     type, size, status, fetch time)
//
// The manifest makes a mirror inspectable after the fact: which addresses
// were fetched, which failed, and where each landed on disk.
//
// Design decision: We use SQLite (via modernc.org/sqlite) because:
//  1. No external dependencies - the manifest is a single file in the
//     output directory
//  2. CGO-free implementation allows easy cross-compilation
//  3. Sufficient performance for a strictly sequential crawl
//  4. WAL mode lets the manifest be queried while a run is writing
package database
