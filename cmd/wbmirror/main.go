// Package main provides the entry point for the wbmirror CLI.
//
// wbmirror mirrors a single timestamped Wayback Machine snapshot to local
// storage, producing a browsable offline copy with links rewritten to
// relative filesystem paths.
//
// Usage:
//
//	wbmirror mirror <archived-url> <output-dir>
//
// See --help for all available options.
package main

// main is the entry point for wbmirror.
func main() {
	Execute()
}
