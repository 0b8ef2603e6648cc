// Package report renders the summary of a mirror run.
//
// Four formats are provided behind a common Writer interface:
//   - SimpleWriter: human-readable text for the terminal (default)
//   - JSONWriter: compact or pretty-printed JSON for tooling
//   - YAMLWriter: YAML for tooling
//   - MarkdownWriter: GitHub Flavored Markdown for sharing
//
// A MultiWriter fans one summary out to several destinations, typically
// terminal plus file.
package report
