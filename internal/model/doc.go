// Package model defines the core data structures used throughout wbmirror.
//
// This package contains the following main types:
//   - Resource: one archived address and its mirror outcome
//   - Summary: the aggregate result of a mirror run
//
// Design decision: We separate models into their own package to avoid
// circular dependencies. Multiple packages (crawler, database, report) need
// these types, so centralizing them prevents import cycles.
//
// The models carry json and yaml tags because the report writers and the
// manifest database serialize them directly.
package model
