// Package config provides configuration structures and defaults for
// wbmirror. Configuration is populated exclusively from CLI flags and
// arguments; there is no configuration file and no environment variable
// surface.
package config
