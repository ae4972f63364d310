// Package config handles loading and parsing the quasar tab strip
// configuration file.
//
// # Overview
//
// The config file controls strip behavior (orientation, alignment,
// breakpoint, arrow policy, text direction) and visual pass-throughs
// (active colors, indicator color, dense/shrink/stretch flags). Everything
// has a sensible default; the file is optional.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/quasar/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
// Example config.toml:
//
//	vertical = false
//	align = "left"          # left|center|right|justify
//	breakpoint = 60         # cells; narrower containers force justify
//	arrows = "desktop"      # desktop|always|never
//	outside_arrows = false
//	right_to_left = false
//	dense = false
//	active_color = "#7aa2f7"
//	indicator_color = "#bb9af7"
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), TOML parsing errors, and
// enum-valued fields outside their accepted set. Missing config files are
// NOT an error - defaults are used instead, so quasar works out of the box.
package config
