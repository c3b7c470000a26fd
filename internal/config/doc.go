// Package config loads devlog's settings from a TOML file.
//
// # Resolution
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/devlog/config.toml
//  3. If the file doesn't exist, use Default()
//  4. Missing or empty fields keep their defaults
//
// # TOML Format
//
//	enabled = true              # record anything at all
//	prefix = "APP"              # echoed before each line
//	suffix = ""                 # echoed after each line
//	echo = "none"               # none, stdout or stderr
//	refresh_ms = 1000           # console view refresh throttle
//	log_level = "info"          # devlog's own zap/slog level
//	environment = "development" # zap preset: development or production
//	demo_interval_ms = 300      # demo workload cadence
//
// Echo only applies when devlog runs headless; the console view owns the
// terminal otherwise.
//
// # Errors
//
// Load fails when the file cannot be opened or read ("open config", "read
// config"), is not valid TOML ("parse config"), or names an unknown echo
// stream ("invalid echo"). A missing file is not an error.
package config
