// Package config loads, normalizes, and validates vccd configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// VCCD_OUTPUT_DIR and VCCD_LOG_LEVEL. Command-line flags are applied by the
// CLI on top of the loaded values.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
