// Package config loads, normalizes, and validates stagehand configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the STAGEHAND_ROOT and
// STAGEHAND_SHOW_ROOT environment overrides. The Config type centralizes
// every knob the CLI needs: the studio root locations, the schema
// document, preference storage, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
