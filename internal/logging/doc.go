// Package logging assembles the structured slog loggers used across
// stagehand commands and services.
//
// It owns the console/JSON handlers, centralizes level and sink plumbing,
// and defines the standardized field keys so every component tags log
// lines with the same show/unit/task vocabulary. The package also provides
// a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit data with the same shape as the rest of the tool.
package logging
