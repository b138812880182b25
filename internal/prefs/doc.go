// Package prefs persists small per-user UI preferences: pinned chains and
// last-used selections. The store is a plain key/value JSON document shared
// with the desktop front-end; writes are flock-guarded and atomic so
// concurrent invocations cannot corrupt it.
package prefs
