// Package preflight provides readiness checks for the filesystem roots,
// the schema document, and the launcher commands stagehand depends on.
//
// The CLI "stagehand status" command runs the whole report; individual
// check functions stay exported so callers can probe one concern without
// paying for the rest.
package preflight
