// Package launch runs the external create and open commands declared per
// program in the schema.
//
// Creation is synchronous: the resolved command runs with the scene path as
// its only argument and the call returns once it exits. Opening is
// detached: the command is placed in its own session so that quitting
// stagehand does not take the application down with it, and failures are
// reported through a caller-supplied callback instead of a return value.
// Both paths inject the identity chain and the per-level directories into
// the child environment so launcher scripts can resolve studio conventions
// without re-parsing paths.
package launch
