// Package lifecycle implements the one fixed orchestration sequence of the
// clay CLI: create the solid, optionally display it, export it.
//
// The sequence is deliberately straight-line with a single branch (display
// on/off). There is no retry and no cleanup of partial artifacts: any
// failure from the CAD library or the filesystem propagates to the caller
// and terminates the run.
//
// Display is controlled by an explicit boolean argument rather than by
// reading process environment inside the runner. The CLI layer decides the
// value from the --no-display flag and the CLAY_HIDE_DISPLAY variable, which
// keeps headless batch loops working without the runner knowing about them.
package lifecycle
