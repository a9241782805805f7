// Package boundary owns the host-facing load/init/deinit entry points.
//
// Ownership boundary:
// - the one-time Load sequence and the published initialization table
// - the per-level initialize/deinitialize callbacks
// - panic containment for every host-callable entry
// - the process-wide handle slot
//
// Nothing in this package may let a panic unwind toward the host: every
// entry point runs its body under Contain. Failures are reported once (the
// Load return code) or logged and absorbed (per-level callbacks).
package boundary
