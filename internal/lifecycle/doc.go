// Package lifecycle owns the per-level layer model for a loaded extension.
//
// Ownership boundary:
// - the ordered initialization level enumeration
// - the layer capability and its closure adapter
// - the handle that stores registered layers and dispatches init/deinit
//
// The package performs no panic containment of its own; every host-facing
// entry runs under the boundary package's guard.
package lifecycle
