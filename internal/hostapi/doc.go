// Package hostapi owns the typed surface of the host application interface.
//
// Ownership boundary:
// - raw level identifiers and the published initialization table
// - the resolved host interface handle and library token
// - runtime configuration assembled at load
// - the process-wide host binding, set once per load
//
// Version negotiation and pointer marshaling happen before anything in this
// package is constructed; every value here is already resolved and typed.
package hostapi
