// Package hostsim owns a minimal stand-in for the host application.
//
// Ownership boundary:
// - the load -> initialize(ascending) -> deinitialize(descending) driving
//   sequence the real host performs
// - a fake class table recording what the extension registered
//
// Used by cmd/extctl and by integration tests; never by the library paths
// the real host calls.
package hostsim
