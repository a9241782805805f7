// Package classes owns the declared-class registry for the extension.
//
// Ownership boundary:
// - the Class capability and its declaration registry
// - deterministic auto-registration/deregistration against the host
//
// Classes declare themselves at package init time; the default scene layer
// pushes the whole set to the host when the scene level comes up.
package classes
