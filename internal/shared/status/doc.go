// Package status defines the error vocabulary shared by the persona
// registry and the service supervisor.
//
// Success is a nil error. Every other outcome is one of the sentinel
// errors below, checked with errors.Is. Handler entry points return the
// same vocabulary; the registry and supervisor pass handler errors
// through verbatim rather than rewrapping them.
package status
