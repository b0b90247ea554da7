// Package logging provides a unified logging interface for fibloop.
// It abstracts the underlying logging implementation, allowing consistent
// logging across components while supporting multiple backends.
//
// Diagnostics always go to stderr: stdout is reserved for the emitted
// sequence itself.
package logging
