// Package bindings is the raw seam between the Go wrapper and the FMOD core
// C ABI. It defines the native result codes, the opaque object reference
// type, and the Lib call surface that the public fmod package is written
// against.
//
// Three implementations of Lib exist: the cgo-backed one (build tag
// "fmod", requires the vendor SDK at link time), a stub that reports
// ErrNotBuilt, and an in-memory Mock used by tests. This package should ONLY
// be imported by pkg/fmod; all cgo complexity is isolated here.
package bindings
