// Package fmod is a safety layer over the FMOD core audio engine's C ABI.
//
// The native engine deals in raw pointers, integer result codes and
// function-pointer callbacks; this package converts that surface into
// ownership-checked handles, typed errors, and panic-contained Go callbacks.
// It deliberately reimplements no audio processing: every operation is a
// single synchronous foreign call, and the engine's own threading and
// blocking behavior pass through unchanged.
//
// Binaries built without the "fmod" build tag (or without the vendor SDK on
// the link path) compile against a stub that reports ErrNotBuilt.
package fmod
