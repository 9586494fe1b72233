package fmod

import (
	"errors"
	"fmt"

	"github.com/fmod-go/fmod-go/internal/bindings"
)

// The closed error taxonomy. Every native result code classifies into
// exactly one of these; use errors.Is to test the class of any error this
// package returns. Contract violations are not part of the set: misuse of
// the layer's own unsafe contract panics instead of returning.
var (
	// ErrConfiguration covers bad arguments, wrong object kinds, tag
	// mismatches and invalid handles.
	ErrConfiguration = errors.New("fmod: configuration error")

	// ErrResource covers allocation and handle exhaustion.
	ErrResource = errors.New("fmod: resource exhausted")

	// ErrUnavailable covers features absent on this platform, build or
	// license tier.
	ErrUnavailable = errors.New("fmod: feature unavailable")

	// ErrNotReady reports an asynchronous operation still pending.
	ErrNotReady = errors.New("fmod: not ready")

	// ErrIO covers file and network failures.
	ErrIO = errors.New("fmod: i/o error")

	// ErrInternal reports a failure inside the engine or a user callback
	// panic contained at the trampoline boundary.
	ErrInternal = errors.New("fmod: internal error")
)

// ErrMatrixShape reports that the engine's mix matrix dimensions changed
// between the size query and the fill call. It classifies as
// ErrConfiguration.
var ErrMatrixShape = fmt.Errorf("mix matrix shape changed between size query and fill: %w", ErrConfiguration)

// ErrNotBuilt reports that the native engine was not linked into this
// binary. Re-exported from the bindings seam so callers need not import it.
var ErrNotBuilt = bindings.ErrNotBuilt

// Error is a failed native call: the operation, the raw result code, and
// the class it translates to. Unwrap yields the class sentinel.
type Error struct {
	Op   string
	Code int32
	kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fmod: %s: %s (code %d)", e.Op, bindings.Result(e.Code).String(), e.Code)
}

func (e *Error) Unwrap() error { return e.kind }

// classify maps a native result code to its error class. Pure and total:
// codes this wrapper has never seen still land in exactly one class.
func classify(rc bindings.Result) error {
	switch rc {
	case bindings.OK:
		return nil
	case bindings.ErrMemory, bindings.ErrMemoryCantPoint, bindings.ErrChannelAlloc,
		bindings.ErrMaxAudible, bindings.ErrTooManyChannels, bindings.ErrTooManySamples,
		bindings.ErrOutputAllocated, bindings.ErrOutputCreateBuffer, bindings.ErrSubsoundAllocated:
		return ErrResource
	case bindings.ErrNotReady, bindings.ErrNetWouldBlock:
		return ErrNotReady
	case bindings.ErrFileBad, bindings.ErrFileCouldNotSeek, bindings.ErrFileDiskEjected,
		bindings.ErrFileEOF, bindings.ErrFileEndOfData, bindings.ErrFileNotFound,
		bindings.ErrHTTP, bindings.ErrHTTPAccess, bindings.ErrHTTPProxyAuth,
		bindings.ErrHTTPServerError, bindings.ErrHTTPTimeout,
		bindings.ErrNetConnect, bindings.ErrNetSocketError, bindings.ErrNetURL,
		bindings.ErrOutputDriverCall, bindings.ErrRecordDisconnected, bindings.ErrDMA:
		return ErrIO
	case bindings.ErrUnsupported, bindings.ErrUnimplemented, bindings.ErrNeedsHardware,
		bindings.ErrPlugin, bindings.ErrPluginMissing, bindings.ErrPluginResource,
		bindings.ErrPluginVersion, bindings.ErrFormat, bindings.ErrVersion,
		bindings.ErrOutputFormat, bindings.ErrOutputInit, bindings.ErrOutputNoDrivers,
		bindings.ErrRecord:
		return ErrUnavailable
	case bindings.ErrInternal:
		return ErrInternal
	default:
		return ErrConfiguration
	}
}

// resultErr translates a native result code into an error, or nil for OK.
func resultErr(op string, rc bindings.Result) error {
	kind := classify(rc)
	if kind == nil {
		return nil
	}
	return &Error{Op: op, Code: int32(rc), kind: kind}
}

// contractViolation reports misuse of this layer's own unsafe contract: a
// bug in the embedder, not a runtime condition, so it aborts rather than
// returning an error.
func contractViolation(format string, args ...any) {
	panic(fmt.Sprintf("fmod: contract violation: "+format, args...))
}
