package fmod

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/fmod-go/fmod-go/internal/bindings"
)

type releaseFunc func(bindings.Ref) bindings.Result

// handle owns exactly one native object: a non-zero ref plus the destroy
// call for the object's category. The ref is consumed (swapped to zero) on
// release or leak, so the destroy call can fire at most once regardless of
// how many paths end the owner's life.
type handle struct {
	ref      atomic.Uintptr
	category string
	destroy  releaseFunc
}

// acquire takes exclusive ownership of ref. The caller must have obtained
// ref from a native create call that reported success; a zero ref means
// that contract was broken.
func acquire(category string, ref bindings.Ref, destroy releaseFunc) *handle {
	if ref == 0 {
		contractViolation("acquired ownership of a zero %s ref", category)
	}
	h := &handle{category: category, destroy: destroy}
	h.ref.Store(uintptr(ref))
	return h
}

// live returns the ref for an operation on a still-owned object.
func (h *handle) live(op string) (bindings.Ref, error) {
	ref := bindings.Ref(h.ref.Load())
	if ref == 0 {
		return 0, resultErr(op, bindings.ErrInvalidHandle)
	}
	return ref, nil
}

// release destroys the native object. A native failure is logged and
// swallowed: teardown paths must always complete, so release never
// propagates an error. Safe to call any number of times.
func (h *handle) release() {
	ref := bindings.Ref(h.ref.Swap(0))
	if ref == 0 {
		return
	}
	if rc := h.destroy(ref); rc != bindings.OK {
		log().Warn("release failed",
			zap.String("object", h.category),
			zap.Uintptr("ref", uintptr(ref)),
			zap.Int32("code", int32(rc)),
			zap.String("error", bindings.Result(rc).String()))
	}
}

// leak permanently transfers the native object out of this layer's
// ownership tracking and returns the raw ref. No destroy call will ever be
// issued for it. Returns zero if the handle was already consumed.
func (h *handle) leak() bindings.Ref {
	return bindings.Ref(h.ref.Swap(0))
}
