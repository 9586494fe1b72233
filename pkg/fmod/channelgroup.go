package fmod

import "github.com/fmod-go/fmod-go/internal/bindings"

// ChannelGroup is an owned group of voices. It shares the ChannelControl
// surface with Channel; operations applied to the group fan out to its
// members inside the engine.
type ChannelGroup struct {
	ChannelControl
	h *handle
}

// newChannelGroup takes ownership of a group ref. The embedded view is the
// group kind's side of the audited coercion in controlView.
func newChannelGroup(lib bindings.Lib, ref bindings.Ref) *ChannelGroup {
	return &ChannelGroup{
		ChannelControl: controlView(lib, ref, ControlChannelGroup),
		h:              acquire("ChannelGroup", ref, lib.ChannelGroupRelease),
	}
}

// Release destroys the native group. Failures are logged and swallowed.
// Idempotent.
func (g *ChannelGroup) Release() {
	g.h.release()
}

// Leak transfers the group out of ownership tracking and returns the raw
// native pointer value; no release will ever be issued for it.
func (g *ChannelGroup) Leak() uintptr {
	return uintptr(g.h.leak())
}
