package fmod

import "github.com/fmod-go/fmod-go/internal/bindings"

// Channel is a borrowed reference to a playing voice. Voices are owned and
// recycled by the engine, so a Channel carries no release responsibility
// and may go stale at any time; operations on a recycled voice report a
// stolen or invalid handle, which is a recoverable condition, not a fault.
type Channel struct {
	ChannelControl
}

// borrowChannel wraps a voice ref the engine just handed out. The embedded
// view is the channel kind's side of the audited coercion in controlView.
func borrowChannel(lib bindings.Lib, ref bindings.Ref) *Channel {
	return &Channel{ChannelControl: controlView(lib, ref, ControlChannel)}
}
