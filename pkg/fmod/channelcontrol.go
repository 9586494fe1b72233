package fmod

import "github.com/fmod-go/fmod-go/internal/bindings"

// ControlType identifies which concrete kind a ChannelControl view refers
// to. It is always supplied by the native call, never inferred from memory.
type ControlType int32

const (
	ControlChannel      ControlType = ControlType(bindings.ControlTypeChannel)
	ControlChannelGroup ControlType = ControlType(bindings.ControlTypeChannelGroup)
)

func (t ControlType) String() string {
	switch t {
	case ControlChannel:
		return "channel"
	case ControlChannelGroup:
		return "channelgroup"
	default:
		return "invalid"
	}
}

// ChannelControl is the operation surface shared by Channel and
// ChannelGroup. The engine implements it once and exposes it through two
// nominally distinct but structurally identical sets of entry points; this
// type is the Go-side deduplication of that surface.
type ChannelControl struct {
	lib  bindings.Lib
	ref  bindings.Ref
	kind ControlType
}

// controlView is the single coercion from a concrete kind's ref to the
// shared surface. Together with ctrlPtr on the cgo side it is the only
// place the kinds' layout compatibility is assumed; both concrete kinds
// gain the shared operations through it and nowhere else.
func controlView(lib bindings.Lib, ref bindings.Ref, kind ControlType) ChannelControl {
	return ChannelControl{lib: lib, ref: ref, kind: kind}
}

// Kind reports which concrete kind backs this view.
func (c *ChannelControl) Kind() ControlType { return c.kind }

// Stop ends playback. For a voice the engine then recycles it.
func (c *ChannelControl) Stop() error {
	return resultErr("ChannelControl.Stop", c.lib.ControlStop(c.ref))
}

func (c *ChannelControl) SetPaused(paused bool) error {
	return resultErr("ChannelControl.SetPaused", c.lib.ControlSetPaused(c.ref, paused))
}

func (c *ChannelControl) Paused() (bool, error) {
	v, rc := c.lib.ControlGetPaused(c.ref)
	return v, resultErr("ChannelControl.Paused", rc)
}

func (c *ChannelControl) SetVolume(volume float32) error {
	return resultErr("ChannelControl.SetVolume", c.lib.ControlSetVolume(c.ref, volume))
}

func (c *ChannelControl) Volume() (float32, error) {
	v, rc := c.lib.ControlGetVolume(c.ref)
	return v, resultErr("ChannelControl.Volume", rc)
}

func (c *ChannelControl) SetMute(mute bool) error {
	return resultErr("ChannelControl.SetMute", c.lib.ControlSetMute(c.ref, mute))
}

func (c *ChannelControl) Mute() (bool, error) {
	v, rc := c.lib.ControlGetMute(c.ref)
	return v, resultErr("ChannelControl.Mute", rc)
}

func (c *ChannelControl) SetPitch(pitch float32) error {
	return resultErr("ChannelControl.SetPitch", c.lib.ControlSetPitch(c.ref, pitch))
}

func (c *ChannelControl) Pitch() (float32, error) {
	v, rc := c.lib.ControlGetPitch(c.ref)
	return v, resultErr("ChannelControl.Pitch", rc)
}

func (c *ChannelControl) IsPlaying() (bool, error) {
	v, rc := c.lib.ControlIsPlaying(c.ref)
	return v, resultErr("ChannelControl.IsPlaying", rc)
}
