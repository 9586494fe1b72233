package fmod

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/fmod-go/fmod-go/internal/bindings"
)

// CallbackType identifies a channel-control notification kind.
type CallbackType int32

const (
	CallbackEnd          CallbackType = CallbackType(bindings.CallbackEnd)
	CallbackVirtualVoice CallbackType = CallbackType(bindings.CallbackVirtualVoice)
	CallbackSyncPoint    CallbackType = CallbackType(bindings.CallbackSyncPoint)
	CallbackOcclusion    CallbackType = CallbackType(bindings.CallbackOcclusion)
)

func (t CallbackType) String() string {
	switch t {
	case CallbackEnd:
		return "end"
	case CallbackVirtualVoice:
		return "virtualvoice"
	case CallbackSyncPoint:
		return "syncpoint"
	case CallbackOcclusion:
		return "occlusion"
	default:
		return "invalid"
	}
}

// ChannelControlCallback receives engine notifications for a voice or
// group. Notifications arrive on the thread calling System.Update in
// synchronous mode, or on an engine-owned thread otherwise; implementations
// must be safe for either. End, VirtualVoice and SyncPoint apply to voices
// only; Occlusion applies to both kinds and may adjust the computed values
// through its output pointers, which are valid only for the duration of the
// call.
type ChannelControlCallback interface {
	End(ch *Channel)
	VirtualVoice(ch *Channel, isVirtual bool)
	SyncPoint(ch *Channel, index int)
	Occlusion(ctrl *ChannelControl, direct, reverb *float32)
}

// NopChannelControlCallback ignores every notification. Embed it to
// implement only the notifications you care about.
type NopChannelControlCallback struct{}

func (NopChannelControlCallback) End(*Channel) {}

func (NopChannelControlCallback) VirtualVoice(*Channel, bool) {}

func (NopChannelControlCallback) SyncPoint(*Channel, int) {}

func (NopChannelControlCallback) Occlusion(*ChannelControl, *float32, *float32) {}

// SetCallback registers cb for notifications on this object, replacing any
// previous registration. A nil cb unregisters. The registration stays
// active until replaced or the object is released.
func (c *ChannelControl) SetCallback(cb ChannelControlCallback) error {
	if cb == nil {
		return resultErr("ChannelControl.SetCallback", c.lib.ControlSetCallback(c.ref, nil))
	}
	return resultErr("ChannelControl.SetCallback",
		c.lib.ControlSetCallback(c.ref, trampoline(c.lib, c.kind, cb)))
}

// trampoline builds the seam-facing callback for one registration. It is
// the only code that runs between the engine and user logic: it validates
// the control-type tag, reconstructs borrowed typed views over the refs and
// output pointers the engine passed, dispatches, and contains any panic.
// No unwind may cross the foreign boundary, so the recover here is
// mandatory on every invocation, and a contained panic is reported to the
// engine as an internal error.
func trampoline(lib bindings.Lib, expect ControlType, cb ChannelControlCallback) bindings.ControlCallback {
	return func(ctrl bindings.Ref, controlType, callbackType int32, data1, data2 unsafe.Pointer) (rc bindings.Result) {
		defer func() {
			if r := recover(); r != nil {
				log().Error("callback panic contained at engine boundary",
					zap.Uintptr("ref", uintptr(ctrl)),
					zap.Stringer("callback", CallbackType(callbackType)),
					zap.Any("panic", r))
				rc = bindings.ErrInternal
			}
		}()

		tag := ControlType(controlType)
		if tag != expect {
			log().Warn("control type tag mismatch, callback not dispatched",
				zap.Uintptr("ref", uintptr(ctrl)),
				zap.Stringer("expected", expect),
				zap.Int32("got", controlType))
			return bindings.ErrInvalidParam
		}

		kind := CallbackType(callbackType)
		switch tag {
		case ControlChannel:
			ch := borrowChannel(lib, ctrl)
			switch kind {
			case CallbackEnd:
				cb.End(ch)
			case CallbackVirtualVoice:
				// data1 carries the flag as a pointer-sized integer.
				cb.VirtualVoice(ch, uintptr(data1) != 0)
			case CallbackSyncPoint:
				cb.SyncPoint(ch, int(uintptr(data1)))
			case CallbackOcclusion:
				direct, reverb := (*float32)(data1), (*float32)(data2)
				if direct == nil || reverb == nil {
					return bindings.ErrInvalidParam
				}
				cb.Occlusion(&ch.ChannelControl, direct, reverb)
			default:
				log().Warn("unknown callback type, not dispatched",
					zap.Uintptr("ref", uintptr(ctrl)),
					zap.Int32("callback", callbackType))
				return bindings.ErrInvalidParam
			}
		case ControlChannelGroup:
			switch kind {
			case CallbackOcclusion:
				direct, reverb := (*float32)(data1), (*float32)(data2)
				if direct == nil || reverb == nil {
					return bindings.ErrInvalidParam
				}
				view := controlView(lib, ctrl, ControlChannelGroup)
				cb.Occlusion(&view, direct, reverb)
			default:
				// End, virtual-voice and sync-point events have no meaning
				// for a group; reject without touching user code.
				log().Warn("notification not applicable to channel group",
					zap.Uintptr("ref", uintptr(ctrl)),
					zap.Stringer("callback", kind))
				return bindings.ErrInvalidParam
			}
		}
		return bindings.OK
	}
}
