package fmod

import "github.com/fmod-go/fmod-go/internal/bindings"

// Sound is an owned audio asset: a sample, stream or DSP-generated source.
type Sound struct {
	lib bindings.Lib
	h   *handle
}

// Name returns the sound's name, usually derived from the file it was
// opened from.
func (s *Sound) Name() (string, error) {
	ref, err := s.h.live("Sound.Name")
	if err != nil {
		return "", err
	}
	b, err := growableQuery("Sound.Name", initialBufferSize, func(buf []byte) (int32, bindings.Result) {
		return s.lib.SoundGetName(ref, buf)
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// OpenState describes a sound's loading progress.
type OpenState int32

const (
	OpenStateReady      OpenState = OpenState(bindings.OpenStateReady)
	OpenStateLoading    OpenState = OpenState(bindings.OpenStateLoading)
	OpenStateError      OpenState = OpenState(bindings.OpenStateError)
	OpenStateConnecting OpenState = OpenState(bindings.OpenStateConnecting)
	OpenStateBuffering  OpenState = OpenState(bindings.OpenStateBuffering)
	OpenStateSeeking    OpenState = OpenState(bindings.OpenStateSeeking)
	OpenStatePlaying    OpenState = OpenState(bindings.OpenStatePlaying)
	OpenStateSetPos     OpenState = OpenState(bindings.OpenStateSetPos)
)

func (s OpenState) String() string {
	switch s {
	case OpenStateReady:
		return "ready"
	case OpenStateLoading:
		return "loading"
	case OpenStateError:
		return "error"
	case OpenStateConnecting:
		return "connecting"
	case OpenStateBuffering:
		return "buffering"
	case OpenStateSeeking:
		return "seeking"
	case OpenStatePlaying:
		return "playing"
	case OpenStateSetPos:
		return "setposition"
	default:
		return "unknown"
	}
}

// OpenState reports loading progress for sounds opened with
// ModeNonBlocking: the state and the percentage buffered for streams. The
// caller polls; this layer adds no waiting of its own.
func (s *Sound) OpenState() (OpenState, uint32, error) {
	ref, err := s.h.live("Sound.OpenState")
	if err != nil {
		return 0, 0, err
	}
	state, percent, rc := s.lib.SoundGetOpenState(ref)
	if rc != bindings.OK {
		return 0, 0, resultErr("Sound.OpenState", rc)
	}
	return OpenState(state), percent, nil
}

// Release destroys the native sound. Failures are logged and swallowed.
// Idempotent.
func (s *Sound) Release() {
	s.h.release()
}

// Leak transfers the sound out of ownership tracking and returns the raw
// native pointer value; no release will ever be issued for it.
func (s *Sound) Leak() uintptr {
	return uintptr(s.h.leak())
}
