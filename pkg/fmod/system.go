package fmod

import (
	"github.com/fmod-go/fmod-go/internal/bindings"
)

// System is the owned top-level engine object. All other objects are
// created through it and must not outlive it.
type System struct {
	lib bindings.Lib
	h   *handle
}

// NewSystem creates and wraps a native system object. It fails with
// ErrNotBuilt when the engine is not linked into this binary, and with a
// header-mismatch configuration error when the runtime library is older
// than the header version this wrapper targets.
func NewSystem() (*System, error) {
	lib, err := bindings.Native()
	if err != nil {
		return nil, err
	}
	return newSystem(lib)
}

func newSystem(lib bindings.Lib) (*System, error) {
	ref, rc := lib.SystemCreate(Version)
	if rc != bindings.OK {
		return nil, resultErr("System.New", rc)
	}
	s := &System{lib: lib, h: acquire("System", ref, lib.SystemRelease)}
	runtime, rc := lib.SystemGetVersion(ref)
	if rc != bindings.OK {
		s.Release()
		return nil, resultErr("System.Version", rc)
	}
	if runtime < Version {
		s.Release()
		return nil, resultErr("System.New", bindings.ErrHeaderMismatch)
	}
	return s, nil
}

// Version reports the runtime library's packed version word.
func (s *System) LibVersion() (uint32, error) {
	ref, err := s.h.live("System.LibVersion")
	if err != nil {
		return 0, err
	}
	v, rc := s.lib.SystemGetVersion(ref)
	if rc != bindings.OK {
		return 0, resultErr("System.LibVersion", rc)
	}
	return v, nil
}

// Init prepares the engine for playback. maxChannels bounds the number of
// simultaneously playable voices.
func (s *System) Init(maxChannels int, flags InitFlags) error {
	ref, err := s.h.live("System.Init")
	if err != nil {
		return err
	}
	return resultErr("System.Init", s.lib.SystemInit(ref, int32(maxChannels), uint32(flags)))
}

// Close shuts playback down. Unlike Release it propagates failure, since
// the caller may want to retry or report an ordered shutdown going wrong.
func (s *System) Close() error {
	ref, err := s.h.live("System.Close")
	if err != nil {
		return err
	}
	return resultErr("System.Close", s.lib.SystemClose(ref))
}

// Update drives the engine; call once per frame. Callbacks registered in
// synchronous mode are invoked from inside this call.
func (s *System) Update() error {
	ref, err := s.h.live("System.Update")
	if err != nil {
		return err
	}
	return resultErr("System.Update", s.lib.SystemUpdate(ref))
}

// CreateSound opens a sound from a file name or URL. With ModeNonBlocking
// the call returns immediately and the sound loads in the background; poll
// Sound.OpenState before playing it.
func (s *System) CreateSound(nameOrURL string, mode Mode) (*Sound, error) {
	ref, err := s.h.live("System.CreateSound")
	if err != nil {
		return nil, err
	}
	sndRef, rc := s.lib.SystemCreateSound(ref, nameOrURL, uint32(mode))
	if rc != bindings.OK {
		return nil, resultErr("System.CreateSound", rc)
	}
	return &Sound{lib: s.lib, h: acquire("Sound", sndRef, s.lib.SoundRelease)}, nil
}

// CreateChannelGroup creates an owned group of voices.
func (s *System) CreateChannelGroup(name string) (*ChannelGroup, error) {
	ref, err := s.h.live("System.CreateChannelGroup")
	if err != nil {
		return nil, err
	}
	grpRef, rc := s.lib.SystemCreateChannelGroup(ref, name)
	if rc != bindings.OK {
		return nil, resultErr("System.CreateChannelGroup", rc)
	}
	return newChannelGroup(s.lib, grpRef), nil
}

// PlaySound starts a sound on a voice and returns a borrowed reference to
// it. group may be nil for the master group. The engine recycles voices
// internally, so the returned Channel is never released by this layer;
// operations on a recycled voice report a stolen or invalid handle.
func (s *System) PlaySound(sound *Sound, group *ChannelGroup, paused bool) (*Channel, error) {
	ref, err := s.h.live("System.PlaySound")
	if err != nil {
		return nil, err
	}
	sndRef, err := sound.h.live("System.PlaySound")
	if err != nil {
		return nil, err
	}
	var grpRef bindings.Ref
	if group != nil {
		grpRef, err = group.h.live("System.PlaySound")
		if err != nil {
			return nil, err
		}
	}
	chRef, rc := s.lib.SystemPlaySound(ref, sndRef, grpRef, paused)
	if rc != bindings.OK {
		return nil, resultErr("System.PlaySound", rc)
	}
	return borrowChannel(s.lib, chRef), nil
}

// CreateGeometry creates an empty geometry object for occlusion modelling.
func (s *System) CreateGeometry(maxPolygons, maxVertices int) (*Geometry, error) {
	ref, err := s.h.live("System.CreateGeometry")
	if err != nil {
		return nil, err
	}
	geomRef, rc := s.lib.SystemCreateGeometry(ref, int32(maxPolygons), int32(maxVertices))
	if rc != bindings.OK {
		return nil, resultErr("System.CreateGeometry", rc)
	}
	return &Geometry{lib: s.lib, h: acquire("Geometry", geomRef, s.lib.GeometryRelease)}, nil
}

// LoadGeometry reconstructs a geometry object from a blob produced by
// Geometry.Save. The bytes are opaque to this layer.
func (s *System) LoadGeometry(data []byte) (*Geometry, error) {
	ref, err := s.h.live("System.LoadGeometry")
	if err != nil {
		return nil, err
	}
	geomRef, rc := s.lib.SystemLoadGeometry(ref, data)
	if rc != bindings.OK {
		return nil, resultErr("System.LoadGeometry", rc)
	}
	return &Geometry{lib: s.lib, h: acquire("Geometry", geomRef, s.lib.GeometryRelease)}, nil
}

// Release destroys the system. Failures are logged and swallowed; release
// always completes. Idempotent.
func (s *System) Release() {
	s.h.release()
}

// Leak transfers the system out of this layer's ownership tracking and
// returns the raw native pointer value. Use it when two independently-lived
// top-level objects must outlive the scope that created them.
func (s *System) Leak() uintptr {
	return uintptr(s.h.leak())
}
