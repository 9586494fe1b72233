package bindings

import (
	"errors"
	"unsafe"
)

// Ref is an opaque reference to a native engine object. On the cgo side it
// is the raw FMOD object pointer; the mock hands out synthetic non-zero
// values. Zero is never a valid object.
type Ref uintptr

// Control-type tags passed by the engine alongside every channel-control
// callback. The engine supplies the tag explicitly; it is never inferred
// from the pointed-to memory.
const (
	ControlTypeChannel      int32 = 0
	ControlTypeChannelGroup int32 = 1
)

// Channel-control callback kinds.
const (
	CallbackEnd          int32 = 0
	CallbackVirtualVoice int32 = 1
	CallbackSyncPoint    int32 = 2
	CallbackOcclusion    int32 = 3
)

// Sound open states reported by SoundGetOpenState.
const (
	OpenStateReady      int32 = 0
	OpenStateLoading    int32 = 1
	OpenStateError      int32 = 2
	OpenStateConnecting int32 = 3
	OpenStateBuffering  int32 = 4
	OpenStateSeeking    int32 = 5
	OpenStatePlaying    int32 = 6
	OpenStateSetPos     int32 = 7
)

// ControlCallback is the Go-side shape of the native channel-control
// callback. The engine may invoke it synchronously from the thread calling
// SystemUpdate or from an engine-owned thread; implementations must not
// assume either. data1/data2 carry per-kind payloads exactly as the ABI
// defines them (VirtualVoice/SyncPoint pass integers cast to pointers,
// Occlusion passes mutable float outputs).
type ControlCallback func(ctrl Ref, controlType, callbackType int32, data1, data2 unsafe.Pointer) Result

// Lib is the complete native call surface the wrapper uses. Every method is
// a single synchronous foreign call returning the raw result code; no method
// retries, translates, or takes ownership. Output sizes follow the engine's
// two-call protocols: string and blob queries report the required byte count
// whether or not the buffer could hold it, and the matrix query re-reports
// dimensions on fill.
type Lib interface {
	SystemCreate(headerVersion uint32) (Ref, Result)
	SystemRelease(sys Ref) Result
	SystemGetVersion(sys Ref) (uint32, Result)
	SystemInit(sys Ref, maxChannels int32, flags uint32) Result
	SystemClose(sys Ref) Result
	SystemUpdate(sys Ref) Result
	SystemCreateSound(sys Ref, name string, mode uint32) (Ref, Result)
	SystemCreateChannelGroup(sys Ref, name string) (Ref, Result)
	SystemPlaySound(sys, sound, group Ref, paused bool) (Ref, Result)
	SystemCreateGeometry(sys Ref, maxPolygons, maxVertices int32) (Ref, Result)
	SystemLoadGeometry(sys Ref, data []byte) (Ref, Result)

	SoundRelease(sound Ref) Result
	// SoundGetName fills buf with the sound's name and reports the full
	// length required. ErrTruncated is returned when len(buf) was too small;
	// needed is valid either way.
	SoundGetName(sound Ref, buf []byte) (needed int32, rc Result)
	SoundGetOpenState(sound Ref) (state int32, percentBuffered uint32, rc Result)

	ChannelGroupRelease(group Ref) Result

	// Control* calls accept a ref of either control kind; see the layout
	// compatibility note in the cgo implementation.
	ControlStop(ctrl Ref) Result
	ControlSetPaused(ctrl Ref, paused bool) Result
	ControlGetPaused(ctrl Ref) (bool, Result)
	ControlSetVolume(ctrl Ref, volume float32) Result
	ControlGetVolume(ctrl Ref) (float32, Result)
	ControlSetMute(ctrl Ref, mute bool) Result
	ControlGetMute(ctrl Ref) (bool, Result)
	ControlSetPitch(ctrl Ref, pitch float32) Result
	ControlGetPitch(ctrl Ref) (float32, Result)
	ControlIsPlaying(ctrl Ref) (bool, Result)
	ControlSetCallback(ctrl Ref, cb ControlCallback) Result
	// ControlGetMixMatrix implements the two-phase matrix borrow. With a nil
	// matrix it only reports dimensions. With a non-nil matrix it re-reports
	// the current dimensions and fills row-major with the given hop; if the
	// data it would write exceeds len(matrix) it writes nothing and returns
	// ErrTruncated.
	ControlGetMixMatrix(ctrl Ref, matrix []float32, outChannels, inChannels *int32, inChannelHop int32) Result
	ControlSetMixMatrix(ctrl Ref, matrix []float32, outChannels, inChannels, inChannelHop int32) Result

	GeometryRelease(geom Ref) Result
	// GeometrySave serializes the geometry into buf, reporting the required
	// byte count. A nil buf performs the size query only.
	GeometrySave(geom Ref, buf []byte) (needed int32, rc Result)
}

var (
	// ErrNotBuilt reports that the native engine was not linked into the
	// current binary (missing SDK or the "fmod" build tag).
	ErrNotBuilt = errors.New("fmod/internal/bindings: native engine not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native engine.
	ErrCGONotEnabled = errors.New("fmod/internal/bindings: cgo not enabled")
)
