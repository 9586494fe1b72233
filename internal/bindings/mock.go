package bindings

import (
	"sync"
	"unsafe"
)

// Object kinds tracked by the mock engine.
const (
	mockSystem = iota
	mockSound
	mockChannel
	mockChannelGroup
	mockGeometry
)

type mockObject struct {
	kind     int
	released bool
	name     string

	// channel-control state
	paused  bool
	muted   bool
	playing bool
	volume  float32
	pitch   float32
	cb      ControlCallback
	mixOut  int32
	mixIn   int32
	mix     []float32

	// sound state
	openState int32

	// geometry state
	blob []byte
}

var _ Lib = (*Mock)(nil)

// Mock is an in-memory simulation of the native engine implementing Lib. It
// exists so ownership, trampoline and two-phase protocol behavior can be
// exercised without the vendor SDK. All methods are safe for concurrent use.
type Mock struct {
	mu   sync.Mutex
	next Ref
	objs map[Ref]*mockObject

	calls    map[string]int
	releases map[Ref]int

	// FailNextCreate makes the next create-style call return this code and
	// no object, then resets.
	FailNextCreate Result

	// LibVersion is what SystemGetVersion reports. Zero means "same as the
	// header version passed to SystemCreate".
	LibVersion uint32

	// OnMatrixFill runs at the start of every fill-phase matrix call,
	// before dimensions are re-read. Tests use it to mutate dimensions
	// between the size query and the fill, simulating a concurrently
	// mutating engine.
	OnMatrixFill func()

	headerVersion uint32
	initialized   bool
}

// NewMock returns an empty mock engine.
func NewMock() *Mock {
	return &Mock{
		next:     0x1000,
		objs:     map[Ref]*mockObject{},
		calls:    map[string]int{},
		releases: map[Ref]int{},
	}
}

// Calls reports how many times the named seam method ran.
func (m *Mock) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// ReleaseCount reports how many native destroy calls were issued for ref.
func (m *Mock) ReleaseCount(ref Ref) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.releases[ref]
}

// Live reports whether ref names an object that exists and was not released.
func (m *Mock) Live(ref Ref) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.objs[ref]
	return ok && !o.released
}

// SetMixDims configures the control object's current mix matrix shape; data
// is filled with a recognizable ramp.
func (m *Mock) SetMixDims(ref Ref, out, in int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := m.objs[ref]
	o.mixOut, o.mixIn = out, in
	o.mix = make([]float32, out*in)
	for i := range o.mix {
		o.mix[i] = float32(i)
	}
}

// SetOpenState overrides a sound's reported open state.
func (m *Mock) SetOpenState(ref Ref, state int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objs[ref].openState = state
}

// SetGeometryBlob sets the serialized form a geometry object saves.
func (m *Mock) SetGeometryBlob(ref Ref, blob []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objs[ref].blob = append([]byte(nil), blob...)
}

// FireCallback invokes the callback registered on ctrl the way the engine
// would, passing the tag and payloads through untouched. It reports
// ErrInvalidHandle when no callback is registered.
func (m *Mock) FireCallback(ctrl Ref, controlType, callbackType int32, data1, data2 unsafe.Pointer) Result {
	m.mu.Lock()
	o, ok := m.objs[ctrl]
	var cb ControlCallback
	if ok {
		cb = o.cb
	}
	m.mu.Unlock()
	if cb == nil {
		return ErrInvalidHandle
	}
	return cb(ctrl, controlType, callbackType, data1, data2)
}

func (m *Mock) count(method string) {
	m.calls[method]++
}

func (m *Mock) create(kind int, name string) (Ref, Result) {
	if m.FailNextCreate != OK {
		rc := m.FailNextCreate
		m.FailNextCreate = OK
		return 0, rc
	}
	ref := m.next
	m.next += 0x10
	m.objs[ref] = &mockObject{kind: kind, name: name, volume: 1, pitch: 1}
	return ref, OK
}

func (m *Mock) live(ref Ref, kinds ...int) (*mockObject, Result) {
	o, ok := m.objs[ref]
	if !ok || o.released {
		return nil, ErrInvalidHandle
	}
	for _, k := range kinds {
		if o.kind == k {
			return o, OK
		}
	}
	return nil, ErrInvalidHandle
}

func (m *Mock) destroy(ref Ref, kind int) Result {
	m.releases[ref]++
	o, rc := m.live(ref, kind)
	if rc != OK {
		return rc
	}
	o.released = true
	return OK
}

func (m *Mock) SystemCreate(headerVersion uint32) (Ref, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SystemCreate")
	m.headerVersion = headerVersion
	return m.create(mockSystem, "system")
}

func (m *Mock) SystemRelease(sys Ref) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SystemRelease")
	return m.destroy(sys, mockSystem)
}

func (m *Mock) SystemGetVersion(sys Ref) (uint32, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SystemGetVersion")
	if _, rc := m.live(sys, mockSystem); rc != OK {
		return 0, rc
	}
	if m.LibVersion != 0 {
		return m.LibVersion, OK
	}
	return m.headerVersion, OK
}

func (m *Mock) SystemInit(sys Ref, maxChannels int32, flags uint32) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SystemInit")
	if _, rc := m.live(sys, mockSystem); rc != OK {
		return rc
	}
	if m.initialized {
		return ErrInitialized
	}
	m.initialized = true
	return OK
}

func (m *Mock) SystemClose(sys Ref) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SystemClose")
	if _, rc := m.live(sys, mockSystem); rc != OK {
		return rc
	}
	m.initialized = false
	return OK
}

func (m *Mock) SystemUpdate(sys Ref) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SystemUpdate")
	if _, rc := m.live(sys, mockSystem); rc != OK {
		return rc
	}
	if !m.initialized {
		return ErrUninitialized
	}
	return OK
}

// nonBlocking mirrors the engine's non-blocking open mode bit.
const nonBlockingMode = 0x00010000

func (m *Mock) SystemCreateSound(sys Ref, name string, mode uint32) (Ref, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SystemCreateSound")
	if _, rc := m.live(sys, mockSystem); rc != OK {
		return 0, rc
	}
	ref, rc := m.create(mockSound, name)
	if rc != OK {
		return 0, rc
	}
	if mode&nonBlockingMode != 0 {
		m.objs[ref].openState = OpenStateLoading
	}
	return ref, OK
}

func (m *Mock) SystemCreateChannelGroup(sys Ref, name string) (Ref, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SystemCreateChannelGroup")
	if _, rc := m.live(sys, mockSystem); rc != OK {
		return 0, rc
	}
	return m.create(mockChannelGroup, name)
}

func (m *Mock) SystemPlaySound(sys, sound, group Ref, paused bool) (Ref, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SystemPlaySound")
	if _, rc := m.live(sys, mockSystem); rc != OK {
		return 0, rc
	}
	snd, rc := m.live(sound, mockSound)
	if rc != OK {
		return 0, rc
	}
	if snd.openState != OpenStateReady {
		return 0, ErrNotReady
	}
	if group != 0 {
		if _, rc := m.live(group, mockChannelGroup); rc != OK {
			return 0, rc
		}
	}
	ref, rc := m.create(mockChannel, snd.name)
	if rc != OK {
		return 0, rc
	}
	ch := m.objs[ref]
	ch.paused = paused
	ch.playing = true
	return ref, OK
}

func (m *Mock) SystemCreateGeometry(sys Ref, maxPolygons, maxVertices int32) (Ref, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SystemCreateGeometry")
	if _, rc := m.live(sys, mockSystem); rc != OK {
		return 0, rc
	}
	if maxPolygons < 0 || maxVertices < 0 {
		return 0, ErrInvalidParam
	}
	return m.create(mockGeometry, "geometry")
}

func (m *Mock) SystemLoadGeometry(sys Ref, data []byte) (Ref, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SystemLoadGeometry")
	if _, rc := m.live(sys, mockSystem); rc != OK {
		return 0, rc
	}
	if len(data) == 0 {
		return 0, ErrInvalidParam
	}
	ref, rc := m.create(mockGeometry, "geometry")
	if rc != OK {
		return 0, rc
	}
	m.objs[ref].blob = append([]byte(nil), data...)
	return ref, OK
}

func (m *Mock) SoundRelease(sound Ref) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SoundRelease")
	return m.destroy(sound, mockSound)
}

func (m *Mock) SoundGetName(sound Ref, buf []byte) (int32, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SoundGetName")
	o, rc := m.live(sound, mockSound)
	if rc != OK {
		return 0, rc
	}
	needed := int32(len(o.name))
	if int(needed) > len(buf) {
		return needed, ErrTruncated
	}
	copy(buf, o.name)
	return needed, OK
}

func (m *Mock) SoundGetOpenState(sound Ref) (int32, uint32, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SoundGetOpenState")
	o, rc := m.live(sound, mockSound)
	if rc != OK {
		return 0, 0, rc
	}
	return o.openState, 100, OK
}

func (m *Mock) ChannelGroupRelease(group Ref) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("ChannelGroupRelease")
	return m.destroy(group, mockChannelGroup)
}

func (m *Mock) control(ref Ref) (*mockObject, Result) {
	return m.live(ref, mockChannel, mockChannelGroup)
}

func (m *Mock) ControlStop(ctrl Ref) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("ControlStop")
	o, rc := m.control(ctrl)
	if rc != OK {
		return rc
	}
	o.playing = false
	if o.kind == mockChannel {
		// Voices are recycled by the engine once stopped.
		o.released = true
	}
	return OK
}

func (m *Mock) ControlSetPaused(ctrl Ref, paused bool) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("ControlSetPaused")
	o, rc := m.control(ctrl)
	if rc != OK {
		return rc
	}
	o.paused = paused
	return OK
}

func (m *Mock) ControlGetPaused(ctrl Ref) (bool, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("ControlGetPaused")
	o, rc := m.control(ctrl)
	if rc != OK {
		return false, rc
	}
	return o.paused, OK
}

func (m *Mock) ControlSetVolume(ctrl Ref, volume float32) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("ControlSetVolume")
	o, rc := m.control(ctrl)
	if rc != OK {
		return rc
	}
	if volume != volume {
		return ErrInvalidFloat
	}
	o.volume = volume
	return OK
}

func (m *Mock) ControlGetVolume(ctrl Ref) (float32, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("ControlGetVolume")
	o, rc := m.control(ctrl)
	if rc != OK {
		return 0, rc
	}
	return o.volume, OK
}

func (m *Mock) ControlSetMute(ctrl Ref, mute bool) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("ControlSetMute")
	o, rc := m.control(ctrl)
	if rc != OK {
		return rc
	}
	o.muted = mute
	return OK
}

func (m *Mock) ControlGetMute(ctrl Ref) (bool, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("ControlGetMute")
	o, rc := m.control(ctrl)
	if rc != OK {
		return false, rc
	}
	return o.muted, OK
}

func (m *Mock) ControlSetPitch(ctrl Ref, pitch float32) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("ControlSetPitch")
	o, rc := m.control(ctrl)
	if rc != OK {
		return rc
	}
	o.pitch = pitch
	return OK
}

func (m *Mock) ControlGetPitch(ctrl Ref) (float32, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("ControlGetPitch")
	o, rc := m.control(ctrl)
	if rc != OK {
		return 0, rc
	}
	return o.pitch, OK
}

func (m *Mock) ControlIsPlaying(ctrl Ref) (bool, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("ControlIsPlaying")
	o, rc := m.control(ctrl)
	if rc != OK {
		return false, rc
	}
	return o.playing, OK
}

func (m *Mock) ControlSetCallback(ctrl Ref, cb ControlCallback) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("ControlSetCallback")
	o, rc := m.control(ctrl)
	if rc != OK {
		return rc
	}
	o.cb = cb
	return OK
}

func (m *Mock) ControlGetMixMatrix(ctrl Ref, matrix []float32, outChannels, inChannels *int32, inChannelHop int32) Result {
	m.mu.Lock()
	m.count("ControlGetMixMatrix")
	o, rc := m.control(ctrl)
	if rc != OK {
		m.mu.Unlock()
		return rc
	}
	if matrix == nil {
		*outChannels, *inChannels = o.mixOut, o.mixIn
		m.mu.Unlock()
		return OK
	}
	hook := m.OnMatrixFill
	m.mu.Unlock()
	if hook != nil {
		hook()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o, rc = m.control(ctrl)
	if rc != OK {
		return rc
	}
	*outChannels, *inChannels = o.mixOut, o.mixIn
	if int(o.mixOut)*int(o.mixIn) > len(matrix) {
		return ErrTruncated
	}
	for r := int32(0); r < o.mixOut; r++ {
		copy(matrix[r*inChannelHop:], o.mix[r*o.mixIn:(r+1)*o.mixIn])
	}
	return OK
}

func (m *Mock) ControlSetMixMatrix(ctrl Ref, matrix []float32, outChannels, inChannels, inChannelHop int32) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("ControlSetMixMatrix")
	o, rc := m.control(ctrl)
	if rc != OK {
		return rc
	}
	if int(outChannels)*int(inChannels) > len(matrix) {
		return ErrInvalidParam
	}
	o.mixOut, o.mixIn = outChannels, inChannels
	o.mix = make([]float32, outChannels*inChannels)
	for r := int32(0); r < outChannels; r++ {
		copy(o.mix[r*inChannels:], matrix[r*inChannelHop:r*inChannelHop+inChannels])
	}
	return OK
}

func (m *Mock) GeometryRelease(geom Ref) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("GeometryRelease")
	return m.destroy(geom, mockGeometry)
}

func (m *Mock) GeometrySave(geom Ref, buf []byte) (int32, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("GeometrySave")
	o, rc := m.live(geom, mockGeometry)
	if rc != OK {
		return 0, rc
	}
	needed := int32(len(o.blob))
	if buf == nil {
		return needed, OK
	}
	if int(needed) > len(buf) {
		return needed, ErrTruncated
	}
	copy(buf, o.blob)
	return needed, OK
}
