package fmod

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/fmod-go/fmod-go/internal/bindings"
)

type recordingCallback struct {
	NopChannelControlCallback

	ends       int
	virtuals   int
	syncs      int
	occlusions int

	lastVirtual bool
	lastSync    int

	panicOnEnd bool
}

func (r *recordingCallback) End(*Channel) {
	if r.panicOnEnd {
		panic("user callback exploded")
	}
	r.ends++
}

func (r *recordingCallback) VirtualVoice(_ *Channel, isVirtual bool) {
	r.virtuals++
	r.lastVirtual = isVirtual
}

func (r *recordingCallback) SyncPoint(_ *Channel, index int) {
	r.syncs++
	r.lastSync = index
}

func (r *recordingCallback) Occlusion(_ *ChannelControl, direct, reverb *float32) {
	r.occlusions++
	*direct = 0.25
	*reverb = 0.5
}

func playTestChannel(t *testing.T, sys *System) *Channel {
	t.Helper()
	snd, err := sys.CreateSound("voice.wav", ModeDefault)
	require.NoError(t, err)
	ch, err := sys.PlaySound(snd, nil, false)
	require.NoError(t, err)
	return ch
}

func TestChannelCallbackDispatch(t *testing.T) {
	m, sys := newMockSystem(t)
	ch := playTestChannel(t, sys)

	rec := &recordingCallback{}
	require.NoError(t, ch.SetCallback(rec))

	rc := m.FireCallback(ch.ref, int32(bindings.ControlTypeChannel), int32(bindings.CallbackEnd), nil, nil)
	require.Equal(t, bindings.OK, rc)
	require.Equal(t, 1, rec.ends)

	rc = m.FireCallback(ch.ref, int32(bindings.ControlTypeChannel), int32(bindings.CallbackVirtualVoice),
		unsafe.Pointer(new(int32)), nil)
	require.Equal(t, bindings.OK, rc)
	require.Equal(t, 1, rec.virtuals)
	require.True(t, rec.lastVirtual)

	rc = m.FireCallback(ch.ref, int32(bindings.ControlTypeChannel), int32(bindings.CallbackVirtualVoice), nil, nil)
	require.Equal(t, bindings.OK, rc)
	require.False(t, rec.lastVirtual)

	rc = m.FireCallback(ch.ref, int32(bindings.ControlTypeChannel), int32(bindings.CallbackSyncPoint), nil, nil)
	require.Equal(t, bindings.OK, rc)
	require.Equal(t, 1, rec.syncs)
	require.Equal(t, 0, rec.lastSync)
}

func TestControlTypeTagMismatchNotDispatched(t *testing.T) {
	m, sys := newMockSystem(t)
	ch := playTestChannel(t, sys)

	rec := &recordingCallback{}
	require.NoError(t, ch.SetCallback(rec))

	// Engine claims the object is a group while the registration was made
	// for a voice: no user code runs.
	rc := m.FireCallback(ch.ref, int32(bindings.ControlTypeChannelGroup), int32(bindings.CallbackEnd), nil, nil)
	require.Equal(t, bindings.ErrInvalidParam, rc)
	require.Zero(t, rec.ends)
	require.Zero(t, rec.occlusions)
}

func TestPanicContainedAtBoundary(t *testing.T) {
	m, sys := newMockSystem(t)
	ch := playTestChannel(t, sys)

	rec := &recordingCallback{panicOnEnd: true}
	require.NoError(t, ch.SetCallback(rec))

	rc := m.FireCallback(ch.ref, int32(bindings.ControlTypeChannel), int32(bindings.CallbackEnd), nil, nil)
	require.Equal(t, bindings.ErrInternal, rc)

	// The registration survives a contained panic; later notifications still
	// dispatch.
	rec.panicOnEnd = false
	rc = m.FireCallback(ch.ref, int32(bindings.ControlTypeChannel), int32(bindings.CallbackEnd), nil, nil)
	require.Equal(t, bindings.OK, rc)
	require.Equal(t, 1, rec.ends)
}

func TestOcclusionMutatesOutputs(t *testing.T) {
	m, sys := newMockSystem(t)
	ch := playTestChannel(t, sys)

	rec := &recordingCallback{}
	require.NoError(t, ch.SetCallback(rec))

	direct, reverb := float32(1), float32(1)
	rc := m.FireCallback(ch.ref, int32(bindings.ControlTypeChannel), int32(bindings.CallbackOcclusion),
		unsafe.Pointer(&direct), unsafe.Pointer(&reverb))
	require.Equal(t, bindings.OK, rc)
	require.Equal(t, float32(0.25), direct)
	require.Equal(t, float32(0.5), reverb)
}

func TestOcclusionNilOutputsRejected(t *testing.T) {
	m, sys := newMockSystem(t)
	ch := playTestChannel(t, sys)

	rec := &recordingCallback{}
	require.NoError(t, ch.SetCallback(rec))

	rc := m.FireCallback(ch.ref, int32(bindings.ControlTypeChannel), int32(bindings.CallbackOcclusion), nil, nil)
	require.Equal(t, bindings.ErrInvalidParam, rc)
	require.Zero(t, rec.occlusions)
}

func TestGroupCallbackOcclusionOnly(t *testing.T) {
	m, sys := newMockSystem(t)
	grp, err := sys.CreateChannelGroup("music")
	require.NoError(t, err)

	rec := &recordingCallback{}
	require.NoError(t, grp.SetCallback(rec))

	// Voice-only notifications have no meaning for a group.
	rc := m.FireCallback(grp.ref, int32(bindings.ControlTypeChannelGroup), int32(bindings.CallbackEnd), nil, nil)
	require.Equal(t, bindings.ErrInvalidParam, rc)
	require.Zero(t, rec.ends)

	direct, reverb := float32(1), float32(1)
	rc = m.FireCallback(grp.ref, int32(bindings.ControlTypeChannelGroup), int32(bindings.CallbackOcclusion),
		unsafe.Pointer(&direct), unsafe.Pointer(&reverb))
	require.Equal(t, bindings.OK, rc)
	require.Equal(t, 1, rec.occlusions)
}

func TestUnknownCallbackTypeRejected(t *testing.T) {
	m, sys := newMockSystem(t)
	ch := playTestChannel(t, sys)

	rec := &recordingCallback{}
	require.NoError(t, ch.SetCallback(rec))

	rc := m.FireCallback(ch.ref, int32(bindings.ControlTypeChannel), 99, nil, nil)
	require.Equal(t, bindings.ErrInvalidParam, rc)
}

func TestSetCallbackReplacesAndUnregisters(t *testing.T) {
	m, sys := newMockSystem(t)
	ch := playTestChannel(t, sys)

	first := &recordingCallback{}
	second := &recordingCallback{}
	require.NoError(t, ch.SetCallback(first))
	require.NoError(t, ch.SetCallback(second))

	rc := m.FireCallback(ch.ref, int32(bindings.ControlTypeChannel), int32(bindings.CallbackEnd), nil, nil)
	require.Equal(t, bindings.OK, rc)
	require.Zero(t, first.ends)
	require.Equal(t, 1, second.ends)

	require.NoError(t, ch.SetCallback(nil))
	rc = m.FireCallback(ch.ref, int32(bindings.ControlTypeChannel), int32(bindings.CallbackEnd), nil, nil)
	require.Equal(t, bindings.ErrInvalidHandle, rc)
}
