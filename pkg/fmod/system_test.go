package fmod

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fmod-go/fmod-go/internal/bindings"
)

func TestNewSystemRejectsOlderRuntime(t *testing.T) {
	m := bindings.NewMock()
	m.LibVersion = 0x00020100 // older than the header this wrapper targets

	sys, err := newSystem(m)
	require.Nil(t, sys)
	require.ErrorIs(t, err, ErrConfiguration)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, int32(bindings.ErrHeaderMismatch), fe.Code)

	// The created system must not leak past the failed version check.
	require.Equal(t, 1, m.Calls("SystemRelease"))
}

func TestNewSystemAcceptsNewerRuntime(t *testing.T) {
	m := bindings.NewMock()
	m.LibVersion = 0x00020300

	sys, err := newSystem(m)
	require.NoError(t, err)

	v, err := sys.LibVersion()
	require.NoError(t, err)
	require.Equal(t, uint32(0x00020300), v)
}

func TestSystemLifecycle(t *testing.T) {
	_, sys := newMockSystem(t)

	// Update before Init is an engine-reported ordering error.
	require.ErrorIs(t, sys.Update(), ErrConfiguration)

	require.NoError(t, sys.Init(64, InitNormal))
	require.NoError(t, sys.Update())
	require.NoError(t, sys.Close())
	require.ErrorIs(t, sys.Update(), ErrConfiguration)
}

func TestPlaySoundReturnsBorrowedVoice(t *testing.T) {
	_, sys := newMockSystem(t)

	snd, err := sys.CreateSound("shot.wav", ModeDefault)
	require.NoError(t, err)

	ch, err := sys.PlaySound(snd, nil, false)
	require.NoError(t, err)
	require.Equal(t, ControlChannel, ch.Kind())

	playing, err := ch.IsPlaying()
	require.NoError(t, err)
	require.True(t, playing)

	// Stopping hands the voice back to the engine; further use reports an
	// invalid handle rather than touching a recycled voice.
	require.NoError(t, ch.Stop())
	_, err = ch.IsPlaying()
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestPlaySoundIntoGroup(t *testing.T) {
	_, sys := newMockSystem(t)

	snd, err := sys.CreateSound("music.ogg", ModeDefault)
	require.NoError(t, err)
	grp, err := sys.CreateChannelGroup("music")
	require.NoError(t, err)

	ch, err := sys.PlaySound(snd, grp, true)
	require.NoError(t, err)

	paused, err := ch.Paused()
	require.NoError(t, err)
	require.True(t, paused)

	require.NoError(t, ch.SetPaused(false))
	paused, err = ch.Paused()
	require.NoError(t, err)
	require.False(t, paused)
}

func TestSharedControlSurface(t *testing.T) {
	_, sys := newMockSystem(t)

	grp, err := sys.CreateChannelGroup("sfx")
	require.NoError(t, err)
	require.Equal(t, ControlChannelGroup, grp.Kind())

	require.NoError(t, grp.SetVolume(0.5))
	v, err := grp.Volume()
	require.NoError(t, err)
	require.Equal(t, float32(0.5), v)

	require.NoError(t, grp.SetMute(true))
	muted, err := grp.Mute()
	require.NoError(t, err)
	require.True(t, muted)

	require.NoError(t, grp.SetPitch(1.5))
	p, err := grp.Pitch()
	require.NoError(t, err)
	require.Equal(t, float32(1.5), p)
}

func TestVersionString(t *testing.T) {
	require.Equal(t, "2.02.21", VersionString(0x00020221))
	require.Equal(t, "1.10.03", VersionString(0x00011003))
}
