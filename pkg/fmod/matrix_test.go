package fmod

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMixMatrixRoundTrip(t *testing.T) {
	m, sys := newMockSystem(t)
	ch := playTestChannel(t, sys)

	m.SetMixDims(ch.ref, 2, 3)

	mat, err := ch.MixMatrix()
	require.NoError(t, err)
	require.Equal(t, 2, mat.Out)
	require.Equal(t, 3, mat.In)
	require.Len(t, mat.Levels, 6)
	require.Equal(t, float32(0), mat.Level(0, 0))
	require.Equal(t, float32(5), mat.Level(1, 2))
}

func TestMixMatrixEmpty(t *testing.T) {
	m, sys := newMockSystem(t)
	ch := playTestChannel(t, sys)

	mat, err := ch.MixMatrix()
	require.NoError(t, err)
	require.Zero(t, mat.Out)
	require.Zero(t, mat.In)
	require.Empty(t, mat.Levels)

	// Nothing to fill, so only the dimension query ran.
	require.Equal(t, 1, m.Calls("ControlGetMixMatrix"))
}

func TestMixMatrixGrowsBetweenCalls(t *testing.T) {
	m, sys := newMockSystem(t)
	ch := playTestChannel(t, sys)

	m.SetMixDims(ch.ref, 2, 3)
	m.OnMatrixFill = func() {
		m.SetMixDims(ch.ref, 4, 5)
	}

	mat, err := ch.MixMatrix()
	require.Nil(t, mat)
	require.ErrorIs(t, err, ErrMatrixShape)
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestMixMatrixShrinksBetweenCalls(t *testing.T) {
	m, sys := newMockSystem(t)
	ch := playTestChannel(t, sys)

	m.SetMixDims(ch.ref, 2, 3)
	m.OnMatrixFill = func() {
		m.SetMixDims(ch.ref, 1, 2)
	}

	mat, err := ch.MixMatrix()
	require.Nil(t, mat)
	require.ErrorIs(t, err, ErrMatrixShape)
}

func TestSetMixMatrixValidatesPayload(t *testing.T) {
	m, sys := newMockSystem(t)
	ch := playTestChannel(t, sys)

	err := ch.SetMixMatrix(&MixMatrix{Out: 2, In: 2, Levels: make([]float32, 3)})
	require.ErrorIs(t, err, ErrConfiguration)
	require.Zero(t, m.Calls("ControlSetMixMatrix"))
}

func TestSetMixMatrixThenGet(t *testing.T) {
	_, sys := newMockSystem(t)
	ch := playTestChannel(t, sys)

	want := &MixMatrix{Out: 2, In: 2, Levels: []float32{1, 0, 0, 1}}
	require.NoError(t, ch.SetMixMatrix(want))

	got, err := ch.MixMatrix()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestGroupSharesMatrixSurface(t *testing.T) {
	m, sys := newMockSystem(t)
	grp, err := sys.CreateChannelGroup("music")
	require.NoError(t, err)

	m.SetMixDims(grp.ref, 1, 2)
	mat, err := grp.MixMatrix()
	require.NoError(t, err)
	require.Equal(t, 1, mat.Out)
	require.Equal(t, 2, mat.In)
	require.Equal(t, ControlChannelGroup, grp.Kind())
}
