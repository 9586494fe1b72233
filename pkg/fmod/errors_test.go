package fmod

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fmod-go/fmod-go/internal/bindings"
)

func TestClassifyIsTotal(t *testing.T) {
	classes := []error{ErrConfiguration, ErrResource, ErrUnavailable, ErrNotReady, ErrIO, ErrInternal}

	for rc := bindings.OK; rc <= bindings.ErrTooManySamples; rc++ {
		kind := classify(rc)
		if rc == bindings.OK {
			require.NoError(t, kind)
			continue
		}
		require.Contains(t, classes, kind, "code %d (%s)", rc, rc)
	}
}

func TestClassifyUnknownCodeDefaultsToConfiguration(t *testing.T) {
	require.ErrorIs(t, classify(bindings.Result(9999)), ErrConfiguration)
}

func TestClassifySpotChecks(t *testing.T) {
	cases := []struct {
		rc   bindings.Result
		want error
	}{
		{bindings.ErrMemory, ErrResource},
		{bindings.ErrChannelAlloc, ErrResource},
		{bindings.ErrMaxAudible, ErrResource},
		{bindings.ErrNotReady, ErrNotReady},
		{bindings.ErrNetWouldBlock, ErrNotReady},
		{bindings.ErrFileNotFound, ErrIO},
		{bindings.ErrHTTPTimeout, ErrIO},
		{bindings.ErrNetConnect, ErrIO},
		{bindings.ErrUnsupported, ErrUnavailable},
		{bindings.ErrPluginMissing, ErrUnavailable},
		{bindings.ErrFormat, ErrUnavailable},
		{bindings.ErrInternal, ErrInternal},
		{bindings.ErrInvalidParam, ErrConfiguration},
		{bindings.ErrInvalidHandle, ErrConfiguration},
		{bindings.ErrChannelStolen, ErrConfiguration},
		{bindings.ErrHeaderMismatch, ErrConfiguration},
	}
	for _, tc := range cases {
		require.ErrorIs(t, classify(tc.rc), tc.want, "code %s", tc.rc)
	}
}

func TestResultErr(t *testing.T) {
	require.NoError(t, resultErr("System.Update", bindings.OK))

	err := resultErr("System.CreateSound", bindings.ErrFileNotFound)
	require.ErrorIs(t, err, ErrIO)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "System.CreateSound", fe.Op)
	require.Equal(t, int32(bindings.ErrFileNotFound), fe.Code)
	require.Equal(t, "fmod: System.CreateSound: file not found (code 18)", err.Error())
}

func TestMatrixShapeIsConfiguration(t *testing.T) {
	require.ErrorIs(t, ErrMatrixShape, ErrConfiguration)
	require.NotErrorIs(t, ErrMatrixShape, ErrInternal)
}

func TestContractViolationPanics(t *testing.T) {
	require.PanicsWithValue(t, "fmod: contract violation: acquire with zero ref for Sound", func() {
		contractViolation("acquire with zero ref for %s", "Sound")
	})
}
