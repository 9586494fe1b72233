package bindings

// Result is the fixed-width integer result code returned by every native
// call. Values mirror FMOD_RESULT from fmod_common.h; OK is the only
// non-error value.
type Result int32

const (
	OK Result = iota
	ErrBadCommand
	ErrChannelAlloc
	ErrChannelStolen
	ErrDMA
	ErrDSPConnection
	ErrDSPDontProcess
	ErrDSPFormat
	ErrDSPInUse
	ErrDSPNotFound
	ErrDSPReserved
	ErrDSPSilence
	ErrDSPType
	ErrFileBad
	ErrFileCouldNotSeek
	ErrFileDiskEjected
	ErrFileEOF
	ErrFileEndOfData
	ErrFileNotFound
	ErrFormat
	ErrHeaderMismatch
	ErrHTTP
	ErrHTTPAccess
	ErrHTTPProxyAuth
	ErrHTTPServerError
	ErrHTTPTimeout
	ErrInitialization
	ErrInitialized
	ErrInternal
	ErrInvalidFloat
	ErrInvalidHandle
	ErrInvalidParam
	ErrInvalidPosition
	ErrInvalidSpeaker
	ErrInvalidSyncPoint
	ErrInvalidThread
	ErrInvalidVector
	ErrMaxAudible
	ErrMemory
	ErrMemoryCantPoint
	ErrNeeds3D
	ErrNeedsHardware
	ErrNetConnect
	ErrNetSocketError
	ErrNetURL
	ErrNetWouldBlock
	ErrNotReady
	ErrOutputAllocated
	ErrOutputCreateBuffer
	ErrOutputDriverCall
	ErrOutputFormat
	ErrOutputInit
	ErrOutputNoDrivers
	ErrPlugin
	ErrPluginMissing
	ErrPluginResource
	ErrPluginVersion
	ErrRecord
	ErrReverbChannelGroup
	ErrReverbInstance
	ErrSubsounds
	ErrSubsoundAllocated
	ErrSubsoundCantMove
	ErrTagNotFound
	ErrTooManyChannels
	ErrTruncated
	ErrUnimplemented
	ErrUninitialized
	ErrUnsupported
	ErrVersion
	ErrEventAlreadyLoaded
	ErrEventLiveUpdateBusy
	ErrEventLiveUpdateMismatch
	ErrEventLiveUpdateTimeout
	ErrEventNotFound
	ErrStudioUninitialized
	ErrStudioNotLoaded
	ErrInvalidString
	ErrAlreadyLocked
	ErrNotLocked
	ErrRecordDisconnected
	ErrTooManySamples
)

var resultText = map[Result]string{
	OK:                    "no errors",
	ErrBadCommand:         "command not allowed for this object type",
	ErrChannelAlloc:       "error trying to allocate a channel",
	ErrChannelStolen:      "the specified channel has been reused to play another sound",
	ErrDMA:                "DMA failure",
	ErrDSPConnection:      "DSP connection error",
	ErrDSPFormat:          "DSP format error",
	ErrDSPInUse:           "DSP is already in the mixer's DSP network",
	ErrDSPNotFound:        "DSP unit not found",
	ErrFileBad:            "error loading file",
	ErrFileCouldNotSeek:   "could not perform seek operation",
	ErrFileDiskEjected:    "media was ejected while reading",
	ErrFileEOF:            "end of file unexpectedly reached",
	ErrFileEndOfData:      "end of current chunk reached while reading data",
	ErrFileNotFound:       "file not found",
	ErrFormat:             "unsupported file or audio format",
	ErrHeaderMismatch:     "version mismatch between header and runtime library",
	ErrHTTP:               "HTTP error",
	ErrHTTPTimeout:        "HTTP request timed out",
	ErrInitialization:     "engine not initialized correctly to support this function",
	ErrInitialized:        "cannot call this command after init",
	ErrInternal:           "an error occurred that was not supposed to",
	ErrInvalidFloat:       "value passed in was NaN, Inf or denormalized",
	ErrInvalidHandle:      "an invalid object handle was used",
	ErrInvalidParam:       "an invalid parameter was passed to this function",
	ErrInvalidPosition:    "an invalid seek position was passed",
	ErrInvalidSyncPoint:   "the sync point did not come from this sound handle",
	ErrInvalidThread:      "function called from a thread that is not supported",
	ErrMaxAudible:         "reached maximum audible playback count for this sound group",
	ErrMemory:             "not enough memory or resources",
	ErrNetConnect:         "could not connect to the specified host",
	ErrNetSocketError:     "socket error",
	ErrNetWouldBlock:      "operation on a non-blocking socket could not complete immediately",
	ErrNotReady:           "operation could not be performed because the object is not ready",
	ErrOutputAllocated:    "output device is already in use and cannot be reused",
	ErrOutputDriverCall:   "a call to a standard soundcard driver failed",
	ErrOutputFormat:       "soundcard does not support the specified format",
	ErrOutputInit:         "error initializing output device",
	ErrOutputNoDrivers:    "the output device has no drivers installed",
	ErrPluginMissing:      "a requested output, DSP unit type or codec was not available",
	ErrRecord:             "an error occurred initializing the recording device",
	ErrTagNotFound:        "the specified tag could not be found",
	ErrTooManyChannels:    "the sound exceeds the allowable input channel count",
	ErrTruncated:          "the retrieved value is too long to fit in the supplied buffer and has been truncated",
	ErrUnimplemented:      "something has not been implemented when it should be",
	ErrUninitialized:      "init was not called before using this command",
	ErrUnsupported:        "a command issued was not supported by this object",
	ErrVersion:            "the version number of this file format is not supported",
	ErrNeedsHardware:      "tried to use a feature that requires hardware support",
	ErrInvalidString:      "an invalid string was passed to this function",
	ErrRecordDisconnected: "the specified recording driver has been disconnected",
	ErrTooManySamples:     "the length provided exceeds the allowable limit",
}

// String returns the native error description for the code, matching the
// strings the engine's own error-string helper produces for the codes this
// wrapper can observe.
func (r Result) String() string {
	if s, ok := resultText[r]; ok {
		return s
	}
	return "unknown error"
}
