//go:build fmod && cgo

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}/../../fmod/api/core/inc
#cgo LDFLAGS: -L${SRCDIR}/../../fmod/api/core/lib -lfmod
#cgo windows LDFLAGS: -lfmod_vc
#include <stdlib.h>
#include <string.h>
#include "fmod.h"

extern FMOD_RESULT channelControlTrampoline(FMOD_CHANNELCONTROL *channelcontrol,
	FMOD_CHANNELCONTROL_TYPE controltype,
	FMOD_CHANNELCONTROL_CALLBACK_TYPE callbacktype,
	void *commanddata1, void *commanddata2);
*/
import "C"

import (
	"sync"
	"unsafe"
)

// Native returns the cgo-backed call surface. The engine library must have
// been resolved at link time; this function itself performs no native call.
func Native() (Lib, error) {
	return nativeLib{}, nil
}

type nativeLib struct{}

// callbackReg associates a control object with the Go callback its
// trampoline forwards to. Keyed by the raw object pointer because that is
// the only identity the engine hands back on invocation.
var callbackReg sync.Map // Ref -> ControlCallback

//export channelControlTrampoline
func channelControlTrampoline(channelcontrol *C.FMOD_CHANNELCONTROL,
	controltype C.FMOD_CHANNELCONTROL_TYPE,
	callbacktype C.FMOD_CHANNELCONTROL_CALLBACK_TYPE,
	commanddata1, commanddata2 unsafe.Pointer) C.FMOD_RESULT {
	ref := Ref(uintptr(unsafe.Pointer(channelcontrol)))
	v, ok := callbackReg.Load(ref)
	if !ok {
		// Registration was replaced or the object released; nothing to do.
		return C.FMOD_RESULT(OK)
	}
	cb := v.(ControlCallback)
	rc := cb(ref, int32(controltype), int32(callbacktype), commanddata1, commanddata2)
	return C.FMOD_RESULT(rc)
}

func sysPtr(r Ref) *C.FMOD_SYSTEM { return (*C.FMOD_SYSTEM)(unsafe.Pointer(r)) }

func soundPtr(r Ref) *C.FMOD_SOUND { return (*C.FMOD_SOUND)(unsafe.Pointer(r)) }

func groupPtr(r Ref) *C.FMOD_CHANNELGROUP { return (*C.FMOD_CHANNELGROUP)(unsafe.Pointer(r)) }

func geomPtr(r Ref) *C.FMOD_GEOMETRY { return (*C.FMOD_GEOMETRY)(unsafe.Pointer(r)) }

// ctrlPtr is the single coercion behind the Control* calls. The engine
// implements the channel-control surface once and exposes it through
// structurally identical FMOD_Channel_* and FMOD_ChannelGroup_* entry
// points; channel and group pointers are documented to be interchangeable
// for exactly that surface. Every Control* call below relies on this and
// nothing else does. Do not re-derive this cast elsewhere.
func ctrlPtr(r Ref) *C.FMOD_CHANNEL { return (*C.FMOD_CHANNEL)(unsafe.Pointer(r)) }

func cbool(b bool) C.FMOD_BOOL {
	if b {
		return 1
	}
	return 0
}

func (nativeLib) SystemCreate(headerVersion uint32) (Ref, Result) {
	var sys *C.FMOD_SYSTEM
	rc := C.FMOD_System_Create(&sys, C.uint(headerVersion))
	return Ref(uintptr(unsafe.Pointer(sys))), Result(rc)
}

func (nativeLib) SystemRelease(sys Ref) Result {
	return Result(C.FMOD_System_Release(sysPtr(sys)))
}

func (nativeLib) SystemGetVersion(sys Ref) (uint32, Result) {
	var v C.uint
	rc := C.FMOD_System_GetVersion(sysPtr(sys), &v)
	return uint32(v), Result(rc)
}

func (nativeLib) SystemInit(sys Ref, maxChannels int32, flags uint32) Result {
	return Result(C.FMOD_System_Init(sysPtr(sys), C.int(maxChannels), C.FMOD_INITFLAGS(flags), nil))
}

func (nativeLib) SystemClose(sys Ref) Result {
	return Result(C.FMOD_System_Close(sysPtr(sys)))
}

func (nativeLib) SystemUpdate(sys Ref) Result {
	return Result(C.FMOD_System_Update(sysPtr(sys)))
}

func (nativeLib) SystemCreateSound(sys Ref, name string, mode uint32) (Ref, Result) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var snd *C.FMOD_SOUND
	rc := C.FMOD_System_CreateSound(sysPtr(sys), cName, C.FMOD_MODE(mode), nil, &snd)
	return Ref(uintptr(unsafe.Pointer(snd))), Result(rc)
}

func (nativeLib) SystemCreateChannelGroup(sys Ref, name string) (Ref, Result) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var grp *C.FMOD_CHANNELGROUP
	rc := C.FMOD_System_CreateChannelGroup(sysPtr(sys), cName, &grp)
	return Ref(uintptr(unsafe.Pointer(grp))), Result(rc)
}

func (nativeLib) SystemPlaySound(sys, sound, group Ref, paused bool) (Ref, Result) {
	var ch *C.FMOD_CHANNEL
	rc := C.FMOD_System_PlaySound(sysPtr(sys), soundPtr(sound), groupPtr(group), cbool(paused), &ch)
	return Ref(uintptr(unsafe.Pointer(ch))), Result(rc)
}

func (nativeLib) SystemCreateGeometry(sys Ref, maxPolygons, maxVertices int32) (Ref, Result) {
	var geom *C.FMOD_GEOMETRY
	rc := C.FMOD_System_CreateGeometry(sysPtr(sys), C.int(maxPolygons), C.int(maxVertices), &geom)
	return Ref(uintptr(unsafe.Pointer(geom))), Result(rc)
}

func (nativeLib) SystemLoadGeometry(sys Ref, data []byte) (Ref, Result) {
	var geom *C.FMOD_GEOMETRY
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	rc := C.FMOD_System_LoadGeometry(sysPtr(sys), p, C.int(len(data)), &geom)
	return Ref(uintptr(unsafe.Pointer(geom))), Result(rc)
}

func (nativeLib) SoundRelease(sound Ref) Result {
	callbackReg.Delete(sound)
	return Result(C.FMOD_Sound_Release(soundPtr(sound)))
}

// soundNameCeiling bounds the probe buffer for name queries. The engine
// truncates without reporting the required length, so the seam recovers it
// from a bounded scratch read; names derive from paths and fit well inside
// this.
const soundNameCeiling = 1024

func (nativeLib) SoundGetName(sound Ref, buf []byte) (int32, Result) {
	scratch := (*C.char)(C.malloc(soundNameCeiling))
	if scratch == nil {
		return 0, ErrMemory
	}
	defer C.free(unsafe.Pointer(scratch))
	rc := C.FMOD_Sound_GetName(soundPtr(sound), scratch, soundNameCeiling)
	if Result(rc) != OK {
		return 0, Result(rc)
	}
	needed := int32(C.strlen(scratch))
	if int(needed) > len(buf) {
		return needed, ErrTruncated
	}
	copy(buf, C.GoBytes(unsafe.Pointer(scratch), C.int(needed)))
	return needed, OK
}

func (nativeLib) SoundGetOpenState(sound Ref) (int32, uint32, Result) {
	var state C.FMOD_OPENSTATE
	var percent C.uint
	var starving, diskBusy C.FMOD_BOOL
	rc := C.FMOD_Sound_GetOpenState(soundPtr(sound), &state, &percent, &starving, &diskBusy)
	return int32(state), uint32(percent), Result(rc)
}

func (nativeLib) ChannelGroupRelease(group Ref) Result {
	callbackReg.Delete(group)
	return Result(C.FMOD_ChannelGroup_Release(groupPtr(group)))
}

func (nativeLib) ControlStop(ctrl Ref) Result {
	return Result(C.FMOD_Channel_Stop(ctrlPtr(ctrl)))
}

func (nativeLib) ControlSetPaused(ctrl Ref, paused bool) Result {
	return Result(C.FMOD_Channel_SetPaused(ctrlPtr(ctrl), cbool(paused)))
}

func (nativeLib) ControlGetPaused(ctrl Ref) (bool, Result) {
	var b C.FMOD_BOOL
	rc := C.FMOD_Channel_GetPaused(ctrlPtr(ctrl), &b)
	return b != 0, Result(rc)
}

func (nativeLib) ControlSetVolume(ctrl Ref, volume float32) Result {
	return Result(C.FMOD_Channel_SetVolume(ctrlPtr(ctrl), C.float(volume)))
}

func (nativeLib) ControlGetVolume(ctrl Ref) (float32, Result) {
	var v C.float
	rc := C.FMOD_Channel_GetVolume(ctrlPtr(ctrl), &v)
	return float32(v), Result(rc)
}

func (nativeLib) ControlSetMute(ctrl Ref, mute bool) Result {
	return Result(C.FMOD_Channel_SetMute(ctrlPtr(ctrl), cbool(mute)))
}

func (nativeLib) ControlGetMute(ctrl Ref) (bool, Result) {
	var b C.FMOD_BOOL
	rc := C.FMOD_Channel_GetMute(ctrlPtr(ctrl), &b)
	return b != 0, Result(rc)
}

func (nativeLib) ControlSetPitch(ctrl Ref, pitch float32) Result {
	return Result(C.FMOD_Channel_SetPitch(ctrlPtr(ctrl), C.float(pitch)))
}

func (nativeLib) ControlGetPitch(ctrl Ref) (float32, Result) {
	var v C.float
	rc := C.FMOD_Channel_GetPitch(ctrlPtr(ctrl), &v)
	return float32(v), Result(rc)
}

func (nativeLib) ControlIsPlaying(ctrl Ref) (bool, Result) {
	var b C.FMOD_BOOL
	rc := C.FMOD_Channel_IsPlaying(ctrlPtr(ctrl), &b)
	return b != 0, Result(rc)
}

func (nativeLib) ControlSetCallback(ctrl Ref, cb ControlCallback) Result {
	if cb == nil {
		callbackReg.Delete(ctrl)
		return Result(C.FMOD_Channel_SetCallback(ctrlPtr(ctrl), nil))
	}
	callbackReg.Store(ctrl, cb)
	rc := C.FMOD_Channel_SetCallback(ctrlPtr(ctrl),
		C.FMOD_CHANNELCONTROL_CALLBACK(C.channelControlTrampoline))
	if Result(rc) != OK {
		callbackReg.Delete(ctrl)
	}
	return Result(rc)
}

func (nativeLib) ControlGetMixMatrix(ctrl Ref, matrix []float32, outChannels, inChannels *int32, inChannelHop int32) Result {
	if matrix == nil {
		var o, i C.int
		rc := C.FMOD_Channel_GetMixMatrix(ctrlPtr(ctrl), nil, &o, &i, 0)
		*outChannels, *inChannels = int32(o), int32(i)
		return Result(rc)
	}
	// Probe dimensions inside the same seam call so a concurrent topology
	// change is caught here instead of overrunning the caller's buffer.
	var o, i C.int
	if rc := C.FMOD_Channel_GetMixMatrix(ctrlPtr(ctrl), nil, &o, &i, 0); Result(rc) != OK {
		return Result(rc)
	}
	*outChannels, *inChannels = int32(o), int32(i)
	if int(o)*int(i) > len(matrix) {
		return ErrTruncated
	}
	rc := C.FMOD_Channel_GetMixMatrix(ctrlPtr(ctrl), (*C.float)(unsafe.Pointer(&matrix[0])), &o, &i, C.int(inChannelHop))
	*outChannels, *inChannels = int32(o), int32(i)
	return Result(rc)
}

func (nativeLib) ControlSetMixMatrix(ctrl Ref, matrix []float32, outChannels, inChannels, inChannelHop int32) Result {
	var p *C.float
	if len(matrix) > 0 {
		p = (*C.float)(unsafe.Pointer(&matrix[0]))
	}
	return Result(C.FMOD_Channel_SetMixMatrix(ctrlPtr(ctrl), p, C.int(outChannels), C.int(inChannels), C.int(inChannelHop)))
}

func (nativeLib) GeometryRelease(geom Ref) Result {
	return Result(C.FMOD_Geometry_Release(geomPtr(geom)))
}

func (nativeLib) GeometrySave(geom Ref, buf []byte) (int32, Result) {
	var size C.int
	if buf == nil {
		rc := C.FMOD_Geometry_Save(geomPtr(geom), nil, &size)
		return int32(size), Result(rc)
	}
	size = C.int(len(buf))
	rc := C.FMOD_Geometry_Save(geomPtr(geom), unsafe.Pointer(&buf[0]), &size)
	return int32(size), Result(rc)
}
