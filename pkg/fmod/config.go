package fmod

// InitFlags configure System.Init. Values are forwarded verbatim to the
// engine.
type InitFlags uint32

const (
	InitNormal             InitFlags = 0x00000000
	InitStreamFromUpdate   InitFlags = 0x00000001
	InitMixFromUpdate      InitFlags = 0x00000002
	Init3DRightHanded      InitFlags = 0x00000004
	InitVol0BecomesVirtual InitFlags = 0x00000020
	InitProfileEnable      InitFlags = 0x00010000
)

// Mode configures sound creation and playback behavior. Values are
// forwarded verbatim to the engine.
type Mode uint32

const (
	ModeDefault      Mode = 0x00000000
	ModeLoopOff      Mode = 0x00000001
	ModeLoopNormal   Mode = 0x00000002
	Mode2D           Mode = 0x00000008
	Mode3D           Mode = 0x00000010
	ModeCreateStream Mode = 0x00000080
	// ModeNonBlocking opens the sound in the background; creation returns
	// immediately and Sound.OpenState reports progress until the sound is
	// ready.
	ModeNonBlocking Mode = 0x00010000
)
