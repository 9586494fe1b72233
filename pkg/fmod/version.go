package fmod

import "fmt"

// Version is the packed engine header version this wrapper was written
// against: 0xaaaabbcc, binary-coded decimal major.minor.patch. The runtime
// library must report at least this version or system creation fails with a
// header-mismatch error.
const Version uint32 = 0x00020221

// VersionString decodes a packed BCD version word. The BCD encoding means
// each nibble is a decimal digit, so hexadecimal formatting prints it
// directly.
func VersionString(v uint32) string {
	return fmt.Sprintf("%x.%02x.%02x", v>>16, (v>>8)&0xff, v&0xff)
}
