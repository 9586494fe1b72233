//go:build !fmod || !cgo

package bindings

// Native reports that the engine is unavailable in this build. The real
// implementation is selected with the "fmod" build tag and requires cgo plus
// the vendor SDK on the link path.
func Native() (Lib, error) {
	return nil, ErrNotBuilt
}
