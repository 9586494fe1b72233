package fmod

import "github.com/fmod-go/fmod-go/internal/bindings"

// Geometry is an owned occlusion-geometry object. Its serialized form is a
// blob produced and consumed entirely inside the engine; this layer never
// interprets the bytes.
type Geometry struct {
	lib bindings.Lib
	h   *handle
}

// Save serializes the geometry: a size query, then a fill into an exactly
// sized buffer. If the reported size changes between the two calls the
// truncation surfaces as an error rather than a short blob.
func (g *Geometry) Save() ([]byte, error) {
	const op = "Geometry.Save"
	ref, err := g.h.live(op)
	if err != nil {
		return nil, err
	}
	needed, rc := g.lib.GeometrySave(ref, nil)
	if rc != bindings.OK {
		return nil, resultErr(op, rc)
	}
	if needed == 0 {
		return nil, nil
	}
	buf := make([]byte, needed)
	filled, rc := g.lib.GeometrySave(ref, buf)
	if rc != bindings.OK {
		return nil, resultErr(op, rc)
	}
	return buf[:filled], nil
}

// Release destroys the native geometry. Failures are logged and swallowed.
// Idempotent.
func (g *Geometry) Release() {
	g.h.release()
}

// Leak transfers the geometry out of ownership tracking and returns the
// raw native pointer value; no release will ever be issued for it.
func (g *Geometry) Leak() uintptr {
	return uintptr(g.h.leak())
}
