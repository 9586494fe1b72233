package fmod

import "github.com/fmod-go/fmod-go/internal/bindings"

// MixMatrix is a dense row-major mapping of output channels to input
// channels: Levels[out*In+in] is the level of input channel in routed to
// output channel out.
type MixMatrix struct {
	Out    int
	In     int
	Levels []float32
}

// Level returns the routing level for one output/input channel pair.
func (m *MixMatrix) Level(out, in int) float32 {
	return m.Levels[out*m.In+in]
}

// MixMatrix retrieves the object's current mix matrix using the engine's
// two-phase protocol: a dimension query, then a fill into a caller-owned
// buffer. The engine can mutate concurrently between the two calls, so the
// fill re-reports dimensions; any disagreement with the sizes the buffer
// was allocated for fails with ErrMatrixShape and no partial data escapes.
func (c *ChannelControl) MixMatrix() (*MixMatrix, error) {
	const op = "ChannelControl.MixMatrix"

	var out, in int32
	if rc := c.lib.ControlGetMixMatrix(c.ref, nil, &out, &in, 0); rc != bindings.OK {
		return nil, resultErr(op, rc)
	}
	if out == 0 || in == 0 {
		return &MixMatrix{Out: int(out), In: int(in)}, nil
	}

	levels := make([]float32, out*in)
	fillOut, fillIn := out, in
	rc := c.lib.ControlGetMixMatrix(c.ref, levels, &fillOut, &fillIn, in)
	if rc == bindings.ErrTruncated {
		// The matrix grew between the query and the fill; the seam refused
		// to write rather than overrun the buffer.
		return nil, &Error{Op: op, Code: int32(rc), kind: ErrMatrixShape}
	}
	if rc != bindings.OK {
		return nil, resultErr(op, rc)
	}
	if fillOut != out || fillIn != in {
		return nil, &Error{Op: op, Code: int32(bindings.ErrInvalidParam), kind: ErrMatrixShape}
	}
	return &MixMatrix{Out: int(out), In: int(in), Levels: levels}, nil
}

// SetMixMatrix replaces the object's mix matrix. The payload length must
// match the stated dimensions; a mismatch is rejected before any native
// call is made.
func (c *ChannelControl) SetMixMatrix(m *MixMatrix) error {
	const op = "ChannelControl.SetMixMatrix"
	if m == nil {
		return resultErr(op, c.lib.ControlSetMixMatrix(c.ref, nil, 0, 0, 0))
	}
	if len(m.Levels) != m.Out*m.In {
		return resultErr(op, bindings.ErrInvalidParam)
	}
	return resultErr(op, c.lib.ControlSetMixMatrix(c.ref, m.Levels, int32(m.Out), int32(m.In), int32(m.In)))
}
