package fmod

import "github.com/fmod-go/fmod-go/internal/bindings"

// initialBufferSize is the first-call capacity for growable queries. Most
// values fit; anything longer costs exactly one extra native call.
const initialBufferSize = 256

// growableQuery converts a two-call "query size, then fill" native call
// into a single operation. q fills buf and reports the full byte count the
// value requires; ErrTruncated means buf was too small. On truncation the
// buffer is regrown to exactly the reported size and q retried once. A
// truncated result never escapes: if the value grows again between the two
// calls the second truncation is returned as an error.
func growableQuery(op string, initial int, q func(buf []byte) (int32, bindings.Result)) ([]byte, error) {
	buf := make([]byte, initial)
	needed, rc := q(buf)
	if rc == bindings.ErrTruncated {
		buf = make([]byte, needed)
		needed, rc = q(buf)
	}
	if rc != bindings.OK {
		return nil, resultErr(op, rc)
	}
	return buf[:needed], nil
}
