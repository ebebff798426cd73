package json

import "iter"

// DefaultChunkSize is used by Stream when size is not positive.
const DefaultChunkSize = 4096

// Stream returns the JSON encoding of v as a sequence of byte chunks
// of at most size bytes each, produced on demand. Concatenating every
// chunk yields exactly the Marshal output. Chunks alias one internal
// buffer and are only valid until the next chunk is yielded; copy if
// they must outlive the iteration.
func Stream(v Appender, size int) iter.Seq[[]byte] {
	if size <= 0 {
		size = DefaultChunkSize
	}
	return func(yield func([]byte) bool) {
		out := v.AppendJSON(nil)
		for len(out) > size {
			if !yield(out[:size]) {
				return
			}
			out = out[size:]
		}
		yield(out)
	}
}
