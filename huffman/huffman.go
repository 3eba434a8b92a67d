// Package huffman implements a static Huffman coding container: a
// two-pass compressor that computes an optimal prefix code from observed
// byte frequencies and emits a self-describing file embedding the
// decoding tree followed by the bit-packed codeword stream, plus a
// symmetric decompressor.
package huffman

import "runtime"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	// ErrCorrupt is returned when the input stream cannot represent a
	// valid container: a compact-u64 length prefix greater than 8, or a
	// decode walk that reaches the Empty sentinel.
	ErrCorrupt error = Error("stream is corrupted")
)

// errRecover converts a panic carrying an error value into a returned
// error, while letting runtime errors and other unexpected panics
// continue to propagate. Every exported entry point that builds on a
// bitio.Writer installs this so the writer is still flushed (via a
// separate defer) even when an internal invariant panics.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
