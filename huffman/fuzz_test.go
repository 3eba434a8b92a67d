package huffman

import (
	"bytes"
	"testing"
)

func FuzzPackUnpack(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0x00, 0x01})
	f.Add([]byte("the quick brown fox jumps over the lazy dog"))
	f.Add(bytes.Repeat([]byte{0xFF}, 64))

	f.Fuzz(func(t *testing.T, input []byte) {
		var packed bytes.Buffer
		if _, err := Pack(bytes.NewReader(input), &packed); err != nil {
			t.Fatalf("Pack returned an error for valid input: %v", err)
		}

		var unpacked bytes.Buffer
		if _, err := Unpack(bytes.NewReader(packed.Bytes()), &unpacked); err != nil {
			t.Fatalf("Unpack failed on a stream Pack just produced: %v", err)
		}

		if !bytes.Equal(input, unpacked.Bytes()) {
			t.Fatalf("round trip mismatch: got %q, want %q", unpacked.Bytes(), input)
		}
	})
}

// FuzzUnpack asserts that the decoder only ever returns an error on
// arbitrary bytes, never panics, regardless of how malformed the input
// is.
func FuzzUnpack(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	f.Add([]byte{1, 9, 0, 0, 0, 0, 0, 0, 0, 0})

	f.Fuzz(func(t *testing.T, input []byte) {
		var out bytes.Buffer
		_, _ = Unpack(bytes.NewReader(input), &out)
	})
}
