package huffman

import "github.com/NovaliX-Dev/huffman-format/bitio"

// maxCompactBytes is the largest number of payload bytes a compact-u64
// value can carry (all 8 bytes of a uint64).
const maxCompactBytes = 8

// requiredBytes returns the smallest k in [1,8] such that v fits in k
// little-endian bytes.
func requiredBytes(v uint64) uint8 {
	n := uint8(1)
	for {
		max := uint64(0)
		if shift := uint(n) * 8; shift < 64 {
			max = (uint64(1) << shift) - 1
		} else {
			max = ^uint64(0)
		}
		if max >= v {
			return n
		}
		n++
	}
}

// writeCompactUint64 writes v as a length-prefixed little-endian
// variable-width integer: one byte k giving the number of value bytes
// that follow, then k little-endian bytes of v. The smallest k that fits
// v is chosen; zero encodes as k=1 followed by a single zero byte.
func writeCompactUint64(w *bitio.Writer, v uint64) error {
	k := requiredBytes(v)
	if err := w.WriteByte(k); err != nil {
		return err
	}

	var buf [maxCompactBytes]byte
	for i := range buf {
		buf[i] = byte(v >> (8 * uint(i)))
	}
	return w.WriteBytes(buf[:k], -1)
}

// readCompactUint64 reads a value written by writeCompactUint64. It
// returns ErrCorrupt if the length byte exceeds 8.
func readCompactUint64(r *bitio.Reader) (uint64, error) {
	k, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if k > maxCompactBytes {
		return 0, ErrCorrupt
	}

	var buf [maxCompactBytes]byte
	if err := r.ReadBytes(buf[:k], -1); err != nil {
		return 0, err
	}

	var v uint64
	for i := uint8(0); i < k; i++ {
		v |= uint64(buf[i]) << (8 * uint(i))
	}
	return v, nil
}
