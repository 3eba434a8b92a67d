package huffman

import (
	"bufio"
	"io"

	"github.com/NovaliX-Dev/huffman-format/bitio"
)

// countingWriter wraps an io.Writer and tracks how many bytes have
// passed through it, mirroring the original implementation's
// byte-counting sink used to report Pack's output size.
type countingWriter struct {
	w     io.Writer
	count int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.count += int64(n)
	return n, err
}

// Pack performs a two-pass static Huffman compression of everything
// readable from r, writing the self-describing container to w. It
// returns the number of bytes written to w.
//
// r must be rewindable (io.Seeker) because Pack scans it once to build a
// frequency table and rewinds before encoding. An empty input produces
// an empty output.
//
// Callers that already need the frequency table for their own purposes
// (logging entropy, say) should call BuildFreqTable and PackWithTable
// directly instead, so the input is scanned exactly once rather than
// once here and once more by the caller.
func Pack(r io.ReadSeeker, w io.Writer) (n int64, err error) {
	table, err := buildFreqTable(r)
	if err != nil {
		return 0, err
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	return PackWithTable(table, r, w)
}

// PackWithTable is the encode half of Pack for callers that already hold
// the input's frequency table (from a prior BuildFreqTable scan) and
// want to avoid Pack's own internal re-scan. r is read exactly once, in
// order, and need not be seekable.
func PackWithTable(table FreqTable, r io.Reader, w io.Writer) (n int64, err error) {
	defer errRecover(&err)

	root, codes, ok := buildTree(&table)
	if !ok {
		return 0, nil
	}

	bufReader := bufio.NewReader(r)

	cw := &countingWriter{w: w}
	bw := bitio.NewWriter(cw)
	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()

	if err := writeTree(bw, root); err != nil {
		return 0, err
	}
	if err := writeCompactUint64(bw, table.Total()); err != nil {
		return 0, err
	}

	var chunk [4096]byte
	for {
		rn, rerr := bufReader.Read(chunk[:])
		for _, b := range chunk[:rn] {
			code := codes[b]
			if err := code.write(bw); err != nil {
				return 0, err
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return 0, rerr
		}
	}

	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return cw.count, nil
}

// Unpack decodes a container written by Pack, streaming the decoded
// bytes to w. It returns the number of decoded bytes. r need not be
// seekable. An empty input (or one with no tree header at all) produces
// zero bytes decoded with no error.
func Unpack(r io.Reader, w io.Writer) (n int64, err error) {
	defer errRecover(&err)

	br := bitio.NewReader(bufio.NewReader(r))

	root, ok, err := readTreeRoot(br)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	total, err := readCompactUint64(br)
	if err != nil {
		return 0, err
	}

	var decoded uint64
	for decoded < total {
		cur := root
		for {
			switch cur.kind {
			case kindLeaf:
				if _, err := w.Write([]byte{cur.leaf}); err != nil {
					return int64(decoded), err
				}
				decoded++
			case kindPair:
				bit, err := br.ReadBits(1)
				if err != nil {
					return int64(decoded), err
				}
				if bit == rightBit {
					cur = cur.right
				} else {
					cur = cur.left
				}
				continue
			case kindEmpty:
				return int64(decoded), ErrCorrupt
			}
			break
		}
	}

	return int64(decoded), nil
}
