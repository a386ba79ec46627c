package resultstore

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/golang/snappy"

	"github.com/bsm/sweepline/geom"
)

// Writer serializes a stream of point-keyed entries, in strictly
// ascending key order, into a resultstore block file.
type Writer struct {
	w io.Writer
	o Options

	block blockInfo // the current block info
	blen  int       // the number of entries in the current block
	soffs []int     // section offsets in the current block

	buf []byte // plain buffer
	snp []byte // snappy buffer
	tmp []byte // scratch buffer

	index []blockInfo
}

// NewWriter wraps a writer and returns a resultstore Writer.
func NewWriter(w io.Writer, o *Options) *Writer {
	opts := o.norm()

	return &Writer{
		w:   w,
		o:   *opts,
		tmp: make([]byte, 4*binary.MaxVarintLen64),
	}
}

// Append appends a point-keyed entry to the store. Points must be
// appended in strictly ascending geom.Less order.
func (w *Writer) Append(key geom.Point, data []byte) error {
	if w.tmp == nil {
		return errClosed
	}
	if !validKey(key) {
		return errNonFinitePoint
	}
	if w.blen > 0 && !geom.Less(w.block.MaxPoint, key) {
		return fmt.Errorf("resultstore: attempted an out-of-order append, %v must be > %v", key, w.block.MaxPoint)
	}

	if len(w.buf) != 0 && len(w.buf)+len(data)+4*binary.MaxVarintLen64 > w.o.BlockSize {
		if err := w.flush(); err != nil {
			return err
		}
	}

	newSection := w.blen%w.o.SectionSize == 0
	if newSection {
		w.soffs = append(w.soffs, len(w.buf))
	}

	xk := orderKey(key.X)
	if !newSection {
		xk -= orderKey(w.block.MaxPoint.X) // apply delta-encoding
	}
	yk := orderKey(key.Y)

	n := binary.PutUvarint(w.tmp[0:], xk)
	n += binary.PutUvarint(w.tmp[n:], yk)
	n += binary.PutUvarint(w.tmp[n:], uint64(len(data)))
	w.buf = append(w.buf, w.tmp[:n]...)
	w.buf = append(w.buf, data...)

	w.blen++
	w.block.MaxPoint = key

	return nil
}

// Close flushes any pending block and writes the store index and footer.
func (w *Writer) Close() error {
	if w.tmp == nil {
		return errClosed
	}
	if err := w.flush(); err != nil {
		return err
	}

	indexOffset := w.block.Offset
	if err := w.writeIndex(); err != nil {
		return err
	}

	if err := w.writeFooter(indexOffset); err != nil {
		return err
	}
	w.tmp = nil
	return nil
}

func (w *Writer) writeIndex() error {
	var prev blockInfo

	for i, ent := range w.index {
		xk := orderKey(ent.MaxPoint.X)
		yk := orderKey(ent.MaxPoint.Y)
		off := ent.Offset
		if i > 0 { // delta-encode
			xk -= orderKey(prev.MaxPoint.X)
			yk -= orderKey(prev.MaxPoint.Y)
			off -= prev.Offset
		}
		prev = ent

		n := binary.PutUvarint(w.tmp[0:], xk)
		n += binary.PutUvarint(w.tmp[n:], yk)
		n += binary.PutUvarint(w.tmp[n:], uint64(off))

		if err := w.writeRaw(w.tmp[:n]); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeFooter(indexOffset int64) error {
	binary.LittleEndian.PutUint64(w.tmp[0:], uint64(indexOffset))
	if err := w.writeRaw(w.tmp[:8]); err != nil {
		return err
	}
	return w.writeRaw(magic)
}

func (w *Writer) writeRaw(p []byte) error {
	n, err := w.w.Write(p)
	w.block.Offset += int64(n)
	return err
}

func (w *Writer) flush() error {
	if len(w.buf) == 0 {
		return nil
	}

	for _, o := range w.soffs {
		binary.LittleEndian.PutUint32(w.tmp, uint32(o))
		w.buf = append(w.buf, w.tmp[:4]...)
	}
	binary.LittleEndian.PutUint32(w.tmp, uint32(len(w.soffs)))
	w.buf = append(w.buf, w.tmp[:4]...)

	var block []byte
	switch w.o.Compression {
	case SnappyCompression:
		w.snp = snappy.Encode(w.snp[:cap(w.snp)], w.buf)
		if len(w.snp) < len(w.buf)-len(w.buf)/8 {
			block = append(w.snp, blockSnappyCompression)
		} else {
			block = append(w.buf, blockNoCompression)
		}
	default:
		block = append(w.buf, blockNoCompression)
	}

	w.index = append(w.index, w.block)
	w.buf = w.buf[:0]
	w.soffs = w.soffs[:0]
	w.blen = 0

	return w.writeRaw(block)
}
