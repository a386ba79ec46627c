package resultstore

import (
	"bytes"
	"encoding/binary"
	"io"
	"sort"

	"github.com/golang/snappy"

	"github.com/bsm/sweepline/geom"
)

// Reader provides random access to a resultstore block file.
type Reader struct {
	r io.ReaderAt

	index       []blockInfo
	indexOffset int64
}

// NewReader opens a reader over a store of the given byte size.
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	tmp := make([]byte, 16+3*binary.MaxVarintLen64)

	footerOffset := size - 16
	if _, err := r.ReadAt(tmp[:16], footerOffset); err != nil {
		return nil, err
	}

	if !bytes.Equal(tmp[8:16], magic) {
		return nil, errBadMagic
	}
	indexOffset := int64(binary.LittleEndian.Uint64(tmp[:8]))

	var index []blockInfo
	var info blockInfo
	var xk, yk uint64

	for pos := indexOffset; pos < footerOffset; {
		tmp = tmp[:3*binary.MaxVarintLen64]
		if x := footerOffset - pos; x < int64(len(tmp)) {
			tmp = tmp[:int(x)]
		}

		if _, err := r.ReadAt(tmp, pos); err != nil {
			return nil, err
		}

		dx, n := binary.Uvarint(tmp[0:])
		pos += int64(n)
		off := tmp[n:]

		dy, n2 := binary.Uvarint(off)
		pos += int64(n2)
		off = off[n2:]

		doff, n3 := binary.Uvarint(off)
		pos += int64(n3)

		xk += dx
		yk += dy
		info.MaxPoint = geom.Point{X: keyOrder(xk), Y: keyOrder(yk)}
		info.Offset += int64(doff)
		index = append(index, info)
	}

	return &Reader{
		r:           r,
		index:       index,
		indexOffset: indexOffset,
	}, nil
}

// NumBlocks returns the number of stored blocks.
func (r *Reader) NumBlocks() int {
	return len(r.index)
}

// FindBlock returns an iterator positioned at the start of the block
// that may contain key, or an exhausted iterator if key is past the
// end of the store.
func (r *Reader) FindBlock(key geom.Point) (*Iterator, error) {
	if !validKey(key) {
		return nil, errNonFinitePoint
	}

	if len(r.index) == 0 {
		return &Iterator{parent: r, blockNum: -1}, nil
	}

	blockPos := sort.Search(len(r.index), func(i int) bool {
		return !geom.Less(r.index[i].MaxPoint, key)
	})
	if blockPos >= len(r.index) {
		return &Iterator{parent: r, blockNum: len(r.index)}, nil
	}
	return r.readBlock(blockPos)
}

func (r *Reader) readBlock(blockNo int) (*Iterator, error) {
	min := r.index[blockNo].Offset
	max := r.indexOffset
	if next := blockNo + 1; next < len(r.index) {
		max = r.index[next].Offset
	}

	raw := fetchBuffer(int(max - min))
	if _, err := r.r.ReadAt(raw, min); err != nil {
		releaseBuffer(raw)
		return nil, err
	}

	var buf []byte
	switch maxPos := len(raw) - 1; raw[maxPos] {
	case blockNoCompression:
		buf = raw[:maxPos]
	case blockSnappyCompression:
		defer releaseBuffer(raw)

		sz, err := snappy.DecodedLen(raw[:maxPos])
		if err != nil {
			return nil, err
		}

		pln := fetchBuffer(sz)
		res, err := snappy.Decode(pln, raw[:maxPos])
		if err != nil {
			releaseBuffer(pln)
			return nil, err
		}
		buf = res
	default:
		releaseBuffer(raw)
		return nil, errInvalidCompression
	}

	nsec := int(binary.LittleEndian.Uint32(buf[len(buf)-4:]))
	idxStart := len(buf) - 4 - 4*nsec
	sections := make([]int, nsec)
	for i := 0; i < nsec; i++ {
		sections[i] = int(binary.LittleEndian.Uint32(buf[idxStart+4*i:]))
	}

	return &Iterator{
		parent:   r,
		blockNum: blockNo,
		sections: sections,
		buf:      buf[:idxStart],
		sectNum:  -1,
	}, nil
}
