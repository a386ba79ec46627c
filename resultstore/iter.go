package resultstore

import (
	"encoding/binary"
	"sort"

	"github.com/bsm/sweepline/geom"
)

// Iterator walks the entries of a resultstore block, in ascending key
// order, section by section.
type Iterator struct {
	parent   *Reader
	blockNum int   // block number, -1 before the first block
	sectNum  int   // section number, -1 before the first section
	sections []int // section offsets within buf

	buf    []byte // block buffer
	bufOff int    // number of buffer bytes read
	xkey   uint64 // running absolute X key for the current section

	point geom.Point
	value []byte
	err   error
}

// Next advances the cursor to the next entry.
func (i *Iterator) Next() bool {
	if i.err != nil || i.bufOff >= len(i.buf) {
		return false
	}

	if nsn := i.sectNum + 1; nsn < len(i.sections) && i.sections[nsn] == i.bufOff {
		i.xkey = 0
		i.sectNum = nsn
	}

	dx, n := binary.Uvarint(i.buf[i.bufOff:])
	i.bufOff += n
	i.xkey += dx

	yk, n := binary.Uvarint(i.buf[i.bufOff:])
	i.bufOff += n

	vln, n := binary.Uvarint(i.buf[i.bufOff:])
	i.bufOff += n

	if i.bufOff+int(vln) > len(i.buf) {
		return false
	}
	i.value = i.buf[i.bufOff : i.bufOff+int(vln)]
	i.bufOff += int(vln)

	i.point = geom.Point{X: keyOrder(i.xkey), Y: keyOrder(yk)}
	return true
}

// SeekSection advances the cursor to the start of the section that may
// contain key, based on the section's leading (absolute) X coordinate.
func (i *Iterator) SeekSection(key geom.Point) bool {
	if len(i.sections) == 0 {
		return false
	}

	pos := sort.Search(len(i.sections), func(n int) bool {
		off := i.sections[n]
		firstX, _ := binary.Uvarint(i.buf[off:])
		return keyOrder(firstX) > key.X
	}) - 1
	if pos < 0 {
		pos = 0
	}

	return i.advanceSection(pos)
}

// Seek advances the cursor to the first entry whose key is >= key.
func (i *Iterator) Seek(key geom.Point) bool {
	if !i.SeekSection(key) {
		return false
	}
	for i.Next() {
		if !geom.Less(i.point, key) {
			return true
		}
	}
	return false
}

// NextBlock jumps to the next block, returns true if successful.
func (i *Iterator) NextBlock() bool {
	return i.advanceBlock(i.blockNum + 1)
}

// PrevBlock jumps to the previous block, returns true if successful.
func (i *Iterator) PrevBlock() bool {
	return i.advanceBlock(i.blockNum - 1)
}

func (i *Iterator) advanceBlock(blockNum int) bool {
	if i.err != nil || blockNum < 0 || blockNum >= len(i.parent.index) {
		return false
	}

	j, err := i.parent.readBlock(blockNum)
	if err != nil {
		i.err = err
		return false
	}

	i.Release()
	*i = *j
	return true
}

// advanceSection repositions the cursor to the start of section num.
func (i *Iterator) advanceSection(num int) bool {
	if num < 0 || num >= len(i.sections) {
		return false
	}

	i.xkey = 0
	i.bufOff = i.sections[num]
	i.sectNum = num - 1
	return true
}

// Point returns the key of the current entry.
func (i *Iterator) Point() geom.Point {
	return i.point
}

// Value returns the value of the current entry. Values are temporary
// buffers and must be copied if used beyond the next Next() or
// Release() call.
func (i *Iterator) Value() []byte {
	return i.value
}

// Err returns any error encountered while iterating.
func (i *Iterator) Err() error {
	return i.err
}

// Release releases the iterator's buffer. It must not be used once
// this method is called.
func (i *Iterator) Release() {
	releaseBuffer(i.buf)
}
