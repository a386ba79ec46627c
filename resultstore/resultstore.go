package resultstore

import (
	"errors"
	"math"
	"sync"

	"github.com/bsm/sweepline/geom"
)

const (
	KiB = 1024
	MiB = 1024 * KiB
)

var magic = []byte{160, 68, 149, 151, 154, 60, 56, 157}

var (
	errClosed             = errors.New("resultstore: is closed")
	errBadMagic           = errors.New("resultstore: bad magic byte sequence")
	errInvalidCompression = errors.New("resultstore: invalid compression setting")
	errNonFinitePoint     = errors.New("resultstore: point has a non-finite coordinate")
)

const (
	blockNoCompression     = 0
	blockSnappyCompression = 1
)

// --------------------------------------------------------------------

type Compression byte

func (c Compression) isValid() bool {
	return c >= NoCompression && c <= unknownCompression
}

const (
	NoCompression Compression = iota + 1
	SnappyCompression
	unknownCompression
)

type Options struct {
	// The size of a block. Must be >= 1KiB. Default: 16KiB.
	BlockSize int

	// The maximum number of entries per section. Must be > 0. Default: 16.
	SectionSize int

	// The compression algorithm to use. Default: SnappyCompression.
	Compression Compression
}

func (o *Options) norm() *Options {
	var oo Options
	if o != nil {
		oo = *o
	}

	if oo.BlockSize < 1 {
		oo.BlockSize = 16 * KiB
	}
	if oo.SectionSize < 1 {
		oo.SectionSize = 16
	}
	if !oo.Compression.isValid() {
		oo.Compression = SnappyCompression
	}
	return &oo
}

// --------------------------------------------------------------------

type blockInfo struct {
	MaxPoint geom.Point // maximum point key in the block
	Offset   int64      // block offset position
}

// --------------------------------------------------------------------

// orderKey maps a float64 to a uint64 that preserves the float's
// numeric ordering, so consecutive keys can be varint delta-encoded.
func orderKey(f float64) uint64 {
	b := math.Float64bits(f)
	if b&(1<<63) != 0 {
		return ^b
	}
	return b | (1 << 63)
}

// keyOrder is the inverse of orderKey.
func keyOrder(u uint64) float64 {
	if u&(1<<63) != 0 {
		return math.Float64frombits(u &^ (1 << 63))
	}
	return math.Float64frombits(^u)
}

func validKey(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// --------------------------------------------------------------------

var bufPool sync.Pool

func fetchBuffer(sz int) []byte {
	if v := bufPool.Get(); v != nil {
		if p := v.([]byte); sz <= cap(p) {
			return p[:sz]
		}
	}
	return make([]byte, sz)
}

func releaseBuffer(p []byte) {
	if cap(p) != 0 {
		bufPool.Put(p)
	}
}
