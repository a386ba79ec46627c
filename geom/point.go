// Package geom contains the planar geometry primitives the sweep engine
// is built on: points, segments, the orientation predicate and the
// segment-segment intersection routine.
package geom

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Point is a location in the plane. It is immutable: every operation that
// would change coordinates returns a new value instead.
type Point = r2.Point

// Less reports whether p sorts strictly before q in the point total
// order: lexicographic on (X, Y), smaller X first, ties broken by
// smaller Y.
func Less(p, q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Equal reports bit-exact equality of both coordinates.
func Equal(p, q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Compare returns -1, 0 or 1 as p is less than, equal to, or greater than
// q under the point total order.
func Compare(p, q Point) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	default:
		return 0
	}
}

func fmtPoint(p Point) string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
