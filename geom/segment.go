package geom

import "math"

// SegmentID is a stable handle for a segment: its index into the slice
// owned by the caller (typically the sweep driver). It is never a
// pointer, so the status and event queue can compare identity with plain
// integer equality.
type SegmentID int

// Segment is an unordered pair of endpoints {P, Q} with P strictly less
// than Q under the point total order (the lower endpoint is Begin, the
// upper is End). Segments are never vertical, never zero-length and
// carry an ID distinct from their geometric value.
type Segment struct {
	ID   SegmentID
	P, Q Point // P = Begin, Q = End; P < Q
}

// NewSegment builds a Segment from two raw endpoints, reordering them so
// that Begin < End, and validates the segment invariants. It returns an
// *InvariantError if the endpoints are equal, non-finite, or would make
// the segment vertical.
func NewSegment(id SegmentID, a, b Point) (Segment, error) {
	if !finite(a) || !finite(b) {
		return Segment{}, &InvariantError{Kind: NonFinite, Segments: []SegmentID{id}}
	}
	if Equal(a, b) {
		return Segment{}, &InvariantError{Kind: ZeroLength, Segments: []SegmentID{id}}
	}
	if Less(b, a) {
		a, b = b, a
	}
	if a.X == b.X {
		return Segment{}, &InvariantError{Kind: Vertical, Segments: []SegmentID{id}}
	}
	return Segment{ID: id, P: a, Q: b}, nil
}

// Begin returns the lower endpoint.
func (s Segment) Begin() Point { return s.P }

// End returns the upper endpoint.
func (s Segment) End() Point { return s.Q }

// String renders the segment as "(x1, y1)-(x2, y2)".
func (s Segment) String() string {
	return fmtPoint(s.P) + "-" + fmtPoint(s.Q)
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
