package sweep

import (
	"github.com/bsm/sweepline/geom"
)

// Kind discriminates the three event variants. Dispatch on it is
// exhaustive — there is no default case in the driver's switch.
type Kind uint8

const (
	// Begin marks a segment's lower endpoint.
	Begin Kind = iota
	// Intersection marks a discovered crossing between two segments.
	Intersection
	// End marks a segment's upper endpoint.
	End
)

func (k Kind) String() string {
	switch k {
	case Begin:
		return "begin"
	case End:
		return "end"
	case Intersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// Event is a tagged record combining a point with the segment(s) it
// concerns. A and B hold the sole segment for Begin/End (in A); for
// Intersection both are set with A < B, which is what makes dedup by
// (point, kind, segment pair) well-defined.
type Event struct {
	Point geom.Point
	Kind  Kind
	A, B  geom.SegmentID
}

// NewBegin builds the Begin event for a segment.
func NewBegin(s geom.Segment) *Event {
	return &Event{Point: s.Begin(), Kind: Begin, A: s.ID}
}

// NewEnd builds the End event for a segment.
func NewEnd(s geom.Segment) *Event {
	return &Event{Point: s.End(), Kind: End, A: s.ID}
}

// NewIntersection builds an Intersection event, canonicalizing the
// segment pair so (a, b) and (b, a) compare equal.
func NewIntersection(pt geom.Point, a, b geom.SegmentID) *Event {
	if b < a {
		a, b = b, a
	}
	return &Event{Point: pt, Kind: Intersection, A: a, B: b}
}

// Less orders events by point first, then breaks ties by kind and
// segment pair so that distinct events sharing a point remain distinct
// entries in the queue, while true duplicates compare equal.
func (e *Event) Less(o *Event) bool {
	if c := geom.Compare(e.Point, o.Point); c != 0 {
		return c < 0
	}
	if e.Kind != o.Kind {
		return e.Kind < o.Kind
	}
	if e.A != o.A {
		return e.A < o.A
	}
	return e.B < o.B
}
