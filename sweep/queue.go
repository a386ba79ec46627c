package sweep

import (
	"github.com/bsm/sweepline/geom"
	"github.com/google/btree"
)

// queueDegree is the btree branching factor. The event queue rarely holds
// more than a few thousand entries even for large inputs, so
// a modest degree keeps node scans cache-friendly without needing tuning.
const queueDegree = 32

// EventQueue is the ordered set of pending events: pop-
// minimum, membership test and deduplicated insertion, backed by a
// google/btree so all three operations stay O(log n).
type EventQueue struct {
	tree *btree.BTreeG[*Event]
}

// NewEventQueue builds the initial queue for a batch of segments: one
// Begin and one End event per segment.
func NewEventQueue(segments []geom.Segment) *EventQueue {
	q := &EventQueue{
		tree: btree.NewG(queueDegree, func(a, b *Event) bool { return a.Less(b) }),
	}
	for _, s := range segments {
		q.tree.ReplaceOrInsert(NewBegin(s))
		q.tree.ReplaceOrInsert(NewEnd(s))
	}
	return q
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int { return q.tree.Len() }

// PopMin removes and returns the least event, or (nil, false) if the
// queue is empty.
func (q *EventQueue) PopMin() (*Event, bool) {
	return q.tree.DeleteMin()
}

// AddIntersection inserts an Intersection event for the crossing of lower
// and upper at pt, subject to two guards: the point must not lie
// strictly behind the current sweep position, and an equivalent event
// (same point, same segment pair) must not already be queued. Returns
// whether the event was newly inserted.
func (q *EventQueue) AddIntersection(pt geom.Point, sweepX float64, lower, upper geom.SegmentID) bool {
	if pt.X < sweepX {
		return false
	}

	ev := NewIntersection(pt, lower, upper)
	if q.tree.Has(ev) {
		return false
	}
	q.tree.ReplaceOrInsert(ev)
	return true
}
