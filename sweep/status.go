package sweep

import (
	"sort"

	"github.com/bsm/sweepline/geom"
)

type statusEntry struct {
	Segment geom.Segment
	KeyY    float64
}

// Status is the sweep-line status: the segments currently
// crossing the sweep line, sorted ascending by their Y value at the
// current sweep X. It is a plain slice rather than a balanced tree,
// because the contract calls for an *adaptive* sort — cheap on the
// near-sorted input produced between two consecutive events — not
// O(log n) worst-case lookups.
type Status struct {
	entries []statusEntry
	index   map[geom.SegmentID]int
}

// NewStatus returns an empty status.
func NewStatus() *Status {
	return &Status{index: make(map[geom.SegmentID]int)}
}

// Len returns the number of active segments.
func (s *Status) Len() int { return len(s.entries) }

// Insert adds segment to the status with the given initial key.
func (s *Status) Insert(seg geom.Segment, y float64) {
	pos := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].KeyY >= y })
	s.entries = append(s.entries, statusEntry{})
	copy(s.entries[pos+1:], s.entries[pos:])
	s.entries[pos] = statusEntry{Segment: seg, KeyY: y}
	s.reindexFrom(pos)
}

// Remove deletes the unique entry for id, if present.
func (s *Status) Remove(id geom.SegmentID) {
	pos, ok := s.index[id]
	if !ok {
		return
	}
	copy(s.entries[pos:], s.entries[pos+1:])
	s.entries = s.entries[:len(s.entries)-1]
	delete(s.index, id)
	s.reindexFrom(pos)
}

// Neighbors returns the segments immediately above and below id, or nil
// at the boundaries. The returned pointers alias Status-owned storage
// and are only valid until the next mutation.
func (s *Status) Neighbors(id geom.SegmentID) (above, below *geom.Segment) {
	pos, ok := s.index[id]
	if !ok {
		return nil, nil
	}
	if pos+1 < len(s.entries) {
		above = &s.entries[pos+1].Segment
	}
	if pos > 0 {
		below = &s.entries[pos-1].Segment
	}
	return above, below
}

// Segment returns the segment stored for id.
func (s *Status) Segment(id geom.SegmentID) (geom.Segment, bool) {
	pos, ok := s.index[id]
	if !ok {
		return geom.Segment{}, false
	}
	return s.entries[pos].Segment, true
}

// Update refreshes every entry's key to its Y value at x and restores the
// sort order.
func (s *Status) Update(x float64) {
	for i := range s.entries {
		s.entries[i].KeyY = geom.YAt(s.entries[i].Segment, x)
	}
	s.adaptiveSort()
}

// SwapAndGetNewNeighbors exchanges the ordering positions of two segments
// known to have just crossed at crossing. It re-keys both at
// crossing.X+eps — past the crossing, where their relative order is
// unambiguous — and lets the adaptive sort settle them, rather than
// swapping their slots directly, so the rest of the status stays
// consistent if either segment wasn't already adjacent to the other.
//
// ok is false if either a or b is no longer active (one of them was
// already removed by an End event processed at the same point); the
// caller should then skip scheduling any further checks for this event.
func (s *Status) SwapAndGetNewNeighbors(a, b geom.SegmentID, crossing geom.Point, eps float64) (bigger, smaller geom.SegmentID, biggerAbove, smallerBelow *geom.Segment, ok bool) {
	posA, okA := s.index[a]
	posB, okB := s.index[b]
	if !okA || !okB {
		return 0, 0, nil, nil, false
	}

	xEps := crossing.X + eps
	s.entries[posA].KeyY = geom.YAt(s.entries[posA].Segment, xEps)
	s.entries[posB].KeyY = geom.YAt(s.entries[posB].Segment, xEps)
	s.adaptiveSort()

	posA, posB = s.index[a], s.index[b]
	bigger, smaller = a, b
	biggerPos, smallerPos := posA, posB
	if posB > posA {
		bigger, smaller = b, a
		biggerPos, smallerPos = posB, posA
	}

	if biggerPos+1 < len(s.entries) {
		biggerAbove = &s.entries[biggerPos+1].Segment
	}
	if smallerPos > 0 {
		smallerBelow = &s.entries[smallerPos-1].Segment
	}
	return bigger, smaller, biggerAbove, smallerBelow, true
}

// adaptiveSort is a binary-insertion sort: each out-of-place entry is
// located with a binary search over the already-sorted prefix and shifted
// into place. On input where only a handful of entries moved since the
// last call — the norm between two consecutive sweep events — this scans
// the slice once and shifts almost nothing.
func (s *Status) adaptiveSort() {
	minMoved := len(s.entries)
	for i := 1; i < len(s.entries); i++ {
		cur := s.entries[i]
		if cur.KeyY >= s.entries[i-1].KeyY {
			continue
		}
		pos := sort.Search(i, func(j int) bool { return s.entries[j].KeyY >= cur.KeyY })
		copy(s.entries[pos+1:i+1], s.entries[pos:i])
		s.entries[pos] = cur
		if pos < minMoved {
			minMoved = pos
		}
	}
	if minMoved < len(s.entries) {
		s.reindexFrom(minMoved)
	}
}

func (s *Status) reindexFrom(from int) {
	for i := from; i < len(s.entries); i++ {
		s.index[s.entries[i].Segment.ID] = i
	}
}
