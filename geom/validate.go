package geom

// ValidateDistinctEndpoints checks that no two distinct segments are
// exact duplicates of one another (both endpoints coincide). NewSegment
// already rejects a single segment's own invariants (vertical,
// zero-length, non-finite); this catches the cross-segment case.
//
// A single shared endpoint between two otherwise-distinct segments is
// not rejected here — that is a legitimate T-junction, and it flows
// through Intersect's own boundary-touch handling to produce the
// correct single intersection point.
func ValidateDistinctEndpoints(segments []Segment) error {
	type key struct{ P, Q Point }
	owner := make(map[key]SegmentID, len(segments))
	for _, s := range segments {
		k := key{s.P, s.Q}
		if prev, ok := owner[k]; ok && prev != s.ID {
			return &InvariantError{Kind: DuplicatePoint, Segments: []SegmentID{prev, s.ID}}
		}
		owner[k] = s.ID
	}
	return nil
}
