package geom

import "math"

// CCW returns the signed twice-area of the triangle (a, b, c): positive
// for counter-clockwise, negative for clockwise, zero for collinear.
func CCW(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// YAt returns the Y coordinate of the infinite line through s's endpoints
// at abscissa x, by linear interpolation. It is defined everywhere
// because no segment is vertical (P.X != Q.X is a construction
// invariant).
func YAt(s Segment, x float64) float64 {
	t := (x - s.P.X) / (s.Q.X - s.P.X)
	return s.P.Y + t*(s.Q.Y-s.P.Y)
}

// Intersect decides whether two segments properly cross and, if so,
// returns the crossing point. A boundary touch — one CCW test exactly
// zero, the other not — counts as an intersection. Collinear, overlapping
// input is a data invariant violation reported as *InvariantError, not a
// "no intersection" result.
func Intersect(s1, s2 Segment) (Point, bool, error) {
	d1 := CCW(s1.P, s1.Q, s2.P)
	d2 := CCW(s1.P, s1.Q, s2.Q)
	if d1*d2 > 0 {
		return Point{}, false, nil
	}

	d3 := CCW(s2.P, s2.Q, s1.P)
	d4 := CCW(s2.P, s2.Q, s1.Q)
	if d3*d4 > 0 {
		return Point{}, false, nil
	}

	if d1 == 0 && d2 == 0 && d3 == 0 && d4 == 0 {
		// Collinear but with disjoint extents: the segments share a line
		// and never meet, so there is no intersection to report.
		if Less(s1.Q, s2.P) || Less(s2.Q, s1.P) {
			return Point{}, false, nil
		}
		return Point{}, false, &InvariantError{Kind: Collinear, Segments: []SegmentID{s1.ID, s2.ID}}
	}

	// d1 (or d2) zero means s2.P (or s2.Q) already lies exactly on the
	// line through s1 — the ratio parameterization below would otherwise
	// divide by zero.
	if d1 == 0 {
		return s2.P, true, nil
	}
	if d2 == 0 {
		return s2.Q, true, nil
	}

	r := math.Abs(d2 / d1)
	a := r / (r + 1)
	x := s2.Q.X + a*(s2.P.X-s2.Q.X)
	y := s2.Q.Y + a*(s2.P.Y-s2.Q.Y)
	return Point{X: x, Y: y}, true, nil
}
