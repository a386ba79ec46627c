package sweep

import "github.com/bsm/sweepline/geom"

// ResultPoint is a confirmed intersection point together with one of the
// (possibly several, in a multi-way concurrency) segment pairs that
// produced it — the first one the driver happened to confirm.
type ResultPoint struct {
	Point geom.Point
	A, B  geom.SegmentID
}

// Result is the ordered set of distinct intersection points the sweep
// produced, in the point total order.
type Result struct {
	Points []ResultPoint
}

// Len returns the number of distinct intersection points.
func (r *Result) Len() int { return len(r.Points) }

// AsPoints returns just the coordinates, dropping the producing segment
// pair — the shape of the "ordered set of points" the core API returns
// in ascending order.
func (r *Result) AsPoints() []geom.Point {
	pts := make([]geom.Point, len(r.Points))
	for i, rp := range r.Points {
		pts[i] = rp.Point
	}
	return pts
}
