package geom

import "sort"

// BruteForce computes every pairwise intersection among segments by an
// O(n²) scan, independent of the sweep engine. It gives callers a
// second, structurally unrelated implementation of the same contract to
// cross-check a sweep result against.
func BruteForce(segments []Segment) ([]Point, error) {
	var pts []Point
	seen := make(map[Point]struct{})

	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			pt, ok, err := Intersect(segments[i], segments[j])
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if _, dup := seen[pt]; dup {
				continue
			}
			seen[pt] = struct{}{}
			pts = append(pts, pt)
		}
	}

	sort.Slice(pts, func(i, j int) bool { return Less(pts[i], pts[j]) })
	return pts, nil
}
