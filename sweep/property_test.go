package sweep_test

import (
	"math"
	"math/rand"

	"github.com/bsm/sweepline/geom"
	"github.com/bsm/sweepline/sweep"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// randomNonVerticalSegments generates n segments with distinct endpoints
// and no two sharing a point, so the caller-side invariants always
// hold — the sweep is under test here, not input validation.
func randomNonVerticalSegments(rng *rand.Rand, n int) []geom.Segment {
	used := make(map[geom.Point]bool)
	randPoint := func() geom.Point {
		for {
			p := geom.Point{
				X: math.Round(rng.Float64()*200) / 10,
				Y: math.Round(rng.Float64()*200) / 10,
			}
			if !used[p] {
				used[p] = true
				return p
			}
		}
	}

	segs := make([]geom.Segment, 0, n)
	for len(segs) < n {
		a, b := randPoint(), randPoint()
		if a.X == b.X {
			continue // no verticals
		}
		s, err := geom.NewSegment(geom.SegmentID(len(segs)), a, b)
		Expect(err).NotTo(HaveOccurred())
		segs = append(segs, s)
	}
	return segs
}

var _ = Describe("properties", func() {
	const trials = 25

	It("matches the brute-force result up to tolerance", func() {
		rng := rand.New(rand.NewSource(42))
		for t := 0; t < trials; t++ {
			segs := randomNonVerticalSegments(rng, 12)

			res, err := sweep.Compute(segs)
			if err != nil {
				continue // a random trial hit a collinear pair
			}
			bf, err := geom.BruteForce(segs)
			Expect(err).NotTo(HaveOccurred())

			Expect(points(res)).To(HaveLen(len(bf)))
			for i, p := range points(res) {
				Expect(p.X).To(BeNumerically("~", bf[i].X, 1e-6))
				Expect(p.Y).To(BeNumerically("~", bf[i].Y, 1e-6))
			}
		}
	})

	It("never reports a duplicate point (P2)", func() {
		rng := rand.New(rand.NewSource(7))
		for t := 0; t < trials; t++ {
			segs := randomNonVerticalSegments(rng, 16)
			res, err := sweep.Compute(segs)
			if err != nil {
				continue
			}
			seen := make(map[geom.Point]bool)
			for _, p := range points(res) {
				Expect(seen[p]).To(BeFalse())
				seen[p] = true
			}
		}
	})

	It("keeps every point on both producing segments' lines (P3)", func() {
		rng := rand.New(rand.NewSource(11))
		for t := 0; t < trials; t++ {
			segs := randomNonVerticalSegments(rng, 12)
			res, err := sweep.Compute(segs)
			if err != nil {
				continue
			}
			for _, rp := range res.Points {
				a, b := segs[rp.A], segs[rp.B]
				Expect(math.Abs(rp.Point.Y - geom.YAt(a, rp.Point.X))).To(BeNumerically("<=", 1e-6))
				Expect(math.Abs(rp.Point.Y - geom.YAt(b, rp.Point.X))).To(BeNumerically("<=", 1e-6))
			}
		}
	})

	It("is idempotent (P4)", func() {
		rng := rand.New(rand.NewSource(99))
		segs := randomNonVerticalSegments(rng, 20)
		res1, err := sweep.Compute(segs)
		Expect(err).NotTo(HaveOccurred())
		res2, err := sweep.Compute(segs)
		Expect(err).NotTo(HaveOccurred())
		Expect(points(res1)).To(Equal(points(res2)))
	})

	It("is order independent (P5)", func() {
		rng := rand.New(rand.NewSource(123))
		segs := randomNonVerticalSegments(rng, 20)

		res1, err := sweep.Compute(segs)
		Expect(err).NotTo(HaveOccurred())

		permuted := make([]geom.Segment, len(segs))
		copy(permuted, segs)
		rng.Shuffle(len(permuted), func(i, j int) { permuted[i], permuted[j] = permuted[j], permuted[i] })
		for i := range permuted {
			permuted[i].ID = geom.SegmentID(i)
		}

		res2, err := sweep.Compute(permuted)
		Expect(err).NotTo(HaveOccurred())
		Expect(points(res1)).To(Equal(points(res2)))
	})
})
