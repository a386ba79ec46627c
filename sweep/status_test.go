package sweep_test

import (
	"github.com/bsm/sweepline/geom"
	"github.com/bsm/sweepline/sweep"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Status", func() {
	var (
		subject      *sweep.Status
		low, mid, hi geom.Segment
	)

	BeforeEach(func() {
		subject = sweep.NewStatus()
		low = seg(0, 0, 0, 10, 1)
		mid = seg(1, 0, 5, 10, 6)
		hi = seg(2, 0, 9, 10, 10)

		subject.Insert(low, 0)
		subject.Insert(hi, 9)
		subject.Insert(mid, 5)
	})

	It("keeps entries ordered by key", func() {
		above, below := subject.Neighbors(mid.ID)
		Expect(above.ID).To(Equal(hi.ID))
		Expect(below.ID).To(Equal(low.ID))
	})

	It("reports nil neighbors at the boundaries", func() {
		above, below := subject.Neighbors(low.ID)
		Expect(below).To(BeNil())
		Expect(above.ID).To(Equal(mid.ID))

		above, below = subject.Neighbors(hi.ID)
		Expect(above).To(BeNil())
		Expect(below.ID).To(Equal(mid.ID))
	})

	It("removes an entry and reconnects its neighbors", func() {
		subject.Remove(mid.ID)
		above, below := subject.Neighbors(low.ID)
		Expect(below).To(BeNil())
		Expect(above.ID).To(Equal(hi.ID))
		Expect(subject.Len()).To(Equal(2))
	})

	It("re-sorts on update as segment ordering changes", func() {
		s2 := sweep.NewStatus()
		a := seg(10, 0, 0, 10, 10)  // ascending
		b := seg(11, 0, 10, 10, 0) // descending, crosses a at (5, 5)
		s2.Insert(a, 0)
		s2.Insert(b, 10)

		s2.Update(2)
		above, _ := s2.Neighbors(a.ID)
		Expect(above.ID).To(Equal(b.ID))

		s2.Update(8)
		above, _ = s2.Neighbors(b.ID)
		Expect(above.ID).To(Equal(a.ID))
	})

	It("swaps two crossed segments and returns their new neighbors", func() {
		a := seg(4, 0, 0, 10, 10)
		b := seg(5, 0, 10, 10, 0)

		s2 := sweep.NewStatus()
		s2.Insert(a, 0)
		s2.Insert(b, 10)
		s2.Update(0)

		bigger, smaller, aboveBigger, belowSmaller, ok := s2.SwapAndGetNewNeighbors(a.ID, b.ID, geom.Point{X: 5, Y: 5}, 1e-9)
		Expect(ok).To(BeTrue())
		Expect([]geom.SegmentID{bigger, smaller}).To(ConsistOf(a.ID, b.ID))
		Expect(aboveBigger).To(BeNil())
		Expect(belowSmaller).To(BeNil())
	})

	It("reports ok=false when one segment was already removed", func() {
		a := seg(4, 0, 0, 10, 10)
		b := seg(5, 0, 10, 10, 0)

		s2 := sweep.NewStatus()
		s2.Insert(a, 0)
		s2.Insert(b, 10)
		s2.Update(0)
		s2.Remove(b.ID)

		_, _, _, _, ok := s2.SwapAndGetNewNeighbors(a.ID, b.ID, geom.Point{X: 5, Y: 5}, 1e-9)
		Expect(ok).To(BeFalse())
	})
})
