package resultstore_test

import (
	"github.com/bsm/sweepline/geom"
	"github.com/bsm/sweepline/resultstore"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Iterator", func() {
	var reader *resultstore.Reader
	var pts []geom.Point

	BeforeEach(func() {
		reader = seedReader(40, &resultstore.Options{BlockSize: 512, SectionSize: 4})
		pts = seedPoints(40)
	})

	It("advances one entry at a time within a block", func() {
		it, err := reader.FindBlock(pts[0])
		Expect(err).NotTo(HaveOccurred())
		defer it.Release()

		Expect(it.Next()).To(BeTrue())
		Expect(it.Point()).To(Equal(pts[0]))
	})

	It("seeks within a block to an entry that is present", func() {
		it, err := reader.FindBlock(pts[0])
		Expect(err).NotTo(HaveOccurred())
		defer it.Release()

		Expect(it.Seek(pts[5])).To(BeTrue())
		Expect(it.Point()).To(Equal(pts[5]))
	})

	It("seeks to the entry immediately after a gap", func() {
		it, err := reader.FindBlock(pts[0])
		Expect(err).NotTo(HaveOccurred())
		defer it.Release()

		gap := geom.Point{X: pts[5].X - 0.1, Y: pts[5].Y}
		Expect(it.Seek(gap)).To(BeTrue())
		Expect(it.Point()).To(Equal(pts[5]))
	})

	It("moves between blocks and back", func() {
		it, err := reader.FindBlock(pts[0])
		Expect(err).NotTo(HaveOccurred())
		defer it.Release()

		if reader.NumBlocks() < 2 {
			Skip("fixture did not span multiple blocks")
		}

		Expect(it.NextBlock()).To(BeTrue())
		Expect(it.Next()).To(BeTrue())
		Expect(it.PrevBlock()).To(BeTrue())
		Expect(it.Next()).To(BeTrue())
		Expect(it.Point()).To(Equal(pts[0]))
	})

	It("refuses to move past the first or last block", func() {
		it, err := reader.FindBlock(pts[0])
		Expect(err).NotTo(HaveOccurred())
		defer it.Release()
		Expect(it.PrevBlock()).To(BeFalse())

		it2, err := reader.FindBlock(pts[len(pts)-1])
		Expect(err).NotTo(HaveOccurred())
		defer it2.Release()
		Expect(it2.NextBlock()).To(BeFalse())
	})
})
