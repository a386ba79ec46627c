package resultstore_test

import (
	"bytes"
	"math"
	"math/rand"

	"github.com/bsm/sweepline/geom"
	"github.com/bsm/sweepline/resultstore"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Writer", func() {
	var buf *bytes.Buffer
	var subject *resultstore.Writer
	origin := geom.Point{X: 1, Y: 1}

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		subject = resultstore.NewWriter(buf, nil)
	})

	AfterEach(func() {
		_ = subject.Close()
	})

	It("writes an empty store", func() {
		Expect(subject.Close()).To(Succeed())
		Expect(buf.Len()).To(Equal(16))
	})

	It("prevents out-of-order writes", func() {
		Expect(subject.Append(origin, []byte("testdata"))).To(Succeed())
		Expect(subject.Append(origin, []byte("testdata"))).To(MatchError(ContainSubstring("out-of-order")))
		Expect(subject.Append(geom.Point{X: 0, Y: 0}, []byte("testdata"))).To(MatchError(ContainSubstring("out-of-order")))
		Expect(subject.Append(geom.Point{X: 2, Y: 2}, []byte("testdata"))).To(Succeed())
	})

	It("rejects non-finite keys", func() {
		Expect(subject.Append(geom.Point{X: math.NaN(), Y: 1}, []byte("testdata"))).To(HaveOccurred())
	})

	It("writes many entries across multiple blocks", func() {
		rnd := rand.New(rand.NewSource(1))
		val := make([]byte, 128)

		for i := 0; i < 10000; i++ {
			_, err := rnd.Read(val)
			Expect(err).NotTo(HaveOccurred())
			pt := geom.Point{X: float64(i), Y: float64(i % 13)}
			Expect(subject.Append(pt, append([]byte(nil), val...))).To(Succeed())
		}
		Expect(subject.Close()).To(Succeed())
		Expect(buf.Len()).To(BeNumerically(">", 0))
	})
})
