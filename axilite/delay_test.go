package axilite_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hdlverify/axilite/axilite"
)

var _ = Describe("DelayPolicy", func() {
	It("should draw delays within the range", func() {
		d := axilite.NewUniformDelay(1, 10, 1)

		for i := 0; i < 1000; i++ {
			delay := d.NextDelay()
			Expect(delay).To(BeNumerically(">=", 1))
			Expect(delay).To(BeNumerically("<=", 10))
		}
	})

	It("should reproduce the same sequence for the same seed", func() {
		d1 := axilite.NewUniformDelay(1, 10, 42)
		d2 := axilite.NewUniformDelay(1, 10, 42)

		for i := 0; i < 100; i++ {
			Expect(d1.NextDelay()).To(Equal(d2.NextDelay()))
		}
	})

	It("should panic on an invalid range", func() {
		Expect(func() { axilite.NewUniformDelay(0, 10, 1) }).To(Panic())
		Expect(func() { axilite.NewUniformDelay(5, 4, 1) }).To(Panic())
	})

	It("should always return the fixed delay", func() {
		d := axilite.FixedDelay(3)

		Expect(d.NextDelay()).To(Equal(3))
		Expect(d.NextDelay()).To(Equal(3))
	})
})
