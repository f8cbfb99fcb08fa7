package hdl

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Signal", func() {
	It("should truncate values to the signal width", func() {
		s := NewSignal("wstrb", 4, Net)

		s.Set(0x1F)

		Expect(s.Get()).To(Equal(uint64(0xF)))
	})

	It("should keep full 64-bit values", func() {
		s := NewSignal("wide", 64, Reg)

		s.Set(^uint64(0))

		Expect(s.Get()).To(Equal(^uint64(0)))
	})

	It("should drive single-bit signals from bools", func() {
		s := NewSignal("awvalid", 1, Net)

		s.SetBool(true)
		Expect(s.IsHigh()).To(BeTrue())

		s.SetBool(false)
		Expect(s.IsHigh()).To(BeFalse())
	})

	It("should panic on out-of-range width", func() {
		Expect(func() { NewSignal("bad", 0, Net) }).To(Panic())
		Expect(func() { NewSignal("bad", 65, Net) }).To(Panic())
	})
})

var _ = Describe("Scope", func() {
	var scope *Scope

	BeforeEach(func() {
		scope = NewScope("dut")
	})

	It("should register and look up signals", func() {
		sig := scope.NewSignal("awaddr", 6, Net)

		Expect(scope.Signal("awaddr")).To(BeIdenticalTo(sig))
		Expect(scope.Signals()).To(HaveLen(1))
	})

	It("should panic on duplicated signal names", func() {
		scope.NewSignal("awaddr", 6, Net)

		Expect(func() { scope.NewSignal("awaddr", 6, Net) }).To(Panic())
	})

	It("should panic on unknown signal names", func() {
		Expect(func() { scope.Signal("no-such-signal") }).To(Panic())
	})

	It("should zero nets but not regs on InitNets", func() {
		net := scope.NewSignal("wdata", 32, Net)
		reg := scope.NewSignal("rdata", 32, Reg)
		net.Set(0x12345678)
		reg.Set(0xABCD)

		scope.InitNets()

		Expect(net.Get()).To(Equal(uint64(0)))
		Expect(reg.Get()).To(Equal(uint64(0xABCD)))
	})

	It("should only apply the first InitNets call", func() {
		net := scope.NewSignal("wdata", 32, Net)

		scope.InitNets()
		net.Set(0x55)
		scope.InitNets()

		Expect(net.Get()).To(Equal(uint64(0x55)))
	})
})
