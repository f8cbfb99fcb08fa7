package regfile_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hdlverify/axilite/axilite"
	"github.com/hdlverify/axilite/hdl"
	"github.com/hdlverify/axilite/regfile"
	"github.com/hdlverify/axilite/sim"
)

var _ = Describe("Comp", func() {
	var (
		engine *sim.SerialEngine
		clk    *hdl.Clock
		bus    *axilite.Bus
		agent  *axilite.Agent
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		clk = hdl.NewClock("clk", engine, 100*sim.MHz)
		bus = axilite.NewBus("dut", 6)

		// Index 0 read-write, index 1 read-only, index 2 write-only.
		regfile.MakeBuilder().
			WithBus(bus).
			WithClock(clk).
			WithDataRegs(8).
			WithAccessWord(0x24).
			Build("regfile")

		agent = axilite.NewAgent("agent", clk, bus, 1).
			WithDelayPolicy(axilite.FixedDelay(1))
	})

	run := func(body func(p *hdl.Process) error) *hdl.Process {
		proc := clk.Spawn("scenario", func(p *hdl.Process) error {
			agent.Init()

			bus.ARstN.Set(0)
			p.WaitCycles(2)
			bus.ARstN.Set(1)
			p.WaitEdge()

			return body(p)
		})
		clk.Start()

		Expect(engine.RunUntil(2e-6)).To(Succeed())
		clk.AbortParked()

		ExpectWithOffset(1, proc.Finished()).To(BeTrue())
		ExpectWithOffset(1, proc.Err()).NotTo(HaveOccurred())

		return proc
	}

	It("should merge partial writes per byte strobe", func() {
		var data uint32

		run(func(p *hdl.Process) error {
			agent.Write(p, 0, 0xAABBCCDD, 0xF)
			agent.Write(p, 0, 0x11223344, 0x3)
			data, _ = agent.Read(p, 0)
			return nil
		})

		Expect(data).To(Equal(uint32(0xAABB3344)))
	})

	It("should not mutate a read-only register on a rejected write", func() {
		var (
			wResp axilite.Resp
			data  uint32
			rResp axilite.Resp
		)

		run(func(p *hdl.Process) error {
			wResp = agent.Write(p, 1, 0xCAFEBABE, 0xF)
			data, rResp = agent.Read(p, 1)
			return nil
		})

		Expect(wResp).To(Equal(axilite.RespSLVERR))
		Expect(rResp).To(Equal(axilite.RespOKAY))
		Expect(data).To(Equal(uint32(0)))
	})

	It("should hold the violation flag until the next transaction", func() {
		var afterReject, afterAccept bool

		run(func(p *hdl.Process) error {
			agent.Write(p, 1, 0x1, 0xF)
			p.WaitCycles(3)
			afterReject = bus.AccessViolation.IsHigh()

			agent.Write(p, 0, 0x2, 0xF)
			p.WaitCycles(3)
			afterAccept = bus.AccessViolation.IsHigh()

			return nil
		})

		Expect(afterReject).To(BeTrue())
		Expect(afterAccept).To(BeFalse())
	})

	It("should return the sentinel for a write-only read", func() {
		var (
			data uint32
			resp axilite.Resp
		)

		run(func(p *hdl.Process) error {
			agent.Write(p, 2, 0x55AA55AA, 0xF)
			data, resp = agent.Read(p, 2)
			return nil
		})

		Expect(resp).To(Equal(axilite.RespSLVERR))
		Expect(data).To(Equal(axilite.SentinelData))
	})

	It("should clear stored registers on reset", func() {
		var data uint32

		run(func(p *hdl.Process) error {
			agent.Write(p, 0, 0x12345678, 0xF)

			bus.ARstN.Set(0)
			p.WaitCycles(2)
			bus.ARstN.Set(1)
			p.WaitEdge()

			data, _ = agent.Read(p, 0)
			return nil
		})

		Expect(data).To(Equal(uint32(0)))
	})

	It("should return to the idle handshake state after reset", func() {
		var awReady, wReady, bValid, rValid bool

		run(func(p *hdl.Process) error {
			agent.Write(p, 0, 0x1, 0xF)

			bus.ARstN.Set(0)
			p.WaitCycles(2)

			awReady = bus.AWReady.IsHigh()
			wReady = bus.WReady.IsHigh()
			bValid = bus.BValid.IsHigh()
			rValid = bus.RValid.IsHigh()

			bus.ARstN.Set(1)
			return nil
		})

		Expect(awReady).To(BeTrue())
		Expect(wReady).To(BeTrue())
		Expect(bValid).To(BeFalse())
		Expect(rValid).To(BeFalse())
	})

	It("should only accept writes to mstatus in the CSR region", func() {
		var (
			mcycleResp  axilite.Resp
			mstatusResp axilite.Resp
			mstatus     uint32
			mcycle      uint32
		)

		run(func(p *hdl.Process) error {
			mcycleResp = agent.Write(p, 8, 0xDEADBEEF, 0xF)
			mcycle, _ = agent.Read(p, 8)

			mstatusResp = agent.Write(p, 9, 0xA5A5A5A5, 0xF)
			mstatus, _ = agent.Read(p, 9)

			return nil
		})

		Expect(mcycleResp).To(Equal(axilite.RespSLVERR))
		Expect(mcycle).To(Equal(uint32(0)))
		Expect(mstatusResp).To(Equal(axilite.RespOKAY))
		Expect(mstatus).To(Equal(uint32(0xA5A5A5A5)))
	})
})
