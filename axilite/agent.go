package axilite

import (
	"github.com/hdlverify/axilite/hdl"
	"github.com/hdlverify/axilite/sim"
)

// HookPosTransComplete marks when the agent finishes a bus transaction.
var HookPosTransComplete = &sim.HookPos{Name: "Transaction Complete"}

// A Transaction records one completed write or read as observed on the bus.
type Transaction struct {
	ID   string
	Time sim.VTimeInSec
	Kind string
	Addr uint64
	Data uint32
	Strb uint8
	Resp Resp
}

// An Agent drives AXI4-Lite write and read transactions on a bus. The device
// under test is the sole driver of the ready/valid/response signals; the
// agent only samples them and polls unboundedly on clock edges. Bounding the
// total duration is the calling scenario's job. Transactions must be issued
// one at a time: the address, data, and strobe signals are shared state with
// no per-transaction tagging.
type Agent struct {
	sim.HookableBase

	name  string
	clk   *hdl.Clock
	bus   *Bus
	delay DelayPolicy
}

// NewAgent creates an agent bound to a bus and a clock. The default delay
// policy draws the write inter-phase delay uniformly from 1 to 10 cycles
// with the given seed.
func NewAgent(name string, clk *hdl.Clock, bus *Bus, seed int64) *Agent {
	return &Agent{
		name:  name,
		clk:   clk,
		bus:   bus,
		delay: NewUniformDelay(1, 10, seed),
	}
}

// Name returns the name of the agent.
func (a *Agent) Name() string {
	return a.name
}

// Bus returns the bus the agent drives.
func (a *Agent) Bus() *Bus {
	return a.bus
}

// WithDelayPolicy replaces the write inter-phase delay policy.
func (a *Agent) WithDelayPolicy(d DelayPolicy) *Agent {
	a.delay = d
	return a
}

// Init drives every net-typed signal on the device boundary to zero. Only
// the first call has an effect; the agent-controlled outputs start every
// scenario from the same deterministic state.
func (a *Agent) Init() {
	a.bus.scope.InitNets()
}

// Write performs one AXI4-Lite write transaction and returns the observed
// response code.
func (a *Agent) Write(p *hdl.Process, addr uint64, data uint32, strb uint8) Resp {
	b := a.bus

	b.AWAddr.Set(addr)
	b.WData.Set(uint64(data))
	b.WStrb.Set(uint64(strb))
	// bready up front: backpressure on the response channel is driven only
	// by the device.
	b.BReady.Set(1)

	// Variable master-side latency before the handshake starts, so the
	// device's wait-state handling gets exercised.
	p.WaitCycles(a.delay.NextDelay())

	for !(b.AWReady.IsHigh() && b.WReady.IsHigh()) {
		p.WaitEdge()
	}

	p.WaitEdge()
	b.AWValid.Set(1)
	b.WValid.Set(1)
	p.WaitEdge()
	b.AWValid.Set(0)
	b.WValid.Set(0)
	// Stale address guard: the device must not act on awaddr once the
	// handshake is over.
	b.AWAddr.Set(0)

	for !b.BValid.IsHigh() {
		p.WaitEdge()
	}
	resp := Resp(b.BResp.Get())

	p.WaitEdge()
	b.BReady.Set(0)

	a.completeTransaction("write", addr, data, strb, resp)

	return resp
}

// Read performs one AXI4-Lite read transaction and returns the observed
// data and response code.
func (a *Agent) Read(p *hdl.Process, addr uint64) (uint32, Resp) {
	b := a.bus

	b.ARAddr.Set(addr)
	b.ARValid.Set(1)

	p.WaitEdge()
	for !b.ARReady.IsHigh() {
		p.WaitEdge()
	}

	b.ARAddr.Set(0)
	b.ARValid.Set(0)

	// Fixed gap modeling downstream latency before accepting data.
	p.WaitCycles(2)
	b.RReady.Set(1)
	p.WaitEdge()

	for !b.RValid.IsHigh() {
		p.WaitEdge()
	}
	data := uint32(b.RData.Get())
	resp := Resp(b.RResp.Get())

	p.WaitEdge()
	b.RReady.Set(0)

	a.completeTransaction("read", addr, data, 0, resp)

	return data, resp
}

func (a *Agent) completeTransaction(
	kind string,
	addr uint64,
	data uint32,
	strb uint8,
	resp Resp,
) {
	tx := Transaction{
		ID:   sim.GetIDGenerator().Generate(),
		Time: a.clk.Freq().Period() * sim.VTimeInSec(a.clk.Cycle()),
		Kind: kind,
		Addr: addr,
		Data: data,
		Strb: strb,
		Resp: resp,
	}

	a.InvokeHook(sim.HookCtx{
		Domain: a,
		Pos:    HookPosTransComplete,
		Item:   tx,
	})
}
