package compliance

import (
	"math/bits"

	"github.com/hdlverify/axilite/axilite"
	"github.com/hdlverify/axilite/hdl"
	"github.com/hdlverify/axilite/regfile"
	"github.com/hdlverify/axilite/regmodel"
	"github.com/hdlverify/axilite/sim"
)

// resetCycles is how long reset stays asserted before a scenario body runs.
const resetCycles = 5

// DefaultBudget bounds the simulated duration of one scenario.
const DefaultBudget = sim.VTimeInSec(500e-9)

// Config parameterizes a test bench.
type Config struct {
	DataRegs   int
	AccessWord uint64
	Freq       sim.Freq
	Seed       int64
}

// A Bench wires an engine, a clock, a register-file device, and a bus agent
// into one runnable testbench.
type Bench struct {
	Engine *sim.SerialEngine
	Clock  *hdl.Clock
	Bus    *axilite.Bus
	DUT    *regfile.Comp
	Agent  *axilite.Agent
	Layout regmodel.Layout
}

// NewBench builds a testbench for the given configuration.
func NewBench(cfg Config) *Bench {
	if cfg.Freq == 0 {
		cfg.Freq = 100 * sim.MHz
	}

	engine := sim.NewSerialEngine()
	clk := hdl.NewClock("Clk", engine, cfg.Freq)

	addrWidth := bits.Len(uint(cfg.DataRegs + regmodel.NumCSRRegs))
	bus := axilite.NewBus("RegFileBus", addrWidth)

	dut := regfile.MakeBuilder().
		WithBus(bus).
		WithClock(clk).
		WithDataRegs(cfg.DataRegs).
		WithAccessWord(cfg.AccessWord).
		Build("RegFile")

	agent := axilite.NewAgent("Agent", clk, bus, cfg.Seed)

	return &Bench{
		Engine: engine,
		Clock:  clk,
		Bus:    bus,
		DUT:    dut,
		Agent:  agent,
		Layout: regmodel.Layout{
			DataRegs:   cfg.DataRegs,
			AccessWord: cfg.AccessWord,
		},
	}
}

// Checker returns a checker bound to the bench's agent and layout.
func (b *Bench) Checker() *Checker {
	return &Checker{
		Agent:     b.Agent,
		Layout:    b.Layout,
		Violation: b.Bus.AccessViolation,
	}
}

// Run executes the scenario body as a cooperative process: the agent
// outputs are zeroed, the reset sequence is applied, and then the body runs
// with the whole simulation bounded by the budget. A body that has not
// completed when the budget expires is a TimeoutError; the body's own error
// is returned otherwise.
func (b *Bench) Run(budget sim.VTimeInSec, body func(p *hdl.Process) error) error {
	proc := b.Clock.Spawn("Scenario", func(p *hdl.Process) error {
		b.Agent.Init()

		b.Bus.ARstN.Set(0)
		p.WaitCycles(resetCycles)
		b.Bus.ARstN.Set(1)
		p.WaitEdge()

		return body(p)
	})

	b.Clock.Start()

	if err := b.Engine.RunUntil(b.Engine.CurrentTime() + budget); err != nil {
		return err
	}

	if !proc.Finished() {
		b.Clock.AbortParked()
		return &TimeoutError{Budget: budget}
	}

	return proc.Err()
}
