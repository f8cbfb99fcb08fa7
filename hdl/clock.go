package hdl

import (
	"log"
	"reflect"

	"github.com/hdlverify/axilite/sim"
)

// EdgeTriggered components update their state on every rising clock edge
// with nonblocking-assignment semantics: Eval samples the boundary signals
// at the edge, Commit drives the resulting outputs at the end of the same
// edge. Processes resumed in between observe the pre-edge outputs.
type EdgeTriggered interface {
	Eval(cycle uint64)
	Commit()
}

// tickEvent fires once per clock period.
type tickEvent struct {
	*sim.EventBase
}

// wakeEvent resumes a process that waited for a fixed delay.
type wakeEvent struct {
	*sim.EventBase
	proc *Process
}

// kickEvent starts a freshly spawned process.
type kickEvent struct {
	*sim.EventBase
	proc *Process
}

// A Clock drives the single cooperative timeline of a testbench. It
// self-schedules one tick event per period. On each rising edge it first
// evaluates every attached edge-triggered component, then resumes the
// processes suspended on the edge in FIFO order, and finally commits the
// component outputs.
type Clock struct {
	name   string
	engine sim.Engine
	freq   sim.Freq

	cycle   uint64
	started bool

	comps       []EdgeTriggered
	procs       []*Process
	edgeWaiters []*Process
}

// NewClock creates a clock with the given frequency.
func NewClock(name string, engine sim.Engine, freq sim.Freq) *Clock {
	return &Clock{
		name:   name,
		engine: engine,
		freq:   freq,
	}
}

// Name returns the name of the clock.
func (c *Clock) Name() string {
	return c.name
}

// Freq returns the clock frequency.
func (c *Clock) Freq() sim.Freq {
	return c.freq
}

// Period returns the duration of one clock cycle.
func (c *Clock) Period() sim.VTimeInSec {
	return c.freq.Period()
}

// Cycle returns the number of rising edges seen so far.
func (c *Clock) Cycle() uint64 {
	return c.cycle
}

// Attach registers an edge-triggered component with the clock.
func (c *Clock) Attach(comp EdgeTriggered) {
	c.comps = append(c.comps, comp)
}

// Start schedules the first rising edge. The clock keeps ticking until the
// engine stops processing events; bounding the simulation is the engine
// caller's job.
func (c *Clock) Start() {
	if c.started {
		return
	}
	c.started = true

	t := c.freq.NextTick(c.engine.CurrentTime())
	c.engine.Schedule(tickEvent{sim.NewEventBase(t, c)})
}

// Spawn starts a new cooperative process. The body begins executing at the
// current simulated time.
func (c *Clock) Spawn(name string, fn func(*Process) error) *Process {
	p := &Process{
		name:   name,
		clk:    c,
		resume: make(chan struct{}),
		yield:  make(chan struct{}),
		quit:   make(chan struct{}),
	}
	c.procs = append(c.procs, p)

	go p.run(fn)

	t := c.engine.CurrentTime()
	c.engine.Schedule(&kickEvent{sim.NewEventBase(t, c), p})

	return p
}

// AbortParked unwinds every process that is still suspended. Call it after
// the engine has stopped; a process that is still parked at that point is a
// scenario timeout, not an agent defect.
func (c *Clock) AbortParked() {
	for _, p := range c.procs {
		if !p.finished {
			close(p.quit)
		}
	}
}

// Handle processes the clock events.
func (c *Clock) Handle(e sim.Event) error {
	switch evt := e.(type) {
	case tickEvent:
		c.risingEdge()
	case *wakeEvent:
		c.resumeProcess(evt.proc)
	case *kickEvent:
		c.resumeProcess(evt.proc)
	default:
		log.Panicf("cannot handle event of type %s", reflect.TypeOf(e))
	}

	return nil
}

func (c *Clock) risingEdge() {
	c.cycle++

	for _, comp := range c.comps {
		comp.Eval(c.cycle)
	}

	// Waiters registered while these resume belong to the next edge.
	waiters := c.edgeWaiters
	c.edgeWaiters = nil
	for _, p := range waiters {
		c.resumeProcess(p)
	}

	for _, comp := range c.comps {
		comp.Commit()
	}

	t := c.freq.NextTick(c.engine.CurrentTime())
	c.engine.Schedule(tickEvent{sim.NewEventBase(t, c)})
}

// resumeProcess hands the baton to the process and blocks until the process
// parks again or finishes.
func (c *Clock) resumeProcess(p *Process) {
	if p.finished {
		return
	}

	p.resume <- struct{}{}
	<-p.yield
}

func (c *Clock) waitEdge(p *Process) {
	c.edgeWaiters = append(c.edgeWaiters, p)
	p.suspend()
}

func (c *Clock) waitTime(p *Process, d sim.VTimeInSec) {
	t := c.engine.CurrentTime() + d
	c.engine.Schedule(&wakeEvent{sim.NewEventBase(t, c), p})
	p.suspend()
}
