package hdl

import (
	"github.com/hdlverify/axilite/sim"
)

// abortSignal unwinds a process goroutine that is still parked when the
// simulation stops.
type abortSignal struct{}

// A Process is one cooperative thread of testbench behavior. Exactly one of
// the engine and the processes it resumes executes at any instant; control
// changes hands only at the suspension points WaitEdge and WaitTime. A
// process, once spawned, runs to completion or is aborted together with the
// whole simulation.
type Process struct {
	name string
	clk  *Clock

	resume chan struct{}
	yield  chan struct{}
	quit   chan struct{}

	finished bool
	err      error
}

// Name returns the name of the process.
func (p *Process) Name() string {
	return p.name
}

// Finished reports whether the process body has returned.
func (p *Process) Finished() bool {
	return p.finished
}

// Err returns the error the process body returned, if any.
func (p *Process) Err() error {
	return p.err
}

// WaitEdge suspends the process until the next rising clock edge. Device
// state sampled after resuming is the state from before the edge, the same
// way a registered output is observed in HDL.
func (p *Process) WaitEdge() {
	p.clk.waitEdge(p)
}

// WaitTime suspends the process for a fixed simulated delay.
func (p *Process) WaitTime(d sim.VTimeInSec) {
	p.clk.waitTime(p, d)
}

// WaitCycles suspends the process for n full clock periods.
func (p *Process) WaitCycles(n int) {
	p.WaitTime(sim.VTimeInSec(n) * p.clk.Period())
}

// suspend parks the process and hands the baton back to the clock.
func (p *Process) suspend() {
	p.yield <- struct{}{}
	select {
	case <-p.resume:
	case <-p.quit:
		panic(abortSignal{})
	}
}

// run is the goroutine body that executes the process function under the
// baton-pass protocol.
func (p *Process) run(fn func(*Process) error) {
	defer func() {
		if r := recover(); r != nil {
			if _, aborted := r.(abortSignal); aborted {
				return
			}
			panic(r)
		}

		p.finished = true
		close(p.yield)
	}()

	select {
	case <-p.resume:
	case <-p.quit:
		return
	}

	p.err = fn(p)
}
