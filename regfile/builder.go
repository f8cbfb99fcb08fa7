package regfile

import (
	"github.com/hdlverify/axilite/axilite"
	"github.com/hdlverify/axilite/hdl"
)

// Builder configures and builds register-file components.
type Builder struct {
	bus        *axilite.Bus
	clk        *hdl.Clock
	dataRegs   int
	accessWord uint64
}

// MakeBuilder returns a new Builder
func MakeBuilder() Builder {
	return Builder{
		dataRegs: 8,
	}
}

// WithBus sets the bus the register file responds on.
func (b Builder) WithBus(bus *axilite.Bus) Builder {
	b.bus = bus
	return b
}

// WithClock sets the clock the register file is attached to.
func (b Builder) WithClock(clk *hdl.Clock) Builder {
	b.clk = clk
	return b
}

// WithDataRegs sets the number of data registers.
func (b Builder) WithDataRegs(n int) Builder {
	b.dataRegs = n
	return b
}

// WithAccessWord sets the packed 2-bit-per-index access-policy word.
func (b Builder) WithAccessWord(word uint64) Builder {
	b.accessWord = word
	return b
}

// Build builds a new Comp and attaches it to the clock.
func (b Builder) Build(name string) *Comp {
	if b.bus == nil {
		panic("register file requires a bus")
	}

	c := &Comp{
		name:       name,
		bus:        b.bus,
		dataRegs:   b.dataRegs,
		accessWord: b.accessWord,
		regs:       make([]uint32, b.dataRegs),
	}

	if b.clk != nil {
		b.clk.Attach(c)
	}

	return c
}
