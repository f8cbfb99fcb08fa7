package compliance

import (
	"errors"

	"github.com/hdlverify/axilite/hdl"
	"github.com/hdlverify/axilite/regmodel"
	"github.com/hdlverify/axilite/sim"
)

// A Scenario is one self-contained compliance check. Every scenario runs on
// a freshly reset bench.
type Scenario struct {
	Name string
	Run  func(c *Checker, p *hdl.Process) error
}

// A Result is the outcome of one scenario. Skipped results come from
// configurations that lack a register with the policy the scenario needs.
type Result struct {
	Scenario string
	Err      error
	Skipped  bool
}

// Scenarios returns the full compliance suite.
func Scenarios() []Scenario {
	return []Scenario{
		{"data-reg-read-write", DataRegReadWrite},
		{"write-violation", WriteViolation},
		{"read-violation", ReadViolation},
		{"csr-mcycle", CSRMcycle},
		{"csr-mstatus", CSRMstatus},
		{"out-of-range", OutOfRange},
		{"edge-values", EdgeValues},
		{"idempotent-reads", IdempotentReads},
	}
}

// RunAll executes every scenario on a fresh bench built from the
// configuration. The given hooks are attached to each bench's agent, which
// is how transaction recording taps in.
func RunAll(cfg Config, budget sim.VTimeInSec, hooks ...sim.Hook) []Result {
	results := make([]Result, 0, len(Scenarios()))

	for _, s := range Scenarios() {
		bench := NewBench(cfg)
		for _, h := range hooks {
			bench.Agent.AcceptHook(h)
		}

		checker := bench.Checker()
		err := bench.Run(budget, func(p *hdl.Process) error {
			return s.Run(checker, p)
		})

		results = append(results, Result{
			Scenario: s.Name,
			Err:      err,
			Skipped:  errors.Is(err, ErrConfigNotFound),
		})
	}

	return results
}

// DataRegReadWrite writes a read-write data register and reads the value
// back; both responses must be OKAY.
func DataRegReadWrite(c *Checker, p *hdl.Process) error {
	idx, found := c.Layout.FirstIndex(regmodel.ReadWrite)
	if !found {
		return configNotFound(regmodel.ReadWrite)
	}

	const value = 0x12345678

	if err := c.WriteChecked(p, uint64(idx), value); err != nil {
		return err
	}

	return c.ReadExpect(p, uint64(idx), value)
}

// WriteViolation writes a read-only data register, which must be rejected
// with SLVERR without altering the stored value.
func WriteViolation(c *Checker, p *hdl.Process) error {
	idx, found := c.Layout.FirstIndex(regmodel.ReadOnly)
	if !found {
		return configNotFound(regmodel.ReadOnly)
	}

	before, err := c.ReadChecked(p, uint64(idx))
	if err != nil {
		return err
	}

	if err := c.WriteChecked(p, uint64(idx), 0xCAFEBABE); err != nil {
		return err
	}

	return c.ReadExpect(p, uint64(idx), before)
}

// ReadViolation reads a write-only data register, which must be rejected
// with SLVERR and the all-ones sentinel.
func ReadViolation(c *Checker, p *hdl.Process) error {
	idx, found := c.Layout.FirstIndex(regmodel.WriteOnly)
	if !found {
		return configNotFound(regmodel.WriteOnly)
	}

	_, err := c.ReadChecked(p, uint64(idx))
	return err
}

// CSRMcycle writes the read-only mcycle CSR, which must be rejected, and
// verifies a subsequent read still returns the reset default of zero. The
// default, not the sentinel: the read itself is allowed, the write was
// rejected without touching the stored value.
func CSRMcycle(c *Checker, p *hdl.Process) error {
	addr := c.Layout.CSRAddr(regmodel.CSRMcycle)

	if err := c.WriteChecked(p, addr, 0xDEADBEEF); err != nil {
		return err
	}

	return c.ReadExpect(p, addr, 0)
}

// CSRMstatus round-trips a value through the read-write mstatus CSR.
func CSRMstatus(c *Checker, p *hdl.Process) error {
	addr := c.Layout.CSRAddr(regmodel.CSRMstatus)

	const value = 0xA5A5A5A5

	if err := c.WriteChecked(p, addr, value); err != nil {
		return err
	}

	return c.ReadExpect(p, addr, value)
}

// OutOfRange accesses the first address beyond the mapped regions. Both
// operations must be rejected, the read with the all-ones sentinel.
func OutOfRange(c *Checker, p *hdl.Process) error {
	addr := c.Layout.OutOfRangeAddr()

	if err := c.WriteChecked(p, addr, 0xDEADDEAD); err != nil {
		return err
	}

	_, err := c.ReadChecked(p, addr)
	return err
}

// EdgeValues round-trips the extreme values through a read-write data
// register.
func EdgeValues(c *Checker, p *hdl.Process) error {
	idx, found := c.Layout.FirstIndex(regmodel.ReadWrite)
	if !found {
		return configNotFound(regmodel.ReadWrite)
	}

	for _, value := range []uint32{0x00000000, 0xFFFFFFFF} {
		if err := c.WriteChecked(p, uint64(idx), value); err != nil {
			return err
		}
		if err := c.ReadExpect(p, uint64(idx), value); err != nil {
			return err
		}
	}

	return nil
}

// IdempotentReads performs the same read twice in a row on a read-only and
// on a write-only register; both times must yield the identical outcome.
func IdempotentReads(c *Checker, p *hdl.Process) error {
	for _, policy := range []regmodel.AccessPolicy{
		regmodel.ReadOnly, regmodel.WriteOnly,
	} {
		idx, found := c.Layout.FirstIndex(policy)
		if !found {
			continue
		}

		first, err := c.ReadChecked(p, uint64(idx))
		if err != nil {
			return err
		}

		second, err := c.ReadChecked(p, uint64(idx))
		if err != nil {
			return err
		}

		if first != second {
			return &DataMismatchError{
				Addr: uint64(idx), Want: first, Got: second,
			}
		}
	}

	return nil
}
