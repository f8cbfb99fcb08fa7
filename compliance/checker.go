package compliance

import (
	"github.com/hdlverify/axilite/axilite"
	"github.com/hdlverify/axilite/hdl"
	"github.com/hdlverify/axilite/regmodel"
)

// allBytes enables every byte lane of a 32-bit write.
const allBytes uint8 = 0xF

// A Checker issues transactions through the agent and compares every
// observed outcome against the access-policy model. Comparison failures
// surface immediately; nothing is retried.
type Checker struct {
	Agent  *axilite.Agent
	Layout regmodel.Layout

	// Violation is the device's side-band access_violation flag. Leave nil
	// to skip the cross-check.
	Violation *hdl.Signal
}

// WriteChecked writes all four bytes of data and verifies the response and
// the side-band violation flag against the model.
func (c *Checker) WriteChecked(p *hdl.Process, addr uint64, data uint32) error {
	want := c.Layout.ExpectedWriteResp(addr)
	got := c.Agent.Write(p, addr, data, allBytes)

	if got != want {
		return &ProtocolViolationError{Op: "write", Addr: addr, Want: want, Got: got}
	}

	return c.checkViolationFlag("write", addr, want == axilite.RespSLVERR)
}

// ReadChecked reads an address and verifies the response against the model,
// including the all-ones sentinel on rejected reads. It returns the
// observed data so callers can compare it against device-held expectations.
func (c *Checker) ReadChecked(p *hdl.Process, addr uint64) (uint32, error) {
	wantResp, sentinel, sentinelValid := c.Layout.ExpectedReadResp(addr)
	data, got := c.Agent.Read(p, addr)

	if got != wantResp {
		return data, &ProtocolViolationError{
			Op: "read", Addr: addr, Want: wantResp, Got: got,
		}
	}

	if sentinelValid && data != sentinel {
		return data, &DataMismatchError{Addr: addr, Want: sentinel, Got: data}
	}

	if err := c.checkViolationFlag(
		"read", addr, wantResp == axilite.RespSLVERR); err != nil {
		return data, err
	}

	return data, nil
}

// ReadExpect reads an address and additionally verifies that the device
// returned the given value.
func (c *Checker) ReadExpect(p *hdl.Process, addr uint64, want uint32) error {
	data, err := c.ReadChecked(p, addr)
	if err != nil {
		return err
	}

	if data != want {
		return &DataMismatchError{Addr: addr, Want: want, Got: data}
	}

	return nil
}

func (c *Checker) checkViolationFlag(op string, addr uint64, wantHigh bool) error {
	if c.Violation == nil {
		return nil
	}

	if c.Violation.IsHigh() != wantHigh {
		return &ViolationFlagError{Op: op, Addr: addr, WantHigh: wantHigh}
	}

	return nil
}
