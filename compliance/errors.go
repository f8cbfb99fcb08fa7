// Package compliance runs AXI4-Lite access-policy compliance scenarios
// against a register-file device, comparing the responses observed by the
// bus agent with the predictions of the access-policy model.
package compliance

import (
	"errors"
	"fmt"

	"github.com/hdlverify/axilite/axilite"
	"github.com/hdlverify/axilite/regmodel"
	"github.com/hdlverify/axilite/sim"
)

// ErrConfigNotFound reports that no register with a required policy exists
// in the device configuration. It is not a device defect; scenarios use it
// to skip with a clear message rather than hang.
var ErrConfigNotFound = errors.New("no register with requested policy configured")

// A ProtocolViolationError reports a response that disagrees with the
// access-policy model's prediction.
type ProtocolViolationError struct {
	Op   string
	Addr uint64
	Want axilite.Resp
	Got  axilite.Resp
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("protocol violation: %s at addr 0x%X: expected %s, observed %s",
		e.Op, e.Addr, e.Want, e.Got)
}

// A DataMismatchError reports read-back data that disagrees with the last
// written value, the reset default, or the rejected-read sentinel.
type DataMismatchError struct {
	Addr uint64
	Want uint32
	Got  uint32
}

func (e *DataMismatchError) Error() string {
	return fmt.Sprintf("data mismatch at addr 0x%X: expected 0x%08X, observed 0x%08X",
		e.Addr, e.Want, e.Got)
}

// A ViolationFlagError reports that the device's side-band access_violation
// flag disagrees with the outcome of the latest transaction.
type ViolationFlagError struct {
	Op       string
	Addr     uint64
	WantHigh bool
}

func (e *ViolationFlagError) Error() string {
	state := "deasserted"
	if e.WantHigh {
		state = "asserted"
	}
	return fmt.Sprintf("access_violation not %s after %s at addr 0x%X",
		state, e.Op, e.Addr)
}

// A TimeoutError reports that a scenario exhausted its simulated time budget
// before its process completed. It is distinct from a protocol violation:
// the device never reached the expected handshake state at all.
type TimeoutError struct {
	Budget sim.VTimeInSec
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("scenario did not complete within %.0f ns",
		float64(e.Budget)*1e9)
}

func configNotFound(policy regmodel.AccessPolicy) error {
	return fmt.Errorf("%w: %s", ErrConfigNotFound, policy)
}
