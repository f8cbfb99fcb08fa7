// Package hdl models a signal-level device boundary: named fixed-width
// signals, a free-running clock, and cooperative processes that suspend on
// clock edges or fixed delays.
package hdl

import "fmt"

// Kind tells which side of the device boundary drives a signal.
type Kind int

const (
	// Net signals are driven by the verification side.
	Net Kind = iota

	// Reg signals are driven by the device under test.
	Reg
)

// A Signal is a named, fixed-width value on the device boundary. Values wider
// than the signal are truncated on Set, like an HDL assignment.
type Signal struct {
	name  string
	width int
	kind  Kind
	mask  uint64
	value uint64
}

// NewSignal creates a standalone signal. Signals on a device boundary are
// normally created through Scope.NewSignal instead.
func NewSignal(name string, width int, kind Kind) *Signal {
	if width < 1 || width > 64 {
		panic(fmt.Sprintf("signal %s: width %d out of range", name, width))
	}

	s := &Signal{
		name:  name,
		width: width,
		kind:  kind,
		mask:  ^uint64(0) >> (64 - width),
	}

	return s
}

// Name returns the name of the signal.
func (s *Signal) Name() string {
	return s.name
}

// Width returns the number of bits of the signal.
func (s *Signal) Width() int {
	return s.width
}

// Kind tells whether the signal is a Net or a Reg.
func (s *Signal) Kind() Kind {
	return s.kind
}

// Set drives the signal to the given value, truncated to the signal width.
func (s *Signal) Set(v uint64) {
	s.value = v & s.mask
}

// Get samples the current value of the signal.
func (s *Signal) Get() uint64 {
	return s.value
}

// SetBool drives a single-bit signal from a bool.
func (s *Signal) SetBool(b bool) {
	if b {
		s.Set(1)
	} else {
		s.Set(0)
	}
}

// IsHigh reports whether the signal is non-zero.
func (s *Signal) IsHigh() bool {
	return s.value != 0
}
