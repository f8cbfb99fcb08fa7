// Package regmodel predicts the AXI4-Lite response contract of a register
// file with statically-configured per-register access policies. It is pure
// decision logic: the model never touches signals and never stores register
// contents, which stay device-held.
package regmodel

import (
	"errors"
	"fmt"
)

// AccessPolicy is the access mode of one register. The values are the 2-bit
// codes of the packed configuration word.
type AccessPolicy uint8

const (
	// ReadWrite registers accept both operations.
	ReadWrite AccessPolicy = 0

	// ReadOnly registers reject writes.
	ReadOnly AccessPolicy = 1

	// WriteOnly registers reject reads.
	WriteOnly AccessPolicy = 2
)

func (p AccessPolicy) String() string {
	switch p {
	case ReadWrite:
		return "ReadWrite"
	case ReadOnly:
		return "ReadOnly"
	case WriteOnly:
		return "WriteOnly"
	default:
		return fmt.Sprintf("AccessPolicy(%d)", uint8(p))
	}
}

// ErrInvalidIndex is returned when a register index lies outside the
// configured data region.
var ErrInvalidIndex = errors.New("register index out of configured range")

// policyBits is the width of one packed policy entry.
const policyBits = 2

// DecodePolicy extracts the 2-bit access code for the given index from a
// packed configuration word. The least-significant bits correspond to
// index 0.
func DecodePolicy(configWord uint64, index int, dataRegs int) (AccessPolicy, error) {
	if index < 0 || index >= dataRegs {
		return 0, fmt.Errorf("index %d with %d data registers: %w",
			index, dataRegs, ErrInvalidIndex)
	}

	code := (configWord >> (index * policyBits)) & 0x3

	return AccessPolicy(code), nil
}
