package regmodel

import (
	"github.com/hdlverify/axilite/axilite"
)

// NumCSRRegs is the size of the control/status register region. It is fixed
// by the device family, not part of the packed configuration.
const NumCSRRegs = 4

// CSR offsets relative to the start of the CSR region.
const (
	CSRMcycle  = 0
	CSRMstatus = 1
	CSRMcause  = 2
	CSRMip     = 3
)

// csrPolicies is the fixed per-offset policy table of the CSR region.
var csrPolicies = [NumCSRRegs]AccessPolicy{
	CSRMcycle:  ReadOnly,
	CSRMstatus: ReadWrite,
	CSRMcause:  ReadOnly,
	CSRMip:     ReadOnly,
}

// A Layout is the invariant partition of a device's address space:
// [0, DataRegs) is the data region with policies from AccessWord,
// [DataRegs, DataRegs+4) is the CSR region with fixed policies, and
// everything beyond is out of range.
type Layout struct {
	DataRegs   int
	AccessWord uint64
}

// Decode returns the configured policy of a data-region register.
func (l Layout) Decode(index int) (AccessPolicy, error) {
	return DecodePolicy(l.AccessWord, index, l.DataRegs)
}

// PolicyAt returns the policy governing an address. ok is false when the
// address is out of range; an out-of-range address never reaches a policy
// lookup.
func (l Layout) PolicyAt(addr uint64) (policy AccessPolicy, ok bool) {
	if addr >= uint64(l.DataRegs+NumCSRRegs) {
		return 0, false
	}

	if addr >= uint64(l.DataRegs) {
		return csrPolicies[addr-uint64(l.DataRegs)], true
	}

	policy, err := l.Decode(int(addr))
	if err != nil {
		return 0, false
	}

	return policy, true
}

// CSRAddr returns the bus address of a CSR offset.
func (l Layout) CSRAddr(offset int) uint64 {
	return uint64(l.DataRegs + offset)
}

// OutOfRangeAddr returns the first address beyond the mapped regions.
func (l Layout) OutOfRangeAddr() uint64 {
	return uint64(l.DataRegs + NumCSRRegs)
}

// FirstIndex returns the lowest data-register index configured with the
// given policy. found is false when no index matches; that is a normal
// outcome that lets callers skip a scenario instead of crashing.
func (l Layout) FirstIndex(policy AccessPolicy) (index int, found bool) {
	for i := 0; i < l.DataRegs; i++ {
		p, err := l.Decode(i)
		if err != nil {
			return 0, false
		}
		if p == policy {
			return i, true
		}
	}

	return 0, false
}

// WritePolicyResp is the response a compliant device gives to a write
// against a register with the given policy.
func WritePolicyResp(policy AccessPolicy) axilite.Resp {
	switch policy {
	case ReadWrite, WriteOnly:
		return axilite.RespOKAY
	default:
		return axilite.RespSLVERR
	}
}

// ReadPolicyResp is the response a compliant device gives to a read against
// a register with the given policy. For rejected reads the device must
// return the all-ones sentinel, reported through sentinelValid.
func ReadPolicyResp(policy AccessPolicy) (resp axilite.Resp, sentinel uint32, sentinelValid bool) {
	switch policy {
	case ReadWrite, ReadOnly:
		return axilite.RespOKAY, 0, false
	default:
		return axilite.RespSLVERR, axilite.SentinelData, true
	}
}

// ExpectedWriteResp predicts the write response for an address. A rejected
// write must not mutate stored state; that is verified against the device,
// not modeled here.
func (l Layout) ExpectedWriteResp(addr uint64) axilite.Resp {
	policy, ok := l.PolicyAt(addr)
	if !ok {
		return axilite.RespSLVERR
	}

	return WritePolicyResp(policy)
}

// ExpectedReadResp predicts the read response for an address. For allowed
// reads the data is the device-held value (last successful write or the
// reset default) and sentinelValid is false. Rejected reads, including all
// out-of-range reads, carry the all-ones sentinel.
func (l Layout) ExpectedReadResp(addr uint64) (resp axilite.Resp, sentinel uint32, sentinelValid bool) {
	policy, ok := l.PolicyAt(addr)
	if !ok {
		return axilite.RespSLVERR, axilite.SentinelData, true
	}

	return ReadPolicyResp(policy)
}
