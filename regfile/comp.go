// Package regfile is a behavioral model of an AXI4-Lite register file with
// per-register access policies. It serves as the in-repo device under test
// for the bus agent and the compliance scenarios.
package regfile

import (
	"github.com/hdlverify/axilite/axilite"
)

// 2-bit access codes of the packed configuration word.
const (
	codeReadWrite = 0
	codeReadOnly  = 1
	codeWriteOnly = 2
)

// outputs is the registered state driven onto the bus.
type outputs struct {
	awReady bool
	wReady  bool
	bValid  bool
	bResp   axilite.Resp

	arReady bool
	rValid  bool
	rData   uint32
	rResp   axilite.Resp

	violation bool
}

// idleOutputs is the state right after reset: ready to accept on both
// channels, no responses in flight.
var idleOutputs = outputs{
	awReady: true,
	wReady:  true,
	arReady: true,
}

// A Comp is the register-file device model. It follows nonblocking
// assignment semantics: Eval samples the bus at a rising edge and computes
// the next registered state, Commit drives it back onto the bus.
type Comp struct {
	name string
	bus  *axilite.Bus

	dataRegs   int
	accessWord uint64

	regs []uint32
	csr  [4]uint32

	readPending bool
	readAddr    uint64

	cur  outputs
	next outputs
}

// Name returns the name of the component.
func (c *Comp) Name() string {
	return c.name
}

// NumDataRegs returns the configured size of the data region.
func (c *Comp) NumDataRegs() int {
	return c.dataRegs
}

// AccessWord returns the packed per-register policy configuration.
func (c *Comp) AccessWord() uint64 {
	return c.accessWord
}

// Eval samples the bus signals at a rising clock edge and computes the next
// registered state. Reset is asynchronous-low, sampled per edge.
func (c *Comp) Eval(_ uint64) {
	if !c.bus.ARstN.IsHigh() {
		c.reset()
		return
	}

	c.next = c.cur

	c.evalWriteChannel()
	c.evalReadChannel()
}

// Commit drives the state computed by Eval onto the bus.
func (c *Comp) Commit() {
	c.cur = c.next

	b := c.bus
	b.AWReady.SetBool(c.cur.awReady)
	b.WReady.SetBool(c.cur.wReady)
	b.BValid.SetBool(c.cur.bValid)
	b.BResp.Set(uint64(c.cur.bResp))
	b.ARReady.SetBool(c.cur.arReady)
	b.RValid.SetBool(c.cur.rValid)
	b.RData.Set(uint64(c.cur.rData))
	b.RResp.Set(uint64(c.cur.rResp))
	b.AccessViolation.SetBool(c.cur.violation)
}

func (c *Comp) reset() {
	for i := range c.regs {
		c.regs[i] = 0
	}
	c.csr = [4]uint32{}
	c.readPending = false
	c.next = idleOutputs
}

func (c *Comp) evalWriteChannel() {
	b := c.bus

	if c.cur.bValid {
		if b.BReady.IsHigh() {
			c.next.bValid = false
			c.next.awReady = true
			c.next.wReady = true
		}
		return
	}

	if c.cur.awReady && c.cur.wReady &&
		b.AWValid.IsHigh() && b.WValid.IsHigh() {
		addr := b.AWAddr.Get()
		data := uint32(b.WData.Get())
		strb := uint8(b.WStrb.Get())

		resp, violation := c.write(addr, data, strb)

		c.next.bValid = true
		c.next.bResp = resp
		c.next.awReady = false
		c.next.wReady = false
		c.next.violation = violation
	}
}

func (c *Comp) evalReadChannel() {
	b := c.bus

	if c.readPending {
		data, resp, violation := c.read(c.readAddr)
		c.next.rValid = true
		c.next.rData = data
		c.next.rResp = resp
		c.next.violation = violation
		c.readPending = false
		return
	}

	if c.cur.rValid {
		if b.RReady.IsHigh() {
			c.next.rValid = false
		}
		return
	}

	if b.ARValid.IsHigh() && c.cur.arReady {
		c.readAddr = b.ARAddr.Get()
		c.readPending = true
	}
}

// write applies one write transaction and reports the response together
// with the access-violation flag. Rejected writes mutate nothing.
func (c *Comp) write(addr uint64, data uint32, strb uint8) (axilite.Resp, bool) {
	if addr >= uint64(c.dataRegs+4) {
		return axilite.RespSLVERR, true
	}

	if addr < uint64(c.dataRegs) {
		switch c.policyCode(int(addr)) {
		case codeReadWrite, codeWriteOnly:
			c.regs[addr] = applyStrobes(c.regs[addr], data, strb)
			return axilite.RespOKAY, false
		default:
			return axilite.RespSLVERR, true
		}
	}

	offset := addr - uint64(c.dataRegs)
	if offset == 1 { // mstatus is the only writable CSR
		c.csr[offset] = applyStrobes(c.csr[offset], data, strb)
		return axilite.RespOKAY, false
	}

	return axilite.RespSLVERR, true
}

// read resolves one read transaction.
func (c *Comp) read(addr uint64) (uint32, axilite.Resp, bool) {
	if addr >= uint64(c.dataRegs+4) {
		return axilite.SentinelData, axilite.RespSLVERR, true
	}

	if addr < uint64(c.dataRegs) {
		switch c.policyCode(int(addr)) {
		case codeReadWrite, codeReadOnly:
			return c.regs[addr], axilite.RespOKAY, false
		default:
			return axilite.SentinelData, axilite.RespSLVERR, true
		}
	}

	return c.csr[addr-uint64(c.dataRegs)], axilite.RespOKAY, false
}

func (c *Comp) policyCode(index int) int {
	return int((c.accessWord >> (index * 2)) & 0x3)
}

func applyStrobes(old, data uint32, strb uint8) uint32 {
	merged := old
	for i := 0; i < 4; i++ {
		if strb&(1<<i) != 0 {
			mask := uint32(0xFF) << (8 * i)
			merged = (merged &^ mask) | (data & mask)
		}
	}
	return merged
}
