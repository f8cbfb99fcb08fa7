package axilite

import (
	"github.com/hdlverify/axilite/hdl"
)

// A Bus is the fixed AXI4-Lite-like signal set on the device boundary.
// Master-driven signals are nets, device-driven signals are regs; the
// one-shot net initialization of the agent covers exactly the master side.
type Bus struct {
	scope *hdl.Scope

	// Write address channel
	AWAddr  *hdl.Signal
	AWValid *hdl.Signal
	AWReady *hdl.Signal

	// Write data channel
	WData  *hdl.Signal
	WStrb  *hdl.Signal
	WValid *hdl.Signal
	WReady *hdl.Signal

	// Write response channel
	BValid *hdl.Signal
	BReady *hdl.Signal
	BResp  *hdl.Signal

	// Read address channel
	ARAddr  *hdl.Signal
	ARValid *hdl.Signal
	ARReady *hdl.Signal

	// Read data channel
	RData  *hdl.Signal
	RValid *hdl.Signal
	RReady *hdl.Signal
	RResp  *hdl.Signal

	// Control and side-band
	ARstN           *hdl.Signal
	AccessViolation *hdl.Signal
}

// NewBus creates the AXI4-Lite signal set in a fresh scope. addrWidth must
// be wide enough to cover the data-register region plus the CSR region of
// the target device.
func NewBus(name string, addrWidth int) *Bus {
	scope := hdl.NewScope(name)

	b := &Bus{scope: scope}

	b.AWAddr = scope.NewSignal("awaddr", addrWidth, hdl.Net)
	b.AWValid = scope.NewSignal("awvalid", 1, hdl.Net)
	b.AWReady = scope.NewSignal("awready", 1, hdl.Reg)

	b.WData = scope.NewSignal("wdata", 32, hdl.Net)
	b.WStrb = scope.NewSignal("wstrb", 4, hdl.Net)
	b.WValid = scope.NewSignal("wvalid", 1, hdl.Net)
	b.WReady = scope.NewSignal("wready", 1, hdl.Reg)

	b.BValid = scope.NewSignal("bvalid", 1, hdl.Reg)
	b.BReady = scope.NewSignal("bready", 1, hdl.Net)
	b.BResp = scope.NewSignal("bresp", 2, hdl.Reg)

	b.ARAddr = scope.NewSignal("araddr", addrWidth, hdl.Net)
	b.ARValid = scope.NewSignal("arvalid", 1, hdl.Net)
	b.ARReady = scope.NewSignal("arready", 1, hdl.Reg)

	b.RData = scope.NewSignal("rdata", 32, hdl.Reg)
	b.RValid = scope.NewSignal("rvalid", 1, hdl.Reg)
	b.RReady = scope.NewSignal("rready", 1, hdl.Net)
	b.RResp = scope.NewSignal("rresp", 2, hdl.Reg)

	b.ARstN = scope.NewSignal("arst_n", 1, hdl.Net)
	b.AccessViolation = scope.NewSignal("access_violation", 1, hdl.Reg)

	return b
}

// Scope returns the scope holding all the bus signals.
func (b *Bus) Scope() *hdl.Scope {
	return b.scope
}
