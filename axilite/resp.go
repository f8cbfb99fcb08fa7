// Package axilite provides an AXI4-Lite bus master for driving write and
// read transactions against a device under test at signal level.
package axilite

import "fmt"

// Resp is an AXI4-Lite response code. The devices targeted by this agent
// only ever return OKAY or SLVERR; EXOKAY and DECERR stay unused.
type Resp uint8

const (
	// RespOKAY indicates the slave accepted the operation.
	RespOKAY Resp = 0

	// RespSLVERR indicates the slave rejected the operation.
	RespSLVERR Resp = 2
)

func (r Resp) String() string {
	switch r {
	case RespOKAY:
		return "OKAY"
	case RespSLVERR:
		return "SLVERR"
	default:
		return fmt.Sprintf("Resp(%d)", uint8(r))
	}
}

// SentinelData is the all-ones value a compliant device returns for reads
// it rejects.
const SentinelData uint32 = 0xFFFFFFFF
