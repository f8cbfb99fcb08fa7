package txrecording

import (
	"github.com/hdlverify/axilite/axilite"
	"github.com/hdlverify/axilite/sim"
)

// TableName is the table bus transactions are recorded into.
const TableName = "bus_transactions"

// txEntry is one recorded transaction row.
type txEntry struct {
	ID     string
	TimeNs float64
	Kind   string
	Addr   uint64
	Data   uint32
	Strb   uint8
	Resp   uint8
}

// A TxLogger is a hook that records every transaction the agent completes.
// Attach it to an agent with AcceptHook.
type TxLogger struct {
	recorder Recorder
}

// NewTxLogger creates a transaction logger on top of a recorder.
func NewTxLogger(recorder Recorder) *TxLogger {
	recorder.CreateTable(TableName, txEntry{})

	return &TxLogger{recorder: recorder}
}

// Func records agent transaction-complete hook invocations.
func (l *TxLogger) Func(ctx sim.HookCtx) {
	if ctx.Pos != axilite.HookPosTransComplete {
		return
	}

	tx, ok := ctx.Item.(axilite.Transaction)
	if !ok {
		return
	}

	l.recorder.InsertData(TableName, txEntry{
		ID:     tx.ID,
		TimeNs: float64(tx.Time) * 1e9,
		Kind:   tx.Kind,
		Addr:   tx.Addr,
		Data:   tx.Data,
		Strb:   tx.Strb,
		Resp:   uint8(tx.Resp),
	})
}
