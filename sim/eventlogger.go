package sim

import (
	"log"
	"reflect"
)

// LogHookBase provides the common logic for hooks that write into a logger
type LogHookBase struct {
	*log.Logger
}

// EventLogger is a hook that prints the event information
type EventLogger struct {
	LogHookBase
}

// NewEventLogger returns a new EventLogger which will write in to the logger
func NewEventLogger(logger *log.Logger) *EventLogger {
	h := new(EventLogger)
	h.Logger = logger
	return h
}

// Func writes the event information into the logger
func (h *EventLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	h.Logger.Printf("%.10f, %s", evt.Time(), reflect.TypeOf(evt))
}
