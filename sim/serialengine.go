package sim

import (
	"log"
	"reflect"
	"sync"
)

// A SerialEngine is an Engine that always run events one after another.
type SerialEngine struct {
	HookableBase

	timeLock sync.RWMutex
	time     VTimeInSec

	queue EventQueue

	singleRunLock sync.Mutex
}

// NewSerialEngine creates a SerialEngine
func NewSerialEngine() *SerialEngine {
	e := new(SerialEngine)

	e.queue = NewEventQueue()

	return e
}

// Schedule register an event to be happen in the future
func (e *SerialEngine) Schedule(evt Event) {
	now := e.readNow()
	if evt.Time() < now {
		log.Panic("scheduling an event earlier than current time")
	}

	e.queue.Push(evt)
}

func (e *SerialEngine) readNow() VTimeInSec {
	e.timeLock.RLock()
	t := e.time
	e.timeLock.RUnlock()
	return t
}

func (e *SerialEngine) writeNow(t VTimeInSec) {
	e.timeLock.Lock()
	e.time = t
	e.timeLock.Unlock()
}

// Run processes all the events scheduled in the SerialEngine
func (e *SerialEngine) Run() error {
	e.singleRunLock.Lock()
	defer e.singleRunLock.Unlock()

	for e.queue.Len() > 0 {
		e.triggerNextEvent()
	}

	return nil
}

// RunUntil processes events until the queue runs dry or the next event lies
// beyond the given time. Events scheduled after the deadline stay queued, so
// a simulation driven by a self-scheduling clock terminates here rather than
// in the clock itself.
func (e *SerialEngine) RunUntil(t VTimeInSec) error {
	e.singleRunLock.Lock()
	defer e.singleRunLock.Unlock()

	for e.queue.Len() > 0 {
		if e.queue.Peek().Time() > t {
			return nil
		}

		e.triggerNextEvent()
	}

	return nil
}

func (e *SerialEngine) triggerNextEvent() {
	evt := e.queue.Pop()
	now := e.readNow()
	if evt.Time() < now {
		log.Panicf(
			"cannot run event in the past, evt %s @ %.10f, now %.10f",
			reflect.TypeOf(evt), evt.Time(), now,
		)
	}
	e.writeNow(evt.Time())

	hookCtx := HookCtx{
		Domain: e,
		Pos:    HookPosBeforeEvent,
		Item:   evt,
	}
	e.InvokeHook(hookCtx)

	handler := evt.Handler()
	_ = handler.Handle(evt)

	hookCtx.Pos = HookPosAfterEvent
	e.InvokeHook(hookCtx)
}

// CurrentTime returns the current time at which the engine is at.
// Specifically, the run time of the current event.
func (e *SerialEngine) CurrentTime() VTimeInSec {
	return e.readNow()
}
