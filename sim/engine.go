package sim

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}

// EventScheduler can be used to schedule future events.
type EventScheduler interface {
	Schedule(e Event)
}

// An Engine is a unit that keeps the discrete event simulation run.
type Engine interface {
	Hookable
	TimeTeller
	EventScheduler

	// Run will process all the events until the simulation finishes
	Run() error

	// RunUntil processes all the events up to and including the given time,
	// leaving later events in the queue. It is the primitive that lets a test
	// scenario bound the total simulated duration of a free-running clock.
	RunUntil(t VTimeInSec) error
}
