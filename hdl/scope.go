package hdl

import (
	"fmt"
	"os"
)

// A Scope groups the signals that form one device boundary.
type Scope struct {
	name     string
	signals  []*Signal
	byName   map[string]*Signal
	netsDone bool
}

// NewScope creates an empty scope.
func NewScope(name string) *Scope {
	return &Scope{
		name:   name,
		byName: make(map[string]*Signal),
	}
}

// Name returns the name of the scope.
func (s *Scope) Name() string {
	return s.name
}

// NewSignal creates a signal and registers it with the scope.
func (s *Scope) NewSignal(name string, width int, kind Kind) *Signal {
	if _, exists := s.byName[name]; exists {
		panic(fmt.Sprintf("signal %s already exists in scope %s",
			name, s.name))
	}

	sig := NewSignal(name, width, kind)
	s.signals = append(s.signals, sig)
	s.byName[name] = sig

	return sig
}

// Signal returns the signal with the given name.
func (s *Scope) Signal(name string) *Signal {
	sig, found := s.byName[name]
	if !found {
		errMsg := fmt.Sprintf(
			"Signal %s is not available in scope %s.\n", name, s.name)
		errMsg += "Available signals include:\n"
		for _, sig := range s.signals {
			errMsg += fmt.Sprintf("\t%s\n", sig.Name())
		}
		fmt.Fprint(os.Stderr, errMsg)

		panic("signal not found")
	}

	return sig
}

// Signals returns all the signals in the scope, in registration order.
func (s *Scope) Signals() []*Signal {
	return s.signals
}

// InitNets drives every net-typed signal in the scope to zero. Only the
// first call has an effect, so every test scenario starts from the same
// deterministic boundary state without re-resetting mid-run.
func (s *Scope) InitNets() {
	if s.netsDone {
		return
	}
	s.netsDone = true

	for _, sig := range s.signals {
		if sig.Kind() == Net {
			sig.Set(0)
		}
	}
}
