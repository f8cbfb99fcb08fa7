package axilite

import (
	"fmt"
	"math/rand"
)

// A DelayPolicy decides how many clock cycles the agent idles before
// starting the write handshake. Randomized delays stress the wait-state
// handling of the device; the policy is injectable and seedable so runs
// stay reproducible.
type DelayPolicy interface {
	// NextDelay returns the number of cycles to wait, at least 1.
	NextDelay() int
}

// UniformDelay draws delays uniformly from [Min, Max] cycles.
type UniformDelay struct {
	min int
	max int
	rng *rand.Rand
}

// NewUniformDelay creates a seeded uniform delay policy.
func NewUniformDelay(min, max int, seed int64) *UniformDelay {
	if min < 1 || max < min {
		panic(fmt.Sprintf("invalid delay range [%d, %d]", min, max))
	}

	return &UniformDelay{
		min: min,
		max: max,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NextDelay returns the next delay drawn from the range.
func (d *UniformDelay) NextDelay() int {
	return d.min + d.rng.Intn(d.max-d.min+1)
}

// FixedDelay always waits the same number of cycles.
type FixedDelay int

// NextDelay returns the fixed delay.
func (d FixedDelay) NextDelay() int {
	return int(d)
}
