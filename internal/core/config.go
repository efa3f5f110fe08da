package core

// RuntimeConfig contains configuration passed to the simulation by its host.
// The tick rate fixes the step size of headless runs; the seed drives every
// random roll so that runs are reproducible.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in the host
	}
}

// StepMs returns the length of one tick in milliseconds.
// Non-positive tick rates fall back to 60 ticks per second.
func (c RuntimeConfig) StepMs() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1000.0 / float64(rate)
}
