package parameter

import "time"

// Tick driver defaults
const (
	// DefaultTickInterval is the fixed logic tick period
	DefaultTickInterval = 16 * time.Millisecond

	// MaxTicksBehind caps catch-up ticks after a stall before the
	// scheduler resynchronizes its deadline
	MaxTicksBehind = 4
)
