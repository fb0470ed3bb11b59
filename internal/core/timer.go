package core

import "time"

// maxBacklog bounds how much unsimulated time carries over between frames so
// a stalled window does not trigger a burst of catch-up ticks.
const maxBacklog = time.Second

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	return newFixedStepWithClock(tps, time.Now)
}

func newFixedStepWithClock(tps int, now func() time.Time) *FixedStep {
	fs := &FixedStep{now: now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

func (f *FixedStep) advance() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator > maxBacklog {
		f.accumulator = maxBacklog
	}
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	f.advance()
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Due returns the number of whole ticks owed since the previous call and
// consumes them.
func (f *FixedStep) Due() int {
	f.advance()
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	return n
}

// Reset drops any accumulated time, e.g. after unpausing.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
