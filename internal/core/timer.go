package core

import "time"

// FixedStep paces source updates at a steady steps-per-second rate,
// independent of the display frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting the given rate. The first
// call to ShouldStep always fires.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Interval returns the duration of one step.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether one step is due and consumes it.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Due drains every step that is due and returns how many there were,
// capped at limit so a stalled frame does not trigger a burst of catch-up work.
func (f *FixedStep) Due(limit int) int {
	n := 0
	for n < limit && f.ShouldStep() {
		n++
	}
	if n == limit && f.accumulator > f.step {
		f.accumulator = f.step
	}
	return n
}
