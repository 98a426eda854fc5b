package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStep(rate int) (*FixedStep, *fakeClock) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(rate)
	fs.now = clk.now
	return fs, clk
}

func TestFixedStepFiresImmediately(t *testing.T) {
	fs, _ := newTestStep(10)
	if !fs.ShouldStep() {
		t.Fatal("first ShouldStep = false, want true")
	}
	if fs.ShouldStep() {
		t.Fatal("second ShouldStep without elapsed time = true, want false")
	}
}

func TestFixedStepRate(t *testing.T) {
	fs, clk := newTestStep(10)
	fs.ShouldStep()

	steps := 0
	for i := 0; i < 100; i++ {
		clk.advance(10 * time.Millisecond)
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 10 {
		t.Fatalf("steps in one second = %d, want 10", steps)
	}
}

func TestFixedStepDueIsCapped(t *testing.T) {
	fs, clk := newTestStep(100)
	fs.ShouldStep()
	clk.advance(time.Second)
	if n := fs.Due(5); n != 5 {
		t.Fatalf("Due(5) = %d, want 5", n)
	}
	if n := fs.Due(5); n != 1 {
		t.Fatalf("Due after cap = %d, want 1 (backlog dropped)", n)
	}
}

func TestFixedStepDefaultsRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval = %v, want %v", fs.Interval(), time.Second/60)
	}
}
