package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) add(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepFirstCallSteps(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := newFixedStepWithClock(10, clock.now)
	if !fs.ShouldStep() {
		t.Fatal("first frame should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("second frame without elapsed time should not step")
	}
	clock.add(100 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full step elapsed but no tick was reported")
	}
}

func TestFixedStepDueCountsWholeSteps(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := newFixedStepWithClock(10, clock.now)
	if got := fs.Due(); got != 1 {
		t.Fatalf("initial Due = %d, want 1", got)
	}
	clock.add(350 * time.Millisecond)
	if got := fs.Due(); got != 3 {
		t.Fatalf("Due after 350ms = %d, want 3", got)
	}
	clock.add(50 * time.Millisecond)
	if got := fs.Due(); got != 1 {
		t.Fatalf("leftover time was not carried: Due = %d, want 1", got)
	}
}

func TestFixedStepCapsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := newFixedStepWithClock(60, clock.now)
	fs.Due()
	clock.add(30 * time.Second)
	got := fs.Due()
	want := int(time.Second / fs.Step())
	if got != want {
		t.Fatalf("Due after a long stall = %d, want %d", got, want)
	}
}

func TestFixedStepReset(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := newFixedStepWithClock(10, clock.now)
	fs.Due()
	clock.add(500 * time.Millisecond)
	fs.Reset()
	if got := fs.Due(); got != 0 {
		t.Fatalf("Due after Reset = %d, want 0", got)
	}
}

func TestSetTPSDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("step = %v, want 60 TPS default", fs.Step())
	}
	fs.SetTPS(20)
	if fs.Step() != 50*time.Millisecond {
		t.Fatalf("step = %v, want 50ms", fs.Step())
	}
}
