package core

import (
	"testing"
	"time"
)

func TestClockCarriesRemainder(t *testing.T) {
	c := NewClock(100 * time.Millisecond)

	if c.Advance(60 * time.Millisecond) {
		t.Fatal("tick fired before the interval elapsed")
	}
	if !c.Advance(60 * time.Millisecond) {
		t.Fatal("expected tick after 120ms")
	}
	if c.Elapsed() != 20*time.Millisecond {
		t.Fatalf("elapsed=%v, expected 20ms remainder", c.Elapsed())
	}
	if !c.Advance(80 * time.Millisecond) {
		t.Fatal("remainder should count towards the next tick")
	}
	if c.Elapsed() != 0 {
		t.Fatalf("elapsed=%v, expected 0", c.Elapsed())
	}
}

func TestClockFiresOncePerAdvance(t *testing.T) {
	c := NewClock(100 * time.Millisecond)
	if !c.Advance(250 * time.Millisecond) {
		t.Fatal("expected tick")
	}
	if c.Elapsed() != 150*time.Millisecond {
		t.Fatalf("elapsed=%v, expected 150ms", c.Elapsed())
	}
	if !c.Advance(0) {
		t.Fatal("backlog should fire on the next frame")
	}
	if c.Advance(0) {
		t.Fatal("50ms backlog must not fire")
	}
}

func TestClockDefaultInterval(t *testing.T) {
	if got := NewClock(0).Interval(); got != DefaultTickInterval {
		t.Fatalf("interval=%v, expected default %v", got, DefaultTickInterval)
	}
	c := NewClock(time.Second)
	c.Advance(-time.Second)
	if c.Elapsed() != 0 {
		t.Fatal("negative deltas must be ignored")
	}
}

func TestFrameTimerDelta(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	ft := &FrameTimer{now: func() time.Time { return now }}
	if d := ft.Delta(); d != 0 {
		t.Fatalf("first delta=%v, expected 0", d)
	}
	now = base.Add(16 * time.Millisecond)
	if d := ft.Delta(); d != 16*time.Millisecond {
		t.Fatalf("delta=%v, expected 16ms", d)
	}
}
