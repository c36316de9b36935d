package core

import (
	"testing"
	"time"
)

func TestClockElapsedIsExact(t *testing.T) {
	c := NewClock(60)
	for i := 0; i < 90; i++ {
		c.Advance()
	}

	if got := c.Elapsed(0); got != 1500*time.Millisecond {
		t.Errorf("Elapsed(0) after 90 ticks = %v, expected 1.5s", got)
	}
	if got := c.Elapsed(30); got != time.Second {
		t.Errorf("Elapsed(30) = %v, expected 1s", got)
	}
	if got := c.Elapsed(90); got != 0 {
		t.Errorf("Elapsed(now) = %v, expected 0", got)
	}
}

func TestClockDefaults(t *testing.T) {
	c := NewClock(0)
	if c.Rate() != 60 {
		t.Errorf("Rate() = %d, expected fallback 60", c.Rate())
	}
	if c.Interval() != time.Second/60 {
		t.Errorf("Interval() = %v, expected %v", c.Interval(), time.Second/60)
	}
	if c.Ticks() != 0 {
		t.Errorf("new clock should start at 0, got %d", c.Ticks())
	}
	if c.Advance() != 1 {
		t.Error("Advance should return the new tick count")
	}
}

func TestCueRecorder(t *testing.T) {
	var r CueRecorder
	r.Play(CueFlap)
	r.Play(CuePoint)
	r.Play(CuePoint)

	if r.Count(CuePoint) != 2 {
		t.Errorf("Count(point) = %d, expected 2", r.Count(CuePoint))
	}
	if r.Count(CueDie) != 0 {
		t.Errorf("Count(die) = %d, expected 0", r.Count(CueDie))
	}
	if len(Cues()) != 4 {
		t.Errorf("Cues() = %v, expected four cues", Cues())
	}
	if CueHit.String() != "hit" {
		t.Errorf("CueHit.String() = %q", CueHit.String())
	}
}
