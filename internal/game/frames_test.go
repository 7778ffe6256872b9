package game

import (
	"testing"
	"time"
)

// simulate ticks a scheduler every interval for the given wall time and
// returns the frames it asked for.
func simulate(total FrameCount, interval, wall time.Duration, rate float64) uint32 {
	f := NewFrameInfo(total)
	start := time.Unix(0, 0)
	for at := time.Duration(0); at <= wall; at += interval {
		f.Ran += f.FramesToRun(start.Add(at), rate)
	}
	return f.Ran
}

func TestFramesToRunFirstTicks(t *testing.T) {
	f := NewFrameInfo(Infinite)
	now := time.Unix(0, 0)

	if n := f.FramesToRun(now, 1.7); n != 1 {
		t.Errorf("first FramesToRun() = %d, expected 1", n)
	}
	f.Ran++
	if n := f.FramesToRun(now.Add(time.Millisecond), 2.9); n != 2 {
		t.Errorf("second FramesToRun() = %d, expected 2", n)
	}
}

func TestFramesToRunRates(t *testing.T) {
	frame := time.Second / 60

	tests := []struct {
		name     string
		interval time.Duration
		rate     float64
		min, max uint32
	}{
		{"60Hz", frame, 1, 598, 602},
		{"30Hz", 2 * frame, 1, 598, 602},
		{"double speed", frame, 2, 1196, 1204},
		{"double speed at 30Hz", 2 * frame, 2, 1196, 1204},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := simulate(Infinite, tc.interval, 10*time.Second, tc.rate)
			if got < tc.min || got > tc.max {
				t.Errorf("frames over 10s = %d, expected %d..%d", got, tc.min, tc.max)
			}
		})
	}
}

func TestFramesToRunNeverExceedsRemaining(t *testing.T) {
	f := NewFrameInfo(Frames(3))
	now := time.Unix(0, 0)

	f.Ran += f.FramesToRun(now, 1)
	if n := f.FramesToRun(now, 4); n != 2 {
		t.Errorf("FramesToRun() = %d, expected clamp to 2", n)
	}
	f.Ran += 2
	if rem := f.Remaining(); rem.Infinite || rem.N != 0 {
		t.Errorf("Remaining() = %+v, expected 0", rem)
	}
	if n := f.FramesToRun(now.Add(time.Second), 1); n != 0 {
		t.Errorf("FramesToRun() after the end = %d, expected 0", n)
	}
}

func TestFramesToRunCapsSuspension(t *testing.T) {
	f := NewFrameInfo(Infinite)
	now := time.Unix(0, 0)
	f.Ran += f.FramesToRun(now, 1)
	f.Ran += f.FramesToRun(now.Add(time.Second/60), 1)

	n := f.FramesToRun(now.Add(30*time.Second), 1)
	if n > 61 {
		t.Errorf("FramesToRun() after 30s gap = %d, expected at most one second of frames", n)
	}
}

func TestResumeSkipsPausedTime(t *testing.T) {
	f := NewFrameInfo(Infinite)
	now := time.Unix(0, 0)
	f.Ran += f.FramesToRun(now, 1)
	f.Ran += f.FramesToRun(now.Add(time.Second/60), 1)

	resumed := now.Add(time.Hour)
	f.Resume(resumed)
	if n := f.FramesToRun(resumed.Add(time.Second/60), 1); n != 1 {
		t.Errorf("FramesToRun() after resume = %d, expected 1", n)
	}
}
