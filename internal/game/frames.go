package game

import (
	"math"
	"time"

	"github.com/vovakirdan/weegames/internal/core"
)

// FrameCount is a number of frames or Infinite.
type FrameCount struct {
	Infinite bool
	N        uint32
}

// Frames returns a finite count.
func Frames(n uint32) FrameCount { return FrameCount{N: n} }

// Infinite never runs out.
var Infinite = FrameCount{Infinite: true}

// maxCatchUp caps how much wall time a single tick may account for, so a
// suspended window does not simulate a burst of frames on return.
const maxCatchUp = time.Second

// FrameInfo schedules logical 60 Hz frames against wall-clock ticks.
type FrameInfo struct {
	Ran               uint32
	Total             FrameCount
	StepsTaken        uint64
	ToRun             uint32
	PreviousFrameTime time.Time
	TotalTimeElapsed  time.Duration
}

// NewFrameInfo creates a scheduler for a scene of the given length.
func NewFrameInfo(total FrameCount) FrameInfo {
	return FrameInfo{Total: total}
}

// Remaining returns how many frames are left.
func (f *FrameInfo) Remaining() FrameCount {
	if f.Total.Infinite {
		return Infinite
	}
	if f.Ran >= f.Total.N {
		return Frames(0)
	}
	return Frames(f.Total.N - f.Ran)
}

// FramesToRun returns how many frames to simulate this tick.
//
// The first tick runs one frame and the second runs int(rate). After that
// the accumulated wall time decides: the scheduler aims one frame behind
// the expected count, always runs at least one frame, and never runs past
// the end of a finite scene.
func (f *FrameInfo) FramesToRun(now time.Time, rate float64) uint32 {
	if rate <= 0 {
		rate = 1
	}

	var n uint32
	switch f.StepsTaken {
	case 0:
		n = 1
	case 1:
		f.accumulate(now)
		n = max(1, uint32(rate))
	default:
		f.accumulate(now)
		expected := int64(math.Floor(f.TotalTimeElapsed.Seconds()*core.FPS*rate)) + 1
		behind := expected - int64(f.Ran) - 1
		switch {
		case behind <= 1:
			n = 1
		default:
			n = uint32(behind - 1)
		}
	}
	f.PreviousFrameTime = now
	f.StepsTaken++

	if rem := f.Remaining(); !rem.Infinite && n > rem.N {
		n = rem.N
	}
	f.ToRun = n
	return n
}

// Resume restarts wall-clock accounting after a pause so the paused time is
// not simulated.
func (f *FrameInfo) Resume(now time.Time) {
	f.PreviousFrameTime = now
}

func (f *FrameInfo) accumulate(now time.Time) {
	elapsed := now.Sub(f.PreviousFrameTime)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxCatchUp {
		elapsed = maxCatchUp
	}
	f.TotalTimeElapsed += elapsed
}
