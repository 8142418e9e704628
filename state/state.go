package state

import (
	"math"

	"github.com/jsphweid/fingerdex/constants"
)

// Fingers tracks, for one hand, the last pitch and the time since
// release of each of the five fingers. Finger indexes are 0-4, thumb
// first. A hand run owns exactly one Fingers; the two hands never
// share one.
type Fingers struct {
	lastPitch       [constants.NumFingers]int
	sinceReleaseSec [constants.NumFingers]float64
}

// New returns a tracker with every finger unused: pitch -1, time +Inf.
func New() *Fingers {
	var f Fingers
	for i := 0; i < constants.NumFingers; i++ {
		f.lastPitch[i] = -1
		f.sinceReleaseSec[i] = math.Inf(1)
	}
	return &f
}

// Update records that finger (0-4) just played pitch. The release
// clock is set to minus the note's duration: negative means the key is
// still down.
func (s *Fingers) Update(finger int, pitch int, durationMs float64) {
	if durationMs <= 0 {
		durationMs = constants.DefaultDurationMs
	}
	s.lastPitch[finger] = pitch
	s.sinceReleaseSec[finger] = -durationMs / 1000.0
}

// Advance moves every used finger's release clock forward by deltaMs.
// Unused fingers stay at +Inf.
func (s *Fingers) Advance(deltaMs float64) {
	for i := 0; i < constants.NumFingers; i++ {
		if !math.IsInf(s.sinceReleaseSec[i], 1) {
			s.sinceReleaseSec[i] += deltaMs / 1000.0
		}
	}
}

func (s *Fingers) LastPitch(finger int) int {
	return s.lastPitch[finger]
}

func (s *Fingers) SinceReleaseSec(finger int) float64 {
	return s.sinceReleaseSec[finger]
}

func (s *Fingers) NeverUsed(finger int) bool {
	return math.IsInf(s.sinceReleaseSec[finger], 1)
}
