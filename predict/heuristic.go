package predict

import (
	"github.com/jsphweid/fingerdex/constants"
	"github.com/jsphweid/fingerdex/model"
	"github.com/jsphweid/fingerdex/token"
)

// Heuristic is a stand-in scoring backend so the CLI and server run
// end to end without a model runtime. It reads the same matrices a
// model would: fingers that recently played a nearby pitch score high,
// fingers still holding a key score low, and an unused hand falls back
// to a positional prior that keeps the thumb toward the bottom of the
// right hand and the top of the left.
type Heuristic struct {
	Hand model.Hand
}

func (h Heuristic) Score(m token.Matrix) ([]float32, error) {
	currentClass := m[constants.NumFingers][0]

	scores := make([]float32, constants.NumFingers)
	for f := 0; f < constants.NumFingers; f++ {
		pos := float32(f) / float32(constants.NumFingers-1)
		if h.Hand == model.Left {
			pos = 1 - pos
		}
		s := -abs32(currentClass - pos)

		offset := m[f][0]
		timeSince := m[f][1]
		if timeSince != 1 {
			// the finger has history, prefer keeping it where it was
			s -= abs32(offset) * 8
			if timeSince == 0 {
				// key is still down
				s -= 2
			}
		}
		scores[f] = s
	}

	return scores, nil
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
