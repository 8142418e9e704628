package predict

import (
	"fmt"
	"sort"

	"github.com/jsphweid/fingerdex/constants"
	"github.com/jsphweid/fingerdex/model"
	"github.com/jsphweid/fingerdex/state"
	"github.com/jsphweid/fingerdex/token"
	"github.com/jsphweid/fingerdex/util"
)

// Oracle scores one encoded note. It returns five scores, one per
// finger 1-5, higher is better. Consistent ranking is the only thing
// the predictor relies on.
type Oracle interface {
	Score(m token.Matrix) ([]float32, error)
}

// Run predicts a finger for every note of one hand. Notes are
// processed in (onset, pitch) order, so chord members see the finger
// state left behind by their lower neighbors. The input slice is never
// modified; results come back in processing order.
func Run(notes []model.Note, oracle Oracle) ([]model.FingeredNote, error) {
	if len(notes) == 0 {
		return nil, nil
	}

	sorted := make([]model.Note, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].OnsetMs != sorted[j].OnsetMs {
			return sorted[i].OnsetMs < sorted[j].OnsetMs
		}
		return sorted[i].Pitch < sorted[j].Pitch
	})

	fingers := state.New()
	res := make([]model.FingeredNote, 0, len(sorted))

	for i, note := range sorted {
		tokens := token.Encode(note.Pitch, fingers, buildLookahead(sorted, i))

		// The oracle runs even when the finger is pinned, so a run
		// makes the same number of calls either way.
		scores, err := oracle.Score(tokens)
		if err != nil {
			return nil, fmt.Errorf("scoring note at %vms: %w", note.OnsetMs, err)
		}
		if len(scores) != constants.NumFingers {
			return nil, fmt.Errorf("scoring note at %vms: got %v scores, want %v",
				note.OnsetMs, len(scores), constants.NumFingers)
		}

		finger := note.FixedFinger
		if finger < 1 || finger > constants.NumFingers {
			finger = argmax(scores) + 1
		}
		res = append(res, model.FingeredNote{Note: note, Finger: finger})

		fingers.Update(finger-1, note.Pitch, note.DurationMs)
		if i+1 < len(sorted) {
			fingers.Advance(sorted[i+1].OnsetMs - note.OnsetMs)
		}
	}

	return res, nil
}

func buildLookahead(sorted []model.Note, i int) []token.Lookahead {
	end := util.Min(i+1+constants.LookaheadSize, len(sorted))
	var res []token.Lookahead
	for _, future := range sorted[i+1 : end] {
		hint := 0
		if future.FixedFinger >= 1 && future.FixedFinger <= constants.NumFingers {
			hint = future.FixedFinger
		}
		res = append(res, token.Lookahead{
			Pitch:       future.Pitch,
			TimeUntilMs: future.OnsetMs - sorted[i].OnsetMs,
			Hint:        hint,
		})
	}
	return res
}

// first-seen wins on ties, so equal scores resolve to the lowest finger
func argmax(scores []float32) int {
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return best
}
