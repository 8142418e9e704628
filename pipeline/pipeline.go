package pipeline

import (
	"fmt"
	"sort"

	"github.com/jsphweid/fingerdex/model"
	"github.com/jsphweid/fingerdex/predict"
)

// Predict fingers every note, each hand through its own oracle, and
// returns new records sorted by (onset, pitch). The hands share no
// state, so running them one after the other here produces the same
// output as any other schedule would. Caller notes are never mutated.
func Predict(notes []model.Note, right predict.Oracle, left predict.Oracle) ([]model.FingeredNote, error) {
	var rightNotes, leftNotes []model.Note
	for _, n := range notes {
		if n.Hand == model.Left {
			leftNotes = append(leftNotes, n)
		} else {
			rightNotes = append(rightNotes, n)
		}
	}

	rightRes, err := predict.Run(rightNotes, right)
	if err != nil {
		return nil, fmt.Errorf("right hand: %w", err)
	}
	leftRes, err := predict.Run(leftNotes, left)
	if err != nil {
		return nil, fmt.Errorf("left hand: %w", err)
	}

	// left first: on a full (onset, pitch) tie across hands the stable
	// sort keeps the left-hand note ahead
	res := make([]model.FingeredNote, 0, len(rightRes)+len(leftRes))
	res = append(res, leftRes...)
	res = append(res, rightRes...)
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].OnsetMs != res[j].OnsetMs {
			return res[i].OnsetMs < res[j].OnsetMs
		}
		return res[i].Pitch < res[j].Pitch
	})

	return res, nil
}
