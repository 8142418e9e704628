package token

import (
	"github.com/jsphweid/fingerdex/constants"
	"github.com/jsphweid/fingerdex/state"
	"github.com/jsphweid/fingerdex/util"
)

// Rows: 5 previous-use (one per finger), 1 current, 20 lookahead.
const NumRows = constants.NumFingers + 1 + constants.LookaheadSize
const NumFeatures = 5

// Feature columns. colPitch holds an offset from the current note on
// previous/lookahead rows but a pitch class on the current row.
const (
	colPitch = iota
	colTime
	colBlackKey
	colType
	colHint
)

// colType discriminator values.
const (
	typePrevious  float32 = 0.0
	typeCurrent   float32 = 0.5
	typeLookahead float32 = 1.0
)

// Matrix is one model input. The shape is fixed no matter how many
// real lookahead notes exist; unused lookahead rows are all -1.
type Matrix = [NumRows][NumFeatures]float32

// Lookahead is one future note as seen from the note being encoded.
// Hint is a fixed finger 1-5, or 0 when the future note is
// unconstrained. A negative TimeUntilMs means the gap is unknown.
type Lookahead struct {
	Pitch       int
	TimeUntilMs float64
	Hint        int
}

// key_index%12 of A#, C#, D#, F#, G# when keyed off A0 = 21
var blackKeys = map[int]bool{1: true, 4: true, 6: true, 9: true, 11: true}

func mod12(keyIndex int) int {
	m := keyIndex % 12
	if m < 0 {
		m += 12
	}
	return m
}

// IsBlackKey returns 1 for a black key, 0 for a white key and -1 when
// the pitch is absent.
func IsBlackKey(pitch int) float32 {
	if pitch < 0 {
		return -1
	}
	if blackKeys[mod12(pitch-constants.MidiLow)] {
		return 1
	}
	return 0
}

// PitchClass maps a pitch to its class 0-11 scaled to [0,1], or -1
// when the pitch is absent.
func PitchClass(pitch int) float32 {
	if pitch < 0 {
		return -1
	}
	return float32(float64(mod12(pitch-constants.MidiLow)) / 11.0)
}

func norm(pitch int) float64 {
	return float64(pitch-constants.MidiLow) / constants.PitchRange
}

// Encode builds the model input for one note. It is a pure function of
// its arguments: the finger tracker is only read, and identical inputs
// produce identical matrices. These normalizations have to stay exactly
// as the model was trained on them.
func Encode(currentPitch int, fingers *state.Fingers, lookahead []Lookahead) Matrix {
	var m Matrix
	refNorm := norm(currentPitch)

	for f := 0; f < constants.NumFingers; f++ {
		last := fingers.LastPitch(f)
		if last >= 0 {
			m[f][colPitch] = float32(norm(last) - refNorm)
		} else {
			m[f][colPitch] = -1
		}
		if fingers.NeverUsed(f) {
			m[f][colTime] = 1
		} else {
			m[f][colTime] = float32(util.Clamp(fingers.SinceReleaseSec(f), 0, 10) / 10)
		}
		m[f][colBlackKey] = IsBlackKey(last)
		m[f][colType] = typePrevious
		m[f][colHint] = -1
	}

	cur := constants.NumFingers
	m[cur][colPitch] = PitchClass(currentPitch)
	m[cur][colTime] = 0
	m[cur][colBlackKey] = IsBlackKey(currentPitch)
	m[cur][colType] = typeCurrent
	m[cur][colHint] = -1

	for j := 0; j < constants.LookaheadSize; j++ {
		row := cur + 1 + j
		if j >= len(lookahead) {
			for c := 0; c < NumFeatures; c++ {
				m[row][c] = -1
			}
			continue
		}

		ln := lookahead[j]
		if ln.Pitch >= 0 {
			m[row][colPitch] = float32(norm(ln.Pitch) - refNorm)
		} else {
			m[row][colPitch] = -1
		}
		if ln.TimeUntilMs < 0 {
			m[row][colTime] = -1
		} else {
			m[row][colTime] = float32(util.Min(ln.TimeUntilMs/1000.0, 10.0) / 10.0)
		}
		m[row][colBlackKey] = IsBlackKey(ln.Pitch)
		m[row][colType] = typeLookahead
		if ln.Hint >= 1 && ln.Hint <= constants.NumFingers {
			m[row][colHint] = float32(ln.Hint-1) / 4.0
		} else {
			m[row][colHint] = -1
		}
	}

	return m
}
