package token

import (
	"fmt"
	"testing"

	"github.com/jsphweid/fingerdex/state"
	"github.com/stretchr/testify/assert"
)

func TestEncodeIsDeterministic(t *testing.T) {
	fingers := state.New()
	fingers.Update(0, 60, 500)
	fingers.Update(3, 67, 200)
	fingers.Advance(300)
	lookahead := []Lookahead{
		{Pitch: 64, TimeUntilMs: 300, Hint: 0},
		{Pitch: 65, TimeUntilMs: 600, Hint: 2},
	}

	first := Encode(62, fingers, lookahead)
	second := Encode(62, fingers, lookahead)

	assert.Equal(t, first, second)
}

func TestEncodeFreshStateNoLookahead(t *testing.T) {
	m := Encode(60, state.New(), nil)

	assert := assert.New(t)

	// previous rows: never used
	for f := 0; f < 5; f++ {
		assert.Equal(float32(-1), m[f][0])
		assert.Equal(float32(1), m[f][1])
		assert.Equal(float32(-1), m[f][2])
		assert.Equal(float32(0), m[f][3])
		assert.Equal(float32(-1), m[f][4])
	}

	// current row: pitch class of C4 is (60-21)%12 = 3
	assert.InDelta(3.0/11.0, m[5][0], 1e-6)
	assert.Equal(float32(0), m[5][1])
	assert.Equal(float32(0), m[5][2])
	assert.Equal(float32(0.5), m[5][3])
	assert.Equal(float32(-1), m[5][4])

	// every lookahead row is padding
	for row := 6; row < NumRows; row++ {
		for c := 0; c < NumFeatures; c++ {
			assert.Equal(float32(-1), m[row][c], fmt.Sprintf("row %v col %v", row, c))
		}
	}
}

func TestEncodePreviousRowWithHistory(t *testing.T) {
	fingers := state.New()
	fingers.Update(0, 61, 500)

	m := Encode(60, fingers, nil)

	assert := assert.New(t)
	// offset relative to the current note's normalized pitch
	assert.InDelta(1.0/87.0, m[0][0], 1e-6)
	// still holding: -0.5s clamps to 0
	assert.Equal(float32(0), m[0][1])
	// C#4 is a black key
	assert.Equal(float32(1), m[0][2])

	// the other fingers stay untouched
	assert.Equal(float32(-1), m[1][0])
	assert.Equal(float32(1), m[1][1])
}

func TestEncodeTimeSinceReleaseScalesAndClamps(t *testing.T) {
	fingers := state.New()
	fingers.Update(2, 64, 500)
	fingers.Advance(2500)

	m := Encode(60, fingers, nil)
	// -0.5s + 2.5s = 2s -> 0.2
	assert.InDelta(t, 0.2, m[2][1], 1e-6)

	fingers.Advance(60000)
	m = Encode(60, fingers, nil)
	// way past 10s caps at 1.0
	assert.Equal(t, float32(1), m[2][1])
}

func TestEncodeLookaheadRows(t *testing.T) {
	lookahead := []Lookahead{
		{Pitch: 65, TimeUntilMs: 300, Hint: 3},
		{Pitch: -1, TimeUntilMs: -1, Hint: 0},
	}

	m := Encode(60, state.New(), lookahead)

	assert := assert.New(t)
	assert.InDelta((65.0-21.0)/87.0-(60.0-21.0)/87.0, m[6][0], 1e-6)
	assert.InDelta(0.03, m[6][1], 1e-6)
	assert.Equal(float32(0), m[6][2])
	assert.Equal(float32(1), m[6][3])
	// hint 3 encodes as (3-1)/4
	assert.Equal(float32(0.5), m[6][4])

	// absent pitch and unknown gap become sentinels, row is still a lookahead row
	assert.Equal(float32(-1), m[7][0])
	assert.Equal(float32(-1), m[7][1])
	assert.Equal(float32(-1), m[7][2])
	assert.Equal(float32(1), m[7][3])
	assert.Equal(float32(-1), m[7][4])

	// rows past the real lookahead are all padding
	for row := 8; row < NumRows; row++ {
		for c := 0; c < NumFeatures; c++ {
			assert.Equal(float32(-1), m[row][c])
		}
	}
}

func TestEncodeLookaheadTimeCapsAtTenSeconds(t *testing.T) {
	m := Encode(60, state.New(), []Lookahead{{Pitch: 62, TimeUntilMs: 15000}})
	assert.Equal(t, float32(1), m[6][1])
}

func TestEncodeInvalidHintIsNoHint(t *testing.T) {
	cases := []int{0, -2, 6, 99}
	for _, hint := range cases {
		t.Run(fmt.Sprintf("hint %v", hint), func(t *testing.T) {
			m := Encode(60, state.New(), []Lookahead{{Pitch: 62, TimeUntilMs: 100, Hint: hint}})
			assert.Equal(t, float32(-1), m[6][4])
		})
	}
}

func TestEncodeIgnoresLookaheadPastTwenty(t *testing.T) {
	var lookahead []Lookahead
	for i := 0; i < 30; i++ {
		lookahead = append(lookahead, Lookahead{Pitch: 60 + i, TimeUntilMs: float64(i * 100)})
	}

	m := Encode(60, state.New(), lookahead)

	// last row holds lookahead index 19, not 29
	assert.InDelta(t, (79.0-60.0)/87.0, m[NumRows-1][0], 1e-6)
	assert.InDelta(t, 0.19, m[NumRows-1][1], 1e-6)
}

func TestIsBlackKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(float32(1), IsBlackKey(22)) // A#0
	assert.Equal(float32(1), IsBlackKey(61)) // C#4
	assert.Equal(float32(1), IsBlackKey(66)) // F#4
	assert.Equal(float32(0), IsBlackKey(21)) // A0
	assert.Equal(float32(0), IsBlackKey(60)) // C4
	assert.Equal(float32(0), IsBlackKey(108))
	assert.Equal(float32(-1), IsBlackKey(-1))
}

func TestPitchClass(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(float32(0), PitchClass(21))
	assert.Equal(float32(1), PitchClass(32))
	assert.InDelta(3.0/11.0, PitchClass(60), 1e-6)
	assert.Equal(float32(-1), PitchClass(-5))
}
