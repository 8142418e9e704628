package model

type Hand int

const (
	Right Hand = iota
	Left
)

func (h Hand) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// Note is one musical event as supplied by a note source. A negative
// Pitch means the pitch is unknown; the encoder treats it as absent
// rather than erroring.
type Note struct {
	Hand       Hand
	Pitch      int
	OnsetMs    float64
	DurationMs float64

	// FixedFinger pins the note to a finger 1-5. Zero (or anything
	// outside 1-5) means it should be predicted.
	FixedFinger int

	// Source is the caller's own note object, carried through untouched
	// so results can be correlated back.
	Source any
}

// FingeredNote is a Note with its resolved finger 1-5.
type FingeredNote struct {
	Note
	Finger int
}

// Annotation pins the note at Index (position in the piece's
// (time, pitch)-sorted note list) to Finger.
type Annotation struct {
	Index  int
	Finger int
}
