package model

// NoteJSON is the file/wire format for one note. Finger is optional on
// input (present = fixed) and always set on output.
type NoteJSON struct {
	Left     bool    `json:"left"`
	Note     int     `json:"note"`
	Time     float64 `json:"time"`
	Duration float64 `json:"duration"`
	Finger   *int    `json:"finger,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

func (n NoteJSON) ToNote() Note {
	hand := Right
	if n.Left {
		hand = Left
	}
	var fixed int
	if n.Finger != nil {
		fixed = *n.Finger
	}
	return Note{
		Hand:        hand,
		Pitch:       n.Note,
		OnsetMs:     n.Time,
		DurationMs:  n.Duration,
		FixedFinger: fixed,
	}
}

func FromFingered(fn FingeredNote) NoteJSON {
	finger := fn.Finger
	return NoteJSON{
		Left:     fn.Hand == Left,
		Note:     fn.Pitch,
		Time:     fn.OnsetMs,
		Duration: fn.DurationMs,
		Finger:   &finger,
	}
}
