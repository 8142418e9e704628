package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/jsphweid/fingerdex/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

type noteEvent struct {
	offsetMicros int64
	isNoteOff    bool
	key          uint8
	track        int
}

// ReadNotes extracts hand-tagged notes from a Standard MIDI File. With
// two or more note-bearing tracks, the first is taken as the right
// hand and the second as the left (the usual piano SMF layout); a
// single track is split at middle C.
func ReadNotes(filepath string) (notes []model.Note, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file... %w", err)
	}
	s, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file... %w", err)
	}

	return notesFrom(s), nil
}

func notesFrom(s *smf.SMF) []model.Note {
	var events []noteEvent
	trackOrder := make(map[int]int) // track index -> note-bearing order

	for ti, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			// GetNoteStart/GetNoteEnd, not GetNoteOn/GetNoteOff: a
			// velocity-0 note-on is a release
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				if _, ok := trackOrder[ti]; !ok {
					trackOrder[ti] = len(trackOrder)
				}
				events = append(events, noteEvent{
					offsetMicros: absTime,
					isNoteOff:    false,
					key:          key,
					track:        ti,
				})
			case event.Message.GetNoteEnd(&channel, &key):
				events = append(events, noteEvent{
					offsetMicros: absTime,
					isNoteOff:    true,
					key:          key,
					track:        ti,
				})
			}
		}
	}

	// note offs first at equal offsets so retriggered keys pair up
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].offsetMicros != events[j].offsetMicros {
			return events[i].offsetMicros < events[j].offsetMicros
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	type openKey struct {
		track int
		key   uint8
	}
	open := make(map[openKey][]int)
	var notes []model.Note

	for _, evt := range events {
		k := openKey{track: evt.track, key: evt.key}
		if evt.isNoteOff {
			idxs := open[k]
			if len(idxs) == 0 {
				continue
			}
			i := idxs[0]
			open[k] = idxs[1:]
			notes[i].DurationMs = float64(evt.offsetMicros)/1000.0 - notes[i].OnsetMs
		} else {
			notes = append(notes, model.Note{
				Hand:    handFor(evt, trackOrder),
				Pitch:   int(evt.key),
				OnsetMs: float64(evt.offsetMicros) / 1000.0,
			})
			open[k] = append(open[k], len(notes)-1)
		}
	}

	return notes
}

func handFor(evt noteEvent, trackOrder map[int]int) model.Hand {
	if len(trackOrder) >= 2 {
		if trackOrder[evt.track] == 1 {
			return model.Left
		}
		return model.Right
	}
	if int(evt.key) < 60 {
		return model.Left
	}
	return model.Right
}
