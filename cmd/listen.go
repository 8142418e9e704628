package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/fingerdex/model"
	"github.com/jsphweid/fingerdex/pipeline"
	"github.com/jsphweid/fingerdex/predict"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Suggests fingerings for live midi input",
	Long:  `Suggests fingerings for live midi input`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func suggest(mu *sync.Mutex, notes *[]model.Note) {
	mu.Lock()
	buf := make([]model.Note, len(*notes))
	copy(buf, *notes)
	mu.Unlock()

	if len(buf) == 0 {
		return
	}

	right := predict.Heuristic{Hand: model.Right}
	left := predict.Heuristic{Hand: model.Left}
	res, err := pipeline.Predict(buf, right, left)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		return
	}

	last := res[len(res)-1]
	fmt.Printf("%v hand, note %v -> finger %v (%v notes so far)\n",
		last.Hand, last.Pitch, last.Finger, len(res))
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi input")
		return
	}

	var mu sync.Mutex
	var notes []model.Note
	onsets := make(map[uint8]float64)

	debounced := debounce.New(250 * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			hand := model.Right
			if key < 60 {
				hand = model.Left
			}
			onsets[key] = float64(timestampms)
			notes = append(notes, model.Note{
				Hand:    hand,
				Pitch:   int(key),
				OnsetMs: float64(timestampms),
			})
			mu.Unlock()
			debounced(func() { suggest(&mu, &notes) })
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			if onset, ok := onsets[key]; ok {
				// close the most recent still-open note for this key
				for i := len(notes) - 1; i >= 0; i-- {
					if notes[i].Pitch == int(key) && notes[i].DurationMs == 0 {
						notes[i].DurationMs = float64(timestampms) - onset
						break
					}
				}
				delete(onsets, key)
			}
			mu.Unlock()
			debounced(func() { suggest(&mu, &notes) })
		default:
			// ignore
		}
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	time.Sleep(time.Second * 5000) // lol
	stop()
}
