package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jsphweid/fingerdex/db"
	"github.com/jsphweid/fingerdex/midi"
	"github.com/jsphweid/fingerdex/model"
	"github.com/jsphweid/fingerdex/pipeline"
	"github.com/jsphweid/fingerdex/predict"
	"github.com/spf13/cobra"
)

var outputPath string
var pieceId string

func init() {
	predictCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"output JSON file (default: <input>_fingered.json)")
	predictCmd.Flags().StringVar(&pieceId, "piece", "",
		"piece id to pull stored fingering annotations for")
	rootCmd.AddCommand(predictCmd)
}

var predictCmd = &cobra.Command{
	Use:   "predict <notes.json | score.mid>",
	Short: "Predicts fingerings for a note file",
	Long:  `Predicts fingerings for a note file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runPredict(args[0])
	},
}

func isMidiPath(path string) bool {
	return strings.HasSuffix(path, ".mid") || strings.HasSuffix(path, ".midi")
}

func loadNotes(path string) []model.Note {
	if isMidiPath(path) {
		notes, err := midi.ReadNotes(path)
		if err != nil {
			panic("Could not read midi file: " + err.Error())
		}
		return notes
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read notes file: " + err.Error())
	}
	var raw []model.NoteJSON
	if err := json.Unmarshal(dat, &raw); err != nil {
		panic("Could not parse notes file: " + err.Error())
	}

	notes := make([]model.Note, 0, len(raw))
	for _, r := range raw {
		notes = append(notes, r.ToNote())
	}
	return notes
}

// applyAnnotations pins stored fingerings onto notes. Annotation
// indexes refer to the (time, pitch)-sorted order of the whole piece.
func applyAnnotations(notes []model.Note, pieceId string) {
	annotations, ok := db.GetFingeringAnnotations([]string{pieceId})[pieceId]
	if !ok {
		fmt.Printf("No stored annotations for piece: %v\n", pieceId)
		return
	}

	order := make([]int, len(notes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := notes[order[i]], notes[order[j]]
		if a.OnsetMs != b.OnsetMs {
			return a.OnsetMs < b.OnsetMs
		}
		return a.Pitch < b.Pitch
	})

	var applied int
	for _, a := range annotations {
		if a.Index < 0 || a.Index >= len(notes) {
			continue
		}
		notes[order[a.Index]].FixedFinger = a.Finger
		applied += 1
	}
	fmt.Printf("Applied %v of %v stored annotations\n", applied, len(annotations))
}

func defaultOutputPath(inputPath string) string {
	if isMidiPath(inputPath) {
		trimmed := strings.TrimSuffix(strings.TrimSuffix(inputPath, ".midi"), ".mid")
		return trimmed + "_fingered.json"
	}
	return strings.TrimSuffix(inputPath, ".json") + "_fingered.json"
}

func runPredict(inputPath string) {
	notes := loadNotes(inputPath)
	fmt.Printf("Loaded %v notes\n", len(notes))

	if pieceId != "" {
		applyAnnotations(notes, pieceId)
	}

	right := predict.Heuristic{Hand: model.Right}
	left := predict.Heuristic{Hand: model.Left}
	res, err := pipeline.Predict(notes, right, left)
	if err != nil {
		panic("Could not predict fingerings: " + err.Error())
	}
	fmt.Printf("Predicted fingerings for %v notes\n", len(res))

	out := make([]model.NoteJSON, 0, len(res))
	for _, fn := range res {
		out = append(out, model.FromFingered(fn))
	}
	dat, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		panic("Could not marshal results: " + err.Error())
	}

	path := outputPath
	if path == "" {
		path = defaultOutputPath(inputPath)
	}
	if err := os.WriteFile(path, dat, 0777); err != nil {
		panic("Write failed for output file: " + err.Error())
	}
	fmt.Printf("Saved: %v\n", path)
}
