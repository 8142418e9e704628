package constants

import "os"

// Piano keyboard range, A0 through C8.
const MidiLow = 21
const MidiHigh = 108

// MidiHigh - MidiLow, the denominator for pitch normalization
const PitchRange = 87.0

const NumFingers = 5
const LookaheadSize = 20

// Used at state-update time when a note carries no usable duration.
const DefaultDurationMs = 100.0

func GetAnnotationsTable() string {
	table := os.Getenv("ANNOTATIONS_TABLE")
	if table != "" {
		return table
	}
	return "fingerdex-annotations"
}

func GetServeAddr() string {
	addr := os.Getenv("SERVE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}
