package constants

import (
	"os"
	"strconv"
	"time"
)

func GetListenAddr() string {
	addr := os.Getenv("FRETWISE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetMidiPort() int {
	return getInt("FRETWISE_MIDI_PORT", 0)
}

func GetLogLevel() string {
	level := os.Getenv("FRETWISE_LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// GetDebounce is how long the finder waits for note events to settle
// before detecting.
func GetDebounce() time.Duration {
	return time.Duration(getInt("FRETWISE_DEBOUNCE_MS", 150)) * time.Millisecond
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// highest fret shown; frets run 0..FretCount
const FretCount = 15

// largest request body the server reads
const MaxRequestBytes = 64 << 10

const MaxChordResults = 6

const MaxScaleResults = 8

const MinChordNotes = 2

const MinScaleNotes = 3
