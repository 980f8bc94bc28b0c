package scale

import (
	"errors"
	"fmt"

	"github.com/jsphweid/fretwise/pitch"
)

var ErrUnknownPattern = errors.New("unknown pattern")

type Mode int

const (
	Major Mode = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Minor
	Locrian
	HarmonicMinor
	MelodicMinor
	MajorPentatonic
	MinorPentatonic
)

type pattern struct {
	key       string
	label     string
	intervals []pitch.Interval
}

// modes is indexed by Mode and is also the catalog order shown to users.
var modes = [...]pattern{
	Major:           {"major", "Ionian (Major)", heptatonic(2, 2, 1, 2, 2, 2)},
	Dorian:          {"dorian", "Dorian", heptatonic(2, 1, 2, 2, 2, 1)},
	Phrygian:        {"phrygian", "Phrygian", heptatonic(1, 2, 2, 2, 1, 2)},
	Lydian:          {"lydian", "Lydian", heptatonic(2, 2, 2, 1, 2, 2)},
	Mixolydian:      {"mixolydian", "Mixolydian", heptatonic(2, 2, 1, 2, 2, 1)},
	Minor:           {"minor", "Aeolian (Minor)", heptatonic(2, 1, 2, 2, 1, 2)},
	Locrian:         {"locrian", "Locrian", heptatonic(1, 2, 2, 1, 2, 2)},
	HarmonicMinor:   {"harmonic minor", "Harmonic Minor", heptatonic(2, 1, 2, 2, 1, 3)},
	MelodicMinor:    {"melodic minor", "Melodic Minor", heptatonic(2, 1, 2, 2, 2, 2)},
	MajorPentatonic: {"major pentatonic", "Major Pentatonic", []pitch.Interval{{Steps: 0, Semitones: 0}, {Steps: 1, Semitones: 2}, {Steps: 2, Semitones: 4}, {Steps: 4, Semitones: 7}, {Steps: 5, Semitones: 9}}},
	MinorPentatonic: {"minor pentatonic", "Minor Pentatonic", []pitch.Interval{{Steps: 0, Semitones: 0}, {Steps: 2, Semitones: 3}, {Steps: 3, Semitones: 5}, {Steps: 4, Semitones: 7}, {Steps: 6, Semitones: 10}}},
}

// heptatonic builds a seven note pattern from the six steps between
// consecutive degrees.
func heptatonic(steps ...int) []pitch.Interval {
	ivs := []pitch.Interval{{Steps: 0, Semitones: 0}}
	semis := 0
	for i, s := range steps {
		semis += s
		ivs = append(ivs, pitch.Interval{Steps: i + 1, Semitones: semis})
	}
	return ivs
}

// Modes lists every mode in catalog order.
func Modes() []Mode {
	res := make([]Mode, len(modes))
	for i := range modes {
		res[i] = Mode(i)
	}
	return res
}

func (m Mode) valid() bool {
	return m >= 0 && int(m) < len(modes)
}

// String returns the catalog key, e.g. "harmonic minor".
func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modes[m].key
}

func (m Mode) Label() string {
	if !m.valid() {
		return m.String()
	}
	return modes[m].label
}

func (m Mode) Size() int {
	if !m.valid() {
		return 0
	}
	return len(modes[m].intervals)
}

// Parent is the seven note mode a pentatonic is drawn from. Seven note
// modes are their own parent.
func (m Mode) Parent() Mode {
	switch m {
	case MajorPentatonic:
		return Major
	case MinorPentatonic:
		return Minor
	}
	return m
}

// ParseMode resolves a catalog key. Unknown keys resolve to Major together
// with ErrUnknownPattern so callers can choose to fall back.
func ParseMode(key string) (Mode, error) {
	for i, p := range modes {
		if p.key == key {
			return Mode(i), nil
		}
	}
	return Major, fmt.Errorf("%w: mode %q", ErrUnknownPattern, key)
}

// Intervals returns the semitone offsets of m above its tonic.
func Intervals(m Mode) []int {
	if !m.valid() {
		return nil
	}
	res := make([]int, 0, len(modes[m].intervals))
	for _, iv := range modes[m].intervals {
		res = append(res, iv.Semitones)
	}
	return res
}

// Notes spells the scale of m starting on tonic.
func Notes(tonic string, m Mode) ([]string, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPattern, m)
	}
	root, err := pitch.Parse(tonic)
	if err != nil {
		return nil, err
	}
	return pitch.Apply(root, modes[m].intervals), nil
}

// NotesByName is Notes for a mode given by its catalog key.
func NotesByName(tonic, key string) ([]string, error) {
	m, err := ParseMode(key)
	if err != nil {
		return nil, err
	}
	return Notes(tonic, m)
}
