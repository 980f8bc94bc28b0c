// Package circle lays the twelve pitch classes out on the circle of
// fifths and groups the degrees of a scale into quality arcs.
package circle

import (
	"fmt"

	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/degree"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/util"
)

const Size = 12

type Accidentals int

const (
	Flats Accidentals = iota
	Sharps
)

func (a Accidentals) String() string {
	if a == Sharps {
		return "sharps"
	}
	return "flats"
}

func (a Accidentals) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Accidentals) UnmarshalText(text []byte) error {
	parsed, err := ParseAccidentals(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func ParseAccidentals(s string) (Accidentals, error) {
	switch s {
	case "flats", "":
		return Flats, nil
	case "sharps":
		return Sharps, nil
	}
	return Flats, fmt.Errorf("unknown accidentals %q, want flats or sharps", s)
}

// F# is spelled the same way in both orders.
var (
	flatOrder  = [Size]string{"C", "G", "D", "A", "E", "B", "F#", "Db", "Ab", "Eb", "Bb", "F"}
	sharpOrder = [Size]string{"C", "G", "D", "A", "E", "B", "F#", "C#", "G#", "D#", "A#", "F"}
)

// Order returns the circle starting at C and moving clockwise by fifths.
func Order(a Accidentals) []string {
	o := flatOrder
	if a == Sharps {
		o = sharpOrder
	}
	return append([]string(nil), o[:]...)
}

// Index is the position of note on the circle, or -1 for an unparseable
// note. It does not depend on spelling.
func Index(note string) int {
	pc, err := pitch.PitchClassOf(note)
	if err != nil {
		return -1
	}
	// 7 is its own inverse mod 12
	return util.Mod(pc*7, Size)
}

func IsInScale(note string, scaleNotes []string) bool {
	return pitch.NoteIsActive(note, scaleNotes)
}

type Position struct {
	Note   string       `json:"note"`
	Index  int          `json:"index"`
	Active bool         `json:"active"`
	Tonic  bool         `json:"tonic"`
	Degree *degree.Info `json:"degree,omitempty"`
	Triad  []string     `json:"triad,omitempty"`
}

// Bind attaches the active set, the tonic and the scale degrees to every
// position of order.
func Bind(order []string, tonic string, active []string, degrees []degree.Info) []Position {
	res := make([]Position, 0, len(order))
	for i, note := range order {
		p := Position{
			Note:   note,
			Index:  i,
			Active: IsInScale(note, active),
			Tonic:  pitch.SameNote(note, tonic),
		}
		for _, d := range degrees {
			if pitch.SameNote(d.Note, note) {
				info := d
				p.Degree = &info
				p.Triad = triad(d)
				break
			}
		}
		res = append(res, p)
	}
	return res
}

func triadType(q degree.Quality) chord.Type {
	switch q {
	case degree.Minor:
		return chord.Minor
	case degree.Diminished:
		return chord.Diminished
	case degree.Augmented:
		return chord.Augmented
	}
	return chord.Major
}

func triad(d degree.Info) []string {
	notes, err := chord.Notes(d.Note, triadType(d.Quality), 0)
	if err != nil {
		return nil
	}
	return notes[:3]
}
