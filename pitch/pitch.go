// Package pitch converts note names to pitch classes and MIDI numbers.
//
// Two note names are the same note when they share a pitch class, so
// "C#" and "Db" compare equal while "C" and "C#" do not.
package pitch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/fretwise/util"
)

var ErrInvalidNote = errors.New("invalid note")

// ReferenceOctave is the octave used when a bare note name has to be
// turned into a MIDI number.
const ReferenceOctave = 4

type Spelling int

const (
	Sharps Spelling = iota
	Flats
)

var (
	// semitones above C for C D E F G A B
	letterOffsets = [7]int{0, 2, 4, 5, 7, 9, 11}
	letters       = [7]byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

	sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

	unicodeAccidentals = strings.NewReplacer("♯", "#", "♭", "b")
)

// Note is a parsed note name without octave.
type Note struct {
	step       int // 0 = C ... 6 = B
	accidental int // -2..2
}

func (n Note) Letter() byte {
	return letters[n.step]
}

func (n Note) Accidental() int {
	return n.accidental
}

func (n Note) PitchClass() int {
	return util.Mod(letterOffsets[n.step]+n.accidental, 12)
}

func (n Note) String() string {
	acc := ""
	switch {
	case n.accidental > 0:
		acc = strings.Repeat("#", n.accidental)
	case n.accidental < 0:
		acc = strings.Repeat("b", -n.accidental)
	}
	return string(letters[n.step]) + acc
}

func stepOf(letter byte) int {
	switch letter {
	case 'C', 'c':
		return 0
	case 'D', 'd':
		return 1
	case 'E', 'e':
		return 2
	case 'F', 'f':
		return 3
	case 'G', 'g':
		return 4
	case 'A', 'a':
		return 5
	case 'B', 'b':
		return 6
	}
	return -1
}

// Parse reads a name of the form <Letter>[#|b|##|bb].
func Parse(name string) (Note, error) {
	s := unicodeAccidentals.Replace(strings.TrimSpace(name))
	if s == "" {
		return Note{}, fmt.Errorf("%w: empty name", ErrInvalidNote)
	}

	step := stepOf(s[0])
	if step < 0 {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}

	var acc int
	switch s[1:] {
	case "":
	case "#":
		acc = 1
	case "##":
		acc = 2
	case "b":
		acc = -1
	case "bb":
		acc = -2
	default:
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}

	return Note{step: step, accidental: acc}, nil
}

// MIDI returns the MIDI number of name in the given octave (C4 = 60).
func MIDI(name string, octave int) (int, error) {
	n, err := Parse(name)
	if err != nil {
		return 0, err
	}
	m := (octave+1)*12 + letterOffsets[n.step] + n.accidental
	if m < 0 || m > 127 {
		return 0, fmt.Errorf("%w: %s%d is outside the MIDI range", ErrInvalidNote, n, octave)
	}
	return m, nil
}

// PitchClassOf maps a note name to 0..11.
func PitchClassOf(name string) (int, error) {
	m, err := MIDI(name, ReferenceOctave)
	if err != nil {
		return 0, err
	}
	return m % 12, nil
}

// SameNote reports enharmonic equivalence. Unparseable names are never
// the same as anything, including themselves.
func SameNote(a, b string) bool {
	pa, err := PitchClassOf(a)
	if err != nil {
		return false
	}
	pb, err := PitchClassOf(b)
	if err != nil {
		return false
	}
	return pa == pb
}

// NoteIsActive reports whether note shares a pitch class with any member
// of active.
func NoteIsActive(note string, active []string) bool {
	pc, err := PitchClassOf(note)
	if err != nil {
		return false
	}
	for _, a := range active {
		if apc, err := PitchClassOf(a); err == nil && apc == pc {
			return true
		}
	}
	return false
}

// NameOf spells a pitch class without octave.
func NameOf(pc int, sp Spelling) string {
	pc = util.Mod(pc, 12)
	if sp == Flats {
		return flatNames[pc]
	}
	return sharpNames[pc]
}

// NameFromMIDI spells a MIDI number, returning the pitch-class name, the
// name with octave (e.g. "C#4") and the octave.
func NameFromMIDI(m int, sp Spelling) (string, string, int) {
	octave := m/12 - 1
	if m < 0 {
		octave = (m-11)/12 - 1
	}
	name := NameOf(m, sp)
	return name, fmt.Sprintf("%s%d", name, octave), octave
}

// Chromatic returns the twelve pitch classes from C in the given spelling.
func Chromatic(sp Spelling) []string {
	names := sharpNames
	if sp == Flats {
		names = flatNames
	}
	return append([]string(nil), names[:]...)
}
