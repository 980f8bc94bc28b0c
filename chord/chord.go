package chord

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/scale"
	"github.com/jsphweid/fretwise/util"
)

var ErrUnknownPattern = scale.ErrUnknownPattern

type Type int

const (
	Major Type = iota
	Minor
	Diminished
	Augmented
	Sus2
	Sus4
	Sixth
	MinorSixth
	MajorSeventh
	MinorSeventh
	DominantSeventh
	DiminishedSeventh
	HalfDiminished
	DominantNinth
	MajorNinth
	MinorNinth
	AddNine
	MinorAddNine
	DominantEleventh
	MajorEleventh
	MinorEleventh
	AddEleven
)

type formula struct {
	symbol    string
	label     string
	intervals []pitch.Interval
}

// interval shorthands, {letter steps, semitones}
var (
	p1  = pitch.Interval{Steps: 0, Semitones: 0}
	M2  = pitch.Interval{Steps: 1, Semitones: 2}
	m3  = pitch.Interval{Steps: 2, Semitones: 3}
	M3  = pitch.Interval{Steps: 2, Semitones: 4}
	p4  = pitch.Interval{Steps: 3, Semitones: 5}
	d5  = pitch.Interval{Steps: 4, Semitones: 6}
	p5  = pitch.Interval{Steps: 4, Semitones: 7}
	a5  = pitch.Interval{Steps: 4, Semitones: 8}
	M6  = pitch.Interval{Steps: 5, Semitones: 9}
	d7  = pitch.Interval{Steps: 6, Semitones: 9}
	m7  = pitch.Interval{Steps: 6, Semitones: 10}
	M7  = pitch.Interval{Steps: 6, Semitones: 11}
	M9  = pitch.Interval{Steps: 8, Semitones: 14}
	p11 = pitch.Interval{Steps: 10, Semitones: 17}
)

var types = [...]formula{
	Major:             {"M", "Major", []pitch.Interval{p1, M3, p5}},
	Minor:             {"m", "Minor", []pitch.Interval{p1, m3, p5}},
	Diminished:        {"dim", "Diminished", []pitch.Interval{p1, m3, d5}},
	Augmented:         {"aug", "Augmented", []pitch.Interval{p1, M3, a5}},
	Sus2:              {"sus2", "Sus2", []pitch.Interval{p1, M2, p5}},
	Sus4:              {"sus4", "Sus4", []pitch.Interval{p1, p4, p5}},
	Sixth:             {"6", "Major 6", []pitch.Interval{p1, M3, p5, M6}},
	MinorSixth:        {"m6", "Minor 6", []pitch.Interval{p1, m3, p5, M6}},
	MajorSeventh:      {"M7", "Major 7", []pitch.Interval{p1, M3, p5, M7}},
	MinorSeventh:      {"m7", "Minor 7", []pitch.Interval{p1, m3, p5, m7}},
	DominantSeventh:   {"7", "Dominant 7", []pitch.Interval{p1, M3, p5, m7}},
	DiminishedSeventh: {"dim7", "Diminished 7", []pitch.Interval{p1, m3, d5, d7}},
	HalfDiminished:    {"m7b5", "Half-Dim 7 (m7b5)", []pitch.Interval{p1, m3, d5, m7}},
	DominantNinth:     {"9", "Dominant 9", []pitch.Interval{p1, M3, p5, m7, M9}},
	MajorNinth:        {"M9", "Major 9", []pitch.Interval{p1, M3, p5, M7, M9}},
	MinorNinth:        {"m9", "Minor 9", []pitch.Interval{p1, m3, p5, m7, M9}},
	AddNine:           {"add9", "Add 9", []pitch.Interval{p1, M3, p5, M9}},
	MinorAddNine:      {"madd9", "Minor Add 9", []pitch.Interval{p1, m3, p5, M9}},
	DominantEleventh:  {"11", "Dominant 11", []pitch.Interval{p1, p5, m7, M9, p11}},
	MajorEleventh:     {"M11", "Major 11", []pitch.Interval{p1, M3, p5, M7, M9, p11}},
	MinorEleventh:     {"m11", "Minor 11", []pitch.Interval{p1, m3, p5, m7, M9, p11}},
	AddEleven:         {"add11", "Add 11", []pitch.Interval{p1, M3, p5, p11}},
}

// Types lists every chord type in catalog order.
func Types() []Type {
	res := make([]Type, len(types))
	for i := range types {
		res[i] = Type(i)
	}
	return res
}

func (t Type) valid() bool {
	return t >= 0 && int(t) < len(types)
}

// Symbol is the catalog key appended to a root, e.g. "m7" in "Am7".
func (t Type) Symbol() string {
	if !t.valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return types[t].symbol
}

func (t Type) String() string {
	return t.Symbol()
}

func (t Type) Label() string {
	if !t.valid() {
		return t.Symbol()
	}
	return types[t].label
}

func (t Type) Size() int {
	if !t.valid() {
		return 0
	}
	return len(types[t].intervals)
}

// ParseType resolves a chord symbol. Unknown symbols resolve to Major
// together with ErrUnknownPattern.
func ParseType(symbol string) (Type, error) {
	for i, f := range types {
		if f.symbol == symbol {
			return Type(i), nil
		}
	}
	return Major, fmt.Errorf("%w: chord type %q", ErrUnknownPattern, symbol)
}

// Intervals returns the semitone offsets of t above its root.
func Intervals(t Type) []int {
	if !t.valid() {
		return nil
	}
	res := make([]int, 0, len(types[t].intervals))
	for _, iv := range types[t].intervals {
		res = append(res, iv.Semitones)
	}
	return res
}

// Notes spells the chord t on root and applies the inversion by rotating
// the lowest note to the top. Rotation stops at size-1, so inversions past
// the last one repeat it instead of returning to root position.
func Notes(root string, t Type, inversion int) ([]string, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPattern, t)
	}
	r, err := pitch.Parse(root)
	if err != nil {
		return nil, err
	}
	notes := pitch.Apply(r, types[t].intervals)
	return Invert(notes, inversion), nil
}

// NotesByName is Notes for a chord type given by its symbol.
func NotesByName(root, symbol string, inversion int) ([]string, error) {
	t, err := ParseType(symbol)
	if err != nil {
		return nil, err
	}
	return Notes(root, t, inversion)
}

// Invert rotates notes left by inversion, clamped to len(notes)-1.
func Invert(notes []string, inversion int) []string {
	if len(notes) < 2 {
		return append([]string(nil), notes...)
	}
	n := util.Clamp(inversion, 0, len(notes)-1)
	res := make([]string, 0, len(notes))
	res = append(res, notes[n:]...)
	return append(res, notes[:n]...)
}

// CreateChordKey builds a canonical key for a set of pitch classes, e.g.
// "0-4-7". Order and duplicates in pcs do not matter.
func CreateChordKey(pcs []int) string {
	seen := make(map[int]bool)
	var sorted []int
	for _, pc := range pcs {
		pc = util.Mod(pc, 12)
		if !seen[pc] {
			seen[pc] = true
			sorted = append(sorted, pc)
		}
	}
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, pc := range sorted {
		parts[i] = strconv.Itoa(pc)
	}
	return strings.Join(parts, "-")
}
