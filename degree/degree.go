// Package degree names the seven diatonic degrees of a mode with their
// triad quality and roman numeral.
package degree

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretwise/scale"
)

type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
	Augmented
)

func (q Quality) String() string {
	switch q {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Diminished:
		return "diminished"
	case Augmented:
		return "augmented"
	}
	return "unknown"
}

func (q Quality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

func (q *Quality) UnmarshalText(text []byte) error {
	for _, c := range []Quality{Major, Minor, Diminished, Augmented} {
		if c.String() == string(text) {
			*q = c
			return nil
		}
	}
	return fmt.Errorf("unknown quality %q", text)
}

const DiminishedMark = "°"

type Info struct {
	Degree  int     `json:"degree" yaml:"degree"`
	Roman   string  `json:"roman" yaml:"roman"`
	Quality Quality `json:"quality" yaml:"quality"`
	Note    string  `json:"note" yaml:"note"`
}

var (
	qualityPatterns = map[scale.Mode][7]Quality{
		scale.Major:         {Major, Minor, Minor, Major, Major, Minor, Diminished},
		scale.Dorian:        {Minor, Minor, Major, Major, Minor, Diminished, Major},
		scale.Phrygian:      {Minor, Major, Major, Minor, Diminished, Major, Minor},
		scale.Lydian:        {Major, Major, Minor, Diminished, Major, Minor, Minor},
		scale.Mixolydian:    {Major, Minor, Diminished, Major, Minor, Minor, Major},
		scale.Minor:         {Minor, Diminished, Major, Minor, Minor, Major, Major},
		scale.Locrian:       {Diminished, Major, Minor, Minor, Major, Major, Minor},
		scale.HarmonicMinor: {Minor, Diminished, Augmented, Minor, Major, Major, Diminished},
		scale.MelodicMinor:  {Minor, Minor, Augmented, Major, Major, Diminished, Diminished},
	}

	numerals = [7]string{"I", "II", "III", "IV", "V", "VI", "VII"}
)

// Qualities returns the triad quality of each degree of mode. Modes with
// no pattern of their own use their parent's, and failing that the major
// pattern.
func Qualities(mode scale.Mode) [7]Quality {
	if q, ok := qualityPatterns[mode]; ok {
		return q
	}
	if q, ok := qualityPatterns[mode.Parent()]; ok {
		return q
	}
	return qualityPatterns[scale.Major]
}

// Roman returns the numeral for a 1-based degree adjusted for quality.
func Roman(degree int, q Quality) string {
	if degree < 1 || degree > 7 {
		return ""
	}
	base := numerals[degree-1]
	switch q {
	case Minor:
		return strings.ToLower(base)
	case Diminished:
		return strings.ToLower(base) + DiminishedMark
	}
	return base
}

// Degrees returns exactly seven entries for tonic in mode. Pentatonic
// modes are analyzed through their seven note parent so every degree has a
// note.
func Degrees(tonic string, mode scale.Mode) ([]Info, error) {
	if mode.Size() == 0 {
		mode = scale.Major
	}
	notes, err := scale.Notes(tonic, mode.Parent())
	if err != nil {
		return nil, err
	}
	qualities := Qualities(mode)

	res := make([]Info, 0, 7)
	for i := 0; i < 7; i++ {
		res = append(res, Info{
			Degree:  i + 1,
			Roman:   Roman(i+1, qualities[i]),
			Quality: qualities[i],
			Note:    notes[i],
		})
	}
	return res, nil
}

// DegreesByName analyzes a mode given by catalog key. Unknown keys are
// analyzed as major rather than failing.
func DegreesByName(tonic, key string) ([]Info, error) {
	mode, _ := scale.ParseMode(key)
	return Degrees(tonic, mode)
}
