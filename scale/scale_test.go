package scale

import (
	"errors"
	"testing"

	"github.com/jsphweid/fretwise/pitch"
	"github.com/stretchr/testify/assert"
)

func TestCMajor(t *testing.T) {
	notes, err := Notes("C", Major)
	assert.NoError(t, err)
	assert.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, notes)
}

func TestSpellingFollowsLetters(t *testing.T) {
	cases := []struct {
		tonic string
		mode  Mode
		want  []string
	}{
		{"F", Major, []string{"F", "G", "A", "Bb", "C", "D", "E"}},
		{"A", Minor, []string{"A", "B", "C", "D", "E", "F", "G"}},
		{"D", Dorian, []string{"D", "E", "F", "G", "A", "B", "C"}},
		{"E", Phrygian, []string{"E", "F", "G", "A", "B", "C", "D"}},
		{"F", Lydian, []string{"F", "G", "A", "B", "C", "D", "E"}},
		{"G", Mixolydian, []string{"G", "A", "B", "C", "D", "E", "F"}},
		{"B", Locrian, []string{"B", "C", "D", "E", "F", "G", "A"}},
		{"A", HarmonicMinor, []string{"A", "B", "C", "D", "E", "F", "G#"}},
		{"G#", HarmonicMinor, []string{"G#", "A#", "B", "C#", "D#", "E", "F##"}},
		{"C", MelodicMinor, []string{"C", "D", "Eb", "F", "G", "A", "B"}},
		{"C", MajorPentatonic, []string{"C", "D", "E", "G", "A"}},
		{"A", MinorPentatonic, []string{"A", "C", "D", "E", "G"}},
		{"Eb", Major, []string{"Eb", "F", "G", "Ab", "Bb", "C", "D"}},
	}

	for _, c := range cases {
		t.Run(c.tonic+" "+c.mode.String(), func(t *testing.T) {
			notes, err := Notes(c.tonic, c.mode)
			assert.NoError(t, err)
			assert.Equal(t, c.want, notes)
		})
	}
}

func TestEveryModeMatchesItsIntervals(t *testing.T) {
	for _, m := range Modes() {
		t.Run(m.String(), func(t *testing.T) {
			notes, err := Notes("Db", m)
			assert.NoError(t, err)
			ivs := Intervals(m)
			assert.Len(t, notes, len(ivs))
			assert.Equal(t, m.Size(), len(ivs))
			for i, n := range notes {
				pc, err := pitch.PitchClassOf(n)
				assert.NoError(t, err)
				assert.Equal(t, (1+ivs[i])%12, pc)
			}
		})
	}
}

func TestCatalogOrder(t *testing.T) {
	modes := Modes()
	assert.Len(t, modes, 11)
	assert.Equal(t, "major", modes[0].String())
	assert.Equal(t, "minor pentatonic", modes[10].String())
	assert.Equal(t, "Ionian (Major)", Major.Label())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("harmonic minor")
	assert.NoError(t, err)
	assert.Equal(t, HarmonicMinor, m)

	m, err = ParseMode("bebop")
	assert.True(t, errors.Is(err, ErrUnknownPattern))
	assert.Equal(t, Major, m)
}

func TestNotesByNameRejectsUnknownModes(t *testing.T) {
	_, err := NotesByName("C", "bebop")
	assert.True(t, errors.Is(err, ErrUnknownPattern))

	_, err = Notes("C", Mode(42))
	assert.True(t, errors.Is(err, ErrUnknownPattern))
}

func TestNotesRejectsInvalidTonic(t *testing.T) {
	_, err := Notes("H", Major)
	assert.True(t, errors.Is(err, pitch.ErrInvalidNote))
}

func TestParent(t *testing.T) {
	assert.Equal(t, Major, MajorPentatonic.Parent())
	assert.Equal(t, Minor, MinorPentatonic.Parent())
	assert.Equal(t, Dorian, Dorian.Parent())
}
