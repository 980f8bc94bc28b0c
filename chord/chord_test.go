package chord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsphweid/fretwise/pitch"
	"github.com/stretchr/testify/assert"
)

func TestCMajorInversions(t *testing.T) {
	cases := []struct {
		inversion int
		want      []string
	}{
		{0, []string{"C", "E", "G"}},
		{1, []string{"E", "G", "C"}},
		{2, []string{"G", "C", "E"}},
		{3, []string{"G", "C", "E"}},
		{10, []string{"G", "C", "E"}},
		{-1, []string{"C", "E", "G"}},
	}

	for _, c := range cases {
		name := fmt.Sprintf("inversion %v", c.inversion)
		t.Run(name, func(t *testing.T) {
			notes, err := Notes("C", Major, c.inversion)
			assert.NoError(t, err)
			assert.Equal(t, c.want, notes)
		})
	}
}

func TestFourNoteChordThirdInversion(t *testing.T) {
	assert := assert.New(t)

	notes, err := Notes("G", DominantSeventh, 3)
	assert.NoError(err)
	assert.Equal([]string{"F", "G", "B", "D"}, notes)

	notes, _ = Notes("G", DominantSeventh, 4)
	assert.Equal([]string{"F", "G", "B", "D"}, notes)
}

func TestRootPositionStartsOnRoot(t *testing.T) {
	for _, typ := range Types() {
		t.Run(typ.Symbol(), func(t *testing.T) {
			notes, err := Notes("Eb", typ, 0)
			assert.NoError(t, err)
			assert.Equal(t, "Eb", notes[0])
			assert.Len(t, notes, typ.Size())

			ivs := Intervals(typ)
			for i, n := range notes {
				pc, err := pitch.PitchClassOf(n)
				assert.NoError(t, err)
				assert.Equal(t, (3+ivs[i])%12, pc)
			}
		})
	}
}

func TestSpelling(t *testing.T) {
	assert := assert.New(t)

	notes, _ := Notes("C", DiminishedSeventh, 0)
	assert.Equal([]string{"C", "Eb", "Gb", "Bbb"}, notes)

	notes, _ = Notes("Cb", DiminishedSeventh, 0)
	assert.Equal([]string{"Cb", "Ebb", "Gbb", "Ab"}, notes)

	notes, _ = Notes("D", Major, 0)
	assert.Equal([]string{"D", "F#", "A"}, notes)

	notes, _ = Notes("C", AddNine, 0)
	assert.Equal([]string{"C", "E", "G", "D"}, notes)

	notes, _ = Notes("C", DominantEleventh, 0)
	assert.Equal([]string{"C", "G", "Bb", "D", "F"}, notes)
}

func TestCatalogHasTwentyTwoTypes(t *testing.T) {
	assert := assert.New(t)
	assert.Len(Types(), 22)
	assert.Equal("M", Types()[0].Symbol())
	assert.Equal("add11", Types()[21].Symbol())
	assert.Equal("Half-Dim 7 (m7b5)", HalfDiminished.Label())
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("m7b5")
	assert.NoError(t, err)
	assert.Equal(t, HalfDiminished, typ)

	typ, err = ParseType("13b9")
	assert.True(t, errors.Is(err, ErrUnknownPattern))
	assert.Equal(t, Major, typ)

	_, err = NotesByName("C", "13b9", 0)
	assert.True(t, errors.Is(err, ErrUnknownPattern))
}

func TestNotesRejectsInvalidRoot(t *testing.T) {
	_, err := Notes("Q", Major, 0)
	assert.True(t, errors.Is(err, pitch.ErrInvalidNote))
}

func TestInvertDoesNotMutateInput(t *testing.T) {
	notes := []string{"C", "E", "G"}
	Invert(notes, 1)
	assert.Equal(t, []string{"C", "E", "G"}, notes)
}

func TestCreateChordKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("0-4-7", CreateChordKey([]int{7, 0, 4}))
	assert.Equal("0-4-7", CreateChordKey([]int{4, 12, 7, 7}))
	assert.Equal("", CreateChordKey(nil))
}
