// Package fretboard generates the note grid of a fretted instrument for
// any tuning.
package fretboard

import (
	"errors"
	"fmt"

	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/pitch"
)

var ErrInvalidTuning = errors.New("invalid tuning")

const maxMIDI = 127

type Note struct {
	Note        string `json:"note"`
	FullNote    string `json:"full_note"`
	Octave      int    `json:"octave"`
	StringIndex int    `json:"string"`
	Fret        int    `json:"fret"`
	MIDI        int    `json:"midi"`
}

// Generate returns FretCount+1 notes per string, frets 0 through
// FretCount, always spelled with sharps. Strings whose open note cannot be
// parsed, or whose top fret would leave the MIDI range, are skipped; the
// other strings are still generated and the returned error lists every
// skipped string.
func Generate(t Tuning) ([]Note, error) {
	frets := constants.FretCount + 1
	notes := make([]Note, 0, len(t)*frets)

	var errs []error
	for s, open := range t {
		openMidi, err := pitch.MIDI(open.Note, open.Octave)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: string %d (%v): %w", ErrInvalidTuning, s, open, err))
			continue
		}
		if top := openMidi + constants.FretCount; top > maxMIDI {
			errs = append(errs, fmt.Errorf("%w: string %d (%v): fret %d would be MIDI %d", ErrInvalidTuning, s, open, constants.FretCount, top))
			continue
		}

		for fret := 0; fret < frets; fret++ {
			m := openMidi + fret
			name, full, octave := pitch.NameFromMIDI(m, pitch.Sharps)
			notes = append(notes, Note{
				Note:        name,
				FullNote:    full,
				Octave:      octave,
				StringIndex: s,
				Fret:        fret,
				MIDI:        m,
			})
		}
	}

	return notes, errors.Join(errs...)
}

// Grid arranges notes as grid[string][fret]. Rows of skipped strings are
// empty.
func Grid(notes []Note, strings int) [][]Note {
	grid := make([][]Note, strings)
	for _, n := range notes {
		if n.StringIndex < 0 || n.StringIndex >= strings {
			continue
		}
		row := grid[n.StringIndex]
		if row == nil {
			row = make([]Note, constants.FretCount+1)
		}
		if n.Fret >= 0 && n.Fret < len(row) {
			row[n.Fret] = n
		}
		grid[n.StringIndex] = row
	}
	return grid
}
