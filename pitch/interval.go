package pitch

import "github.com/jsphweid/fretwise/util"

// Interval is a distance above a note: Steps letter names and Semitones
// half steps. A major third is {2, 4}, a minor ninth {8, 13}.
type Interval struct {
	Steps     int
	Semitones int
}

// Transpose spells the note an interval above n. Letter names advance by
// Steps so that e.g. the third of D major is F# rather than Gb. When the
// result would need more than two sharps it is respelled with sharps, and
// more than two flats with flats.
func Transpose(n Note, iv Interval) Note {
	step := util.Mod(n.step+iv.Steps, 7)
	target := util.Mod(n.PitchClass()+iv.Semitones, 12)

	acc := util.Mod(target-letterOffsets[step], 12)
	if acc > 6 {
		acc -= 12
	}
	if acc > 2 {
		respelled, _ := Parse(sharpNames[target])
		return respelled
	}
	if acc < -2 {
		respelled, _ := Parse(flatNames[target])
		return respelled
	}
	return Note{step: step, accidental: acc}
}

// Apply spells every interval above root, in order.
func Apply(root Note, ivs []Interval) []string {
	res := make([]string, 0, len(ivs))
	for _, iv := range ivs {
		res = append(res, Transpose(root, iv).String())
	}
	return res
}
