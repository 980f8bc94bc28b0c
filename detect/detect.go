// Package detect names the chords and scales that contain a set of notes.
//
// Notes are compared as pitch classes. A candidate is a root together with
// a chord type or mode whose pitch classes include every input note; any
// input note outside the candidate rules it out. Candidates are ranked by
//
//  1. fewest tones of the candidate missing from the input,
//  2. root equal to the first input note,
//  3. catalog order of the chord type or mode,
//  4. name.
package detect

import (
	"sort"

	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/scale"
	"gonum.org/v1/gonum/floats"
)

// chroma is a 12 bin pitch class profile, 1 for present pitch classes.
type chroma [12]float64

func (c *chroma) slice() []float64 {
	return c[:]
}

// noteSet is the parsed input: distinct pitch classes in input order and
// the spelling used for each.
type noteSet struct {
	pcs      []int
	spelling map[int]string
	profile  chroma
	flats    bool
}

func parse(notes []string) noteSet {
	set := noteSet{spelling: make(map[int]string)}
	for _, name := range notes {
		n, err := pitch.Parse(name)
		if err != nil {
			continue
		}
		pc := n.PitchClass()
		if _, ok := set.spelling[pc]; ok {
			continue
		}
		set.pcs = append(set.pcs, pc)
		set.spelling[pc] = n.String()
		set.profile[pc] = 1
		if n.Accidental() < 0 {
			set.flats = true
		}
	}
	return set
}

func (s noteSet) name(pc int) string {
	if n, ok := s.spelling[pc]; ok {
		return n
	}
	if s.flats {
		return pitch.NameOf(pc, pitch.Flats)
	}
	return pitch.NameOf(pc, pitch.Sharps)
}

type candidate struct {
	name    string
	missing int
	onBass  bool
	order   int
}

func template(root int, intervals []int) chroma {
	var c chroma
	for _, iv := range intervals {
		c[(root+iv)%12] = 1
	}
	return c
}

// match scores the input against a template. ok is false when the input
// has a tone the template lacks.
func match(in, tmpl *chroma) (missing int, ok bool) {
	shared := floats.Dot(in.slice(), tmpl.slice())
	if shared < floats.Sum(in.slice()) {
		return 0, false
	}
	return int(floats.Sum(tmpl.slice()) - shared), true
}

func rank(cands []candidate) []string {
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.missing != b.missing {
			return a.missing < b.missing
		}
		if a.onBass != b.onBass {
			return a.onBass
		}
		if a.order != b.order {
			return a.order < b.order
		}
		return a.name < b.name
	})

	res := make([]string, 0, len(cands))
	for _, c := range cands {
		res = append(res, c.name)
	}
	return res
}

// Chords returns every chord containing notes, best match first. Fewer
// than two distinct notes give an empty result. A chord whose root is not
// the first input note is named over that note, e.g. "CM/E".
func Chords(notes []string) []string {
	in := parse(notes)
	if len(in.pcs) < constants.MinChordNotes {
		return []string{}
	}
	bass := in.pcs[0]

	var cands []candidate
	for order, typ := range chord.Types() {
		ivs := chord.Intervals(typ)
		for root := 0; root < 12; root++ {
			tmpl := template(root, ivs)
			missing, ok := match(&in.profile, &tmpl)
			if !ok {
				continue
			}

			name := in.name(root) + typ.Symbol()
			if root != bass {
				name += "/" + in.name(bass)
			}
			cands = append(cands, candidate{
				name:    name,
				missing: missing,
				onBass:  root == bass,
				order:   order,
			})
		}
	}
	return rank(cands)
}

// Scales returns every scale containing notes, best match first, named
// "<tonic> <mode>". Fewer than three distinct notes give an empty result.
// Callers show at most constants.MaxScaleResults of them.
func Scales(notes []string) []string {
	in := parse(notes)
	if len(in.pcs) < constants.MinScaleNotes {
		return []string{}
	}
	first := in.pcs[0]

	var cands []candidate
	for order, mode := range scale.Modes() {
		ivs := scale.Intervals(mode)
		for root := 0; root < 12; root++ {
			tmpl := template(root, ivs)
			missing, ok := match(&in.profile, &tmpl)
			if !ok {
				continue
			}
			cands = append(cands, candidate{
				name:    in.name(root) + " " + mode.String(),
				missing: missing,
				onBass:  root == first,
				order:   order,
			})
		}
	}
	return rank(cands)
}

// Truncate caps a ranked result list at n entries.
func Truncate(names []string, n int) []string {
	if len(names) > n {
		return names[:n]
	}
	return names
}
