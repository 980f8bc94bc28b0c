package circle

import (
	"sort"

	"github.com/jsphweid/fretwise/degree"
)

const (
	LabelMajor      = "MAJOR"
	LabelMinor      = "MINOR"
	LabelDiminished = "DIM"
)

var colors = map[string]string{
	LabelMajor:      "var(--color-major)",
	LabelMinor:      "var(--color-minor)",
	LabelDiminished: "var(--color-diminished)",
}

type Arc struct {
	Quality string `json:"quality"`
	Start   int    `json:"start_index"`
	End     int    `json:"end_index"`
	Color   string `json:"color"`
}

// Len is the number of positions the arc covers, wrapping past index 0.
func (a Arc) Len() int {
	return (a.End-a.Start+Size)%Size + 1
}

// ArcSpan returns the shortest run of circle positions that covers every
// index. The run starts just after the largest gap between neighbouring
// indices, counting the gap from the last index back round to the first.
// When several gaps are equally large the first one found in ascending
// order wins.
func ArcSpan(indices []int) (int, int) {
	switch len(indices) {
	case 0:
		return 0, 0
	case 1:
		return indices[0], indices[0]
	}

	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)

	maxGap := 0
	gapEnd := 0
	for i, current := range sorted {
		next := sorted[(i+1)%len(sorted)]
		gap := next - current
		if i == len(sorted)-1 {
			gap = Size - current + next
		}
		if gap > maxGap {
			maxGap = gap
			gapEnd = (i + 1) % len(sorted)
		}
	}

	start := sorted[gapEnd]
	end := sorted[(gapEnd-1+len(sorted))%len(sorted)]
	return start, end
}

// Arcs groups the bound degrees by quality: one spanning arc for the
// major degrees, one for the minor degrees, and a single position arc for
// each diminished degree. Augmented degrees get no arc.
func Arcs(positions []Position) []Arc {
	var major, minor, diminished []int
	for _, p := range positions {
		if p.Degree == nil {
			continue
		}
		switch p.Degree.Quality {
		case degree.Major:
			major = append(major, p.Index)
		case degree.Minor:
			minor = append(minor, p.Index)
		case degree.Diminished:
			diminished = append(diminished, p.Index)
		}
	}

	var arcs []Arc
	if len(major) > 0 {
		start, end := ArcSpan(major)
		arcs = append(arcs, Arc{Quality: LabelMajor, Start: start, End: end, Color: colors[LabelMajor]})
	}
	if len(minor) > 0 {
		start, end := ArcSpan(minor)
		arcs = append(arcs, Arc{Quality: LabelMinor, Start: start, End: end, Color: colors[LabelMinor]})
	}
	for _, idx := range diminished {
		arcs = append(arcs, Arc{Quality: LabelDiminished, Start: idx, End: idx, Color: colors[LabelDiminished]})
	}
	return arcs
}
