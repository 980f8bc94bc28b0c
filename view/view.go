// Package view turns one configuration snapshot into everything a display
// needs: the active notes, the degree table, the circle of fifths with its
// arcs and the fretboard.
package view

import (
	"fmt"
	"io"

	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/circle"
	"github.com/jsphweid/fretwise/degree"
	"github.com/jsphweid/fretwise/fretboard"
	"github.com/jsphweid/fretwise/logging"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/scale"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type ViewMode int

const (
	ChordView ViewMode = iota
	ScaleView
)

func (v ViewMode) String() string {
	if v == ScaleView {
		return "scale"
	}
	return "chord"
}

func (v ViewMode) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *ViewMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "chord", "":
		*v = ChordView
	case "scale":
		*v = ScaleView
	default:
		return fmt.Errorf("unknown view mode %q, want scale or chord", text)
	}
	return nil
}

type Config struct {
	Instrument   fretboard.Instrument `json:"instrument" yaml:"instrument"`
	Tonic        string               `json:"tonic" yaml:"tonic"`
	ViewMode     ViewMode             `json:"view_mode" yaml:"view_mode"`
	Mode         string               `json:"mode" yaml:"mode"`
	ChordType    string               `json:"chord_type" yaml:"chord_type"`
	Inversion    int                  `json:"inversion" yaml:"inversion"`
	Accidentals  circle.Accidentals   `json:"accidentals" yaml:"accidentals"`
	TuningPreset string               `json:"tuning_preset" yaml:"tuning_preset"`
	CustomTuning fretboard.Tuning     `json:"custom_tuning,omitempty" yaml:"custom_tuning,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Instrument:   fretboard.Guitar,
		Tonic:        "C",
		ViewMode:     ChordView,
		Mode:         scale.Major.String(),
		ChordType:    chord.Major.Symbol(),
		Inversion:    0,
		Accidentals:  circle.Flats,
		TuningPreset: fretboard.DefaultPreset(fretboard.Guitar),
	}
}

// LoadConfig reads a YAML snapshot. Keys missing from the document keep
// their DefaultConfig values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// FretNote is a fretboard cell with its highlight state.
type FretNote struct {
	fretboard.Note
	Active bool `json:"active"`
	Tonic  bool `json:"tonic"`
	Bass   bool `json:"bass"`
}

// Cells marks the fretboard notes that belong to active, and those that
// sound the tonic or the bass.
func Cells(notes []fretboard.Note, active []string, tonic, bass string) []FretNote {
	cells := make([]FretNote, 0, len(notes))
	for _, n := range notes {
		cells = append(cells, FretNote{
			Note:   n,
			Active: pitch.NoteIsActive(n.Note, active),
			Tonic:  pitch.SameNote(n.Note, tonic),
			Bass:   pitch.SameNote(n.Note, bass),
		})
	}
	return cells
}

type Display struct {
	Title       string            `json:"title"`
	ActiveNotes []string          `json:"active_notes"`
	BassNote    string            `json:"bass_note"`
	Degrees     []degree.Info     `json:"degrees"`
	Circle      []circle.Position `json:"circle"`
	Arcs        []circle.Arc      `json:"arcs"`
	Tuning      fretboard.Tuning  `json:"tuning"`
	Fretboard   []FretNote        `json:"fretboard"`
}

// inScale drops the degrees a pentatonic mode borrows from its parent, so
// the circle only labels notes the scale plays.
func inScale(degrees []degree.Info, notes []string) []degree.Info {
	res := make([]degree.Info, 0, len(degrees))
	for _, d := range degrees {
		if pitch.NoteIsActive(d.Note, notes) {
			res = append(res, d)
		}
	}
	return res
}

// Compute derives the display for cfg. Unknown mode or chord keys fall back
// to major, and strings of the tuning that cannot be parsed are left off the
// fretboard; both are logged. Only an invalid tonic is an error.
func Compute(cfg Config) (Display, error) {
	logger := logging.WithFields(logging.Fields{
		"tonic": cfg.Tonic,
		"view":  cfg.ViewMode.String(),
	})

	root, err := pitch.Parse(cfg.Tonic)
	if err != nil {
		return Display{}, fmt.Errorf("tonic: %w", err)
	}
	tonic := root.String()

	mode, err := scale.ParseMode(cfg.Mode)
	if err != nil {
		logger.Warn("Falling back to major scale", logging.Fields{"mode": cfg.Mode})
	}
	typ, err := chord.ParseType(cfg.ChordType)
	if err != nil {
		logger.Warn("Falling back to major chord", logging.Fields{"chord_type": cfg.ChordType})
	}

	var (
		active     []string
		bass       string
		title      string
		circleMode = scale.Major
	)
	switch cfg.ViewMode {
	case ScaleView:
		active, err = scale.Notes(tonic, mode)
		if err != nil {
			return Display{}, err
		}
		bass = tonic
		circleMode = mode
		title = tonic + " " + cases.Title(language.English).String(mode.String())
	default:
		active, err = chord.Notes(tonic, typ, cfg.Inversion)
		if err != nil {
			return Display{}, err
		}
		bass = active[0]
		title = tonic + " " + typ.Label()
		if bass != tonic {
			title += " / " + bass
		}
	}

	degrees, err := degree.Degrees(tonic, circleMode)
	if err != nil {
		return Display{}, err
	}

	bound := degrees
	if cfg.ViewMode == ScaleView {
		bound = inScale(degrees, active)
	}
	positions := circle.Bind(circle.Order(cfg.Accidentals), tonic, active, bound)

	tuning := fretboard.Resolve(cfg.Instrument, cfg.TuningPreset, cfg.CustomTuning)
	notes, err := fretboard.Generate(tuning)
	if err != nil {
		logger.Warn("Skipping invalid strings", logging.Fields{"error": err.Error()})
	}

	cells := Cells(notes, active, tonic, bass)

	d := Display{
		Title:       title,
		ActiveNotes: active,
		BassNote:    bass,
		Degrees:     degrees,
		Circle:      positions,
		Arcs:        circle.Arcs(positions),
		Tuning:      tuning,
		Fretboard:   cells,
	}
	logger.Debug("Computed view", logging.Fields{
		"active": len(active),
		"arcs":   len(d.Arcs),
		"cells":  len(cells),
	})
	return d, nil
}
