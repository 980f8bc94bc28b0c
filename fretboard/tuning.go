package fretboard

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/util"
	"gopkg.in/yaml.v3"
)

// CustomPreset selects the caller supplied tuning in Resolve.
const CustomPreset = "custom"

type Instrument int

const (
	Guitar Instrument = iota
	Bass
)

func (i Instrument) String() string {
	if i == Bass {
		return "bass"
	}
	return "guitar"
}

func (i Instrument) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Instrument) UnmarshalText(text []byte) error {
	parsed, err := ParseInstrument(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

func ParseInstrument(s string) (Instrument, error) {
	switch s {
	case "guitar", "":
		return Guitar, nil
	case "bass":
		return Bass, nil
	}
	return Guitar, fmt.Errorf("unknown instrument %q, want guitar or bass", s)
}

func Instruments() []Instrument {
	return []Instrument{Guitar, Bass}
}

type StringTuning struct {
	Note   string `json:"note" yaml:"note"`
	Octave int    `json:"octave" yaml:"octave"`
}

func (s StringTuning) String() string {
	return fmt.Sprintf("%s%d", s.Note, s.Octave)
}

// ParseStringTuning reads a note with octave such as "D#2" or "B0".
func ParseStringTuning(s string) (StringTuning, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, "-0123456789")
	if i <= 0 {
		return StringTuning{}, fmt.Errorf("%w: %q has no octave", ErrInvalidTuning, s)
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return StringTuning{}, fmt.Errorf("%w: %q: %v", ErrInvalidTuning, s, err)
	}
	st := StringTuning{Note: s[:i], Octave: octave}
	if _, err := pitch.MIDI(st.Note, st.Octave); err != nil {
		return StringTuning{}, fmt.Errorf("%w: %w", ErrInvalidTuning, err)
	}
	return st, nil
}

// ParseTuning reads comma separated strings, lowest first, e.g.
// "D2,A2,D3,G3,B3,E4".
func ParseTuning(s string) (Tuning, error) {
	var t Tuning
	for _, part := range strings.Split(s, ",") {
		st, err := ParseStringTuning(part)
		if err != nil {
			return nil, err
		}
		t = append(t, st)
	}
	return t, nil
}

// Tuning lists open strings from the lowest pitch to the highest.
type Tuning []StringTuning

func (t Tuning) Clone() Tuning {
	if t == nil {
		return nil
	}
	return append(Tuning(nil), t...)
}

type Preset struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Tuning Tuning `json:"tuning"`
}

type instrumentPresets struct {
	def     string
	order   []string
	presets map[string]Preset
}

type presetFile map[string]struct {
	Default string   `yaml:"default"`
	Order   []string `yaml:"order"`
	Presets map[string]struct {
		Label  string `yaml:"label"`
		Tuning Tuning `yaml:"tuning"`
	} `yaml:"presets"`
}

//go:embed presets.yaml
var presetsYAML []byte

var catalog = mustLoadPresets(presetsYAML)

func mustLoadPresets(data []byte) map[Instrument]instrumentPresets {
	c, err := loadPresets(data)
	if err != nil {
		panic("Could not load tuning presets: " + err.Error())
	}
	return c
}

func loadPresets(data []byte) (map[Instrument]instrumentPresets, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	res := make(map[Instrument]instrumentPresets)
	for _, inst := range Instruments() {
		entry, ok := file[inst.String()]
		if !ok {
			return nil, fmt.Errorf("no presets for %v", inst)
		}

		ip := instrumentPresets{
			def:     entry.Default,
			order:   entry.Order,
			presets: make(map[string]Preset),
		}
		for _, key := range util.GetKeys(entry.Presets) {
			p := entry.Presets[key]
			for _, s := range p.Tuning {
				if _, err := pitch.MIDI(s.Note, s.Octave); err != nil {
					return nil, fmt.Errorf("preset %v/%s: %w", inst, key, err)
				}
			}
			ip.presets[key] = Preset{Key: key, Label: p.Label, Tuning: p.Tuning}
		}

		if len(ip.order) != len(ip.presets) {
			return nil, fmt.Errorf("%v: order lists %d presets, found %d", inst, len(ip.order), len(ip.presets))
		}
		for _, key := range ip.order {
			if _, ok := ip.presets[key]; !ok {
				return nil, fmt.Errorf("%v: order names unknown preset %q", inst, key)
			}
		}
		if _, ok := ip.presets[ip.def]; !ok {
			return nil, fmt.Errorf("%v: unknown default preset %q", inst, ip.def)
		}
		res[inst] = ip
	}
	return res, nil
}

// Presets returns the presets of inst in display order.
func Presets(inst Instrument) []Preset {
	ip := catalog[inst]
	res := make([]Preset, 0, len(ip.order))
	for _, key := range ip.order {
		p := ip.presets[key]
		p.Tuning = p.Tuning.Clone()
		res = append(res, p)
	}
	return res
}

func Lookup(inst Instrument, key string) (Preset, bool) {
	p, ok := catalog[inst].presets[key]
	if !ok {
		return Preset{}, false
	}
	p.Tuning = p.Tuning.Clone()
	return p, true
}

func DefaultPreset(inst Instrument) string {
	return catalog[inst].def
}

func Default(inst Instrument) Tuning {
	p, _ := Lookup(inst, DefaultPreset(inst))
	return p.Tuning
}

// Resolve picks the tuning to display: the custom tuning when presetKey is
// CustomPreset, the named preset when it exists, otherwise the default
// tuning of the instrument.
func Resolve(inst Instrument, presetKey string, custom Tuning) Tuning {
	if presetKey == CustomPreset {
		return custom.Clone()
	}
	if p, ok := Lookup(inst, presetKey); ok {
		return p.Tuning
	}
	return Default(inst)
}
