package model

import "github.com/jsphweid/fretwise/fretboard"

type DetectRequest struct {
	Notes []string `json:"notes"`
}

type DetectResponse struct {
	Chords []string `json:"chords"`
	Scales []string `json:"scales"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

// Entry is a catalog item: a mode key or chord symbol with its label.
type Entry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type InstrumentPresets struct {
	Instrument string             `json:"instrument"`
	Default    string             `json:"default"`
	Presets    []fretboard.Preset `json:"presets"`
}

type Catalog struct {
	Modes       []Entry             `json:"modes"`
	ChordTypes  []Entry             `json:"chord_types"`
	Tonics      []string            `json:"tonics"`
	Instruments []InstrumentPresets `json:"instruments"`
}
