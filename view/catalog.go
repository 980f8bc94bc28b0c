package view

import (
	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/fretboard"
	"github.com/jsphweid/fretwise/model"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/scale"
)

// Catalog lists every choice a Config accepts. Tonics are spelled with
// flats.
func Catalog() model.Catalog {
	c := model.Catalog{Tonics: pitch.Chromatic(pitch.Flats)}
	for _, m := range scale.Modes() {
		c.Modes = append(c.Modes, model.Entry{Key: m.String(), Label: m.Label()})
	}
	for _, t := range chord.Types() {
		c.ChordTypes = append(c.ChordTypes, model.Entry{Key: t.Symbol(), Label: t.Label()})
	}
	for _, inst := range fretboard.Instruments() {
		c.Instruments = append(c.Instruments, model.InstrumentPresets{
			Instrument: inst.String(),
			Default:    fretboard.DefaultPreset(inst),
			Presets:    fretboard.Presets(inst),
		})
	}
	return c
}
