package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
)

func TestHeld(t *testing.T) {
	h := NewHeld()
	h.Press(67)
	h.Press(48)
	h.Press(64)
	h.Press(60)

	assert := assert.New(t)
	assert.Equal([]uint8{48, 60, 64, 67}, h.Keys())
	assert.Equal([]string{"C", "C", "E", "G"}, h.Names())
	assert.Equal("0-4-7", h.ChordKey())

	h.Release(48)
	h.Release(99)
	assert.Equal([]string{"C", "E", "G"}, h.Names())
}

func TestHeldEmpty(t *testing.T) {
	h := NewHeld()
	assert.Empty(t, h.Keys())
	assert.Empty(t, h.Names())
}

func TestHandle(t *testing.T) {
	h := NewHeld()
	changes := 0
	changed := func() { changes++ }

	handle(h, midi.NoteOn(0, 61, 90), changed)
	handle(h, midi.NoteOn(0, 65, 90), changed)
	handle(h, midi.ControlChange(0, 64, 127), changed)

	assert := assert.New(t)
	assert.Equal(2, changes)
	assert.Equal([]string{"C#", "F"}, h.Names())

	// note on with velocity 0 releases
	handle(h, midi.NoteOn(0, 61, 0), changed)
	handle(h, midi.NoteOff(0, 65), changed)
	assert.Equal(4, changes)
	assert.Empty(h.Keys())
}
