package midi

import (
	"sort"
	"sync"

	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/pitch"
)

// Held is the set of keys currently pressed. Safe for concurrent use.
type Held struct {
	mu   sync.Mutex
	keys map[uint8]bool
}

func NewHeld() *Held {
	return &Held{keys: make(map[uint8]bool)}
}

func (h *Held) Press(key uint8) {
	h.mu.Lock()
	h.keys[key] = true
	h.mu.Unlock()
}

func (h *Held) Release(key uint8) {
	h.mu.Lock()
	delete(h.keys, key)
	h.mu.Unlock()
}

func (h *Held) Keys() []uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return sortedKeys(h.keys)
}

// Names spells the held keys with sharps, lowest first, so the bass comes
// first.
func (h *Held) Names() []string {
	return keyNames(h.Keys())
}

// ChordKey identifies the held pitch classes regardless of octave.
func (h *Held) ChordKey() string {
	return chordKey(h.Keys())
}

func sortedKeys(m map[uint8]bool) []uint8 {
	keys := make([]uint8, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func keyNames(keys []uint8) []string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		name, _, _ := pitch.NameFromMIDI(int(k), pitch.Sharps)
		names = append(names, name)
	}
	return names
}

func chordKey(keys []uint8) string {
	pcs := make([]int, 0, len(keys))
	for _, k := range keys {
		pcs = append(pcs, int(k))
	}
	return chord.CreateChordKey(pcs)
}
