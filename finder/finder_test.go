package finder

import (
	"sync"
	"testing"
	"time"

	"github.com/jsphweid/fretwise/constants"
	"github.com/stretchr/testify/assert"
)

func TestToggleBySamePitchClass(t *testing.T) {
	s := NewSession(ChordMode)

	assert := assert.New(t)
	assert.NoError(s.Toggle("C"))
	assert.NoError(s.Toggle("e"))
	assert.Equal([]string{"C", "E"}, s.Selected())

	assert.NoError(s.Toggle("B#"))
	assert.Equal([]string{"E"}, s.Selected())

	assert.Error(s.Toggle("H"))
	assert.Equal([]string{"E"}, s.Selected())
}

func TestAddRemoveClear(t *testing.T) {
	s := NewSession(ScaleMode)
	s.Add("D")
	s.Add("F#")
	s.Add("Gb")
	s.Remove("D")

	assert := assert.New(t)
	assert.Equal([]string{"F#"}, s.Selected())

	s.Clear()
	assert.Empty(s.Selected())
}

func TestSetModeClearsSelection(t *testing.T) {
	s := NewSession(ChordMode)
	s.Add("C")
	s.SetMode(ChordMode)
	assert.Len(t, s.Selected(), 1)

	s.SetMode(ScaleMode)
	assert.Empty(t, s.Selected())
	assert.Equal(t, ScaleMode, s.Mode())
}

func TestResult(t *testing.T) {
	s := NewSession(ChordMode)
	s.Add("C")

	assert := assert.New(t)
	res := s.Result()
	assert.Equal(1, res.NeedMore)
	assert.Empty(res.Chords)
	assert.NotNil(res.Scales)

	s.Add("E")
	res = s.Result()
	assert.Equal(0, res.NeedMore)
	assert.Len(res.Chords, constants.MaxChordResults)
	assert.Equal("CM", res.Chords[0])

	s.SetMode(ScaleMode)
	for _, n := range []string{"C", "D", "E"} {
		s.Add(n)
	}
	res = s.Result()
	assert.Empty(res.Chords)
	assert.Len(res.Scales, constants.MaxScaleResults)
	assert.Equal("C major pentatonic", res.Scales[0])
}

func TestOffDetectsNothing(t *testing.T) {
	s := NewSession(Off)
	s.Add("C")
	s.Add("E")
	s.Add("G")
	res := s.Result()
	assert.Empty(t, res.Chords)
	assert.Empty(t, res.Scales)
	assert.Equal(t, 0, res.NeedMore)
}

func TestOnChangeIsDebounced(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []Result
	)
	done := make(chan struct{}, 1)
	s := NewSession(ChordMode, OnChange(20*time.Millisecond, func(r Result) {
		mu.Lock()
		calls = append(calls, r)
		mu.Unlock()
		done <- struct{}{}
	}))

	s.Add("C")
	s.Add("E")
	s.Add("G")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("no change delivered")
	}
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, calls, 1)
	assert.Equal(t, []string{"C", "E", "G"}, calls[0].Selected)
	assert.Equal(t, "CM", calls[0].Chords[0])
}

func TestSessionIDs(t *testing.T) {
	assert.NotEqual(t, NewSession(Off).ID, NewSession(Off).ID)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("scale")
	assert.NoError(t, err)
	assert.Equal(t, ScaleMode, m)

	_, err = ParseMode("arpeggio")
	assert.Error(t, err)
}

func TestReplace(t *testing.T) {
	s := NewSession(ChordMode)
	s.Add("D")

	err := s.Replace([]string{"E", "g", "Fb", "nope", "C"})
	assert.Error(t, err)
	assert.Equal(t, []string{"E", "G", "C"}, s.Selected())
	assert.Equal(t, "CM/E", s.Result().Chords[0])
}
