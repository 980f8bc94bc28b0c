// Package finder keeps the notes a user has picked for chord or scale
// identification and reports what they match.
package finder

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/detect"
	"github.com/jsphweid/fretwise/pitch"
)

type Mode int

const (
	Off Mode = iota
	ChordMode
	ScaleMode
)

func (m Mode) String() string {
	switch m {
	case ChordMode:
		return "chord"
	case ScaleMode:
		return "scale"
	}
	return "off"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "off", "":
		return Off, nil
	case "chord":
		return ChordMode, nil
	case "scale":
		return ScaleMode, nil
	}
	return Off, fmt.Errorf("unknown finder mode %q, want off, chord or scale", s)
}

type Result struct {
	Mode     Mode     `json:"mode"`
	Selected []string `json:"selected"`
	Chords   []string `json:"chords"`
	Scales   []string `json:"scales"`
	// NeedMore is how many more distinct notes the mode needs before
	// anything is detected.
	NeedMore int `json:"need_more"`
}

// Session holds one ordered selection. The first selected note is treated
// as the bass. Safe for concurrent use.
type Session struct {
	ID string

	mu       sync.Mutex
	mode     Mode
	selected []string

	onChange  func(Result)
	debounced func(func())
}

type Option func(*Session)

// OnChange registers fn to receive the result after the selection or mode
// changes. Changes closer together than wait are delivered once, with the
// latest result.
func OnChange(wait time.Duration, fn func(Result)) Option {
	return func(s *Session) {
		s.onChange = fn
		s.debounced = debounce.New(wait)
	}
}

func NewSession(mode Mode, opts ...Option) *Session {
	s := &Session{
		ID:   uuid.New().String(),
		mode: mode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) notify() {
	if s.debounced == nil {
		return
	}
	s.debounced(func() {
		s.onChange(s.Result())
	})
}

// indexOf finds note in the selection by pitch class. Callers hold mu.
func (s *Session) indexOf(note string) int {
	for i, n := range s.selected {
		if pitch.SameNote(n, note) {
			return i
		}
	}
	return -1
}

// Toggle adds note, or removes it when a note of the same pitch class is
// already selected.
func (s *Session) Toggle(note string) error {
	n, err := pitch.Parse(note)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if i := s.indexOf(note); i >= 0 {
		s.selected = append(s.selected[:i:i], s.selected[i+1:]...)
	} else {
		s.selected = append(s.selected, n.String())
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// Add selects note unless its pitch class is already selected.
func (s *Session) Add(note string) error {
	n, err := pitch.Parse(note)
	if err != nil {
		return err
	}

	s.mu.Lock()
	added := s.indexOf(note) < 0
	if added {
		s.selected = append(s.selected, n.String())
	}
	s.mu.Unlock()

	if added {
		s.notify()
	}
	return nil
}

func (s *Session) Remove(note string) {
	s.mu.Lock()
	i := s.indexOf(note)
	if i >= 0 {
		s.selected = append(s.selected[:i:i], s.selected[i+1:]...)
	}
	s.mu.Unlock()

	if i >= 0 {
		s.notify()
	}
}

// Replace sets the selection to notes, keeping the first note of each
// pitch class. Unparseable names are skipped and reported.
func (s *Session) Replace(notes []string) error {
	var (
		next []string
		errs []error
	)
	for _, note := range notes {
		n, err := pitch.Parse(note)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !pitch.NoteIsActive(note, next) {
			next = append(next, n.String())
		}
	}

	s.mu.Lock()
	s.selected = next
	s.mu.Unlock()

	s.notify()
	return errors.Join(errs...)
}

func (s *Session) Clear() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
	s.notify()
}

// SetMode switches the mode. Switching to a different mode drops the
// selection.
func (s *Session) SetMode(m Mode) {
	s.mu.Lock()
	changed := m != s.mode
	if changed {
		s.mode = m
		s.selected = nil
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.selected...)
}

// Result runs detection on a snapshot of the selection. Chords are capped
// at constants.MaxChordResults and scales at constants.MaxScaleResults.
func (s *Session) Result() Result {
	s.mu.Lock()
	res := Result{
		Mode:     s.mode,
		Selected: append([]string{}, s.selected...),
		Chords:   []string{},
		Scales:   []string{},
	}
	s.mu.Unlock()

	switch res.Mode {
	case ChordMode:
		res.Chords = detect.Truncate(detect.Chords(res.Selected), constants.MaxChordResults)
		res.NeedMore = needMore(res.Selected, constants.MinChordNotes)
	case ScaleMode:
		res.Scales = detect.Truncate(detect.Scales(res.Selected), constants.MaxScaleResults)
		res.NeedMore = needMore(res.Selected, constants.MinScaleNotes)
	}
	return res
}

func needMore(selected []string, least int) int {
	if len(selected) >= least {
		return 0
	}
	return least - len(selected)
}
