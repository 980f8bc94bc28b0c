// Package midi follows the keys held on a MIDI input port.
package midi

import (
	"fmt"

	"github.com/jsphweid/fretwise/logging"
	"gitlab.com/gomidi/midi/v2"
)

// InPorts describes the available input ports.
func InPorts() string {
	return fmt.Sprint(midi.GetInPorts())
}

// Listen opens input port and calls onChange with the held notes, lowest
// first, after every key press or release. Call stop to close the port and
// the driver.
func Listen(port int, onChange func(notes []string)) (stop func(), err error) {
	in, err := midi.InPort(port)
	if err != nil {
		midi.CloseDriver()
		return nil, fmt.Errorf("can't open MIDI input port %d: %w", port, err)
	}

	logger := logging.WithFields(logging.Fields{"port": in.String()})
	held := NewHeld()

	stopListening, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		handle(held, msg, func() {
			logger.Debug("Held notes changed", logging.Fields{"key": held.ChordKey()})
			onChange(held.Names())
		})
	})
	if err != nil {
		midi.CloseDriver()
		return nil, err
	}

	logger.Info("Listening for MIDI input")
	return func() {
		stopListening()
		midi.CloseDriver()
	}, nil
}

// handle applies a note message to held and calls changed if it was one.
// Other messages are ignored.
func handle(held *Held, msg midi.Message, changed func()) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		held.Press(key)
	case msg.GetNoteEnd(&ch, &key):
		held.Release(key)
	default:
		return
	}
	changed()
}
