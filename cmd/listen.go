package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/finder"
	"github.com/jsphweid/fretwise/logging"
	"github.com/jsphweid/fretwise/midi"
	"github.com/jsphweid/fretwise/model"
	"github.com/spf13/cobra"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenFlags struct {
	port      int
	list      bool
	mode      string
	debounced int
}

func init() {
	f := listenCmd.Flags()
	f.IntVarP(&listenFlags.port, "port", "p", constants.GetMidiPort(), "MIDI input port number")
	f.BoolVar(&listenFlags.list, "list", false, "list the MIDI input ports and exit")
	f.StringVar(&listenFlags.mode, "find", finder.ChordMode.String(), "chord or scale")
	f.IntVar(&listenFlags.debounced, "debounce-ms", int(constants.GetDebounce().Milliseconds()), "wait for held notes to settle this long")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the chords or scales played on a MIDI keyboard",
	Long: `Listens to a MIDI input port and prints the chords or scales matching the
held notes each time they settle. Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listenFlags.list {
			fmt.Fprintln(cmd.OutOrStdout(), midi.InPorts())
			return nil
		}

		mode, err := finder.ParseMode(listenFlags.mode)
		if err != nil {
			return err
		}
		return listen(cmd, mode)
	},
}

func listen(cmd *cobra.Command, mode finder.Mode) error {
	r := newRenderer()
	out := cmd.OutOrStdout()
	wait := time.Duration(listenFlags.debounced) * time.Millisecond

	session := finder.NewSession(mode, finder.OnChange(wait, func(res finder.Result) {
		if len(res.Selected) == 0 {
			return
		}
		fmt.Fprintf(out, "held: %s\n", strings.Join(res.Selected, " "))
		if res.NeedMore > 0 {
			fmt.Fprintf(out, "  %d more note(s) needed\n", res.NeedMore)
			return
		}
		if err := r.Detection(out, model.DetectResponse{Chords: res.Chords, Scales: res.Scales}); err != nil {
			logging.Error(err, "Could not print detection")
		}
	}))
	logger := logging.WithFields(logging.Fields{"session": session.ID, "find": mode.String()})

	stop, err := midi.Listen(listenFlags.port, func(notes []string) {
		if err := session.Replace(notes); err != nil {
			logger.Warn("Ignoring notes", logging.Fields{"error": err.Error()})
		}
	})
	if err != nil {
		return err
	}
	defer stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	logger.Info("Waiting for notes")
	<-ctx.Done()
	return nil
}
