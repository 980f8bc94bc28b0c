package cmd

import (
	"strings"

	"github.com/jsphweid/fretwise/fretboard"
	"github.com/jsphweid/fretwise/logging"
	"github.com/jsphweid/fretwise/view"
	"github.com/spf13/cobra"
)

var fretboardFlags struct {
	instrument string
	preset     string
	custom     string
	notes      string
}

func init() {
	f := fretboardCmd.Flags()
	f.StringVar(&fretboardFlags.instrument, "instrument", fretboard.Guitar.String(), "guitar or bass")
	f.StringVarP(&fretboardFlags.preset, "tuning", "t", "", "tuning preset, see catalog (default: the instrument's standard)")
	f.StringVar(&fretboardFlags.custom, "custom", "", `custom tuning, lowest string first, e.g. "D2,A2,D3,G3,B3,E4"`)
	f.StringVarP(&fretboardFlags.notes, "notes", "n", "", `notes to mark, the first is the root, e.g. "C,E,G"`)
	rootCmd.AddCommand(fretboardCmd)
}

var fretboardCmd = &cobra.Command{
	Use:   "fretboard",
	Short: "Draws the fretboard for a tuning",
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := fretboard.ParseInstrument(fretboardFlags.instrument)
		if err != nil {
			return err
		}

		preset := fretboardFlags.preset
		var custom fretboard.Tuning
		if fretboardFlags.custom != "" {
			if custom, err = fretboard.ParseTuning(fretboardFlags.custom); err != nil {
				return err
			}
			preset = fretboard.CustomPreset
		}
		tuning := fretboard.Resolve(inst, preset, custom)

		notes, err := fretboard.Generate(tuning)
		if err != nil {
			logging.Warn("Skipping invalid strings", logging.Fields{"error": err.Error()})
		}

		var marked []string
		var root string
		if fretboardFlags.notes != "" {
			marked = strings.Split(fretboardFlags.notes, ",")
			for i := range marked {
				marked[i] = strings.TrimSpace(marked[i])
			}
			root = marked[0]
		}
		return newRenderer().Fretboard(cmd.OutOrStdout(), tuning, view.Cells(notes, marked, root, root))
	},
}
