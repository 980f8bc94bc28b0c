package cmd

import (
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/detect"
	"github.com/jsphweid/fretwise/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect [notes...]",
	Short: "Names the chords and scales containing some notes",
	Long: `Names the chords and scales containing the given notes, best match first.
The first note is taken as the bass, e.g. "fretwise detect E G C".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newRenderer().Detection(cmd.OutOrStdout(), detectNotes(args))
	},
}

func detectNotes(notes []string) model.DetectResponse {
	return model.DetectResponse{
		Chords: detect.Truncate(detect.Chords(notes), constants.MaxChordResults),
		Scales: detect.Truncate(detect.Scales(notes), constants.MaxScaleResults),
	}
}
