package cmd

import (
	"github.com/jsphweid/fretwise/circle"
	"github.com/jsphweid/fretwise/degree"
	"github.com/jsphweid/fretwise/scale"
	"github.com/spf13/cobra"
)

var accidentals string

func init() {
	circleCmd.Flags().StringVarP(&accidentals, "accidentals", "a", circle.Flats.String(), "flats or sharps")
	rootCmd.AddCommand(circleCmd)
}

var circleCmd = &cobra.Command{
	Use:   "circle <tonic> [mode]",
	Short: "Shows a mode on the circle of fifths",
	Long: `Lists the circle of fifths from C with the notes of the mode marked, the
degree and triad of each, and the arcs grouping major, minor and diminished
degrees.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		acc, err := circle.ParseAccidentals(accidentals)
		if err != nil {
			return err
		}
		mode := scale.Major
		if len(args) == 2 {
			if mode, err = scale.ParseMode(args[1]); err != nil {
				return err
			}
		}

		notes, err := scale.Notes(args[0], mode)
		if err != nil {
			return err
		}
		degrees, err := degree.Degrees(args[0], mode)
		if err != nil {
			return err
		}

		positions := circle.Bind(circle.Order(acc), args[0], notes, degrees)
		return newRenderer().Circle(cmd.OutOrStdout(), positions, circle.Arcs(positions))
	},
}
