package cmd

import (
	"github.com/jsphweid/fretwise/chord"
	"github.com/spf13/cobra"
)

var inversion int

func init() {
	chordCmd.Flags().IntVarP(&inversion, "inversion", "i", 0, "number of notes moved from the bottom to the top")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <root> [type]",
	Short: "Spells a chord",
	Long:  `Spells the chord of type (default M) on root, e.g. "fretwise chord A m7 -i 1".`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ := chord.Major
		if len(args) == 2 {
			t, err := chord.ParseType(args[1])
			if err != nil {
				return err
			}
			typ = t
		}

		notes, err := chord.Notes(args[0], typ, inversion)
		if err != nil {
			return err
		}
		return newRenderer().Notes(cmd.OutOrStdout(), args[0]+typ.Symbol()+" ("+typ.Label()+")", notes)
	},
}
