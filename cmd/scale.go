package cmd

import (
	"github.com/jsphweid/fretwise/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <tonic> [mode]",
	Short: "Spells a scale",
	Long:  `Spells the scale of mode (default major) on tonic, e.g. "fretwise scale Eb dorian".`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := scale.Major
		if len(args) == 2 {
			m, err := scale.ParseMode(args[1])
			if err != nil {
				return err
			}
			mode = m
		}

		notes, err := scale.Notes(args[0], mode)
		if err != nil {
			return err
		}
		return newRenderer().Notes(cmd.OutOrStdout(), args[0]+" "+mode.Label(), notes)
	},
}
