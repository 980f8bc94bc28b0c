package cmd

import (
	"github.com/jsphweid/fretwise/degree"
	"github.com/jsphweid/fretwise/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(degreesCmd)
}

var degreesCmd = &cobra.Command{
	Use:   "degrees <tonic> [mode]",
	Short: "Names the seven degrees of a mode",
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

		degrees, err := degree.Degrees(args[0], mode)
		if err != nil {
			return err
		}
		return newRenderer().Degrees(cmd.OutOrStdout(), degrees)
	},
}
