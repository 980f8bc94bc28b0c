package cmd

import (
	"github.com/jsphweid/fretwise/view"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lists modes, chord types and tuning presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return newRenderer().Catalog(cmd.OutOrStdout(), view.Catalog())
	},
}
