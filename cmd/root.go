package cmd

import (
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/logging"
	"github.com/jsphweid/fretwise/render"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "fretwise",
	Short: "Scales, chords, the circle of fifths and the fretboard",
	Long: `fretwise spells scales and chords, names their degrees, lays them out on the
circle of fifths and on a guitar or bass fretboard, and names chords and
scales from a set of notes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logging.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func newRenderer() *render.Renderer {
	r, err := render.New()
	cobra.CheckErr(err)
	return r
}
