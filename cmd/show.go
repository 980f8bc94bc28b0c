package cmd

import (
	"encoding/json"
	"os"

	"github.com/jsphweid/fretwise/circle"
	"github.com/jsphweid/fretwise/fretboard"
	"github.com/jsphweid/fretwise/view"
	"github.com/spf13/cobra"
)

var showFlags struct {
	config      string
	asJSON      bool
	instrument  string
	tonic       string
	viewMode    string
	mode        string
	chordType   string
	inversion   int
	accidentals string
	preset      string
	custom      string
}

func init() {
	def := view.DefaultConfig()
	f := showCmd.Flags()
	f.StringVarP(&showFlags.config, "config", "c", "", "YAML file with the settings; flags override it")
	f.BoolVar(&showFlags.asJSON, "json", false, "print the display as JSON")
	f.StringVar(&showFlags.instrument, "instrument", def.Instrument.String(), "guitar or bass")
	f.StringVar(&showFlags.tonic, "tonic", def.Tonic, "tonic or chord root")
	f.StringVar(&showFlags.viewMode, "view", def.ViewMode.String(), "scale or chord")
	f.StringVar(&showFlags.mode, "mode", def.Mode, "mode shown in scale view")
	f.StringVar(&showFlags.chordType, "chord", def.ChordType, "chord type shown in chord view")
	f.IntVarP(&showFlags.inversion, "inversion", "i", def.Inversion, "chord inversion")
	f.StringVar(&showFlags.accidentals, "accidentals", def.Accidentals.String(), "flats or sharps on the circle")
	f.StringVarP(&showFlags.preset, "tuning", "t", def.TuningPreset, "tuning preset")
	f.StringVar(&showFlags.custom, "custom", "", "custom tuning, lowest string first")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Shows a scale or chord everywhere at once",
	Long: `Shows the title, notes, degrees, circle of fifths and fretboard for one set of
settings, read from --config and the flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := showConfig(cmd)
		if err != nil {
			return err
		}

		d, err := view.Compute(cfg)
		if err != nil {
			return err
		}

		if showFlags.asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		}
		return newRenderer().View(cmd.OutOrStdout(), d)
	},
}

// showConfig layers the changed flags over the config file, or over the
// defaults when there is no file.
func showConfig(cmd *cobra.Command) (view.Config, error) {
	cfg := view.DefaultConfig()
	if showFlags.config != "" {
		f, err := os.Open(showFlags.config)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if cfg, err = view.LoadConfig(f); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	var err error
	if flags.Changed("instrument") {
		if cfg.Instrument, err = fretboard.ParseInstrument(showFlags.instrument); err != nil {
			return cfg, err
		}
		if !flags.Changed("tuning") {
			cfg.TuningPreset = fretboard.DefaultPreset(cfg.Instrument)
		}
	}
	if flags.Changed("tonic") {
		cfg.Tonic = showFlags.tonic
	}
	if flags.Changed("view") {
		if err = cfg.ViewMode.UnmarshalText([]byte(showFlags.viewMode)); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("mode") {
		cfg.Mode = showFlags.mode
	}
	if flags.Changed("chord") {
		cfg.ChordType = showFlags.chordType
	}
	if flags.Changed("inversion") {
		cfg.Inversion = showFlags.inversion
	}
	if flags.Changed("accidentals") {
		if cfg.Accidentals, err = circle.ParseAccidentals(showFlags.accidentals); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("tuning") {
		cfg.TuningPreset = showFlags.preset
	}
	if flags.Changed("custom") {
		if cfg.CustomTuning, err = fretboard.ParseTuning(showFlags.custom); err != nil {
			return cfg, err
		}
		cfg.TuningPreset = fretboard.CustomPreset
	}
	return cfg, nil
}
