package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-berzerk/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the search path, the config file and
the difficulty preset have been applied. The output is valid YAML and can
be saved to ~/.berzerk/configs/berzerk.yaml as a starting point.

Examples:
  berzerk config
  berzerk config --difficulty hard
  berzerk config --config ./my-berzerk.yaml
  berzerk config --defaults > ~/.berzerk/configs/berzerk.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file with its comments instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // Nothing left to do if stdout is gone
		return
	}

	cfg, err := config.LoadWithPreset(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out) //nolint:errcheck // Nothing left to do if stdout is gone
}
