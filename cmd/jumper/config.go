package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carrot-jump/internal/config"
)

var flagConfigPath bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the configuration the game would use, as YAML, and where it came from.

Search order:
  --config path
  $XDG_CONFIG_HOME/carrot-jump/jumper.yaml
  ./configs/jumper.yaml
  built-in defaults

Redirect the output to start a config file of your own:
  jumper config > ~/.config/carrot-jump/jumper.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigPath, "path", false, "Only print where a user config is looked up")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagConfigPath {
		fmt.Fprintln(out, config.UserConfigPath())
		return nil
	}

	cfg, source, err := config.LoadJumper(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
