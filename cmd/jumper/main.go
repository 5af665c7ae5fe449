// jumper is an endless jumper for the terminal, SSH and the desktop.
//
// Usage:
//
//	jumper play [game]      - Play a variant (default: jumper)
//	jumper menu             - Pick a variant interactively
//	jumper serve            - Start SSH server for remote play
//	jumper scores [game]    - Show high scores
//	jumper config           - Print the effective game config
//	jumper list             - List available variants
//
// Global flags:
//
//	--fps <rate>         - Tick rate (default: 60)
//	--seed <value>       - RNG seed for reproducible runs
//	--db <path>          - Score database (default: XDG data dir)
//	--config <path>      - Game config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carrot-jump/internal/games/jumper"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logFile io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Carrot Jump - help the bunny climb",
	Long: `Carrot Jump is an endless jumper. The bunny bounces from platform to
platform on its own; steer it left and right, collect carrots and don't fall.

Available commands:
  play     - Play a variant directly
  menu     - Interactive variant picker with scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective game config
  list     - Show all variants

Examples:
  jumper play
  jumper play jumper-classic
  jumper play --gui
  jumper serve --ssh :2222
  jumper scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		jumper.SetConfigPath(flagConfig)
		if cmd.Name() == serveCmd.Name() {
			// The server logs to stderr itself.
			return setupStderrLogging(flagLogLevel)
		}
		f, err := setupLogging(flagLogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
			return nil
		}
		logFile = f
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default: XDG data dir)")
	pf.StringVar(&flagConfig, "config", "", "Path to game config YAML")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
