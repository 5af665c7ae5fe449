package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/carrot-jump/internal/assets"
	"github.com/vovakirdan/carrot-jump/internal/audio"
	"github.com/vovakirdan/carrot-jump/internal/config"
	"github.com/vovakirdan/carrot-jump/internal/core"
	"github.com/vovakirdan/carrot-jump/internal/platform/gui"
	"github.com/vovakirdan/carrot-jump/internal/platform/tui"
	"github.com/vovakirdan/carrot-jump/internal/registry"
	"github.com/vovakirdan/carrot-jump/internal/storage"
)

var (
	flagGUI    bool
	flagScale  float64
	flagPlayer string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: jumper).

The bunny jumps by itself whenever it lands. Steer it while it is in the air;
without input it keeps its sideways speed. Walking off one edge brings it back
on the other.

Controls:
  Left/A, Right/D  - Steer while airborne
  P                - Pause
  Space            - Play again (on the game over screen)
  R                - Restart with a new seed (after game over)
  Esc/B            - Leave (paused or after game over)
  Ctrl+S           - Save a text screenshot (terminal only)
  Ctrl+Y           - Copy the screen to the clipboard (terminal only)
  Q/Ctrl+C         - Quit

Examples:
  jumper play
  jumper play jumper-classic
  jumper play --gui --scale 1.5
  jumper play --seed 42 --config ./my-jumper.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a desktop window instead of the terminal")
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale for --gui")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name stored with your scores")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := registry.DefaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'jumper list' to see variants)", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	player, closeAudio := openAudio()
	defer closeAudio()

	cfg := runtimeConfig()
	sessionID := uuid.NewString()
	log.Info("starting game", "game", gameID, "session", sessionID, "gui", flagGUI, "seed", cfg.Seed)

	if flagGUI {
		err = gui.Run(game, store, cfg, gui.Options{
			Player:    flagPlayer,
			SessionID: sessionID,
			Audio:     player,
			Scale:     flagScale,
		})
	} else {
		err = tui.Run(game, store, cfg, tui.Options{
			Player:    flagPlayer,
			SessionID: sessionID,
			Audio:     player,
			CopyText:  clipboard.WriteAll,
		})
	}
	if err != nil {
		return err
	}

	printSessionSummary(cmd.OutOrStdout(), store, sessionID)
	return nil
}

// printSessionSummary lists the runs saved during this session.
func printSessionSummary(out io.Writer, store *storage.Store, sessionID string) {
	if store == nil {
		return
	}
	runs, err := store.SessionScores(sessionID)
	if err != nil {
		log.Warn("cannot read session scores", "session", sessionID, "err", err)
		return
	}
	if len(runs) == 0 {
		return
	}

	best := 0
	for _, r := range runs {
		best = max(best, r.Score)
	}
	fmt.Fprintf(out, "This session: %d run(s), best %d carrots\n", len(runs), best)
}

// runtimeConfig probes the terminal and applies the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database; the game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		log.Warn("scores disabled", "err", err)
		return nil
	}
	return store
}

// openAudio opens the speaker as the game config asks.
func openAudio() (audio.Player, func()) {
	cfg, _, err := config.LoadJumper(flagConfig)
	if err != nil {
		log.Warn("audio uses default config", "err", err)
		cfg = config.DefaultJumperConfig()
	}
	catalog, err := assets.Default()
	if err != nil {
		log.Error("cannot load assets", "err", err)
		return audio.Silent{}, func() {}
	}

	p := audio.Open(catalog, audio.Options{
		Enabled: cfg.Audio.Enabled && !flagMute,
		Volume:  cfg.Audio.Volume,
	})
	if s, ok := p.(*audio.Speaker); ok {
		return s, s.Close
	}
	return p, func() {}
}
