package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carrot-jump/internal/registry"
	"github.com/vovakirdan/carrot-jump/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a variant",
	Long: `Display the best runs for a variant (default: jumper).

Examples:
  jumper scores
  jumper scores jumper-classic --limit 20
  jumper scores --clear
  jumper scores --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the variant")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarise every variant that has been played")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagScoresAll {
		return runAllScores(cmd)
	}

	gameID := registry.DefaultGame
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'jumper list' to see variants)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	title := registry.Title(gameID)

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'jumper play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-7s  %-16s  %s\n", "Rank", "Carrots", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-7s  %-16s  %s\n", "----", "-------", "------", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-7d  %-16s  %s\n", i+1, e.Score, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Fprintf(out, "\nBest: %d  Runs: %d  Average: %.1f  Players: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Players)
	}
	return nil
}

func runAllScores(cmd *cobra.Command) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(stats) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-24s  %-5s  %-5s  %-7s  %s\n", "Variant", "Best", "Runs", "Average", "Last played")
	fmt.Fprintf(out, "  %-24s  %-5s  %-5s  %-7s  %s\n", "-------", "----", "----", "-------", "-----------")
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		st := stats[id]
		fmt.Fprintf(out, "  %-24s  %-5d  %-5d  %-7.1f  %s\n",
			registry.Title(st.GameID), st.HighScore, st.GamesCount, st.AvgScore,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
