package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, s *Store, game string, score int, player, session string) {
	t.Helper()
	if _, err := s.SaveScore(game, score, player, session); err != nil {
		t.Fatalf("SaveScore(%q, %d) failed: %v", game, score, err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "jumper", 10, "ann", "s1")
	mustSave(t, store, "jumper", 5, "bob", "s2")
	mustSave(t, store, "jumper", 20, "ann", "s1")
	mustSave(t, store, "jumper-classic", 50, "", "s3")

	scores, err := store.TopScores("jumper", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{20, 10, 5}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Player != "ann" || scores[0].SessionID != "s1" {
		t.Errorf("top entry = %+v, want player ann in session s1", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	classic, err := store.TopScores("jumper-classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classic))
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("jumper", -1, "", ""); err == nil {
		t.Error("SaveScore() accepted a negative score")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, "test", (i+1)*100, "", "")
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresTieKeepsInsertOrder(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "jumper", 7, "first", "")
	mustSave(t, store, "jumper", 7, "second", "")

	scores, err := store.TopScores("jumper", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Player != "first" {
		t.Errorf("tie order = %v, want first before second", scores)
	}
}

func TestStoreSessionScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "jumper", 3, "ann", "a")
	mustSave(t, store, "jumper", 9, "bob", "b")
	mustSave(t, store, "jumper", 1, "ann", "a")

	runs, err := store.SessionScores("a")
	if err != nil {
		t.Fatalf("SessionScores() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 3 || runs[1].Score != 1 {
		t.Errorf("SessionScores(a) = %v, want runs 3 then 1", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("jumper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "jumper", 100, "", "")
	mustSave(t, store, "jumper", 300, "", "")
	mustSave(t, store, "jumper", 200, "", "")

	high, err = store.HighScore("jumper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "jumper", 100, "", "")
	mustSave(t, store, "jumper", 200, "", "")
	mustSave(t, store, "jumper-classic", 300, "", "")

	if err := store.ClearScores("jumper"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("jumper", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 jumper scores after clear, got %d", len(scores))
	}

	classic, _ := store.TopScores("jumper-classic", 10)
	if len(classic) != 1 {
		t.Errorf("Classic scores should not be affected by clearing jumper")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("jumper")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, "jumper", 4, "ann", "")
	mustSave(t, store, "jumper", 8, "bob", "")
	mustSave(t, store, "jumper", 6, "ann", "")
	mustSave(t, store, "jumper", 2, "", "")

	stats, err := store.GetGameStats("jumper")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 4 {
		t.Errorf("GamesCount = %d, want 4", stats.GamesCount)
	}
	if stats.HighScore != 8 {
		t.Errorf("HighScore = %d, want 8", stats.HighScore)
	}
	if stats.TotalScore != 20 {
		t.Errorf("TotalScore = %d, want 20", stats.TotalScore)
	}
	if stats.AvgScore != 5 {
		t.Errorf("AvgScore = %v, want 5", stats.AvgScore)
	}
	if stats.Players != 2 {
		t.Errorf("Players = %d, want 2", stats.Players)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "jumper", 4, "", "")
	mustSave(t, store, "jumper-classic", 9, "", "")

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["jumper-classic"].HighScore != 9 {
		t.Errorf("classic high = %d, want 9", all["jumper-classic"].HighScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
