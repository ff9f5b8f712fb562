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

func mustSave(t *testing.T, store *Store, r Record) {
	t.Helper()
	if _, err := store.SaveScore(r); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, NewRecord("berzerk", "normal", 250, 3, false))
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("berzerk", "")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 250 {
		t.Errorf("Expected 250 after reopen, got %d", high)
	}
}

func TestNewRecord(t *testing.T) {
	a := NewRecord("berzerk", "hard", 100, 2, false)
	b := NewRecord("berzerk", "hard", 100, 2, false)

	if a.RunID == "" || a.RunID == b.RunID {
		t.Errorf("Expected distinct run ids, got %q and %q", a.RunID, b.RunID)
	}
	if a.GameID != "berzerk" || a.Difficulty != "hard" || a.Score != 100 || a.Level != 2 || a.Won {
		t.Errorf("Unexpected record: %+v", a)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, NewRecord("berzerk", "normal", 100, 2, false))
	mustSave(t, store, NewRecord("berzerk", "normal", 50, 1, false))
	mustSave(t, store, NewRecord("berzerk", "normal", 1200, 5, true))
	mustSave(t, store, NewRecord("other", "normal", 500, 1, false))

	scores, err := store.TopScores("berzerk", "normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{1200, 100, 50}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, s.Score, want[i])
		}
	}

	best := scores[0]
	if !best.Won || best.Level != 5 || best.RunID == "" || best.ID == 0 {
		t.Errorf("Best run not stored faithfully: %+v", best)
	}
	if best.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreSaveFillsDefaults(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Record{GameID: "berzerk", Score: 10, Level: 1})

	scores, err := store.TopScores("berzerk", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	if scores[0].RunID == "" {
		t.Error("Expected a generated run id")
	}
	if scores[0].Difficulty != "normal" {
		t.Errorf("Expected default difficulty normal, got %q", scores[0].Difficulty)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	r := NewRecord("berzerk", "normal", 100, 1, false)
	mustSave(t, store, r)

	if _, err := store.SaveScore(r); err == nil {
		t.Error("Expected an error saving the same run twice")
	}
}

func TestStoreTopScoresByDifficulty(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, NewRecord("berzerk", "easy", 900, 4, false))
	mustSave(t, store, NewRecord("berzerk", "hard", 300, 2, false))
	mustSave(t, store, NewRecord("berzerk", "hard", 400, 3, false))

	tests := []struct {
		difficulty string
		want       []int
	}{
		{"easy", []int{900}},
		{"hard", []int{400, 300}},
		{"normal", nil},
		{"", []int{900, 400, 300}},
	}

	for _, tc := range tests {
		t.Run("difficulty="+tc.difficulty, func(t *testing.T) {
			scores, err := store.TopScores("berzerk", tc.difficulty, 10)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != len(tc.want) {
				t.Fatalf("Expected %d scores, got %d", len(tc.want), len(scores))
			}
			for i, s := range scores {
				if s.Score != tc.want[i] {
					t.Errorf("scores[%d] = %d, expected %d", i, s.Score, tc.want[i])
				}
			}
		})
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		mustSave(t, store, NewRecord("berzerk", "normal", (i+1)*50, 1, false))
	}

	scores, err := store.TopScores("berzerk", "normal", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 750 || scores[1].Score != 700 || scores[2].Score != 650 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	scores, err = store.TopScores("berzerk", "normal", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != DefaultLimit {
		t.Errorf("Expected default limit %d, got %d", DefaultLimit, len(scores))
	}
}

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, NewRecord("berzerk", "normal", 200, 2, false))
	mustSave(t, store, NewRecord("berzerk", "normal", 200, 3, false))

	scores, err := store.TopScores("berzerk", "normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Level != 3 {
		t.Errorf("Expected the deeper run first on equal score, got level %d", scores[0].Level)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("berzerk", "normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, NewRecord("berzerk", "normal", 100, 1, false))
	mustSave(t, store, NewRecord("berzerk", "normal", 300, 2, false))
	mustSave(t, store, NewRecord("berzerk", "easy", 800, 4, false))

	high, err = store.HighScore("berzerk", "normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	high, _ = store.HighScore("berzerk", "")
	if high != 800 {
		t.Errorf("Expected overall high score of 800, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, NewRecord("berzerk", "normal", 100, 1, false))
	mustSave(t, store, NewRecord("berzerk", "hard", 200, 1, false))
	mustSave(t, store, NewRecord("other", "normal", 300, 1, false))

	if err := store.ClearScores("berzerk"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("berzerk", "", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", "", 10)
	if len(other) != 1 {
		t.Errorf("Other game scores should not be affected by clearing")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("berzerk")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	mustSave(t, store, NewRecord("berzerk", "normal", 100, 2, false))
	mustSave(t, store, NewRecord("berzerk", "hard", 300, 3, false))
	mustSave(t, store, NewRecord("berzerk", "easy", 1400, 5, true))

	stats, err := store.Stats("berzerk")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, expected 3", stats.Runs)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, expected 1", stats.Wins)
	}
	if stats.HighScore != 1400 {
		t.Errorf("HighScore = %d, expected 1400", stats.HighScore)
	}
	if stats.BestLevel != 5 {
		t.Errorf("BestLevel = %d, expected 5", stats.BestLevel)
	}
	if stats.AvgScore != 600 {
		t.Errorf("AvgScore = %f, expected 600", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
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

func TestStoreExpandHomePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := Open("~/.berzerk/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".berzerk", "scores.db")); err != nil {
		t.Errorf("Database file was not created under home: %v", err)
	}
}
