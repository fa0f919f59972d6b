package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func mustSave(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(ScoreRecord{GameID: gameID, Score: score}); err != nil {
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
	mustSave(t, store, "2048", 1200)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("2048")
	if err != nil || high != 1200 {
		t.Errorf("HighScore after reopen = %d, %v; want 1200", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runID := uuid.New()
	if _, err := store.SaveScore(ScoreRecord{RunID: runID, GameID: "2048", Score: 100, MaxTile: 16, Moves: 30}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	mustSave(t, store, "2048", 50)
	mustSave(t, store, "2048", 200)
	mustSave(t, store, "2048_endless", 500)

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}

	if scores[1].RunID != runID || scores[1].MaxTile != 16 || scores[1].Moves != 30 {
		t.Errorf("record fields lost: %+v", scores[1])
	}
	if scores[0].RunID == uuid.Nil {
		t.Error("missing RunID should be generated")
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	endless, err := store.TopScores("2048_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	rec := ScoreRecord{RunID: uuid.New(), GameID: "2048", Score: 10}
	if _, err := store.SaveScore(rec); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(rec); err == nil {
		t.Error("saving the same run twice should fail")
	}
}

func TestStoreScoreByRunID(t *testing.T) {
	store := openTestStore(t)

	runID := uuid.New()
	if _, err := store.SaveScore(ScoreRecord{RunID: runID, GameID: "2048", Score: 64, MaxTile: 32}); err != nil {
		t.Fatal(err)
	}

	got, err := store.ScoreByRunID(runID)
	if err != nil {
		t.Fatalf("ScoreByRunID() failed: %v", err)
	}
	if got == nil || got.Score != 64 || got.MaxTile != 32 {
		t.Errorf("ScoreByRunID = %+v", got)
	}

	missing, err := store.ScoreByRunID(uuid.New())
	if err != nil || missing != nil {
		t.Errorf("unknown run = %+v, %v; want nil, nil", missing, err)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		mustSave(t, store, "test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("test", 0)
	if err != nil || len(all) != 5 {
		t.Errorf("TopScores(0) = %d entries, %v", len(all), err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "2048", 100)
	mustSave(t, store, "2048", 300)
	mustSave(t, store, "2048", 200)

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "2048", 100)
	mustSave(t, store, "2048", 200)
	mustSave(t, store, "2048_campaign", 300)

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("2048", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}

	campaign, _ := store.TopScores("2048_campaign", 10)
	if len(campaign) != 1 {
		t.Errorf("Campaign scores should not be affected by clearing classic")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		mustSave(t, store, "test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	records := []ScoreRecord{
		{GameID: "2048", Score: 100, MaxTile: 64, Moves: 40},
		{GameID: "2048", Score: 300, MaxTile: 256, Moves: 120},
		{GameID: "2048_endless", Score: 50, MaxTile: 16, Moves: 10},
	}
	for _, r := range records {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %.1f, want 200", stats.AvgScore)
	}
	if stats.BestTile != 256 || stats.TotalMoves != 160 {
		t.Errorf("BestTile/TotalMoves = %d/%d, want 256/160", stats.BestTile, stats.TotalMoves)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAllGamesStats() = %d games, want 2", len(all))
	}
	if all["2048_endless"].BestTile != 16 {
		t.Errorf("endless stats = %+v", all["2048_endless"])
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

	store, err := Open("~/.t2048/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".t2048", "test.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
