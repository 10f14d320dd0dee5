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

func mustSave(t *testing.T, store *Store, r Run) string {
	t.Helper()
	id, err := store.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveRunAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	id := mustSave(t, store, Run{GameID: "maze", Width: 5, Height: 5, Seed: 1, Ticks: 300, Score: 2400})
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() id %q is not a UUID: %v", id, err)
	}

	fixed := uuid.NewString()
	if got := mustSave(t, store, Run{ID: fixed, GameID: "maze", Width: 5, Height: 5}); got != fixed {
		t.Errorf("SaveRun() = %q, want caller's id %q", got, fixed)
	}

	if _, err := store.SaveRun(Run{ID: fixed, GameID: "maze"}); err == nil {
		t.Error("expected duplicate id to fail")
	}
}

func TestTopRunsOrderAndFilter(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "maze", Width: 5, Height: 5, Seed: 1, Ticks: 500, Score: 100})
	mustSave(t, store, Run{GameID: "maze", Width: 5, Height: 5, Seed: 2, Ticks: 200, Score: 300})
	mustSave(t, store, Run{GameID: "maze", Width: 8, Height: 8, Seed: 3, Ticks: 100, Score: 900})
	mustSave(t, store, Run{GameID: "maze_dark", Width: 5, Height: 5, Seed: 4, Ticks: 50, Score: 50})

	runs, err := store.TopRuns("maze", 5, 5, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs on 5x5, got %d", len(runs))
	}
	if runs[0].Ticks != 200 || runs[1].Ticks != 500 {
		t.Errorf("Runs not ordered by ticks: %v", runs)
	}
	if runs[0].Seed != 2 || runs[0].Width != 5 || runs[0].GameID != "maze" {
		t.Errorf("Run fields not round-tripped: %+v", runs[0])
	}

	all, err := store.TopRuns("maze", 0, 0, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 3 || all[0].Ticks != 100 {
		t.Errorf("Unfiltered runs = %v", all)
	}

	limited, err := store.TopRuns("maze", 0, 0, 1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 run with limit, got %d", len(limited))
	}
}

func TestBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("maze", 6, 6)
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best run, got %+v", best)
	}

	mustSave(t, store, Run{GameID: "maze", Width: 6, Height: 6, Ticks: 900})
	want := mustSave(t, store, Run{GameID: "maze", Width: 6, Height: 6, Ticks: 400})

	best, err = store.BestRun("maze", 6, 6)
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.ID != want {
		t.Errorf("BestRun() = %+v, want id %s", best, want)
	}
}

func TestStoreScores(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("maze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		mustSave(t, store, Run{GameID: "maze", Width: 4, Height: 4, Score: score})
	}
	mustSave(t, store, Run{GameID: "maze_dark", Width: 4, Height: 4, Score: 999})

	high, err = store.HighScore("maze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	scores, err := store.TopScores("maze", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 300 || scores[1].Score != 200 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "maze", Score: 100})
	mustSave(t, store, Run{GameID: "maze_dark", Score: 300})

	if err := store.ClearRuns("maze"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("maze", 0, 0, 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 maze runs after clear, got %d", len(runs))
	}

	dark, _ := store.TopRuns("maze_dark", 0, 0, 10)
	if len(dark) != 1 {
		t.Errorf("maze_dark runs should not be affected by clearing maze")
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("maze")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	mustSave(t, store, Run{GameID: "maze", Ticks: 300, Score: 100})
	mustSave(t, store, Run{GameID: "maze", Ticks: 120, Score: 300})

	stats, err := store.GetGameStats("maze")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 300 || stats.BestTicks != 120 || stats.AvgScore != 200 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
