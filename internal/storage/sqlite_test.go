package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
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

func TestStoreSaveAndRankRuns(t *testing.T) {
	store := openTemp(t)

	runs := []Run{
		{LevelID: "meadow", Outcome: OutcomeLose, Distance: 1200, Ticks: 400},
		{LevelID: "meadow", Outcome: OutcomeWin, Distance: 8235, Ticks: 2100},
		{LevelID: "meadow", Outcome: OutcomeLose, Distance: 3000, Ticks: 900},
		{LevelID: "meadow", Outcome: OutcomeWin, Distance: 8235, Ticks: 1900},
		{LevelID: "steps", Outcome: OutcomeWin, Distance: 4005, Ticks: 1000},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("meadow", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("Expected 4 meadow runs, got %d", len(top))
	}

	// Wins by speed, then losses by distance.
	want := []struct {
		outcome Outcome
		ticks   int
	}{
		{OutcomeWin, 1900},
		{OutcomeWin, 2100},
		{OutcomeLose, 900},
		{OutcomeLose, 400},
	}
	for i, w := range want {
		if top[i].Outcome != w.outcome || top[i].Ticks != w.ticks {
			t.Errorf("Rank %d: expected %s/%d, got %s/%d", i, w.outcome, w.ticks, top[i].Outcome, top[i].Ticks)
		}
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreSaveRunRejectsUnknownOutcome(t *testing.T) {
	store := openTemp(t)

	if _, err := store.SaveRun(Run{LevelID: "meadow", Outcome: "draw"}); err == nil {
		t.Error("Expected error for unknown outcome")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{LevelID: "test", Outcome: OutcomeLose, Distance: float64((i + 1) * 100)})
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Distance != 500 || runs[1].Distance != 400 || runs[2].Distance != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreBestDistance(t *testing.T) {
	store := openTemp(t)

	best, err := store.BestDistance("meadow")
	if err != nil {
		t.Fatalf("BestDistance() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for a level without runs, got %v", best)
	}

	store.SaveRun(Run{LevelID: "meadow", Outcome: OutcomeLose, Distance: 700})
	store.SaveRun(Run{LevelID: "meadow", Outcome: OutcomeLose, Distance: 2500})

	best, err = store.BestDistance("meadow")
	if err != nil {
		t.Fatalf("BestDistance() failed: %v", err)
	}
	if best != 2500 {
		t.Errorf("Expected 2500, got %v", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTemp(t)

	store.SaveRun(Run{LevelID: "meadow", Outcome: OutcomeLose, Distance: 10})
	store.SaveRun(Run{LevelID: "steps", Outcome: OutcomeLose, Distance: 20})

	if err := store.ClearRuns("meadow"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("meadow", 10); len(runs) != 0 {
		t.Errorf("Expected no meadow runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("steps", 10); len(runs) != 1 {
		t.Error("Other levels should not be affected")
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.GetLevelStats("meadow")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.Wins != 0 || empty.FastestWin != 0 {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{LevelID: "meadow", Outcome: OutcomeLose, Distance: 3000, Ticks: 700})
	store.SaveRun(Run{LevelID: "meadow", Outcome: OutcomeWin, Distance: 8235, Ticks: 2000})
	store.SaveRun(Run{LevelID: "meadow", Outcome: OutcomeWin, Distance: 8240, Ticks: 1800})
	store.SaveRun(Run{LevelID: "flats", Outcome: OutcomeLose, Distance: 100, Ticks: 50})

	stats, err := store.GetLevelStats("meadow")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Wins != 2 {
		t.Errorf("Expected 3 runs and 2 wins, got %+v", stats)
	}
	if stats.BestDistance != 8240 || stats.FastestWin != 1800 {
		t.Errorf("Unexpected best values: %+v", stats)
	}

	all, err := store.GetAllLevelStats()
	if err != nil {
		t.Fatalf("GetAllLevelStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(all))
	}
	if all["flats"].Wins != 0 || all["flats"].FastestWin != 0 {
		t.Errorf("Unexpected flats stats: %+v", all["flats"])
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
