package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-jumper/internal/core"
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

func TestStoreSaveRunReturnsUUID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun("jumper", core.RunResult{Steps: 12})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() id %q is not a UUID: %v", id, err)
	}

	other, _ := store.SaveRun("jumper", core.RunResult{Steps: 12})
	if other == id {
		t.Error("two runs got the same id")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		game string
		res  core.RunResult
	}{
		{"jumper", core.RunResult{Steps: 10}},
		{"jumper", core.RunResult{Steps: 3}},
		{"jumper", core.RunResult{Steps: 50, Success: true}},
		{"jumper_sprint", core.RunResult{Steps: 20, Success: true}},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.game, r.res); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("jumper", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	want := []int{50, 10, 3}
	for i, steps := range want {
		if top[i].Steps != steps {
			t.Errorf("run %d steps = %d, want %d", i, top[i].Steps, steps)
		}
		if top[i].GameID != "jumper" {
			t.Errorf("run %d game = %q", i, top[i].GameID)
		}
	}
	if !top[0].Success || top[1].Success {
		t.Error("success flag not round-tripped")
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("created_at not parsed")
	}

	sprint, err := store.TopRuns("jumper_sprint", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(sprint) != 1 {
		t.Errorf("Expected 1 sprint run, got %d", len(sprint))
	}
}

func TestStoreTopRunsWinsBreakTies(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("jumper", core.RunResult{Steps: 20})
	store.SaveRun("jumper", core.RunResult{Steps: 20, Success: true})

	top, err := store.TopRuns("jumper", 1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 1 || !top[0].Success {
		t.Errorf("Expected the winning run first, got %+v", top)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("test", core.RunResult{Steps: (i + 1) * 10})
	}

	top, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Steps != 50 || top[1].Steps != 40 || top[2].Steps != 30 {
		t.Errorf("Runs not in expected order: %v", top)
	}

	all, err := store.TopRuns("test", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Default limit returned %d runs, want 5", len(all))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, steps := range []int{5, 1, 9} {
		store.SaveRun("jumper", core.RunResult{Steps: steps})
	}

	recent, err := store.RecentRuns("jumper", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(recent))
	}
	if recent[0].Steps != 9 || recent[1].Steps != 1 {
		t.Errorf("Runs not newest first: %v", recent)
	}
}

func TestStoreBestSteps(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestSteps("jumper")
	if err != nil {
		t.Fatalf("BestSteps() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty game, got %d", best)
	}

	store.SaveRun("jumper", core.RunResult{Steps: 10})
	store.SaveRun("jumper", core.RunResult{Steps: 30})
	store.SaveRun("jumper", core.RunResult{Steps: 20})

	best, err = store.BestSteps("jumper")
	if err != nil {
		t.Fatalf("BestSteps() failed: %v", err)
	}
	if best != 30 {
		t.Errorf("Expected best of 30, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("jumper")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.WinRate() != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun("jumper", core.RunResult{Steps: 10})
	store.SaveRun("jumper", core.RunResult{Steps: 50, Success: true})
	store.SaveRun("jumper", core.RunResult{Steps: 50, Success: true})
	store.SaveRun("jumper", core.RunResult{Steps: 30})

	stats, err := store.Stats("jumper")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 4 || stats.Wins != 2 || stats.BestSteps != 50 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgSteps != 35 {
		t.Errorf("AvgSteps = %v, want 35", stats.AvgSteps)
	}
	if stats.WinRate() != 0.5 {
		t.Errorf("WinRate() = %v, want 0.5", stats.WinRate())
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("jumper", core.RunResult{Steps: 1})
	store.SaveRun("jumper", core.RunResult{Steps: 2})
	store.SaveRun("jumper_sprint", core.RunResult{Steps: 3})

	if err := store.ClearRuns("jumper"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("jumper", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	sprint, _ := store.TopRuns("jumper_sprint", 10)
	if len(sprint) != 1 {
		t.Errorf("Sprint runs should not be affected by clearing jumper")
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
