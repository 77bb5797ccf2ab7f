package prefs

import (
	"io"
	"path/filepath"
	"testing"
)

// The TUI closes the storage through io.Closer when the backend holds a
// database handle.
var _ io.Closer = (*SQLiteStorage)(nil)

func openTestDB(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStorage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStorage_EmptyLoad(t *testing.T) {
	s := openTestDB(t)

	p, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.FavoriteSongIDs) != 0 {
		t.Errorf("expected no favorites, got %v", p.FavoriteSongIDs)
	}
	if p.ProgramMode {
		t.Error("expected program mode off")
	}
}

func TestSQLiteStorage_SaveLoadRoundtrip(t *testing.T) {
	s := openTestDB(t)

	in := &Prefs{
		FavoriteSongIDs: []string{"c", "a", "b"},
		ProgramMode:     true,
		Language:        "en",
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Favorite order must survive the roundtrip.
	if len(out.FavoriteSongIDs) != 3 {
		t.Fatalf("expected 3 favorites, got %v", out.FavoriteSongIDs)
	}
	for i, want := range []string{"c", "a", "b"} {
		if out.FavoriteSongIDs[i] != want {
			t.Errorf("favorite %d: got %s, want %s", i, out.FavoriteSongIDs[i], want)
		}
	}
	if !out.ProgramMode || out.Language != "en" {
		t.Errorf("settings not preserved: %+v", out)
	}
}

func TestSQLiteStorage_CloseThenReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("NewSQLiteStorage: %v", err)
	}
	if err := s.Save(&Prefs{FavoriteSongIDs: []string{"a"}, Language: "lt"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	out, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out.FavoriteSongIDs) != 1 || out.FavoriteSongIDs[0] != "a" {
		t.Errorf("favorites lost across close/reopen: %v", out.FavoriteSongIDs)
	}
}

func TestSQLiteStorage_OverwriteRemovesStaleFavorites(t *testing.T) {
	s := openTestDB(t)

	if err := s.Save(&Prefs{FavoriteSongIDs: []string{"a", "b"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(&Prefs{FavoriteSongIDs: []string{"b"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out.FavoriteSongIDs) != 1 || out.FavoriteSongIDs[0] != "b" {
		t.Errorf("expected only b, got %v", out.FavoriteSongIDs)
	}
}
