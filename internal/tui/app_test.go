package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"dainynas/internal/compose"
	"dainynas/internal/engine"
	"dainynas/internal/i18n"
	"dainynas/internal/index"
	"dainynas/internal/model"
	"dainynas/internal/prefs"
	"dainynas/internal/search"
)

func newTestApp(t *testing.T) (App, prefs.Storage) {
	t.Helper()

	c, err := model.NewCorpus([]model.Song{
		{ID: "a", Name: "Ant kalno", Lyrics: []model.LyricVariant{{Name: "I", Text: "duoba duoba"}}},
		{ID: "b", Name: "Oi lekia lekia", Lyrics: []model.LyricVariant{{Name: "I", Text: "ant kalno stovi"}}},
		{ID: "c", Name: "Žemėj Lietuvos", Lyrics: []model.LyricVariant{{Name: "I", Text: "ąžuolai žaliuos"}}},
	})
	if err != nil {
		t.Fatalf("NewCorpus: %v", err)
	}

	titleIx, err := index.Build(c, index.FieldTitle, "test-build")
	if err != nil {
		t.Fatalf("Build title: %v", err)
	}
	lyricsIx, err := index.Build(c, index.FieldLyrics, "test-build")
	if err != nil {
		t.Fatalf("Build lyrics: %v", err)
	}

	composer := &compose.Composer{
		Corpus: c,
		Merger: &search.Merger{Title: engine.New(titleIx), Lyrics: engine.New(lyricsIx)},
		Program: []model.ProgramPart{
			{TitleKey: "program.opening", SongIDs: []string{"c", "a"}},
		},
	}

	store := prefs.NewJSONStorage(filepath.Join(t.TempDir(), "prefs.json"))
	app := NewApp(AppParams{
		Composer:   composer,
		Store:      store,
		Prefs:      prefs.Default(),
		Translator: i18n.New("lt"),
	})
	return app, store
}

func press(a App, keys ...string) App {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		newModel, _ := a.Update(msg)
		a = newModel.(App)
	}
	return a
}

func itemIDs(rows []compose.Row) []string {
	var ids []string
	for _, r := range rows {
		if r.Kind == compose.RowItem {
			ids = append(ids, r.Song.ID)
		}
	}
	return ids
}

func TestApp_InitialRows(t *testing.T) {
	a, _ := newTestApp(t)

	rows := a.Rows()
	if len(rows) < 3 {
		t.Fatalf("expected control rows plus content, got %d rows", len(rows))
	}
	if rows[0].Kind != compose.RowControl || rows[1].Kind != compose.RowControl {
		t.Error("expected the two control rows first")
	}
	if song := a.SelectedSong(); song == nil || song.ID != "a" {
		t.Errorf("expected cursor on first song, got %+v", song)
	}
}

func TestApp_NavigateSkipsHeaders(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(a, "j")
	if song := a.SelectedSong(); song == nil || song.ID != "b" {
		t.Errorf("expected b after j, got %+v", song)
	}

	a = press(a, "k")
	if song := a.SelectedSong(); song == nil || song.ID != "a" {
		t.Errorf("expected a after k, got %+v", song)
	}

	// k at the top stays put.
	a = press(a, "k")
	if song := a.SelectedSong(); song == nil || song.ID != "a" {
		t.Errorf("expected cursor clamped on a, got %+v", song)
	}
}

func TestApp_TopAndBottom(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(a, "G")
	if song := a.SelectedSong(); song == nil || song.ID != "c" {
		t.Errorf("expected last song after G, got %+v", song)
	}

	a = press(a, "g", "g")
	if song := a.SelectedSong(); song == nil || song.ID != "a" {
		t.Errorf("expected first song after gg, got %+v", song)
	}
}

func TestApp_SearchComposesResultRows(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(a, "/", "ant kalno", "enter")

	got := itemIDs(a.Rows())
	want := []string{"a", "b"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	for _, r := range a.Rows() {
		if r.Kind == compose.RowHeader {
			t.Error("search results must not be sectioned")
		}
	}
}

func TestApp_EscClearsSearch(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(a, "/", "ant kalno", "esc")
	if a.input.Value() != "" {
		t.Errorf("expected cleared query, got %q", a.input.Value())
	}

	headers := 0
	for _, r := range a.Rows() {
		if r.Kind == compose.RowHeader {
			headers++
		}
	}
	if headers == 0 {
		t.Error("expected sectioned browse rows after esc")
	}
}

func TestApp_ShortQueryKeepsBrowse(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(a, "/", "a", "enter")

	got := itemIDs(a.Rows())
	if len(got) != 3 {
		t.Errorf("one-rune query must keep the full browse list, got %v", got)
	}
}

func TestApp_ToggleFavoritePersists(t *testing.T) {
	a, store := newTestApp(t)

	a = press(a, "f")
	if !a.prefs.IsFavorite("a") {
		t.Error("expected a favorited")
	}

	saved, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !saved.IsFavorite("a") {
		t.Error("expected favorite persisted")
	}

	a = press(a, "f")
	if a.prefs.IsFavorite("a") {
		t.Error("expected favorite removed on second toggle")
	}
}

func TestApp_FavoritesOnlyFilter(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(a, "j", "f", "F")

	got := itemIDs(a.Rows())
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("expected only favorited song, got %v", got)
	}

	a = press(a, "F")
	if got := itemIDs(a.Rows()); len(got) != 3 {
		t.Errorf("expected full list after filter off, got %v", got)
	}
}

func TestApp_ProgramModePersists(t *testing.T) {
	a, store := newTestApp(t)

	a = press(a, "p")
	if !a.prefs.ProgramMode {
		t.Error("expected program mode on")
	}

	got := itemIDs(a.Rows())
	want := []string{"c", "a"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected program order %v, got %v", want, got)
	}

	saved, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !saved.ProgramMode {
		t.Error("expected program mode persisted")
	}
}

func TestApp_LanguageCycle(t *testing.T) {
	a, store := newTestApp(t)

	a = press(a, "L")
	if a.translator.Language() != "en" {
		t.Errorf("expected en after cycle, got %s", a.translator.Language())
	}

	saved, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if saved.Language != "en" {
		t.Errorf("expected language persisted, got %q", saved.Language)
	}
}

func TestApp_OpenAndCloseDetail(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(a, "enter")
	if a.detail == nil || a.detail.ID != "a" {
		t.Fatalf("expected detail for a, got %+v", a.detail)
	}

	a = press(a, "esc")
	if a.detail != nil {
		t.Error("expected detail closed")
	}
}

func TestApp_RowsMemoized(t *testing.T) {
	a, _ := newTestApp(t)

	before := a.Rows()
	(&a).refreshRows()
	after := a.Rows()

	if len(before) == 0 || len(after) == 0 {
		t.Fatal("expected rows")
	}
	if &before[0] != &after[0] {
		t.Error("expected cached rows for unchanged input")
	}
}
