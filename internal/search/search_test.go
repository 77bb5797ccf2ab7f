package search

import (
	"testing"

	"dainynas/internal/engine"
	"dainynas/internal/index"
	"dainynas/internal/model"
)

func testMerger(t *testing.T) *Merger {
	t.Helper()
	c, err := model.NewCorpus([]model.Song{
		{ID: "a", Name: "Ant kalno", Lyrics: []model.LyricVariant{{Name: "I", Text: "duoba duoba"}}},
		{ID: "b", Name: "Oi lekia lekia", Lyrics: []model.LyricVariant{{Name: "I", Text: "ant kalno stovi"}}},
	})
	if err != nil {
		t.Fatalf("NewCorpus: %v", err)
	}

	title, lyrics, err := index.BuildAll(c)
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	return &Merger{Title: engine.New(title), Lyrics: engine.New(lyrics)}
}

func TestMerger_TitleBeforeLyricOnly(t *testing.T) {
	m := testMerger(t)

	// "ant kalno" is a's title and appears in b's lyrics. Title presence
	// outranks the lyric hit regardless of score magnitudes.
	got := SongIDs(m.Search("ant kalno"))
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %v", got)
	}
	if got[0] != "a" || got[1] != "b" {
		t.Errorf("expected [a b], got %v", got)
	}
}

func TestMerger_Deduplicates(t *testing.T) {
	c, err := model.NewCorpus([]model.Song{
		{ID: "a", Name: "Ant kalno", Lyrics: []model.LyricVariant{{Name: "I", Text: "ant kalno murai"}}},
	})
	if err != nil {
		t.Fatalf("NewCorpus: %v", err)
	}
	title, lyrics, err := index.BuildAll(c)
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	m := &Merger{Title: engine.New(title), Lyrics: engine.New(lyrics)}

	// Matches in both fields; must appear exactly once, at the
	// title-derived rank.
	results := m.Search("ant kalno")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Field != index.FieldTitle {
		t.Errorf("expected title-derived rank, got %s", results[0].Field)
	}
}

func TestMerger_EmptyQuery(t *testing.T) {
	m := testMerger(t)

	if got := m.Search(""); len(got) != 0 {
		t.Errorf("expected no results for empty query, got %d", len(got))
	}
}

func TestMerger_DiacriticCorruptedQuery(t *testing.T) {
	m := testMerger(t)

	got := SongIDs(m.Search("ąnt"))
	if len(got) == 0 {
		t.Fatal("expected results")
	}
	if got[0] != "a" {
		t.Errorf("expected a first, got %v", got)
	}
}

func TestMerger_NoMatches(t *testing.T) {
	m := testMerger(t)

	if got := m.Search("xylophone"); len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}
}
