// Package compose produces the flat, renderer-agnostic row list the UI
// displays: control rows for the search affordance, header rows for
// sections, item rows for songs.
//
// Composition is a pure function of its inputs. Callers invoke it on
// every keystroke and are expected to memoize on the
// (query, favoritesOnly, programMode) triple; determinism here is what
// makes that caching correct.
package compose

import (
	"strings"
	"unicode/utf8"

	"dainynas/internal/model"
	"dainynas/internal/search"
)

// MinQueryRunes is the minimum query length that switches composition
// from browse mode to search-result mode.
const MinQueryRunes = 2

// RowKind tags the row variants.
type RowKind int

const (
	RowControl RowKind = iota
	RowHeader
	RowItem
)

// ControlKind distinguishes the fixed non-data rows at the list head.
type ControlKind int

const (
	ControlSearchInput ControlKind = iota
	ControlSearchBackdrop
)

// Row is one unit of the flattened list. Key is stable across
// recompositions so the renderer can diff.
type Row struct {
	Kind            RowKind
	Key             string
	Title           string      // header rows: section label
	Song            *model.Song // item rows
	IsLastInSection bool
	Control         ControlKind
}

// Input is the externally owned state one composition call reads.
// Favorites and mode flags come fresh from the preferences store on
// every call; the composer never caches them.
type Input struct {
	Query         string
	Favorites     map[string]bool
	FavoritesOnly bool
	ProgramMode   bool
}

// Composer wires the corpus, the merged search pipeline, the program
// partition, and the translator. It holds no per-call state.
type Composer struct {
	Corpus    *model.Corpus
	Merger    *search.Merger
	Program   []model.ProgramPart
	Translate TranslateFunc
}

// Rows produces the full row list for the given input.
func (c *Composer) Rows(in Input) []Row {
	rows := []Row{
		{Kind: RowControl, Key: "control:search", Control: ControlSearchInput},
		{Kind: RowControl, Key: "control:backdrop", Control: ControlSearchBackdrop},
	}

	query := strings.TrimSpace(in.Query)
	if utf8.RuneCountInString(query) >= MinQueryRunes {
		return append(rows, c.searchRows(query, in)...)
	}
	return append(rows, c.browseRows(in)...)
}

// searchRows renders merged search results as one unsectioned item list.
func (c *Composer) searchRows(query string, in Input) []Row {
	var rows []Row
	for _, id := range search.SongIDs(c.Merger.Search(query)) {
		if in.FavoritesOnly && !in.Favorites[id] {
			continue
		}
		song := c.Corpus.ByID(id)
		if song == nil {
			continue
		}
		rows = append(rows, Row{Kind: RowItem, Key: song.ID, Song: song})
	}
	if len(rows) > 0 {
		rows[len(rows)-1].IsLastInSection = true
	}
	return rows
}

// browseRows renders the sectioned browse listing for the selected mode,
// dropping sections the favorites filter empties.
func (c *Composer) browseRows(in Input) []Row {
	var sections []section
	if in.ProgramMode {
		sections = programSections(c.Corpus, c.Program, c.Translate)
	} else {
		sections = alphabeticalSections(c.Corpus.Songs())
	}

	var rows []Row
	for _, sec := range sections {
		var items []Row
		for i := range sec.Songs {
			song := c.Corpus.ByID(sec.Songs[i].ID)
			if in.FavoritesOnly && !in.Favorites[song.ID] {
				continue
			}
			items = append(items, Row{Kind: RowItem, Key: song.ID, Song: song})
		}
		if len(items) == 0 {
			continue // empty sections are never rendered
		}
		items[len(items)-1].IsLastInSection = true

		rows = append(rows, Row{Kind: RowHeader, Key: "header:" + sec.Title, Title: sec.Title})
		rows = append(rows, items...)
	}
	return rows
}
