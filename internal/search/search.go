// Package search merges the per-field engine results into the single
// ranked list the row composer consumes.
package search

import (
	"dainynas/internal/engine"
)

// FieldLimit caps each field's contribution to one merged query.
const FieldLimit = 20

// Merger runs a query against both field engines and reconciles the
// result lists.
type Merger struct {
	Title  *engine.Engine
	Lyrics *engine.Engine
}

// Search returns the merged, de-duplicated result list for the query.
//
// Title results come first in their own rank order; lyric results follow
// in theirs, skipping songs the title list already placed. Scores are
// never compared across fields: a short title and a long lyric document
// produce incomparable scales, so title presence always outranks
// lyric-only presence.
func (m *Merger) Search(query string) []engine.Result {
	titleHits := m.Title.Search(query, m.Title.DefaultOptions(FieldLimit))
	lyricHits := m.Lyrics.Search(query, m.Lyrics.DefaultOptions(FieldLimit))

	merged := make([]engine.Result, 0, len(titleHits)+len(lyricHits))
	seen := make(map[string]bool, len(titleHits))

	for _, r := range titleHits {
		merged = append(merged, r)
		seen[r.SongID] = true
	}
	for _, r := range lyricHits {
		if seen[r.SongID] {
			continue
		}
		seen[r.SongID] = true
		merged = append(merged, r)
	}

	return merged
}

// SongIDs returns just the ordered song ids of a merged result list.
func SongIDs(results []engine.Result) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.SongID
	}
	return ids
}
