// Package engine serves ranked fuzzy queries against a prebuilt field
// index. An Engine is constructed once at startup from a loaded artifact
// and is read-only afterwards.
package engine

import (
	"sort"

	"dainynas/internal/index"
	"dainynas/internal/normalize"
)

// Result is one scored match. Score is 0.0 for a perfect match and grows
// as the match worsens; results above the field threshold are never
// returned.
type Result struct {
	SongID string
	Score  float64
	Field  index.FieldKind
}

// Options control one search call. The zero Limit means unlimited.
type Options struct {
	Limit          int
	Threshold      float64
	Distance       int
	IgnoreLocation bool
}

// Engine answers queries for one field.
type Engine struct {
	ix       *index.Index
	docRunes [][]rune
}

// New wraps a loaded index. Document texts are pre-split into runes once,
// so per-keystroke queries allocate only their own pattern.
func New(ix *index.Index) *Engine {
	docRunes := make([][]rune, len(ix.Docs))
	for i, d := range ix.Docs {
		docRunes[i] = []rune(d.Text)
	}
	return &Engine{ix: ix, docRunes: docRunes}
}

// Field returns the field kind this engine serves.
func (e *Engine) Field() index.FieldKind {
	return e.ix.Field
}

// DefaultOptions returns the search options fixed at index build time,
// with the given result limit.
func (e *Engine) DefaultOptions(limit int) Options {
	cfg := e.ix.Config
	return Options{
		Limit:          limit,
		Threshold:      cfg.Threshold,
		Distance:       cfg.Distance,
		IgnoreLocation: cfg.IgnoreLocation,
	}
}

// Search returns ranked matches for the query: ascending by score, ties
// in corpus order. The empty query matches nothing, never everything.
func (e *Engine) Search(query string, opts Options) []Result {
	pattern := []rune(normalize.Fold(query))
	if len(pattern) == 0 {
		return nil
	}

	mopts := matchOptions{
		threshold:      opts.Threshold,
		distance:       opts.Distance,
		ignoreLocation: opts.IgnoreLocation,
	}

	// Every document is scored: the error budget admits matches sharing
	// no substring with the query, so there is no sound way to shortlist.
	var results []Result
	for ord, doc := range e.docRunes {
		score, ok := bitapMatch(pattern, doc, mopts)
		if !ok {
			continue
		}
		results = append(results, Result{
			SongID: e.ix.Docs[ord].SongID,
			Score:  score,
			Field:  e.ix.Field,
		})
	}

	// Docs are scanned in corpus order, so a stable sort keeps that
	// order as the tie-breaker.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results
}
