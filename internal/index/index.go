// Package index builds and loads the per-field fuzzy search indexes.
//
// Building runs offline, once per corpus update. The resulting artifacts
// are bundled with the app and loaded read-only at startup; the running
// app never mutates them. A build failure is fatal: no artifact may be
// produced from a partially indexed corpus.
package index

import (
	"encoding/gob"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"dainynas/internal/model"
)

// FormatVersion is the artifact format version. Load rejects artifacts
// written by a different format.
const FormatVersion = 1

// Config fixes a field's match strictness at build time. It travels
// inside the artifact so the runtime engine cannot drift from the build.
type Config struct {
	Threshold      float64 // acceptance cutoff, 0.0 = perfect match only
	Distance       int     // location penalty denominator
	IgnoreLocation bool    // lyrics matches count anywhere in the text
}

// FieldConfig returns the fixed per-field configuration. Titles are short,
// so matching is strict and early matches are favored; lyric documents are
// long, so matching is looser and match location is ignored.
func FieldConfig(field FieldKind) Config {
	switch field {
	case FieldLyrics:
		return Config{Threshold: 0.45, Distance: 100, IgnoreLocation: true}
	default:
		return Config{Threshold: 0.3, Distance: 100, IgnoreLocation: false}
	}
}

// Index is the serializable fuzzy-search index for one field. Docs keep
// corpus order, so ordinals double as the rank tie-breaker. Every
// document is scored on every query: the error budget admits matches
// that share no substring with the query, so any candidate prefilter
// would drop within-budget matches, and the corpus is small enough that
// a full scan stays interactive.
type Index struct {
	Version int
	BuildID string
	Field   FieldKind
	Config  Config
	Docs    []Document
}

// Build constructs the index for one field over the full corpus.
// Every song must yield non-empty document text; anything else means the
// corpus is broken and the build halts.
func Build(corpus *model.Corpus, field FieldKind, buildID string) (*Index, error) {
	ix := &Index{
		Version: FormatVersion,
		BuildID: buildID,
		Field:   field,
		Config:  FieldConfig(field),
		Docs:    make([]Document, 0, corpus.Len()),
	}

	for _, s := range corpus.Songs() {
		var text string
		switch field {
		case FieldTitle:
			text = titleText(s)
		case FieldLyrics:
			text = lyricsText(s)
		default:
			return nil, fmt.Errorf("unknown field kind %q", field)
		}

		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("song %q: empty %s text", s.ID, field)
		}

		ix.Docs = append(ix.Docs, Document{SongID: s.ID, Text: text})
	}

	if len(ix.Docs) == 0 {
		return nil, fmt.Errorf("refusing to build empty %s index", field)
	}

	return ix, nil
}

// BuildAll builds both field indexes with a shared build id.
func BuildAll(corpus *model.Corpus) (title, lyrics *Index, err error) {
	buildID := uuid.New().String()

	title, err = Build(corpus, FieldTitle, buildID)
	if err != nil {
		return nil, nil, fmt.Errorf("build title index: %w", err)
	}
	lyrics, err = Build(corpus, FieldLyrics, buildID)
	if err != nil {
		return nil, nil, fmt.Errorf("build lyrics index: %w", err)
	}
	return title, lyrics, nil
}

// Save writes the index to path as a gob artifact.
func (ix *Index) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	enc := gob.NewEncoder(f)
	if err := enc.Encode(ix); err != nil {
		f.Close()
		return fmt.Errorf("encode %s index: %w", ix.Field, err)
	}
	return f.Close()
}

// Load reads an index artifact and verifies it matches the expected field
// and format. A missing or corrupt artifact is a configuration defect the
// caller must treat as fatal, never as "search returns nothing".
func Load(path string, field FieldKind) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s index: %w", field, err)
	}
	defer f.Close()

	var ix Index
	dec := gob.NewDecoder(f)
	if err := dec.Decode(&ix); err != nil {
		return nil, fmt.Errorf("decode %s index: %w", field, err)
	}

	if ix.Version != FormatVersion {
		return nil, fmt.Errorf("%s index: format version %d, want %d", field, ix.Version, FormatVersion)
	}
	if ix.Field != field {
		return nil, fmt.Errorf("artifact %s holds %q index, want %q", path, ix.Field, field)
	}
	if len(ix.Docs) == 0 {
		return nil, fmt.Errorf("%s index: no documents", field)
	}

	return &ix, nil
}

// ArtifactName returns the conventional file name for a field's artifact.
func ArtifactName(field FieldKind) string {
	return string(field) + ".idx"
}
