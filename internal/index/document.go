package index

import (
	"regexp"
	"strings"

	"dainynas/internal/model"
	"dainynas/internal/normalize"
)

// FieldKind names one of the two indexed text sources of a song.
type FieldKind string

const (
	FieldTitle  FieldKind = "title"
	FieldLyrics FieldKind = "lyrics"
)

// Document is one searchable unit: a song's normalized text for one field.
type Document struct {
	SongID string
	Text   string
}

var (
	// markdown-style links inside lyric text: keep the label, drop the target.
	markdownLink = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
	// remaining bracketed annotations are chord marks, not content.
	chordMark = regexp.MustCompile(`\[[^\]]*\]`)
)

// stripMarkup removes formatting markup from lyric text. Links are
// replaced by their label, chord annotations are dropped. Must run before
// the link pass would misread a chord as a label, so links go first.
func stripMarkup(text string) string {
	text = markdownLink.ReplaceAllString(text, "$1")
	text = chordMark.ReplaceAllString(text, "")
	return text
}

// titleText extracts the title-field document text for a song.
func titleText(s model.Song) string {
	return normalize.Fold(s.Name)
}

// lyricsText extracts the lyrics-field document text for a song: all
// variants concatenated, so a hit anywhere in any variant counts for the
// song as a whole.
func lyricsText(s model.Song) string {
	parts := make([]string, 0, len(s.Lyrics))
	for _, v := range s.Lyrics {
		parts = append(parts, stripMarkup(v.Text))
	}
	return normalize.Fold(strings.Join(parts, "\n"))
}
