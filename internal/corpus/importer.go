package corpus

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
	"golang.org/x/net/html"

	"dainynas/internal/model"
	"dainynas/internal/normalize"
)

// ParseHTMLSongbook parses a songbook HTML export into song records.
// Expected shape: each <h2> starts a song, an optional <h3> names a lyric
// variant, and <pre>/<p> blocks hold the variant text.
func ParseHTMLSongbook(r io.Reader) ([]model.Song, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var songs []model.Song
	var current *model.Song
	variantName := ""

	flushVariant := func(text string) {
		if current == nil || strings.TrimSpace(text) == "" {
			return
		}
		name := variantName
		if name == "" {
			name = "I"
		}
		current.Lyrics = append(current.Lyrics, model.LyricVariant{Name: name, Text: text})
		variantName = ""
	}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h2":
				name := getTextContent(n)
				if name != "" {
					if current != nil {
						songs = append(songs, *current)
					}
					s := model.NewSong(model.NewSongParams{Name: name})
					current = &s
					variantName = ""
				}
				return

			case "h3":
				variantName = getTextContent(n)
				return

			case "pre", "p":
				flushVariant(getTextContent(n))
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	if current != nil {
		songs = append(songs, *current)
	}

	// Songs without any lyric block would fail corpus validation later;
	// drop them here with the importer, where the gap is visible.
	complete := songs[:0]
	for _, s := range songs {
		if len(s.Lyrics) > 0 {
			complete = append(complete, s)
		}
	}
	return complete, nil
}

const (
	// nearDupMinRunes keeps short titles from matching as a subsequence
	// of nearly everything.
	nearDupMinRunes = 5
	// nearDupMaxStretch caps how much longer the longer title may be
	// relative to the shorter one before a subsequence hit stops counting.
	nearDupMaxStretch = 2
)

// NearDuplicates reports imported song names that resemble an existing
// song's name, so an import doesn't silently create doubles with slightly
// different spelling.
func NearDuplicates(existing, imported []model.Song) map[string]string {
	if len(existing) == 0 {
		return nil
	}

	dupes := make(map[string]string)
	for _, s := range imported {
		for _, e := range existing {
			if namesResemble(s.Name, e.Name) {
				dupes[s.Name] = e.Name
				break
			}
		}
	}
	if len(dupes) == 0 {
		return nil
	}
	return dupes
}

// namesResemble reports whether two titles likely name the same song.
// Folded-equal names always match; otherwise the shorter name must be a
// subsequence of the longer, long enough to be distinctive and not
// dwarfed by the longer title.
func namesResemble(a, b string) bool {
	fa, fb := normalize.Fold(a), normalize.Fold(b)
	if fa == fb {
		return true
	}

	short, long := fa, fb
	if utf8.RuneCountInString(short) > utf8.RuneCountInString(long) {
		short, long = long, short
	}
	ls := utf8.RuneCountInString(short)
	if ls < nearDupMinRunes || utf8.RuneCountInString(long) > ls*nearDupMaxStretch {
		return false
	}
	return len(fuzzy.Find(short, []string{long})) > 0
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}
