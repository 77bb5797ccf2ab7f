package compose

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"dainynas/internal/model"
)

// TranslateFunc resolves an i18n key to a display string. Only program
// section titles go through it; alphabetical section titles are letters.
type TranslateFunc func(key string) string

// section is one titled group of songs before flattening. Songs keep the
// order they arrived in; sectioning groups, it never sorts items.
type section struct {
	Title string
	Songs []model.Song
}

// alphabeticalSections groups songs by the uppercased first rune of their
// display name. Section letters are ordered by Lithuanian collation;
// within a section corpus order is preserved.
func alphabeticalSections(songs []model.Song) []section {
	byLetter := make(map[string][]model.Song)
	var letters []string

	for _, s := range songs {
		r, _ := utf8.DecodeRuneInString(s.Name)
		letter := string(unicode.ToUpper(r))
		if _, ok := byLetter[letter]; !ok {
			letters = append(letters, letter)
		}
		byLetter[letter] = append(byLetter[letter], s)
	}

	c := collate.New(language.Lithuanian)
	c.SortStrings(letters)

	sections := make([]section, 0, len(letters))
	for _, letter := range letters {
		sections = append(sections, section{Title: letter, Songs: byLetter[letter]})
	}
	return sections
}

// programSections maps the fixed festival program partition onto the
// corpus. Membership and order are author-supplied; unknown ids are
// skipped (the corpus loader already rejects them at validation time).
func programSections(corpus *model.Corpus, parts []model.ProgramPart, translate TranslateFunc) []section {
	sections := make([]section, 0, len(parts))
	for _, part := range parts {
		sec := section{Title: translate(part.TitleKey)}
		for _, id := range part.SongIDs {
			if s := corpus.ByID(id); s != nil {
				sec.Songs = append(sec.Songs, *s)
			}
		}
		sections = append(sections, sec)
	}
	return sections
}
