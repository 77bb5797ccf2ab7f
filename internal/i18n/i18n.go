// Package i18n holds the message catalogs. Lithuanian is the canonical
// language; other catalogs fall back to it for missing keys.
package i18n

// DefaultLanguage is used when the preferences store has no language set.
const DefaultLanguage = "lt"

var catalogs = map[string]map[string]string{
	"lt": {
		"program.opening":   "Atidarymas",
		"program.ensembles": "Ansamblių vakaras",
		"program.songs.day": "Dainų diena",
		"program.closing":   "Uždarymas",
		"ui.search":         "Ieškoti...",
		"ui.favorites":      "Mėgstamiausios",
		"ui.program":        "Šventė",
		"ui.no.results":     "Dainų nerasta",
		"ui.no.favorites":   "Nėra mėgstamiausių dainų",
		"ui.copied":         "Nukopijuota",
	},
	"en": {
		"program.opening":   "Opening",
		"program.ensembles": "Ensemble evening",
		"program.songs.day": "Song day",
		"program.closing":   "Closing",
		"ui.search":         "Search...",
		"ui.favorites":      "Favorites",
		"ui.program":        "Festival",
		"ui.no.results":     "No songs found",
		"ui.no.favorites":   "No favorite songs",
		"ui.copied":         "Copied",
	},
}

// Translator resolves keys for one language.
type Translator struct {
	lang string
}

// New returns a Translator for the given language, falling back to the
// default language if it has no catalog.
func New(lang string) *Translator {
	if _, ok := catalogs[lang]; !ok {
		lang = DefaultLanguage
	}
	return &Translator{lang: lang}
}

// Language returns the active language code.
func (t *Translator) Language() string {
	return t.lang
}

// T resolves a key: active catalog, then the default catalog, then the
// key itself so a missing translation stays visible instead of blank.
func (t *Translator) T(key string) string {
	if msg, ok := catalogs[t.lang][key]; ok {
		return msg
	}
	if msg, ok := catalogs[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// Languages lists the available catalog codes, default first.
func Languages() []string {
	out := []string{DefaultLanguage}
	for lang := range catalogs {
		if lang != DefaultLanguage {
			out = append(out, lang)
		}
	}
	return out
}
