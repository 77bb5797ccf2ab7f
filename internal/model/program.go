package model

// ProgramPart is one named section of the festival program: a fixed,
// externally curated ordered subset of the corpus. Membership is decided
// by the corpus authors, never recomputed by the app.
type ProgramPart struct {
	TitleKey string   `json:"titleKey"` // i18n key for the section title
	SongIDs  []string `json:"songIds"`
}
