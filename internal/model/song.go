package model

// LyricVariant is one version of a song's lyrics (regional variant,
// translation, alternate verse order).
type LyricVariant struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Song represents one entry of the songbook corpus.
// Songs are corpus-provided and never mutated at runtime.
type Song struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"` // display title, may carry a parenthetical subtitle
	Lyrics      []LyricVariant `json:"lyrics"`
	Videos      []string       `json:"videos,omitempty"`
	Audio       []string       `json:"audio,omitempty"`
	PDFs        []string       `json:"pdfs,omitempty"`
	Description string         `json:"description,omitempty"`
}

// NewSongParams holds parameters for creating a Song during import.
type NewSongParams struct {
	Name   string
	Lyrics []LyricVariant
}

// NewSong creates a Song with a generated UUID.
func NewSong(params NewSongParams) Song {
	lyrics := params.Lyrics
	if lyrics == nil {
		lyrics = []LyricVariant{}
	}

	return Song{
		ID:     generateUUID(),
		Name:   params.Name,
		Lyrics: lyrics,
	}
}
