package model

import "fmt"

// Corpus holds the full song collection in its canonical (author-supplied)
// order. It is built once at startup and read-only afterwards.
type Corpus struct {
	songs []Song
	byID  map[string]int
}

// NewCorpus validates the songs and builds the id lookup.
// Validation failures are fatal to the caller: the corpus loader must
// never hand a partially valid collection to the search core.
func NewCorpus(songs []Song) (*Corpus, error) {
	byID := make(map[string]int, len(songs))
	for i, s := range songs {
		if s.ID == "" {
			return nil, fmt.Errorf("song %d: empty id", i)
		}
		if s.Name == "" {
			return nil, fmt.Errorf("song %q: empty name", s.ID)
		}
		if len(s.Lyrics) == 0 {
			return nil, fmt.Errorf("song %q: no lyric variants", s.ID)
		}
		if prev, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("song %q: duplicate id (positions %d and %d)", s.ID, prev, i)
		}
		byID[s.ID] = i
	}

	return &Corpus{songs: songs, byID: byID}, nil
}

// Songs returns all songs in corpus order. Callers must not modify the slice.
func (c *Corpus) Songs() []Song {
	return c.songs
}

// Len returns the number of songs.
func (c *Corpus) Len() int {
	return len(c.songs)
}

// ByID finds a song by id, returns nil if not found.
func (c *Corpus) ByID(id string) *Song {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	return &c.songs[i]
}

// Position returns the corpus ordinal of a song id, or -1 if unknown.
func (c *Corpus) Position(id string) int {
	i, ok := c.byID[id]
	if !ok {
		return -1
	}
	return i
}
