// Package prefs persists user preferences: the favorites set, the
// festival program mode flag, and the UI language. The search core never
// reads this store directly; callers pass fresh values into each
// composition call.
package prefs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Prefs holds all persisted preferences.
type Prefs struct {
	FavoriteSongIDs []string `json:"favoriteSongIds"`
	ProgramMode     bool     `json:"programMode"`
	Language        string   `json:"language"`
}

// Default returns the documented fallback values used when no store
// exists or a stored file is unreadable by contract.
func Default() *Prefs {
	return &Prefs{FavoriteSongIDs: []string{}}
}

// FavoriteSet returns the favorites as a lookup set.
func (p *Prefs) FavoriteSet() map[string]bool {
	set := make(map[string]bool, len(p.FavoriteSongIDs))
	for _, id := range p.FavoriteSongIDs {
		set[id] = true
	}
	return set
}

// IsFavorite reports whether the song id is favorited.
func (p *Prefs) IsFavorite(id string) bool {
	for _, fav := range p.FavoriteSongIDs {
		if fav == id {
			return true
		}
	}
	return false
}

// ToggleFavorite adds or removes a song id from the favorites.
func (p *Prefs) ToggleFavorite(id string) {
	for i, fav := range p.FavoriteSongIDs {
		if fav == id {
			p.FavoriteSongIDs = append(p.FavoriteSongIDs[:i], p.FavoriteSongIDs[i+1:]...)
			return
		}
	}
	p.FavoriteSongIDs = append(p.FavoriteSongIDs, id)
}

// Storage defines the interface for persisting preferences.
type Storage interface {
	Load() (*Prefs, error)
	Save(p *Prefs) error
}

// JSONStorage implements Storage using a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads preferences from the JSON file.
// Returns defaults if the file doesn't exist.
func (s *JSONStorage) Load() (*Prefs, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	if p.FavoriteSongIDs == nil {
		p.FavoriteSongIDs = []string{}
	}

	return &p, nil
}

// Save writes preferences to the JSON file.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(p *Prefs) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// DefaultDataDir returns the application data directory: ~/.config/dainynas
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "dainynas"), nil
}

// DefaultJSONPath returns the default preferences path:
// ~/.config/dainynas/prefs.json
func DefaultJSONPath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prefs.json"), nil
}

// Open opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to JSON.
func Open() (Storage, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStorage(sqlitePath)
	}

	jsonPath, err := DefaultJSONPath()
	if err != nil {
		return nil, err
	}
	return NewJSONStorage(jsonPath), nil
}
