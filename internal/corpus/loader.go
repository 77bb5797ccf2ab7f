// Package corpus loads and validates the song collection consumed by the
// search core. The corpus file is authored offline; the app and the index
// builder both read it through Load, so they always agree on contents
// and order.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"dainynas/internal/model"
)

// File is the on-disk corpus document: the ordered song collection plus
// the fixed festival program partition.
type File struct {
	Songs   []model.Song        `json:"songs"`
	Program []model.ProgramPart `json:"program,omitempty"`
}

// Load reads and validates a corpus file. Any malformed record is fatal:
// the search core assumes fully validated input.
func Load(path string) (*model.Corpus, []model.ProgramPart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read corpus: %w", err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parse corpus: %w", err)
	}

	corpus, err := model.NewCorpus(file.Songs)
	if err != nil {
		return nil, nil, fmt.Errorf("validate corpus: %w", err)
	}

	for _, part := range file.Program {
		if part.TitleKey == "" {
			return nil, nil, fmt.Errorf("program part with empty title key")
		}
		for _, id := range part.SongIDs {
			if corpus.ByID(id) == nil {
				return nil, nil, fmt.Errorf("program part %q references unknown song %q", part.TitleKey, id)
			}
		}
	}

	return corpus, file.Program, nil
}

// Save writes a corpus file. Used by the importer; the running app never
// writes the corpus.
func Save(path string, file *File) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
