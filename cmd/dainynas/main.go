package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"dainynas/internal/compose"
	"dainynas/internal/corpus"
	"dainynas/internal/engine"
	"dainynas/internal/exporter"
	"dainynas/internal/i18n"
	"dainynas/internal/index"
	"dainynas/internal/picker"
	"dainynas/internal/prefs"
	"dainynas/internal/search"
	"dainynas/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "index":
			var corpusPath, outDir string
			if len(os.Args) >= 3 {
				corpusPath = os.Args[2]
			}
			if len(os.Args) >= 4 {
				outDir = os.Args[3]
			}
			runIndex(corpusPath, outDir)
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: dainynas import <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			// Export with optional path
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `dainynas - folk song search and songbook

Usage:
  dainynas                      Open interactive TUI
  dainynas <query>              Quick search → select → print lyrics
  dainynas index [corpus] [dir] Build search indexes from the corpus
  dainynas import <file.html>   Import songs from a songbook HTML export
  dainynas export [path]        Export the corpus to HTML
  dainynas help                 Show this help

TUI Keybindings:
  Navigation:
    j/k         Move down/up
    gg/G        Jump to top/bottom
    l/Enter     Open lyrics
    h/Esc       Back / clear search

  Actions:
    /           Fuzzy search (title and lyrics)
    f           Toggle favorite
    F           Show favorites only
    p           Toggle festival program view
    L           Cycle language
    Y           Copy lyrics to clipboard
    q           Quit

Data Storage:
  ~/.config/dainynas/corpus.json
  ~/.config/dainynas/title.idx, lyrics.idx
  ~/.config/dainynas/prefs.json (or prefs.db)
`
	fmt.Print(help)
}

// defaultCorpusPath returns the corpus location in the data directory.
func defaultCorpusPath() (string, error) {
	dir, err := prefs.DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "corpus.json"), nil
}

// resolveCorpusPath falls back to the data directory when no explicit
// path was given.
func resolveCorpusPath(path string) string {
	if path != "" {
		return path
	}
	p, err := defaultCorpusPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving corpus path: %v\n", err)
		os.Exit(1)
	}
	return p
}

// runIndex builds both field indexes from the corpus. Any failure is
// fatal: a partial artifact set must never reach the app.
func runIndex(corpusPath, outDir string) {
	corpusPath = resolveCorpusPath(corpusPath)
	if outDir == "" {
		outDir = filepath.Dir(corpusPath)
	}

	c, _, err := corpus.Load(corpusPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading corpus: %v\n", err)
		os.Exit(1)
	}

	title, lyrics, err := index.BuildAll(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building indexes: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	for _, ix := range []*index.Index{title, lyrics} {
		path := filepath.Join(outDir, index.ArtifactName(ix.Field))
		if err := ix.Save(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%d songs, build %s)\n", path, len(ix.Docs), ix.BuildID)
	}
}

// loadEngines loads both index artifacts next to the corpus file. A
// missing or unreadable artifact is a fatal startup error, never a
// silent empty result set.
func loadEngines(corpusPath string) (title, lyrics *engine.Engine) {
	dir := filepath.Dir(corpusPath)

	titleIx, err := index.Load(filepath.Join(dir, index.ArtifactName(index.FieldTitle)), index.FieldTitle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading title index: %v\nRun 'dainynas index' first.\n", err)
		os.Exit(1)
	}
	lyricsIx, err := index.Load(filepath.Join(dir, index.ArtifactName(index.FieldLyrics)), index.FieldLyrics)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lyrics index: %v\nRun 'dainynas index' first.\n", err)
		os.Exit(1)
	}

	return engine.New(titleIx), engine.New(lyricsIx)
}

// runTUI runs the full interactive TUI.
func runTUI() {
	corpusPath := resolveCorpusPath("")
	c, program, err := corpus.Load(corpusPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading corpus: %v\n", err)
		os.Exit(1)
	}

	titleEngine, lyricsEngine := loadEngines(corpusPath)

	store, err := prefs.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening preferences: %v\n", err)
		os.Exit(1)
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}
	p, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading preferences: %v\n", err)
		os.Exit(1)
	}

	translator := i18n.New(p.Language)
	composer := &compose.Composer{
		Corpus:  c,
		Merger:  &search.Merger{Title: titleEngine, Lyrics: lyricsEngine},
		Program: program,
	}

	app := tui.NewApp(tui.AppParams{
		Composer:   composer,
		Store:      store,
		Prefs:      p,
		Translator: translator,
	})
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch performs one merged search and prints the lyrics of
// the selected song.
func runQuickSearch(query string) {
	corpusPath := resolveCorpusPath("")
	c, _, err := corpus.Load(corpusPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading corpus: %v\n", err)
		os.Exit(1)
	}

	titleEngine, lyricsEngine := loadEngines(corpusPath)
	merger := &search.Merger{Title: titleEngine, Lyrics: lyricsEngine}

	results := merger.Search(query)
	if len(results) == 0 {
		fmt.Printf("No songs found for '%s'\n", query)
		os.Exit(0)
	}

	selected := c.ByID(results[0].SongID)
	if len(results) > 1 {
		// Multiple results - show picker
		p := picker.New(c, results, query)
		finalModel, err := tea.NewProgram(p).Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.SelectedSong()
	}

	if selected == nil {
		os.Exit(0)
	}

	fmt.Println(selected.Name)
	for _, v := range selected.Lyrics {
		fmt.Println()
		if len(selected.Lyrics) > 1 {
			fmt.Println(v.Name)
		}
		fmt.Println(v.Text)
	}
}

// runImport parses a songbook HTML export and merges the new songs into
// the corpus file. Near-duplicate titles are reported, not merged: the
// corpus is curated by hand and the importer only flags suspects.
func runImport(htmlPath string) {
	f, err := os.Open(htmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	imported, err := corpus.ParseHTMLSongbook(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}
	if len(imported) == 0 {
		fmt.Println("No songs found in file")
		os.Exit(0)
	}

	corpusPath := resolveCorpusPath("")
	file := &corpus.File{}
	if existing, program, err := corpus.Load(corpusPath); err == nil {
		file.Songs = existing.Songs()
		file.Program = program
	} else if !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading corpus: %v\n", err)
		os.Exit(1)
	}

	for imp, exist := range corpus.NearDuplicates(file.Songs, imported) {
		fmt.Printf("Warning: %q resembles existing song %q\n", imp, exist)
	}

	file.Songs = append(file.Songs, imported...)
	if err := os.MkdirAll(filepath.Dir(corpusPath), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data dir: %v\n", err)
		os.Exit(1)
	}
	if err := corpus.Save(corpusPath, file); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving corpus: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d songs into %s\n", len(imported), corpusPath)
	fmt.Println("Run 'dainynas index' to rebuild the search indexes.")
}

// runExport writes the corpus as a songbook HTML file.
func runExport(outputPath string) {
	corpusPath := resolveCorpusPath("")
	c, _, err := corpus.Load(corpusPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading corpus: %v\n", err)
		os.Exit(1)
	}

	if outputPath == "" {
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving export path: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.WriteFile(outputPath, []byte(exporter.ExportHTML(c)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d songs to %s\n", c.Len(), outputPath)
}
