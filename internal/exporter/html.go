package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dainynas/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/dainynas-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("dainynas-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders the corpus as a printable standalone songbook.
// The format is the same one the importer reads back: <h2> per song,
// <h3> per variant, <pre> for lyric text.
func ExportHTML(corpus *model.Corpus) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html><head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<title>Dainynas</title>\n")
	b.WriteString("</head><body>\n")
	b.WriteString("<h1>Dainynas</h1>\n")

	for _, song := range corpus.Songs() {
		fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(song.Name))
		for _, v := range song.Lyrics {
			if v.Name != "" && len(song.Lyrics) > 1 {
				fmt.Fprintf(&b, "<h3>%s</h3>\n", html.EscapeString(v.Name))
			}
			fmt.Fprintf(&b, "<pre>%s</pre>\n", html.EscapeString(v.Text))
		}
	}

	b.WriteString("</body></html>\n")
	return b.String()
}
