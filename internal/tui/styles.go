package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	SearchBar    lipgloss.Style
	Header       lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Favorite     lipgloss.Style
	LyricsTitle  lipgloss.Style
	VariantName  lipgloss.Style
	Lyrics       lipgloss.Style
	ModeBadge    lipgloss.Style
	Status       lipgloss.Style
	Empty        lipgloss.Style
	Help         lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "confirm", "move")
}

// DefaultStyles returns the default style configuration.
// Grayscale with a single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		SearchBar: lipgloss.NewStyle().
			Foreground(primary),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Item: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Favorite: lipgloss.NewStyle().
			Foreground(accent),

		LyricsTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		VariantName: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Lyrics: lipgloss.NewStyle().
			Foreground(primary),

		ModeBadge: lipgloss.NewStyle().
			Foreground(accent),

		Status: lipgloss.NewStyle().
			Foreground(subtle),

		Empty: lipgloss.NewStyle().
			Foreground(subtle).
			PaddingLeft(1),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
