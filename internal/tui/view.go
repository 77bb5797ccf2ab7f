package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dainynas/internal/compose"
)

// View implements tea.Model.
func (a App) View() string {
	if a.detail != nil {
		return a.renderDetail()
	}
	return a.renderList()
}

// renderList draws the composed row list with the cursor window
// scrolled so the selection stays visible.
func (a App) renderList() string {
	lines := make([]string, 0, len(a.rows))
	cursorLine := 0

	for i, row := range a.rows {
		if i == a.cursor {
			cursorLine = len(lines)
		}
		switch row.Kind {
		case compose.RowControl:
			lines = append(lines, a.renderControl(row))

		case compose.RowHeader:
			lines = append(lines, a.styles.Header.Render(row.Title))

		case compose.RowItem:
			lines = append(lines, a.renderItem(row, i == a.cursor))
			if row.IsLastInSection {
				lines = append(lines, "")
			}
		}
	}

	if a.firstItem() < 0 {
		lines = append(lines, a.styles.Empty.Render(a.emptyMessage()))
	}

	helpBar := a.renderHelpBar()
	helpHeight := lipgloss.Height(helpBar)
	body := a.viewport(lines, cursorLine, a.height-helpHeight-2)

	return a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, strings.Join(body, "\n"), helpBar),
	)
}

// renderControl draws the fixed rows at the list head.
func (a App) renderControl(row compose.Row) string {
	switch row.Control {
	case compose.ControlSearchInput:
		bar := a.input.View()
		if badge := a.modeBadge(); badge != "" {
			bar += "  " + a.styles.ModeBadge.Render(badge)
		}
		return a.styles.SearchBar.Render(bar)

	case compose.ControlSearchBackdrop:
		return ""
	}
	return ""
}

// renderItem draws a single song row.
func (a App) renderItem(row compose.Row, selected bool) string {
	name := row.Song.Name
	if a.prefs.IsFavorite(row.Song.ID) {
		name += " " + a.styles.Favorite.Render("♥")
	}
	if selected {
		return a.styles.ItemSelected.Render(name)
	}
	return a.styles.Item.Render(name)
}

// modeBadge labels the active browse filters next to the search bar.
func (a App) modeBadge() string {
	var parts []string
	if a.favoritesOnly {
		parts = append(parts, a.translator.T("ui.favorites"))
	}
	if a.prefs.ProgramMode {
		parts = append(parts, a.translator.T("ui.program"))
	}
	return strings.Join(parts, " · ")
}

// emptyMessage picks the hint for a list with no song rows.
func (a App) emptyMessage() string {
	if a.favoritesOnly {
		return a.translator.T("ui.no.favorites")
	}
	return a.translator.T("ui.no.results")
}

// renderDetail draws the full lyrics of the opened song.
func (a App) renderDetail() string {
	song := a.detail

	var b strings.Builder
	title := song.Name
	if a.prefs.IsFavorite(song.ID) {
		title += " " + a.styles.Favorite.Render("♥")
	}
	b.WriteString(a.styles.LyricsTitle.Render(title))
	b.WriteString("\n")

	for _, v := range song.Lyrics {
		b.WriteString("\n")
		if len(song.Lyrics) > 1 {
			b.WriteString(a.styles.VariantName.Render(v.Name))
			b.WriteString("\n")
		}
		b.WriteString(a.styles.Lyrics.Render(v.Text))
		b.WriteString("\n")
	}

	hints := []hint{
		{a.keys.Yank.Help().Key, a.keys.Yank.Help().Desc},
		{a.keys.Favorite.Help().Key, a.keys.Favorite.Help().Desc},
		{a.keys.Back.Help().Key, a.keys.Back.Help().Desc},
	}

	return a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, b.String(), a.renderHints(hints)),
	)
}

// hint is one key/description pair in the help bar.
type hint struct {
	key  string
	desc string
}

// renderHelpBar draws the bottom hint line, with the status message (a
// copy confirmation or a save error) taking priority.
func (a App) renderHelpBar() string {
	if a.status != "" {
		return a.styles.Status.Padding(1, 0).Render(a.status)
	}

	hints := []hint{
		{a.keys.Search.Help().Key, a.keys.Search.Help().Desc},
		{a.keys.Down.Help().Key, a.keys.Down.Help().Desc},
		{a.keys.Open.Help().Key, a.keys.Open.Help().Desc},
		{a.keys.Favorite.Help().Key, a.keys.Favorite.Help().Desc},
		{a.keys.FavoritesOnly.Help().Key, a.keys.FavoritesOnly.Help().Desc},
		{a.keys.Program.Help().Key, a.keys.Program.Help().Desc},
		{a.keys.Language.Help().Key, a.keys.Language.Help().Desc},
		{a.keys.Quit.Help().Key, a.keys.Quit.Help().Desc},
	}
	return a.renderHints(hints)
}

// renderHints formats hint pairs as "key desc · key desc".
func (a App) renderHints(hints []hint) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.key) + " " + a.styles.HintDesc.Render(h.desc)
	}
	return a.styles.Help.Render(strings.Join(parts, " · "))
}

// viewport returns the slice of lines that fits the given height while
// keeping the cursor line inside the window.
func (a App) viewport(lines []string, cursorLine, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}

	top := 0
	if cursorLine >= height {
		top = cursorLine - height + 1
	}
	if top+height > len(lines) {
		top = len(lines) - height
	}
	return lines[top : top+height]
}
