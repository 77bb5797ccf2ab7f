// Package tui is the interactive songbook browser. It renders the row
// list the composer produces and owns nothing of the search semantics
// itself: every keystroke is turned into a fresh composition input and
// the resulting rows are displayed as-is.
package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dainynas/internal/compose"
	"dainynas/internal/i18n"
	"dainynas/internal/model"
	"dainynas/internal/prefs"
)

// rowsKey identifies one composition input. Rows are recomputed only
// when the key changes; favRev bumps on every favorite toggle so the
// cache never serves a stale favorites filter.
type rowsKey struct {
	query         string
	favoritesOnly bool
	programMode   bool
	favRev        int
	lang          string
}

// App is the main bubbletea model for the songbook browser.
type App struct {
	composer   *compose.Composer
	store      prefs.Storage
	prefs      *prefs.Prefs
	translator *i18n.Translator
	keys       KeyMap
	styles     Styles

	// List state
	input         textinput.Model
	rows          []compose.Row
	cursor        int // index into rows, always on an item row when one exists
	favoritesOnly bool
	searching     bool
	detail        *model.Song

	// Row cache
	memoKey   rowsKey
	memoValid bool
	favRev    int

	// For gg command
	lastKeyWasG bool

	status string

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Composer   *compose.Composer
	Store      prefs.Storage
	Prefs      *prefs.Prefs
	Translator *i18n.Translator
	Keys       *KeyMap // optional, uses default if nil
	Styles     *Styles // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	input := textinput.New()
	input.Placeholder = params.Translator.T("ui.search")
	input.Prompt = "/ "
	input.CharLimit = 64

	app := App{
		composer:   params.Composer,
		store:      params.Store,
		prefs:      params.Prefs,
		translator: params.Translator,
		keys:       keys,
		styles:     styles,
		input:      input,
		width:      80,
		height:     24,
	}

	app.composer.Translate = params.Translator.T
	app.refreshRows()
	return app
}

// refreshRows recomputes the row list unless the cached composition is
// still valid for the current input.
func (a *App) refreshRows() {
	k := rowsKey{
		query:         a.input.Value(),
		favoritesOnly: a.favoritesOnly,
		programMode:   a.prefs.ProgramMode,
		favRev:        a.favRev,
		lang:          a.translator.Language(),
	}
	if a.memoValid && k == a.memoKey {
		return
	}

	a.rows = a.composer.Rows(compose.Input{
		Query:         k.query,
		Favorites:     a.prefs.FavoriteSet(),
		FavoritesOnly: a.favoritesOnly,
		ProgramMode:   a.prefs.ProgramMode,
	})
	a.memoKey = k
	a.memoValid = true
	a.clampCursor()
}

// clampCursor keeps the cursor on an item row, or parks it at the first
// item row when the previous position vanished.
func (a *App) clampCursor() {
	if a.cursor < len(a.rows) && a.rows[a.cursor].Kind == compose.RowItem {
		return
	}
	a.cursor = a.firstItem()
}

// firstItem returns the index of the first item row, or -1.
func (a *App) firstItem() int {
	for i, r := range a.rows {
		if r.Kind == compose.RowItem {
			return i
		}
	}
	return -1
}

// lastItem returns the index of the last item row, or -1.
func (a *App) lastItem() int {
	for i := len(a.rows) - 1; i >= 0; i-- {
		if a.rows[i].Kind == compose.RowItem {
			return i
		}
	}
	return -1
}

// moveCursor advances the cursor to the next item row in the given
// direction, skipping headers. Stays put at either end.
func (a *App) moveCursor(dir int) {
	for i := a.cursor + dir; i >= 0 && i < len(a.rows); i += dir {
		if a.rows[i].Kind == compose.RowItem {
			a.cursor = i
			return
		}
	}
}

// SelectedSong returns the song under the cursor, or nil.
func (a App) SelectedSong() *model.Song {
	if a.cursor < 0 || a.cursor >= len(a.rows) {
		return nil
	}
	return a.rows[a.cursor].Song
}

// Rows returns the current row list.
func (a App) Rows() []compose.Row {
	return a.rows
}

// Cursor returns the current cursor position in the row list.
func (a App) Cursor() int {
	return a.cursor
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		a.status = ""

		if a.detail != nil {
			return a.updateDetail(msg)
		}
		if a.searching {
			return a.updateSearch(msg)
		}
		return a.updateBrowse(msg)
	}

	return a, nil
}

// updateSearch handles keys while the search input is focused.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit

	case tea.KeyEsc:
		a.searching = false
		a.input.Blur()
		a.input.Reset()
		a.refreshRows()
		return a, nil

	case tea.KeyEnter, tea.KeyDown:
		// Keep the query, hand focus back to the list.
		a.searching = false
		a.input.Blur()
		a.refreshRows()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.refreshRows()
	return a, cmd
}

// updateDetail handles keys on the lyrics view.
func (a App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Back):
		a.detail = nil
		return a, nil

	case key.Matches(msg, a.keys.Yank):
		a.yank(a.detail)
		return a, nil

	case key.Matches(msg, a.keys.Favorite):
		a.toggleFavorite(a.detail)
		return a, nil
	}

	return a, nil
}

// updateBrowse handles keys on the row list.
func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.lastKeyWasG = false
			if first := a.firstItem(); first >= 0 {
				a.cursor = first
			}
		} else {
			a.lastKeyWasG = true
		}
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)

	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)

	case key.Matches(msg, a.keys.Bottom):
		if last := a.lastItem(); last >= 0 {
			a.cursor = last
		}

	case key.Matches(msg, a.keys.Search):
		a.searching = true
		a.input.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Back):
		if a.input.Value() != "" {
			a.input.Reset()
			a.refreshRows()
		}

	case key.Matches(msg, a.keys.Open):
		if song := a.SelectedSong(); song != nil {
			a.detail = song
		}

	case key.Matches(msg, a.keys.Favorite):
		a.toggleFavorite(a.SelectedSong())

	case key.Matches(msg, a.keys.FavoritesOnly):
		a.favoritesOnly = !a.favoritesOnly
		a.refreshRows()

	case key.Matches(msg, a.keys.Program):
		a.prefs.ProgramMode = !a.prefs.ProgramMode
		a.savePrefs()
		a.refreshRows()

	case key.Matches(msg, a.keys.Language):
		a.cycleLanguage()

	case key.Matches(msg, a.keys.Yank):
		a.yank(a.SelectedSong())
	}

	return a, nil
}

// toggleFavorite flips the favorite state of the song and persists it.
func (a *App) toggleFavorite(song *model.Song) {
	if song == nil {
		return
	}
	a.prefs.ToggleFavorite(song.ID)
	a.favRev++
	a.savePrefs()
	a.refreshRows()
}

// cycleLanguage switches to the next message catalog and persists it.
func (a *App) cycleLanguage() {
	langs := i18n.Languages()
	next := langs[0]
	for i, lang := range langs {
		if lang == a.translator.Language() {
			next = langs[(i+1)%len(langs)]
			break
		}
	}

	a.translator = i18n.New(next)
	a.composer.Translate = a.translator.T
	a.input.Placeholder = a.translator.T("ui.search")
	a.prefs.Language = next
	a.savePrefs()
	a.refreshRows()
}

// yank copies the song's full lyric text to the system clipboard.
func (a *App) yank(song *model.Song) {
	if song == nil {
		return
	}
	if err := clipboard.WriteAll(songText(song)); err != nil {
		a.status = err.Error()
		return
	}
	a.status = a.translator.T("ui.copied")
}

// savePrefs persists preferences; failures surface on the status line
// instead of aborting the session.
func (a *App) savePrefs() {
	if a.store == nil {
		return
	}
	if err := a.store.Save(a.prefs); err != nil {
		a.status = err.Error()
	}
}

// songText renders a song as plain text for the clipboard: the title,
// then each variant. Variant names appear only when there is a choice.
func songText(song *model.Song) string {
	var b strings.Builder
	b.WriteString(song.Name)
	b.WriteString("\n")
	for _, v := range song.Lyrics {
		b.WriteString("\n")
		if len(song.Lyrics) > 1 {
			b.WriteString(v.Name)
			b.WriteString("\n")
		}
		b.WriteString(v.Text)
		b.WriteString("\n")
	}
	return b.String()
}
