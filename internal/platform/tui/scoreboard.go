package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catcher-arcade/internal/registry"
	"github.com/vovakirdan/catcher-arcade/internal/storage"
)

const (
	leaderboardSize = 50
	// Rows taken by the title, summary, table border and help bar.
	scoreboardChrome = 9
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

type scoreboardKeys struct {
	Scroll  key.Binding
	Game    key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Game, k.Refresh, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll:  key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Game:    key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right"), key.WithHelp("tab", "game")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the leaderboard of one game at a time. Rows set
// by the current player are marked.
type ScoreboardModel struct {
	games  []registry.GameInfo
	cursor int
	store  *storage.Store
	player string

	scores  []storage.ScoreEntry
	stats   *storage.GameStats
	loadErr error

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel loads the leaderboard of the first registered game.
// A nil store shows a notice instead of scores.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		player: player,
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.table = newScoreTable(width, height)
	m.reload()
	return m
}

func newScoreTable(width, height int) table.Model {
	name := 10
	if spare := width - 52; spare > 0 {
		name = min(16, name+spare)
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Player", Width: name},
			{Title: "Score", Width: 8},
			{Title: "Lvl", Width: 3},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-scoreboardChrome)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.cursor].ID
}

// reload fetches the leaderboard and summary of the selected game.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if id := m.gameID(); id != "" && m.store != nil {
		m.scores, m.loadErr = storage.NewLeaderboard(m.store, id).FetchTopScores(leaderboardSize)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GameStats(id)
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = scoreRow(i+1, s, m.player)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func scoreRow(rank int, s storage.ScoreEntry, player string) table.Row {
	name := s.PlayerName
	switch {
	case name == "":
		name = "-"
	case player != "" && name == player:
		name = "*" + name
	}
	level := "-"
	if lvl, ok := s.Stats["max_level"]; ok {
		level = fmt.Sprint(lvl)
	}
	return table.Row{
		fmt.Sprintf("#%d", rank),
		name,
		fmt.Sprint(s.Score),
		level,
		s.CreatedAt.Local().Format("Jan 02 15:04"),
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Game):
			if n := len(m.games); n > 1 {
				step := 1
				if s := msg.String(); s == "shift+tab" || s == "left" {
					step = n - 1
				}
				m.cursor = (m.cursor + step) % n
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(m.width, m.height)
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " - " + m.games[m.cursor].Title
		if len(m.games) > 1 {
			title = fmt.Sprintf("< %s >", title)
		}
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardDimStyle.Render(m.summary()), m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(m.body())))
	b.WriteString("\n")
	b.WriteString(centerText(boardDimStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("best %d · %d games · average %.0f · last played %s",
		m.stats.HighScore, m.stats.GamesCount, m.stats.AvgScore,
		m.stats.LastPlayed.Local().Format("Jan 02"))
}

func (m ScoreboardModel) body() string {
	notice := lipgloss.NewStyle().Italic(true).Padding(2, 4)
	switch {
	case m.store == nil:
		return notice.Inherit(boardDimStyle).Render("Scores are not being kept.\nNo database is open.")
	case m.loadErr != nil:
		return notice.Inherit(boardErrStyle).Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return notice.Inherit(boardDimStyle).Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
