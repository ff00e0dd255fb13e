package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catcher-arcade/internal/core"
	"github.com/vovakirdan/catcher-arcade/internal/profile"
	"github.com/vovakirdan/catcher-arcade/internal/registry"
)

type sessionState int

const (
	stateName sessionState = iota
	stateMenu
	stateGame
	stateScores
)

// SessionModel manages the full arcade session flow:
// name -> menu -> game/scores/name -> menu.
// Sub-models quit their own program when done; the session swallows
// those commands and switches screens instead.
type SessionModel struct {
	svc      Services
	config   core.RuntimeConfig
	player   string
	state    sessionState
	name     NameModel
	menu     MenuModel
	scores   ScoreboardModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a new session. With no usable player name the
// session opens on the name prompt.
func NewSessionModel(svc Services, cfg core.RuntimeConfig, player string) SessionModel {
	m := SessionModel{svc: svc, config: cfg}
	if name, ok := profile.NormalizeName(player); ok {
		m.player = name
		m.toMenu()
	} else {
		m.state = stateName
		m.name = NewNameModel("", cfg.ScreenW, cfg.ScreenH)
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.state == stateName {
		return m.name.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateName:
		return m.updateName(msg)
	case stateGame:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m *SessionModel) toMenu() {
	m.state = stateMenu
	m.menu = NewMenuModel(m.config, m.player)
	m.game = nil
}

func (m SessionModel) updateName(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.name.Update(msg)
	if nm, ok := next.(NameModel); ok {
		m.name = nm
	}

	if name, ok := m.name.Name(); ok {
		m.player = name
		m.svc.rememberName(name)
		m.svc.logger().Info("player name set", "player", name)
		m.toMenu()
		return m, m.menu.Init()
	}
	if m.name.Cancelled() {
		m.toMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Kind {
	case MenuScores:
		m.state = stateScores
		m.scores = NewScoreboardModel(m.svc.Store, m.player, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()

	case MenuName:
		m.state = stateName
		m.name = NewNameModel(m.player, m.config.ScreenW, m.config.ScreenH)
		return m, m.name.Init()

	case MenuPlay:
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.svc.logger().Error("could not create game", "game", selected.GameID, "error", err)
			m.toMenu()
			return m, nil
		}
		m.config = m.menu.Config()
		gm := NewModel(game, m.svc, m.config, m.player)
		gm.embedded = true
		m.game = &gm
		m.state = stateGame
		return m, m.game.Init()
	}

	m.toMenu()
	return m, nil
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scores = sm
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.toMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	if m.game.BackToMenu() {
		m.toMenu()
		return m, m.menu.Init()
	}
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateName:
		return m.name.View()
	case stateGame:
		if m.game != nil {
			return m.game.View()
		}
	case stateScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// Player returns the current player name.
func (m SessionModel) Player() string {
	return m.player
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(svc Services, cfg core.RuntimeConfig, player string) error {
	p := tea.NewProgram(
		NewSessionModel(svc, cfg, player),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
