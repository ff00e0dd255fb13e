package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catcher-arcade/internal/core"
	"github.com/vovakirdan/catcher-arcade/internal/registry"
	"github.com/vovakirdan/catcher-arcade/internal/storage"
)

// defaultHoldWindow applies to games that do not set their own.
const defaultHoldWindow = 180 * time.Millisecond

// holdWindowed is implemented by games that tune the held-key latch.
type holdWindowed interface {
	HoldWindow() time.Duration
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	svc        Services
	submitter  *storage.Submitter
	player     string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	latch      *HoldLatch
	lastTick   time.Time
	gameState  core.GameState
	keyMapper  *KeyMapper
	logger     *log.Logger
	now        func() time.Time
	gen        uint64
	embedded   bool // inside a SessionModel: back returns to the menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, svc Services, cfg core.RuntimeConfig, player string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	window := defaultHoldWindow
	if hw, ok := game.(holdWindowed); ok && hw.HoldWindow() > 0 {
		window = hw.HoldWindow()
	}

	board := storage.NewLeaderboard(svc.Store, game.ID())
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		svc:        svc,
		submitter:  storage.NewSubmitter(board),
		player:     player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		latch:      NewHoldLatch(window),
		keyMapper:  NewKeyMapper(),
		logger:     svc.logger().With("game", game.ID(), "player", player),
		now:        time.Now,
		gen:        modelGen.Add(1),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	m.logger.Info("session started", "session", m.game.State().Session, "seed", m.config.Seed)

	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.At)

	case TimerMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		if th, ok := m.game.(core.TimerHandler); ok {
			m.logger.Debug("timer fired", "session", msg.Session, "token", msg.Token)
			th.HandleTimer(msg.Token)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.latch.Press(action, m.now())
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. Games with a resizable
// playfield keep their session; others restart unless the game is over.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks. The frame delta is the wall
// time since the previous tick; the first tick of a session uses the
// nominal interval.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = max(0, now.Sub(m.lastTick))
	}
	m.lastTick = now

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate, m.gen)
	}

	m.latch.Apply(&m.inputFrame, now)
	m.inputFrame.Elapsed = elapsed

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate, m.gen)}
	for _, req := range result.Timers {
		cmds = append(cmds, timerCmd(m.gen, m.gameState.Session, req))
	}

	if m.gameState.GameOver {
		m.latch.Release()
		m.submitScore()
	}

	m.inputFrame.Clear()
	return m, tea.Batch(cmds...)
}

// restart begins a new session with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.latch.Release()
	m.inputFrame.Clear()
	m.lastTick = time.Time{}
	m.logger.Info("session started", "session", m.gameState.Session, "seed", m.config.Seed)
}

// submitScore saves the finished session once, however many frames the
// game-over state is observed on.
func (m *Model) submitScore() {
	st := m.gameState
	if m.submitter.Submitted(st.Session) {
		return
	}

	m.logger.Info("game over", "session", st.Session, "score", st.Score, "level", st.Level)
	saved, err := m.submitter.Submit(st.Session, m.player, st.Score, st.Stats)
	switch {
	case err != nil:
		m.logger.Error("could not save score", "session", st.Session, "error", err)
	case saved:
		m.logger.Info("score saved", "session", st.Session, "score", st.Score)
	}

	if m.svc.Profile != nil {
		if err := m.svc.Profile.RecordGame(st.Score); err != nil {
			m.logger.Warn("could not update profile", "error", err)
		}
	}
}

func (m *Model) logEvents(events []core.GameEvent) {
	for _, ev := range events {
		switch ev.Name {
		case "level_up":
			m.logger.Info("level up", "level", ev.Value)
		case "game_over":
			// logged by submitScore
		default:
			m.logger.Debug("event", "name", ev.Name, "value", ev.Value)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig, player string) error {
	model := NewModel(game, svc, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
