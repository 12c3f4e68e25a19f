package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/logging"
	"github.com/vovakirdan/tui-invaders/internal/schedule"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Model is the Bubble Tea model for an invaders session.
type Model struct {
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig
	game    *invaders.Game
	loop    *invaders.Loop
	board   *Board
	keys    *KeyState
	sched   *Scheduler
	keymap  KeyMap
	help    help.Model
	screen  *core.Screen
	runs    *storage.Board
	table   RunTable
	stats   storage.Stats
	logger  *log.Logger

	showOptions bool
	recorded    bool // Whether the current finished run is on the board
	quitting    bool
}

// NewModel creates a model sitting on the menu. runs and logger may be nil.
func NewModel(cfg config.InvadersConfig, rt core.RuntimeConfig, runs *storage.Board, logger *log.Logger) Model {
	def := core.DefaultConfig()
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Timing.TickRate
	}
	if rt.TickRate <= 0 {
		rt.TickRate = def.TickRate
	}
	if logger == nil {
		logger = logging.Discard()
	}

	board := NewBoard(cfg)
	sched := NewScheduler(rt.TickRate)
	keys := NewKeyState(schedule.SystemClock{}, cfg.Input.Hold())
	game := invaders.New(cfg, invaders.Options{
		Presenter: board,
		Seed:      rt.Seed,
		Logger:    logger,
	})

	m := Model{
		cfg:     cfg,
		runtime: rt,
		game:    game,
		loop:    invaders.NewLoop(game, sched, keys, board, cfg.Timing.ClockInterval()),
		board:   board,
		keys:    keys,
		sched:   sched,
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		runs:    runs,
		table:   NewRunTable(),
		logger:  logger,
	}
	m.help.Width = rt.ScreenW
	m.refreshRuns()
	return m
}

// Game returns the driven game.
func (m Model) Game() *invaders.Game { return m.game }

// Init initializes the model. Nothing runs until the player starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	if m.sched.Handle(msg) {
		return m.settle()
	}
	return m, nil
}

// handleKey processes keyboard input for the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keymap.MapKey(msg)
	if action == core.ActionQuit {
		m.loop.Pause()
		m.quitting = true
		return m, tea.Quit
	}

	switch m.game.Phase() {
	case invaders.PhaseMenu:
		switch {
		case m.showOptions && (action == core.ActionStart || action == core.ActionBack || action == core.ActionOptions):
			m.showOptions = false
		case m.showOptions:
		case action == core.ActionOptions:
			m.showOptions = true
		case action == core.ActionStart:
			m.keys.Reset()
			m.loop.Start()
		}

	case invaders.PhasePlaying:
		m.keys.Press(action)

	case invaders.PhasePaused:
		switch action {
		case core.ActionResume:
			m.keys.Reset()
			m.loop.Resume()
		case core.ActionBack:
			m.loop.Restart()
		}

	case invaders.PhaseLost, invaders.PhaseWon:
		if action == core.ActionRestart {
			m.loop.Restart()
			m.keys.Reset()
			m.loop.Start()
		}
	}

	return m.settle()
}

// handleResize processes window resize events. The field scales to the
// new size, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// settle records a finished run once and hands the scheduler's pending
// timers to Bubble Tea.
func (m Model) settle() (tea.Model, tea.Cmd) {
	phase := m.game.Phase()
	if !phase.Terminal() {
		m.recorded = false
	} else if !m.recorded {
		m.recordRun(phase)
		m.recorded = true
	}
	return m, m.sched.Flush()
}

func (m *Model) recordRun(phase invaders.Phase) {
	if m.runs == nil {
		return
	}
	outcome := invaders.OutcomeLost
	if phase == invaders.PhaseWon {
		outcome = invaders.OutcomeWon
	}
	_, err := m.runs.RecordRun(storage.RunEntry{
		RunID:     m.game.RunID(),
		Outcome:   outcome.String(),
		Score:     m.game.Score(),
		Kills:     m.game.Kills(),
		Ticks:     int64(m.game.TickCount()),
		ElapsedMS: m.game.Elapsed().Milliseconds(),
	})
	if err != nil {
		m.logger.Warn("could not record run", "run", m.game.RunID(), "err", err)
		return
	}
	m.refreshRuns()
}

func (m *Model) refreshRuns() {
	if m.runs == nil {
		return
	}
	if err := m.table.Load(m.runs); err != nil {
		m.logger.Warn("could not load runs", "err", err)
	}
	stats, err := m.runs.Stats()
	if err != nil {
		m.logger.Warn("could not load run stats", "err", err)
		return
	}
	m.stats = stats
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	phase := m.game.Phase()
	if phase == invaders.PhaseMenu {
		if m.showOptions {
			full := m.help
			full.ShowAll = true
			return optionsView(m.runtime.ScreenW, m.cfg, full.View(m.keymap))
		}
		return menuView(m.runtime.ScreenW, m.stats, m.table, m.help.View(m.keymap.forPhase(phase, false)))
	}

	m.board.Render(m.screen)
	switch phase {
	case invaders.PhasePaused:
		drawPanel(m.screen, "PAUSED", core.ColorYellow, "r resume   b menu")
	case invaders.PhaseLost:
		drawPanel(m.screen, "GAME OVER", core.ColorBrightRed, m.summary()...)
	case invaders.PhaseWon:
		drawPanel(m.screen, "YOU WIN", core.ColorGreen, m.summary()...)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keymap.forPhase(phase, false))
}

func (m Model) summary() []string {
	return []string{
		"Points: " + strconv.Itoa(m.game.Score()),
		"Best: " + strconv.Itoa(max(m.stats.Best, m.game.Score())),
		"Time: " + formatElapsed(m.game.Elapsed()),
	}
}

// RunGame starts the Bubble Tea program on the menu.
func RunGame(cfg config.InvadersConfig, rt core.RuntimeConfig, runs *storage.Board, logger *log.Logger) error {
	model := NewModel(cfg, rt, runs, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
