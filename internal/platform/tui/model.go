package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// maxCatchUpSteps bounds how many simulation steps one tick may run after a stall.
const maxCatchUpSteps = 5

// Services are shared by every game a session starts.
// Store, Logger and Sound are optional.
type Services struct {
	Config config.PlatformerConfig
	Store  *storage.Store
	Logger *log.Logger
	Sound  audio.Player
}

func (s Services) withDefaults() Services {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.Sound == nil {
		s.Sound = audio.Mute{}
	}
	return s
}

// GameModel runs one level: it feeds keys and ticks to the game, saves
// finished runs and plays sound cues.
type GameModel struct {
	game       *platformer.Game
	screen     *core.Screen
	services   Services
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	hold       *HoldTracker
	inputFrame core.InputFrame
	stepper    *core.Stepper
	help       help.Model
	state      platformer.State
	now        func() time.Time
	loop       uint64 // Tick loop owned by this model
	standalone bool // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model for the given level.
func NewGameModel(level registry.Level, svc Services, cfg core.RuntimeConfig) GameModel {
	svc = svc.withDefaults()
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	h := help.New()
	h.Width = cfg.ScreenW
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return GameModel{
		game:       platformer.New(level, svc.Config),
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		services:   svc,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		hold:       NewHoldTracker(svc.Config.Input.HoldTimeout),
		inputFrame: core.NewInputFrame(),
		stepper:    core.NewStepper(cfg.TickRate, maxCatchUpSteps),
		help:       h,
		now:        time.Now,
		loop:       nextLoopID(),
	}
}

// playHeight leaves the bottom row for the help line.
func playHeight(h int) int {
	return core.Max(1, h-1)
}

// Init starts the level and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.stepper.Reset()
	m.services.Logger.Info("level started", "level", m.game.ID())
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.game.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	case core.ActionLeft, core.ActionRight, core.ActionStop:
		m.hold.Press(action, m.now())
	case core.ActionJump, core.ActionPause, core.ActionRestart:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs as many fixed steps as the elapsed time calls for.
// Edge-triggered actions apply to the first step only.
func (m GameModel) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	steps := m.stepper.Advance(at)
	for i := 0; i < steps; i++ {
		m.inputFrame.Held = m.hold.Keys(m.now())
		result := m.game.Step(m.inputFrame)
		m.inputFrame.Clear()

		if result.State.Paused != m.state.Paused {
			m.services.Logger.Debug("pause toggled", "paused", result.State.Paused)
		}
		m.state = result.State
		m.handleEvents(result.Events)
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

// handleEvents plays cues, logs and records finished runs.
func (m GameModel) handleEvents(events []platformer.Event) {
	logger := m.services.Logger
	for _, e := range events {
		switch e.Kind {
		case platformer.EventJump:
			m.services.Sound.Play(audio.CueJump)
		case platformer.EventWin:
			m.services.Sound.Play(audio.CueWin)
			logger.Info("level won", "level", m.game.ID(), "distance", e.Distance, "ticks", e.Ticks)
			m.saveRun(storage.OutcomeWin, e)
		case platformer.EventLose:
			m.services.Sound.Play(audio.CueLose)
			logger.Info("level lost", "level", m.game.ID(), "distance", e.Distance, "ticks", e.Ticks)
			m.saveRun(storage.OutcomeLose, e)
		case platformer.EventReset:
			logger.Debug("world reset", "level", m.game.ID(), "attempt", m.game.State().Attempts)
		}
	}
}

// saveRun stores a finished run. Failures are logged; play continues.
func (m GameModel) saveRun(outcome storage.Outcome, e platformer.Event) {
	if m.services.Store == nil {
		return
	}
	_, err := m.services.Store.SaveRun(storage.Run{
		LevelID:  m.game.ID(),
		Outcome:  outcome,
		Distance: e.Distance,
		Ticks:    e.Ticks,
	})
	if err != nil {
		m.services.Logger.Warn("could not save run", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// State returns the state after the most recent step.
func (m GameModel) State() platformer.State {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single level in its own Bubble Tea program.
func Run(level registry.Level, svc Services, cfg core.RuntimeConfig) error {
	model := NewGameModel(level, svc, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
