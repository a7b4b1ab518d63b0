// Package platformer implements a side-scrolling platformer.
// The player walks and jumps across static platforms; past the edges of a
// central dead zone the world scrolls instead of the character moving.
// Scrolling far enough wins; falling off the surface loses. Either outcome
// shows a banner and then restarts the level.
package platformer

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Phase is the session state machine.
type Phase int

const (
	PhasePlaying     Phase = iota // Input, physics and terminal checks active
	PhaseWinPending               // Win banner shown, waiting for reset
	PhaseLosePending              // Lose banner shown, waiting for reset
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWinPending:
		return "win-pending"
	case PhaseLosePending:
		return "lose-pending"
	default:
		return "unknown"
	}
}

// EventKind identifies something the platform layer may react to.
type EventKind int

const (
	EventJump  EventKind = iota // The character left the ground
	EventWin                    // The win distance was passed
	EventLose                   // The character left the surface
	EventReset                  // A fresh world replaced the old one
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventWin:
		return "win"
	case EventLose:
		return "lose"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is emitted by Step. Distance and Ticks describe the attempt at the
// time of the event.
type Event struct {
	Kind     EventKind
	Distance float64
	Ticks    int
}

// State summarises the session for the platform layer.
type State struct {
	Level    string
	Phase    Phase
	Score    int // Furthest scroll offset reached in the current attempt
	Attempts int
	Wins     int
	Losses   int
	Paused   bool
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  State
	Move   MoveMode
	Events []Event
}

// Theme holds resolved drawing colors and the character sprite.
type Theme struct {
	Background core.Color
	Platform   core.Color
	Character  core.Color
	HUD        core.Color
	Sprite     *Sprite
}

// NewTheme resolves the configured theme and loads the built-in sprite.
func NewTheme(t config.PlatformerTheme) Theme {
	bg, platform, character, hud := t.Colors()
	return Theme{
		Background: bg,
		Platform:   platform,
		Character:  character,
		HUD:        hud,
		Sprite:     HeroSprite(character),
	}
}

// timer is a delayed action on the simulated clock. It only fires if no
// reset happened since it was scheduled.
type timer struct {
	deadline   time.Duration
	generation uint64
	fire       func()
}

// Game drives one session on one level.
type Game struct {
	cfg     config.PlatformerConfig
	level   registry.Level
	runtime core.RuntimeConfig
	theme   Theme
	banner  Banner

	world      *World
	phase      Phase
	paused     bool
	generation uint64
	clock      time.Duration
	timers     []timer
	events     []Event

	ticks    int     // Steps in the current attempt
	best     float64 // Furthest scroll offset in the current attempt
	attempts int
	wins     int
	losses   int
}

// Option configures a Game.
type Option func(*Game)

// WithBanner replaces the default screen banner.
func WithBanner(b Banner) Option {
	return func(g *Game) {
		g.banner = b
	}
}

// WithTheme replaces the theme resolved from config.
func WithTheme(t Theme) Option {
	return func(g *Game) {
		g.theme = t
	}
}

// New creates a game for the given level, ready to step at the default
// tick rate. Reset applies a different runtime config.
func New(level registry.Level, cfg config.PlatformerConfig, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		level:   level,
		runtime: core.DefaultConfig(),
		theme:   NewTheme(cfg.Theme),
		banner:  NewScreenBanner(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.restart()
	return g
}

// ID returns the level identifier, used for score storage.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the display name of the level.
func (g *Game) Title() string {
	return g.level.Title
}

// Reset starts the session over: fresh world, cleared counters, hidden
// banner. Pending banner timers from before the reset never fire.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	g.runtime = rt
	g.paused = false
	g.clock = 0
	g.timers = g.timers[:0]
	g.events = g.events[:0]
	g.attempts = 0
	g.wins = 0
	g.losses = 0
	g.banner.Hide()
	g.restart()
}

// Resize adapts to a new terminal size without touching the simulation.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// restart replaces the world with a fresh one built from the level table.
func (g *Game) restart() {
	g.generation++
	g.world = NewWorld(g.level, g.cfg)
	g.phase = PhasePlaying
	g.ticks = 0
	g.best = 0
	g.attempts++
	g.events = append(g.events, Event{Kind: EventReset})
}

// stepDuration is the simulated time covered by one Step.
func (g *Game) stepDuration() time.Duration {
	return time.Second / time.Duration(g.runtime.TickRate)
}

// after schedules fire to run once d of simulated time has passed, unless
// the world is reset first.
func (g *Game) after(d time.Duration, fire func()) {
	g.timers = append(g.timers, timer{
		deadline:   g.clock + d,
		generation: g.generation,
		fire:       fire,
	})
}

// runTimers fires due timers and drops stale ones.
func (g *Game) runTimers() {
	pending := g.timers[:0]
	var due []timer
	for _, t := range g.timers {
		switch {
		case t.generation != g.generation:
			// Scheduled before a reset.
		case t.deadline <= g.clock:
			due = append(due, t)
		default:
			pending = append(pending, t)
		}
	}
	g.timers = pending

	for _, t := range due {
		if t.generation == g.generation {
			t.fire()
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.banner.Hide()
		g.restart()
	}

	g.clock += g.stepDuration()
	g.runTimers()

	w := g.world
	if in.Has(core.ActionJump) && w.Character.Jump() {
		g.events = append(g.events, g.event(EventJump))
	}

	w.Keys = in.Held
	move := w.Step()

	g.ticks++
	if w.ScrollOffset > g.best {
		g.best = w.ScrollOffset
	}

	if g.phase == PhasePlaying {
		g.checkTerminal()
	}

	return StepResult{
		State:  g.State(),
		Move:   move,
		Events: append([]Event(nil), g.events...),
	}
}

// checkTerminal moves to a pending phase on win or loss. Each terminal
// condition fires once per attempt; physics keeps running while pending.
func (g *Game) checkTerminal() {
	w := g.world
	delay := g.cfg.Rules.BannerDuration

	switch {
	case w.Won():
		g.phase = PhaseWinPending
		g.wins++
		g.events = append(g.events, g.event(EventWin))
		g.banner.Show(g.cfg.Rules.WinText)
		g.after(delay, func() {
			g.banner.Hide()
			g.restart()
		})

	case w.Lost():
		g.phase = PhaseLosePending
		g.losses++
		g.events = append(g.events, g.event(EventLose))
		g.banner.Show(g.cfg.Rules.LoseText)
		g.after(delay, func() {
			g.restart()
			g.banner.Hide()
		})
	}
}

// event builds an event describing the current attempt.
func (g *Game) event(kind EventKind) Event {
	return Event{Kind: kind, Distance: g.world.ScrollOffset, Ticks: g.ticks}
}

// World exposes the current world for inspection.
func (g *Game) World() *World {
	return g.world
}

// State returns the current session state.
func (g *Game) State() State {
	return State{
		Level:    g.level.ID,
		Phase:    g.phase,
		Score:    int(g.best),
		Attempts: g.attempts,
		Wins:     g.wins,
		Losses:   g.losses,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	surface := NewCellSurface(dst, g.cfg.Viewport.Width, g.cfg.Viewport.Height)
	surface.Clear(g.theme.Background)
	g.world.Render(surface, g.theme)

	g.drawHUD(dst)

	if b, ok := g.banner.(interface{ Draw(*core.Screen) }); ok {
		b.Draw(dst)
	}
	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawHUD draws the level name, progress bar and attempt counters on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" %s ", g.level.Title)
	right := fmt.Sprintf(" Try %d  Wins %d ", g.attempts, g.wins)

	barW := dst.Width() - len([]rune(left)) - len([]rune(right)) - 4
	bar := ""
	if barW >= 10 {
		filled := int(g.world.Progress() * float64(barW))
		bar = "[" + strings.Repeat("=", filled) + strings.Repeat(" ", barW-filled) + "]"
	}

	dst.DrawTextColor(0, 0, left, g.theme.HUD)
	dst.DrawTextColor(len([]rune(left))+1, 0, bar, g.theme.HUD)
	dst.DrawTextColor(dst.Width()-len([]rune(right)), 0, right, g.theme.HUD)
}
