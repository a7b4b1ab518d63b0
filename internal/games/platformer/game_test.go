package platformer

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func newGame(level registry.Level, cfg config.PlatformerConfig) (*Game, *ScreenBanner) {
	banner := NewScreenBanner()
	g := New(level, cfg, WithBanner(banner))
	g.Reset(core.DefaultConfig())
	return g, banner
}

func held(right, left bool) core.InputFrame {
	in := core.NewInputFrame()
	in.Held = core.Keys{Right: right, Left: left}
	return in
}

func countEvents(res StepResult, kind EventKind) int {
	n := 0
	for _, e := range res.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestWinFiresOnceThenResets(t *testing.T) {
	g, banner := newGame(floor(), config.DefaultPlatformerConfig())

	wins := 0
	winTick := -1
	for i := 0; i < 3000 && winTick < 0; i++ {
		res := g.Step(held(true, false))
		if countEvents(res, EventWin) > 0 {
			wins++
			winTick = i
			if res.Events[0].Distance <= 8230 {
				t.Errorf("Win reported at distance %v", res.Events[0].Distance)
			}
		}
	}
	if winTick < 0 {
		t.Fatalf("Never won, scroll offset %v", g.World().ScrollOffset)
	}
	if g.State().Phase != PhaseWinPending {
		t.Fatalf("Expected win-pending, got %v", g.State().Phase)
	}
	if !banner.Visible() || banner.Text() != "You Win" {
		t.Fatalf("Expected win banner, got visible=%v text=%q", banner.Visible(), banner.Text())
	}

	// Still scrolling past the win distance must not win again.
	reset := false
	for i := 0; i < 200 && !reset; i++ {
		res := g.Step(held(true, false))
		wins += countEvents(res, EventWin)
		reset = countEvents(res, EventReset) > 0
	}
	if !reset {
		t.Fatal("Expected reset after the banner duration")
	}
	if wins != 1 {
		t.Errorf("Expected exactly one win, got %d", wins)
	}
	if banner.Visible() {
		t.Error("Banner should be hidden after reset")
	}

	st := g.State()
	if st.Phase != PhasePlaying || st.Wins != 1 || st.Attempts != 2 {
		t.Errorf("Unexpected state after reset: %+v", st)
	}
}

func TestBannerDurationOnSimulatedClock(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	cfg.Rules.BannerDuration = 100 * time.Millisecond
	g, banner := newGame(floor(), cfg)

	g.World().ScrollOffset = 9000
	if res := g.Step(core.NewInputFrame()); countEvents(res, EventWin) != 1 {
		t.Fatal("Expected win on the first step")
	}

	// 100ms at 60Hz is about six steps; the timer fires on the first step at or past it.
	steps := 0
	for banner.Visible() && steps < 100 {
		g.Step(core.NewInputFrame())
		steps++
	}
	if steps < 6 || steps > 8 {
		t.Errorf("Expected banner hidden after 6-8 steps, got %d", steps)
	}
	if g.World().ScrollOffset != 0 {
		t.Errorf("Expected fresh world, scroll offset %v", g.World().ScrollOffset)
	}
}

func TestLoseThenRestart(t *testing.T) {
	level := registry.Level{
		ID:          "ledge",
		WinDistance: 8230,
		Platforms:   []core.Box{{X: -6, Y: 800, W: 600, H: 200}},
	}
	cfg := config.DefaultPlatformerConfig()
	g, banner := newGame(level, cfg)

	lost := false
	for i := 0; i < 1000 && !lost; i++ {
		res := g.Step(held(true, false))
		lost = countEvents(res, EventLose) > 0
	}
	if !lost {
		t.Fatalf("Never fell off, pos=%+v", g.World().Character.Pos)
	}
	if !banner.Visible() || banner.Text() != "You lose" {
		t.Fatalf("Expected lose banner, got visible=%v text=%q", banner.Visible(), banner.Text())
	}
	if g.State().Losses != 1 {
		t.Errorf("Expected one loss, got %d", g.State().Losses)
	}

	// Falling further while pending is not another loss.
	for i := 0; i < 30; i++ {
		if res := g.Step(core.NewInputFrame()); countEvents(res, EventLose) > 0 {
			t.Fatal("Lose fired twice")
		}
	}
}

func TestManualRestartDropsPendingTimer(t *testing.T) {
	level := registry.Level{
		ID:          "ledge",
		WinDistance: 8230,
		Platforms:   []core.Box{{X: -6, Y: 800, W: 600, H: 200}},
	}
	cfg := config.DefaultPlatformerConfig()
	cfg.Rules.BannerDuration = 200 * time.Millisecond
	g, banner := newGame(level, cfg)

	lost := false
	for i := 0; i < 1000 && !lost; i++ {
		res := g.Step(held(true, false))
		lost = countEvents(res, EventLose) > 0
	}
	if !lost {
		t.Fatal("Never fell off")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)
	if banner.Visible() {
		t.Error("Restart should hide the banner")
	}
	attempts := g.State().Attempts

	// Well past the old deadline: standing still on the ledge, nothing resets.
	for i := 0; i < 60; i++ {
		if res := g.Step(core.NewInputFrame()); countEvents(res, EventReset) > 0 {
			t.Fatalf("Stale timer reset the world at step %d", i)
		}
	}
	if g.State().Attempts != attempts {
		t.Errorf("Expected %d attempts, got %d", attempts, g.State().Attempts)
	}
	if g.State().Phase != PhasePlaying {
		t.Errorf("Expected playing, got %v", g.State().Phase)
	}
}

func TestResetRoundTrip(t *testing.T) {
	level := meadow(t)
	g, _ := newGame(level, config.DefaultPlatformerConfig())

	for i := 0; i < 300; i++ {
		in := held(true, false)
		if i%40 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}
	g.Reset(core.DefaultConfig())

	w := g.World()
	if w.ScrollOffset != 0 {
		t.Errorf("Expected scroll offset 0, got %v", w.ScrollOffset)
	}
	c := w.Character
	if c.Pos != *level.Spawn || c.Vel != (core.Vec{}) || c.OnGround {
		t.Errorf("Character not at spawn: %+v", *c)
	}
	if len(w.Platforms) != len(level.Platforms) {
		t.Fatalf("Expected %d platforms, got %d", len(level.Platforms), len(w.Platforms))
	}
	for i, p := range w.Platforms {
		if p.Box() != level.Platforms[i] {
			t.Errorf("Platform %d: expected %+v, got %+v", i, level.Platforms[i], p.Box())
		}
	}
	if st := g.State(); st.Attempts != 1 || st.Score != 0 {
		t.Errorf("Expected fresh counters, got %+v", st)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g, _ := newGame(meadow(t), config.DefaultPlatformerConfig())
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if res := g.Step(pause); !res.State.Paused {
		t.Fatal("Expected paused")
	}

	before := *g.World().Character
	for i := 0; i < 20; i++ {
		g.Step(held(true, false))
	}
	if *g.World().Character != before {
		t.Error("Character moved while paused")
	}

	if res := g.Step(pause); res.State.Paused {
		t.Fatal("Expected unpaused")
	}
}

func TestJumpEvent(t *testing.T) {
	g, _ := newGame(meadow(t), config.DefaultPlatformerConfig())

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)

	// Airborne at spawn: nothing happens.
	if res := g.Step(jump); countEvents(res, EventJump) != 0 {
		t.Fatal("Jumped while airborne")
	}
	for i := 0; i < 100 && !g.World().Character.OnGround; i++ {
		g.Step(core.NewInputFrame())
	}
	res := g.Step(jump)
	if countEvents(res, EventJump) != 1 {
		t.Fatal("Expected a jump event from the ground")
	}
	if g.World().Character.OnGround {
		t.Error("Expected airborne after jump")
	}
}

func TestScoreTracksFurthestDistance(t *testing.T) {
	g, _ := newGame(floor(), config.DefaultPlatformerConfig())

	for i := 0; i < 200; i++ {
		g.Step(held(true, false))
	}
	best := g.State().Score
	if best <= 0 {
		t.Fatalf("Expected positive score, got %d", best)
	}
	for i := 0; i < 20; i++ {
		g.Step(held(false, true))
	}
	if g.State().Score != best {
		t.Errorf("Score should not drop when scrolling back: %d -> %d", best, g.State().Score)
	}
}

func TestRenderDrawsHUD(t *testing.T) {
	g, banner := newGame(meadow(t), config.DefaultPlatformerConfig())
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Meadow") {
		t.Errorf("Expected level title in HUD, got %q", screen.Row(0))
	}

	banner.Show("You Win")
	g.Render(screen)
	if !strings.Contains(screen.String(), "You Win") {
		t.Error("Expected banner text on screen")
	}
}

func TestRenderWithoutSpriteFillsCharacter(t *testing.T) {
	theme := Theme{
		Background: core.ColorBlack,
		Platform:   core.ColorBlue,
		Character:  core.ColorRed,
		HUD:        core.ColorWhite,
	}
	g := New(meadow(t), config.DefaultPlatformerConfig(), WithTheme(theme))
	g.Step(core.NewInputFrame())

	// 80x24 cells over 1600x1000 units: the character at (100,600) covers
	// columns 5-9 and rows 14-17.
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	cell := screen.GetCell(7, 16)
	if cell.Rune != '█' || cell.Fg != core.ColorRed {
		t.Errorf("Expected filled character cell, got %q fg=%v", cell.Rune, cell.Fg)
	}
	if floor := screen.GetCell(7, 20); floor.Fg != core.ColorBlue {
		t.Errorf("Expected platform below the character, got fg=%v", floor.Fg)
	}
}

func TestNewGameIsPlayableWithoutReset(t *testing.T) {
	g := New(floor(), config.DefaultPlatformerConfig())

	st := g.State()
	if st.Phase != PhasePlaying || st.Attempts != 1 {
		t.Fatalf("Expected first attempt in progress, got phase=%v attempts=%d", st.Phase, st.Attempts)
	}

	for i := 0; i < 10; i++ {
		g.Step(held(true, false))
	}
	if x := g.World().Character.Pos.X; x <= 100 {
		t.Errorf("Expected character to walk right, x=%v", x)
	}

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Try 1") {
		t.Errorf("Expected HUD attempt counter, got %q", screen.Row(0))
	}
}
