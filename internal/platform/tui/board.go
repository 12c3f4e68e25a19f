package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// hudRows is the number of screen rows above the field.
const hudRows = 1

type sprite struct {
	kind invaders.VisualKind
	x, y float64
}

var spriteArt = map[invaders.VisualKind]string{
	invaders.VisualPlayer:      "/▲\\",
	invaders.VisualEnemy:       "<O>",
	invaders.VisualPlayerLaser: "|",
	invaders.VisualEnemyLaser:  "¦",
}

var spriteColor = map[invaders.VisualKind]core.Color{
	invaders.VisualPlayer:      core.ColorGreen,
	invaders.VisualEnemy:       core.ColorMagenta,
	invaders.VisualPlayerLaser: core.ColorCyan,
	invaders.VisualEnemyLaser:  core.ColorBrightRed,
}

// Board is the terminal presenter. It keeps sprites in field coordinates
// and scales them to whatever screen it renders into.
type Board struct {
	cfg     config.InvadersConfig
	sprites map[invaders.VisualHandle]*sprite
	next    invaders.VisualHandle

	score   int
	lives   int
	elapsed time.Duration
	outcome *invaders.Outcome
}

// NewBoard creates an empty board for the given field.
func NewBoard(cfg config.InvadersConfig) *Board {
	return &Board{
		cfg:     cfg,
		sprites: make(map[invaders.VisualHandle]*sprite),
		lives:   cfg.Player.Lives,
	}
}

// CreateVisual adds a sprite. A new player sprite clears the last outcome.
func (b *Board) CreateVisual(kind invaders.VisualKind, x, y float64) invaders.VisualHandle {
	b.next++
	b.sprites[b.next] = &sprite{kind: kind, x: x, y: y}
	if kind == invaders.VisualPlayer {
		b.outcome = nil
	}
	return b.next
}

// PositionVisual moves a sprite; unknown handles are ignored.
func (b *Board) PositionVisual(h invaders.VisualHandle, x, y float64) {
	if s, ok := b.sprites[h]; ok {
		s.x, s.y = x, y
	}
}

// DestroyVisual removes a sprite; unknown handles are ignored.
func (b *Board) DestroyVisual(h invaders.VisualHandle) {
	delete(b.sprites, h)
}

// HUD values, drawn on the next Render.

func (b *Board) ReportScore(score int) { b.score = score }
func (b *Board) ReportLives(lives int) { b.lives = lives }
func (b *Board) ReportElapsed(elapsed time.Duration) { b.elapsed = elapsed }
func (b *Board) ReportOutcome(outcome invaders.Outcome) { b.outcome = &outcome }

// Sprites returns the number of live visuals.
func (b *Board) Sprites() int { return len(b.sprites) }

// Outcome returns the reported outcome, if any.
func (b *Board) Outcome() (invaders.Outcome, bool) {
	if b.outcome == nil {
		return 0, false
	}
	return *b.outcome, true
}

// Render draws the HUD and every sprite into screen.
func (b *Board) Render(screen *core.Screen) {
	screen.Clear()
	b.renderHUD(screen)

	rows := screen.Height() - hudRows
	if rows <= 0 || screen.Width() <= 0 {
		return
	}
	lost := b.outcome != nil && *b.outcome == invaders.OutcomeLost

	// Lower handles first, so newer sprites draw on top.
	for _, h := range slices.Sorted(maps.Keys(b.sprites)) {
		s := b.sprites[h]
		w, hh := b.size(s.kind)
		cx, cy := b.toCell(s.x+w/2, s.y+hh/2, screen.Width(), rows)

		art := spriteArt[s.kind]
		color := spriteColor[s.kind]
		if s.kind == invaders.VisualPlayer && lost {
			color = core.ColorGray
		}
		screen.DrawTextColored(cx-len([]rune(art))/2, cy, art, color)
	}
}

func (b *Board) renderHUD(screen *core.Screen) {
	points := fmt.Sprintf("Points: %d", b.score)
	screen.DrawTextColored(1, 0, points, core.ColorYellow)

	timer := formatElapsed(b.elapsed)
	screen.DrawTextColored((screen.Width()-len(timer))/2, 0, timer, core.ColorBrightWhite)

	hearts := "Lives: " + strings.Repeat("♥", max(b.lives, 0))
	screen.DrawTextColored(screen.Width()-len([]rune(hearts))-1, 0, hearts, core.ColorRed)
}

// size returns the field size of a visual kind.
func (b *Board) size(kind invaders.VisualKind) (w, h float64) {
	switch kind {
	case invaders.VisualPlayer:
		return b.cfg.Player.Width, b.cfg.Player.Height
	case invaders.VisualEnemy:
		return b.cfg.Enemies.Width, b.cfg.Enemies.Height
	default:
		return b.cfg.Lasers.Width, b.cfg.Lasers.Height
	}
}

// toCell maps a field point to a screen cell below the HUD.
func (b *Board) toCell(x, y float64, cols, rows int) (cx, cy int) {
	fx := core.ClampF(x/b.cfg.Field.Width, 0, 1)
	fy := core.ClampF(y/b.cfg.Field.Height, 0, 1)
	cx = core.Clamp(int(fx*float64(cols)), 0, cols-1)
	cy = core.Clamp(int(fy*float64(rows)), 0, rows-1)
	return cx, cy + hudRows
}

// formatElapsed renders play time as m:ss.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
