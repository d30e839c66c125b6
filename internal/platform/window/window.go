// Package window hosts the simulation in a desktop window using Ebitengine.
// Update runs at a fixed tick rate, so every step advances the core by 1/TPS.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flippy/internal/config"
	"github.com/vovakirdan/flippy/internal/core"
	"github.com/vovakirdan/flippy/internal/games/flippy"
	"github.com/vovakirdan/flippy/internal/logging"
)

var (
	colorSky     = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	colorGround  = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	colorGrass   = color.RGBA{R: 93, G: 170, B: 60, A: 255}
	colorPipe    = color.RGBA{R: 84, G: 180, B: 53, A: 255}
	colorPipeCap = color.RGBA{R: 60, G: 140, B: 40, A: 255}
	colorBird    = color.RGBA{R: 250, G: 200, B: 40, A: 255}
	colorButton  = color.RGBA{R: 40, G: 40, B: 90, A: 230}
	colorBorder  = color.RGBA{R: 230, G: 230, B: 255, A: 255}
	colorShade   = color.RGBA{A: 120}
)

const (
	capHeight = 12
	capInset  = 4
)

// Options configures the window host.
type Options struct {
	Scale  float64 // Window size relative to the field; <= 0 means 1
	Title  string
	Logger *log.Logger
}

// Game adapts a flippy simulation to ebiten.Game.
type Game struct {
	sim     *flippy.Game
	cfg     config.FlippyConfig
	logger  *log.Logger
	proj    projection
	buttons []Button
	dt      float64
	paused  bool
}

// NewGame wraps sim for a window stepping at the configured tick rate.
func NewGame(sim *flippy.Game, logger *log.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	cfg := sim.Config()
	return &Game{
		sim:     sim,
		cfg:     cfg,
		logger:  logger,
		proj:    projection{height: cfg.Field.Height},
		buttons: menuButtons(cfg.Field.Width),
		dt:      cfg.Runtime.FrameDelta(),
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	frame := g.readInput(g.sim.Phase())
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	g.apply(frame)
	return nil
}

// apply runs one fixed step for the given input.
func (g *Game) apply(frame core.InputFrame) {
	switch g.sim.Phase() {
	case flippy.PhaseMenu:
		if frame.Level > 0 {
			g.sim.SelectLevel(frame.Level - 1)
			g.paused = false
			g.logger.Info("level selected", "preset", g.sim.Level().Name, "policy", g.cfg.Progression.Policy)
		}

	case flippy.PhasePlaying:
		if frame.Has(core.ActionMenu) {
			g.toMenu()
			return
		}
		if frame.Has(core.ActionPause) {
			g.paused = !g.paused
			g.logger.Debug("pause toggled", "paused", g.paused)
		}
		if g.paused {
			return
		}
		if frame.Has(core.ActionFlap) {
			g.sim.Flap()
		}
		rep := g.sim.Advance(g.dt)
		logging.LogReport(g.logger, rep, g.sim.Snapshot().Elapsed)

	case flippy.PhaseGameOver:
		switch {
		case frame.Has(core.ActionMenu):
			g.toMenu()
		case frame.Has(core.ActionRestart):
			if g.cfg.Runtime.Restart == config.RestartLevel {
				g.sim.Restart()
				g.logger.Info("level restarted", "preset", g.sim.Level().Name)
				return
			}
			g.toMenu()
		}
	}
}

func (g *Game) toMenu() {
	score := g.sim.Score()
	g.sim.ReturnToMenu()
	g.paused = false
	g.logger.Debug("returned to menu", "score", score)
}

// Layout implements ebiten.Game. The logical screen is always the field size;
// Ebitengine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Field.Width), int(g.cfg.Field.Height)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.sim.Snapshot()
	screen.Fill(colorSky)

	for _, o := range s.Obstacles {
		g.drawPipe(screen, o.TopRect(s.Field), true)
		g.drawPipe(screen, o.BottomRect(s.Field), false)
	}
	g.drawGround(screen, s.Field)

	if s.Phase != flippy.PhaseMenu {
		vector.DrawFilledCircle(screen,
			float32(s.Bird.X), float32(g.proj.y(s.Bird.Y)), float32(s.Bird.Radius),
			colorBird, true)
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("Score: %d  %s", s.Score, s.LevelName), 8, 8)
	}

	switch {
	case s.Phase == flippy.PhaseMenu:
		g.drawMenu(screen)
	case s.Phase == flippy.PhaseGameOver:
		g.drawBanner(screen, s.Field,
			fmt.Sprintf("GAME OVER  score %d\nclick or space: restart\nM: menu", s.Score))
	case g.paused:
		g.drawBanner(screen, s.Field, "PAUSED\nP: resume")
	}
}

func (g *Game) drawGround(screen *ebiten.Image, f flippy.Field) {
	top := float32(g.proj.y(f.FloorY))
	vector.DrawFilledRect(screen, 0, top, float32(f.Width), float32(f.FloorY), colorGround, false)
	vector.DrawFilledRect(screen, 0, top, float32(f.Width), 4, colorGrass, false)
}

// drawPipe fills a pipe segment and its cap on the gap side.
func (g *Game) drawPipe(screen *ebiten.Image, r core.Rect, top bool) {
	if r.Empty() {
		return
	}
	x, y, w, h := g.proj.rect(r)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colorPipe, false)

	capY := y + h - capHeight
	if !top {
		capY = y
	}
	vector.DrawFilledRect(screen,
		float32(x-capInset), float32(capY), float32(w+2*capInset), capHeight,
		colorPipeCap, false)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "F L I P P Y", int(g.cfg.Field.Width)/2-33, 120)
	ebitenutil.DebugPrintAt(screen, "press 1-5 or click a level", int(g.cfg.Field.Width)/2-78, 146)

	for i, b := range g.buttons {
		x, y := float32(b.Rect.X), float32(b.Rect.Y)
		w, h := float32(b.Rect.W), float32(b.Rect.H)
		vector.DrawFilledRect(screen, x, y, w, h, colorButton, false)
		vector.StrokeRect(screen, x, y, w, h, 2, colorBorder, false)
		label := fmt.Sprintf("%d  %s", i+1, b.Label)
		ebitenutil.DebugPrintAt(screen, label, int(x)+16, int(y)+int(h)/2-8)
	}
}

// drawBanner shades the field and prints msg near its middle.
func (g *Game) drawBanner(screen *ebiten.Image, f flippy.Field, msg string) {
	vector.DrawFilledRect(screen, 0, 0, float32(f.Width), float32(f.Height), colorShade, false)
	ebitenutil.DebugPrintAt(screen, msg, int(f.Width)/2-72, int(f.Height)/2-24)
}

// Run opens the window and blocks until it is closed.
func Run(sim *flippy.Game, opts Options) error {
	cfg := sim.Config()
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	title := opts.Title
	if title == "" {
		title = "Flippy"
	}

	ebiten.SetWindowSize(int(cfg.Field.Width*scale), int(cfg.Field.Height*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.Runtime.TickRate)

	g := NewGame(sim, opts.Logger)
	g.logger.Info("window opened", "tps", cfg.Runtime.TickRate, "scale", scale)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
