package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flippy/internal/core"
	"github.com/vovakirdan/flippy/internal/games/flippy"
)

// Visual characters for rendering
const (
	BirdChar       = '●'
	BirdRiseChar   = '▲'
	PipeChar       = '█'
	PipeCapTop     = '▄'
	PipeCapBottom  = '▀'
	GroundChar     = '▒'
	GroundEdgeChar = '═'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorSky:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorGround:  lipgloss.NewStyle().Foreground(lipgloss.Color("136")),
	core.ColorPipe:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorPipeCap: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBird:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorDanger:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// viewport maps world coordinates (y up) onto a block of screen cells (y down).
type viewport struct {
	field      flippy.Field
	x0, y0     int
	cols, rows int
}

// cellAspect is how many columns make a square in a typical terminal font.
const cellAspect = 2.0

// newViewport fits the field into a screen, leaving hudRows at the top and footerRows at the
// bottom, preserving the field's aspect ratio.
func newViewport(f flippy.Field, screenW, screenH, hudRows, footerRows int) viewport {
	// One column each side for the frame.
	rows := core.Max(screenH-hudRows-footerRows-2, 1)
	cols := int(float64(rows) * f.Width / f.Height * cellAspect)
	if maxCols := screenW - 2; cols > maxCols {
		cols = core.Max(maxCols, 1)
	}
	cols = core.Max(cols, 1)
	return viewport{
		field: f,
		x0:    (screenW - cols) / 2,
		y0:    hudRows + 1,
		cols:  cols,
		rows:  rows,
	}
}

// col returns the screen column of world x.
func (v viewport) col(x float64) int {
	return v.x0 + int(math.Floor(x/v.field.Width*float64(v.cols)))
}

// row returns the screen row of world y.
func (v viewport) row(y float64) int {
	r := int(math.Floor((v.field.Height - y) / v.field.Height * float64(v.rows)))
	return v.y0 + core.Clamp(r, 0, v.rows-1)
}

// inside reports whether a screen cell belongs to the field.
func (v viewport) inside(c, r int) bool {
	return c >= v.x0 && c < v.x0+v.cols && r >= v.y0 && r < v.y0+v.rows
}

// DrawGame renders a snapshot into dst: HUD, field, pipes, bird, and overlays.
func DrawGame(dst *core.Screen, s flippy.Snapshot, paused bool) {
	dst.Clear()
	vp := newViewport(s.Field, dst.Width(), dst.Height(), 1, 0)

	dst.DrawBox(vp.x0-1, vp.y0-1, vp.cols+2, vp.rows+2, core.ColorDim)
	drawGround(dst, vp)
	for _, o := range s.Obstacles {
		drawPipe(dst, vp, o)
	}
	drawBird(dst, vp, s.Bird)

	hud := fmt.Sprintf(" Score: %d  %s ", s.Score, s.LevelName)
	dst.DrawText(vp.x0, 0, hud, core.ColorText)

	switch {
	case s.Phase == flippy.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score %d  |  hit the %s", s.Score, s.Crash), core.ColorDanger)
	case paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorAccent)
	case s.Elapsed == 0:
		drawCenteredMessage(dst, s.LevelName, "Press space to flap", core.ColorAccent)
	}
}

func drawGround(dst *core.Screen, vp viewport) {
	top := vp.row(vp.field.FloorY)
	for r := top; r < vp.y0+vp.rows; r++ {
		ch := GroundChar
		if r == top {
			ch = GroundEdgeChar
		}
		dst.DrawHLine(vp.x0, r, vp.cols, ch, core.ColorGround)
	}
}

// drawPipe renders a single pipe pair to the screen.
func drawPipe(dst *core.Screen, vp viewport, o flippy.Obstacle) {
	c0 := vp.col(o.LeadingEdge())
	c1 := core.Max(vp.col(o.TrailingEdge()), c0+1)
	f := vp.field

	topEnd := vp.row(f.Height - o.Top)
	bottomStart := vp.row(f.FloorY + o.Bottom)
	floorRow := vp.row(f.FloorY)

	for c := c0; c < c1; c++ {
		for r := vp.y0; r <= topEnd; r++ {
			ch, color := PipeChar, core.ColorPipe
			if r == topEnd {
				ch, color = PipeCapTop, core.ColorPipeCap
			}
			setInside(dst, vp, c, r, ch, color)
		}
		for r := bottomStart; r < floorRow; r++ {
			ch, color := PipeChar, core.ColorPipe
			if r == bottomStart {
				ch, color = PipeCapBottom, core.ColorPipeCap
			}
			setInside(dst, vp, c, r, ch, color)
		}
	}
}

func drawBird(dst *core.Screen, vp viewport, b flippy.Bird) {
	ch := BirdChar
	if b.VY > 0 {
		ch = BirdRiseChar
	}
	setInside(dst, vp, vp.col(b.X), vp.row(b.Y), ch, core.ColorBird)
}

func setInside(dst *core.Screen, vp viewport, c, r int, ch rune, color core.Color) {
	if vp.inside(c, r) {
		dst.SetColored(c, r, ch, color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, color core.Color) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))
	boxW := core.Max(titleLen, subLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, color)
	dst.DrawTextCentered(boxY+1, title, color)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorText)
}
