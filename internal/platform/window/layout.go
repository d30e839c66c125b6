package window

import (
	"github.com/vovakirdan/flippy/internal/core"
	"github.com/vovakirdan/flippy/internal/games/flippy"
)

const (
	buttonWidth  = 220
	buttonHeight = 56
	buttonGap    = 16
	buttonTop    = 190
)

// Button is a clickable level entry on the menu, in screen pixels.
type Button struct {
	Rect  core.Rect
	Level int // Preset index
	Label string
}

// menuButtons lays out one button per preset, stacked and centered horizontally.
func menuButtons(screenW float64) []Button {
	levels := flippy.Levels()
	buttons := make([]Button, len(levels))
	x := (screenW - buttonWidth) / 2
	for i, l := range levels {
		y := float64(buttonTop + i*(buttonHeight+buttonGap))
		buttons[i] = Button{
			Rect:  core.NewRect(x, y, buttonWidth, buttonHeight),
			Level: i,
			Label: l.Name,
		}
	}
	return buttons
}

// hitButton returns the preset index under the pixel (x, y), or -1.
func hitButton(buttons []Button, x, y int) int {
	for _, b := range buttons {
		if b.Rect.Contains(float64(x), float64(y)) {
			return b.Level
		}
	}
	return -1
}

// projection maps world units (y up) to screen pixels (y down).
type projection struct {
	height float64
}

// y converts a world y coordinate to a screen row.
func (p projection) y(worldY float64) float64 {
	return p.height - worldY
}

// rect converts a world rectangle to screen space, returning its top-left corner
// and size.
func (p projection) rect(r core.Rect) (x, y, w, h float64) {
	return r.X, p.height - r.MaxY(), r.W, r.H
}
