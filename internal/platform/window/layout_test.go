package window

import (
	"testing"

	"github.com/vovakirdan/flippy/internal/core"
	"github.com/vovakirdan/flippy/internal/games/flippy"
)

func TestMenuButtons(t *testing.T) {
	buttons := menuButtons(400)
	if len(buttons) != flippy.NumLevels {
		t.Fatalf("got %d buttons, expected %d", len(buttons), flippy.NumLevels)
	}

	for i, b := range buttons {
		if b.Level != i {
			t.Errorf("button %d level = %d, expected %d", i, b.Level, i)
		}
		if b.Rect.X != 90 || b.Rect.W != buttonWidth {
			t.Errorf("button %d should be centered, got %+v", i, b.Rect)
		}
		if i > 0 && b.Rect.Y < buttons[i-1].Rect.MaxY() {
			t.Errorf("button %d overlaps the one above", i)
		}
	}
	if last := buttons[len(buttons)-1]; last.Rect.MaxY() > 700-80 {
		t.Errorf("last button should sit above the ground, bottom = %v", last.Rect.MaxY())
	}
}

func TestHitButton(t *testing.T) {
	buttons := menuButtons(400)

	tests := []struct {
		name     string
		x, y     int
		expected int
	}{
		{"first button", 200, buttonTop + 10, 0},
		{"third button", 100, buttonTop + 2*(buttonHeight+buttonGap) + 1, 2},
		{"gap between buttons", 200, buttonTop + buttonHeight + buttonGap/2, -1},
		{"left of buttons", 10, buttonTop + 10, -1},
		{"above the menu", 200, 10, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := hitButton(buttons, tc.x, tc.y); got != tc.expected {
				t.Errorf("hitButton(%d, %d) = %d, expected %d", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestProjection(t *testing.T) {
	p := projection{height: 700}

	if got := p.y(700); got != 0 {
		t.Errorf("y(700) = %v, expected 0", got)
	}
	if got := p.y(80); got != 620 {
		t.Errorf("y(80) = %v, expected 620", got)
	}

	x, y, w, h := p.rect(core.NewRect(100, 80, 60, 200))
	if x != 100 || y != 420 || w != 60 || h != 200 {
		t.Errorf("rect() = (%v, %v, %v, %v), expected (100, 420, 60, 200)", x, y, w, h)
	}
}
