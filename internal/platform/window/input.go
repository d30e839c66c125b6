package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flippy/internal/core"
	"github.com/vovakirdan/flippy/internal/games/flippy"
)

var levelKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// clicked reports a fresh left click or touch and where it landed.
func clicked() (x, y int, ok bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y = ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	return 0, 0, false
}

// readInput polls this frame's keyboard and pointer state into a frame of actions
// for the given phase.
func (g *Game) readInput(phase flippy.Phase) core.InputFrame {
	frame := core.NewInputFrame()

	if anyJustPressed(ebiten.KeyQ) {
		frame.Set(core.ActionQuit)
	}
	x, y, click := clicked()

	switch phase {
	case flippy.PhaseMenu:
		for i, k := range levelKeys {
			if inpututil.IsKeyJustPressed(k) {
				frame.SelectLevel(i + 1)
			}
		}
		if click {
			if idx := hitButton(g.buttons, x, y); idx >= 0 {
				frame.SelectLevel(idx + 1)
			}
		}
		if anyJustPressed(ebiten.KeyEscape) {
			frame.Set(core.ActionQuit)
		}

	case flippy.PhasePlaying:
		if click || anyJustPressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW) {
			frame.Set(core.ActionFlap)
		}
		if anyJustPressed(ebiten.KeyP) {
			frame.Set(core.ActionPause)
		}
		if anyJustPressed(ebiten.KeyM, ebiten.KeyEscape) {
			frame.Set(core.ActionMenu)
		}

	case flippy.PhaseGameOver:
		if click || anyJustPressed(ebiten.KeySpace, ebiten.KeyR, ebiten.KeyEnter) {
			frame.Set(core.ActionRestart)
		}
		if anyJustPressed(ebiten.KeyM, ebiten.KeyEscape) {
			frame.Set(core.ActionMenu)
		}
	}
	return frame
}
