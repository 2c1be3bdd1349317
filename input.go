package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (g *Game) handleInput() error {
	// if escape, stop the timeline and exit
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.scheduler.Stop()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.setFullscreen(!g.fullscreen)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showDebug = !g.showDebug
	}

	return nil
}
