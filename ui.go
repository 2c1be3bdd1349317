// ui.go
package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"
)

var hudColor = color.RGBA{R: 255, G: 255, B: 255, A: 200}

// HUD is the debug overlay anchored to the bottom-left corner.
type HUD struct {
	ui     *ebitenui.UI
	status *widget.Text
}

func NewHUD(face font.Face) *HUD {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(10)),
		)),
	)

	status := widget.NewText(
		widget.TextOpts.Text("", face, hudColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	root.AddChild(status)

	return &HUD{
		ui:     &ebitenui.UI{Container: root},
		status: status,
	}
}

func (h *HUD) Update(label string) {
	h.status.Label = label
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

// status describes the timeline for the debug overlay.
func (g *Game) status() string {
	s := fmt.Sprintf("state: %s\nloop: %v / %v",
		g.scheduler.State(), g.scheduler.LocalTime().Truncate(time.Millisecond), g.scheduler.TotalDuration())
	if g.shower != nil {
		s += fmt.Sprintf("\ncoins: %d / %d", g.shower.CoinsAdded(), g.shower.Config().TotalCoins)
	}
	return s + "\nF1 debug, F fullscreen, ESC exit"
}

func (g *Game) drawUI(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f TPS: %0.2f", ebiten.ActualFPS(), ebiten.ActualTPS()), 10, 10)
	g.hud.Draw(screen)
}
