package techcanvas

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawDebugOverlay prints frame rates, view state and the hovered item in
// the top-left corner.
func (c *Canvas) drawDebugOverlay(screen *ebiten.Image) {
	hover := "-"
	switch {
	case c.hover.Point != "":
		hover = "point " + c.hover.Point
	case c.hover.Stage != "":
		hover = "stage " + c.hover.Stage
	}
	var offset Vec2
	if c.parallax.Len() > 0 {
		offset = c.parallax.Offset(LayerPoints)
	}
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nscale: %.2f  translate: %.0f,%.0f\nparallax: %.1f,%.1f  animating: %v\nhover: %s\nrenders: %d  commands: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		c.camera.Scale, c.camera.TranslateX, c.camera.TranslateY,
		offset.X, offset.Y, c.Animating(),
		hover,
		c.renders, len(c.commands))

	// Semi-transparent background for readability
	vector.DrawFilledRect(screen, 0, 0, 300, 84, color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrint(screen, msg)
}
