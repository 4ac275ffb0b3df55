package techcanvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glowRings is the number of concentric discs used to approximate the
// radial glow gradient.
const glowRings = 6

// submit draws the display list onto screen in order.
func (c *Canvas) submit(screen *ebiten.Image) {
	for i := range c.commands {
		cmd := &c.commands[i]
		switch cmd.Type {
		case CommandRect:
			vector.DrawFilledRect(screen,
				float32(cmd.Pos.X), float32(cmd.Pos.Y),
				float32(cmd.Size.X), float32(cmd.Size.Y),
				cmd.Color, false)
		case CommandLine:
			vector.StrokeLine(screen,
				float32(cmd.Pos.X), float32(cmd.Pos.Y),
				float32(cmd.End.X), float32(cmd.End.Y),
				float32(cmd.StrokeWidth), cmd.Color, true)
		case CommandCircle:
			if cmd.Tag == TagGlow {
				drawGlow(screen, cmd)
				continue
			}
			vector.DrawFilledCircle(screen,
				float32(cmd.Pos.X), float32(cmd.Pos.Y), float32(cmd.Radius),
				cmd.Color, true)
		case CommandRing:
			vector.StrokeCircle(screen,
				float32(cmd.Pos.X), float32(cmd.Pos.Y), float32(cmd.Radius),
				float32(cmd.StrokeWidth), cmd.Color, true)
		case CommandText:
			c.drawText(screen, cmd)
		}
	}
}

// drawGlow fades from the command colour at the center to transparent at
// the edge.
func drawGlow(screen *ebiten.Image, cmd *RenderCommand) {
	r, g, b, a := cmd.Color.RGBA()
	for i := glowRings; i >= 1; i-- {
		frac := float64(i) / glowRings
		// Each ring is drawn over the larger ones, so alpha accumulates
		// toward the center.
		step := float64(a>>8) / glowRings
		clr := color.NRGBA{
			R: uint8(r * 0xff / max(a, 1)),
			G: uint8(g * 0xff / max(a, 1)),
			B: uint8(b * 0xff / max(a, 1)),
			A: uint8(step),
		}
		vector.DrawFilledCircle(screen,
			float32(cmd.Pos.X), float32(cmd.Pos.Y), float32(cmd.Radius*frac),
			clr, true)
	}
}

// drawText renders a text command with its alignment and rotation around
// the anchor. Missing fonts or unreadable sizes skip the command.
func (c *Canvas) drawText(screen *ebiten.Image, cmd *RenderCommand) {
	face := c.faces.face(cmd.FontSize)
	if face == nil || cmd.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	switch cmd.Align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	op.SecondaryAlign = text.AlignCenter
	if cmd.Rotation != 0 {
		op.GeoM.Rotate(cmd.Rotation)
	}
	op.GeoM.Translate(cmd.Pos.X, cmd.Pos.Y)
	op.ColorScale.ScaleWithColor(cmd.Color)
	text.Draw(screen, cmd.Text, face, op)
}
