package techcanvas

import (
	"image/color"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandRect   CommandType = iota // filled rectangle
	CommandLine                      // stroked line segment
	CommandCircle                    // filled disc
	CommandRing                      // stroked circle
	CommandText                      // single line of text
)

// TextAlign controls horizontal text alignment relative to the anchor.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // anchor at the left edge
	TextAlignCenter                  // anchor at the center
	TextAlignRight                   // anchor at the right edge
)

// Command tags name the visual element a command belongs to.
const (
	TagBackground   = "background"
	TagDepthLine    = "depth-line"
	TagDepthLabel   = "depth-label"
	TagAxisTitle    = "axis-title"
	TagStageDivider = "stage-divider"
	TagStageLine    = "stage-line"
	TagStageLabel   = "stage-label"
	TagGlow         = "glow"
	TagPoint        = "point"
	TagPointRing    = "point-ring"
	TagPointLabel   = "point-label"
)

// depthAxisTitle is drawn rotated along the Y axis.
const depthAxisTitle = "Abstraction depth"

// RenderCommand is a single draw instruction in screen space. The display
// list is rebuilt from scratch on every render.
type RenderCommand struct {
	Type  CommandType
	Layer Layer
	Tag   string
	// ID is the stage ID or technology title the command draws, if any.
	ID string

	// Pos is the rect origin, line start, circle center or text anchor.
	Pos Vec2
	// End is the line end.
	End Vec2
	// Size is the rect size.
	Size        Vec2
	Radius      float64
	StrokeWidth float64
	Color       color.Color

	Text     string
	FontSize float64
	Align    TextAlign
	// Rotation is applied around the text anchor, in radians.
	Rotation float64
}

// Commands returns the display list produced by the last render. The
// returned slice MUST NOT be mutated.
func (c *Canvas) Commands() []RenderCommand {
	return c.commands
}

// render rebuilds the display list from the current view state and data.
// It captures the per-layer transforms it draws with so hit testing can
// invert exactly what is on screen. Safe to call at any frequency.
func (c *Canvas) render() {
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	c.commands = c.commands[:0]
	for l := Layer(0); l < layerCount; l++ {
		c.frame[l] = c.camera.View(c.parallax.Offset(l))
	}
	c.renders++

	if c.surface.Width <= 0 || c.surface.Height <= 0 {
		return
	}

	c.emitBackground()
	c.emitDepthGrid()
	c.emitStageGrid()
	c.emitStages()
	c.emitPoints()

	if c.debug {
		c.log.Debug("render",
			zap.Int("commands", len(c.commands)),
			zap.Duration("elapsed", time.Since(t0)),
			zap.Float64("scale", c.camera.Scale))
	}
}

// toScreen maps a world point through the transform captured for layer l.
func (c *Canvas) toScreen(l Layer, wx, wy float64) Vec2 {
	x, y := transformPoint(c.frame[l], wx, wy)
	return Vec2{X: x, Y: y}
}

func (c *Canvas) emit(cmd RenderCommand) {
	c.commands = append(c.commands, cmd)
}

func (c *Canvas) emitBackground() {
	c.emit(RenderCommand{
		Type:  CommandRect,
		Layer: LayerBackground,
		Tag:   TagBackground,
		Size:  Vec2{X: c.surface.Width, Y: c.surface.Height},
		Color: colorBackground,
	})
}

func (c *Canvas) emitDepthGrid() {
	l := c.layout
	s := c.camera.Scale
	left := l.Padding.Left
	right := l.Padding.Left + l.ContentWidth

	for d := MinDepth; d <= MaxDepth; d++ {
		y := l.DepthY(float64(d))
		c.emit(RenderCommand{
			Type:        CommandLine,
			Layer:       LayerGrid,
			Tag:         TagDepthLine,
			ID:          strconv.Itoa(d),
			Pos:         c.toScreen(LayerGrid, left, y),
			End:         c.toScreen(LayerGrid, right, y),
			StrokeWidth: 2 * s,
			Color:       colorGridLine,
		})
		c.emit(RenderCommand{
			Type:     CommandText,
			Layer:    LayerGrid,
			Tag:      TagDepthLabel,
			ID:       strconv.Itoa(d),
			Pos:      c.toScreen(LayerGrid, left-20, y),
			Text:     strconv.Itoa(d),
			FontSize: 16 * s,
			Align:    TextAlignRight,
			Color:    colorAxisText,
		})
	}

	c.emit(RenderCommand{
		Type:     CommandText,
		Layer:    LayerGrid,
		Tag:      TagAxisTitle,
		Pos:      c.toScreen(LayerGrid, left/2, l.Padding.Top+l.ContentHeight/2),
		Text:     depthAxisTitle,
		FontSize: 20 * s,
		Align:    TextAlignCenter,
		Rotation: -math.Pi / 2,
		Color:    colorAxisText,
	})
}

// emitStageGrid draws the vertical dividers between stage bands.
func (c *Canvas) emitStageGrid() {
	l := c.layout
	top := l.Padding.Top
	bottom := l.ContentBottom()
	for i := 0; i <= l.StageCount; i++ {
		x := l.StageOrigin(i)
		c.emit(RenderCommand{
			Type:        CommandLine,
			Layer:       LayerGrid,
			Tag:         TagStageDivider,
			Pos:         c.toScreen(LayerGrid, x, top),
			End:         c.toScreen(LayerGrid, x, bottom),
			StrokeWidth: c.camera.Scale,
			Color:       colorGridLine,
		})
	}
}

func (c *Canvas) emitStages() {
	l := c.layout
	p := c.params
	s := c.camera.Scale
	lineY := l.ContentBottom() + p.StageLineOffset
	labelY := l.ContentBottom() + p.StageLabelOffset

	for i, st := range c.catalog.Stages() {
		seg := l.Segment(i)
		hovered := st.ID == c.hover.Stage

		lineColor, width, labelColor := color.Color(colorStageLine), 4.0, color.Color(colorAxisText)
		if hovered {
			lineColor, width, labelColor = colorHighlight, 6.0, colorHighlight
		}
		c.emit(RenderCommand{
			Type:        CommandLine,
			Layer:       LayerStages,
			Tag:         TagStageLine,
			ID:          st.ID,
			Pos:         c.toScreen(LayerStages, seg.X, lineY),
			End:         c.toScreen(LayerStages, seg.X+seg.Width, lineY),
			StrokeWidth: width * s,
			Color:       lineColor,
		})
		c.emit(RenderCommand{
			Type:     CommandText,
			Layer:    LayerStages,
			Tag:      TagStageLabel,
			ID:       st.ID,
			Pos:      c.toScreen(LayerStages, seg.X+seg.Width/2, labelY),
			Text:     st.Label(),
			FontSize: 14 * s,
			Align:    TextAlignRight,
			Rotation: -math.Pi / 6,
			Color:    labelColor,
		})
	}
}

// emitPoints draws every technology whose stage resolves, in data order.
// Technologies with an unknown stage are skipped.
func (c *Canvas) emitPoints() {
	l := c.layout
	s := c.camera.Scale
	base := c.params.PointRadius
	hoveredIndex := -1
	if c.hover.Point != "" {
		hoveredIndex = c.findTechnology(c.hover.Point)
	}

	for i := range c.techs {
		t := &c.techs[i]
		pos, _, ok := l.PointPosition(c.catalog, t)
		if !ok {
			continue
		}
		center := c.toScreen(LayerPoints, pos.X, pos.Y)
		hovered := i == hoveredIndex

		radius := base
		ringColor, ringWidth := color.Color(colorPointStroke), 2.0
		if hovered {
			radius = base * 1.5
			ringColor, ringWidth = colorHighlight, 3.0
			c.emit(RenderCommand{
				Type:   CommandCircle,
				Layer:  LayerPoints,
				Tag:    TagGlow,
				ID:     t.Title,
				Pos:    center,
				Radius: base * 2 * s,
				Color:  colorGlow,
			})
		}
		c.emit(RenderCommand{
			Type:   CommandCircle,
			Layer:  LayerPoints,
			Tag:    TagPoint,
			ID:     t.Title,
			Pos:    center,
			Radius: radius * s,
			Color:  MasteryColor(t.Mastery),
		})
		c.emit(RenderCommand{
			Type:        CommandRing,
			Layer:       LayerPoints,
			Tag:         TagPointRing,
			ID:          t.Title,
			Pos:         center,
			Radius:      radius * s,
			StrokeWidth: ringWidth * s,
			Color:       ringColor,
		})
		c.emit(RenderCommand{
			Type:     CommandText,
			Layer:    LayerPoints,
			Tag:      TagPointLabel,
			ID:       t.Title,
			Pos:      Vec2{X: center.X, Y: center.Y - (radius+10)*s},
			Text:     t.Title,
			FontSize: 13 * s,
			Align:    TextAlignCenter,
			Color:    colorPointLabel,
		})
	}
}
