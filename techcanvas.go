package techcanvas

import (
	"image/color"
	"math"
)

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Layer identifies a render layer. Each layer is offset by its own parallax
// layer, so layers further back move less than the ones in front.
type Layer uint8

const (
	LayerBackground Layer = iota // full-bleed fill
	LayerGrid                    // depth grid lines, labels and stage dividers
	LayerStages                  // stage segments and their labels
	LayerPoints                  // technology points and their labels
	layerCount
)

// String returns a short name for the layer.
func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerGrid:
		return "grid"
	case LayerStages:
		return "stages"
	case LayerPoints:
		return "points"
	default:
		return "unknown"
	}
}

// Palette used by the renderer. Translucent entries are non-premultiplied.
var (
	colorBackground  = color.RGBA{0x1e, 0x29, 0x3b, 0xff}
	colorGridLine    = color.NRGBA{148, 163, 184, 51}
	colorAxisText    = color.RGBA{0x94, 0xa3, 0xb8, 0xff}
	colorStageLine   = color.NRGBA{59, 130, 246, 128}
	colorHighlight   = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
	colorPointStroke = color.NRGBA{255, 255, 255, 77}
	colorGlow        = color.NRGBA{59, 130, 246, 77}
	colorPointLabel  = color.RGBA{0xe2, 0xe8, 0xf0, 0xff}
)

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
