package techcanvas

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// cameraAnim holds active tweens for scale and translation.
type cameraAnim struct {
	scale  *gween.Tween
	tweenX *gween.Tween
	tweenY *gween.Tween
	done   [3]bool
}

// Camera holds the zoom and pan state of the canvas. Screen coordinates are
// derived from world coordinates as
//
//	screen = world*Scale + (TranslateX, TranslateY) + parallax
//
// where parallax is the offset of the layer being drawn.
type Camera struct {
	Scale      float64
	TranslateX float64
	TranslateY float64

	// MinScale and MaxScale bound Scale for zoom operations.
	MinScale float64
	MaxScale float64

	// Viewport is the drawing surface in screen space.
	Viewport Rect

	anim *cameraAnim
}

// newCamera creates a Camera with unit scale and no translation.
func newCamera(minScale, maxScale float64) *Camera {
	return &Camera{Scale: 1, MinScale: minScale, MaxScale: maxScale}
}

// View returns the affine matrix for a layer with the given parallax offset.
func (c *Camera) View(parallax Vec2) [6]float64 {
	return layerTransform(c.Scale, c.TranslateX, c.TranslateY, parallax)
}

// WorldToScreen converts world coordinates to screen coordinates for a layer
// offset by parallax.
func (c *Camera) WorldToScreen(parallax Vec2, wx, wy float64) (sx, sy float64) {
	return transformPoint(c.View(parallax), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates for a layer
// offset by parallax. It is the exact inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(parallax Vec2, sx, sy float64) (wx, wy float64) {
	return transformPoint(invertAffine(c.View(parallax)), sx, sy)
}

// ZoomAt multiplies Scale by factor, clamped to [MinScale, MaxScale], and
// moves the translation so the world point under (sx, sy) stays under it.
// Reports whether anything changed.
func (c *Camera) ZoomAt(parallax Vec2, sx, sy, factor float64) bool {
	if factor <= 0 {
		return false
	}
	next := clamp(c.Scale*factor, c.MinScale, c.MaxScale)
	if next == c.Scale {
		return false
	}
	wx, wy := c.ScreenToWorld(parallax, sx, sy)
	c.Scale = next
	c.TranslateX = sx - parallax.X - wx*next
	c.TranslateY = sy - parallax.Y - wy*next
	c.anim = nil
	return true
}

// Pan moves the translation by (dx, dy) screen pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.TranslateX += dx
	c.TranslateY += dy
	c.anim = nil
}

// centerTranslation returns the translation that puts the world point
// (wx, wy) at the viewport center when drawn at the given scale.
func (c *Camera) centerTranslation(scale, wx, wy float64) (tx, ty float64) {
	center := c.Viewport.Center()
	return center.X - wx*scale, center.Y - wy*scale
}

// CenterOn immediately translates the camera so r's center sits at the
// viewport center.
func (c *Camera) CenterOn(r Rect) {
	mid := r.Center()
	c.TranslateX, c.TranslateY = c.centerTranslation(c.Scale, mid.X, mid.Y)
	c.anim = nil
}

// AnimateTo tweens the camera so world point (wx, wy) ends at the viewport
// center at the given scale, over duration seconds.
func (c *Camera) AnimateTo(wx, wy, scale float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	scale = clamp(scale, c.MinScale, c.MaxScale)
	tx, ty := c.centerTranslation(scale, wx, wy)
	c.anim = &cameraAnim{
		scale:  gween.New(float32(c.Scale), float32(scale), duration, easeFn),
		tweenX: gween.New(float32(c.TranslateX), float32(tx), duration, easeFn),
		tweenY: gween.New(float32(c.TranslateY), float32(ty), duration, easeFn),
	}
}

// Animating reports whether a camera tween is in progress.
func (c *Camera) Animating() bool {
	return c.anim != nil
}

// update advances the camera tween by dt seconds. Reports whether the camera
// moved.
func (c *Camera) update(dt float32) bool {
	a := c.anim
	if a == nil {
		return false
	}
	tweens := [3]*gween.Tween{a.scale, a.tweenX, a.tweenY}
	fields := [3]*float64{&c.Scale, &c.TranslateX, &c.TranslateY}
	for i, tw := range tweens {
		if a.done[i] {
			continue
		}
		val, finished := tw.Update(dt)
		*fields[i] = float64(val)
		a.done[i] = finished
	}
	if a.done[0] && a.done[1] && a.done[2] {
		c.anim = nil
	}
	return true
}
