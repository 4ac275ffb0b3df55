package techcanvas

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const defaultDragDeadZone = 4.0 // pixels

// --- Per-pointer state ---

type pointerState struct {
	inside   bool
	x, y     float64
	down     bool
	startX   float64
	startY   float64
	dragging bool
}

// --- Callback contexts ---

// HoverContext is passed to hover-change callbacks.
type HoverContext struct {
	Previous HoverState
	Current  HoverState
	// Point and Stage are the newly hovered items, nil when not hovered.
	Point *Technology
	Stage *Stage
}

// PointClickContext is passed to point click callbacks.
type PointClickContext struct {
	Technology       Technology
	ScreenX, ScreenY float64
}

// StageClickContext is passed to stage click callbacks.
type StageClickContext struct {
	Stage            Stage
	ScreenX, ScreenY float64
}

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerRegistry struct {
	hoverChange []handler[HoverContext]
	pointClick  []handler[PointClickContext]
	stageClick  []handler[StageClickContext]
	nextID      uint32
}

// CallbackHandle allows removing a registered callback or subscription.
// The zero value is valid and Remove on it does nothing.
type CallbackHandle struct {
	id     uint32
	remove func(id uint32)
}

// Remove unregisters the callback so it no longer fires. Calling Remove
// more than once is harmless.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove(h.id)
	}
}

func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			return s[:len(s)-1]
		}
	}
	return s
}

func dispatch[T any](s []handler[T], ctx T) {
	for _, h := range s {
		h.fn(ctx)
	}
}

// OnHoverChange registers a callback fired whenever the hovered point or
// stage changes.
func (c *Canvas) OnHoverChange(fn func(HoverContext)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.hoverChange = append(c.handlers.hoverChange, handler[HoverContext]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: func(id uint32) {
		c.handlers.hoverChange = removeHandler(c.handlers.hoverChange, id)
	}}
}

// OnPointClick registers a callback fired when a point is clicked.
func (c *Canvas) OnPointClick(fn func(PointClickContext)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.pointClick = append(c.handlers.pointClick, handler[PointClickContext]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: func(id uint32) {
		c.handlers.pointClick = removeHandler(c.handlers.pointClick, id)
	}}
}

// OnStageClick registers a callback fired when a stage segment is clicked.
func (c *Canvas) OnStageClick(fn func(StageClickContext)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.stageClick = append(c.handlers.stageClick, handler[StageClickContext]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: func(id uint32) {
		c.handlers.stageClick = removeHandler(c.handlers.stageClick, id)
	}}
}

// --- Interaction ---

// PointerMove handles the pointer moving to screen position (x, y). It aims
// the parallax layers, pans when dragging, hit tests against the last
// rendered frame and re-renders only if the hover identity changed.
func (c *Canvas) PointerMove(x, y float64) {
	if c.closed {
		return
	}
	ps := &c.pointer
	dx, dy := x-ps.x, y-ps.y
	ps.inside = true
	ps.x, ps.y = x, y

	if c.parallax.Len() > 0 {
		c.parallax.Aim(c.surface, x, y, c.params.ParallaxStrength)
		if !c.parallax.Converged() {
			c.anim.Schedule()
		}
	}

	if ps.down && c.opts.Zoom {
		if !ps.dragging && math.Hypot(x-ps.startX, y-ps.startY) > defaultDragDeadZone {
			ps.dragging = true
			dx, dy = x-ps.startX, y-ps.startY
		}
		if ps.dragging {
			c.camera.Pan(dx, dy)
			c.render()
			c.setCursor(ebiten.CursorShapeMove)
			return
		}
	}

	if c.setHover(c.HitTest(x, y).Hover()) {
		c.render()
	}
	c.updateCursor()
}

// PointerLeave handles the pointer leaving the surface: hover is cleared and
// every parallax target returns to zero.
func (c *Canvas) PointerLeave() {
	if c.closed {
		return
	}
	c.pointer = pointerState{}
	c.parallax.Reset()
	if !c.parallax.Converged() {
		c.anim.Schedule()
	}
	if c.setHover(HoverState{}) {
		c.render()
	}
	c.updateCursor()
}

// Wheel zooms by ZoomStep^dy around screen position (x, y), keeping the
// world point under the pointer fixed. Does nothing unless zoom is enabled.
func (c *Canvas) Wheel(x, y, dy float64) {
	if c.closed || !c.opts.Zoom || dy == 0 {
		return
	}
	factor := math.Pow(c.params.ZoomStep, dy)
	if c.camera.ZoomAt(c.parallax.Offset(LayerPoints), x, y, factor) {
		c.render()
		if c.setHover(c.HitTest(x, y).Hover()) {
			c.render()
		}
	}
}

// PointerDown handles a primary button press at (x, y).
func (c *Canvas) PointerDown(x, y float64) {
	if c.closed {
		return
	}
	c.pointer.down = true
	c.pointer.dragging = false
	c.pointer.startX, c.pointer.startY = x, y
	c.pointer.x, c.pointer.y = x, y
}

// PointerUp handles a primary button release at (x, y). A release that did
// not drag counts as a click on whatever is under the pointer.
func (c *Canvas) PointerUp(x, y float64) {
	if c.closed || !c.pointer.down {
		return
	}
	wasDragging := c.pointer.dragging
	c.pointer.down = false
	c.pointer.dragging = false
	if wasDragging {
		c.updateCursor()
		return
	}

	hit := c.HitTest(x, y)
	switch hit.Kind {
	case HitPoint:
		dispatch(c.handlers.pointClick, PointClickContext{Technology: *hit.Point, ScreenX: x, ScreenY: y})
	case HitStage:
		dispatch(c.handlers.stageClick, StageClickContext{Stage: *hit.Stage, ScreenX: x, ScreenY: y})
	}
}

// setHover replaces the hover state and fires hover callbacks. Reports
// whether the identity changed.
func (c *Canvas) setHover(h HoverState) bool {
	if h == c.hover {
		return false
	}
	prev := c.hover
	c.hover = h
	if len(c.handlers.hoverChange) > 0 {
		point, stage := c.Hovered()
		dispatch(c.handlers.hoverChange, HoverContext{Previous: prev, Current: h, Point: point, Stage: stage})
	}
	return true
}

func (c *Canvas) updateCursor() {
	if c.hover != (HoverState{}) {
		c.setCursor(ebiten.CursorShapePointer)
		return
	}
	c.setCursor(ebiten.CursorShapeDefault)
}

func (c *Canvas) setCursor(shape ebiten.CursorShapeType) {
	c.cursor = shape
}

// Cursor returns the cursor shape the canvas wants shown.
func (c *Canvas) Cursor() ebiten.CursorShapeType {
	return c.cursor
}

// --- Input processing ---

// SetOccluder installs fn to report screen positions covered by host UI
// drawn over the canvas. Mouse input at those positions is treated as
// outside the canvas. Injected and manual input is not filtered. A nil fn
// removes the occluder.
func (c *Canvas) SetOccluder(fn func(x, y float64) bool) {
	c.occluder = fn
}

// pointerInside reports whether real mouse input at (x, y) belongs to the
// canvas.
func (c *Canvas) pointerInside(x, y float64) bool {
	if !c.surface.Contains(x, y) {
		return false
	}
	return c.occluder == nil || !c.occluder(x, y)
}

// processInput reads mouse state from Ebitengine and feeds the interaction
// handlers. Called from Update unless ManualInput is set.
func (c *Canvas) processInput() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	inside := ebiten.IsFocused() && c.pointerInside(x, y)

	switch {
	case inside && (!c.pointer.inside || x != c.pointer.x || y != c.pointer.y):
		c.PointerMove(x, y)
	case !inside && c.pointer.inside:
		c.PointerLeave()
	}

	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c.PointerDown(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		c.PointerUp(x, y)
	}
	if _, dy := ebiten.Wheel(); dy != 0 && inside {
		c.Wheel(x, y, dy)
	}

	if ebiten.CursorShape() != c.cursor {
		ebiten.SetCursorShape(c.cursor)
	}
}
