package techcanvas

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestPointerMoveRendersOnlyOnHoverChange(t *testing.T) {
	c := newTestCanvas(t, Options{}, sampleTech())
	start := c.RenderCount()

	c.PointerMove(1500, 500)
	if c.RenderCount() != start {
		t.Error("render on move over empty space")
	}
	c.PointerMove(600, 100)
	if c.RenderCount() != start+1 {
		t.Errorf("renders = %d, want %d", c.RenderCount(), start+1)
	}
	c.PointerMove(602, 101)
	if c.RenderCount() != start+1 {
		t.Error("render on move within the same point")
	}
	c.PointerMove(1500, 500)
	if c.RenderCount() != start+2 {
		t.Errorf("renders = %d, want %d", c.RenderCount(), start+2)
	}
}

func TestPointerMoveSetsCursor(t *testing.T) {
	c := newTestCanvas(t, Options{}, sampleTech())
	c.PointerMove(600, 100)
	if c.Cursor() != ebiten.CursorShapePointer {
		t.Errorf("Cursor = %v, want pointer", c.Cursor())
	}
	c.PointerMove(1500, 500)
	if c.Cursor() != ebiten.CursorShapeDefault {
		t.Errorf("Cursor = %v, want default", c.Cursor())
	}
}

func TestPointerLeaveResetsHoverAndTargets(t *testing.T) {
	c := newTestCanvas(t, Options{ParallaxLayers: 3}, sampleTech())
	c.PointerMove(600, 100)
	if c.HoverState().Point != "DDD" {
		t.Fatalf("hover = %+v", c.HoverState())
	}

	c.PointerLeave()
	if c.HoverState() != (HoverState{}) {
		t.Errorf("hover = %+v after leave", c.HoverState())
	}
	for i, l := range c.Parallax().Layers() {
		if l.Target != (Vec2{}) {
			t.Errorf("layer %d target = %v, want zero", i, l.Target)
		}
	}
	for i := 0; i < 1000 && c.Animating(); i++ {
		_ = c.Update()
	}
	if c.Animating() {
		t.Fatal("parallax animation never stopped")
	}
	for i, l := range c.Parallax().Layers() {
		if l.Current != (Vec2{}) {
			t.Errorf("layer %d current = %v, want zero", i, l.Current)
		}
	}
}

func TestParallaxAnimationStopsWhenConverged(t *testing.T) {
	c := newTestCanvas(t, Options{ParallaxLayers: 4})
	c.PointerMove(0, 0)
	ticks := 0
	for c.Animating() {
		_ = c.Update()
		ticks++
		if ticks > 1000 {
			t.Fatal("animation did not terminate")
		}
	}
	renders := c.RenderCount()
	_ = c.Update()
	if c.RenderCount() != renders {
		t.Error("render after convergence")
	}
}

func TestHoverChangeCallback(t *testing.T) {
	c := newTestCanvas(t, Options{}, sampleTech())
	var got []HoverContext
	h := c.OnHoverChange(func(ctx HoverContext) { got = append(got, ctx) })

	c.PointerMove(600, 100)
	c.PointerMove(600, 900)
	if len(got) != 2 {
		t.Fatalf("callbacks = %d, want 2", len(got))
	}
	if got[0].Point == nil || got[0].Point.Title != "DDD" {
		t.Errorf("first Point = %+v", got[0].Point)
	}
	if got[1].Previous.Point != "DDD" || got[1].Stage == nil || got[1].Stage.ID != "architecture" {
		t.Errorf("second context = %+v", got[1])
	}

	h.Remove()
	h.Remove()
	c.PointerLeave()
	if len(got) != 2 {
		t.Errorf("callback fired after Remove")
	}
}

func TestZeroCallbackHandleRemove(t *testing.T) {
	var h CallbackHandle
	h.Remove()
}

func TestClickCallbacks(t *testing.T) {
	c := newTestCanvas(t, Options{}, sampleTech())
	var points []string
	var stages []string
	c.OnPointClick(func(ctx PointClickContext) { points = append(points, ctx.Technology.Title) })
	c.OnStageClick(func(ctx StageClickContext) { stages = append(stages, ctx.Stage.ID) })

	c.PointerDown(600, 100)
	c.PointerUp(600, 100)
	c.PointerDown(600, 900)
	c.PointerUp(600, 900)
	c.PointerDown(1500, 500)
	c.PointerUp(1500, 500)
	c.PointerUp(600, 100)

	if len(points) != 1 || points[0] != "DDD" {
		t.Errorf("point clicks = %v", points)
	}
	if len(stages) != 1 || stages[0] != "architecture" {
		t.Errorf("stage clicks = %v", stages)
	}
}

func TestDragPans(t *testing.T) {
	c := newTestCanvas(t, Options{Zoom: true}, sampleTech())
	clicks := 0
	c.OnPointClick(func(PointClickContext) { clicks++ })

	c.PointerDown(600, 100)
	c.PointerMove(602, 100)
	assertNear(t, "TranslateX within dead zone", c.Camera().TranslateX, 0)
	c.PointerMove(610, 100)
	assertNear(t, "TranslateX", c.Camera().TranslateX, 10)
	c.PointerMove(630, 110)
	assertNear(t, "TranslateX", c.Camera().TranslateX, 30)
	assertNear(t, "TranslateY", c.Camera().TranslateY, 10)
	if c.Cursor() != ebiten.CursorShapeMove {
		t.Errorf("Cursor = %v while dragging", c.Cursor())
	}
	c.PointerUp(630, 110)

	if clicks != 0 {
		t.Error("drag dispatched a click")
	}
}

func TestDragWithoutZoomDoesNotPan(t *testing.T) {
	c := newTestCanvas(t, Options{}, sampleTech())
	c.PointerDown(600, 100)
	c.PointerMove(700, 200)
	c.PointerUp(700, 200)
	if c.Camera().TranslateX != 0 || c.Camera().TranslateY != 0 {
		t.Error("camera panned with zoom disabled")
	}
}

func TestWheelZoomsAroundCursor(t *testing.T) {
	c := newTestCanvas(t, Options{Zoom: true}, sampleTech())
	c.Wheel(600, 100, 1)
	assertNear(t, "Scale", c.Camera().Scale, 1.1)
	sx, sy := c.WorldToScreen(LayerPoints, 600, 100)
	if !approxEqual(sx, 600, 1e-6) || !approxEqual(sy, 100, 1e-6) {
		t.Errorf("point under cursor moved to (%v, %v)", sx, sy)
	}
	if c.HoverState().Point != "DDD" {
		t.Errorf("hover after zoom = %+v", c.HoverState())
	}

	c.Wheel(600, 100, 100)
	assertNear(t, "max Scale", c.Camera().Scale, 5)
	c.Wheel(600, 100, -1000)
	assertNear(t, "min Scale", c.Camera().Scale, 0.1)
}

func TestWheelIgnoredWithoutZoom(t *testing.T) {
	c := newTestCanvas(t, Options{}, sampleTech())
	renders := c.RenderCount()
	c.Wheel(600, 100, 3)
	if c.Camera().Scale != 1 || c.RenderCount() != renders {
		t.Error("wheel zoomed with zoom disabled")
	}
}

func TestWheelZoomsAroundCursorWithParallax(t *testing.T) {
	c := newTestCanvas(t, Options{Zoom: true, ParallaxLayers: 2}, sampleTech())
	c.PointerMove(0, 0)
	for i := 0; i < 5; i++ {
		_ = c.Update()
	}
	if !c.Animating() || c.Parallax().Offset(LayerPoints) == (Vec2{}) {
		t.Fatal("parallax offset not in flight")
	}

	const x, y = 640, 300
	wx, wy := c.ScreenToWorld(LayerPoints, x, y)
	c.Wheel(x, y, 1)
	assertNear(t, "Scale", c.Camera().Scale, 1.1)
	gx, gy := c.ScreenToWorld(LayerPoints, x, y)
	if !approxEqual(gx, wx, 1e-6) || !approxEqual(gy, wy, 1e-6) {
		t.Errorf("world point under cursor moved from (%v, %v) to (%v, %v)", wx, wy, gx, gy)
	}
}

func TestOccluderHidesCanvas(t *testing.T) {
	c := newTestCanvas(t, Options{}, sampleTech())
	if !c.pointerInside(600, 100) {
		t.Fatal("point inside surface reported outside")
	}
	c.SetOccluder(func(x, y float64) bool { return x >= 500 && y <= 300 })
	if c.pointerInside(600, 100) {
		t.Error("occluded position reported inside")
	}
	if !c.pointerInside(600, 900) {
		t.Error("uncovered position reported outside")
	}
	if c.pointerInside(-1, 100) {
		t.Error("position off the surface reported inside")
	}
	c.SetOccluder(nil)
	if !c.pointerInside(600, 100) {
		t.Error("occluder not removed")
	}
}
