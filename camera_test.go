package techcanvas

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestCameraDefaults(t *testing.T) {
	cam := newCamera(0.1, 5)
	if cam.Scale != 1 || cam.TranslateX != 0 || cam.TranslateY != 0 {
		t.Errorf("camera = %+v, want unit scale and no translation", cam)
	}
	if cam.Animating() {
		t.Error("new camera is animating")
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := newCamera(0.1, 5)
	cam.Scale = 2.5
	cam.TranslateX, cam.TranslateY = -340, 125
	offsets := []Vec2{{}, {X: 3, Y: -2}, {X: -12.5, Y: 7.25}}
	points := []Vec2{{}, {X: 600, Y: 100}, {X: -50, Y: 1234.5}}

	for _, off := range offsets {
		for _, p := range points {
			sx, sy := cam.WorldToScreen(off, p.X, p.Y)
			wx, wy := cam.ScreenToWorld(off, sx, sy)
			if !approxEqual(wx, p.X, 1e-6) || !approxEqual(wy, p.Y, 1e-6) {
				t.Errorf("offset %v: round trip of %v = (%v, %v)", off, p, wx, wy)
			}
		}
	}
}

func TestCameraParallaxShiftsScreen(t *testing.T) {
	cam := newCamera(0.1, 5)
	sx0, sy0 := cam.WorldToScreen(Vec2{}, 100, 100)
	sx1, sy1 := cam.WorldToScreen(Vec2{X: 5, Y: -3}, 100, 100)
	assertNear(t, "dx", sx1-sx0, 5)
	assertNear(t, "dy", sy1-sy0, -3)
}

func TestCameraZoomAtKeepsCursorPoint(t *testing.T) {
	cam := newCamera(0.1, 5)
	cam.TranslateX, cam.TranslateY = 40, -20
	off := Vec2{X: 2, Y: 1}
	wx, wy := cam.ScreenToWorld(off, 300, 200)

	if !cam.ZoomAt(off, 300, 200, 1.1) {
		t.Fatal("ZoomAt reported no change")
	}
	assertNear(t, "Scale", cam.Scale, 1.1)
	sx, sy := cam.WorldToScreen(off, wx, wy)
	if !approxEqual(sx, 300, 1e-6) || !approxEqual(sy, 200, 1e-6) {
		t.Errorf("cursor point moved to (%v, %v)", sx, sy)
	}
}

func TestCameraZoomClamped(t *testing.T) {
	cam := newCamera(0.1, 5)
	cam.ZoomAt(Vec2{}, 0, 0, 1000)
	assertNear(t, "Scale", cam.Scale, 5)
	if cam.ZoomAt(Vec2{}, 0, 0, 2) {
		t.Error("ZoomAt at max scale reported a change")
	}
	cam.ZoomAt(Vec2{}, 0, 0, 1e-6)
	assertNear(t, "Scale", cam.Scale, 0.1)
	if cam.ZoomAt(Vec2{}, 0, 0, 0) {
		t.Error("ZoomAt with zero factor reported a change")
	}
}

func TestCameraPan(t *testing.T) {
	cam := newCamera(0.1, 5)
	cam.Pan(10, -5)
	cam.Pan(2, 2)
	assertNear(t, "TranslateX", cam.TranslateX, 12)
	assertNear(t, "TranslateY", cam.TranslateY, -3)
}

func TestCameraCenterOn(t *testing.T) {
	cam := newCamera(0.1, 5)
	cam.Viewport = Rect{Width: 800, Height: 600}
	cam.Scale = 2
	cam.CenterOn(Rect{X: 100, Y: 100, Width: 200, Height: 100})
	sx, sy := cam.WorldToScreen(Vec2{}, 200, 150)
	assertNear(t, "sx", sx, 400)
	assertNear(t, "sy", sy, 300)
}

func TestCameraAnimateToFinishes(t *testing.T) {
	cam := newCamera(0.1, 5)
	cam.Viewport = Rect{Width: 800, Height: 600}
	cam.AnimateTo(100, 100, 2, 0.5, ease.Linear)
	if !cam.Animating() {
		t.Fatal("AnimateTo did not start an animation")
	}

	for i := 0; i < 100 && cam.Animating(); i++ {
		cam.update(1.0 / 60)
	}
	if cam.Animating() {
		t.Fatal("animation did not finish")
	}
	if !approxEqual(cam.Scale, 2, 1e-3) {
		t.Errorf("Scale = %v, want 2", cam.Scale)
	}
	if !approxEqual(cam.TranslateX, 200, 1e-3) || !approxEqual(cam.TranslateY, 100, 1e-3) {
		t.Errorf("translate = (%v, %v), want (200, 100)", cam.TranslateX, cam.TranslateY)
	}
}

func TestCameraPanCancelsAnimation(t *testing.T) {
	cam := newCamera(0.1, 5)
	cam.AnimateTo(0, 0, 3, 1, nil)
	cam.Pan(1, 1)
	if cam.Animating() {
		t.Error("Pan did not cancel the animation")
	}
	if cam.update(1.0 / 60) {
		t.Error("update moved a camera with no animation")
	}
}
