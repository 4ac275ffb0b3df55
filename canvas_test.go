package techcanvas

import "testing"

// newTestCanvas returns a canvas sized to the full default world with the
// camera reset so screen coordinates equal world coordinates.
func newTestCanvas(t *testing.T, opts Options, techs ...Technology) *Canvas {
	t.Helper()
	opts.ManualInput = true
	c := NewCanvas(opts)
	c.Resize(2200, 1000)
	c.camera.TranslateX, c.camera.TranslateY = 0, 0
	c.SetTechnologies(techs)
	t.Cleanup(c.Close)
	return c
}

func sampleTech() Technology {
	return Technology{Title: "DDD", Stage: "architecture", Depth: 5, Mastery: 0.5}
}

func TestNewCanvasDefaults(t *testing.T) {
	c := NewCanvas(Options{})
	if c.Params() != DefaultParams() {
		t.Errorf("Params = %+v, want DefaultParams", c.Params())
	}
	if c.Catalog().Len() != 10 {
		t.Errorf("catalog Len = %d, want 10", c.Catalog().Len())
	}
	if c.Parallax().Len() != 0 {
		t.Errorf("parallax layers = %d, want 0", c.Parallax().Len())
	}
	if c.opts.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q", c.opts.ScreenshotDir)
	}

	fit := NewCanvas(Options{Fit: true})
	if fit.Params() != FitParams() {
		t.Errorf("fit Params = %+v, want FitParams", fit.Params())
	}
}

func TestCanvasEmptyBeforeResize(t *testing.T) {
	c := NewCanvas(Options{ManualInput: true})
	c.SetTechnologies([]Technology{sampleTech()})
	if n := len(c.Commands()); n != 0 {
		t.Errorf("commands before resize = %d, want 0", n)
	}
}

func TestResizeCentersContentOnce(t *testing.T) {
	c := NewCanvas(Options{ManualInput: true})
	c.Resize(800, 600)
	mid := c.WorldLayout().ContentRect().Center()
	sx, sy := c.WorldToScreen(LayerPoints, mid.X, mid.Y)
	assertNear(t, "sx", sx, 400)
	assertNear(t, "sy", sy, 300)

	c.Camera().Pan(10, 0)
	c.Resize(1024, 768)
	sx2, _ := c.WorldToScreen(LayerPoints, mid.X, mid.Y)
	assertNear(t, "sx after resize", sx2, 410)
}

func TestResizeIgnoresInvalidSize(t *testing.T) {
	c := NewCanvas(Options{ManualInput: true})
	c.Resize(800, 600)
	renders := c.RenderCount()
	c.Resize(0, 600)
	c.Resize(800, -1)
	c.Resize(800, 600)
	if c.RenderCount() != renders {
		t.Errorf("RenderCount = %d, want %d", c.RenderCount(), renders)
	}
	if c.Surface() != (Rect{Width: 800, Height: 600}) {
		t.Errorf("Surface = %v", c.Surface())
	}
}

func TestFitModeTracksSurface(t *testing.T) {
	c := NewCanvas(Options{Fit: true, ManualInput: true})
	c.Resize(1100, 640)
	if !approxEqual(c.WorldLayout().StageStep, 100, epsilon) {
		t.Errorf("StageStep = %v, want 100", c.WorldLayout().StageStep)
	}
	c.Resize(2100, 640)
	if !approxEqual(c.WorldLayout().StageStep, 200, epsilon) {
		t.Errorf("StageStep after resize = %v, want 200", c.WorldLayout().StageStep)
	}
	if c.FocusStage("architecture") {
		t.Error("FocusStage succeeded in fit mode")
	}
}

func TestSetTechnologiesCopies(t *testing.T) {
	techs := []Technology{sampleTech()}
	c := newTestCanvas(t, Options{}, techs...)
	techs[0].Title = "changed"
	if got := c.Technologies()[0].Title; got != "DDD" {
		t.Errorf("Title = %q, want DDD", got)
	}
}

func TestSetTechnologiesClearsStaleHover(t *testing.T) {
	c := newTestCanvas(t, Options{}, sampleTech())
	c.PointerMove(600, 100)
	if c.HoverState().Point != "DDD" {
		t.Fatalf("hover = %+v", c.HoverState())
	}
	c.SetTechnologies(nil)
	if c.HoverState() != (HoverState{}) {
		t.Errorf("hover = %+v after data removed", c.HoverState())
	}
	if p, _ := c.Hovered(); p != nil {
		t.Errorf("Hovered point = %+v, want nil", p)
	}
}

func TestFocusStage(t *testing.T) {
	c := newTestCanvas(t, Options{})
	if c.FocusStage("nope") {
		t.Error("FocusStage(nope) = true")
	}
	if !c.FocusStage("architecture") {
		t.Fatal("FocusStage(architecture) = false")
	}
	for i := 0; i < 200 && c.Animating(); i++ {
		if err := c.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if c.Animating() {
		t.Fatal("focus animation did not finish")
	}
	mid := c.WorldLayout().StageOrigin(2) + c.WorldLayout().StageStep/2
	cy := c.WorldLayout().ContentRect().Center().Y
	sx, sy := c.WorldToScreen(LayerStages, mid, cy)
	if !approxEqual(sx, 1100, 1e-2) || !approxEqual(sy, 500, 1e-2) {
		t.Errorf("focused stage at (%v, %v), want (1100, 500)", sx, sy)
	}
}

func TestResetView(t *testing.T) {
	c := newTestCanvas(t, Options{Zoom: true})
	c.Wheel(300, 300, 5)
	c.ResetView()
	for i := 0; i < 200 && c.Animating(); i++ {
		_ = c.Update()
	}
	if !approxEqual(c.Camera().Scale, 1, 1e-3) {
		t.Errorf("Scale = %v, want 1", c.Camera().Scale)
	}
}

func TestCloseStopsEverything(t *testing.T) {
	bus := NewDebugBus()
	c := newTestCanvas(t, Options{Bus: bus, ParallaxLayers: 3}, sampleTech())
	fired := 0
	c.OnHoverChange(func(HoverContext) { fired++ })
	c.PointerMove(10, 10)
	if !c.Animating() {
		t.Fatal("parallax not animating after pointer move")
	}

	c.Close()
	if bus.Subscribers() != 0 {
		t.Errorf("Subscribers = %d after Close, want 0", bus.Subscribers())
	}
	if c.Animating() {
		t.Error("still animating after Close")
	}
	renders := c.RenderCount()
	c.PointerMove(600, 100)
	_ = c.Update()
	bus.Publish(DebugSet{Values: map[string]float64{"pointRadius": 30}})
	if c.RenderCount() != renders {
		t.Error("canvas rendered after Close")
	}
	if fired != 0 {
		t.Errorf("hover callback fired %d times after Close", fired)
	}
	c.Close()
}

func TestPartialParamsKeepGeometry(t *testing.T) {
	c := newTestCanvas(t, Options{Zoom: true, Params: Params{ParallaxStrength: 0.05}}, sampleTech())
	if got := c.Params().ParallaxStrength; got != 0.05 {
		t.Errorf("ParallaxStrength = %v, want 0.05", got)
	}
	c.Wheel(600, 100, -1)
	if s := c.Camera().Scale; s <= 0 {
		t.Fatalf("Scale = %v after wheel", s)
	}
	sx, sy := c.WorldToScreen(LayerPoints, 600, 100)
	if got := c.HitTest(sx, sy); got.Kind != HitPoint {
		t.Errorf("HitTest at point after zoom = %+v", got.Hover())
	}

	c.SetParams(Params{PointRadius: 6})
	if p := c.Params(); p.PointRadius != 6 || p.StageStep != DefaultParams().StageStep {
		t.Errorf("SetParams partial = %+v", p)
	}
}
