package techcanvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Options configures a Canvas. The zero value gives the fixed-size layout
// with the default stages and no zoom or parallax.
type Options struct {
	// Params overrides the layout constants. Zero fields take their value
	// from DefaultParams, or FitParams when Fit is set.
	Params Params
	// Stages overrides the stage catalog. Nil means DefaultStages.
	Stages []Stage

	// Zoom enables wheel zoom and drag panning.
	Zoom bool
	// ParallaxLayers is the number of independently eased parallax layers,
	// 0 (disabled) through 4.
	ParallaxLayers int
	// Fit derives the stage and depth steps from the surface size instead
	// of using fixed world dimensions.
	Fit bool

	// ManualInput stops Update from reading mouse state from Ebitengine.
	// Input then only arrives through the Pointer* methods and injection.
	ManualInput bool

	// Debug enables per-frame stats logging and the on-screen overlay.
	Debug bool
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	// Logger receives diagnostics. Nil means zap.NewNop().
	Logger *zap.Logger
	// Bus, when set, is subscribed to for live parameter changes.
	Bus *DebugBus
}

// HoverState identifies what the pointer is over. Empty strings mean
// nothing is hovered.
type HoverState struct {
	Point string // Technology.Title
	Stage string // Stage.ID
}

// Canvas owns the view state, data and render output of the coordinate
// canvas. It implements ebiten.Game and can be run directly with Run or
// embedded by calling Update, Draw and Layout from a host game.
//
// A Canvas is not safe for concurrent use. All methods must be called from
// the game loop goroutine.
type Canvas struct {
	opts     Options
	log      *zap.Logger
	debug    bool
	catalog  *Catalog
	techs    []Technology
	params   Params
	defaults Params
	base     Params

	layout   Layout
	camera   *Camera
	parallax *Parallax
	anim     *frameTask

	surface  Rect
	centered bool

	hover   HoverState
	pointer pointerState
	cursor  ebiten.CursorShapeType

	// frame holds the per-layer transforms used by the last render. Hit
	// testing inverts these so it always matches what is on screen.
	frame    [layerCount][6]float64
	commands []RenderCommand
	renders  int
	faces    faceCache

	handlers  handlerRegistry
	busHandle CallbackHandle

	occluder        func(x, y float64) bool
	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string
	shots           int

	closed bool
}

// NewCanvas creates a canvas with the given options. The canvas draws
// nothing until it receives a non-zero size through Resize or Layout.
func NewCanvas(opts Options) *Canvas {
	base := DefaultParams()
	if opts.Fit {
		base = FitParams()
	}
	params := opts.Params.withDefaults(base)
	stages := opts.Stages
	if stages == nil {
		stages = DefaultStages()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Canvas{
		opts:     opts,
		log:      logger.Named("canvas"),
		debug:    opts.Debug,
		catalog:  NewCatalog(stages),
		params:   params,
		defaults: params,
		base:     base,
		camera:   newCamera(params.MinScale, params.MaxScale),
		parallax: newParallax(opts.ParallaxLayers),
		cursor:   ebiten.CursorShapeDefault,
	}
	if opts.ScreenshotDir == "" {
		c.opts.ScreenshotDir = "screenshots"
	}
	c.anim = newFrameTask(c.stepParallax)
	for i := range c.frame {
		c.frame[i] = identityTransform
	}
	c.layout = c.computeLayout()
	if opts.Bus != nil {
		c.busHandle = opts.Bus.Subscribe(c.handleDebugEvent)
	}
	return c
}

// Catalog returns the stage catalog.
func (c *Canvas) Catalog() *Catalog {
	return c.catalog
}

// Camera returns the canvas camera. Callers that modify it directly should
// call Invalidate afterwards.
func (c *Canvas) Camera() *Camera {
	return c.camera
}

// Parallax returns the parallax animator.
func (c *Canvas) Parallax() *Parallax {
	return c.parallax
}

// Params returns the current layout constants.
func (c *Canvas) Params() Params {
	return c.params
}

// WorldLayout returns the current world layout.
func (c *Canvas) WorldLayout() Layout {
	return c.layout
}

// Surface returns the drawing surface size.
func (c *Canvas) Surface() Rect {
	return c.surface
}

// Technologies returns the current data set. The returned slice MUST NOT be
// mutated.
func (c *Canvas) Technologies() []Technology {
	return c.techs
}

// SetTechnologies replaces the data set and re-renders. The slice is copied.
// Hover state for items that no longer resolve is cleared.
func (c *Canvas) SetTechnologies(techs []Technology) {
	c.techs = append([]Technology(nil), techs...)
	for _, t := range c.techs {
		if c.catalog.Index(t.Stage) < 0 {
			c.log.Warn("technology references unknown stage; it will not be drawn",
				zap.String("title", t.Title), zap.String("stage", t.Stage))
		}
	}
	if c.hover.Point != "" && c.findTechnology(c.hover.Point) < 0 {
		c.setHover(HoverState{Stage: c.hover.Stage})
	}
	c.render()
}

// findTechnology returns the index of the first drawable technology with
// the given title, or -1.
func (c *Canvas) findTechnology(title string) int {
	for i := range c.techs {
		if c.techs[i].Title == title && c.catalog.Index(c.techs[i].Stage) >= 0 {
			return i
		}
	}
	return -1
}

// Hovered returns copies of the hovered technology and stage, each nil when
// nothing of that kind is hovered.
func (c *Canvas) Hovered() (*Technology, *Stage) {
	var tech *Technology
	var stage *Stage
	if i := c.findTechnology(c.hover.Point); c.hover.Point != "" && i >= 0 {
		t := c.techs[i]
		tech = &t
	}
	if s, ok := c.catalog.ByID(c.hover.Stage); c.hover.Stage != "" && ok {
		stage = &s
	}
	return tech, stage
}

// HoverState returns the identities of the hovered point and stage.
func (c *Canvas) HoverState() HoverState {
	return c.hover
}

// RenderCount returns how many times the display list has been rebuilt.
func (c *Canvas) RenderCount() int {
	return c.renders
}

// Animating reports whether the parallax task or a camera tween is active.
func (c *Canvas) Animating() bool {
	return c.anim.Scheduled() || c.camera.Animating()
}

// SetDebugMode enables or disables per-frame stats logging and the
// on-screen overlay.
func (c *Canvas) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// Invalidate rebuilds the display list from the current state.
func (c *Canvas) Invalidate() {
	c.render()
}

// Update processes input, advances the parallax and camera animations and
// runs any attached test script. It implements ebiten.Game.
func (c *Canvas) Update() error {
	if c.closed {
		return nil
	}
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	if !c.processInjectedInput() && !c.opts.ManualInput {
		c.processInput()
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	if c.camera.update(dt) {
		c.render()
	}
	c.anim.tick()
	return nil
}

// Draw submits the current display list to screen. It implements
// ebiten.Game.
func (c *Canvas) Draw(screen *ebiten.Image) {
	if screen == nil || c.closed {
		return
	}
	c.submit(screen)
	if c.debug {
		c.drawDebugOverlay(screen)
	}
	c.flushScreenshots(screen)
}

// Layout reports the outside size as the screen size and resizes the
// canvas when it changes. It implements ebiten.Game.
func (c *Canvas) Layout(outsideWidth, outsideHeight int) (int, int) {
	c.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Resize sets the drawing surface size and re-renders. The first non-zero
// size centers the content in the viewport. Zero or negative sizes are
// ignored.
func (c *Canvas) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if c.surface.Width == width && c.surface.Height == height {
		return
	}
	c.surface = Rect{Width: width, Height: height}
	c.camera.Viewport = c.surface
	c.layout = c.computeLayout()
	if !c.centered {
		c.centered = true
		if !c.opts.Fit {
			c.camera.CenterOn(c.layout.ContentRect())
		}
	}
	c.render()
}

// FocusStage animates the camera so the given stage is centered. Reports
// false when the stage is unknown.
func (c *Canvas) FocusStage(id string) bool {
	i := c.catalog.Index(id)
	if i < 0 || c.opts.Fit {
		return false
	}
	mid := c.layout.StageOrigin(i) + c.layout.StageStep/2
	content := c.layout.ContentRect().Center()
	scale := c.camera.Scale
	if scale < 1 {
		scale = 1
	}
	c.camera.AnimateTo(mid, content.Y, scale, 0.6, nil)
	return true
}

// ResetView animates the camera back to unit scale with the content
// centered.
func (c *Canvas) ResetView() {
	content := c.layout.ContentRect().Center()
	c.camera.AnimateTo(content.X, content.Y, 1, 0.5, nil)
}

// Close cancels the parallax animation and camera tweens, unsubscribes
// from the debug bus and drops all registered callbacks. Update and Draw
// are no-ops afterwards.
func (c *Canvas) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.anim.Cancel()
	c.camera.anim = nil
	c.busHandle.Remove()
	c.busHandle = CallbackHandle{}
	c.handlers = handlerRegistry{}
	c.injectQueue = nil
	c.testRunner = nil
}

// computeLayout derives the world layout from params and surface size.
func (c *Canvas) computeLayout() Layout {
	return newLayout(c.params, c.catalog.Len(), c.opts.Fit, c.surface.Width, c.surface.Height)
}

// stepParallax is the parallax frame task: one easing step then a full
// re-render.
func (c *Canvas) stepParallax() bool {
	more := c.parallax.Step(c.params.EaseFactor)
	c.render()
	return more
}
