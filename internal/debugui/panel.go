// Package debugui provides an on-screen panel for tuning canvas parameters
// live over a techcanvas.DebugBus.
package debugui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/techcanvas"
)

// steps is the amount one click on - or + changes each parameter by.
var steps = map[string]float64{
	"parallaxStrength": 0.01,
	"pointRadius":      1,
	"stageStep":        10,
	"depthStep":        10,
	"minHitRadius":     1,
	"easeFactor":       0.01,
}

var (
	colorPanel      = color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 220}
	colorButton     = color.NRGBA{R: 0x33, G: 0x41, B: 0x55, A: 255}
	colorButtonOver = color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 255}
	colorText       = color.NRGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 255}
)

// Panel mirrors the tunable parameters of whatever listens on the bus. It
// learns the current values from DebugSnapshot events and changes them by
// publishing DebugSet and DebugReset.
type Panel struct {
	bus     *techcanvas.DebugBus
	handle  techcanvas.CallbackHandle
	values  map[string]float64
	visible bool

	ui     *ebitenui.UI
	labels map[string]*widget.Text
	bounds func() image.Rectangle
}

// New builds the panel and subscribes it to bus. The panel starts hidden.
func New(bus *techcanvas.DebugBus) (*Panel, error) {
	p := newPanel(bus)
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("load panel font: %w", err)
	}
	var face text.Face = &text.GoTextFace{Source: src, Size: 13}
	p.Refresh()
	p.build(&face)
	return p, nil
}

func newPanel(bus *techcanvas.DebugBus) *Panel {
	p := &Panel{bus: bus, values: map[string]float64{}}
	p.handle = bus.Subscribe(p.handleEvent)
	return p
}

func (p *Panel) handleEvent(evt techcanvas.DebugEvent) {
	snap, ok := evt.(techcanvas.DebugSnapshot)
	if !ok {
		return
	}
	maps.Copy(p.values, snap.Values)
	for key, label := range p.labels {
		label.Label = formatValue(key, p.values[key])
	}
}

func formatValue(key string, v float64) string {
	return fmt.Sprintf("%-17s %8.3f", key, v)
}

// Values returns a copy of the last values received.
func (p *Panel) Values() map[string]float64 {
	return maps.Clone(p.values)
}

// Refresh asks the bus listeners for their current values.
func (p *Panel) Refresh() {
	p.bus.Publish(techcanvas.DebugRequest{})
}

// Nudge changes key by dir steps and refreshes. Keys the panel has not yet
// seen in a snapshot are ignored.
func (p *Panel) Nudge(key string, dir int) {
	v, ok := p.values[key]
	if !ok {
		return
	}
	p.bus.Publish(techcanvas.DebugSet{Values: map[string]float64{key: v + float64(dir)*steps[key]}})
	p.Refresh()
}

// Reset asks the listeners to restore their defaults.
func (p *Panel) Reset() {
	p.bus.Publish(techcanvas.DebugReset{})
	p.Refresh()
}

// Toggle shows or hides the panel.
func (p *Panel) Toggle() {
	p.visible = !p.visible
	if p.visible {
		p.Refresh()
	}
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.visible
}

// Contains reports whether the screen position (x, y) is over the visible
// panel. Hosts use it to keep clicks on the panel away from the canvas.
func (p *Panel) Contains(x, y float64) bool {
	if !p.visible || p.bounds == nil {
		return false
	}
	return image.Pt(int(x), int(y)).In(p.bounds())
}

// rowKeys returns the parameters to show: those in the last snapshot, or
// every known key before one has arrived.
func (p *Panel) rowKeys() []string {
	if len(p.values) == 0 {
		return techcanvas.ParamKeys()
	}
	return slices.Sorted(maps.Keys(p.values))
}

// Update processes panel input. Call it from the host game's Update.
func (p *Panel) Update() {
	if p.visible && p.ui != nil {
		p.ui.Update()
	}
}

// Draw renders the panel on top of screen.
func (p *Panel) Draw(screen *ebiten.Image) {
	if p.visible && p.ui != nil {
		p.ui.Draw(screen)
	}
}

// Close unsubscribes the panel from the bus.
func (p *Panel) Close() {
	p.handle.Remove()
}

func (p *Panel) build(face *text.Face) {
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(colorButton),
		Hover:   imageui.NewNineSliceColor(colorButtonOver),
		Pressed: imageui.NewNineSliceColor(colorButtonOver),
	}
	btnText := &widget.ButtonTextColor{Idle: colorText}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(colorPanel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 14, Right: 14}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Parameters (F1)", face, colorText),
	))

	keys := p.rowKeys()
	p.labels = make(map[string]*widget.Text, len(keys))
	for _, key := range keys {
		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
		)
		label := widget.NewText(
			widget.TextOpts.Text(formatValue(key, p.values[key]), face, colorText),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(200, 0),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
		)
		p.labels[key] = label
		row.AddChild(label)
		row.AddChild(p.stepButton("-", key, -1, face, btnImg, btnText))
		row.AddChild(p.stepButton("+", key, 1, face, btnImg, btnText))
		panel.AddChild(row)
	}

	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text("Reset", face, btnText),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			p.Reset()
		}),
	))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	p.ui = &ebitenui.UI{Container: root}
	p.bounds = func() image.Rectangle { return panel.GetWidget().Rect }
}

func (p *Panel) stepButton(label, key string, dir int, face *text.Face, img *widget.ButtonImage, txt *widget.ButtonTextColor) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, face, txt),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(28, 22)),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			p.Nudge(key, dir)
		}),
	)
}
