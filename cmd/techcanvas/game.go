package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/phanxgames/techcanvas"
	"github.com/phanxgames/techcanvas/internal/content"
	"github.com/phanxgames/techcanvas/internal/debugui"
)

// game hosts the canvas together with the tuning panel and the dataset
// watcher.
type game struct {
	*techcanvas.Canvas
	panel *debugui.Panel
	log   *zap.Logger

	watcher  *content.Watcher
	dataPath string
}

func (g *game) bindCallbacks() {
	g.SetOccluder(g.panel.Contains)
	g.OnStageClick(func(ctx techcanvas.StageClickContext) {
		g.log.Debug("focus stage", zap.String("stage", ctx.Stage.ID))
		g.FocusStage(ctx.Stage.ID)
	})
	g.OnPointClick(func(ctx techcanvas.PointClickContext) {
		t := ctx.Technology
		g.log.Info("technology",
			zap.String("title", t.Title),
			zap.String("stage", t.Stage),
			zap.Float64("depth", t.Depth),
			zap.Float64("mastery", t.Mastery),
			zap.Strings("tags", t.Tags))
	})
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.panel.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ResetView()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.Screenshot("manual")
	}
	g.pollWatcher()
	g.panel.Update()
	return g.Canvas.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.Canvas.Draw(screen)
	g.panel.Draw(screen)
}

// pollWatcher reloads the dataset once for any number of pending change
// notifications. It never blocks the game loop.
func (g *game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
drain:
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			changed = true
		default:
			break drain
		}
	}
	if !changed {
		return
	}

	ds, err := content.Load(g.dataPath)
	if err != nil {
		g.log.Warn("reload dataset", zap.Error(err))
		return
	}
	if err := ds.Validate(); err != nil {
		g.log.Warn("dataset has problems", zap.Error(err))
	}
	g.SetTechnologies(ds.Technologies)
	g.log.Info("dataset reloaded", zap.Int("technologies", len(ds.Technologies)))
}
