package techcanvas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// ShowFPS turns on the debug overlay.
	ShowFPS bool
}

// Run opens a window and runs c as the game until the window is closed. The
// canvas is closed when Run returns.
func Run(c *Canvas, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.ShowFPS {
		c.SetDebugMode(true)
	}
	defer c.Close()

	if err := ebiten.RunGame(c); err != nil {
		return fmt.Errorf("run canvas: %w", err)
	}
	return nil
}
