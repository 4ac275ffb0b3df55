// Command techcanvas opens an interactive map of technologies placed by
// lifecycle stage and abstraction depth.
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/techcanvas"
	"github.com/phanxgames/techcanvas/internal/config"
	"github.com/phanxgames/techcanvas/internal/content"
	"github.com/phanxgames/techcanvas/internal/debugui"
	"github.com/phanxgames/techcanvas/internal/logging"
)

var (
	// Global flags
	configPath string
	dataPath   string
	scriptPath string
	debug      bool
	watch      bool
	zoom       bool
	fit        bool
	layers     int
	width      int
	height     int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "techcanvas",
	Short: "Interactive technology map by lifecycle stage and abstraction depth",
	Long: `techcanvas draws every technology in a dataset as a point positioned by the
lifecycle stage it belongs to (X axis) and its abstraction depth (Y axis).

Hover a point or stage to highlight it, click a stage to focus it, scroll to
zoom and drag to pan. F1 toggles the parameter panel, R resets the view.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(debug)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

var validateCmd = &cobra.Command{
	Use:   "validate [dataset]",
	Short: "Check a dataset for unknown stages, out-of-range values and duplicates",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataPath
		if len(args) == 1 {
			path = args[0]
		}
		ds, err := loadDataset(path)
		if err != nil {
			return err
		}
		if err := ds.Validate(); err != nil {
			return fmt.Errorf("dataset is invalid:\n%w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d technologies, %d stages: ok\n",
			len(ds.Technologies), len(ds.StagesOrDefault()))
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&dataPath, "data", "d", "", "dataset file or directory (default: bundled sample)")
	flags.BoolVar(&debug, "debug", false, "debug logging and on-screen stats")

	local := rootCmd.Flags()
	local.StringVar(&scriptPath, "script", "", "YAML test script to play back")
	local.BoolVarP(&watch, "watch", "w", false, "reload the dataset when it changes on disk")
	local.BoolVar(&zoom, "zoom", true, "enable wheel zoom and drag panning")
	local.BoolVar(&fit, "fit", false, "fit the layout to the window instead of a fixed world size")
	local.IntVar(&layers, "layers", 3, "parallax layers (0-4)")
	local.IntVar(&width, "width", 1280, "window width")
	local.IntVar(&height, "height", 800, "window height")

	rootCmd.AddCommand(validateCmd)
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Canvas.Data = dataPath
	}
	if flags.Changed("script") {
		cfg.Canvas.Script = scriptPath
	}
	if flags.Changed("watch") {
		cfg.Canvas.Watch = watch
	}
	if flags.Changed("zoom") {
		cfg.Canvas.Zoom = zoom
	}
	if flags.Changed("fit") {
		cfg.Canvas.Fit = fit
	}
	if flags.Changed("layers") {
		cfg.Canvas.ParallaxLayers = layers
	}
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if debug {
		cfg.Canvas.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config:\n%w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ds, err := loadDataset(cfg.Canvas.Data)
	if err != nil {
		return err
	}
	if err := ds.Validate(); err != nil {
		logger.Warn("dataset has problems", zap.Error(err))
	}

	bus := techcanvas.NewDebugBus()
	opts := cfg.Options()
	opts.Stages = ds.StagesOrDefault()
	opts.Logger = logger
	opts.Bus = bus
	canvas := techcanvas.NewCanvas(opts)
	canvas.SetTechnologies(ds.Technologies)

	if cfg.Canvas.Script != "" {
		data, err := os.ReadFile(cfg.Canvas.Script)
		if err != nil {
			return fmt.Errorf("load test script %s: %w", cfg.Canvas.Script, err)
		}
		runner, err := techcanvas.LoadTestScript(data)
		if err != nil {
			return err
		}
		canvas.SetTestRunner(runner)
	}

	panel, err := debugui.New(bus)
	if err != nil {
		return err
	}
	defer panel.Close()

	g := &game{Canvas: canvas, panel: panel, log: logger.Named("game")}
	if cfg.Canvas.Watch && cfg.Canvas.Data != "" {
		info, err := os.Stat(cfg.Canvas.Data)
		if err != nil {
			return fmt.Errorf("watch %s: %w", cfg.Canvas.Data, err)
		}
		w, err := content.NewWatcher(cfg.Canvas.Data, info.IsDir(), logger)
		if err != nil {
			return err
		}
		defer w.Close()
		g.watcher = w
		g.dataPath = cfg.Canvas.Data
	}
	g.bindCallbacks()

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	defer canvas.Close()

	logger.Info("starting",
		zap.Int("technologies", len(ds.Technologies)),
		zap.Int("stages", len(opts.Stages)),
		zap.Bool("zoom", opts.Zoom),
		zap.Int("parallaxLayers", opts.ParallaxLayers),
		zap.Bool("fit", opts.Fit))

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
