package techcanvas

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Screenshot queues a labeled capture of the canvas surface, taken at the
// end of the next Draw. Files go to Options.ScreenshotDir and are named
// by timestamp, a running counter and the label.
func (c *Canvas) Screenshot(label string) {
	c.screenshotQueue = append(c.screenshotQueue, label)
}

// flushScreenshots reads back the canvas surface once and writes it for
// every queued label. Called at the end of Canvas.Draw. Nothing is written
// while the surface is empty.
func (c *Canvas) flushScreenshots(screen *ebiten.Image) {
	if len(c.screenshotQueue) == 0 {
		return
	}
	defer func() { c.screenshotQueue = c.screenshotQueue[:0] }()

	area := c.captureArea(screen.Bounds())
	if area.Empty() {
		c.log.Warn("screenshot: empty surface", zap.Strings("labels", c.screenshotQueue))
		return
	}
	dir := c.opts.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.log.Warn("screenshot: create directory", zap.String("dir", dir), zap.Error(err))
		return
	}

	pixels := make([]byte, 4*area.Dx()*area.Dy())
	screen.SubImage(area).(*ebiten.Image).ReadPixels(pixels)
	img := straightAlpha(pixels, area.Dx(), area.Dy())

	stamp := time.Now().Format("20060102_150405")
	for _, label := range c.screenshotQueue {
		c.shots++
		name := fmt.Sprintf("%s_%03d_%s.png", stamp, c.shots, sanitizeLabel(label))
		path := filepath.Join(dir, name)
		if err := writePNG(path, img); err != nil {
			c.log.Warn("screenshot", zap.Error(err))
			continue
		}
		c.log.Info("screenshot saved", zap.String("path", path))
	}
}

// captureArea is the canvas surface clipped to the screen bounds.
func (c *Canvas) captureArea(screen image.Rectangle) image.Rectangle {
	s := c.surface
	r := image.Rect(int(s.X), int(s.Y), int(math.Ceil(s.X+s.Width)), int(math.Ceil(s.Y+s.Height)))
	return r.Intersect(screen)
}

// straightAlpha converts premultiplied RGBA pixels, as returned by
// ReadPixels, to an NRGBA image of the given size.
func straightAlpha(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	for px := img.Pix; len(px) >= 4; px = px[4:] {
		a := int(px[3])
		if a == 0 || a == 255 {
			continue
		}
		for ch := range 3 {
			px[ch] = uint8(min(int(px[ch])*255/a, 255))
		}
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
