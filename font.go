package techcanvas

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
	fontErr    error
)

// loadFontSource parses the embedded Go Regular font once.
func loadFontSource() (*text.GoTextFaceSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if fontErr != nil {
			fontErr = fmt.Errorf("load label font: %w", fontErr)
		}
	})
	return fontSource, fontErr
}

// faceCache hands out faces keyed by size rounded to a quarter point, so
// continuous zooming does not create a face per frame.
type faceCache struct {
	faces map[int]*text.GoTextFace
}

// face returns a face for the given size, or nil when the font is
// unavailable or the size is too small to read.
func (fc *faceCache) face(size float64) *text.GoTextFace {
	if size < 1 || math.IsNaN(size) {
		return nil
	}
	src, err := loadFontSource()
	if err != nil {
		return nil
	}
	key := int(math.Round(size * 4))
	if f, ok := fc.faces[key]; ok {
		return f
	}
	if fc.faces == nil {
		fc.faces = make(map[int]*text.GoTextFace)
	}
	f := &text.GoTextFace{Source: src, Size: float64(key) / 4}
	fc.faces[key] = f
	return f
}
