package fontutil

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

func MonoFont() (*truetype.Font, error) {
	return FontsMan.Font(gomono.TTF)
}

// Size is in pixels.
func MonoFontFace(size float64) (font.Face, error) {
	f, err := MonoFont()
	if err != nil {
		return nil, err
	}
	opt := &truetype.Options{
		Size:    size,
		DPI:     72, // points==pixels
		Hinting: font.HintingFull,
	}
	return truetype.NewFace(f, opt), nil
}

//----------

var FontsMan = NewFontsManager()

//----------

// Parsed fonts are shared; faces are not (each face owns its glyph buffers).
type FontsManager struct {
	mu         sync.Mutex
	fontsCache map[string]*truetype.Font
}

func NewFontsManager() *FontsManager {
	fm := &FontsManager{}
	fm.ClearFontsCache()
	return fm
}

func (fm *FontsManager) ClearFontsCache() {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	fm.fontsCache = map[string]*truetype.Font{}
}

func (fm *FontsManager) Font(ttf []byte) (*truetype.Font, error) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	f, ok := fm.fontsCache[string(ttf)]
	if ok {
		return f, nil
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	fm.fontsCache[string(ttf)] = f
	return f, nil
}

//----------

// Width in pixels of the widest string.
func MaxWidth(face font.Face, strs ...string) int {
	w := fixed.Int26_6(0)
	for _, s := range strs {
		if w2 := font.MeasureString(face, s); w2 > w {
			w = w2
		}
	}
	return w.Ceil()
}
