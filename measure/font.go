// Package measure provides a concrete kelp.MeasureFunc backed by real
// TrueType font metrics, the engine's own demonstration of the Measure
// callback contract (spec.md §6). It is an optional collaborator package,
// not part of the layout core: kelp never imports it.
package measure

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const defaultDPI = 72

// Font wraps a TrueType font with the pixel-accurate metrics a text leaf
// needs to answer ComputeSize queries: glyph advance widths and line
// height. Adapted from the teacher's render.Font, trimmed to the
// measurement half of its surface (DrawString and its canvas-drawing
// siblings have no home in a parsing/painting-free layout core, per
// spec.md §1 Non-goals).
type Font struct {
	tt     *truetype.Font
	sizePt float64
	dpi    float64
}

// LoadFont loads a .ttf file from disk and returns a Font at the given
// point size. 1pt = 1/72 inch; at 72 DPI, 1pt = 1px.
func LoadFont(path string, sizePt float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadFontFromBytes(data, sizePt)
}

// LoadFontFromBytes parses a TrueType font from memory.
func LoadFontFromBytes(data []byte, sizePt float64) (*Font, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	if sizePt <= 0 {
		sizePt = 0.01
	}
	return &Font{tt: tt, sizePt: sizePt, dpi: defaultDPI}, nil
}

// MustLoadFont loads a .ttf font from disk and panics on error. Intended
// for static initialization at package level, matching the teacher's
// MustLoadFont convention.
func MustLoadFont(path string, sizePt float64) *Font {
	f, err := LoadFont(path, sizePt)
	if err != nil {
		panic(err)
	}
	return f
}

// SetDPI sets the font's DPI scaling; values <= 0 reset to 72.
func (f *Font) SetDPI(dpi float64) *Font {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	f.dpi = dpi
	return f
}

func (f *Font) face() font.Face {
	key := fontCacheKey(f.tt, f.sizePt, f.dpi)
	if cached, ok := fontCache.get(key); ok {
		return cached
	}
	face := truetype.NewFace(f.tt, &truetype.Options{
		Size:    f.sizePt,
		DPI:     f.dpi,
		Hinting: font.HintingNone,
	})
	fontCache.put(key, face)
	return face
}

// LineHeightPx returns the font's line height (ascent + descent + leading)
// in pixels at the configured size and DPI.
func (f *Font) LineHeightPx() float32 {
	m := f.face().Metrics()
	return float32(m.Height >> 6)
}

// MeasureString returns the pixel advance width of a single line of text,
// with no wrapping applied.
func (f *Font) MeasureString(s string) float32 {
	if s == "" {
		return 0
	}
	adv := font.MeasureString(f.face(), s)
	return float32(adv >> 6)
}
