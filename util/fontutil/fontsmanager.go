package fontutil

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func DefaultFont() *Font {
	f, err := FontsMan.Font(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
}

func DefaultFontFace() *FontFace {
	f := DefaultFont()
	opt := opentype.FaceOptions{} // defaults: size=12, dpi=72, ~14px
	return f.FontFace(opt)
}

//----------

var FontsMan = NewFontsManager()

//----------

type FontsManager struct {
	fontsCache map[string]*Font
}

func NewFontsManager() *FontsManager {
	fm := &FontsManager{}
	fm.ClearFontsCache()
	return fm
}

func (fm *FontsManager) ClearFontsCache() {
	fm.fontsCache = map[string]*Font{}
}

func (fm *FontsManager) Font(ttf []byte) (*Font, error) {
	f, ok := fm.fontsCache[string(ttf)]
	if ok {
		return f, nil
	}
	f, err := NewFont(ttf)
	if err != nil {
		return nil, err
	}
	fm.fontsCache[string(ttf)] = f
	return f, nil
}

//----------

type Font struct {
	Font       *sfnt.Font
	facesCache map[opentype.FaceOptions]*FontFace
}

func NewFont(ttf []byte) (*Font, error) {
	font, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	f := &Font{Font: font}
	f.facesCache = map[opentype.FaceOptions]*FontFace{}
	return f, nil
}

func (f *Font) FontFace(opt opentype.FaceOptions) *FontFace {
	// avoid divide by zero; also ensure face.metrics() works
	if opt.Size == 0 {
		opt.Size = 12 // internal opentype default
	}
	if opt.DPI == 0 {
		opt.DPI = 72
	}

	ff, ok := f.facesCache[opt]
	if ok {
		return ff
	}
	face, err := opentype.NewFace(f.Font, &opt)
	if err != nil { // currently, no error is being returned
		panic(err)
	}
	ff = NewFontFace(face, opt.Size)
	f.facesCache[opt] = ff
	return ff
}

func (f *Font) FontFace2(size float64) *FontFace {
	return f.FontFace(opentype.FaceOptions{Size: size})
}

//----------

// Parses a user supplied truetype file (ex: label font given in the command line).
func LoadTrueTypeFace(filename string, size float64) (*FontFace, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	ttf, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("truetype: %v: %w", filename, err)
	}
	if size <= 0 {
		size = 12
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72})
	return NewFontFace(face, size), nil
}

//----------

// FontFace is the face used to measure text. Glyph advances are cached.
type FontFace struct {
	Face    font.Face
	Size    float64 // in points, readonly
	Metrics font.Metrics

	lineHeight fixed.Int26_6
}

func NewFontFace(face font.Face, size float64) *FontFace {
	face = NewAdvanceCache(face)
	ff := &FontFace{Face: face, Size: size}
	ff.Metrics = face.Metrics()
	ff.lineHeight = max(
		ff.Metrics.Ascent+ff.Metrics.Descent,
		ff.Metrics.Height)
	return ff
}

func (ff *FontFace) LineHeight() fixed.Int26_6 {
	return ff.lineHeight
}
func (ff *FontFace) LineHeightInt() int {
	return ff.LineHeight().Ceil()
}
func (ff *FontFace) LineHeightFloat() float64 {
	return float64(ff.LineHeight()) / 64
}
