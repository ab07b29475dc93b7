package elements

import (
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Style is the per-element paint delegate. Kinds that do not override paint
// get Style.Paint.
type Style struct {
	Background  color.Color // nil: no fill
	BorderColor color.Color // nil: no border
	Color       color.Color // text color
	FontSize    float64     // 0: fixed 7x13 face

	faces faceCache
}

func newStyle(faces faceCache) *Style {
	return &Style{Color: color.Black, faces: faces}
}

func isStyleAttribute(name string) bool {
	switch name {
	case "background", "color", "bordercolor", "fontsize":
		return true
	}
	return false
}

func (s *Style) apply(name, value string) error {
	if name == "fontsize" {
		f, err := parseFloat(value)
		if err != nil {
			return err
		}
		s.FontSize = max(f, 0)
		return nil
	}
	c, err := parseColor(value)
	if err != nil {
		return err
	}
	switch name {
	case "background":
		s.Background = c
	case "color":
		s.Color = c
	case "bordercolor":
		s.BorderColor = c
	}
	return nil
}

// Paint fills the background and strokes the border, when set.
func (s *Style) Paint(dc *gg.Context) {
	w, h := float64(dc.Width()), float64(dc.Height())
	if s.Background != nil {
		dc.SetColor(s.Background)
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
	}
	if s.BorderColor != nil {
		dc.SetColor(s.BorderColor)
		dc.SetLineWidth(1)
		dc.DrawRectangle(0.5, 0.5, w-1, h-1)
		dc.Stroke()
	}
}

// Face returns the font face used for text drawing and measurement.
func (s *Style) Face() font.Face {
	return s.faces.face(s.FontSize)
}

// MeasureText returns the advance width of text in whole pixels.
func (s *Style) MeasureText(text string) int {
	return font.MeasureString(s.Face(), text).Ceil()
}

// regularFont is parsed once and only read afterwards.
var regularFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

// faceCache holds goregular faces by size. A truetype face reuses its glyph
// buffer between calls, so every Document keeps its own cache and uses it
// from its update loop only.
type faceCache map[float64]font.Face

// face returns the fixed basic face for size 0 and a goregular face
// otherwise. A nil cache builds a fresh face on every call.
func (c faceCache) face(size float64) font.Face {
	if size <= 0 {
		return basicfont.Face7x13
	}
	if f, ok := c[size]; ok {
		return f
	}
	ttf, err := regularFont()
	if err != nil {
		return basicfont.Face7x13
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: size})
	if c != nil {
		c[size] = face
	}
	return face
}
