package elements

import "github.com/fogleman/gg"

const sectionLabelSize = 20

// sectionInit picks the fill color once per instance from the document RNG.
// Seed the document (Config.Seed) for reproducible colors.
func sectionInit(e *Element) {
	between := func(lo, hi int) uint8 {
		return uint8(lo + e.doc.rng.IntN(hi-lo))
	}
	e.fill = [4]uint8{between(70, 100), between(120, 200), between(140, 210), 204}
}

// FillColor returns the generated section fill as r, g, b, a.
func (e *Element) FillColor() (r, g, b, a uint8) {
	return e.fill[0], e.fill[1], e.fill[2], e.fill[3]
}

func sectionPaint(e *Element, dc *gg.Context) {
	w, h := float64(e.width), float64(e.height)
	dc.SetRGBA255(int(e.fill[0]), int(e.fill[1]), int(e.fill[2]), int(e.fill[3]))
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	dc.SetRGB255(0, 255, 255)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, w-1, h-1)
	dc.Stroke()

	if label := e.sectionLabel(); label != "" {
		dc.SetRGB(0, 0, 0)
		dc.SetFontFace(e.doc.faces.face(sectionLabelSize))
		dc.DrawStringAnchored(label, w/2, h-20, 0.5, 0)
	}
}

// sectionLabel prefers a label set through SetAttribute over the declared one.
func (e *Element) sectionLabel() string {
	if v, ok := e.computed["label"]; ok {
		return v
	}
	v, _ := e.attributes.Get("label")
	return v
}
