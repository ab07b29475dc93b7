package elements

import "github.com/fogleman/gg"

func blockInit(e *Element) {
	e.position = PositionInline
	e.staticRight = true
	e.right = 0
}

// blockMount stretches the block across its parent.
func blockMount(e *Element) {
	if p := e.Parent(); p != nil {
		e.SetSize(p.width, e.height)
	}
}

func blockTextChanged(e *Element, text string) {
	e.SetSize(e.Style.MeasureText(text), e.height)
}

func blockPaint(e *Element, dc *gg.Context) {
	e.Style.Paint(dc)
	dc.SetColor(e.Style.Color)
	dc.SetFontFace(e.Style.Face())
	dc.DrawString(e.textValue, 0, float64(e.height)/2+labelBaselineOffset)
}
