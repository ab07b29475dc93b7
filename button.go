package elements

import (
	"github.com/fogleman/gg"
	"github.com/tanema/gween/ease"
)

const (
	buttonPadding       = 30
	buttonRadius        = 15
	buttonFeedbackTime  = 0.5 // seconds
	buttonPressedShade  = 0.85
	buttonDefaultShade  = 0xaa
	buttonBorderShade   = 0x11
	labelBaselineOffset = 4
)

func buttonInit(e *Element) {
	e.cursor = "pointer"
	e.position = PositionInline
	e.On(EventMouseUp, func(ev *Event) {
		ev.StopPropagation()
		e.pressFeedback()
	})
}

// pressFeedback dips the button shade and eases it back.
func (e *Element) pressFeedback() {
	if e.tween != nil {
		e.tween.Done = true
	}
	e.press = 0
	e.tween = NewTween(e, &e.press, 1, buttonFeedbackTime, ease.OutBack)
	e.doc.Animate(e.tween)
	e.RequestPaint()
}

func buttonTextChanged(e *Element, text string) {
	e.SetSize(e.Style.MeasureText(text)+buttonPadding, e.height)
}

func buttonPaint(e *Element, dc *gg.Context) {
	w, h := float64(e.width), float64(e.height)
	r := min(buttonRadius, w/2, h/2)

	if e.Style.Background != nil {
		dc.SetColor(e.Style.Background)
	} else {
		shade := int(buttonDefaultShade * (buttonPressedShade + (1-buttonPressedShade)*clamp01(e.press)))
		dc.SetRGB255(shade, shade, shade)
	}
	dc.DrawRoundedRectangle(0, 0, w, h, r)
	dc.Fill()

	dc.SetRGB255(buttonBorderShade, buttonBorderShade, buttonBorderShade)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(0.5, 0.5, w-1, h-1, r)
	dc.Stroke()

	dc.SetColor(e.Style.Color)
	dc.SetFontFace(e.Style.Face())
	dc.DrawStringAnchored(e.textValue, w/2, h/2+labelBaselineOffset, 0.5, 0)
}
