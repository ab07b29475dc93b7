package elements

import "github.com/fogleman/gg"

// attrSetter reflects a raw attribute value onto a typed property.
type attrSetter func(e *Element, value string) error

// kindTable is the closed dispatch table for one Kind. A nil hook falls back
// to the base behavior.
type kindTable struct {
	name           string
	allowsChildren bool
	autonomous     bool
	// keepBuffer skips the paint cycle entirely; the owner draws into the
	// surface directly and the buffer is never cleared.
	keepBuffer bool
	// noSurface marks kinds that never allocate a drawing context.
	noSurface bool

	init        func(e *Element)
	paint       func(e *Element, dc *gg.Context)
	mount       func(e *Element)
	textChanged func(e *Element, text string)
	setters     map[string]attrSetter
}

var kinds [kindCount]kindTable

func init() {
	kinds = [kindCount]kindTable{
		KindElement: {name: "element", allowsChildren: true},
		KindText: {
			name:      "textnode",
			noSurface: true,
			mount:     textMount,
		},
		KindCanvas: {name: "canvas", allowsChildren: true, keepBuffer: true},
		KindButton: {
			name:           "uibutton",
			allowsChildren: true,
			init:           buttonInit,
			paint:          buttonPaint,
			textChanged:    buttonTextChanged,
		},
		KindSection: {
			name:           "section",
			allowsChildren: true,
			init:           sectionInit,
			paint:          sectionPaint,
		},
		KindBlock: {
			name:           "div",
			allowsChildren: true,
			init:           blockInit,
			paint:          blockPaint,
			mount:          blockMount,
			textChanged:    blockTextChanged,
		},
		KindImage: {
			name:           "img",
			allowsChildren: true,
			init:           imageInit,
			paint:          imagePaint,
			setters:        map[string]attrSetter{"src": setImageSrc},
		},
	}
}

// commonSetters is the allow-list shared by every kind. Kind-specific setters
// take precedence.
var commonSetters = map[string]attrSetter{
	"height": func(e *Element, v string) error {
		n, err := parseInt(v)
		if err != nil {
			return err
		}
		e.SetSize(e.width, n)
		return nil
	},
	"width": func(e *Element, v string) error {
		n, err := parseInt(v)
		if err != nil {
			return err
		}
		e.SetSize(n, e.height)
		return nil
	},
	"left": func(e *Element, v string) error {
		n, err := parseInt(v)
		if err != nil {
			return err
		}
		e.left = n
		return nil
	},
	"top": func(e *Element, v string) error {
		n, err := parseInt(v)
		if err != nil {
			return err
		}
		e.top = n
		return nil
	},
	"right": func(e *Element, v string) error {
		n, err := parseInt(v)
		if err != nil {
			return err
		}
		e.right = n
		return nil
	},
	"opacity": func(e *Element, v string) error {
		f, err := parseFloat(v)
		if err != nil {
			return err
		}
		e.opacity, e.hasOpacity = clamp01(f), true
		return nil
	},
	"position": func(e *Element, v string) error {
		p, err := parsePosition(v)
		if err != nil {
			return err
		}
		e.position = p
		return nil
	},
	"cursor": func(e *Element, v string) error {
		e.cursor = v
		return nil
	},
	"background":  styleSetter("background"),
	"color":       styleSetter("color"),
	"bordercolor": styleSetter("bordercolor"),
	"fontsize":    styleSetter("fontsize"),
}

func styleSetter(name string) attrSetter {
	return func(e *Element, v string) error {
		return e.Style.apply(name, v)
	}
}

// setterFor returns the reflection setter registered for name on e's kind.
func (e *Element) setterFor(name string) attrSetter {
	if s, ok := kinds[e.kind].setters[name]; ok {
		return s
	}
	return commonSetters[name]
}
