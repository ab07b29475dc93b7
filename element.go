package elements

import (
	"fmt"
	"strconv"
	"strings"
)

// SetAttribute reflects value onto the typed property registered for name,
// records the raw value as a computed attribute, and requests a repaint.
// Names without a registered setter are only recorded. A value the typed
// setter cannot parse is logged and leaves the property unchanged.
// Declared attributes are not modified.
func (e *Element) SetAttribute(name, value string) {
	if set := e.setterFor(name); set != nil {
		if err := set(e, value); err != nil {
			e.doc.Logger.Warn("attribute not reflected", "tag", e.Name(), "attr", name, "value", value, "err", err)
		}
	}
	e.computed[name] = value
	e.RequestPaint()
}

// ComputedAttribute returns the value most recently applied with SetAttribute.
func (e *Element) ComputedAttribute(name string) (string, bool) {
	v, ok := e.computed[name]
	return v, ok
}

// HasAttribute reports whether name was declared at construction.
func (e *Element) HasAttribute(name string) bool {
	return e.attributes.Has(name)
}

// GetAttribute returns a declared attribute.
func (e *Element) GetAttribute(name string) (string, bool) {
	return e.attributes.Get(name)
}

// Attributes returns a copy of the declared attributes.
func (e *Element) Attributes() Attributes {
	return e.attributes.Clone()
}

// Property reads a reflected property by name. Names without a typed property
// fall back to the computed attribute. Reading "text" fails: elements expose
// their text through TextContent.
func (e *Element) Property(name string) (string, error) {
	switch name {
	case "text":
		return "", &UnsupportedPropertyError{Property: name}
	case "width":
		return strconv.Itoa(e.width), nil
	case "height":
		return strconv.Itoa(e.height), nil
	case "left":
		return strconv.Itoa(e.left), nil
	case "top":
		return strconv.Itoa(e.top), nil
	case "opacity":
		if !e.hasOpacity {
			return "", nil
		}
		return strconv.FormatFloat(e.opacity, 'g', -1, 64), nil
	case "cursor":
		return e.cursor, nil
	case "tagName":
		return e.Name(), nil
	case "textContent":
		return e.TextContent(), nil
	case "innerHTML":
		return e.InnerHTML(), nil
	case "src":
		if e.kind == KindImage {
			return e.Src(), nil
		}
	}
	return e.computed[name], nil
}

// NMLContent serializes the subtree. With includeSelf the children are wrapped
// in this element's tag with every declared attribute rendered as name="value"
// in declaration order. No escaping is performed.
func (e *Element) NMLContent(includeSelf bool) string {
	var sb strings.Builder
	if includeSelf {
		e.writeNML(&sb)
	} else {
		for _, child := range e.children {
			child.writeNML(&sb)
		}
	}
	return sb.String()
}

func (e *Element) writeNML(sb *strings.Builder) {
	if e.kind == KindText {
		sb.WriteString(e.textValue)
		return
	}
	tag := e.Name()
	sb.WriteByte('<')
	sb.WriteString(tag)
	for name, value := range e.attributes.All() {
		fmt.Fprintf(sb, ` %s="%s"`, name, value)
	}
	sb.WriteByte('>')
	for _, child := range e.children {
		child.writeNML(sb)
	}
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}

// InnerHTML returns the serialized children.
func (e *Element) InnerHTML() string {
	return e.NMLContent(false)
}

// SetInnerHTML replaces the whole subtree with the elements parsed from
// markup. The markup is parsed and built before anything is detached, so on
// error the tree is unchanged. Replaced children are disposed.
func (e *Element) SetInnerHTML(markup string) error {
	if !kinds[e.kind].allowsChildren {
		return &UnsupportedOperationError{Op: "innerHTML", Tag: e.Name()}
	}
	built, err := e.doc.BuildFragment(markup)
	if err != nil {
		return fmt.Errorf("set innerHTML on <%s>: %w", e.Name(), err)
	}
	e.empty()
	for _, c := range built {
		if err := e.AddChild(c); err != nil {
			return err
		}
	}
	return nil
}

// TextContent returns the merged text buffer.
func (e *Element) TextContent() string {
	return e.textValue
}

// SetTextContent sets the element text. A single existing text child is
// updated in place; otherwise the children are replaced by one new text node,
// whose value reaches the text buffer once it mounts.
func (e *Element) SetTextContent(value string) {
	if e.kind == KindText {
		e.SetNodeValue(value)
		return
	}
	if len(e.children) == 1 && e.children[0].kind == KindText {
		e.children[0].SetNodeValue(value)
		return
	}
	e.empty()
	// cannot fail: e allows children and the text node is new
	_ = e.AddChild(e.doc.CreateTextNode(value))
}

// empty disposes every child.
func (e *Element) empty() {
	old := append([]*Element(nil), e.children...)
	e.RemoveChildren()
	for _, c := range old {
		c.dispose()
	}
}

// CloneNode returns a new element of the same kind built from the declared
// attributes. With deep, every child is cloned and appended in order. The
// clone has no parent and shares nothing with e.
func (e *Element) CloneNode(deep bool) *Element {
	if e.kind == KindText {
		return e.doc.CreateTextNode(e.textValue)
	}
	clone := newElement(e.doc, e.kind, e.attributes)
	if !deep {
		return clone
	}
	for _, child := range e.children {
		// cannot fail: clone has the same kind as e
		_ = clone.AddChild(child.CloneNode(true))
	}
	return clone
}
