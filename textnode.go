package elements

// CreateTextNode returns a detached text node holding value.
func (d *Document) CreateTextNode(value string) *Element {
	e := newElement(d, KindText, Attributes{})
	e.width, e.height = 0, 0
	e.textValue = value
	return e
}

// NodeValue returns a text node's value. Other kinds return their text buffer.
func (e *Element) NodeValue() string {
	return e.textValue
}

// SetNodeValue stores value, merges it into the parent's text buffer and
// fires nodeValueChanged on the text node. Only meaningful on text nodes;
// other kinds route to SetTextContent.
func (e *Element) SetNodeValue(value string) {
	if e.kind != KindText {
		e.SetTextContent(value)
		return
	}
	e.textValue = value
	e.pushTextToParent()
	e.Fire(EventNodeValueChanged, value)
}

// pushTextToParent mirrors the text node value into its parent, fires
// textchanged there and schedules the parent's repaint.
func (e *Element) pushTextToParent() {
	p := e.Parent()
	if p == nil {
		return
	}
	p.textValue = e.textValue
	if hook := kinds[p.kind].textChanged; hook != nil {
		hook(p, e.textValue)
	}
	p.Fire(EventTextChanged, e.textValue)
	p.RequestPaint()
}

func textMount(e *Element) {
	e.pushTextToParent()
}
