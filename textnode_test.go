package elements

import "testing"

func TestCreateTextNode(t *testing.T) {
	doc := newTestDoc(t)
	txt := doc.CreateTextNode("hi")

	if txt.NodeType() != TextNodeType || txt.Kind() != KindText {
		t.Errorf("NodeType = %d, Kind = %v", txt.NodeType(), txt.Kind())
	}
	if txt.Width() != 0 || txt.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", txt.Width(), txt.Height())
	}
	if txt.NodeValue() != "hi" || txt.TextContent() != "hi" {
		t.Errorf("NodeValue = %q, TextContent = %q", txt.NodeValue(), txt.TextContent())
	}
	if txt.Context() != nil {
		t.Error("text nodes have no drawing context")
	}
}

func TestTextNodeMountPushesToParent(t *testing.T) {
	doc := newTestDoc(t)
	div := mustCreate(t, doc, "div")
	mustAdd(t, doc.Root(), div)

	var changed []any
	div.On(EventTextChanged, func(ev *Event) { changed = append(changed, ev.Data) })

	mustAdd(t, div, doc.CreateTextNode("hi"))
	if div.TextContent() != "" {
		t.Errorf("TextContent before mount = %q, want empty", div.TextContent())
	}

	doc.Update(0)
	if div.TextContent() != "hi" {
		t.Errorf("TextContent after mount = %q, want hi", div.TextContent())
	}
	if len(changed) != 1 || changed[0] != "hi" {
		t.Errorf("textchanged = %v, want [hi]", changed)
	}
}

func TestSetNodeValueFiresEvents(t *testing.T) {
	doc := newTestDoc(t)
	div := mustCreate(t, doc, "div")
	txt := doc.CreateTextNode("a")
	mustAdd(t, div, txt)

	var order []string
	txt.On(EventNodeValueChanged, func(ev *Event) { order = append(order, "node:"+ev.Data.(string)) })
	div.On(EventTextChanged, func(ev *Event) { order = append(order, "parent:"+ev.Data.(string)) })

	txt.SetNodeValue("b")

	if txt.NodeValue() != "b" || div.TextContent() != "b" {
		t.Errorf("NodeValue = %q, parent text = %q; want b, b", txt.NodeValue(), div.TextContent())
	}
	if len(order) != 2 || order[0] != "parent:b" || order[1] != "node:b" {
		t.Errorf("event order = %v, want [parent:b node:b]", order)
	}
	if !div.IsDirty() {
		t.Error("parent should be dirty after a text change")
	}
}

func TestSetNodeValueDetached(t *testing.T) {
	doc := newTestDoc(t)
	txt := doc.CreateTextNode("a")
	fired := false
	txt.On(EventNodeValueChanged, func(*Event) { fired = true })
	txt.SetNodeValue("z")
	if txt.NodeValue() != "z" || !fired {
		t.Error("detached text node should still update and notify")
	}
}

func TestTextNodeLastWriterWins(t *testing.T) {
	doc := newTestDoc(t)
	div := mustCreate(t, doc, "div")
	mustAdd(t, doc.Root(), div)
	mustAdd(t, div, doc.CreateTextNode("first"))
	mustAdd(t, div, doc.CreateTextNode("second"))
	doc.Update(0)

	if div.TextContent() != "second" {
		t.Errorf("TextContent = %q, want second", div.TextContent())
	}
}
