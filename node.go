package elements

import (
	"context"
	"weak"
)

// NodeID identifies an element within its Document. IDs are never reused.
type NodeID uint32

// Element is the single node record shared by every kind. Behavior that
// differs per kind is dispatched through the kind table, not embedding.
//
// A parent holds its children strongly; a child refers to its parent through
// a weak pointer, so the relation never keeps a detached parent alive.
type Element struct {
	// Identity
	ID   NodeID
	kind Kind
	doc  *Document

	// Hierarchy
	parent   weak.Pointer[Element]
	children []*Element

	// Attributes
	attributes Attributes
	computed   map[string]string

	// Style is the default-paint delegate. Owned by the element.
	Style *Style

	// Geometry
	width, height int
	left, top     int
	right         int
	opacity       float64
	hasOpacity    bool
	position      Position
	staticRight   bool
	cursor        string

	// Text buffer. For text nodes it holds the node value.
	textValue string

	// Surface
	surface surface

	// Lifecycle
	mounted  bool
	dirty    bool
	disposed bool

	// Events
	listeners map[string][]listener

	// Kind caches
	fill   [4]uint8    // section: generated rgba
	press  float64     // button: feedback level, 1 when idle
	tween  *Tween      // button: running feedback
	img    *imageState // image: current load
	cancel context.CancelFunc
}

// newElement builds an element of kind k owned by doc. Declared width/height
// default to 10x10, left/top to 0.
func newElement(doc *Document, k Kind, attrs Attributes) *Element {
	e := &Element{
		ID:         doc.nextNodeID(),
		kind:       k,
		doc:        doc,
		attributes: attrs.Clone(),
		computed:   make(map[string]string),
		Style:      newStyle(doc.faces),
		press:      1,
	}
	doc.nodes[e.ID] = weak.Make(e)
	e.width = declaredInt(attrs, "width", 10)
	e.height = declaredInt(attrs, "height", 10)
	e.left = declaredInt(attrs, "left", 0)
	e.top = declaredInt(attrs, "top", 0)
	if v, ok := attrs.Get("opacity"); ok {
		if f, err := parseFloat(v); err == nil {
			e.opacity, e.hasOpacity = f, true
		}
	}
	for name, v := range attrs.All() {
		if isStyleAttribute(name) {
			if err := e.Style.apply(name, v); err != nil {
				doc.Logger.Warn("invalid style attribute", "tag", kinds[k].name, "attr", name, "value", v, "err", err)
			}
		}
	}
	if init := kinds[k].init; init != nil {
		init(e)
	}
	// declared placement overrides kind defaults
	for _, name := range [...]string{"position", "right", "cursor"} {
		if v, ok := attrs.Get(name); ok {
			if err := commonSetters[name](e, v); err != nil {
				doc.Logger.Warn("invalid attribute", "tag", kinds[k].name, "attr", name, "value", v, "err", err)
			}
		}
	}
	return e
}

func declaredInt(attrs Attributes, name string, def int) int {
	v, ok := attrs.Get(name)
	if !ok {
		return def
	}
	n, err := parseInt(v)
	if err != nil {
		return def
	}
	return n
}

// Name returns the canonical lowercase tag name of the element's kind.
func (e *Element) Name() string {
	return kinds[e.kind].name
}

// TagName is Name, for DOM-style callers.
func (e *Element) TagName() string {
	return e.Name()
}

// Kind returns the element's kind.
func (e *Element) Kind() Kind {
	return e.kind
}

// NodeType returns TextNodeType for text nodes and ElementNodeType otherwise.
func (e *Element) NodeType() NodeType {
	if e.kind == KindText {
		return TextNodeType
	}
	return ElementNodeType
}

// IsAutonomous reports whether the element builds its own children instead of
// being populated from markup.
func (e *Element) IsAutonomous() bool {
	return kinds[e.kind].autonomous
}

// Document returns the document that created the element.
func (e *Element) Document() *Document {
	return e.doc
}

// --- Tree manipulation ---

// AddChild appends child to this element's children. If child already has a
// parent it is removed from that parent first.
// Panics if child is nil or was created by another document.
func (e *Element) AddChild(child *Element) error {
	return e.insertChild("add", child, -1)
}

// AddChildAt inserts child at the given index. A negative index appends.
// Same reparenting and cycle-check behavior as AddChild.
func (e *Element) AddChildAt(child *Element, index int) error {
	return e.insertChild("addAt", child, index)
}

// AddSubCanvas is AddChild under its surface-level name.
func (e *Element) AddSubCanvas(child *Element) error {
	return e.insertChild("addSubCanvas", child, -1)
}

// AppendChild appends child and returns it.
func (e *Element) AppendChild(child *Element) (*Element, error) {
	if err := e.insertChild("appendChild", child, -1); err != nil {
		return nil, err
	}
	return child, nil
}

func (e *Element) insertChild(op string, child *Element, index int) error {
	if child == nil {
		panic("elements: cannot add nil child")
	}
	if child.doc != e.doc {
		panic("elements: child belongs to another document")
	}
	if e.doc.debug {
		debugCheckDisposed(e, op+" (parent)")
		debugCheckDisposed(child, op+" (child)")
	}
	if !kinds[e.kind].allowsChildren {
		return &UnsupportedOperationError{Op: op, Tag: e.Name()}
	}
	if isAncestor(child, e) {
		return &CycleError{Parent: e.Name(), Child: child.Name()}
	}
	p := child.Parent()
	limit := len(e.children)
	if p == e {
		limit--
	}
	if index < 0 {
		index = limit
	}
	if index > limit {
		panic("elements: child index out of range")
	}
	if p != nil {
		p.removeChildByPtr(child)
	}
	child.parent = weak.Make(e)
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child
	e.doc.pendingMount = true
	if e.doc.debug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(e)
	}
	return nil
}

// RemoveChild detaches child from this element. It is a no-op when child is
// nil, has no parent, or belongs to another parent.
func (e *Element) RemoveChild(child *Element) {
	if child == nil {
		return
	}
	p := child.Parent()
	if p == nil || p != e {
		return
	}
	e.removeChildByPtr(child)
	child.parent = weak.Pointer[Element]{}
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if p := e.Parent(); p != nil {
		p.RemoveChild(e)
	}
}

// RemoveChildren detaches all children from this element.
// Children are NOT disposed.
func (e *Element) RemoveChildren() {
	for _, child := range e.children {
		child.parent = weak.Pointer[Element]{}
	}
	clear(e.children)
	e.children = e.children[:0]
}

// Parent returns the element currently holding this one, or nil.
func (e *Element) Parent() *Element {
	return e.parent.Value()
}

// ParentNode is Parent, for DOM-style callers.
func (e *Element) ParentNode() *Element {
	return e.Parent()
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// ChildNodes is Children, for DOM-style callers.
func (e *Element) ChildNodes() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// ChildAt returns the child at the given index.
func (e *Element) ChildAt(index int) *Element {
	return e.children[index]
}

// FirstChild returns the first child, or nil.
func (e *Element) FirstChild() *Element {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// NextSibling returns the sibling after this element, or nil.
func (e *Element) NextSibling() *Element {
	p := e.Parent()
	if p == nil {
		return nil
	}
	i := p.indexOf(e)
	if i < 0 || i+1 >= len(p.children) {
		return nil
	}
	return p.children[i+1]
}

// PreviousSibling returns the sibling before this element, or nil.
func (e *Element) PreviousSibling() *Element {
	p := e.Parent()
	if p == nil {
		return nil
	}
	i := p.indexOf(e)
	if i <= 0 {
		return nil
	}
	return p.children[i-1]
}

// --- Disposal ---

// Dispose removes this element from its parent, marks it as disposed and
// recursively disposes all descendants. Pending image loads are cancelled and
// their completions dropped.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	delete(e.doc.nodes, e.ID)
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	for _, child := range e.children {
		child.parent = weak.Pointer[Element]{}
		child.dispose()
	}
	e.children = nil
	e.listeners = nil
	e.img = nil
	e.tween = nil
	e.surface.release()
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Element) bool {
	for p := node; p != nil; p = p.Parent() {
		if p == candidate {
			return true
		}
	}
	return false
}

func (e *Element) indexOf(child *Element) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

// removeChildByPtr removes child from e.children without clearing its parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Element) removeChildByPtr(child *Element) {
	i := e.indexOf(child)
	if i < 0 {
		return
	}
	copy(e.children[i:], e.children[i+1:])
	e.children[len(e.children)-1] = nil
	e.children = e.children[:len(e.children)-1]
}
