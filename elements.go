package elements

// NodeType is the DOM node type discriminator reported by Element.NodeType.
type NodeType uint8

const (
	ElementNodeType NodeType = 1 // every kind except text
	TextNodeType    NodeType = 3 // text leaf
)

// Kind selects the paint, measure and mount behavior of an Element. The set is
// closed; new tags are mapped onto one of these through Registry.Register.
type Kind uint8

const (
	KindElement Kind = iota // generic element, style default paint
	KindText                // text leaf merged into its parent's text buffer
	KindCanvas              // low-level canvas, paint cycle never touches the buffer
	KindButton              // rounded button sized to its label
	KindSection             // filled section with a generated color
	KindBlock               // inline block spanning its parent's width
	KindImage               // asynchronously decoded image
	kindCount
)

// String returns the canonical tag name of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kinds[k].name
}

// Position selects how an element is placed inside its parent.
type Position uint8

const (
	PositionAbsolute Position = iota // placed at Left/Top
	PositionInline                   // flows after preceding inline siblings
)

// Rect is an axis-aligned rectangle in document pixels. The origin is the
// top-left corner with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the left and top edges are inside, right and bottom are not.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Event names fired by the tree itself.
const (
	EventLoad             = "load"
	EventMount            = "mount"
	EventTextChanged      = "textchanged"
	EventNodeValueChanged = "nodeValueChanged"
	EventImageLoad        = "imageload"
	EventMouseDown        = "mousedown"
	EventMouseUp          = "mouseup"
	EventClick            = "click"
)
