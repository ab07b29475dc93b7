package elements

import "fmt"

// debugCheckDisposed panics with a descriptive message when a disposed element
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(e *Element, op string) {
	if e.disposed {
		panic(fmt.Sprintf("elements debug: %s on disposed <%s> (ID %d)", op, e.Name(), e.ID))
	}
}

// debugMaxTreeDepth is the depth past which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(e *Element) {
	depth := 0
	for p := e; p != nil; p = p.Parent() {
		depth++
	}
	if depth > debugMaxTreeDepth {
		e.doc.Logger.Warn("tree depth exceeds limit", "depth", depth, "limit", debugMaxTreeDepth, "tag", e.Name(), "id", e.ID)
	}
}

// debugMaxChildCount is the child count past which debugCheckChildCount warns.
const debugMaxChildCount = 1000

func debugCheckChildCount(e *Element) {
	if n := len(e.children); n > debugMaxChildCount {
		e.doc.Logger.Warn("child count exceeds limit", "count", n, "limit", debugMaxChildCount, "tag", e.Name(), "id", e.ID)
	}
}
