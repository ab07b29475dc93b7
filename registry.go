package elements

import "strings"

// Registry maps lowercase tag names to element kinds. Build one with
// NewRegistry at startup and hand it to NewDocument.
type Registry struct {
	tags map[string]Kind
}

// NewRegistry returns a registry holding the built-in tags.
func NewRegistry() *Registry {
	r := &Registry{tags: make(map[string]Kind, kindCount+1)}
	for k := Kind(0); k < kindCount; k++ {
		r.tags[kinds[k].name] = k
	}
	r.tags["none"] = KindElement
	return r
}

// Register maps tag (case-insensitive) to a built-in kind.
func (r *Registry) Register(tag string, k Kind) {
	if k >= kindCount {
		panic("elements: unknown kind")
	}
	r.tags[strings.ToLower(tag)] = k
}

// Exists reports whether tag is registered. Matching is case-insensitive.
func (r *Registry) Exists(tag string) bool {
	_, ok := r.tags[strings.ToLower(tag)]
	return ok
}

// Lookup returns the kind registered for tag.
func (r *Registry) Lookup(tag string) (Kind, bool) {
	k, ok := r.tags[strings.ToLower(tag)]
	return k, ok
}

// Create builds a new detached element of the kind registered for tag.
// An unregistered tag yields *UnknownTagError. A text node takes its value
// from the "value" attribute.
func (r *Registry) Create(doc *Document, tag string, attrs Attributes) (*Element, error) {
	tag = strings.ToLower(tag)
	k, ok := r.tags[tag]
	if !ok {
		return nil, &UnknownTagError{Tag: tag}
	}
	if k == KindText {
		v, _ := attrs.Get("value")
		return doc.CreateTextNode(v), nil
	}
	return newElement(doc, k, attrs), nil
}
