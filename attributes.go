package elements

import "iter"

// Attr is a single declared attribute.
type Attr struct {
	Name, Value string
}

// Attributes is an insertion-ordered set of declared attributes with unique
// names. The zero value is empty and ready to use.
type Attributes struct {
	list []Attr
}

// NewAttributes builds Attributes from alternating name, value pairs.
// A trailing name without a value is stored with an empty value.
func NewAttributes(pairs ...string) Attributes {
	var a Attributes
	for i := 0; i < len(pairs); i += 2 {
		v := ""
		if i+1 < len(pairs) {
			v = pairs[i+1]
		}
		a.Set(pairs[i], v)
	}
	return a
}

// Set stores value under name. An existing name keeps its position.
func (a *Attributes) Set(name, value string) {
	for i := range a.list {
		if a.list[i].Name == name {
			a.list[i].Value = value
			return
		}
	}
	a.list = append(a.list, Attr{Name: name, Value: value})
}

// Get returns the value stored under name.
func (a Attributes) Get(name string) (string, bool) {
	for _, at := range a.list {
		if at.Name == name {
			return at.Value, true
		}
	}
	return "", false
}

// Has reports whether name is declared.
func (a Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Len returns the number of declared attributes.
func (a Attributes) Len() int {
	return len(a.list)
}

// All iterates the attributes in declaration order.
func (a Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, at := range a.list {
			if !yield(at.Name, at.Value) {
				return
			}
		}
	}
}

// Clone returns a copy that shares no storage with a.
func (a Attributes) Clone() Attributes {
	if len(a.list) == 0 {
		return Attributes{}
	}
	out := make([]Attr, len(a.list))
	copy(out, a.list)
	return Attributes{list: out}
}
