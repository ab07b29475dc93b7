package elements

import "fmt"

// UnknownTagError is returned when a tag has no registered kind.
type UnknownTagError struct {
	Tag string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("elements: %s tag type is not implemented", e.Tag)
}

// UnsupportedOperationError is returned when a structural mutation is
// attempted on a node that cannot carry children.
type UnsupportedOperationError struct {
	Op  string
	Tag string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("elements: %s doesn't support %s", e.Tag, e.Op)
}

// UnsupportedPropertyError is returned when reading a property that elements
// explicitly do not provide.
type UnsupportedPropertyError struct {
	Property string
}

func (e *UnsupportedPropertyError) Error() string {
	return fmt.Sprintf("elements: %s property doesn't exist", e.Property)
}

// CycleError is returned when adding a child would make a node its own
// ancestor.
type CycleError struct {
	Parent, Child string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("elements: adding <%s> to <%s> would create a cycle", e.Child, e.Parent)
}
