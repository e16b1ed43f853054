package adt

import "fmt"

// Tagged is implemented by every container; Kind reports which variant is held.
type Tagged[K fmt.Stringer] interface {
	Kind() K
}

// Checked is implemented by containers parameterised by a Policy.
type Checked interface {
	// Checked reports whether the container validates callbacks
	Checked() bool
}

// Forcer is implemented by containers whose payload may be produced on demand.
type Forcer[T any] interface {
	// Value returns the payload, computing it if necessary
	Value() T
}
