package adt

// Unit is the type with a single value. It is returned by side-effect only
// matches and fills the unused side of two-sided types.
type Unit struct{}

// Def is the canonical Unit value.
var Def = Unit{}

// Equal is always true.
func (Unit) Equal(Unit) bool { return true }

// Compare is always 0.
func (Unit) Compare(Unit) int { return 0 }

func (Unit) String() string { return "Unit" }
