package adt

// Policy selects whether combinators validate their function arguments.
// Implementations are zero-size types used only as type parameters, so the
// choice is made at instantiation time and carries no runtime state.
type Policy interface {
	// NeedCheck reports whether nil callbacks must be rejected
	NeedCheck() bool
}

// Safe rejects nil callbacks and predicates with ErrNullArgument.
type Safe struct{}

func (Safe) NeedCheck() bool { return true }

// Unsafe skips callback validation. Passing a nil callback to a branch that
// calls it is outside the contract.
type Unsafe struct{}

func (Unsafe) NeedCheck() bool { return false }

// NeedCheck reports whether the policy P validates arguments.
func NeedCheck[P Policy]() bool {
	var p P
	return p.NeedCheck()
}

// CheckHandler panics with an error wrapping ErrNullArgument when P is a
// validating policy and isNil holds.
func CheckHandler[P Policy](isNil bool, what string) {
	var p P
	if p.NeedCheck() && isNil {
		panic(NullArgument(what))
	}
}
