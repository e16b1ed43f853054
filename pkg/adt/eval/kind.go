package eval

// Kind is the evaluation strategy of an Eval.
type Kind uint8

const (
	KindNow Kind = iota
	KindLater
	KindAlways
)

func (k Kind) String() string {
	switch k {
	case KindLater:
		return "Later"
	case KindAlways:
		return "Always"
	}
	return "Now"
}
