package either

// Kind is the side held by an Either.
type Kind uint8

const (
	KindRight Kind = iota
	KindLeft
)

func (k Kind) String() string {
	if k == KindLeft {
		return "Left"
	}
	return "Right"
}
