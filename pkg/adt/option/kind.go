package option

// Kind is the variant held by an Option.
type Kind uint8

const (
	KindNone Kind = iota
	KindSome
)

func (k Kind) String() string {
	if k == KindSome {
		return "Some"
	}
	return "None"
}
