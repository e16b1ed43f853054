package try

// Kind is the variant held by a Try.
type Kind uint8

const (
	KindOk Kind = iota
	KindError
)

func (k Kind) String() string {
	if k == KindError {
		return "Error"
	}
	return "Ok"
}
