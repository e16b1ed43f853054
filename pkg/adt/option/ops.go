package option

import "github.com/ib-77/adt3/pkg/adt"

// Map returns Some(f(value)) for Some and None otherwise. f is never called
// on None. A nil reference returned by f yields None.
func Map[P adt.Policy, T, R any](o Option[T, P], f func(T) R) Option[R, P] {
	adt.CheckHandler[P](f == nil, "Map handler")

	if o.present {
		return Some[P](f(o.value))
	}
	return None[P, R]()
}

// FlatMap returns f(value) for Some and None otherwise.
func FlatMap[P adt.Policy, T, R any](o Option[T, P], f func(T) Option[R, P]) Option[R, P] {
	adt.CheckHandler[P](f == nil, "FlatMap handler")

	if o.present {
		return f(o.value)
	}
	return None[P, R]()
}

// FoldWith returns ifSome(value) for Some and ifEmpty() for None.
func FoldWith[P adt.Policy, T, R any](o Option[T, P], ifEmpty func() R, ifSome func(T) R) R {
	adt.CheckHandler[P](ifEmpty == nil, "FoldWith ifEmpty")
	adt.CheckHandler[P](ifSome == nil, "FoldWith ifSome")

	if o.present {
		return ifSome(o.value)
	}
	return ifEmpty()
}

// FoldLeft returns f(value, init) for Some and init for None.
func FoldLeft[P adt.Policy, T, R any](o Option[T, P], init R, f func(T, R) R) R {
	adt.CheckHandler[P](f == nil, "FoldLeft handler")

	if o.present {
		return f(o.value, init)
	}
	return init
}

// FoldRight returns f(init, value) for Some and init for None.
func FoldRight[P adt.Policy, T, R any](o Option[T, P], init R, f func(R, T) R) R {
	adt.CheckHandler[P](f == nil, "FoldRight handler")

	if o.present {
		return f(init, o.value)
	}
	return init
}

// MatchValue returns some(value) for Some and none() for None.
func MatchValue[P adt.Policy, T, R any](o Option[T, P], some func(T) R, none func() R) R {
	adt.CheckHandler[P](some == nil, "Match some")
	adt.CheckHandler[P](none == nil, "Match none")

	if o.present {
		return some(o.value)
	}
	return none()
}

// MatchOr returns some(value) for Some and none for None.
func MatchOr[P adt.Policy, T, R any](o Option[T, P], some func(T) R, none R) R {
	adt.CheckHandler[P](some == nil, "Match some")

	if o.present {
		return some(o.value)
	}
	return none
}

// Flatten removes one level of nesting.
func Flatten[P adt.Policy, T any](o Option[Option[T, P], P]) Option[T, P] {
	if o.present {
		return o.value
	}
	return None[P, T]()
}

// WithPolicy re-wraps o under the policy Q.
func WithPolicy[Q, P adt.Policy, T any](o Option[T, P]) Option[T, Q] {
	return Option[T, Q]{value: o.value, present: o.present}
}
