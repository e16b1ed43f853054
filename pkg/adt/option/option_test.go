package option

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/adt3/pkg/adt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recovered runs f and returns the error it panicked with, if any.
func recovered(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func TestSome_ValueTypeIsAlwaysWrapped(t *testing.T) {
	t.Parallel()

	o := Some[adt.Safe](0)
	assert.True(t, o.IsSome())
	assert.Equal(t, KindSome, o.Kind())

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestSome_NilReferenceIsNone(t *testing.T) {
	t.Parallel()

	var p *int
	assert.True(t, Some[adt.Safe](p).IsNone())

	var err error
	assert.True(t, Some[adt.Safe](err).IsNone())

	var m map[string]int
	assert.True(t, Some[adt.Safe](m).IsNone())

	var s []int
	assert.True(t, Some[adt.Safe](s).IsSome(), "nil slice is a valid empty slice")
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var o Option[string, adt.Safe]
	assert.True(t, o.IsNone())
	assert.Equal(t, "None", o.String())
}

func TestOfAndFromPtr(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1}
	v, ok := m["a"]
	assert.Equal(t, "Some(1)", Of[adt.Safe](v, ok).String())
	v, ok = m["b"]
	assert.True(t, Of[adt.Safe](v, ok).IsNone())

	n := 7
	o := FromPtr[adt.Safe](&n)
	assert.Equal(t, 7, o.MustGet())
	assert.True(t, FromPtr[adt.Safe, int](nil).IsNone())

	ptr := o.ToPtr()
	require.NotNil(t, ptr)
	assert.Equal(t, 7, *ptr)
	assert.Nil(t, None[adt.Safe, int]().ToPtr())
}

func TestMap_ShortCircuitsOnNone(t *testing.T) {
	t.Parallel()

	calls := 0
	f := func(x int) int {
		calls++
		return x + 1
	}

	assert.True(t, Map(None[adt.Safe, int](), f).IsNone())
	assert.Equal(t, 0, calls)

	assert.Equal(t, 6, Map(Some[adt.Safe](5), f).MustGet())
	assert.Equal(t, 1, calls)
}

func TestMap_NilResultBecomesNone(t *testing.T) {
	t.Parallel()

	o := Map(Some[adt.Safe](1), func(int) *int { return nil })
	assert.True(t, o.IsNone())
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	half := func(x int) Option[int, adt.Safe] {
		if x%2 != 0 {
			return None[adt.Safe, int]()
		}
		return Some[adt.Safe](x / 2)
	}

	assert.Equal(t, "Some(4)", FlatMap(Some[adt.Safe](8), half).String())
	assert.Equal(t, "None", FlatMap(Some[adt.Safe](7), half).String())
	assert.Equal(t, "None", FlatMap(None[adt.Safe, int](), half).String())
}

func TestFilterAndFilterNot(t *testing.T) {
	t.Parallel()

	even := func(x int) bool { return x%2 == 0 }

	assert.True(t, Some[adt.Safe](2).Filter(even).IsSome())
	assert.True(t, Some[adt.Safe](3).Filter(even).IsNone())
	assert.True(t, Some[adt.Safe](3).FilterNot(even).IsSome())
	assert.True(t, Some[adt.Safe](2).FilterNot(even).IsNone())
	assert.True(t, None[adt.Safe, int]().Filter(even).IsNone())
	assert.True(t, None[adt.Safe, int]().FilterNot(even).IsNone())
}

func TestExistAndForall(t *testing.T) {
	t.Parallel()

	positive := func(x int) bool { return x > 0 }

	assert.True(t, Some[adt.Safe](1).Exist(positive))
	assert.False(t, Some[adt.Safe](-1).Exist(positive))
	assert.False(t, None[adt.Safe, int]().Exist(positive))

	assert.True(t, Some[adt.Safe](1).Forall(positive))
	assert.False(t, Some[adt.Safe](-1).Forall(positive))
	assert.True(t, None[adt.Safe, int]().Forall(positive), "vacuous truth")
}

func TestFolds(t *testing.T) {
	t.Parallel()

	sub := func(value, init int) int { return value - init }
	assert.Equal(t, 7, Some[adt.Safe](10).Fold(3, sub))
	assert.Equal(t, 3, None[adt.Safe, int]().Fold(3, sub))

	s := FoldWith(Some[adt.Safe](4),
		func() string { return "empty" },
		func(x int) string { return strconv.Itoa(x) })
	assert.Equal(t, "4", s)
	s = FoldWith(None[adt.Safe, int](),
		func() string { return "empty" },
		func(x int) string { return strconv.Itoa(x) })
	assert.Equal(t, "empty", s)

	assert.Equal(t, "2/a", FoldLeft(Some[adt.Safe](2), "a", func(x int, acc string) string {
		return strconv.Itoa(x) + "/" + acc
	}))
	assert.Equal(t, "a/2", FoldRight(Some[adt.Safe](2), "a", func(acc string, x int) string {
		return acc + "/" + strconv.Itoa(x)
	}))
	assert.Equal(t, "a", FoldRight(None[adt.Safe, int](), "a", func(acc string, x int) string {
		return acc + "/" + strconv.Itoa(x)
	}))
}

func TestExtraction(t *testing.T) {
	t.Parallel()

	some := Some[adt.Safe]("x")
	none := None[adt.Safe, string]()

	assert.Equal(t, "x", some.OrElse("y"))
	assert.Equal(t, "y", none.OrElse("y"))
	assert.Equal(t, "z", none.OrElseGet(func() string { return "z" }))
	assert.Equal(t, "", none.OrDefault())

	v, err := some.OrError()
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	_, err = none.OrError()
	assert.ErrorIs(t, err, adt.ErrNotFound)

	err = recovered(func() { none.MustGet() })
	assert.ErrorIs(t, err, adt.ErrNotFound)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	var got []string
	some := func(s string) { got = append(got, "some:"+s) }
	none := func() { got = append(got, "none") }

	assert.Equal(t, adt.Def, Some[adt.Safe]("a").Match(some, none))
	None[adt.Safe, string]().Match(some, none)
	None[adt.Safe, string]().MatchSome(some)
	Some[adt.Safe]("b").MatchNone(none)
	Some[adt.Safe]("c").MatchSome(some)
	None[adt.Safe, string]().MatchNone(none)

	assert.Equal(t, []string{"some:a", "none", "some:c", "none"}, got)

	r := MatchValue(None[adt.Safe, string](),
		func(s string) string { return s },
		func() string { return "default value" })
	assert.Equal(t, "default value", r)
	assert.Equal(t, "Hello", MatchOr(Some[adt.Safe]("Hello"), func(s string) string { return s }, "world"))
}

func TestFlattenAndAll(t *testing.T) {
	t.Parallel()

	nested := Some[adt.Safe](Some[adt.Safe]("Hello"))
	assert.Equal(t, "Some(Some(Hello))", nested.String())
	assert.Equal(t, "Some(Hello)", Flatten(nested).String())
	assert.True(t, Flatten(None[adt.Safe, Option[int, adt.Safe]]()).IsNone())

	var seen []int
	for v := range Some[adt.Safe](3).All() {
		seen = append(seen, v)
	}
	for v := range None[adt.Safe, int]().All() {
		seen = append(seen, v)
	}
	assert.Equal(t, []int{3}, seen)
}

func TestEqualityAndOrdering(t *testing.T) {
	t.Parallel()

	a, b := Some[adt.Safe](1), Some[adt.Safe](2)
	none := None[adt.Safe, int]()

	assert.True(t, Equal(a, Some[adt.Safe](1)))
	assert.False(t, Equal(a, b))
	assert.True(t, Equal(none, None[adt.Safe, int]()))
	assert.False(t, Equal(a, none))

	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(b, a))
	assert.Equal(t, -1, Compare(none, a))
	assert.Equal(t, 1, Compare(a, none))
	assert.Equal(t, 0, Compare(none, none))

	assert.True(t, EqualValue(a, 1))
	assert.False(t, EqualValue(none, 0))
	assert.Equal(t, 0, CompareValue(a, 1))
	assert.Equal(t, -1, CompareValue(none, 100))

	caseless := func(x, y string) bool { return len(x) == len(y) }
	assert.True(t, EqualFunc(Some[adt.Safe]("ab"), Some[adt.Safe]("cd"), caseless))
}

func TestSafePolicy_RejectsNilCallbacks(t *testing.T) {
	t.Parallel()

	none := None[adt.Safe, int]()

	cases := map[string]func(){
		"Map":       func() { Map[adt.Safe, int, int](none, nil) },
		"FlatMap":   func() { FlatMap[adt.Safe, int, int](none, nil) },
		"Filter":    func() { none.Filter(nil) },
		"FilterNot": func() { none.FilterNot(nil) },
		"Exist":     func() { none.Exist(nil) },
		"Forall":    func() { none.Forall(nil) },
		"Fold":      func() { none.Fold(0, nil) },
		"OrElseGet": func() { Some[adt.Safe](1).OrElseGet(nil) },
		"Match":     func() { none.Match(nil, func() {}) },
		"MatchSome": func() { none.MatchSome(nil) },
		"MatchNone": func() { Some[adt.Safe](1).MatchNone(nil) },
	}

	for name, call := range cases {
		err := recovered(call)
		assert.Truef(t, errors.Is(err, adt.ErrNullArgument), "%s: got %v", name, err)
	}
}

func TestUnsafePolicy_SkipsValidationOnUnreachedBranch(t *testing.T) {
	t.Parallel()

	none := None[adt.Unsafe, int]()

	assert.NotPanics(t, func() { Map[adt.Unsafe, int, int](none, nil) })
	assert.NotPanics(t, func() { FlatMap[adt.Unsafe, int, int](none, nil) })
	assert.NotPanics(t, func() { none.Filter(nil) })
	assert.NotPanics(t, func() { none.Exist(nil) })
	assert.NotPanics(t, func() { none.MatchSome(nil) })
	assert.NotPanics(t, func() { Some[adt.Unsafe](1).MatchNone(nil) })
	assert.NotPanics(t, func() { Some[adt.Unsafe](1).OrElseGet(nil) })
	assert.False(t, none.Checked())
	assert.True(t, None[adt.Safe, int]().Checked())
}

func TestWithPolicy(t *testing.T) {
	t.Parallel()

	safe := Some[adt.Safe](3)
	unsafe := WithPolicy[adt.Unsafe](safe)
	assert.Equal(t, 3, unsafe.MustGet())
	assert.False(t, unsafe.Checked())
}

func TestOptionChainScenario(t *testing.T) {
	t.Parallel()

	res := FlatMap(
		Map(Some[adt.Safe](5), func(x int) int { return x * 2 }).
			Filter(func(x int) bool { return x > 9 }),
		func(x int) Option[string, adt.Safe] { return Some[adt.Safe](strconv.Itoa(x)) })

	assert.Equal(t, "Some(10)", res.String())
	assert.Equal(t, "10", res.MustGet())
}
