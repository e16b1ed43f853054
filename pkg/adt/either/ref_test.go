package either

import (
	"testing"

	"github.com/ib-77/adt3/pkg/adt"
	"github.com/stretchr/testify/assert"
)

func TestRef_MatchesEither(t *testing.T) {
	t.Parallel()

	l := LeftRef[Safe, int, string](3)
	r := RightRef[Safe, int]("x")

	assert.Equal(t, Left[Safe, int, string](3), l.Either())
	assert.Equal(t, Right[Safe, int]("x"), r.Either())
	assert.Equal(t, l, FromEither(l.Either()))
	assert.Equal(t, r, FromEither(r.Either()))

	assert.Equal(t, KindLeft, l.Kind())
	assert.True(t, l.IsLeft())
	assert.True(t, r.IsRight())
	assert.Equal(t, "Some(3)", l.Left().String())
	assert.Equal(t, "None", l.Right().String())
	assert.Equal(t, "Some(x)", r.Right().String())

	assert.Equal(t, 3, l.LeftOr(0))
	assert.Equal(t, 0, r.LeftOr(0))
	assert.Equal(t, "x", r.RightOr(""))
	assert.Equal(t, 3, l.MustLeft())
	assert.Equal(t, "x", r.MustRight())
	assert.ErrorIs(t, recovered(func() { l.MustRight() }), adt.ErrNotFound)
	assert.ErrorIs(t, recovered(func() { r.MustLeft() }), adt.ErrNotFound)

	assert.Equal(t, "Left(3)", l.String())
	assert.Equal(t, "Right(x)", r.String())
	assert.Equal(t, "Right(3)", l.Swap().String())
	assert.Equal(t, 3, l.Swap().MustRight())

	got := ""
	r.Match(func(int) { got = "left" }, func(s string) { got = s })
	assert.Equal(t, "x", got)
}

func TestRef_RejectsNilPayload(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, recovered(func() { LeftRef[Safe, *int, int](nil) }), adt.ErrNullPayload)
	assert.ErrorIs(t, recovered(func() { RightRef[adt.Unsafe, int, error](nil) }), adt.ErrNullPayload)
}
