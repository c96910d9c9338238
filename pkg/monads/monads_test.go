package monads

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float64

type identifier struct {
	name string
}

func TestImplicit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		from reflect.Type
		to   reflect.Type
		want bool
	}{
		{"same type", TypeOf[int](), TypeOf[int](), true},
		{"int to float64", TypeOf[int](), TypeOf[float64](), true},
		{"float64 to int8", TypeOf[float64](), TypeOf[int8](), true},
		{"to named real", TypeOf[int](), TypeOf[celsius](), false},
		{"from named real", TypeOf[celsius](), TypeOf[float64](), true},
		{"complex", TypeOf[complex64](), TypeOf[complex128](), true},
		{"real to complex", TypeOf[int](), TypeOf[complex128](), false},
		{"int to string", TypeOf[int](), TypeOf[string](), false},
		{"string to struct", TypeOf[string](), TypeOf[identifier](), false},
		{"to interface", TypeOf[*bytesReader](), TypeOf[io.Reader](), true},
		{"untyped nil to pointer", nil, TypeOf[*int](), true},
		{"untyped nil to int", nil, TypeOf[int](), false},
		{"nil target", TypeOf[int](), nil, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Implicit(tc.from, tc.to))
		})
	}

	assert.True(t, ImplicitFor[float64, int]())
	assert.False(t, ImplicitFor[identifier, string]())
}

type bytesReader struct{}

func (bytesReader) Read([]byte) (int, error) { return 0, io.EOF }

func TestCheckImplicit(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckImplicit[float64, int32]())

	err := CheckImplicit[identifier, string]()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConvertible)

	var ce *ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, TypeOf[string](), ce.From)
	assert.Equal(t, TypeOf[identifier](), ce.To)
	assert.Equal(t, "monads: not convertible: string to monads.identifier", err.Error())
}

func TestConvert(t *testing.T) {
	t.Parallel()

	f, err := Convert[float64](3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	i, err := Convert[int](2.9)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = Convert[celsius](21)
	assert.ErrorIs(t, err, ErrNotConvertible)

	c, err := Convert[float64](celsius(21.5))
	require.NoError(t, err)
	assert.Equal(t, 21.5, c)

	p, err := Convert[*int](nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = Convert[string](65)
	assert.ErrorIs(t, err, ErrNotConvertible)
}

func TestConvertFrom_StaticType(t *testing.T) {
	t.Parallel()

	var r io.Reader
	out, err := ConvertFrom[io.Reader](r)
	require.NoError(t, err)
	assert.Nil(t, out)

	var e error = io.EOF
	got, err := ConvertFrom[error](e)
	require.NoError(t, err)
	assert.Same(t, io.EOF, got)

	assert.Equal(t, 4.0, MustConvertFrom[float64](4))
	assert.Panics(t, func() { MustConvertFrom[identifier]("x") })
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil(&struct{}{}))
}

func TestNilable(t *testing.T) {
	t.Parallel()

	assert.True(t, Nilable(nil))
	assert.True(t, Nilable(TypeOf[error]()))
	assert.True(t, Nilable(TypeOf[[]int]()))
	assert.False(t, Nilable(TypeOf[int]()))
	assert.False(t, Nilable(TypeOf[struct{}]()))
}

func TestValueOf_KeepsInterfaceType(t *testing.T) {
	t.Parallel()

	var err error
	v := ValueOf(err)
	require.True(t, v.IsValid())
	assert.Equal(t, TypeOf[error](), v.Type())
	assert.Equal(t, reflect.Int, ValueOf(1).Kind())
}

func TestException_Panic(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	ex := Capture("try_invoke")
	assert.True(t, ex.Panicked())
	assert.Equal(t, "try_invoke", ex.Value())
	assert.Equal(t, "try_invoke", ex.Error())
	assert.Nil(t, ex.Unwrap())
	assert.Equal(t, time.UTC, ex.CapturedAt().Location())
	assert.False(t, ex.CapturedAt().Before(before))
	assert.PanicsWithValue(t, "try_invoke", ex.Rethrow)
}

func TestException_Error(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("parse: %w", io.ErrUnexpectedEOF)
	ex := CaptureError(cause)
	assert.False(t, ex.Panicked())
	assert.Equal(t, cause.Error(), ex.Error())
	assert.True(t, errors.Is(ex, io.ErrUnexpectedEOF))
	assert.PanicsWithError(t, cause.Error(), ex.Rethrow)
}

func TestException_Identity(t *testing.T) {
	t.Parallel()

	a, b := Capture(1), Capture(1)
	assert.NotEqual(t, a.Id(), b.Id())
	assert.NotSame(t, a, b)

	var err error = a
	assert.True(t, errors.Is(err, a))
	assert.False(t, errors.Is(err, b))
}
