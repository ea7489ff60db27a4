package recarray

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferredFormats(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		format string
	}{
		{"integers", []any{Tuple{1, 2}}, "=i32,i32"},
		{"float wins over int", []any{Tuple{1}, Tuple{2.5}}, "=f64"},
		{"complex wins over float", []any{Tuple{1.5}, Tuple{complex(1, 2)}}, "=F64"},
		{"widest string wins", []any{Tuple{"ab"}, Tuple{"abcde"}, Tuple{"a"}}, "=s5"},
		{"bytes as strings", []any{Tuple{[]byte("abc")}}, "=s3"},
		{"mixed columns", []any{Tuple{1, "ab", 2.0}, Tuple{2, "wxyz", 3.0}}, "=i32,s4,f64"},
		{"float32 widens", []any{Tuple{float32(1.5)}}, "=f64"},
		{"bare tuple", Tuple{1, 2.5}, "=i32,f64"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := FromSequence(tc.data)
			require.NoError(t, err)
			assert.Equal(t, tc.format, r.Format())
		})
	}
}

func TestInferenceErrors(t *testing.T) {
	tests := []struct {
		name string
		data any
		want error
	}{
		{"scalar", 7, ErrShape},
		{"ragged lists", []any{[]any{Tuple{1}, Tuple{2}}, []any{Tuple{3}}}, ErrShape},
		{"uneven arity", []any{Tuple{1, 2}, Tuple{3}}, ErrShape},
		{"uneven nesting", []any{Tuple{1}, []any{Tuple{2}}}, ErrShape},
		{"tuple inside tuple depth", []any{[]any{Tuple{1}}, Tuple{2}}, ErrShape},
		{"empty list", []any{}, ErrShape},
		{"unsupported element", []any{Tuple{true}}, ErrType},
		{"string then numeric in a column", []any{Tuple{"abc"}, Tuple{7}}, ErrType},
		{"numeric then string in a column", []any{Tuple{7}, Tuple{"abc"}}, ErrType},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromSequence(tc.data)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestNestedValueRoundTrip(t *testing.T) {
	data := []any{
		[]any{Tuple{1, "a"}, Tuple{2, "b"}},
		[]any{Tuple{3, "c"}, Tuple{4, "d"}},
	}
	r, err := FromSequence(data)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, r.Shape())

	want := []any{
		[]any{Tuple{int64(1), "a"}, Tuple{int64(2), "b"}},
		[]any{Tuple{int64(3), "c"}, Tuple{int64(4), "d"}},
	}
	assert.Equal(t, want, r.Value())

	v, err := r.Get(Key{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

func TestSetValueArity(t *testing.T) {
	r, err := FromSequence([]any{Tuple{1, 2}, Tuple{3, 4}})
	require.NoError(t, err)

	err = r.SetValue([]any{Tuple{5, 6}})
	assert.True(t, errors.Is(err, ErrShape))

	err = r.SetValue([]any{Tuple{5, 6}, Tuple{7}})
	assert.True(t, errors.Is(err, ErrShape))

	// a scalar only stands in for a one-element selection
	err = r.Set(Key{0, 0}, 9)
	require.NoError(t, err)
	err = r.Set(0, 9)
	assert.True(t, errors.Is(err, ErrShape))
}

func TestSetValueDoesNotRollBack(t *testing.T) {
	r, err := FromSequence([]any{Tuple{1}, Tuple{2}})
	require.NoError(t, err)

	err = r.SetValue([]any{Tuple{9}, Tuple{"x"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrType))

	// the first record was written before the failure
	v, err := r.Get(Key{0, 0})
	require.NoError(t, err)
	assert.Equal(t, int64(9), v)
	v, err = r.Get(Key{1, 0})
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}

func TestSpanNormalization(t *testing.T) {
	rows := make([]any, 5)
	for i := range rows {
		rows[i] = Tuple{i}
	}
	r, err := FromSequence(rows)
	require.NoError(t, err)

	shapeOf := func(key any) []int {
		t.Helper()
		v, err := r.Get(key)
		require.NoError(t, err)
		return v.(*Record).Shape()
	}
	valueOf := func(key any) any {
		t.Helper()
		v, err := r.Get(key)
		require.NoError(t, err)
		return v.(*Record).Value()
	}

	assert.Equal(t, []int{5, 1}, shapeOf(All()))
	assert.Equal(t, []int{2, 1}, shapeOf(NewSpan(3, End)))
	assert.Equal(t, []int{2, 1}, shapeOf(NewSpan(-2, End)))
	assert.Equal(t, []int{5, 1}, shapeOf(NewSpan(-100, 100)))
	assert.Equal(t, []int{3, 1}, shapeOf(All().By(2)))
	assert.Equal(t, []int{5, 1}, shapeOf(Span{Start: End, Stop: Begin}.By(-1)))

	assert.Equal(t, []any{Tuple{int64(3)}, Tuple{int64(4)}}, valueOf(NewSpan(3, End)))
	assert.Equal(t, []any{Tuple{int64(0)}, Tuple{int64(2)}, Tuple{int64(4)}}, valueOf(All().By(2)))
	assert.Equal(t,
		[]any{Tuple{int64(4)}, Tuple{int64(3)}, Tuple{int64(2)}, Tuple{int64(1)}, Tuple{int64(0)}},
		valueOf(Span{Start: End, Stop: Begin}.By(-1)))

	// an empty span is a valid view of length zero
	empty, err := r.Get(NewSpan(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.(*Record).Len())
}
