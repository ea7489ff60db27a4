package recarray

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapterForErrors(t *testing.T) {
	_, err := AdapterFor("q8", Native)
	assert.True(t, errors.Is(err, ErrFormat))

	_, err = AdapterFor("i32,i32", Native)
	assert.True(t, errors.Is(err, ErrFormat))

	_, err = AdapterFor("i32", Endian('x'))
	assert.True(t, errors.Is(err, ErrFormat))
	assert.Contains(t, err.Error(), "unknown endian type")
}

func TestAdapterItems(t *testing.T) {
	a, err := AdapterFor("i16", Little)
	require.NoError(t, err)
	assert.Equal(t, "i16", a.Code)
	assert.Equal(t, 2, a.Size)

	assert.Equal(t, int64(0x0201), a.GetItem([]byte{0x01, 0x02}))

	b := make([]byte, 2)
	require.NoError(t, a.SetItem(b, -2))
	assert.Equal(t, []byte{0xfe, 0xff}, b)
	assert.Equal(t, int64(-2), a.GetItem(b))

	big, err := AdapterFor("i16", Big)
	require.NoError(t, err)
	require.NoError(t, big.SetItem(b, -2))
	assert.Equal(t, []byte{0xff, 0xfe}, b)
}

func TestAdapterCompare(t *testing.T) {
	a, err := AdapterFor("i32", Native)
	require.NoError(t, err)

	one, two := make([]byte, 4), make([]byte, 4)
	require.NoError(t, a.SetItem(one, 1))
	require.NoError(t, a.SetItem(two, 2))
	assert.Equal(t, -1, a.Compare(one, two))
	assert.Equal(t, 1, a.Compare(two, one))
	assert.Equal(t, 0, a.Compare(one, one))

	s, err := AdapterFor("s3", Native)
	require.NoError(t, err)
	assert.Equal(t, -1, s.Compare([]byte("abc"), []byte("abd")))
	assert.Equal(t, 0, s.Compare([]byte("abc"), []byte("abc")))
}

func TestAdapterCompareNaN(t *testing.T) {
	a, err := AdapterFor("f64", Native)
	require.NoError(t, err)

	nan, one := make([]byte, 8), make([]byte, 8)
	require.NoError(t, a.SetItem(nan, math.NaN()))
	require.NoError(t, a.SetItem(one, 1.0))

	// NaN sorts after every number
	assert.Equal(t, 1, a.Compare(nan, one))
	assert.Equal(t, -1, a.Compare(one, nan))
	assert.Equal(t, 0, a.Compare(nan, nan))
}

func TestAdapterReduce(t *testing.T) {
	a, err := AdapterFor("i16", Big)
	require.NoError(t, err)

	buf := make([]byte, 8)
	for i, v := range []int{3, -7, 12, 0} {
		require.NoError(t, a.SetItem(buf[i*2:], v))
	}
	assert.Equal(t, int64(-7), a.Min(buf))
	assert.Equal(t, int64(12), a.Max(buf))

	assert.Nil(t, a.Min(nil))
	assert.Nil(t, a.Max([]byte{0}))
}

func TestAdapterReduceFloatNaN(t *testing.T) {
	for _, code := range []string{"f32", "f64"} {
		t.Run(code, func(t *testing.T) {
			a, err := AdapterFor(code, Native)
			require.NoError(t, err)

			buf := make([]byte, 4*a.Size)
			for i, v := range []float64{2.5, math.NaN(), -1.5, math.NaN()} {
				require.NoError(t, a.SetItem(buf[i*a.Size:], v))
			}
			assert.Equal(t, -1.5, a.Min(buf))
			assert.Equal(t, 2.5, a.Max(buf))

			// an all-NaN run reduces to NaN, an empty run to nil
			require.NoError(t, a.SetItem(buf[0:], math.NaN()))
			require.NoError(t, a.SetItem(buf[2*a.Size:], math.NaN()))
			assert.True(t, math.IsNaN(a.Min(buf).(float64)))
			assert.Nil(t, a.Max(nil))
		})
	}
}
