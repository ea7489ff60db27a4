package itemtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSetRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		in   any
		want any
	}{
		{"uint8", UInt8, 200, int64(200)},
		{"sint8", SInt8, -5, int64(-5)},
		{"uint16", UInt16, 60000, int64(60000)},
		{"sint16", SInt16, -30000, int64(-30000)},
		{"uint32", UInt32, uint32(4000000000), int64(4000000000)},
		{"sint32", SInt32, -2000000000, int64(-2000000000)},
		{"float32", Float32, float32(1.5), float64(1.5)},
		{"float64", Float64, 3.25, 3.25},
		{"complex32", Complex32, complex64(complex(1.5, -2.5)), complex(1.5, -2.5)},
		{"complex64", Complex64, complex(1.25, 7.0), complex(1.25, 7.0)},
	}

	for _, tt := range tests {
		for _, swap := range []bool{false, true} {
			name := tt.name
			if swap {
				name += "/swapped"
			}
			t.Run(name, func(t *testing.T) {
				b := make([]byte, SizeOf(tt.typ))
				require.NoError(t, Set(tt.typ, b, swap, tt.in))
				assert.Equal(t, tt.want, Get(tt.typ, b, swap))
			})
		}
	}
}

func TestSetIntegerWraparound(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		in   any
		want int64
	}{
		{"uint8 from 300", UInt8, 300, 44},
		{"uint8 from -1", UInt8, -1, 255},
		{"sint8 from 200", SInt8, 200, -56},
		{"sint16 from 0x12345", SInt16, 0x12345, 0x2345},
		{"uint32 from -1", UInt32, -1, 4294967295},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := make([]byte, SizeOf(tt.typ))
			require.NoError(t, Set(tt.typ, b, false, tt.in))
			assert.Equal(t, tt.want, Get(tt.typ, b, false))
		})
	}
}

func TestSetFloatTruncatesTowardZero(t *testing.T) {
	b := make([]byte, 4)
	require.NoError(t, Set(SInt32, b, false, 2.9))
	assert.Equal(t, int64(2), Get(SInt32, b, false))
	require.NoError(t, Set(SInt32, b, false, -2.9))
	assert.Equal(t, int64(-2), Get(SInt32, b, false))
}

func TestSetRejectsWrongKinds(t *testing.T) {
	b := make([]byte, 16)
	assert.Error(t, Set(SInt32, b[:4], false, "12"))
	assert.Error(t, Set(Float64, b[:8], false, complex(1, 2)))
	assert.Error(t, Set(String, b[:4], false, 7))
	assert.Error(t, Set(Complex64, b, false, "x"))
}

func TestStringFields(t *testing.T) {
	b := make([]byte, 6)
	require.NoError(t, Set(String, b, false, "abc"))
	// get returns the full field width, space padded
	assert.Equal(t, "abc   ", Get(String, b, false))

	require.NoError(t, Set(String, b, false, "abcdefgh"))
	assert.Equal(t, "abcdef", Get(String, b, false))

	c := make([]byte, 1)
	require.NoError(t, Set(Char8, c, false, "xyz"))
	assert.Equal(t, "x", Get(Char8, c, false))
	// an empty string pads like any short string
	require.NoError(t, Set(Char8, c, false, ""))
	assert.Equal(t, " ", Get(Char8, c, false))
}

func TestSwapFlagByteLayout(t *testing.T) {
	// written under a big-endian tag, the raw bytes must be
	// most-significant first on any host
	b := make([]byte, 2)
	require.NoError(t, Set(UInt16, b, SwapFor('>'), 0x0102))
	assert.Equal(t, []byte{0x01, 0x02}, b)

	require.NoError(t, Set(UInt16, b, SwapFor('<'), 0x0102))
	assert.Equal(t, []byte{0x02, 0x01}, b)

	// network order is big-endian
	assert.Equal(t, SwapFor('>'), SwapFor('!'))
	assert.False(t, SwapFor('='))
}

func TestValidEndian(t *testing.T) {
	for _, c := range []byte{'=', '<', '>', '!'} {
		assert.True(t, ValidEndian(c))
	}
	assert.False(t, ValidEndian('x'))
	assert.False(t, ValidEndian(0))
}
