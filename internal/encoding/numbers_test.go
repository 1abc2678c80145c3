package encoding_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/chaisql/rwf/internal/encoding"
	"github.com/stretchr/testify/require"
)

func TestIntSize(t *testing.T) {
	tests := []struct {
		n    int64
		want int
	}{
		{0, 1},
		{127, 1},
		{-128, 1},
		{128, 2},
		{-129, 2},
		{32767, 2},
		{32768, 3},
		{1 << 31, 5},
		{math.MaxInt64, 8},
		{math.MinInt64, 8},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%d", test.n), func(t *testing.T) {
			require.Equal(t, test.want, encoding.IntSize(test.n))

			dst := make([]byte, test.want)
			encoding.PutInt(dst, test.n, test.want)
			require.Equal(t, test.n, encoding.DecodeInt(dst))
		})
	}
}

func TestUintSize(t *testing.T) {
	tests := []struct {
		n    uint64
		want int
	}{
		{0, 1},
		{255, 1},
		{256, 2},
		{1 << 32, 5},
		{math.MaxUint64, 8},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%d", test.n), func(t *testing.T) {
			require.Equal(t, test.want, encoding.UintSize(test.n))

			dst := make([]byte, test.want)
			encoding.PutUint(dst, test.n, test.want)
			require.Equal(t, test.n, encoding.DecodeUint(dst))
		})
	}
}

func TestDecodeIntSignExtends(t *testing.T) {
	require.EqualValues(t, -1, encoding.DecodeInt([]byte{0xFF}))
	require.EqualValues(t, -256, encoding.DecodeInt([]byte{0xFF, 0x00}))
	require.EqualValues(t, 255, encoding.DecodeInt([]byte{0x00, 0xFF}))
	require.Zero(t, encoding.DecodeInt(nil))
}

func TestFixedWidth(t *testing.T) {
	b := make([]byte, 8)

	encoding.PutUint16(b, 0x1234)
	require.Equal(t, []byte{0x12, 0x34}, b[:2])
	require.EqualValues(t, 0x1234, encoding.DecodeUint16(b))

	encoding.PutUint32(b, 0xDEADBEEF)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, b[:4])
	require.EqualValues(t, uint32(0xDEADBEEF), encoding.DecodeUint32(b))

	encoding.PutFloat32(b, 1.5)
	require.Equal(t, []byte{0x3F, 0xC0, 0x00, 0x00}, b[:4])
	require.Equal(t, float32(1.5), encoding.DecodeFloat32(b))

	encoding.PutFloat64(b, -2.25)
	require.Equal(t, -2.25, encoding.DecodeFloat64(b))
}
