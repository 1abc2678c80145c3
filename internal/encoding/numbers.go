package encoding

import (
	"math"

	"golang.org/x/exp/constraints"
)

// UintSize returns the minimum number of bytes needed to
// write n in big endian. Zero still takes one byte.
func UintSize[T constraints.Unsigned](n T) int {
	x := uint64(n)
	size := 1
	for x > math.MaxUint8 {
		x >>= 8
		size++
	}
	return size
}

// IntSize returns the minimum number of bytes needed to write
// n as a big endian two's complement integer.
func IntSize[T constraints.Signed](n T) int {
	x := int64(n)
	for size := 1; size < 8; size++ {
		limit := int64(1) << (size*8 - 1)
		if x >= -limit && x < limit {
			return size
		}
	}
	return 8
}

// PutUint writes the size low order bytes of n into dst, most
// significant first.
func PutUint[T constraints.Unsigned](dst []byte, n T, size int) {
	x := uint64(n)
	for i := size - 1; i >= 0; i-- {
		dst[i] = byte(x)
		x >>= 8
	}
}

// PutInt is PutUint for signed integers. Truncation keeps the two's
// complement representation intact as long as size >= IntSize(n).
func PutInt[T constraints.Signed](dst []byte, n T, size int) {
	PutUint(dst, uint64(int64(n)), size)
}

// DecodeUint reads a big endian unsigned integer of len(b) bytes.
func DecodeUint(b []byte) uint64 {
	var x uint64
	for _, c := range b {
		x = x<<8 | uint64(c)
	}
	return x
}

// DecodeInt reads a big endian two's complement integer of len(b)
// bytes and sign extends it.
func DecodeInt(b []byte) int64 {
	if len(b) == 0 {
		return 0
	}
	x := int64(int8(b[0]))
	for _, c := range b[1:] {
		x = x<<8 | int64(c)
	}
	return x
}

func PutUint16(dst []byte, n uint16) {
	dst[0] = byte(n >> 8)
	dst[1] = byte(n)
}

func PutUint32(dst []byte, n uint32) {
	dst[0] = byte(n >> 24)
	dst[1] = byte(n >> 16)
	dst[2] = byte(n >> 8)
	dst[3] = byte(n)
}

func PutUint64(dst []byte, n uint64) {
	dst[0] = byte(n >> 56)
	dst[1] = byte(n >> 48)
	dst[2] = byte(n >> 40)
	dst[3] = byte(n >> 32)
	dst[4] = byte(n >> 24)
	dst[5] = byte(n >> 16)
	dst[6] = byte(n >> 8)
	dst[7] = byte(n)
}

func DecodeUint16(b []byte) uint16 {
	return (uint16(b[0]) << 8) | uint16(b[1])
}

func DecodeUint32(b []byte) uint32 {
	return (uint32(b[0]) << 24) |
		(uint32(b[1]) << 16) |
		(uint32(b[2]) << 8) |
		uint32(b[3])
}

func DecodeUint64(b []byte) uint64 {
	return (uint64(b[0]) << 56) |
		(uint64(b[1]) << 48) |
		(uint64(b[2]) << 40) |
		(uint64(b[3]) << 32) |
		(uint64(b[4]) << 24) |
		(uint64(b[5]) << 16) |
		(uint64(b[6]) << 8) |
		uint64(b[7])
}

func PutFloat32(dst []byte, x float32) {
	PutUint32(dst, math.Float32bits(x))
}

func PutFloat64(dst []byte, x float64) {
	PutUint64(dst, math.Float64bits(x))
}

func DecodeFloat32(b []byte) float32 {
	return math.Float32frombits(DecodeUint32(b))
}

func DecodeFloat64(b []byte) float64 {
	return math.Float64frombits(DecodeUint64(b))
}
