package encoding

// DateSize is the encoded size of a date: day, month and a two byte year.
const DateSize = 4

func PutDate(dst []byte, day, month uint8, year uint16) {
	dst[0] = day
	dst[1] = month
	PutUint16(dst[2:], year)
}

func DecodeDate(b []byte) (day, month uint8, year uint16) {
	return b[0], b[1], DecodeUint16(b[2:])
}

// PackMicroNano folds the high three bits of nano into bits 11-13 of the
// microsecond word. The low byte of nano is returned separately.
func PackMicroNano(micro, nano uint16) (uint16, byte) {
	return (nano&0xFF00)<<3 | micro, byte(nano)
}

// UnpackMicroNano reverses PackMicroNano.
func UnpackMicroNano(word uint16, low byte) (micro, nano uint16) {
	micro = word & 0x07FF
	nano = (word&0x3800)>>3 | uint16(low)
	return micro, nano
}
