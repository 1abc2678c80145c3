package encoding

// MaxRB15 is the largest length a resource-bit prefix can carry.
const MaxRB15 = 0x7FFF

// RB15Size returns the number of bytes PutRB15 uses for n:
// one below 0x80, two otherwise.
func RB15Size(n int) int {
	if n < 0x80 {
		return 1
	}
	return 2
}

// PutRB15 writes n as a 15 bit length prefix. The two byte form
// sets the high bit of the first byte. It returns the number of
// bytes written.
func PutRB15(dst []byte, n int) int {
	if n < 0x80 {
		dst[0] = byte(n)
		return 1
	}

	PutUint16(dst, uint16(n)|0x8000)
	return 2
}

// DecodeRB15 reads a length prefix written by PutRB15. It returns
// the length and the size of the prefix, or a zero size if b is
// too short.
func DecodeRB15(b []byte) (int, int) {
	if len(b) == 0 {
		return 0, 0
	}

	if b[0]&0x80 == 0 {
		return int(b[0]), 1
	}

	if len(b) < 2 {
		return 0, 0
	}
	return int(DecodeUint16(b) & MaxRB15), 2
}
