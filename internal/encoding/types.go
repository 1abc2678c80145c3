package encoding

// Layout of the leading byte of an encoded real.
const (
	// RealBlankByte is the whole encoding of a blank real.
	RealBlankByte byte = 0x20
	// RealHintMask selects the exponent or fraction hint.
	RealHintMask byte = 0x1F
	// RealSpecialMask selects the hint when the blank bit is set,
	// which is how infinities and NaN are written.
	RealSpecialMask byte = 0x3F
	// RealClassMask selects the mantissa width class of the
	// Real4RB and Real8RB encodings.
	RealClassMask byte = 0xC0
	RealClassShift    = 6
)

// Bit layout of the leading byte of an encoded QoS.
const (
	QosTimelinessShift = 5
	QosRateShift       = 1
	QosDynamicFlag     = 0x01
)

// Bit layout of the leading byte of an encoded state.
const (
	StateStreamShift = 3
	StateDataMask    = 0x07
)
