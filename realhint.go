package rwf

import "fmt"

// RealHint tells how the mantissa of a Real is scaled: by a power of ten,
// by a power of two denominator, or not at all for the special values.
type RealHint uint8

// List of hints.
const (
	Exponent_14 RealHint = iota
	Exponent_13
	Exponent_12
	Exponent_11
	Exponent_10
	Exponent_9
	Exponent_8
	Exponent_7
	Exponent_6
	Exponent_5
	Exponent_4
	Exponent_3
	Exponent_2
	Exponent_1
	Exponent0
	Exponent1
	Exponent2
	Exponent3
	Exponent4
	Exponent5
	Exponent6
	Exponent7
	Fraction1
	Fraction2
	Fraction4
	Fraction8
	Fraction16
	Fraction32
	Fraction64
	Fraction128
	Fraction256

	// Infinity, NegInfinity and NotANumber ignore the mantissa.
	Infinity    RealHint = 33
	NegInfinity RealHint = 34
	NotANumber  RealHint = 35
)

const maxDivisor = Fraction256

// IsValid reports whether h can be set on a Real.
func (h RealHint) IsValid() bool {
	return h <= maxDivisor || h.IsSpecial()
}

// IsSpecial reports whether h denotes infinity or NaN.
func (h RealHint) IsSpecial() bool {
	return h == Infinity || h == NegInfinity || h == NotANumber
}

// IsExponent reports whether h scales by a power of ten.
func (h RealHint) IsExponent() bool {
	return h <= Exponent7
}

// IsFraction reports whether h scales by a power of two denominator.
func (h RealHint) IsFraction() bool {
	return h >= Fraction1 && h <= Fraction256
}

// Exponent returns the power of ten of an exponent hint.
func (h RealHint) Exponent() int {
	return int(h) - int(Exponent0)
}

// Denominator returns the denominator of a fraction hint.
func (h RealHint) Denominator() int64 {
	return 1 << (h - Fraction1)
}

// ExponentHint returns the hint for 10^exp.
func ExponentHint(exp int) (RealHint, error) {
	if exp < -14 || exp > 7 {
		return 0, invalidArgf("exponent %d out of range", exp)
	}
	return RealHint(exp + int(Exponent0)), nil
}

// FractionHint returns the hint for 1/denominator.
func FractionHint(denominator int64) (RealHint, error) {
	for h := Fraction1; h <= Fraction256; h++ {
		if h.Denominator() == denominator {
			return h, nil
		}
	}
	return 0, invalidArgf("invalid denominator %d", denominator)
}

func (h RealHint) String() string {
	switch {
	case h == Infinity:
		return "Infinity"
	case h == NegInfinity:
		return "NegInfinity"
	case h == NotANumber:
		return "NotANumber"
	case h.IsExponent():
		if h < Exponent0 {
			return fmt.Sprintf("Exponent_%d", -h.Exponent())
		}
		return fmt.Sprintf("Exponent%d", h.Exponent())
	case h.IsFraction():
		return fmt.Sprintf("Fraction%d", h.Denominator())
	}

	return fmt.Sprintf("RealHint(%d)", uint8(h))
}
