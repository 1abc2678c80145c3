package rwf

import (
	"math"
	"math/big"

	"github.com/chaisql/rwf/internal/encoding"
	"github.com/cockroachdb/errors"
)

// Real is a decimal or fractional number: a 64 bit mantissa scaled as
// told by its hint.
type Real struct {
	mantissa int64
	hint     RealHint
	blank    bool
}

// NewReal returns a Real of mantissa scaled by hint.
func NewReal(mantissa int64, hint RealHint) (Real, error) {
	var r Real
	err := r.Set(mantissa, hint)
	return r, err
}

// BlankReal returns a blank Real.
func BlankReal() Real {
	return Real{blank: true}
}

// Set sets the mantissa and the hint.
func (r *Real) Set(mantissa int64, hint RealHint) error {
	if !hint.IsValid() {
		return invalidArgf("invalid real hint %d", hint)
	}

	if hint.IsSpecial() {
		mantissa = 0
	}
	r.mantissa = mantissa
	r.hint = hint
	r.blank = false
	return nil
}

// SetFloat64 sets r to x rounded to the precision of hint. Infinities and
// NaN select the matching special hint.
func (r *Real) SetFloat64(x float64, hint RealHint) error {
	if !hint.IsValid() {
		return invalidArgf("invalid real hint %d", hint)
	}

	switch {
	case math.IsNaN(x):
		return r.Set(0, NotANumber)
	case math.IsInf(x, 1):
		return r.Set(0, Infinity)
	case math.IsInf(x, -1):
		return r.Set(0, NegInfinity)
	case hint.IsSpecial():
		return r.Set(0, hint)
	}

	var scaled float64
	switch {
	case hint.IsFraction():
		scaled = x * float64(hint.Denominator())
	case hint.Exponent() < 0:
		scaled = x * pow10[-hint.Exponent()]
	default:
		scaled = x / pow10[hint.Exponent()]
	}

	scaled = math.Round(scaled)
	if scaled >= math.MaxInt64 || scaled < math.MinInt64 {
		return errors.Wrapf(ErrValueOutOfRange, "%g does not fit with hint %s", x, hint)
	}

	return r.Set(int64(scaled), hint)
}

// SetFloat32 is SetFloat64 for a float32. The value is rounded through
// its shortest decimal representation so that float32 noise doesn't
// reach the mantissa.
func (r *Real) SetFloat32(x float32, hint RealHint) error {
	return r.SetFloat64(float32To64(x), hint)
}

func (r Real) Mantissa() int64 {
	return r.mantissa
}

func (r Real) Hint() RealHint {
	return r.hint
}

// Int64 returns the raw mantissa.
func (r Real) Int64() int64 {
	return r.mantissa
}

// Float64 returns the value of r. A blank Real is zero.
func (r Real) Float64() float64 {
	if r.blank {
		return 0
	}

	switch r.hint {
	case Infinity:
		return math.Inf(1)
	case NegInfinity:
		return math.Inf(-1)
	case NotANumber:
		return math.NaN()
	}

	m := float64(r.mantissa)
	switch {
	case r.hint.IsFraction():
		return m / float64(r.hint.Denominator())
	case r.hint.Exponent() < 0:
		return m / pow10[-r.hint.Exponent()]
	default:
		return m * pow10[r.hint.Exponent()]
	}
}

func (r Real) IsBlank() bool {
	return r.blank
}

func (r *Real) Blank() {
	*r = Real{blank: true}
}

func (r *Real) Clear() {
	*r = Real{}
}

// Equal reports whether both reals have the same hint and mantissa.
func (r Real) Equal(other Real) bool {
	if r.blank || other.blank {
		return r.blank == other.blank
	}
	return r.hint == other.hint && r.mantissa == other.mantissa
}

// EqualValue reports whether both reals stand for the same number,
// whatever their hints. 500 with Exponent0 and 5 with Exponent2 are
// equal values but not Equal. Special values match on their hint only.
func (r Real) EqualValue(other Real) bool {
	if r.blank || other.blank {
		return r.blank == other.blank
	}
	if r.hint.IsSpecial() || other.hint.IsSpecial() {
		return r.hint == other.hint
	}
	return r.rat().Cmp(other.rat()) == 0
}

// rat returns the exact value of a non special real.
func (r Real) rat() *big.Rat {
	v := new(big.Rat).SetInt64(r.mantissa)
	if r.hint.IsFraction() {
		return v.Quo(v, new(big.Rat).SetInt64(r.hint.Denominator()))
	}

	exp := r.hint.Exponent()
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(exp))), nil)
	if exp < 0 {
		return v.Quo(v, new(big.Rat).SetInt(scale))
	}
	return v.Mul(v, new(big.Rat).SetInt(scale))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Copy copies r into dst.
func (r Real) Copy(dst *Real) error {
	if dst == nil {
		return ErrInvalidArgument
	}
	*dst = r
	return nil
}

// Encode writes the hint byte followed by the mantissa on as few bytes as
// possible. Blank and special values take a single byte.
func (r Real) Encode(it *EncodeIterator) error {
	if r.blank || r.hint.IsSpecial() {
		return r.encodeSingleByte(it)
	}

	size := encoding.IntSize(r.mantissa)
	dst, err := it.reserve(1 + size)
	if err != nil {
		return err
	}

	dst[0] = byte(r.hint)
	encoding.PutInt(dst[1:], r.mantissa, size)
	return nil
}

// Decode reads r from the bytes remaining at the current level.
func (r *Real) Decode(it *DecodeIterator) error {
	src, err := it.span()
	if err != nil {
		return err
	}

	if len(src) == 0 {
		r.Blank()
		return ErrBlankData
	}

	return r.decodeBytes(src)
}

// EncodeReal4RB writes r with the self-describing Real4RB layout: the two
// high bits of the hint byte give the mantissa size, from one to four
// bytes. Mantissas that need more fail with ErrValueOutOfRange.
func (r Real) EncodeReal4RB(it *EncodeIterator) error {
	if r.blank || r.hint.IsSpecial() {
		return r.encodeSingleByte(it)
	}

	size := encoding.IntSize(r.mantissa)
	if size > 4 {
		return errors.Wrapf(ErrValueOutOfRange, "mantissa %d needs %d bytes", r.mantissa, size)
	}

	return r.encodeClass(it, size, byte(size-1))
}

// EncodeReal8RB writes r with the self-describing Real8RB layout: the two
// high bits of the hint byte give the mantissa size, 2, 4, 6 or 8 bytes.
func (r Real) EncodeReal8RB(it *EncodeIterator) error {
	if r.blank || r.hint.IsSpecial() {
		return r.encodeSingleByte(it)
	}

	size := encoding.IntSize(r.mantissa)
	size += size & 1
	return r.encodeClass(it, size, byte(size/2-1))
}

// DecodeReal4RB reads a Real4RB value at the cursor and moves past it.
func (r *Real) DecodeReal4RB(it *DecodeIterator) error {
	return r.decodeRB(it, func(class int) int { return class + 1 })
}

// DecodeReal8RB reads a Real8RB value at the cursor and moves past it.
func (r *Real) DecodeReal8RB(it *DecodeIterator) error {
	return r.decodeRB(it, func(class int) int { return (class + 1) * 2 })
}

func (r Real) encodeSingleByte(it *EncodeIterator) error {
	dst, err := it.reserve(1)
	if err != nil {
		return err
	}

	if r.blank {
		dst[0] = encoding.RealBlankByte
	} else {
		dst[0] = byte(r.hint)
	}
	return nil
}

func (r Real) encodeClass(it *EncodeIterator, size int, class byte) error {
	dst, err := it.reserve(1 + size)
	if err != nil {
		return err
	}

	dst[0] = byte(r.hint) | class<<encoding.RealClassShift
	encoding.PutInt(dst[1:], r.mantissa, size)
	return nil
}

func (r *Real) decodeRB(it *DecodeIterator, mantissaSize func(class int) int) error {
	head, err := it.span()
	if err != nil {
		return err
	}
	if len(head) == 0 {
		return ErrIncompleteData
	}

	n := 1
	if head[0]&encoding.RealBlankByte == 0 {
		n += mantissaSize(int(head[0]&encoding.RealClassMask) >> encoding.RealClassShift)
	}

	src, err := it.next(n)
	if err != nil {
		return err
	}

	return r.decodeBytes(src)
}

func (r *Real) decodeBytes(src []byte) error {
	b := src[0]
	if b&encoding.RealBlankByte != 0 {
		if h := RealHint(b & encoding.RealSpecialMask); h.IsSpecial() {
			return r.Set(0, h)
		}
		r.Blank()
		return ErrBlankData
	}

	if len(src) == 1 {
		r.Blank()
		return ErrBlankData
	}
	if len(src) > 9 {
		return ErrInvalidData
	}

	hint := RealHint(b & encoding.RealHintMask)
	if !hint.IsValid() {
		return errors.Wrapf(ErrInvalidData, "invalid real hint %d", hint)
	}

	r.mantissa = encoding.DecodeInt(src[1:])
	r.hint = hint
	r.blank = false
	return nil
}

var pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14,
}
