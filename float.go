package rwf

import (
	"math"
	"strconv"
	"strings"

	"github.com/chaisql/rwf/internal/encoding"
	"github.com/cockroachdb/errors"
)

// Float is a 4 byte IEEE 754 primitive.
type Float struct {
	value float32
	blank bool
}

// NewFloat returns a Float holding x.
func NewFloat(x float32) Float {
	return Float{value: x}
}

// BlankFloat returns a blank Float.
func BlankFloat() Float {
	return Float{blank: true}
}

func (v Float) Value() float32 {
	return v.value
}

func (v *Float) Set(x float32) {
	v.value = x
	v.blank = false
}

func (v Float) IsBlank() bool {
	return v.blank
}

func (v *Float) Blank() {
	v.value = 0
	v.blank = true
}

func (v *Float) Clear() {
	*v = Float{}
}

// Equal compares the bit patterns, so NaN equals NaN.
func (v Float) Equal(other Float) bool {
	if v.blank || other.blank {
		return v.blank == other.blank
	}
	return math.Float32bits(v.value) == math.Float32bits(other.value)
}

// Copy copies v into dst.
func (v Float) Copy(dst *Float) error {
	if dst == nil {
		return ErrInvalidArgument
	}
	*dst = v
	return nil
}

func (v Float) String() string {
	if v.blank {
		return ""
	}
	return formatFloat(float64(v.value), 32)
}

// Parse sets v from text. Inf, -Inf and NaN are accepted.
func (v *Float) Parse(s string) error {
	x, blank, err := parseFloat(s, 32)
	if err != nil {
		return err
	}
	if blank {
		v.Blank()
		return nil
	}

	v.Set(float32(x))
	return nil
}

// Encode writes v on four bytes. A blank value takes no bytes.
func (v Float) Encode(it *EncodeIterator) error {
	if v.blank {
		_, err := it.reserve(0)
		return err
	}

	dst, err := it.reserve(4)
	if err != nil {
		return err
	}

	encoding.PutFloat32(dst, v.value)
	return nil
}

// Decode reads v from the bytes remaining at the current level.
func (v *Float) Decode(it *DecodeIterator) error {
	src, err := it.span()
	if err != nil {
		return err
	}

	switch len(src) {
	case 0:
		v.Blank()
		return ErrBlankData
	case 4:
		v.Set(encoding.DecodeFloat32(src))
		return nil
	}

	return ErrIncompleteData
}

// Double is an 8 byte IEEE 754 primitive.
type Double struct {
	value float64
	blank bool
}

// NewDouble returns a Double holding x.
func NewDouble(x float64) Double {
	return Double{value: x}
}

// BlankDouble returns a blank Double.
func BlankDouble() Double {
	return Double{blank: true}
}

func (v Double) Value() float64 {
	return v.value
}

func (v *Double) Set(x float64) {
	v.value = x
	v.blank = false
}

func (v Double) IsBlank() bool {
	return v.blank
}

func (v *Double) Blank() {
	v.value = 0
	v.blank = true
}

func (v *Double) Clear() {
	*v = Double{}
}

// Equal compares the bit patterns, so NaN equals NaN.
func (v Double) Equal(other Double) bool {
	if v.blank || other.blank {
		return v.blank == other.blank
	}
	return math.Float64bits(v.value) == math.Float64bits(other.value)
}

// Copy copies v into dst.
func (v Double) Copy(dst *Double) error {
	if dst == nil {
		return ErrInvalidArgument
	}
	*dst = v
	return nil
}

func (v Double) String() string {
	if v.blank {
		return ""
	}
	return formatFloat(v.value, 64)
}

// Parse sets v from text. Inf, -Inf and NaN are accepted.
func (v *Double) Parse(s string) error {
	x, blank, err := parseFloat(s, 64)
	if err != nil {
		return err
	}
	if blank {
		v.Blank()
		return nil
	}

	v.Set(x)
	return nil
}

// Encode writes v on eight bytes. A blank value takes no bytes.
func (v Double) Encode(it *EncodeIterator) error {
	if v.blank {
		_, err := it.reserve(0)
		return err
	}

	dst, err := it.reserve(8)
	if err != nil {
		return err
	}

	encoding.PutFloat64(dst, v.value)
	return nil
}

// Decode reads v from the bytes remaining at the current level.
func (v *Double) Decode(it *DecodeIterator) error {
	src, err := it.span()
	if err != nil {
		return err
	}

	switch len(src) {
	case 0:
		v.Blank()
		return ErrBlankData
	case 8:
		v.Set(encoding.DecodeFloat64(src))
		return nil
	}

	return ErrIncompleteData
}

func formatFloat(x float64, bitSize int) string {
	switch {
	case math.IsInf(x, 1):
		return "Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	case math.IsNaN(x):
		return "NaN"
	}
	return strconv.FormatFloat(x, 'g', -1, bitSize)
}

func parseFloat(s string, bitSize int) (x float64, blank bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true, nil
	}

	x, err = strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, false, errors.Wrapf(ErrInvalidArgument, "invalid floating point number %q", s)
	}
	return x, false, nil
}
