package rwf

import (
	"strconv"
	"strings"

	"github.com/chaisql/rwf/internal/encoding"
	"github.com/cockroachdb/errors"
)

// Int is a signed 64 bit integer primitive.
type Int struct {
	value int64
	blank bool
}

// NewInt returns an Int holding x.
func NewInt(x int64) Int {
	return Int{value: x}
}

// BlankInt returns a blank Int.
func BlankInt() Int {
	return Int{blank: true}
}

func (v Int) Value() int64 {
	return v.value
}

func (v *Int) Set(x int64) {
	v.value = x
	v.blank = false
}

func (v Int) IsBlank() bool {
	return v.blank
}

func (v *Int) Blank() {
	v.value = 0
	v.blank = true
}

func (v *Int) Clear() {
	*v = Int{}
}

func (v Int) Equal(other Int) bool {
	if v.blank || other.blank {
		return v.blank == other.blank
	}
	return v.value == other.value
}

// Copy copies v into dst.
func (v Int) Copy(dst *Int) error {
	if dst == nil {
		return ErrInvalidArgument
	}
	*dst = v
	return nil
}

func (v Int) String() string {
	if v.blank {
		return ""
	}
	return strconv.FormatInt(v.value, 10)
}

// Parse sets v from its decimal representation. Empty or whitespace only
// text blanks v.
func (v *Int) Parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		v.Blank()
		return nil
	}

	x, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errors.Wrapf(ErrInvalidArgument, "invalid int %q", s)
	}

	v.Set(x)
	return nil
}

// Encode writes v with the fewest bytes that hold its two's complement
// representation. A blank value takes no bytes.
func (v Int) Encode(it *EncodeIterator) error {
	if v.blank {
		_, err := it.reserve(0)
		return err
	}

	size := encoding.IntSize(v.value)
	dst, err := it.reserve(size)
	if err != nil {
		return err
	}

	encoding.PutInt(dst, v.value, size)
	return nil
}

// Decode reads v from the bytes remaining at the current level.
func (v *Int) Decode(it *DecodeIterator) error {
	src, err := it.span()
	if err != nil {
		return err
	}

	switch {
	case len(src) == 0:
		v.Blank()
		return ErrBlankData
	case len(src) > 8:
		return ErrInvalidData
	}

	v.Set(encoding.DecodeInt(src))
	return nil
}

// UInt is an unsigned 64 bit integer primitive.
type UInt struct {
	value uint64
	blank bool
}

// NewUInt returns a UInt holding x.
func NewUInt(x uint64) UInt {
	return UInt{value: x}
}

// BlankUInt returns a blank UInt.
func BlankUInt() UInt {
	return UInt{blank: true}
}

func (v UInt) Value() uint64 {
	return v.value
}

func (v *UInt) Set(x uint64) {
	v.value = x
	v.blank = false
}

func (v UInt) IsBlank() bool {
	return v.blank
}

func (v *UInt) Blank() {
	v.value = 0
	v.blank = true
}

func (v *UInt) Clear() {
	*v = UInt{}
}

func (v UInt) Equal(other UInt) bool {
	if v.blank || other.blank {
		return v.blank == other.blank
	}
	return v.value == other.value
}

// Copy copies v into dst.
func (v UInt) Copy(dst *UInt) error {
	if dst == nil {
		return ErrInvalidArgument
	}
	*dst = v
	return nil
}

func (v UInt) String() string {
	if v.blank {
		return ""
	}
	return strconv.FormatUint(v.value, 10)
}

// Parse sets v from its decimal representation, up to 2^64-1. Negative
// numbers are accepted and stored as their two's complement.
func (v *UInt) Parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		v.Blank()
		return nil
	}

	x, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	if err != nil {
		n, ierr := strconv.ParseInt(s, 10, 64)
		if ierr != nil {
			return errors.Wrapf(ErrInvalidArgument, "invalid uint %q", s)
		}
		x = uint64(n)
	}

	v.Set(x)
	return nil
}

// Encode writes v with the fewest bytes that hold it. A blank value takes
// no bytes.
func (v UInt) Encode(it *EncodeIterator) error {
	if v.blank {
		_, err := it.reserve(0)
		return err
	}

	size := encoding.UintSize(v.value)
	dst, err := it.reserve(size)
	if err != nil {
		return err
	}

	encoding.PutUint(dst, v.value, size)
	return nil
}

// Decode reads v from the bytes remaining at the current level.
func (v *UInt) Decode(it *DecodeIterator) error {
	src, err := it.span()
	if err != nil {
		return err
	}

	switch {
	case len(src) == 0:
		v.Blank()
		return ErrBlankData
	case len(src) > 8:
		return ErrInvalidData
	}

	v.Set(encoding.DecodeUint(src))
	return nil
}
