package rwf

import (
	"strconv"
	"strings"

	"github.com/chaisql/rwf/internal/encoding"
	"github.com/cockroachdb/errors"
)

// Enum is an enumerated value, resolved to its display text through a
// field dictionary.
type Enum struct {
	value uint16
	blank bool
}

// NewEnum returns an Enum holding x.
func NewEnum(x uint16) Enum {
	return Enum{value: x}
}

// BlankEnum returns a blank Enum.
func BlankEnum() Enum {
	return Enum{blank: true}
}

func (v Enum) Value() uint16 {
	return v.value
}

func (v *Enum) Set(x uint16) {
	v.value = x
	v.blank = false
}

// SetInt sets v from an int, failing when x doesn't fit in 16 bits.
func (v *Enum) SetInt(x int) error {
	if x < 0 || x > 0xFFFF {
		return invalidArgf("enum %d out of range", x)
	}
	v.Set(uint16(x))
	return nil
}

func (v Enum) IsBlank() bool {
	return v.blank
}

func (v *Enum) Blank() {
	v.value = 0
	v.blank = true
}

func (v *Enum) Clear() {
	*v = Enum{}
}

func (v Enum) Equal(other Enum) bool {
	if v.blank || other.blank {
		return v.blank == other.blank
	}
	return v.value == other.value
}

// Copy copies v into dst.
func (v Enum) Copy(dst *Enum) error {
	if dst == nil {
		return ErrInvalidArgument
	}
	*dst = v
	return nil
}

func (v Enum) String() string {
	if v.blank {
		return ""
	}
	return strconv.FormatUint(uint64(v.value), 10)
}

// Parse sets v from its decimal representation.
func (v *Enum) Parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		v.Blank()
		return nil
	}

	x, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return errors.Wrapf(ErrInvalidArgument, "invalid enum %q", s)
	}

	v.Set(uint16(x))
	return nil
}

// Encode writes v on one or two bytes. A blank value takes no bytes.
func (v Enum) Encode(it *EncodeIterator) error {
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
func (v *Enum) Decode(it *DecodeIterator) error {
	src, err := it.span()
	if err != nil {
		return err
	}

	switch {
	case len(src) == 0:
		v.Blank()
		return ErrBlankData
	case len(src) > 2:
		return ErrInvalidData
	}

	v.Set(uint16(encoding.DecodeUint(src)))
	return nil
}
