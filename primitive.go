package rwf

import (
	"github.com/cockroachdb/errors"
)

// Primitive holds a value of any primitive type along with its DataType.
// The zero Primitive has the unknown type and holds nothing.
type Primitive struct {
	typ   DataType
	value any
}

// BlankPrimitive returns a blank value of type t.
func BlankPrimitive(t DataType) (Primitive, error) {
	var v any
	switch {
	case t == DataTypeInt:
		v = BlankInt()
	case t == DataTypeUInt:
		v = BlankUInt()
	case t == DataTypeFloat:
		v = BlankFloat()
	case t == DataTypeDouble:
		v = BlankDouble()
	case t == DataTypeReal, t == DataTypeReal4RB, t == DataTypeReal8RB:
		v = BlankReal()
	case t == DataTypeDate:
		v = BlankDate()
	case t == DataTypeTime:
		v = BlankTime()
	case t == DataTypeDateTime:
		v = BlankDateTime()
	case t == DataTypeQos:
		v = BlankQos()
	case t == DataTypeState:
		v = BlankState()
	case t == DataTypeEnum:
		v = BlankEnum()
	case t.IsString():
		v = Buffer{}
	default:
		return Primitive{}, invalidArgf("%s is not a primitive type", t)
	}

	return Primitive{typ: t, value: v}, nil
}

// NewPrimitive returns a Primitive of type t holding v, which must be of
// the Go type matching t: Int for DataTypeInt, Real for the three real
// types, Buffer for the string types and so on.
func NewPrimitive(t DataType, v any) (Primitive, error) {
	p, err := BlankPrimitive(t)
	if err != nil {
		return Primitive{}, err
	}

	if b, ok := v.(*Buffer); ok {
		v = *b
	}
	if !sameType(p.value, v) {
		return Primitive{}, invalidArgf("cannot hold a %T in a %s primitive", v, t)
	}
	p.value = v
	return p, nil
}

func sameType(a, b any) bool {
	switch a.(type) {
	case Int:
		_, ok := b.(Int)
		return ok
	case UInt:
		_, ok := b.(UInt)
		return ok
	case Float:
		_, ok := b.(Float)
		return ok
	case Double:
		_, ok := b.(Double)
		return ok
	case Real:
		_, ok := b.(Real)
		return ok
	case Date:
		_, ok := b.(Date)
		return ok
	case Time:
		_, ok := b.(Time)
		return ok
	case DateTime:
		_, ok := b.(DateTime)
		return ok
	case Qos:
		_, ok := b.(Qos)
		return ok
	case State:
		_, ok := b.(State)
		return ok
	case Enum:
		_, ok := b.(Enum)
		return ok
	case Buffer:
		_, ok := b.(Buffer)
		return ok
	}
	return false
}

func (p Primitive) Type() DataType {
	return p.typ
}

// Value returns the held value, one of the primitive types of this
// package, or nil for the zero Primitive.
func (p Primitive) Value() any {
	return p.value
}

func (p Primitive) IsBlank() bool {
	switch v := p.value.(type) {
	case nil:
		return true
	case Buffer:
		return v.IsBlank()
	case interface{ IsBlank() bool }:
		return v.IsBlank()
	}
	return false
}

func valueAs[T any](p Primitive) (T, error) {
	v, ok := p.value.(T)
	if !ok {
		var zero T
		return zero, invalidArgf("%s primitive does not hold a %T", p.typ, zero)
	}
	return v, nil
}

func (p Primitive) Int() (Int, error)           { return valueAs[Int](p) }
func (p Primitive) UInt() (UInt, error)         { return valueAs[UInt](p) }
func (p Primitive) Float() (Float, error)       { return valueAs[Float](p) }
func (p Primitive) Double() (Double, error)     { return valueAs[Double](p) }
func (p Primitive) Real() (Real, error)         { return valueAs[Real](p) }
func (p Primitive) Date() (Date, error)         { return valueAs[Date](p) }
func (p Primitive) Time() (Time, error)         { return valueAs[Time](p) }
func (p Primitive) DateTime() (DateTime, error) { return valueAs[DateTime](p) }
func (p Primitive) Qos() (Qos, error)           { return valueAs[Qos](p) }
func (p Primitive) State() (State, error)       { return valueAs[State](p) }
func (p Primitive) Enum() (Enum, error)         { return valueAs[Enum](p) }
func (p Primitive) Buffer() (Buffer, error)     { return valueAs[Buffer](p) }

// Equal reports whether both primitives have the same type and equal
// values.
func (p Primitive) Equal(other Primitive) bool {
	if p.typ != other.typ {
		return false
	}

	switch v := p.value.(type) {
	case nil:
		return other.value == nil
	case Int:
		return v.Equal(other.value.(Int))
	case UInt:
		return v.Equal(other.value.(UInt))
	case Float:
		return v.Equal(other.value.(Float))
	case Double:
		return v.Equal(other.value.(Double))
	case Real:
		return v.Equal(other.value.(Real))
	case Date:
		return v.Equal(other.value.(Date))
	case Time:
		return v.Equal(other.value.(Time))
	case DateTime:
		return v.Equal(other.value.(DateTime))
	case Qos:
		return v.Equal(other.value.(Qos))
	case State:
		return v.Equal(other.value.(State))
	case Enum:
		return v.Equal(other.value.(Enum))
	case Buffer:
		o := other.value.(Buffer)
		return v.Equal(&o)
	}
	return false
}

// Clone returns a copy of p that shares no memory with it.
func (p Primitive) Clone() Primitive {
	switch v := p.value.(type) {
	case State:
		var s State
		_ = v.Copy(&s)
		return Primitive{typ: p.typ, value: s}
	case Buffer:
		return Primitive{typ: p.typ, value: v.Clone()}
	}
	return p
}

// String formats the held value with the String method of its type.
func (p Primitive) String() string {
	switch v := p.value.(type) {
	case nil:
		return ""
	case Buffer:
		return v.String()
	case interface{ String() string }:
		return v.String()
	}
	return ""
}

// Parse sets the value of p from text, keeping its type.
func (p *Primitive) Parse(s string) error {
	np, err := ParsePrimitive(p.typ, s)
	if err != nil {
		return err
	}
	*p = np
	return nil
}

type parser[T any] interface {
	*T
	Parse(string) error
}

// parseAs parses s into v, which holds the value of the fields s
// leaves out.
func parseAs[T any, P parser[T]](s string, v T) (any, error) {
	if err := P(&v).Parse(s); err != nil {
		return nil, err
	}
	return v, nil
}

// ParsePrimitive parses s as a value of type t.
func ParsePrimitive(t DataType, s string) (Primitive, error) {
	var v any
	var err error
	switch {
	case t == DataTypeInt:
		v, err = parseAs(s, Int{})
	case t == DataTypeUInt:
		v, err = parseAs(s, UInt{})
	case t == DataTypeFloat:
		v, err = parseAs(s, Float{})
	case t == DataTypeDouble:
		v, err = parseAs(s, Double{})
	case t == DataTypeReal, t == DataTypeReal4RB, t == DataTypeReal8RB:
		v, err = parseAs(s, Real{})
	case t == DataTypeDate:
		v, err = parseAs(s, Date{})
	case t == DataTypeTime:
		v, err = parseAs(s, BlankTime())
	case t == DataTypeDateTime:
		v, err = parseAs(s, BlankDateTime())
	case t == DataTypeQos:
		v, err = parseAs(s, Qos{})
	case t == DataTypeState:
		v, err = parseAs(s, State{})
	case t == DataTypeEnum:
		v, err = parseAs(s, Enum{})
	case t.IsString():
		v, err = parseAs(s, Buffer{})
	default:
		return Primitive{}, invalidArgf("%s is not a primitive type", t)
	}
	if err != nil {
		return Primitive{}, errors.Wrapf(err, "cannot parse %s", t)
	}

	return Primitive{typ: t, value: v}, nil
}

// Encode writes the held value with the encoder of its type. Real4RB and
// Real8RB primitives use the self-describing real layouts.
func (p Primitive) Encode(it *EncodeIterator) error {
	switch v := p.value.(type) {
	case Int:
		return v.Encode(it)
	case UInt:
		return v.Encode(it)
	case Float:
		return v.Encode(it)
	case Double:
		return v.Encode(it)
	case Real:
		switch p.typ {
		case DataTypeReal4RB:
			return v.EncodeReal4RB(it)
		case DataTypeReal8RB:
			return v.EncodeReal8RB(it)
		}
		return v.Encode(it)
	case Date:
		return v.Encode(it)
	case Time:
		return v.Encode(it)
	case DateTime:
		return v.Encode(it)
	case Qos:
		return v.Encode(it)
	case State:
		return v.Encode(it)
	case Enum:
		return v.Encode(it)
	case Buffer:
		return v.Encode(it)
	}
	return invalidArgf("cannot encode a %s primitive", p.typ)
}

type decoder[T any] interface {
	*T
	Decode(*DecodeIterator) error
}

func decodeAs[T any, P decoder[T]](it *DecodeIterator) (any, error) {
	var v T
	err := P(&v).Decode(it)
	if err != nil && !IsBlank(err) {
		return nil, err
	}
	return v, err
}

// DecodePrimitive reads a value of type t at the current level of it. A
// blank value is returned along with ErrBlankData.
func DecodePrimitive(it *DecodeIterator, t DataType) (Primitive, error) {
	var v any
	var err error
	switch {
	case t == DataTypeInt:
		v, err = decodeAs[Int](it)
	case t == DataTypeUInt:
		v, err = decodeAs[UInt](it)
	case t == DataTypeFloat:
		v, err = decodeAs[Float](it)
	case t == DataTypeDouble:
		v, err = decodeAs[Double](it)
	case t == DataTypeReal:
		v, err = decodeAs[Real](it)
	case t == DataTypeReal4RB:
		var r Real
		err = r.DecodeReal4RB(it)
		v = r
	case t == DataTypeReal8RB:
		var r Real
		err = r.DecodeReal8RB(it)
		v = r
	case t == DataTypeDate:
		v, err = decodeAs[Date](it)
	case t == DataTypeTime:
		v, err = decodeAs[Time](it)
	case t == DataTypeDateTime:
		v, err = decodeAs[DateTime](it)
	case t == DataTypeQos:
		v, err = decodeAs[Qos](it)
	case t == DataTypeState:
		v, err = decodeAs[State](it)
	case t == DataTypeEnum:
		v, err = decodeAs[Enum](it)
	case t.IsString():
		v, err = decodeAs[Buffer](it)
	default:
		return Primitive{}, invalidArgf("cannot decode %s", t)
	}
	if err != nil && !IsBlank(err) {
		return Primitive{}, err
	}

	return Primitive{typ: t, value: v}, err
}

// encodedSizeHint returns a size large enough for the encoding of p.
func (p Primitive) encodedSizeHint() int {
	switch v := p.value.(type) {
	case Buffer:
		return v.Length()
	case State:
		return 4 + v.text.Length()
	}
	if n := p.typ.MaxEncodedSize(); n >= 0 {
		return n
	}
	return 0
}

// MarshalPrimitive returns the encoding of p in a new slice.
func MarshalPrimitive(p Primitive) ([]byte, error) {
	buf := NewBuffer(make([]byte, p.encodedSizeHint()))

	var it EncodeIterator
	if err := it.SetBufferAndRWFVersion(buf, MajorVersion, MinorVersion); err != nil {
		return nil, err
	}
	if err := p.Encode(&it); err != nil {
		return nil, err
	}
	return it.Bytes(), nil
}

// UnmarshalPrimitive decodes data as a single value of type t. As with
// DecodePrimitive, a blank value comes with ErrBlankData.
func UnmarshalPrimitive(t DataType, data []byte) (Primitive, error) {
	if data == nil {
		data = []byte{}
	}

	var it DecodeIterator
	if err := it.SetBufferAndRWFVersion(NewBuffer(data), MajorVersion, MinorVersion); err != nil {
		return Primitive{}, err
	}
	return DecodePrimitive(&it, t)
}
