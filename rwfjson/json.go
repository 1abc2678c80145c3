// Package rwfjson converts primitives to and from the simplified JSON
// representation used by JSON based OMM transports.
//
// Blank values are null. Numbers are JSON numbers, with "Inf", "-Inf"
// and "NaN" as strings. Dates and times are ISO 8601 strings, Qos and
// State values are objects and opaque buffers are base64 strings.
package rwfjson

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/chaisql/rwf"
	"github.com/cockroachdb/errors"
)

// Names of the Qos and State object members.
const (
	keyTimeliness = "Timeliness"
	keyRate       = "Rate"
	keyDynamic    = "Dynamic"
	keyTimeInfo   = "TimeInfo"
	keyRateInfo   = "RateInfo"
	keyStream     = "Stream"
	keyData       = "Data"
	keyCode       = "Code"
	keyText       = "Text"
)

// Marshal returns the JSON representation of p.
func Marshal(p rwf.Primitive) ([]byte, error) {
	return AppendJSON(nil, p)
}

// AppendJSON appends the JSON representation of p to dst.
func AppendJSON(dst []byte, p rwf.Primitive) ([]byte, error) {
	if p.IsBlank() {
		if p.Type().IsString() {
			return append(dst, `""`...), nil
		}
		return append(dst, "null"...), nil
	}

	switch v := p.Value().(type) {
	case rwf.Int:
		return strconv.AppendInt(dst, v.Value(), 10), nil
	case rwf.UInt:
		return strconv.AppendUint(dst, v.Value(), 10), nil
	case rwf.Enum:
		return strconv.AppendUint(dst, uint64(v.Value()), 10), nil
	case rwf.Float:
		return appendFloat(dst, float64(v.Value()), 32), nil
	case rwf.Double:
		return appendFloat(dst, v.Value(), 64), nil
	case rwf.Real:
		if v.Hint().IsSpecial() {
			return appendString(dst, v.String()), nil
		}
		return append(dst, v.Decimal()...), nil
	case rwf.Date:
		return appendString(dst, v.FormatISO8601()), nil
	case rwf.Time:
		return appendString(dst, v.FormatISO8601()), nil
	case rwf.DateTime:
		return appendString(dst, v.FormatISO8601()), nil
	case rwf.Qos:
		return appendQos(dst, v), nil
	case rwf.State:
		return appendState(dst, v), nil
	case rwf.Buffer:
		if p.Type() == rwf.DataTypeBuffer {
			return appendBase64(dst, v.Data()), nil
		}
		return appendString(dst, v.String()), nil
	}

	return nil, errors.Wrapf(rwf.ErrInvalidArgument, "cannot marshal a %s primitive", p.Type())
}

func appendFloat(dst []byte, f float64, bitSize int) []byte {
	switch {
	case math.IsInf(f, 1):
		return appendString(dst, "Inf")
	case math.IsInf(f, -1):
		return appendString(dst, "-Inf")
	case math.IsNaN(f):
		return appendString(dst, "NaN")
	}

	abs := math.Abs(f)
	fmt := byte('f')
	if abs != 0 {
		if abs < 1e-6 || abs >= 1e21 {
			fmt = 'e'
		}
	}
	return strconv.AppendFloat(dst, f, fmt, -1, bitSize)
}

func appendBase64(dst []byte, p []byte) []byte {
	n := base64.StdEncoding.EncodedLen(len(p))
	dst = append(dst, '"')
	start := len(dst)
	dst = append(dst, make([]byte, n)...)
	base64.StdEncoding.Encode(dst[start:], p)
	return append(dst, '"')
}

// appendString writes s as a JSON string. Bytes that aren't control
// characters are written as is.
func appendString(dst []byte, s string) []byte {
	const hex = "0123456789abcdef"

	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			dst = append(dst, '\\', c)
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c < ' ' || c == 0x7F:
			dst = append(dst, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xF])
		default:
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}

func appendKey(dst []byte, key string, first bool) []byte {
	if !first {
		dst = append(dst, ',')
	}
	dst = appendString(dst, key)
	return append(dst, ':')
}

func appendQos(dst []byte, q rwf.Qos) []byte {
	dst = append(dst, '{')
	dst = appendKey(dst, keyTimeliness, true)
	dst = appendString(dst, q.Timeliness().String())
	dst = appendKey(dst, keyRate, false)
	dst = appendString(dst, q.Rate().String())
	if q.IsDynamic() {
		dst = appendKey(dst, keyDynamic, false)
		dst = append(dst, "true"...)
	}
	if q.Timeliness() == rwf.TimelinessDelayed {
		dst = appendKey(dst, keyTimeInfo, false)
		dst = strconv.AppendInt(dst, int64(q.TimeInfo()), 10)
	}
	if q.Rate() == rwf.RateTimeConflated {
		dst = appendKey(dst, keyRateInfo, false)
		dst = strconv.AppendInt(dst, int64(q.RateInfo()), 10)
	}
	return append(dst, '}')
}

func appendState(dst []byte, s rwf.State) []byte {
	dst = append(dst, '{')
	dst = appendKey(dst, keyStream, true)
	dst = appendString(dst, s.StreamState().String())
	dst = appendKey(dst, keyData, false)
	dst = appendString(dst, s.DataState().String())
	if s.Code() != rwf.CodeNone {
		dst = appendKey(dst, keyCode, false)
		dst = appendString(dst, s.Code().String())
	}
	if text := s.Text(); !text.IsBlank() {
		dst = appendKey(dst, keyText, false)
		dst = appendString(dst, text.String())
	}
	return append(dst, '}')
}

// Unmarshal reads a primitive of type t from its JSON representation.
func Unmarshal(t rwf.DataType, data []byte) (rwf.Primitive, error) {
	value, vt, _, err := jsonparser.Get(data)
	if err != nil {
		return rwf.Primitive{}, errors.Wrapf(rwf.ErrInvalidArgument, "invalid json: %v", err)
	}

	if vt == jsonparser.Null {
		return rwf.BlankPrimitive(t)
	}

	switch {
	case t == rwf.DataTypeQos:
		return unmarshalQos(vt, value)
	case t == rwf.DataTypeState:
		return unmarshalState(vt, value)
	case t == rwf.DataTypeBuffer:
		return unmarshalBase64(vt, value)
	case t == rwf.DataTypeReal, t == rwf.DataTypeReal4RB, t == rwf.DataTypeReal8RB:
		if vt == jsonparser.Number {
			return unmarshalRealNumber(t, value)
		}
	}

	var text string
	switch vt {
	case jsonparser.Number:
		text = string(value)
	case jsonparser.String:
		text, err = jsonparser.ParseString(value)
		if err != nil {
			return rwf.Primitive{}, errors.Wrapf(rwf.ErrInvalidArgument, "invalid json string: %v", err)
		}
	default:
		return rwf.Primitive{}, errors.Wrapf(rwf.ErrInvalidArgument, "unexpected json %s for a %s", vt, t)
	}

	if (t == rwf.DataTypeFloat || t == rwf.DataTypeDouble) && vt == jsonparser.Number {
		f, err := jsonparser.ParseFloat(value)
		if err != nil {
			return rwf.Primitive{}, errors.Wrapf(rwf.ErrInvalidArgument, "invalid json number: %v", err)
		}
		if t == rwf.DataTypeFloat {
			return rwf.NewPrimitive(t, rwf.NewFloat(float32(f)))
		}
		return rwf.NewPrimitive(t, rwf.NewDouble(f))
	}

	return rwf.ParsePrimitive(t, text)
}

// unmarshalRealNumber keeps the exact digits of the number: "1.25e3" is
// the mantissa 125 with a hint of 10^1.
func unmarshalRealNumber(t rwf.DataType, value []byte) (rwf.Primitive, error) {
	s := string(value)
	mant, exp := s, 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		n, err := strconv.Atoi(strings.TrimPrefix(s[i+1:], "+"))
		if err != nil {
			return rwf.Primitive{}, errors.Wrapf(rwf.ErrInvalidArgument, "invalid json number %q", s)
		}
		mant, exp = s[:i], n
	}

	var r rwf.Real
	if err := r.Parse(mant); err != nil {
		return rwf.Primitive{}, err
	}
	if exp != 0 {
		h, err := rwf.ExponentHint(r.Hint().Exponent() + exp)
		if err != nil {
			return rwf.Primitive{}, err
		}
		if err := r.Set(r.Mantissa(), h); err != nil {
			return rwf.Primitive{}, err
		}
	}
	return rwf.NewPrimitive(t, r)
}

func unmarshalBase64(vt jsonparser.ValueType, value []byte) (rwf.Primitive, error) {
	if vt != jsonparser.String {
		return rwf.Primitive{}, errors.Wrapf(rwf.ErrInvalidArgument, "unexpected json %s for a buffer", vt)
	}

	p := make([]byte, base64.StdEncoding.DecodedLen(len(value)))
	n, err := base64.StdEncoding.Decode(p, value)
	if err != nil {
		return rwf.Primitive{}, errors.Wrapf(rwf.ErrInvalidArgument, "invalid base64: %v", err)
	}
	return rwf.NewPrimitive(rwf.DataTypeBuffer, rwf.NewBuffer(p[:n]))
}

func unmarshalQos(vt jsonparser.ValueType, value []byte) (rwf.Primitive, error) {
	if vt != jsonparser.Object {
		return rwf.Primitive{}, errors.Wrapf(rwf.ErrInvalidArgument, "unexpected json %s for a qos", vt)
	}

	var q rwf.Qos
	err := jsonparser.ObjectEach(value, func(key []byte, v []byte, vt jsonparser.ValueType, _ int) error {
		switch string(key) {
		case keyTimeliness:
			t, err := rwf.ParseQosTimeliness(string(v))
			if err != nil {
				return err
			}
			return q.SetTimeliness(t)
		case keyRate:
			r, err := rwf.ParseQosRate(string(v))
			if err != nil {
				return err
			}
			return q.SetRate(r)
		case keyDynamic:
			b, err := jsonparser.ParseBoolean(v)
			if err != nil {
				return errors.Wrapf(rwf.ErrInvalidArgument, "invalid %s: %v", keyDynamic, err)
			}
			q.SetDynamic(b)
		case keyTimeInfo:
			n, err := jsonparser.ParseInt(v)
			if err != nil {
				return errors.Wrapf(rwf.ErrInvalidArgument, "invalid %s: %v", keyTimeInfo, err)
			}
			return q.SetTimeInfo(int(n))
		case keyRateInfo:
			n, err := jsonparser.ParseInt(v)
			if err != nil {
				return errors.Wrapf(rwf.ErrInvalidArgument, "invalid %s: %v", keyRateInfo, err)
			}
			return q.SetRateInfo(int(n))
		}
		return nil
	})
	if err != nil {
		return rwf.Primitive{}, err
	}

	return rwf.NewPrimitive(rwf.DataTypeQos, q)
}

func unmarshalState(vt jsonparser.ValueType, value []byte) (rwf.Primitive, error) {
	if vt != jsonparser.Object {
		return rwf.Primitive{}, errors.Wrapf(rwf.ErrInvalidArgument, "unexpected json %s for a state", vt)
	}

	var s rwf.State
	err := jsonparser.ObjectEach(value, func(key []byte, v []byte, vt jsonparser.ValueType, _ int) error {
		switch string(key) {
		case keyStream:
			st, err := rwf.ParseStreamState(string(v))
			if err != nil {
				return err
			}
			return s.SetStreamState(st)
		case keyData:
			d, err := rwf.ParseDataState(string(v))
			if err != nil {
				return err
			}
			return s.SetDataState(d)
		case keyCode:
			c, err := rwf.ParseStateCode(string(v))
			if err != nil {
				return err
			}
			return s.SetCode(c)
		case keyText:
			text, err := jsonparser.ParseString(v)
			if err != nil {
				return errors.Wrapf(rwf.ErrInvalidArgument, "invalid %s: %v", keyText, err)
			}
			return s.SetTextString(text)
		}
		return nil
	})
	if err != nil {
		return rwf.Primitive{}, err
	}

	return rwf.NewPrimitive(rwf.DataTypeState, s)
}
