package rwf

import (
	"github.com/chaisql/rwf/internal/encoding"
)

// Blank values of the time fields.
const (
	BlankHour        = 255
	BlankMinute      = 255
	BlankSecond      = 255
	BlankMillisecond = 65535
	BlankMicrosecond = 2047
	BlankNanosecond  = 2047
)

// Encoded sizes of a time, from the shortest to the most precise.
const (
	timeSizeMinute      = 2
	timeSizeSecond      = 3
	timeSizeMillisecond = 5
	timeSizeMicrosecond = 7
	timeSizeNanosecond  = 8
)

// Time is a time of day down to the nanosecond. Each field may hold its
// blank value, in which case every more precise field is expected to be
// blank as well. A Time whose fields are all blank is blank.
//
// The zero value is midnight.
type Time struct {
	hour        uint8
	minute      uint8
	second      uint8
	millisecond uint16
	microsecond uint16
	nanosecond  uint16
}

// NewTime returns the time hour:minute:second.millisecond, leaving the
// microsecond and nanosecond fields blank.
func NewTime(hour, minute, second, millisecond int) (Time, error) {
	t := BlankTime()
	if err := t.SetHour(hour); err != nil {
		return Time{}, err
	}
	if err := t.SetMinute(minute); err != nil {
		return Time{}, err
	}
	if err := t.SetSecond(second); err != nil {
		return Time{}, err
	}
	if err := t.SetMillisecond(millisecond); err != nil {
		return Time{}, err
	}
	return t, nil
}

// BlankTime returns a Time with every field blank.
func BlankTime() Time {
	return Time{
		hour:        BlankHour,
		minute:      BlankMinute,
		second:      BlankSecond,
		millisecond: BlankMillisecond,
		microsecond: BlankMicrosecond,
		nanosecond:  BlankNanosecond,
	}
}

func (t Time) Hour() int        { return int(t.hour) }
func (t Time) Minute() int      { return int(t.minute) }
func (t Time) Second() int      { return int(t.second) }
func (t Time) Millisecond() int { return int(t.millisecond) }
func (t Time) Microsecond() int { return int(t.microsecond) }
func (t Time) Nanosecond() int  { return int(t.nanosecond) }

// SetHour accepts 0 to 23 or BlankHour.
func (t *Time) SetHour(hour int) error {
	if !inFieldRange(hour, 23, BlankHour) {
		return invalidArgf("hour %d out of range", hour)
	}
	t.hour = uint8(hour)
	return nil
}

// SetMinute accepts 0 to 59 or BlankMinute.
func (t *Time) SetMinute(minute int) error {
	if !inFieldRange(minute, 59, BlankMinute) {
		return invalidArgf("minute %d out of range", minute)
	}
	t.minute = uint8(minute)
	return nil
}

// SetSecond accepts 0 to 60 or BlankSecond. 60 is a leap second.
func (t *Time) SetSecond(second int) error {
	if !inFieldRange(second, 60, BlankSecond) {
		return invalidArgf("second %d out of range", second)
	}
	t.second = uint8(second)
	return nil
}

// SetMillisecond accepts 0 to 999 or BlankMillisecond.
func (t *Time) SetMillisecond(millisecond int) error {
	if !inFieldRange(millisecond, 999, BlankMillisecond) {
		return invalidArgf("millisecond %d out of range", millisecond)
	}
	t.millisecond = uint16(millisecond)
	return nil
}

// SetMicrosecond accepts 0 to 999 or BlankMicrosecond.
func (t *Time) SetMicrosecond(microsecond int) error {
	if !inFieldRange(microsecond, 999, BlankMicrosecond) {
		return invalidArgf("microsecond %d out of range", microsecond)
	}
	t.microsecond = uint16(microsecond)
	return nil
}

// SetNanosecond accepts 0 to 999 or BlankNanosecond.
func (t *Time) SetNanosecond(nanosecond int) error {
	if !inFieldRange(nanosecond, 999, BlankNanosecond) {
		return invalidArgf("nanosecond %d out of range", nanosecond)
	}
	t.nanosecond = uint16(nanosecond)
	return nil
}

func inFieldRange(v, max, blank int) bool {
	return (v >= 0 && v <= max) || v == blank
}

func (t Time) IsBlank() bool {
	return t == BlankTime()
}

func (t *Time) Blank() {
	*t = BlankTime()
}

// Clear sets t to midnight.
func (t *Time) Clear() {
	*t = Time{}
}

// fields returns the fields from the least to the most precise, each with
// whether it is blank.
func (t Time) fields() [6]bool {
	return [6]bool{
		t.hour == BlankHour,
		t.minute == BlankMinute,
		t.second == BlankSecond,
		t.millisecond == BlankMillisecond,
		t.microsecond == BlankMicrosecond,
		t.nanosecond == BlankNanosecond,
	}
}

// precision returns the number of leading fields that are not blank.
func (t Time) precision() int {
	blanks := t.fields()
	for i, blank := range blanks {
		if blank {
			return i
		}
	}
	return len(blanks)
}

// IsValid reports whether every field is in range and the blank fields,
// if any, all follow the known ones: 02:03 is valid, a blank minute
// followed by a known second is not.
func (t Time) IsValid() bool {
	if t.IsBlank() {
		return true
	}

	if !inFieldRange(int(t.hour), 23, BlankHour) ||
		!inFieldRange(int(t.minute), 59, BlankMinute) ||
		!inFieldRange(int(t.second), 60, BlankSecond) ||
		!inFieldRange(int(t.millisecond), 999, BlankMillisecond) ||
		!inFieldRange(int(t.microsecond), 999, BlankMicrosecond) ||
		!inFieldRange(int(t.nanosecond), 999, BlankNanosecond) {
		return false
	}

	blanks := t.fields()
	for _, blank := range blanks[t.precision():] {
		if !blank {
			return false
		}
	}
	return true
}

func (t Time) Equal(other Time) bool {
	return t == other
}

// Copy copies t into dst.
func (t Time) Copy(dst *Time) error {
	if dst == nil {
		return ErrInvalidArgument
	}
	*dst = t
	return nil
}

// encodedSize returns the size of the shortest encoding whose omitted
// fields are all blank.
func (t Time) encodedSize() int {
	switch {
	case t.nanosecond != BlankNanosecond:
		return timeSizeNanosecond
	case t.microsecond != BlankMicrosecond:
		return timeSizeMicrosecond
	case t.millisecond != BlankMillisecond:
		return timeSizeMillisecond
	case t.second != BlankSecond:
		return timeSizeSecond
	}
	return timeSizeMinute
}

func (t Time) put(dst []byte) {
	dst[0] = t.hour
	dst[1] = t.minute
	if len(dst) == timeSizeMinute {
		return
	}

	dst[2] = t.second
	if len(dst) == timeSizeSecond {
		return
	}

	encoding.PutUint16(dst[3:], t.millisecond)
	switch len(dst) {
	case timeSizeMicrosecond:
		encoding.PutUint16(dst[5:], t.microsecond)
	case timeSizeNanosecond:
		word, low := encoding.PackMicroNano(t.microsecond, t.nanosecond)
		encoding.PutUint16(dst[5:], word)
		dst[7] = low
	}
}

// read sets t from one of the encoded forms, the omitted fields being
// blank. It reports false if src has no valid time size.
func (t *Time) read(src []byte) bool {
	switch len(src) {
	case timeSizeMinute, timeSizeSecond, timeSizeMillisecond, timeSizeMicrosecond, timeSizeNanosecond:
	default:
		return false
	}

	*t = BlankTime()
	t.hour = src[0]
	t.minute = src[1]
	if len(src) == timeSizeMinute {
		return true
	}

	t.second = src[2]
	if len(src) == timeSizeSecond {
		return true
	}

	t.millisecond = encoding.DecodeUint16(src[3:])
	switch len(src) {
	case timeSizeMicrosecond:
		t.microsecond = encoding.DecodeUint16(src[5:])
	case timeSizeNanosecond:
		t.microsecond, t.nanosecond = encoding.UnpackMicroNano(encoding.DecodeUint16(src[5:]), src[7])
	}
	return true
}

// Encode writes t on 2, 3, 5, 7 or 8 bytes, the shortest form that
// leaves out only blank fields. A blank time is written on two bytes.
func (t Time) Encode(it *EncodeIterator) error {
	dst, err := it.reserve(t.encodedSize())
	if err != nil {
		return err
	}

	t.put(dst)
	return nil
}

// Decode reads t from the bytes remaining at the current level. The
// number of bytes tells which fields are present; the others are blank.
func (t *Time) Decode(it *DecodeIterator) error {
	src, err := it.span()
	if err != nil {
		return err
	}

	if len(src) == 0 {
		t.Blank()
		return ErrBlankData
	}
	if !t.read(src) {
		return ErrIncompleteData
	}
	if t.IsBlank() {
		return ErrBlankData
	}
	return nil
}
