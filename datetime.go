package rwf

import (
	"github.com/chaisql/rwf/internal/encoding"
)

// DateTime is a Date followed by a Time. Either part may be blank
// independently; the DateTime is blank when both are.
type DateTime struct {
	Date Date
	Time Time
}

// NewDateTime returns a DateTime made of d and t.
func NewDateTime(d Date, t Time) DateTime {
	return DateTime{Date: d, Time: t}
}

// BlankDateTime returns a DateTime whose date and time are blank.
func BlankDateTime() DateTime {
	return DateTime{Time: BlankTime()}
}

func (dt DateTime) IsBlank() bool {
	return dt.Date.IsBlank() && dt.Time.IsBlank()
}

func (dt *DateTime) Blank() {
	*dt = BlankDateTime()
}

// Clear blanks the date and sets the time to midnight.
func (dt *DateTime) Clear() {
	*dt = DateTime{}
}

// IsValid reports whether both parts are valid. A blank part is valid.
func (dt DateTime) IsValid() bool {
	return dt.Date.IsValid() && dt.Time.IsValid()
}

func (dt DateTime) Equal(other DateTime) bool {
	return dt == other
}

// Copy copies dt into dst.
func (dt DateTime) Copy(dst *DateTime) error {
	if dst == nil {
		return ErrInvalidArgument
	}
	*dst = dt
	return nil
}

// Encode writes the four date bytes followed by the shortest encoding of
// the time, for a total of 6, 7, 9, 11 or 12 bytes.
func (dt DateTime) Encode(it *EncodeIterator) error {
	dst, err := it.reserve(encoding.DateSize + dt.Time.encodedSize())
	if err != nil {
		return err
	}

	encoding.PutDate(dst, dt.Date.day, dt.Date.month, dt.Date.year)
	dt.Time.put(dst[encoding.DateSize:])
	return nil
}

// Decode reads dt from the bytes remaining at the current level. As for
// Time, the number of bytes tells which time fields are present.
func (dt *DateTime) Decode(it *DecodeIterator) error {
	src, err := it.span()
	if err != nil {
		return err
	}

	if len(src) == 0 {
		dt.Blank()
		return ErrBlankData
	}
	if len(src) < encoding.DateSize+timeSizeMinute {
		return ErrIncompleteData
	}

	var t Time
	if !t.read(src[encoding.DateSize:]) {
		return ErrIncompleteData
	}
	dt.Time = t
	dt.Date.day, dt.Date.month, dt.Date.year = encoding.DecodeDate(src)

	if dt.IsBlank() {
		return ErrBlankData
	}
	return nil
}
