package rwf

import (
	"github.com/chaisql/rwf/internal/encoding"
)

// Limits of the date fields. Zero is the blank value of every field.
const (
	MaxYear  = 4095
	MaxMonth = 12
	MaxDay   = 31
)

// Date is a calendar date. Any field may be zero, meaning it is not
// known; a Date whose fields are all zero is blank.
type Date struct {
	day   uint8
	month uint8
	year  uint16
}

// NewDate returns the date year/month/day.
func NewDate(year, month, day int) (Date, error) {
	var d Date
	if err := d.Set(year, month, day); err != nil {
		return Date{}, err
	}
	return d, nil
}

// BlankDate returns a blank Date.
func BlankDate() Date {
	return Date{}
}

// Set sets every field, leaving d untouched if one of them is out of
// range.
func (d *Date) Set(year, month, day int) error {
	nd := *d
	if err := nd.SetYear(year); err != nil {
		return err
	}
	if err := nd.SetMonth(month); err != nil {
		return err
	}
	if err := nd.SetDay(day); err != nil {
		return err
	}
	*d = nd
	return nil
}

func (d Date) Year() int  { return int(d.year) }
func (d Date) Month() int { return int(d.month) }
func (d Date) Day() int   { return int(d.day) }

func (d *Date) SetYear(year int) error {
	if year < 0 || year > MaxYear {
		return invalidArgf("year %d out of range", year)
	}
	d.year = uint16(year)
	return nil
}

func (d *Date) SetMonth(month int) error {
	if month < 0 || month > MaxMonth {
		return invalidArgf("month %d out of range", month)
	}
	d.month = uint8(month)
	return nil
}

func (d *Date) SetDay(day int) error {
	if day < 0 || day > MaxDay {
		return invalidArgf("day %d out of range", day)
	}
	d.day = uint8(day)
	return nil
}

func (d Date) IsBlank() bool {
	return d.day == 0 && d.month == 0 && d.year == 0
}

func (d *Date) Blank() {
	*d = Date{}
}

// Clear is Blank: a cleared date has no known field.
func (d *Date) Clear() {
	*d = Date{}
}

// IsValid reports whether the known fields form a possible date. Unknown
// fields are accepted anywhere, a blank date is valid.
func (d Date) IsValid() bool {
	if d.IsBlank() {
		return true
	}
	if d.year > MaxYear {
		return false
	}

	switch d.month {
	case 0, 1, 3, 5, 7, 8, 10, 12:
		return d.day <= 31
	case 4, 6, 9, 11:
		return d.day <= 30
	case 2:
		if d.day == 29 {
			return isLeapYear(int(d.year))
		}
		return d.day <= 29
	}

	return false
}

func (d Date) Equal(other Date) bool {
	return d == other
}

// Copy copies d into dst.
func (d Date) Copy(dst *Date) error {
	if dst == nil {
		return ErrInvalidArgument
	}
	*dst = d
	return nil
}

// Encode writes d on four bytes: day, month and a two byte year. A blank
// date is written as four zero bytes.
func (d Date) Encode(it *EncodeIterator) error {
	dst, err := it.reserve(encoding.DateSize)
	if err != nil {
		return err
	}

	encoding.PutDate(dst, d.day, d.month, d.year)
	return nil
}

// Decode reads d from the bytes remaining at the current level.
func (d *Date) Decode(it *DecodeIterator) error {
	src, err := it.span()
	if err != nil {
		return err
	}

	switch len(src) {
	case 0:
		d.Blank()
		return ErrBlankData
	case encoding.DateSize:
		d.day, d.month, d.year = encoding.DecodeDate(src)
		if d.IsBlank() {
			return ErrBlankData
		}
		return nil
	}

	return ErrIncompleteData
}

// a year of 0 is treated as leap so that a date with an unknown year
// accepts Feb 29
func isLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}
