package rwf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var monthNames = [...]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// dateWidth is the width of the "DD MON YYYY" layout.
const dateWidth = 11

func lookupMonth(s string) (int, bool) {
	for i, name := range monthNames {
		if strings.EqualFold(s, name) {
			return i + 1, true
		}
	}
	return 0, false
}

// String returns d in the "DD MON YYYY" layout, unknown fields being
// replaced by spaces. A blank date is the empty string.
func (d Date) String() string {
	if d.IsBlank() {
		return ""
	}

	var sb strings.Builder
	if d.day != 0 {
		fmt.Fprintf(&sb, "%02d ", d.day)
	} else {
		sb.WriteString("   ")
	}
	if d.month >= 1 && d.month <= MaxMonth {
		sb.WriteString(monthNames[d.month-1])
		sb.WriteByte(' ')
	} else {
		sb.WriteString("    ")
	}
	if d.year != 0 {
		fmt.Fprintf(&sb, "%4d", d.year)
	} else {
		sb.WriteString("    ")
	}
	return sb.String()
}

// FormatISO8601 returns d as YYYY-MM-DD. Dates missing the day, the year
// or both the year and the month use the truncated forms YYYY-MM,
// --MM-DD and ---DD.
func (d Date) FormatISO8601() string {
	switch {
	case d.IsBlank():
		return ""
	case d.year != 0 && d.month != 0 && d.day == 0:
		return fmt.Sprintf("%04d-%02d", d.year, d.month)
	case d.year == 0 && d.month != 0 && d.day != 0:
		return fmt.Sprintf("--%02d-%02d", d.month, d.day)
	case d.year == 0 && d.month == 0:
		return fmt.Sprintf("---%02d", d.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Parse sets d from text. Accepted layouts are YYYY/MM/DD, MM/DD/YY,
// MM/DD/YYYY, the same three separated by spaces, DD MON YY and
// DD MON YYYY with a case insensitive month name, and the ISO 8601 forms
// read by ParseISO8601. Two digit years are in the 1900s.
//
// Empty or whitespace only text blanks d.
func (d *Date) Parse(s string) error {
	if isFixedDate(s) && strings.TrimSpace(s[dateWidth:]) == "" {
		return d.parseFixed(s)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		d.Blank()
		return nil
	}

	if strings.Contains(s, "-") {
		return d.ParseISO8601(s)
	}

	var parts []string
	if strings.Contains(s, "/") {
		parts = strings.Split(s, "/")
	} else {
		parts = strings.Fields(s)
	}
	if len(parts) != 3 {
		return errors.Wrapf(ErrInvalidArgument, "invalid date %q", s)
	}

	var year, month, day int
	var err error
	if month, ok := lookupMonth(parts[1]); ok {
		day, err = atoiField(parts[0], 2)
		if err == nil {
			year, err = parseYear(parts[2])
		}
		if err != nil {
			return errors.Wrapf(err, "invalid date %q", s)
		}
		return d.setValid(year, month, day)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		nums[i], err = atoiField(p, 4)
		if err != nil {
			return errors.Wrapf(err, "invalid date %q", s)
		}
	}

	switch {
	case len(parts[0]) > 2:
		year, month, day = nums[0], nums[1], nums[2]
	default:
		month, day = nums[0], nums[1]
		year, err = parseYear(parts[2])
		if err != nil {
			return errors.Wrapf(err, "invalid date %q", s)
		}
	}

	return d.setValid(year, month, day)
}

// ParseISO8601 sets d from YYYY-MM-DD or one of its truncated forms
// YYYY-MM, YYYY, --MM-DD, --MM and ---DD.
func (d *Date) ParseISO8601(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		d.Blank()
		return nil
	}

	var year, month, day int
	var err error
	switch {
	case strings.HasPrefix(s, "---"):
		day, err = atoiExact(s[3:], 2)
	case strings.HasPrefix(s, "--"):
		m, dd, hasDay := strings.Cut(s[2:], "-")
		month, err = atoiExact(m, 2)
		if err == nil && hasDay {
			day, err = atoiExact(dd, 2)
		}
	default:
		parts := strings.Split(s, "-")
		if len(parts) > 3 {
			err = ErrInvalidArgument
			break
		}
		fields := []*int{&year, &month, &day}
		widths := []int{4, 2, 2}
		for i, p := range parts {
			*fields[i], err = atoiExact(p, widths[i])
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		return errors.Wrapf(ErrInvalidArgument, "invalid ISO 8601 date %q", s)
	}

	return d.setValid(year, month, day)
}

// isFixedDate reports whether s starts with the DD MON YYYY layout as
// written by Date.String, spaces included.
func isFixedDate(s string) bool {
	if len(s) < dateWidth || s[2] != ' ' || s[6] != ' ' {
		return false
	}
	if len(s) > dateWidth && s[dateWidth] != ' ' {
		return false
	}
	mon := s[3:6]
	if _, ok := lookupMonth(mon); ok {
		return true
	}
	return mon == "   "
}

func (d *Date) parseFixed(s string) error {
	s = s[:dateWidth]
	var year, month, day int
	var err error

	if f := strings.TrimSpace(s[:2]); f != "" {
		if day, err = atoiField(f, 2); err != nil {
			return errors.Wrapf(err, "invalid date %q", s)
		}
	}
	if f := s[3:6]; f != "   " {
		month, _ = lookupMonth(f)
	}
	if f := strings.TrimSpace(s[7:]); f != "" {
		if year, err = atoiField(f, 4); err != nil {
			return errors.Wrapf(err, "invalid date %q", s)
		}
	}

	return d.setValid(year, month, day)
}

func (d *Date) setValid(year, month, day int) error {
	var nd Date
	if err := nd.Set(year, month, day); err != nil {
		return err
	}
	if !nd.IsValid() {
		return invalidArgf("invalid date %04d/%02d/%02d", year, month, day)
	}
	*d = nd
	return nil
}

// parseYear reads a year, mapping one and two digit years to the 1900s.
func parseYear(s string) (int, error) {
	y, err := atoiField(s, 4)
	if err != nil {
		return 0, err
	}
	if len(s) <= 2 {
		y += 1900
	}
	return y, nil
}

// atoiField parses an unsigned decimal of one to width digits.
func atoiField(s string, width int) (int, error) {
	if s == "" || len(s) > width || !isDigits(s) {
		return 0, errors.Wrapf(ErrInvalidArgument, "invalid field %q", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArgument, "invalid field %q", s)
	}
	return n, nil
}

// atoiExact parses an unsigned decimal of exactly width digits.
func atoiExact(s string, width int) (int, error) {
	if len(s) != width {
		return 0, errors.Wrapf(ErrInvalidArgument, "invalid field %q", s)
	}
	return atoiField(s, width)
}

// String returns t as HH:MM:SS:mmm:uuu:nnn, stopping before the first
// blank field: a time known to the minute is "02:03". A blank time is
// the empty string.
func (t Time) String() string {
	if t.IsBlank() {
		return ""
	}

	var sb strings.Builder
	n := t.precision()
	values := [6]int{t.Hour(), t.Minute(), t.Second(), t.Millisecond(), t.Microsecond(), t.Nanosecond()}
	for i := 0; i < n; i++ {
		switch {
		case i == 0:
			fmt.Fprintf(&sb, "%02d", values[i])
		case i < 3:
			fmt.Fprintf(&sb, ":%02d", values[i])
		default:
			fmt.Fprintf(&sb, ":%03d", values[i])
		}
	}
	return sb.String()
}

// FormatISO8601 returns t as hh:mm:ss.fffffffff, without the trailing
// zeros of the fraction. As with String, the output stops at the first
// blank field.
func (t Time) FormatISO8601() string {
	if t.IsBlank() {
		return ""
	}

	var sb strings.Builder
	n := t.precision()
	values := [3]int{t.Hour(), t.Minute(), t.Second()}
	for i := 0; i < n && i < 3; i++ {
		if i > 0 {
			sb.WriteByte(':')
		}
		fmt.Fprintf(&sb, "%02d", values[i])
	}
	if n <= 3 {
		return sb.String()
	}

	frac := fmt.Sprintf("%03d", t.millisecond)
	if n > 4 {
		frac += fmt.Sprintf("%03d", t.microsecond)
	}
	if n > 5 {
		frac += fmt.Sprintf("%03d", t.nanosecond)
	}
	if frac = strings.TrimRight(frac, "0"); frac != "" {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}
	return sb.String()
}

// Parse sets t from text: HH:MM:SS:mmm:uuu:nnn with colons or spaces as
// separators, any number of trailing fields being left out, or the ISO
// 8601 form read by ParseISO8601. Left out fields keep their current
// value: parsing "02:03" into a zero Time gives 02:03:00:000:000:000,
// into a blank Time 02:03 with the other fields blank.
//
// Empty or whitespace only text blanks t.
func (t *Time) Parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		t.Blank()
		return nil
	}

	if strings.ContainsAny(s, ".,Z+") || (strings.Contains(s, "-") && strings.Contains(s, ":")) {
		return t.ParseISO8601(s)
	}

	var parts []string
	if strings.Contains(s, ":") {
		parts = strings.Split(s, ":")
	} else {
		parts = strings.Fields(s)
	}
	if len(parts) > 6 {
		return errors.Wrapf(ErrInvalidArgument, "invalid time %q", s)
	}

	nt := *t
	setters := [6]func(int) error{nt.SetHour, nt.SetMinute, nt.SetSecond, nt.SetMillisecond, nt.SetMicrosecond, nt.SetNanosecond}
	for i, p := range parts {
		width := 3
		if i < 3 {
			width = 2
		}
		v, err := atoiField(p, width)
		if err != nil {
			return errors.Wrapf(err, "invalid time %q", s)
		}
		if err := setters[i](v); err != nil {
			return err
		}
	}

	*t = nt
	return nil
}

// ParseISO8601 sets t from hh:mm[:ss[.f]] where the fraction has up to
// nine digits and may be introduced by a comma. A trailing Z or UTC
// offset is ignored. Fraction digits are read by groups of three: the
// milliseconds, then the microseconds and the nanoseconds if present.
// Fields not given are blank.
func (t *Time) ParseISO8601(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		t.Blank()
		return nil
	}

	if i := strings.IndexAny(s, "Z+-"); i >= 0 {
		s = s[:i]
	}

	clock, frac, hasFrac := strings.Cut(strings.Replace(s, ",", ".", 1), ".")
	parts := strings.Split(clock, ":")
	if len(parts) < 2 || len(parts) > 3 || (hasFrac && len(parts) != 3) {
		return errors.Wrapf(ErrInvalidArgument, "invalid ISO 8601 time %q", s)
	}

	nt := BlankTime()
	setters := [6]func(int) error{nt.SetHour, nt.SetMinute, nt.SetSecond, nt.SetMillisecond, nt.SetMicrosecond, nt.SetNanosecond}
	for i, p := range parts {
		v, err := atoiExact(p, 2)
		if err != nil {
			return errors.Wrapf(err, "invalid ISO 8601 time %q", s)
		}
		if err := setters[i](v); err != nil {
			return err
		}
	}

	if hasFrac {
		if frac == "" || len(frac) > 9 || !isDigits(frac) {
			return errors.Wrapf(ErrInvalidArgument, "invalid ISO 8601 time %q", s)
		}
		if r := len(frac) % 3; r != 0 {
			frac += strings.Repeat("0", 3-r)
		}
		for i := 0; i < len(frac); i += 3 {
			v, _ := strconv.Atoi(frac[i : i+3])
			if err := setters[3+i/3](v); err != nil {
				return err
			}
		}
	}

	*t = nt
	return nil
}

// String returns the date followed by the time, leaving out whichever is
// blank.
func (dt DateTime) String() string {
	switch {
	case dt.IsBlank():
		return ""
	case dt.Time.IsBlank():
		return dt.Date.String()
	case dt.Date.IsBlank():
		return dt.Time.String()
	}
	return dt.Date.String() + " " + dt.Time.String()
}

// FormatISO8601 returns dt as dateTtime, leaving out whichever part is
// blank.
func (dt DateTime) FormatISO8601() string {
	switch {
	case dt.IsBlank():
		return ""
	case dt.Time.IsBlank():
		return dt.Date.FormatISO8601()
	case dt.Date.IsBlank():
		return dt.Time.FormatISO8601()
	}
	return dt.Date.FormatISO8601() + "T" + dt.Time.FormatISO8601()
}

// Parse sets dt from a date in any layout accepted by Date.Parse followed
// by a time in any layout accepted by Time.Parse, or from an ISO 8601
// date and time separated by a T. Either part may be left out. Text
// matching none of these is handed to a general purpose date and time
// parser before being rejected. Time fields left out of a Time.Parse layout keep
// their current value.
//
// Empty or whitespace only text blanks dt.
func (dt *DateTime) Parse(s string) error {
	if strings.TrimSpace(s) == "" {
		dt.Blank()
		return nil
	}

	ndt := *dt
	err := ndt.parse(s)
	if err != nil {
		var ok bool
		if ndt, ok = parseDateTimeFallback(s); !ok {
			return err
		}
	}

	*dt = ndt
	return nil
}

func (dt *DateTime) parse(s string) error {
	var datePart, timePart string
	trimmed := strings.TrimSpace(s)

	switch {
	case isFixedDate(s):
		datePart, timePart = s[:dateWidth], s[dateWidth:]
	case isoSeparator(trimmed) > 0:
		i := isoSeparator(trimmed)
		if err := dt.Date.ParseISO8601(trimmed[:i]); err != nil {
			return err
		}
		return dt.Time.ParseISO8601(trimmed[i+1:])
	default:
		tokens := strings.Fields(trimmed)
		switch {
		case strings.Contains(tokens[0], ":"):
			timePart = trimmed
		case strings.ContainsAny(tokens[0], "/-"):
			datePart, timePart = tokens[0], strings.Join(tokens[1:], " ")
		case len(tokens) >= 3:
			datePart, timePart = strings.Join(tokens[:3], " "), strings.Join(tokens[3:], " ")
		default:
			return errors.Wrapf(ErrInvalidArgument, "invalid date time %q", s)
		}
	}

	if err := dt.Date.Parse(datePart); err != nil {
		return err
	}
	return dt.Time.Parse(timePart)
}

// isoSeparator returns the index of the T between an ISO 8601 date and
// time, or -1.
func isoSeparator(s string) int {
	for i := 1; i < len(s)-1; i++ {
		if s[i] == 'T' && isDigits(s[i-1:i]) && isDigits(s[i+1:i+2]) {
			return i
		}
	}
	return -1
}
