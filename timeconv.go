package rwf

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-module/carbon/v2"
)

// StdTime returns dt as a time.Time in the named timezone, like "UTC",
// "Local" or "Europe/Paris". Blank time fields count as zero. The date
// must be complete and valid.
func (dt DateTime) StdTime(timezone string) (time.Time, error) {
	c, err := dt.toCarbon(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return c.ToStdTime(), nil
}

// MillisSinceEpoch returns the number of milliseconds between the Unix
// epoch and dt, dt being read as UTC.
func (dt DateTime) MillisSinceEpoch() (int64, error) {
	c, err := dt.toCarbon(carbon.UTC)
	if err != nil {
		return 0, err
	}
	return c.TimestampMilli(), nil
}

// SetMillisSinceEpoch sets dt to the UTC date and time ms milliseconds
// after the Unix epoch. The microsecond and nanosecond fields are zero.
func (dt *DateTime) SetMillisSinceEpoch(ms int64) error {
	c := carbon.CreateFromTimestampMilli(ms, carbon.UTC)
	if c.Error != nil {
		return errors.Wrapf(ErrInvalidArgument, "invalid timestamp %d: %v", ms, c.Error)
	}

	ndt, err := fromCarbon(c)
	if err != nil {
		return err
	}
	ndt.Time.microsecond = 0
	ndt.Time.nanosecond = 0
	*dt = ndt
	return nil
}

// DateTimeFromStdTime returns the date and time of t in its own
// location. It fails if the year of t is beyond MaxYear.
func DateTimeFromStdTime(t time.Time) (DateTime, error) {
	var dt DateTime
	if err := dt.Date.Set(t.Year(), int(t.Month()), t.Day()); err != nil {
		return DateTime{}, err
	}

	ns := t.Nanosecond()
	dt.Time = Time{
		hour:        uint8(t.Hour()),
		minute:      uint8(t.Minute()),
		second:      uint8(t.Second()),
		millisecond: uint16(ns / 1e6),
		microsecond: uint16(ns / 1e3 % 1e3),
		nanosecond:  uint16(ns % 1e3),
	}
	return dt, nil
}

// DateTimeFromStdTimeIn returns the date and time of t in the named
// timezone.
func DateTimeFromStdTimeIn(t time.Time, timezone string) (DateTime, error) {
	c := carbon.CreateFromTimestampNano(t.UnixNano(), timezone)
	if c.Error != nil {
		return DateTime{}, errors.Wrapf(ErrInvalidArgument, "invalid timezone %q: %v", timezone, c.Error)
	}
	return fromCarbon(c)
}

// NowLocal returns the current local date and time.
func NowLocal() DateTime {
	dt, _ := fromCarbon(carbon.Now(carbon.Local))
	return dt
}

// NowGMT returns the current UTC date and time.
func NowGMT() DateTime {
	dt, _ := fromCarbon(carbon.Now(carbon.UTC))
	return dt
}

func (dt DateTime) toCarbon(timezone string) (carbon.Carbon, error) {
	d, t := dt.Date, dt.Time
	if d.year == 0 || d.month == 0 || d.day == 0 || !d.IsValid() {
		return carbon.Carbon{}, invalidArgf("date %q cannot be converted to a time", d.FormatISO8601())
	}
	if !t.IsValid() {
		return carbon.Carbon{}, invalidArgf("invalid time %q", t.String())
	}

	field := func(v, blank int) int {
		if v == blank {
			return 0
		}
		return v
	}
	nanos := field(t.Millisecond(), BlankMillisecond)*1e6 +
		field(t.Microsecond(), BlankMicrosecond)*1e3 +
		field(t.Nanosecond(), BlankNanosecond)

	c := carbon.CreateFromDateTimeNano(
		d.Year(), d.Month(), d.Day(),
		field(t.Hour(), BlankHour), field(t.Minute(), BlankMinute), field(t.Second(), BlankSecond),
		nanos, timezone)
	if c.Error != nil {
		return carbon.Carbon{}, errors.Wrapf(ErrInvalidArgument, "invalid timezone %q: %v", timezone, c.Error)
	}
	return c, nil
}

func fromCarbon(c carbon.Carbon) (DateTime, error) {
	return DateTimeFromStdTime(c.ToStdTime())
}

// parseDateTimeFallback reads the date and time layouts known to carbon,
// like "2021-01-01 10:05:59.123456" or RFC 3339 strings. Times with an
// offset are converted to UTC.
func parseDateTimeFallback(s string) (DateTime, bool) {
	c := carbon.Parse(s, carbon.UTC)
	if c.Error != nil || c.IsZero() {
		return DateTime{}, false
	}

	dt, err := fromCarbon(c)
	return dt, err == nil
}
