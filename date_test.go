package rwf_test

import (
	"testing"

	"github.com/chaisql/rwf"
	"github.com/chaisql/rwf/internal/testutil"
	"github.com/chaisql/rwf/internal/testutil/assert"
	"github.com/stretchr/testify/require"
)

func newDate(t *testing.T, year, month, day int) rwf.Date {
	t.Helper()

	d, err := rwf.NewDate(year, month, day)
	assert.NoError(t, err)
	return d
}

func TestDateCodec(t *testing.T) {
	tests := []struct {
		name string
		date rwf.Date
		hex  string
	}{
		{"full", newDate(t, 1974, 4, 14), "0e0407b6"},
		{"no day", newDate(t, 2023, 11, 0), "000b07e7"},
		{"max year", newDate(t, rwf.MaxYear, 12, 31), "1f0c0fff"},
		{"blank", rwf.BlankDate(), "00000000"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := testutil.Encode(t, 4, test.date.Encode)
			require.Equal(t, testutil.Hex(t, test.hex), got)

			var d rwf.Date
			err := d.Decode(testutil.NewDecodeIterator(t, got))
			if test.date.IsBlank() {
				assert.ErrorIs(t, err, rwf.ErrBlankData)
			} else {
				assert.NoError(t, err)
			}
			require.True(t, d.Equal(test.date))
		})
	}

	var d rwf.Date
	assert.ErrorIs(t, d.Decode(testutil.NewDecodeIterator(t, nil)), rwf.ErrBlankData)
	assert.ErrorIs(t, d.Decode(testutil.NewDecodeIterator(t, []byte{1, 2, 3})), rwf.ErrIncompleteData)
	assert.ErrorIs(t, d.Decode(testutil.NewDecodeIterator(t, make([]byte, 5))), rwf.ErrIncompleteData)

	it := testutil.NewEncodeIterator(t, 3)
	assert.ErrorIs(t, newDate(t, 1974, 4, 14).Encode(it), rwf.ErrBufferTooSmall)
}

func TestDateFields(t *testing.T) {
	var d rwf.Date
	assert.ErrorIs(t, d.SetYear(rwf.MaxYear+1), rwf.ErrInvalidArgument)
	assert.ErrorIs(t, d.SetMonth(13), rwf.ErrInvalidArgument)
	assert.ErrorIs(t, d.SetDay(32), rwf.ErrInvalidArgument)
	assert.ErrorIs(t, d.Set(2020, 1, 40), rwf.ErrInvalidArgument)
	require.True(t, d.IsBlank())

	tests := []struct {
		year, month, day int
		valid            bool
	}{
		{2020, 4, 30, true},
		{2020, 4, 31, false},
		{2024, 2, 29, true},
		{2023, 2, 29, false},
		{1900, 2, 29, false},
		{2000, 2, 29, true},
		{0, 2, 29, true},
		{2023, 0, 31, true},
		{0, 0, 0, true},
	}

	for _, test := range tests {
		d := newDate(t, test.year, test.month, test.day)
		require.Equal(t, test.valid, d.IsValid(), "%04d-%02d-%02d", test.year, test.month, test.day)
	}
}

func TestDateString(t *testing.T) {
	tests := []struct {
		date rwf.Date
		text string
		iso  string
	}{
		{newDate(t, 1974, 4, 14), "14 APR 1974", "1974-04-14"},
		{newDate(t, 1974, 4, 0), "   APR 1974", "1974-04"},
		{newDate(t, 0, 4, 14), "14 APR     ", "--04-14"},
		{newDate(t, 0, 0, 14), "14         ", "---14"},
		{rwf.BlankDate(), "", ""},
	}

	for _, test := range tests {
		t.Run(test.iso, func(t *testing.T) {
			require.Equal(t, test.text, test.date.String())
			require.Equal(t, test.iso, test.date.FormatISO8601())

			var d rwf.Date
			assert.NoError(t, d.ParseISO8601(test.iso))
			require.True(t, d.Equal(test.date), "got %v", d)
		})
	}
}

func TestDateParse(t *testing.T) {
	want := newDate(t, 1974, 4, 14)

	for _, in := range []string{
		"1974/04/14",
		"1974/4/14",
		"04/14/74",
		"04/14/1974",
		"04 14 1974",
		"14 APR 1974",
		"14 apr 74",
		"14 Apr 1974",
		"1974-04-14",
		"  1974-04-14  ",
	} {
		t.Run(in, func(t *testing.T) {
			var d rwf.Date
			assert.NoError(t, d.Parse(in))
			require.True(t, d.Equal(want), "got %v", d)
		})
	}

	var d rwf.Date
	assert.NoError(t, d.Parse("   APR 1974"))
	require.True(t, d.Equal(newDate(t, 1974, 4, 0)))

	assert.NoError(t, d.Parse(""))
	require.True(t, d.IsBlank())

	for _, in := range []string{"2023-02-29", "1974/13/01", "1974/04", "14 XYZ 1974", "74-4-14", "a/b/c"} {
		t.Run(in, func(t *testing.T) {
			var d rwf.Date
			assert.ErrorIs(t, d.Parse(in), rwf.ErrInvalidArgument)
		})
	}
}

func newTime(t *testing.T, fields ...int) rwf.Time {
	t.Helper()

	tm := rwf.BlankTime()
	setters := []func(int) error{tm.SetHour, tm.SetMinute, tm.SetSecond, tm.SetMillisecond, tm.SetMicrosecond, tm.SetNanosecond}
	for i, f := range fields {
		assert.NoError(t, setters[i](f))
	}
	return tm
}

func TestTimeCodec(t *testing.T) {
	tests := []struct {
		name string
		time rwf.Time
		hex  string
	}{
		{"blank", rwf.BlankTime(), "ffff"},
		{"minute", newTime(t, 2, 3), "0203"},
		{"second", newTime(t, 2, 3, 4), "020304"},
		{"millisecond", newTime(t, 2, 3, 4, 5), "0203040005"},
		{"microsecond", newTime(t, 2, 3, 4, 5, 6), "02030400050006"},
		{"nanosecond", newTime(t, 2, 3, 4, 5, 6, 7), "0203040005000607"},
		{"high nanosecond", newTime(t, 2, 3, 4, 5, 6, 999), "02030400051806e7"},
		{"midnight", rwf.Time{}, "0000000000000000"},
		{"max", newTime(t, 23, 59, 60, 999, 999, 999), "173b3c03e71be7e7"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := testutil.Encode(t, 8, test.time.Encode)
			require.Equal(t, testutil.Hex(t, test.hex), got)

			var tm rwf.Time
			err := tm.Decode(testutil.NewDecodeIterator(t, got))
			if test.time.IsBlank() {
				assert.ErrorIs(t, err, rwf.ErrBlankData)
			} else {
				assert.NoError(t, err)
			}
			require.True(t, tm.Equal(test.time), "got %v", tm)
		})
	}

	for _, n := range []int{1, 4, 6, 9} {
		var tm rwf.Time
		err := tm.Decode(testutil.NewDecodeIterator(t, make([]byte, n)))
		assert.ErrorIs(t, err, rwf.ErrIncompleteData)
	}

	var tm rwf.Time
	assert.ErrorIs(t, tm.Decode(testutil.NewDecodeIterator(t, nil)), rwf.ErrBlankData)
	require.True(t, tm.IsBlank())
}

func TestTimeFields(t *testing.T) {
	var tm rwf.Time
	assert.ErrorIs(t, tm.SetHour(24), rwf.ErrInvalidArgument)
	assert.ErrorIs(t, tm.SetMinute(60), rwf.ErrInvalidArgument)
	assert.ErrorIs(t, tm.SetSecond(61), rwf.ErrInvalidArgument)
	assert.ErrorIs(t, tm.SetMillisecond(1000), rwf.ErrInvalidArgument)
	assert.NoError(t, tm.SetHour(rwf.BlankHour))

	require.True(t, newTime(t, 2, 3).IsValid())
	require.True(t, rwf.Time{}.IsValid())
	require.False(t, newTime(t, 2, rwf.BlankMinute, 4).IsValid())

	_, err := rwf.NewTime(2, 3, 4, 1000)
	assert.ErrorIs(t, err, rwf.ErrInvalidArgument)

	nt, err := rwf.NewTime(2, 3, 4, 5)
	assert.NoError(t, err)
	require.True(t, nt.Equal(newTime(t, 2, 3, 4, 5)))
}

func TestTimeString(t *testing.T) {
	tests := []struct {
		time rwf.Time
		text string
		iso  string
	}{
		{newTime(t, 2, 3), "02:03", "02:03"},
		{newTime(t, 2, 3, 4), "02:03:04", "02:03:04"},
		{newTime(t, 2, 3, 4, 500), "02:03:04:500", "02:03:04.5"},
		{newTime(t, 2, 3, 4, 0), "02:03:04:000", "02:03:04"},
		{newTime(t, 2, 3, 4, 5, 6, 7), "02:03:04:005:006:007", "02:03:04.005006007"},
		{rwf.BlankTime(), "", ""},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			require.Equal(t, test.text, test.time.String())
			require.Equal(t, test.iso, test.time.FormatISO8601())

			tm := rwf.BlankTime()
			assert.NoError(t, tm.Parse(test.text))
			require.True(t, tm.Equal(test.time), "got %v", tm)
		})
	}
}

func TestTimeParse(t *testing.T) {
	tests := []struct {
		in   string
		want rwf.Time
	}{
		{"02:03", newTime(t, 2, 3)},
		{"2:3", newTime(t, 2, 3)},
		{"02 03 04", newTime(t, 2, 3, 4)},
		{"02:03:04.123", newTime(t, 2, 3, 4, 123)},
		{"02:03:04,5", newTime(t, 2, 3, 4, 500)},
		{"02:03:04.1234", newTime(t, 2, 3, 4, 123, 400)},
		{"10:00:00Z", newTime(t, 10, 0, 0)},
		{"10:00:00+02:00", newTime(t, 10, 0, 0)},
		{"", rwf.BlankTime()},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			tm := rwf.BlankTime()
			assert.NoError(t, tm.Parse(test.in))
			require.True(t, tm.Equal(test.want), "got %v", tm)
		})
	}

	for _, in := range []string{"25:00", "02:03:04:005:006:007:008", "aa:bb", "02:03.5", "02:03:04.1234567890"} {
		t.Run(in, func(t *testing.T) {
			var tm rwf.Time
			assert.ErrorIs(t, tm.Parse(in), rwf.ErrInvalidArgument)
		})
	}
}

func TestTimeParseKeepsFields(t *testing.T) {
	var tm rwf.Time
	assert.NoError(t, tm.Parse("02:03"))
	require.Equal(t, "02:03:00:000:000:000", tm.String())

	tm = newTime(t, 9, 9, 9, 9, 9, 9)
	assert.NoError(t, tm.Parse("02 03 04"))
	require.True(t, tm.Equal(newTime(t, 2, 3, 4, 9, 9, 9)), "got %v", tm)

	tm = rwf.BlankTime()
	assert.NoError(t, tm.Parse("02:03:04:005"))
	require.True(t, tm.Equal(newTime(t, 2, 3, 4, 5)), "got %v", tm)

	// ISO 8601 and empty text replace every field
	tm = newTime(t, 9, 9, 9, 9, 9, 9)
	assert.NoError(t, tm.Parse("02:03:04.5"))
	require.True(t, tm.Equal(newTime(t, 2, 3, 4, 500)), "got %v", tm)

	tm = newTime(t, 9, 9, 9, 9, 9, 9)
	assert.NoError(t, tm.Parse(" "))
	require.True(t, tm.IsBlank())

	// a failed parse leaves the time as it was
	tm = newTime(t, 9, 9)
	assert.ErrorIs(t, tm.Parse("02:99"), rwf.ErrInvalidArgument)
	require.True(t, tm.Equal(newTime(t, 9, 9)), "got %v", tm)
}
