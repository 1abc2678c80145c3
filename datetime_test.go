package rwf_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/chaisql/rwf"
	"github.com/chaisql/rwf/internal/testutil"
	"github.com/chaisql/rwf/internal/testutil/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeCodec(t *testing.T) {
	day := newDate(t, 1974, 4, 14)

	tests := []struct {
		name string
		dt   rwf.DateTime
		hex  string
	}{
		{"minute", rwf.NewDateTime(day, newTime(t, 2, 3)), "0e0407b6 0203"},
		{"second", rwf.NewDateTime(day, newTime(t, 2, 3, 4)), "0e0407b6 020304"},
		{"millisecond", rwf.NewDateTime(day, newTime(t, 2, 3, 4, 5)), "0e0407b6 0203040005"},
		{"microsecond", rwf.NewDateTime(day, newTime(t, 2, 3, 4, 5, 6)), "0e0407b6 02030400050006"},
		{"nanosecond", rwf.NewDateTime(day, newTime(t, 2, 3, 4, 5, 6, 7)), "0e0407b6 0203040005000607"},
		{"date only", rwf.NewDateTime(day, rwf.BlankTime()), "0e0407b6 ffff"},
		{"time only", rwf.NewDateTime(rwf.BlankDate(), newTime(t, 2, 3)), "00000000 0203"},
		{"blank", rwf.BlankDateTime(), "00000000 ffff"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := testutil.Encode(t, 12, test.dt.Encode)
			require.Equal(t, testutil.Hex(t, test.hex), got)

			var dt rwf.DateTime
			err := dt.Decode(testutil.NewDecodeIterator(t, got))
			if test.dt.IsBlank() {
				assert.ErrorIs(t, err, rwf.ErrBlankData)
			} else {
				assert.NoError(t, err)
			}
			require.True(t, dt.Equal(test.dt), "got %v", dt)
		})
	}

	for _, n := range []int{1, 4, 5, 8, 10, 13} {
		var dt rwf.DateTime
		err := dt.Decode(testutil.NewDecodeIterator(t, make([]byte, n)))
		assert.ErrorIs(t, err, rwf.ErrIncompleteData)
	}

	var dt rwf.DateTime
	assert.ErrorIs(t, dt.Decode(testutil.NewDecodeIterator(t, nil)), rwf.ErrBlankData)
	require.True(t, dt.IsBlank())
}

func TestDateTimeString(t *testing.T) {
	day := newDate(t, 1974, 4, 14)

	tests := []struct {
		dt   rwf.DateTime
		text string
		iso  string
	}{
		{rwf.NewDateTime(day, newTime(t, 2, 3)), "14 APR 1974 02:03", "1974-04-14T02:03"},
		{rwf.NewDateTime(day, newTime(t, 2, 3, 4, 500)), "14 APR 1974 02:03:04:500", "1974-04-14T02:03:04.5"},
		{rwf.NewDateTime(day, rwf.BlankTime()), "14 APR 1974", "1974-04-14"},
		{rwf.NewDateTime(rwf.BlankDate(), newTime(t, 2, 3)), "02:03", "02:03"},
		{rwf.BlankDateTime(), "", ""},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			require.Equal(t, test.text, test.dt.String())
			require.Equal(t, test.iso, test.dt.FormatISO8601())

			dt := rwf.BlankDateTime()
			assert.NoError(t, dt.Parse(test.text))
			require.True(t, dt.Equal(test.dt), "got %v", dt)

			dt = rwf.BlankDateTime()
			assert.NoError(t, dt.Parse(test.iso))
			require.True(t, dt.Equal(test.dt), "got %v", dt)
		})
	}
}

func TestDateTimeParse(t *testing.T) {
	day := newDate(t, 1974, 4, 14)

	tests := []struct {
		in   string
		want rwf.DateTime
	}{
		{"14 APR 1974 02:03:04", rwf.NewDateTime(day, newTime(t, 2, 3, 4))},
		{"1974/04/14 02:03", rwf.NewDateTime(day, newTime(t, 2, 3))},
		{"04/14/74 02:03", rwf.NewDateTime(day, newTime(t, 2, 3))},
		{"14 apr 1974 02:03", rwf.NewDateTime(day, newTime(t, 2, 3))},
		{"1974-04-14T02:03:04.5", rwf.NewDateTime(day, newTime(t, 2, 3, 4, 500))},
		{"1974-04-14 02:03:04", rwf.NewDateTime(day, newTime(t, 2, 3, 4))},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			dt := rwf.BlankDateTime()
			assert.NoError(t, dt.Parse(test.in))
			require.True(t, dt.Equal(test.want), "got %v", dt)
		})
	}

	var dt rwf.DateTime
	assert.ErrorIs(t, dt.Parse("garbage"), rwf.ErrInvalidArgument)
	assert.ErrorIs(t, dt.Parse("1974/04/14 99:00"), rwf.ErrInvalidArgument)
}

func TestDateTimeParseKeepsTime(t *testing.T) {
	var dt rwf.DateTime
	assert.NoError(t, dt.Parse("1974/04/14 02:03"))
	require.Equal(t, "14 APR 1974 02:03:00:000:000:000", dt.String())

	dt = rwf.NewDateTime(newDate(t, 2000, 1, 1), newTime(t, 9, 9, 9, 250))
	assert.NoError(t, dt.Parse("14 APR 1974 02:03"))
	require.True(t, dt.Equal(rwf.NewDateTime(newDate(t, 1974, 4, 14), newTime(t, 2, 3, 9, 250))), "got %v", dt)

	// a date alone blanks the time
	assert.NoError(t, dt.Parse("1974/04/14"))
	require.True(t, dt.Time.IsBlank())

	p, err := rwf.ParsePrimitive(rwf.DataTypeDateTime, "1974/04/14 02:03")
	assert.NoError(t, err)
	require.Equal(t, "14 APR 1974 02:03", p.String())
}

func TestDateTimeParseFallback(t *testing.T) {
	var dt rwf.DateTime
	assert.NoError(t, dt.Parse("now"))
	require.GreaterOrEqual(t, dt.Date.Year(), 2024)
	require.True(t, dt.IsValid())
}

func TestDateTimeStdTime(t *testing.T) {
	std := time.Date(2023, 11, 21, 10, 5, 59, 123456789, time.UTC)

	dt, err := rwf.DateTimeFromStdTime(std)
	assert.NoError(t, err)
	require.Equal(t, "21 NOV 2023 10:05:59:123:456:789", dt.String())

	back, err := dt.StdTime("UTC")
	assert.NoError(t, err)
	require.True(t, back.Equal(std), "got %v", back)

	_, err = rwf.DateTimeFromStdTime(time.Date(5000, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, rwf.ErrInvalidArgument)

	_, err = rwf.NewDateTime(rwf.BlankDate(), newTime(t, 2, 3)).StdTime("UTC")
	assert.ErrorIs(t, err, rwf.ErrInvalidArgument)
}

func TestDateTimeIn(t *testing.T) {
	std := time.Date(2023, 1, 1, 23, 30, 0, 0, time.UTC)

	dt, err := rwf.DateTimeFromStdTimeIn(std, "Asia/Tokyo")
	assert.NoError(t, err)
	require.Equal(t, "2023-01-02T08:30:00", dt.FormatISO8601())

	tokyo, err := dt.StdTime("Asia/Tokyo")
	assert.NoError(t, err)
	require.True(t, tokyo.Equal(std))
}

func TestDateTimeMillis(t *testing.T) {
	dt := rwf.NewDateTime(newDate(t, 1970, 1, 2), newTime(t, 0, 0))
	ms, err := dt.MillisSinceEpoch()
	assert.NoError(t, err)
	require.EqualValues(t, 86_400_000, ms)

	assert.NoError(t, dt.SetMillisSinceEpoch(86_400_123))
	require.Equal(t, "02 JAN 1970 00:00:00:123:000:000", dt.String())

	ms, err = dt.MillisSinceEpoch()
	assert.NoError(t, err)
	require.EqualValues(t, 86_400_123, ms)
}

func TestNow(t *testing.T) {
	before := time.Now().UTC().Add(-time.Minute)
	now := rwf.NowGMT()
	require.False(t, now.IsBlank())

	std, err := now.StdTime("UTC")
	assert.NoError(t, err)
	require.True(t, std.After(before))

	require.False(t, rwf.NowLocal().IsBlank())
}
