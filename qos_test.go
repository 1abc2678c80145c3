package rwf_test

import (
	"testing"

	"github.com/chaisql/rwf"
	"github.com/chaisql/rwf/internal/testutil"
	"github.com/chaisql/rwf/internal/testutil/assert"
	"github.com/stretchr/testify/require"
)

func newQos(t *testing.T, s string) rwf.Qos {
	t.Helper()

	var q rwf.Qos
	assert.NoError(t, q.Parse(s))
	return q
}

func TestQosCodec(t *testing.T) {
	tests := []struct {
		text string
		hex  string
	}{
		{"Realtime/TickByTick/Static", "22"},
		{"Realtime/TickByTick/Dynamic", "23"},
		{"DelayedUnknown/JitConflated/Static", "44"},
		{"Delayed(5)/TickByTick/Static", "62 0005"},
		{"Realtime/TimeConflated(100)/Static", "26 0064"},
		{"Delayed(5)/TimeConflated(100)/Dynamic", "67 0005 0064"},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			q := newQos(t, test.text)
			require.Equal(t, test.text, q.String())

			got := testutil.Encode(t, 5, q.Encode)
			require.Equal(t, testutil.Hex(t, test.hex), got)

			var decoded rwf.Qos
			assert.NoError(t, decoded.Decode(testutil.NewDecodeIterator(t, got)))
			require.True(t, decoded.Equal(q), "got %s", decoded)
		})
	}
}

func TestQosCodecErrors(t *testing.T) {
	it := testutil.NewEncodeIterator(t, 5)
	assert.ErrorIs(t, rwf.BlankQos().Encode(it), rwf.ErrInvalidArgument)

	q, err := rwf.NewQos(rwf.TimelinessUnspecified, rwf.RateTickByTick)
	assert.NoError(t, err)
	assert.ErrorIs(t, q.Encode(it), rwf.ErrInvalidArgument)

	it = testutil.NewEncodeIterator(t, 2)
	assert.ErrorIs(t, newQos(t, "Delayed(5)/TickByTick").Encode(it), rwf.ErrBufferTooSmall)

	tests := []struct {
		name string
		hex  string
		err  error
	}{
		{"empty", "", rwf.ErrBlankData},
		{"missing time info", "62", rwf.ErrIncompleteData},
		{"missing rate info", "66 0005 00", rwf.ErrIncompleteData},
		{"extra byte", "22 00", rwf.ErrInvalidData},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var q rwf.Qos
			err := q.Decode(testutil.NewDecodeIterator(t, testutil.Hex(t, test.hex)))
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestQosParse(t *testing.T) {
	q := newQos(t, "realtime/tickbytick")
	require.Equal(t, rwf.TimelinessRealtime, q.Timeliness())
	require.Equal(t, rwf.RateTickByTick, q.Rate())
	require.False(t, q.IsDynamic())

	q = newQos(t, "Delayed(30)/TimeConflated(250)/Dynamic")
	require.Equal(t, 30, q.TimeInfo())
	require.Equal(t, 250, q.RateInfo())
	require.True(t, q.IsDynamic())

	q = newQos(t, "")
	require.True(t, q.IsBlank())
	require.Equal(t, "", q.String())

	for _, in := range []string{"Realtime", "Fast/TickByTick", "Delayed(x)/TickByTick", "Delayed(5/TickByTick", "Realtime/TickByTick/Maybe", "Delayed(70000)/TickByTick", "a/b/c/d"} {
		t.Run(in, func(t *testing.T) {
			var q rwf.Qos
			assert.ErrorIs(t, q.Parse(in), rwf.ErrInvalidArgument)
		})
	}
}

func TestQosSetters(t *testing.T) {
	q := rwf.BlankQos()
	q.SetDynamic(true)
	require.False(t, q.IsBlank())

	assert.ErrorIs(t, q.SetTimeliness(8), rwf.ErrInvalidArgument)
	assert.ErrorIs(t, q.SetRate(16), rwf.ErrInvalidArgument)
	assert.ErrorIs(t, q.SetTimeInfo(-1), rwf.ErrInvalidArgument)
	assert.ErrorIs(t, q.SetRateInfo(65536), rwf.ErrInvalidArgument)

	var dst rwf.Qos
	assert.NoError(t, q.Copy(&dst))
	require.True(t, dst.Equal(q))

	q.Clear()
	require.False(t, q.Equal(dst))
	require.Equal(t, "Unspecified/Unspecified/Static", q.String())
}

func TestQosIsBetter(t *testing.T) {
	tests := []struct {
		better, worse string
	}{
		{"Realtime/TickByTick", "Realtime/JitConflated"},
		{"Realtime/JitConflated", "Realtime/TimeConflated(0)"},
		{"Realtime/TimeConflated(100)", "Realtime/TimeConflated(200)"},
		{"Realtime/TimeConflated(1000)", "DelayedUnknown/TickByTick"},
		{"DelayedUnknown/TimeConflated(1000)", "Delayed(0)/TickByTick"},
		{"Delayed(5)/TimeConflated(1000)", "Delayed(10)/TickByTick"},
		{"Delayed(60)/TickByTick", "Unspecified/TickByTick"},
		{"Realtime/TimeConflated(65535)", "Realtime/Unspecified"},
	}

	for _, test := range tests {
		t.Run(test.better+" > "+test.worse, func(t *testing.T) {
			better, worse := newQos(t, test.better), newQos(t, test.worse)
			require.True(t, better.IsBetter(worse))
			require.False(t, worse.IsBetter(better))
			require.False(t, better.IsBetter(better))
		})
	}

	q := newQos(t, "Delayed(5)/TickByTick")
	require.True(t, q.IsBetter(rwf.BlankQos()))
	require.False(t, rwf.BlankQos().IsBetter(q))
	require.False(t, rwf.BlankQos().IsBetter(rwf.BlankQos()))

	// the dynamic flag doesn't matter
	require.False(t, newQos(t, "Realtime/TickByTick/Dynamic").IsBetter(newQos(t, "Realtime/TickByTick")))
}

func TestQosIsInRange(t *testing.T) {
	best := newQos(t, "Realtime/TickByTick")
	worst := newQos(t, "Delayed(10)/TimeConflated(1000)")

	tests := []struct {
		qos  string
		want bool
	}{
		{"Realtime/TickByTick", true},
		{"Delayed(10)/TimeConflated(1000)", true},
		{"Delayed(5)/JitConflated", true},
		{"DelayedUnknown/TimeConflated(500)", true},
		{"Delayed(20)/TickByTick", false},
		{"Realtime/TimeConflated(2000)", false},
		{"Unspecified/TickByTick", false},
	}

	for _, test := range tests {
		t.Run(test.qos, func(t *testing.T) {
			q := newQos(t, test.qos)
			require.Equal(t, test.want, q.IsInRange(best, worst))
			require.True(t, q.IsInRange(q, q))
		})
	}

	// a blank worst accepts only best
	require.True(t, best.IsInRange(best, rwf.BlankQos()))
	require.False(t, worst.IsInRange(best, rwf.BlankQos()))
	require.False(t, best.IsInRange(rwf.BlankQos(), worst))
	require.False(t, rwf.BlankQos().IsInRange(best, worst))
	require.True(t, rwf.BlankQos().IsInRange(rwf.BlankQos(), rwf.BlankQos()))
}
