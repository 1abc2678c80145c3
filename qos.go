package rwf

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chaisql/rwf/internal/encoding"
	"github.com/cockroachdb/errors"
)

// QosTimeliness tells how old the data may be.
type QosTimeliness uint8

// List of timeliness values.
const (
	TimelinessUnspecified QosTimeliness = iota
	TimelinessRealtime
	TimelinessDelayedUnknown
	// TimelinessDelayed is delayed by the number of seconds held in the
	// time info.
	TimelinessDelayed

	maxTimeliness QosTimeliness = 7
)

var timelinessNames = [...]string{"Unspecified", "Realtime", "DelayedUnknown", "Delayed"}

func (t QosTimeliness) String() string {
	if int(t) < len(timelinessNames) {
		return timelinessNames[t]
	}
	return fmt.Sprintf("Timeliness(%d)", uint8(t))
}

// ParseQosTimeliness returns the timeliness named s.
func ParseQosTimeliness(s string) (QosTimeliness, error) {
	for i, name := range timelinessNames {
		if strings.EqualFold(s, name) {
			return QosTimeliness(i), nil
		}
	}
	return 0, invalidArgf("unknown timeliness %q", s)
}

// QosRate tells how often the data is updated.
type QosRate uint8

// List of rates.
const (
	RateUnspecified QosRate = iota
	RateTickByTick
	RateJitConflated
	// RateTimeConflated is conflated over the number of milliseconds held
	// in the rate info.
	RateTimeConflated

	maxRate QosRate = 15
)

var rateNames = [...]string{"Unspecified", "TickByTick", "JitConflated", "TimeConflated"}

func (r QosRate) String() string {
	if int(r) < len(rateNames) {
		return rateNames[r]
	}
	return fmt.Sprintf("Rate(%d)", uint8(r))
}

// ParseQosRate returns the rate named s.
func ParseQosRate(s string) (QosRate, error) {
	for i, name := range rateNames {
		if strings.EqualFold(s, name) {
			return QosRate(i), nil
		}
	}
	return 0, invalidArgf("unknown rate %q", s)
}

// Qos is the quality of service of a stream: its timeliness, its rate
// and whether it may change over time.
type Qos struct {
	timeliness QosTimeliness
	rate       QosRate
	dynamic    bool
	timeInfo   uint16
	rateInfo   uint16
	blank      bool
}

// NewQos returns a static Qos of the given timeliness and rate.
func NewQos(timeliness QosTimeliness, rate QosRate) (Qos, error) {
	var q Qos
	if err := q.SetTimeliness(timeliness); err != nil {
		return Qos{}, err
	}
	if err := q.SetRate(rate); err != nil {
		return Qos{}, err
	}
	return q, nil
}

// BlankQos returns a blank Qos.
func BlankQos() Qos {
	return Qos{blank: true}
}

func (q Qos) Timeliness() QosTimeliness { return q.timeliness }
func (q Qos) Rate() QosRate             { return q.rate }
func (q Qos) IsDynamic() bool           { return q.dynamic }
func (q Qos) TimeInfo() int             { return int(q.timeInfo) }
func (q Qos) RateInfo() int             { return int(q.rateInfo) }

func (q *Qos) SetTimeliness(t QosTimeliness) error {
	if t > maxTimeliness {
		return invalidArgf("timeliness %d out of range", t)
	}
	q.timeliness = t
	q.blank = false
	return nil
}

func (q *Qos) SetRate(r QosRate) error {
	if r > maxRate {
		return invalidArgf("rate %d out of range", r)
	}
	q.rate = r
	q.blank = false
	return nil
}

func (q *Qos) SetDynamic(dynamic bool) {
	q.dynamic = dynamic
	q.blank = false
}

// SetTimeInfo sets the delay in seconds of a delayed Qos.
func (q *Qos) SetTimeInfo(seconds int) error {
	if seconds < 0 || seconds > math.MaxUint16 {
		return invalidArgf("time info %d out of range", seconds)
	}
	q.timeInfo = uint16(seconds)
	q.blank = false
	return nil
}

// SetRateInfo sets the conflation interval in milliseconds of a time
// conflated Qos.
func (q *Qos) SetRateInfo(millis int) error {
	if millis < 0 || millis > math.MaxUint16 {
		return invalidArgf("rate info %d out of range", millis)
	}
	q.rateInfo = uint16(millis)
	q.blank = false
	return nil
}

func (q Qos) IsBlank() bool {
	return q.blank
}

func (q *Qos) Blank() {
	*q = Qos{blank: true}
}

func (q *Qos) Clear() {
	*q = Qos{}
}

// Equal compares every field, the infos included even when the
// timeliness or rate doesn't use them.
func (q Qos) Equal(other Qos) bool {
	return q == other
}

// Copy copies q into dst.
func (q Qos) Copy(dst *Qos) error {
	if dst == nil {
		return ErrInvalidArgument
	}
	*dst = q
	return nil
}

// timelinessRank orders timeliness values, lowest first: real time, then
// delayed by an unknown amount, then delayed by the time info.
func (q Qos) timelinessRank() int {
	switch q.timeliness {
	case TimelinessRealtime:
		return 0
	case TimelinessDelayedUnknown:
		return 1
	case TimelinessDelayed:
		return 2 + int(q.timeInfo)
	}
	return math.MaxInt32
}

// rateRank orders rates, lowest first: tick by tick, then just in time
// conflation, then conflation over the rate info.
func (q Qos) rateRank() int {
	switch q.rate {
	case RateTickByTick:
		return 0
	case RateJitConflated:
		return 1
	case RateTimeConflated:
		return 2 + int(q.rateInfo)
	}
	return math.MaxInt32
}

// IsBetter reports whether q is strictly preferable to other. Any Qos is
// better than a blank one. Otherwise the timeliness is compared first,
// then the rate: real time beats delayed and tick by tick beats
// conflated, shorter delays and conflation intervals being better.
func (q Qos) IsBetter(other Qos) bool {
	switch {
	case q.blank:
		return false
	case other.blank:
		return true
	}

	if qt, ot := q.timelinessRank(), other.timelinessRank(); qt != ot {
		return qt < ot
	}
	return q.rateRank() < other.rateRank()
}

// IsInRange reports whether both the timeliness and the rate of q lie
// between those of best and worst, bounds included. A blank worst Qos
// means that only best is acceptable.
func (q Qos) IsInRange(best, worst Qos) bool {
	switch {
	case q.blank:
		return best.blank && worst.blank
	case best.blank:
		return false
	case worst.blank:
		worst = best
	}

	t, r := q.timelinessRank(), q.rateRank()
	return best.timelinessRank() <= t && t <= worst.timelinessRank() &&
		best.rateRank() <= r && r <= worst.rateRank()
}

// String returns q as timeliness/rate/Static or timeliness/rate/Dynamic,
// the infos following the delayed timeliness and the time conflated rate
// in parentheses: Delayed(5)/TimeConflated(100)/Static.
func (q Qos) String() string {
	if q.blank {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(q.timeliness.String())
	if q.timeliness == TimelinessDelayed {
		fmt.Fprintf(&sb, "(%d)", q.timeInfo)
	}
	sb.WriteByte('/')
	sb.WriteString(q.rate.String())
	if q.rate == RateTimeConflated {
		fmt.Fprintf(&sb, "(%d)", q.rateInfo)
	}
	if q.dynamic {
		sb.WriteString("/Dynamic")
	} else {
		sb.WriteString("/Static")
	}
	return sb.String()
}

// Parse sets q from the layout written by String. The trailing /Static
// or /Dynamic may be left out, in which case q is static.
func (q *Qos) Parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		q.Blank()
		return nil
	}

	parts := strings.Split(s, "/")
	if len(parts) < 2 || len(parts) > 3 {
		return errors.Wrapf(ErrInvalidArgument, "invalid qos %q", s)
	}

	var nq Qos
	name, info, err := splitInfo(parts[0])
	if err != nil {
		return errors.Wrapf(err, "invalid qos %q", s)
	}
	if nq.timeliness, err = ParseQosTimeliness(name); err != nil {
		return err
	}
	nq.timeInfo = info

	name, info, err = splitInfo(parts[1])
	if err != nil {
		return errors.Wrapf(err, "invalid qos %q", s)
	}
	if nq.rate, err = ParseQosRate(name); err != nil {
		return err
	}
	nq.rateInfo = info

	if len(parts) == 3 {
		switch {
		case strings.EqualFold(parts[2], "Dynamic"):
			nq.dynamic = true
		case strings.EqualFold(parts[2], "Static"):
		default:
			return errors.Wrapf(ErrInvalidArgument, "invalid qos %q", s)
		}
	}

	*q = nq
	return nil
}

// splitInfo splits "Name(123)" into its name and info.
func splitInfo(s string) (string, uint16, error) {
	name, rest, ok := strings.Cut(s, "(")
	if !ok {
		return s, 0, nil
	}

	digits, ok := strings.CutSuffix(rest, ")")
	if !ok {
		return "", 0, errors.Wrapf(ErrInvalidArgument, "invalid info %q", s)
	}
	n, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return "", 0, errors.Wrapf(ErrInvalidArgument, "invalid info %q", s)
	}
	return name, uint16(n), nil
}

func (q Qos) encodedSize() int {
	n := 1
	if q.timeliness > TimelinessDelayedUnknown {
		n += 2
	}
	if q.rate > RateJitConflated {
		n += 2
	}
	return n
}

// Encode writes the timeliness, the rate and the dynamic flag on one
// byte, followed by the time info if the timeliness is delayed and the
// rate info if the rate is time conflated. A blank Qos, or one with an
// unspecified timeliness or rate, cannot be encoded.
func (q Qos) Encode(it *EncodeIterator) error {
	switch {
	case q.blank:
		return invalidArgf("cannot encode a blank qos")
	case q.timeliness == TimelinessUnspecified || q.rate == RateUnspecified:
		return invalidArgf("cannot encode qos %s with an unspecified field", q)
	}

	dst, err := it.reserve(q.encodedSize())
	if err != nil {
		return err
	}

	dst[0] = byte(q.timeliness)<<encoding.QosTimelinessShift | byte(q.rate)<<encoding.QosRateShift
	if q.dynamic {
		dst[0] |= encoding.QosDynamicFlag
	}

	off := 1
	if q.timeliness > TimelinessDelayedUnknown {
		encoding.PutUint16(dst[off:], q.timeInfo)
		off += 2
	}
	if q.rate > RateJitConflated {
		encoding.PutUint16(dst[off:], q.rateInfo)
	}
	return nil
}

// Decode reads q from the bytes remaining at the current level.
func (q *Qos) Decode(it *DecodeIterator) error {
	src, err := it.span()
	if err != nil {
		return err
	}

	if len(src) == 0 {
		q.Blank()
		return ErrBlankData
	}

	var nq Qos
	nq.timeliness = QosTimeliness(src[0] >> encoding.QosTimelinessShift)
	nq.rate = QosRate(src[0] >> encoding.QosRateShift & 0x0F)
	nq.dynamic = src[0]&encoding.QosDynamicFlag != 0

	switch n := nq.encodedSize(); {
	case len(src) < n:
		return ErrIncompleteData
	case len(src) > n:
		return ErrInvalidData
	}

	off := 1
	if nq.timeliness > TimelinessDelayedUnknown {
		nq.timeInfo = encoding.DecodeUint16(src[off:])
		off += 2
	}
	if nq.rate > RateJitConflated {
		nq.rateInfo = encoding.DecodeUint16(src[off:])
	}

	*q = nq
	return nil
}
