package rwf

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// String returns r in its natural notation: a decimal number for
// exponent hints, a whole part followed by a fraction for fraction
// hints, and Inf, -Inf or NaN for the special hints. A blank Real is
// the empty string.
func (r Real) String() string {
	if r.blank {
		return ""
	}

	switch {
	case r.hint == Infinity:
		return "Inf"
	case r.hint == NegInfinity:
		return "-Inf"
	case r.hint == NotANumber:
		return "NaN"
	case r.hint.IsFraction():
		return r.fractionString()
	}

	return r.Decimal()
}

// Decimal returns the exact decimal notation of r. Fractions are
// expanded, 1/256 needing up to eight decimal places.
func (r Real) Decimal() string {
	if r.blank {
		return ""
	}

	switch r.hint {
	case Infinity:
		return "Inf"
	case NegInfinity:
		return "-Inf"
	case NotANumber:
		return "NaN"
	}

	if r.hint.IsFraction() {
		// m/2^k == m*5^k/10^k
		k := int(r.hint - Fraction1)
		m := new(big.Int).Mul(big.NewInt(r.mantissa), new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(k)), nil))
		return insertPoint(m.String(), k)
	}

	digits := strconv.FormatInt(r.mantissa, 10)
	exp := r.hint.Exponent()
	if exp >= 0 {
		if r.mantissa == 0 {
			return "0"
		}
		return digits + strings.Repeat("0", exp)
	}
	return insertPoint(digits, -exp)
}

// insertPoint places a decimal point places digits from the right of the
// signed integer digits, padding with zeros as needed.
func insertPoint(digits string, places int) string {
	if places == 0 {
		return digits
	}

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= places {
		digits = strings.Repeat("0", places-len(digits)+1) + digits
	}

	cut := len(digits) - places
	return sign + digits[:cut] + "." + digits[cut:]
}

func (r Real) fractionString() string {
	den := r.hint.Denominator()

	var sb strings.Builder
	m := r.mantissa
	// negating MinInt64 wraps, but its uint64 conversion below is
	// still the right magnitude
	whole, num := m/den, m%den
	if m < 0 {
		sb.WriteByte('-')
		whole, num = -whole, -num
	}

	if whole != 0 {
		sb.WriteString(strconv.FormatUint(uint64(whole), 10))
		sb.WriteByte(' ')
	}
	sb.WriteString(strconv.FormatInt(num, 10))
	sb.WriteByte('/')
	sb.WriteString(strconv.FormatInt(den, 10))
	return sb.String()
}

// Parse sets r from text. Accepted forms are decimals ("12345.6789"),
// with an optional sign, fractions ("1/4", "-1/4"), whole numbers
// followed by a fraction ("100 1/4"), and "Inf", "-Inf" and "NaN".
// Empty or whitespace only text blanks r.
//
// Decimals get the exponent hint matching their number of decimal
// places, fractions the hint matching their denominator.
func (r *Real) Parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		r.Blank()
		return nil
	}

	switch {
	case strings.EqualFold(s, "inf"), strings.EqualFold(s, "+inf"):
		return r.Set(0, Infinity)
	case strings.EqualFold(s, "-inf"):
		return r.Set(0, NegInfinity)
	case strings.EqualFold(s, "nan"):
		return r.Set(0, NotANumber)
	}

	var (
		m    int64
		hint RealHint
		err  error
	)
	if strings.ContainsRune(s, '/') {
		m, hint, err = parseFraction(s)
	} else {
		m, hint, err = parseDecimal(s)
	}
	if err != nil {
		return err
	}

	return r.Set(m, hint)
}

func parseDecimal(s string) (int64, RealHint, error) {
	intPart, fracPart, hasPoint := strings.Cut(s, ".")
	if hasPoint && (fracPart == "" || !isDigits(fracPart)) {
		return 0, 0, errors.Wrapf(ErrInvalidArgument, "invalid real %q", s)
	}

	unsigned := strings.TrimLeft(intPart, "+-")
	if len(intPart)-len(unsigned) > 1 || (unsigned == "" && !hasPoint) || !isDigits(unsigned) {
		return 0, 0, errors.Wrapf(ErrInvalidArgument, "invalid real %q", s)
	}
	if unsigned == "" {
		intPart += "0"
	}

	if len(fracPart) > 14 {
		trimmed := strings.TrimRight(fracPart, "0")
		if len(trimmed) > 14 {
			return 0, 0, errors.Wrapf(ErrInvalidArgument, "real %q has more than 14 decimal places", s)
		}
		fracPart = trimmed
	}

	m, err := strconv.ParseInt(intPart+fracPart, 10, 64)
	if err == nil {
		return m, Exponent0 - RealHint(len(fracPart)), nil
	}

	// a whole number too large for the mantissa may still fit with a
	// positive exponent
	if fracPart == "" {
		digits := strings.TrimRight(intPart, "0")
		exp := len(intPart) - len(digits)
		if exp > 7 {
			digits += strings.Repeat("0", exp-7)
			exp = 7
		}
		if m, err := strconv.ParseInt(digits, 10, 64); err == nil && exp > 0 {
			return m, Exponent0 + RealHint(exp), nil
		}
	}

	return 0, 0, errors.Wrapf(ErrInvalidArgument, "real %q out of range", s)
}

func parseFraction(s string) (int64, RealHint, error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	var whole uint64
	frac := s
	if w, f, ok := strings.Cut(s, " "); ok {
		var err error
		whole, err = strconv.ParseUint(w, 10, 63)
		if err != nil {
			return 0, 0, errors.Wrapf(ErrInvalidArgument, "invalid real %q", s)
		}
		frac = strings.TrimSpace(f)
	}

	n, d, _ := strings.Cut(frac, "/")
	num, err := strconv.ParseUint(n, 10, 63)
	if err != nil {
		return 0, 0, errors.Wrapf(ErrInvalidArgument, "invalid numerator in %q", s)
	}
	den, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(ErrInvalidArgument, "invalid denominator in %q", s)
	}
	hint, err := FractionHint(den)
	if err != nil {
		return 0, 0, err
	}

	// whole*den+num must fit in an int64, one more on the negative side
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	if whole > (limit-num)/uint64(den) {
		return 0, 0, errors.Wrapf(ErrInvalidArgument, "real %q out of range", s)
	}

	m := whole*uint64(den) + num
	if neg {
		return int64(-m), hint, nil
	}
	return int64(m), hint, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func float32To64(x float32) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(float64(x), 'g', -1, 32), 64)
	if err != nil {
		return float64(x)
	}
	return f
}
