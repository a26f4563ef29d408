package bytesize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors, matched with errors.Is. The returned errors wrap these
// sentinels together with the offending input.
var (
	ErrMissingNumber   = errors.New("missing number")
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrTrailingGarbage = errors.New("trailing garbage")
	ErrOverflow        = errors.New("byte count overflow")
	ErrUnderflow       = errors.New("byte count underflow")
)

// Parse converts a size string like "1.5 KiB", "301kB", or "1024" to a
// ByteCount. The numeral may be an integer or a decimal; the unit symbol is
// optional (bytes implied), separated from the numeral by at most one run of
// whitespace, and resolved case-sensitively against the SI then IEC tables.
// Anything left over after the unit symbol is a hard failure: "10 XYZ" is an
// unknown unit, not 10 bytes. The scaled value is rounded half away from
// zero to the nearest byte.
func Parse(s string) (ByteCount, error) {
	return ParseWith(s, nil)
}

// ParseWith is Parse with an extra custom unit table, consulted after the
// built-in SI and IEC tables.
func ParseWith(s string, custom *Table) (ByteCount, error) {
	rest := strings.TrimLeftFunc(s, unicode.IsSpace)

	num, rest := scanNumber(rest)
	if num == "" {
		return 0, fmt.Errorf("%w in %q", ErrMissingNumber, s)
	}

	// At most one whitespace block between numeral and symbol.
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	sym, rest := scanSymbol(rest)
	if rest != "" {
		return 0, fmt.Errorf("%w %q in %q", ErrTrailingGarbage, rest, s)
	}

	factor := uint64(1)
	if sym != "" {
		f, ok := resolveSymbol(sym, custom)
		if !ok {
			return 0, fmt.Errorf("%w %q in %q", ErrUnknownUnit, sym, s)
		}
		factor = f
	}

	mantissa, err := strconv.ParseFloat(num, 64)
	if err != nil {
		// Only range errors are possible for a scanned numeral.
		return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
	}

	v := math.Round(mantissa * float64(factor))
	// float64(MaxUint64) is 2^64; anything below it fits.
	if v >= math.MaxUint64 {
		return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return ByteCount(v), nil
}

// scanNumber splits off a leading decimal numeral: digits, an optional
// single '.', more digits. At least one digit is required; signs are not
// accepted (there are no negative sizes).
func scanNumber(s string) (num, rest string) {
	i, digits := 0, 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return "", s
	}
	return s[:i], s[i:]
}

// scanSymbol splits off a maximal run of letters.
func scanSymbol(s string) (sym, rest string) {
	i := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			break
		}
		i += utf8.RuneLen(r)
	}
	return s[:i], s[i:]
}

func resolveSymbol(sym string, custom *Table) (uint64, bool) {
	if f, ok := SITable.Resolve(sym); ok {
		return f, true
	}
	if f, ok := IECTable.Resolve(sym); ok {
		return f, true
	}
	if custom != nil {
		if f, ok := custom.Resolve(sym); ok {
			return f, true
		}
	}
	return 0, false
}
