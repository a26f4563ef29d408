package bytesize

import "strconv"

// System selects one of the built-in unit systems.
type System int

const (
	// IEC is the binary system: KiB, MiB, GiB, factor 1024.
	IEC System = iota
	// SI is the decimal system: kB, MB, GB, factor 1000.
	SI
)

// Spec configures formatting.
type Spec struct {
	System    System
	Table     *Table // custom unit table; overrides System when non-nil
	Precision int    // fractional digits; negative is treated as 0
	Short     bool   // no space, single-letter symbols, e.g. "1.5G"
}

// DefaultSpec returns the default formatting configuration: IEC units with
// one fractional digit.
func DefaultSpec() Spec {
	return Spec{System: IEC, Precision: 1}
}

func (s Spec) table() *Table {
	if s.Table != nil {
		return s.Table
	}
	if s.System == SI {
		return SITable
	}
	return IECTable
}

// Format renders the count in the largest unit that still represents it as
// at least 1.0, with exactly spec.Precision fractional digits. Counts below
// the smallest non-base factor render as a plain integer with the base
// symbol ("999 B"), never with decimals. Fractional digits are rounded the
// way strconv.FormatFloat rounds: to nearest, ties to even.
func (c ByteCount) Format(spec Spec) string {
	t := spec.table()
	u := t.Pick(c)

	sep := " "
	sym := u.Symbol
	if spec.Short {
		sep = ""
		if u.Short != "" {
			sym = u.Short
		}
	}

	if u.Factor == 1 {
		return strconv.FormatUint(uint64(c), 10) + sep + sym
	}

	prec := spec.Precision
	if prec < 0 {
		prec = 0
	}
	v := float64(c) / float64(u.Factor)
	return strconv.FormatFloat(v, 'f', prec, 64) + sep + sym
}

// String renders the count with DefaultSpec, e.g. "482.4 GiB".
func (c ByteCount) String() string {
	return c.Format(DefaultSpec())
}
