package bytesize

import "fmt"

// Unit is one magnitude step in a unit table: how many bytes it represents
// and the symbol it is written with.
type Unit struct {
	Factor uint64
	Symbol string
	Short  string // optional single-letter style; Symbol is used when empty
}

// Table is an ordered list of units, smallest factor first. The built-in
// SITable and IECTable cover the standard unit systems; NewTable builds a
// custom one.
type Table struct {
	units []Unit
}

// SITable holds the decimal units, factor 1000 apart.
var SITable = &Table{units: []Unit{
	{1, "B", "B"},
	{1e3, "kB", "k"},
	{1e6, "MB", "M"},
	{1e9, "GB", "G"},
	{1e12, "TB", "T"},
	{1e15, "PB", "P"},
	{1e18, "EB", "E"},
}}

// IECTable holds the binary units, factor 1024 apart.
var IECTable = &Table{units: []Unit{
	{1, "B", "B"},
	{1 << 10, "KiB", "K"},
	{1 << 20, "MiB", "M"},
	{1 << 30, "GiB", "G"},
	{1 << 40, "TiB", "T"},
	{1 << 50, "PiB", "P"},
	{1 << 60, "EiB", "E"},
}}

// NewTable builds a custom unit table. The first unit must have factor 1
// (the base unit), factors must be strictly increasing, and symbols must be
// non-empty and unique within the table. Invalid tables are rejected here
// rather than producing wrong output later.
func NewTable(units ...Unit) (*Table, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("unit table: no units")
	}
	if units[0].Factor != 1 {
		return nil, fmt.Errorf("unit table: first factor must be 1, got %d", units[0].Factor)
	}
	seen := make(map[string]bool, len(units))
	for i, u := range units {
		if u.Symbol == "" {
			return nil, fmt.Errorf("unit table: empty symbol at index %d", i)
		}
		if seen[u.Symbol] {
			return nil, fmt.Errorf("unit table: duplicate symbol %q", u.Symbol)
		}
		seen[u.Symbol] = true
		if i > 0 && u.Factor <= units[i-1].Factor {
			return nil, fmt.Errorf("unit table: factors not strictly increasing at %q", u.Symbol)
		}
	}
	cp := make([]Unit, len(units))
	copy(cp, units)
	return &Table{units: cp}, nil
}

// Units returns a copy of the table's units, smallest factor first.
func (t *Table) Units() []Unit {
	cp := make([]Unit, len(t.units))
	copy(cp, t.units)
	return cp
}

// Resolve looks up a unit symbol, case-sensitively, and returns its factor.
func (t *Table) Resolve(symbol string) (uint64, bool) {
	for _, u := range t.units {
		if u.Symbol == symbol {
			return u.Factor, true
		}
	}
	return 0, false
}

// Pick returns the largest unit whose factor does not exceed c, or the base
// unit when c is smaller than every other factor.
func (t *Table) Pick(c ByteCount) Unit {
	for i := len(t.units) - 1; i > 0; i-- {
		if uint64(c) >= t.units[i].Factor {
			return t.units[i]
		}
	}
	return t.units[0]
}
