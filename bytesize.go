// Package bytesize represents counts of bytes and converts them to and from
// human-readable strings in SI (decimal, kB/MB/GB) and IEC (binary,
// KiB/MiB/GiB) units.
package bytesize

import (
	"fmt"
	"math"
)

// ByteCount is a number of bytes. It is a plain uint64 underneath and
// converts to and from one freely.
type ByteCount uint64

// Decimal (SI) unit sizes.
const (
	B  ByteCount = 1
	KB ByteCount = 1000
	MB           = 1000 * KB
	GB           = 1000 * MB
	TB           = 1000 * GB
	PB           = 1000 * TB
	EB           = 1000 * PB
)

// Binary (IEC) unit sizes.
const (
	KiB ByteCount = 1024
	MiB           = 1024 * KiB
	GiB           = 1024 * MiB
	TiB           = 1024 * GiB
	PiB           = 1024 * TiB
	EiB           = 1024 * PiB
)

// Bytes returns a ByteCount of n bytes.
func Bytes(n uint64) ByteCount { return ByteCount(n) }

// Kilobytes returns n kB (n × 1000 bytes).
func Kilobytes(n uint64) (ByteCount, error) { return unitCount(n, KB) }

// Kibibytes returns n KiB (n × 1024 bytes).
func Kibibytes(n uint64) (ByteCount, error) { return unitCount(n, KiB) }

// Megabytes returns n MB.
func Megabytes(n uint64) (ByteCount, error) { return unitCount(n, MB) }

// Mebibytes returns n MiB.
func Mebibytes(n uint64) (ByteCount, error) { return unitCount(n, MiB) }

// Gigabytes returns n GB.
func Gigabytes(n uint64) (ByteCount, error) { return unitCount(n, GB) }

// Gibibytes returns n GiB.
func Gibibytes(n uint64) (ByteCount, error) { return unitCount(n, GiB) }

// Terabytes returns n TB.
func Terabytes(n uint64) (ByteCount, error) { return unitCount(n, TB) }

// Tebibytes returns n TiB.
func Tebibytes(n uint64) (ByteCount, error) { return unitCount(n, TiB) }

// Petabytes returns n PB.
func Petabytes(n uint64) (ByteCount, error) { return unitCount(n, PB) }

// Pebibytes returns n PiB.
func Pebibytes(n uint64) (ByteCount, error) { return unitCount(n, PiB) }

// Exabytes returns n EB.
func Exabytes(n uint64) (ByteCount, error) { return unitCount(n, EB) }

// Exbibytes returns n EiB.
func Exbibytes(n uint64) (ByteCount, error) { return unitCount(n, EiB) }

func unitCount(n uint64, unit ByteCount) (ByteCount, error) {
	if n != 0 && n > math.MaxUint64/uint64(unit) {
		return 0, fmt.Errorf("%d x %d bytes: %w", n, uint64(unit), ErrOverflow)
	}
	return ByteCount(n) * unit, nil
}
