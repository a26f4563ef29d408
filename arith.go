package bytesize

import (
	"fmt"
	"math"
)

// Add returns c+d, or ErrOverflow when the sum exceeds the uint64 range.
func (c ByteCount) Add(d ByteCount) (ByteCount, error) {
	if d > math.MaxUint64-c {
		return 0, fmt.Errorf("%v + %v: %w", c, d, ErrOverflow)
	}
	return c + d, nil
}

// Sub returns c-d. Subtracting more bytes than c holds is a checked failure
// (ErrUnderflow), never wraparound. SubClamped is the saturating
// alternative.
func (c ByteCount) Sub(d ByteCount) (ByteCount, error) {
	if d > c {
		return 0, fmt.Errorf("%v - %v: %w", c, d, ErrUnderflow)
	}
	return c - d, nil
}

// SubClamped returns c-d, saturating to zero when d exceeds c.
func (c ByteCount) SubClamped(d ByteCount) ByteCount {
	if d > c {
		return 0
	}
	return c - d
}

// Mul returns c×n, or ErrOverflow when the product exceeds the uint64 range.
func (c ByteCount) Mul(n uint64) (ByteCount, error) {
	if n != 0 && uint64(c) > math.MaxUint64/n {
		return 0, fmt.Errorf("%v x %d: %w", c, n, ErrOverflow)
	}
	return c * ByteCount(n), nil
}

// Div returns c/n, truncating toward zero. n must be non-zero.
func (c ByteCount) Div(n uint64) ByteCount {
	return c / ByteCount(n)
}
