package bytesize

import (
	"database/sql/driver"
	"fmt"
	"math"
)

// Value implements driver.Valuer, storing the count as a signed SQL
// integer. Counts above MaxInt64 do not fit and return ErrOverflow.
func (c ByteCount) Value() (driver.Value, error) {
	if uint64(c) > math.MaxInt64 {
		return nil, fmt.Errorf("%d bytes in sql integer: %w", uint64(c), ErrOverflow)
	}
	return int64(c), nil
}

// Scan implements sql.Scanner. Integer columns are taken as raw byte
// counts; text columns are parsed as size strings.
func (c *ByteCount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = 0
		return nil
	case int64:
		if v < 0 {
			return fmt.Errorf("byte count: negative sql value %d", v)
		}
		*c = ByteCount(v)
		return nil
	case string:
		return c.UnmarshalText([]byte(v))
	case []byte:
		return c.UnmarshalText(v)
	default:
		return fmt.Errorf("byte count: cannot scan %T", src)
	}
}
