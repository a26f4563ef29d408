package bytesize

import (
	"encoding/binary"
	"fmt"
)

// MarshalText renders the count with DefaultSpec. Together with
// UnmarshalText this gives ByteCount a human-readable form in JSON, TOML,
// and anything else that understands encoding.TextMarshaler. The round trip
// is approximate: "1.5 KiB" comes back as 1536 bytes, but 1537 bytes
// marshals to "1.5 KiB" too.
func (c ByteCount) MarshalText() ([]byte, error) {
	return []byte(c.Format(DefaultSpec())), nil
}

// UnmarshalText parses a size string, accepting everything Parse accepts.
func (c *ByteCount) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalBinary encodes the count as 8 big-endian bytes.
func (c ByteCount) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(c))
	return buf, nil
}

// UnmarshalBinary decodes the 8-byte big-endian form.
func (c *ByteCount) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("byte count: want 8 bytes, got %d", len(data))
	}
	*c = ByteCount(binary.BigEndian.Uint64(data))
	return nil
}
