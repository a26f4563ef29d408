package bytesize

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/BurntSushi/toml"
	_ "github.com/mattn/go-sqlite3"
)

func TestMarshalText(t *testing.T) {
	text, err := ByteCount(1536).MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "1.5 KiB" {
		t.Errorf("MarshalText = %q, want %q", text, "1.5 KiB")
	}

	var c ByteCount
	if err := c.UnmarshalText([]byte("1.5 KiB")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c != 1536 {
		t.Errorf("UnmarshalText = %d, want 1536", uint64(c))
	}

	if err := c.UnmarshalText([]byte("garbage")); !errors.Is(err, ErrMissingNumber) {
		t.Errorf("UnmarshalText(garbage) = %v, want ErrMissingNumber", err)
	}
}

func TestJSON(t *testing.T) {
	type limits struct {
		MaxUpload ByteCount `json:"max_upload"`
	}

	data, err := json.Marshal(limits{MaxUpload: 1536})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"max_upload":"1.5 KiB"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var got limits
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.MaxUpload != 1536 {
		t.Errorf("Unmarshal = %d, want 1536", uint64(got.MaxUpload))
	}
}

func TestTOML(t *testing.T) {
	type limits struct {
		MaxUpload ByteCount `toml:"max_upload"`
		Quota     ByteCount `toml:"quota"`
	}

	var got limits
	if err := toml.Unmarshal([]byte("max_upload = \"100.0 MB\"\nquota = \"2 GiB\"\n"), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.MaxUpload != 100000000 {
		t.Errorf("max_upload = %d, want 100000000", uint64(got.MaxUpload))
	}
	if got.Quota != 2<<30 {
		t.Errorf("quota = %d, want %d", uint64(got.Quota), uint64(2<<30))
	}

	// Encode and decode back. The text form is the formatted string, so
	// only counts exact under one fractional IEC digit survive unchanged.
	orig := limits{MaxUpload: 1536, Quota: 2 << 30}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(orig); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var back limits
	if err := toml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("Unmarshal round trip: %v", err)
	}
	if back != orig {
		t.Errorf("round trip = %+v, want %+v", back, orig)
	}
}

func TestBinary(t *testing.T) {
	orig := ByteCount(518000000000)
	data, err := orig.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != 8 {
		t.Fatalf("MarshalBinary length = %d, want 8", len(data))
	}

	var c ByteCount
	if err := c.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if c != orig {
		t.Errorf("round trip = %d, want %d", uint64(c), uint64(orig))
	}

	if err := c.UnmarshalBinary([]byte{1, 2, 3}); err == nil {
		t.Error("UnmarshalBinary(short): expected error, got nil")
	}
}

func testSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE files (name TEXT PRIMARY KEY, size INTEGER, quota TEXT)`)
	if err != nil {
		t.Fatalf("creating table: %v", err)
	}
	return db
}

func TestSQLRoundTrip(t *testing.T) {
	db := testSQLiteDB(t)

	size := ByteCount(518000000000)
	if _, err := db.Exec(`INSERT INTO files (name, size, quota) VALUES (?, ?, ?)`,
		"backup.tar", size, "2 GiB"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var gotSize, gotQuota ByteCount
	row := db.QueryRow(`SELECT size, quota FROM files WHERE name = ?`, "backup.tar")
	if err := row.Scan(&gotSize, &gotQuota); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if gotSize != size {
		t.Errorf("size = %d, want %d", uint64(gotSize), uint64(size))
	}
	if gotQuota != 2<<30 {
		t.Errorf("quota = %d, want %d", uint64(gotQuota), uint64(2<<30))
	}
}

func TestSQLValueOverflow(t *testing.T) {
	if _, err := ByteCount(math.MaxUint64).Value(); !errors.Is(err, ErrOverflow) {
		t.Errorf("Value(MaxUint64) = %v, want ErrOverflow", err)
	}
	if v, err := ByteCount(math.MaxInt64).Value(); err != nil || v.(int64) != math.MaxInt64 {
		t.Errorf("Value(MaxInt64) = %v, %v", v, err)
	}
}

func TestSQLScan(t *testing.T) {
	var c ByteCount

	if err := c.Scan(int64(1536)); err != nil || c != 1536 {
		t.Errorf("Scan(int64) = %d, %v", uint64(c), err)
	}
	if err := c.Scan("1.5 KiB"); err != nil || c != 1536 {
		t.Errorf("Scan(string) = %d, %v", uint64(c), err)
	}
	if err := c.Scan(nil); err != nil || c != 0 {
		t.Errorf("Scan(nil) = %d, %v", uint64(c), err)
	}
	if err := c.Scan(int64(-1)); err == nil {
		t.Error("Scan(-1): expected error, got nil")
	}
	if err := c.Scan(3.14); err == nil {
		t.Error("Scan(float64): expected error, got nil")
	}
}
