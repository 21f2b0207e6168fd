package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// DateTimeLayout is the text layout used for timestamp columns.
const DateTimeLayout = "2006-01-02 15:04:05"

var dateTimeLayouts = []string{
	DateTimeLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
}

var storageLocation atomic.Pointer[time.Location]

// StorageLocation is the zone timestamp text is written and read in. Defaults to UTC.
func StorageLocation() *time.Location {
	if loc := storageLocation.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// SetStorageLocation changes the zone used for timestamp text. A nil location resets it to UTC.
func SetStorageLocation(loc *time.Location) {
	storageLocation.Store(loc)
}

// LoadStorageLocation resolves a zone name such as "UTC", "Local" or "Asia/Jakarta".
func LoadStorageLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("database time zone %q: %w", name, err)
	}
	return loc, nil
}

// DateTime is a second-precision timestamp persisted as "YYYY-MM-DD HH:MM:SS" text
// in the storage location. In memory it is always UTC.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.UTC().Truncate(time.Second)}
}

func ParseDateTime(value string) (DateTime, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DateTime{}, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, StorageLocation()); err == nil {
			return NewDateTime(t), nil
		}
	}
	return DateTime{}, fmt.Errorf("unrecognized timestamp %q", value)
}

func (d *DateTime) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = DateTime{}
		return nil
	case time.Time:
		*d = NewDateTime(v)
		return nil
	case string:
		parsed, err := ParseDateTime(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDateTime(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateTime", value)
	}
}

func (d DateTime) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.In(StorageLocation()).Format(DateTimeLayout), nil
}

// GormDataType keeps the column as text on every dialect.
func (DateTime) GormDataType() string {
	return "string"
}

func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.In(StorageLocation()).Format(DateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.UTC().Format(time.RFC3339))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*d = DateTime{}
		return nil
	}
	parsed, err := ParseDateTime(*raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
