package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BookingStatus represents the lifecycle state of a booked-stock record.
type BookingStatus string

const (
	BookingStatusPending       BookingStatus = "pending"
	BookingStatusConfirmed     BookingStatus = "confirmed"
	BookingStatusPartialLoaded BookingStatus = "partial-loaded"
	BookingStatusFullyLoaded   BookingStatus = "fully-loaded"
	BookingStatusCancelled     BookingStatus = "cancelled"
)

func (s BookingStatus) String() string {
	return string(s)
}

// IsValid reports whether s is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed,
		BookingStatusPartialLoaded, BookingStatusFullyLoaded,
		BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = BookingStatus(str)
	return nil
}

func (s BookingStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *BookingStatus) Scan(value interface{}) error {
	if value == nil {
		*s = BookingStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = BookingStatus(v)
	case []byte:
		*s = BookingStatus(string(v))
	}
	return nil
}
