package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day without a time of day.
//
// Transactions are bucketed by the day the user recorded them in their own
// calendar. Comparing UTC-shifted instants moves late-evening transactions
// into the neighboring day, so all comparisons on Date use the year, month
// and day fields only.
type Date time.Time

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day a time instant falls on in its own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a string in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date key in YYYY-MM-DD form. This is the join key
// between transaction dates and time-series buckets.
func (d Date) String() string {
	year, month, day := time.Time(d).Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d)), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts the
// date key format and RFC3339 timestamps, of which only the calendar day
// is kept.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return err
		}
	}

	*d = DateOf(t)
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler so that dates
// can be bound directly from URI and query parameters.
func (d *Date) UnmarshalParam(p string) error {
	parsed, err := ParseDate(p)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan reads the value from the database.
func (d *Date) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*d = DateOf(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Year returns the year the date is in.
func (d Date) Year() int {
	return time.Time(d).Year()
}

// Month returns the month the date is in.
func (d Date) Month() time.Month {
	return time.Time(d).Month()
}

// Day returns the day of the month, starting at 1.
func (d Date) Day() int {
	return time.Time(d).Day()
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return time.Time(d).Weekday()
}

// MonthOf returns the Month the date is in.
func (d Date) MonthOf() Month {
	return NewMonth(d.Year(), d.Month())
}

// AddDays returns the date the given number of days later. Negative values
// move backwards.
func (d Date) AddDays(days int) Date {
	return Date(time.Time(d).AddDate(0, 0, days))
}

// Before reports whether the calendar day d is before e.
func (d Date) Before(e Date) bool {
	return d.String() < e.String()
}

// After reports whether the calendar day d is after e.
func (d Date) After(e Date) bool {
	return d.String() > e.String()
}

// Equal reports whether d and e are the same calendar day.
func (d Date) Equal(e Date) bool {
	return d.String() == e.String()
}

// Between reports whether d is in the inclusive range [from, to].
func (d Date) Between(from, to Date) bool {
	return !d.Before(from) && !d.After(to)
}
