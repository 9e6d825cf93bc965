package datetime

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// DateOnly is a calendar date carried over the wire as "2006-01-02".
// The scheduling server neither sends nor expects a time-of-day component.
type DateOnly time.Time

const wireFormat = time.DateOnly

// displayFormat matches what the admins are used to seeing: day first.
const displayFormat = "02/01/2006"

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	dateString := strings.Trim(string(b), `"`)
	if dateString == "null" || dateString == "" {
		*d = DateOnly{}
		return nil
	}
	// Some server responses carry a full timestamp, keep only the date part.
	if len(dateString) > len(wireFormat) {
		dateString = dateString[:len(wireFormat)]
	}
	dateVal, err := time.Parse(wireFormat, dateString)
	if err != nil {
		return err
	}
	*d = DateOnly(dateVal)
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(wireFormat))
}

func (d DateOnly) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d DateOnly) Time() time.Time {
	return time.Time(d)
}

func (d DateOnly) Format(s string) string {
	return time.Time(d).Format(s)
}

// Weekday is the English day-of-week name, "Monday" through "Sunday".
func (d DateOnly) Weekday() string {
	return time.Time(d).Weekday().String()
}

func (d DateOnly) Display() string {
	return time.Time(d).Format(displayFormat)
}

func ParseDate(input string) (DateOnly, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return DateOnly{}, errors.New("empty date")
	}
	dateVal, err := time.Parse(wireFormat, trimmed)
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly(dateVal), nil
}

// ParseDisplay reads a date back from its Display form.
func ParseDisplay(input string) (DateOnly, error) {
	dateVal, err := time.Parse(displayFormat, strings.TrimSpace(input))
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly(dateVal), nil
}
