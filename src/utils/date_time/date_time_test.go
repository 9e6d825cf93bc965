package datetime_test

import (
	"encoding/json"
	"testing"

	datetime "github.com/mgowdara/school_timetable_bot/src/utils/date_time"
)

func TestParseDateAndDisplay(t *testing.T) {
	date, err := datetime.ParseDate("2026-09-07")
	if err != nil {
		t.Fatalf(`ParseDate = %v, want nil`, err)
	}
	if date.Display() != "07/09/2026" {
		t.Errorf(`Display() = %q, want "07/09/2026"`, date.Display())
	}
	if date.Weekday() != "Monday" {
		t.Errorf(`Weekday() = %q, want "Monday"`, date.Weekday())
	}
}

func TestParseDisplayRoundTrip(t *testing.T) {
	date, err := datetime.ParseDisplay("07/09/2026")
	if err != nil {
		t.Fatalf(`ParseDisplay = %v, want nil`, err)
	}
	if date.Format("2006-01-02") != "2026-09-07" {
		t.Errorf(`wire form = %q, want "2026-09-07"`, date.Format("2006-01-02"))
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "  ", "07/09/2026", "2026-13-40"} {
		if _, err := datetime.ParseDate(input); err == nil {
			t.Errorf(`ParseDate(%q) = nil, want an error`, input)
		}
	}
}

func TestUnmarshalTrimsTimestamp(t *testing.T) {
	var date datetime.DateOnly
	if err := json.Unmarshal([]byte(`"2026-09-07T14:30:00"`), &date); err != nil {
		t.Fatalf(`Unmarshal = %v, want nil`, err)
	}
	if date.Display() != "07/09/2026" {
		t.Errorf(`Display() = %q, want "07/09/2026"`, date.Display())
	}
}

func TestUnmarshalNullIsZero(t *testing.T) {
	var date datetime.DateOnly
	if err := json.Unmarshal([]byte(`null`), &date); err != nil {
		t.Fatalf(`Unmarshal(null) = %v, want nil`, err)
	}
	if !date.IsZero() {
		t.Error(`null did not unmarshal to the zero date`)
	}
}

func TestMarshalWireFormat(t *testing.T) {
	date, _ := datetime.ParseDate("2026-09-07")
	encoded, err := json.Marshal(date)
	if err != nil {
		t.Fatalf(`Marshal = %v, want nil`, err)
	}
	if string(encoded) != `"2026-09-07"` {
		t.Errorf(`Marshal = %s, want "2026-09-07"`, encoded)
	}
}
