package schedule_test

import (
	"testing"

	"github.com/mgowdara/school_timetable_bot/src/schedule"
)

func TestFilterEmptyReturnsEverything(t *testing.T) {
	entries := weekEntries()
	filter := schedule.Filter{}
	if !filter.IsEmpty() {
		t.Error(`Filter{}.IsEmpty() = false, want true`)
	}
	result := filter.Apply(entries)
	if len(result) != len(entries) {
		t.Errorf(`empty filter kept %d of %d entries`, len(result), len(entries))
	}
}

func TestFilterCombinesPredicates(t *testing.T) {
	entries := weekEntries()
	filter := schedule.Filter{ClassroomName: "5A", TeacherName: "Rao"}
	result := filter.Apply(entries)
	if len(result) != 1 {
		t.Fatalf(`filter kept %d entries, want 1`, len(result))
	}
	if result[0].SubjectName != "Maths" || result[0].Weekday != "Monday" {
		t.Errorf(`kept wrong entry: %+v`, result[0])
	}
}

func TestFilterKeepsInputOrder(t *testing.T) {
	entries := weekEntries()
	result := schedule.Filter{TeacherName: "Rao"}.Apply(entries)
	if len(result) != 2 {
		t.Fatalf(`filter kept %d entries, want 2`, len(result))
	}
	if result[0].Weekday != "Monday" || result[1].Weekday != "Tuesday" {
		t.Errorf(`entries came out reordered: %s then %s`, result[0].Weekday, result[1].Weekday)
	}
}

func TestFilterNoMatches(t *testing.T) {
	result := schedule.Filter{SubjectName: "Art"}.Apply(weekEntries())
	if len(result) != 0 {
		t.Errorf(`filter kept %d entries, want 0`, len(result))
	}
}
