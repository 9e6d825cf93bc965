package schedule_test

import (
	"testing"

	"github.com/mgowdara/school_timetable_bot/src/schedule"
)

func TestSubjectLoadsCountsOneClassroom(t *testing.T) {
	entries := []schedule.Entry{
		{ClassroomName: "5A", SubjectName: "Maths"},
		{ClassroomName: "5A", SubjectName: "Maths"},
		{ClassroomName: "5A", SubjectName: "English"},
		{ClassroomName: "5B", SubjectName: "Maths"},
		{ClassroomName: "5A", SubjectName: ""},
	}
	loads := schedule.SubjectLoads(entries, "5A")
	if len(loads) != 2 {
		t.Fatalf(`got %d rows, want 2`, len(loads))
	}
	if loads[0].SubjectName != "English" || loads[0].Count != 1 {
		t.Errorf(`loads[0] = %+v, want English/1`, loads[0])
	}
	if loads[1].SubjectName != "Maths" || loads[1].Count != 2 {
		t.Errorf(`loads[1] = %+v, want Maths/2`, loads[1])
	}
	if total := schedule.TotalLoad(loads); total != 3 {
		t.Errorf(`TotalLoad = %d, want 3`, total)
	}
}

func TestLoadsFromCountsOrdersCaseInsensitively(t *testing.T) {
	loads := schedule.LoadsFromCounts(map[string]int{
		"physics": 2,
		"Maths":   4,
		"art":     1,
	})
	want := []string{"art", "Maths", "physics"}
	for i, name := range want {
		if loads[i].SubjectName != name {
			t.Errorf(`loads[%d] = %q, want %q`, i, loads[i].SubjectName, name)
		}
	}
}
