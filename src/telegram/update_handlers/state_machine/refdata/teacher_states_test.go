package refdata

import (
	"testing"

	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
)

func TestParseSubjectClasses(t *testing.T) {
	pairs, ok := parseSubjectClasses("Maths:5A, English : 5B")
	if !ok {
		t.Fatal(`parseSubjectClasses rejected a valid input`)
	}
	if len(pairs) != 2 {
		t.Fatalf(`got %d pairs, want 2`, len(pairs))
	}
	if pairs[0] != (entities.SubjectClass{Subject: "Maths", ClassLabel: "5A"}) {
		t.Errorf(`pairs[0] = %+v`, pairs[0])
	}
	if pairs[1] != (entities.SubjectClass{Subject: "English", ClassLabel: "5B"}) {
		t.Errorf(`pairs[1] = %+v`, pairs[1])
	}
}

func TestParseSubjectClassesRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "Maths", "Maths:", ":5A", "Maths:5A, English"} {
		if _, ok := parseSubjectClasses(input); ok {
			t.Errorf(`parseSubjectClasses(%q) = ok, want rejection`, input)
		}
	}
}
