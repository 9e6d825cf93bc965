package schedule_test

import (
	"strings"
	"testing"

	"github.com/mgowdara/school_timetable_bot/src/schedule"
)

func weekEntries() []schedule.Entry {
	return []schedule.Entry{
		{Weekday: "Monday", PeriodName: "P1", ClassroomName: "5A", SubjectName: "Maths", TeacherName: "Rao", TeacherId: 1},
		{Weekday: "Monday", PeriodName: "P2", ClassroomName: "5A", SubjectName: "English", TeacherName: "Iyer", TeacherId: 2},
		{Weekday: "Tuesday", PeriodName: "P1", ClassroomName: "5B", SubjectName: "Maths", TeacherName: "Rao", TeacherId: 1},
		{Weekday: "Friday", PeriodName: "P2", ClassroomName: "5A", SubjectName: "Science", TeacherName: "Khan", TeacherId: 3},
	}
}

func TestProjectByClassroom(t *testing.T) {
	grid := schedule.ProjectByClassroom(weekEntries(), []string{"P1", "P2"}, "5A")

	if grid.Title != "5A" {
		t.Errorf(`grid.Title = %q, want "5A"`, grid.Title)
	}
	if got := grid.Cell("P1", "Monday"); got != "Maths (Rao)" {
		t.Errorf(`Cell(P1, Monday) = %q, want "Maths (Rao)"`, got)
	}
	if got := grid.Cell("P2", "Friday"); got != "Science (Khan)" {
		t.Errorf(`Cell(P2, Friday) = %q, want "Science (Khan)"`, got)
	}
	// Tuesday P1 belongs to 5B, so the 5A grid leaves the slot empty.
	if got := grid.Cell("P1", "Tuesday"); got != "-" {
		t.Errorf(`Cell(P1, Tuesday) = %q, want "-"`, got)
	}
}

func TestProjectByTeacherNamesClassroom(t *testing.T) {
	grid := schedule.ProjectByTeacher(weekEntries(), []string{"P1", "P2"}, 1, "Rao")

	if got := grid.Cell("P1", "Monday"); got != "Maths (5A)" {
		t.Errorf(`Cell(P1, Monday) = %q, want "Maths (5A)"`, got)
	}
	if got := grid.Cell("P1", "Tuesday"); got != "Maths (5B)" {
		t.Errorf(`Cell(P1, Tuesday) = %q, want "Maths (5B)"`, got)
	}
	if got := grid.Cell("P2", "Monday"); got != "-" {
		t.Errorf(`Cell(P2, Monday) = %q, want "-"`, got)
	}
}

func TestProjectNoMatchesLeavesEveryCellEmpty(t *testing.T) {
	grid := schedule.ProjectByClassroom(weekEntries(), []string{"P1", "P2"}, "6C")

	if rows, cols := len(grid.Cells), len(grid.Days); rows != 2 || cols != len(schedule.Weekdays) {
		t.Fatalf(`grid is %dx%d, want 2x%d`, rows, cols, len(schedule.Weekdays))
	}
	for _, period := range grid.Periods {
		for _, day := range grid.Days {
			if got := grid.Cell(period, day); got != "-" {
				t.Errorf(`Cell(%s, %s) = %q, want "-"`, period, day, got)
			}
		}
	}
}

func TestProjectFallsBackToDefaultPeriods(t *testing.T) {
	grid := schedule.ProjectByClassroom(weekEntries(), nil, "5A")
	if len(grid.Periods) != len(schedule.DefaultPeriodNames) {
		t.Errorf(`len(grid.Periods) = %d, want %d`, len(grid.Periods), len(schedule.DefaultPeriodNames))
	}
}

func TestProjectFirstEntryWins(t *testing.T) {
	entries := []schedule.Entry{
		{Weekday: "Monday", PeriodName: "P1", ClassroomName: "5A", SubjectName: "Maths", TeacherName: "Rao"},
		{Weekday: "Monday", PeriodName: "P1", ClassroomName: "5A", SubjectName: "English", TeacherName: "Iyer"},
	}
	grid := schedule.ProjectByClassroom(entries, []string{"P1"}, "5A")
	if got := grid.Cell("P1", "Monday"); got != "Maths (Rao)" {
		t.Errorf(`Cell(P1, Monday) = %q, want the first entry "Maths (Rao)"`, got)
	}
}

func TestRenderAlignsColumns(t *testing.T) {
	grid := schedule.ProjectByClassroom(weekEntries(), []string{"P1", "P2"}, "5A")
	rendered := grid.Render()

	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf(`Render produced %d lines, want 3`, len(lines))
	}
	if !strings.HasPrefix(lines[0], "Period") {
		t.Errorf(`header %q does not start with "Period"`, lines[0])
	}
	for _, day := range schedule.Weekdays {
		if !strings.Contains(lines[0], day) {
			t.Errorf(`header %q is missing %q`, lines[0], day)
		}
	}
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) != len(lines[0]) {
			t.Errorf(`row %d is %d chars wide, header is %d`, i, len(lines[i]), len(lines[0]))
		}
	}
}
