package schedule

import (
	"fmt"
	"strings"
)

// Weekdays are the grid columns, always in this order. Sunday carries no
// lessons and has no column.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DefaultPeriodNames is the fallback row sequence when the period collection
// has not been fetched yet.
var DefaultPeriodNames = []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7"}

const emptyCell = "-"

// Grid is one classroom's or teacher's week as a period-by-weekday matrix of
// rendered cells. It is recomputed from the entry list on every request,
// nothing is cached.
type Grid struct {
	Title   string
	Periods []string
	Days    []string
	Cells   [][]string
}

func newGrid(title string, periods []string) Grid {
	grid := Grid{Title: title, Periods: periods, Days: Weekdays}
	grid.Cells = make([][]string, len(periods))
	for i := range grid.Cells {
		grid.Cells[i] = make([]string, len(grid.Days))
		for j := range grid.Cells[i] {
			grid.Cells[i][j] = emptyCell
		}
	}
	return grid
}

func (grid *Grid) fill(entries []Entry, matches func(*Entry) bool, counterpart func(*Entry) string) {
	for row, period := range grid.Periods {
		for col, day := range grid.Days {
			for i := range entries {
				entry := &entries[i]
				if entry.PeriodName != period || entry.Weekday != day || !matches(entry) {
					continue
				}
				grid.Cells[row][col] = fmt.Sprintf("%s (%s)", entry.SubjectName, counterpart(entry))
				// First entry in order wins, see EntryIndex.warnDuplicates.
				break
			}
		}
	}
}

// ProjectByClassroom lays out one classroom's week; cells name the teacher.
func ProjectByClassroom(entries []Entry, periods []string, className string) Grid {
	if len(periods) == 0 {
		periods = DefaultPeriodNames
	}
	grid := newGrid(className, periods)
	grid.fill(entries,
		func(e *Entry) bool { return e.ClassroomName == className },
		func(e *Entry) string { return e.TeacherName })
	return grid
}

// ProjectByTeacher lays out one teacher's week; cells name the classroom.
func ProjectByTeacher(entries []Entry, periods []string, teacherId int64, teacherName string) Grid {
	if len(periods) == 0 {
		periods = DefaultPeriodNames
	}
	grid := newGrid(teacherName, periods)
	grid.fill(entries,
		func(e *Entry) bool { return e.TeacherId == teacherId },
		func(e *Entry) string { return e.ClassroomName })
	return grid
}

// Render lays the grid out as an aligned monospace table, one column block
// per weekday, suitable for a <pre> Telegram message.
func (grid *Grid) Render() string {
	widths := make([]int, len(grid.Days))
	for col, day := range grid.Days {
		widths[col] = len(day)
		for row := range grid.Cells {
			if len(grid.Cells[row][col]) > widths[col] {
				widths[col] = len(grid.Cells[row][col])
			}
		}
	}
	periodWidth := len("Period")
	for _, period := range grid.Periods {
		if len(period) > periodWidth {
			periodWidth = len(period)
		}
	}

	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("%-*s", periodWidth, "Period"))
	for col, day := range grid.Days {
		builder.WriteString("  ")
		builder.WriteString(fmt.Sprintf("%-*s", widths[col], day))
	}
	builder.WriteByte('\n')
	for row, period := range grid.Periods {
		builder.WriteString(fmt.Sprintf("%-*s", periodWidth, period))
		for col := range grid.Days {
			builder.WriteString("  ")
			builder.WriteString(fmt.Sprintf("%-*s", widths[col], grid.Cells[row][col]))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

// Cell addresses one rendered cell by period and weekday name.
func (grid *Grid) Cell(period, day string) string {
	for row, p := range grid.Periods {
		if p != period {
			continue
		}
		for col, d := range grid.Days {
			if d == day {
				return grid.Cells[row][col]
			}
		}
	}
	return emptyCell
}
