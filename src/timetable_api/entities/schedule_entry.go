package timetable_api_entities

import (
	datetime "github.com/mgowdara/school_timetable_bot/src/utils/date_time"
)

// ScheduleEntry is one generated (date, period, classroom, subject, teacher)
// assignment, exactly as the server returns it. The references may be absent
// in malformed rows, downstream code treats nil as a missing dimension.
type ScheduleEntry struct {
	Id        int64             `json:"id,omitempty"`
	Date      datetime.DateOnly `json:"date"`
	Period    *Period           `json:"period"`
	Classroom *Classroom        `json:"classroom"`
	Subject   *Subject          `json:"subject"`
	Teacher   *Teacher          `json:"teacher"`
}

func (e *ScheduleEntry) PeriodName() string {
	if e.Period == nil {
		return ""
	}
	return e.Period.Name
}

func (e *ScheduleEntry) ClassroomName() string {
	if e.Classroom == nil {
		return ""
	}
	return e.Classroom.Name
}

func (e *ScheduleEntry) SubjectName() string {
	if e.Subject == nil {
		return ""
	}
	return e.Subject.Name
}

func (e *ScheduleEntry) TeacherName() string {
	if e.Teacher == nil {
		return ""
	}
	return e.Teacher.Name
}

func (e *ScheduleEntry) TeacherId() int64 {
	if e.Teacher == nil {
		return 0
	}
	return e.Teacher.Id
}
