package timetable_api_entities

import (
	datetime "github.com/mgowdara/school_timetable_bot/src/utils/date_time"
)

// Absence covers both record kinds: a full-day record has an empty Periods
// set, a partial-day record names at least one period.
type Absence struct {
	TeacherName string            `json:"name" validate:"required"`
	Date        datetime.DateOnly `json:"date" validate:"required"`
	Periods     []string          `json:"periods,omitempty"`
}

func (a *Absence) IsPartialDay() bool {
	return len(a.Periods) > 0
}

// PeriodsForLegacySession resolves the retired AM/PM discriminant against the
// current period collection. There is no guessing: an unknown session value
// yields nothing and the record must be re-entered.
func PeriodsForLegacySession(session string, periods []Period) []string {
	var wanted Session
	switch session {
	case "AM":
		wanted = MorningSession
	case "PM":
		wanted = AfternoonSession
	default:
		return nil
	}
	names := []string{}
	for _, p := range periods {
		if p.Session == wanted {
			names = append(names, p.Name)
		}
	}
	return names
}
