package timetable_api_entities

type Session string

const (
	MorningSession   Session = "Morning"
	AfternoonSession Session = "Afternoon"
)

type Period struct {
	Id              int64   `json:"id,omitempty"`
	Name            string  `json:"name" validate:"required"`
	DurationMinutes int     `json:"durationMinutes" validate:"gt=0"`
	Session         Session `json:"session" validate:"required,oneof=Morning Afternoon"`
}

func (p Period) GetId() int64 {
	return p.Id
}

// PeriodNames keeps the order the server returned, which is the order
// the rows of every weekly grid are laid out in.
func PeriodNames(periods []Period) []string {
	names := make([]string, 0, len(periods))
	for _, p := range periods {
		names = append(names, p.Name)
	}
	return names
}
