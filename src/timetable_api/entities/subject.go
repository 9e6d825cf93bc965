package timetable_api_entities

type Subject struct {
	Id   int64  `json:"id,omitempty"`
	Name string `json:"name" validate:"required"`
}

func (s Subject) GetId() int64 {
	return s.Id
}
