package timetable_api_entities

type Classroom struct {
	Id   int64  `json:"id,omitempty"`
	Name string `json:"name" validate:"required"`
}

func (c Classroom) GetId() int64 {
	return c.Id
}
