package timetable_api_entities

// SubjectClass binds one subject a teacher gives to one classroom label.
type SubjectClass struct {
	Subject    string `json:"subject" validate:"required"`
	ClassLabel string `json:"classLabel" validate:"required"`
}

// Teacher is the single supported representation. Older server revisions
// carried a bare availableClasses list instead of subjectsAndClasses; those
// payloads are not accepted silently, they go through MigrateLegacyClasses.
type Teacher struct {
	Id               int64    `json:"id,omitempty"`
	Name             string   `json:"name" validate:"required"`
	AvailablePeriods []string `json:"availablePeriods"`

	SubjectsAndClasses []SubjectClass `json:"subjectsAndClasses" validate:"min=1,dive"`

	// Populated only by legacy payloads.
	LegacyClasses []string `json:"availableClasses,omitempty" validate:"-"`
}

func (t Teacher) GetId() int64 {
	return t.Id
}

// MigrateLegacyClasses lifts an availableClasses-only payload into the
// subjectsAndClasses form by pairing every legacy class with the given
// subject. Returns false when there is nothing to migrate.
func (t *Teacher) MigrateLegacyClasses(subject string) bool {
	if len(t.SubjectsAndClasses) > 0 || len(t.LegacyClasses) == 0 {
		return false
	}
	for _, label := range t.LegacyClasses {
		t.SubjectsAndClasses = append(t.SubjectsAndClasses, SubjectClass{Subject: subject, ClassLabel: label})
	}
	t.LegacyClasses = nil
	return true
}
