package timetable_api_entities_test

import (
	"slices"
	"testing"

	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
)

func TestMigrateLegacyClasses(t *testing.T) {
	teacher := entities.Teacher{
		Name:          "Rao",
		LegacyClasses: []string{"5A", "5B"},
	}
	if !teacher.MigrateLegacyClasses("General") {
		t.Fatal(`MigrateLegacyClasses = false for a legacy payload`)
	}
	if len(teacher.SubjectsAndClasses) != 2 {
		t.Fatalf(`got %d pairs, want 2`, len(teacher.SubjectsAndClasses))
	}
	if teacher.SubjectsAndClasses[0] != (entities.SubjectClass{Subject: "General", ClassLabel: "5A"}) {
		t.Errorf(`pairs[0] = %+v`, teacher.SubjectsAndClasses[0])
	}
	if teacher.LegacyClasses != nil {
		t.Error(`legacy classes were not cleared after migration`)
	}
}

func TestMigrateLegacyClassesNoop(t *testing.T) {
	teacher := entities.Teacher{
		Name:               "Rao",
		SubjectsAndClasses: []entities.SubjectClass{{Subject: "Maths", ClassLabel: "5A"}},
		LegacyClasses:      []string{"5B"},
	}
	if teacher.MigrateLegacyClasses("General") {
		t.Error(`migration ran over an already-migrated teacher`)
	}
	if len(teacher.SubjectsAndClasses) != 1 {
		t.Errorf(`pairs grew to %d`, len(teacher.SubjectsAndClasses))
	}
}

func TestPeriodsForLegacySession(t *testing.T) {
	periods := []entities.Period{
		{Name: "P1", Session: entities.MorningSession},
		{Name: "P2", Session: entities.MorningSession},
		{Name: "P5", Session: entities.AfternoonSession},
	}

	if got := entities.PeriodsForLegacySession("AM", periods); !slices.Equal(got, []string{"P1", "P2"}) {
		t.Errorf(`AM = %v, want [P1 P2]`, got)
	}
	if got := entities.PeriodsForLegacySession("PM", periods); !slices.Equal(got, []string{"P5"}) {
		t.Errorf(`PM = %v, want [P5]`, got)
	}
	if got := entities.PeriodsForLegacySession("evening", periods); got != nil {
		t.Errorf(`an unknown session yielded %v, want nil`, got)
	}
}
