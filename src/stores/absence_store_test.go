package stores_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mgowdara/school_timetable_bot/src/stores"
	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
	datetime "github.com/mgowdara/school_timetable_bot/src/utils/date_time"
)

type absenceApiMock struct {
	fullDay    []entities.Absence
	partialDay []entities.Absence

	fullDayMarks    int
	partialDayMarks int
	status          string
}

func (api *absenceApiMock) ListFullDay(ctx context.Context) ([]entities.Absence, error) {
	return api.fullDay, nil
}

func (api *absenceApiMock) ListPartialDay(ctx context.Context) ([]entities.Absence, error) {
	return api.partialDay, nil
}

func (api *absenceApiMock) MarkFullDay(ctx context.Context, record *entities.Absence) (string, error) {
	api.fullDayMarks++
	return api.status, nil
}

func (api *absenceApiMock) MarkPartialDay(ctx context.Context, record *entities.Absence) (string, error) {
	api.partialDayMarks++
	return api.status, nil
}

func onDay(day int) datetime.DateOnly {
	return datetime.DateOnly(time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC))
}

func TestFullDaySortedMostRecentFirst(t *testing.T) {
	api := &absenceApiMock{fullDay: []entities.Absence{
		{TeacherName: "Rao", Date: onDay(1)},
		{TeacherName: "Iyer", Date: onDay(9)},
		{TeacherName: "Khan", Date: onDay(9)},
		{TeacherName: "Das", Date: onDay(4)},
	}}
	store := stores.NewAbsenceStore(api, silentNotifier())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf(`Load() = %v, want nil`, err)
	}

	records := store.FullDay()
	want := []string{"Iyer", "Khan", "Das", "Rao"}
	for i, name := range want {
		if records[i].TeacherName != name {
			t.Errorf(`records[%d] = %q, want %q (stable date-descending order)`, i, records[i].TeacherName, name)
		}
	}
}

func TestSubmitFullDayRequiresTeacherAndDate(t *testing.T) {
	api := &absenceApiMock{}
	store := stores.NewAbsenceStore(api, silentNotifier())

	_, err := store.SubmitFullDay(context.Background(), &entities.Absence{Date: onDay(1)})
	if !errors.Is(err, stores.ErrMissingTeacher) {
		t.Errorf(`SubmitFullDay without teacher = %v, want ErrMissingTeacher`, err)
	}
	_, err = store.SubmitFullDay(context.Background(), &entities.Absence{TeacherName: "Rao"})
	if !errors.Is(err, stores.ErrMissingDate) {
		t.Errorf(`SubmitFullDay without date = %v, want ErrMissingDate`, err)
	}
	if api.fullDayMarks != 0 {
		t.Errorf(`incomplete records reached the server %d times`, api.fullDayMarks)
	}
}

func TestSubmitPartialDayRejectsEmptyPeriods(t *testing.T) {
	api := &absenceApiMock{}
	store := stores.NewAbsenceStore(api, silentNotifier())

	_, err := store.SubmitPartialDay(context.Background(), &entities.Absence{TeacherName: "Rao", Date: onDay(1)})
	if !errors.Is(err, stores.ErrNoPeriods) {
		t.Errorf(`SubmitPartialDay without periods = %v, want ErrNoPeriods`, err)
	}
	if api.partialDayMarks != 0 {
		t.Error(`an empty period selection still reached the server`)
	}
}

func TestSubmitPartialDayReturnsServerStatus(t *testing.T) {
	api := &absenceApiMock{status: "Recorded"}
	store := stores.NewAbsenceStore(api, silentNotifier())

	status, err := store.SubmitPartialDay(context.Background(), &entities.Absence{
		TeacherName: "Rao", Date: onDay(1), Periods: []string{"P1", "P2"},
	})
	if err != nil {
		t.Fatalf(`SubmitPartialDay = %v, want nil`, err)
	}
	if status != "Recorded" {
		t.Errorf(`status = %q, want "Recorded"`, status)
	}
	if api.partialDayMarks != 1 {
		t.Errorf(`MarkPartialDay called %d times, want 1`, api.partialDayMarks)
	}
}

func TestRowsDeriveDisplayFields(t *testing.T) {
	rows := stores.Rows([]entities.Absence{
		{TeacherName: "Rao", Date: onDay(7), Periods: []string{"P1", "P3"}},
	})
	if len(rows) != 1 {
		t.Fatalf(`got %d rows, want 1`, len(rows))
	}
	row := rows[0]
	if row.Date != "07/09/2026" || row.Weekday != "Monday" {
		t.Errorf(`row = %+v, want 07/09/2026 Monday`, row)
	}
	if row.Periods != "P1, P3" {
		t.Errorf(`Periods = %q, want "P1, P3"`, row.Periods)
	}
}
