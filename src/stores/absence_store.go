package stores

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mgowdara/school_timetable_bot/src/logging"
	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
)

var (
	ErrMissingTeacher = errors.New("teacher name is required")
	ErrMissingDate    = errors.New("date is required")
	ErrNoPeriods      = errors.New("at least one period must be selected")
)

type AbsenceApi interface {
	ListFullDay(ctx context.Context) ([]entities.Absence, error)
	ListPartialDay(ctx context.Context) ([]entities.Absence, error)
	MarkFullDay(ctx context.Context, record *entities.Absence) (string, error)
	MarkPartialDay(ctx context.Context, record *entities.Absence) (string, error)
}

// AbsenceRow is one list line with the derived display fields filled in.
type AbsenceRow struct {
	TeacherName string
	Date        string
	Weekday     string
	Periods     string
}

// AbsenceStore follows the same contract as Store: submit, then refetch the
// owning list; records are never inserted locally.
type AbsenceStore struct {
	api    AbsenceApi
	notify Notifier

	mu         sync.Mutex
	fullDay    []entities.Absence
	partialDay []entities.Absence

	token atomic.Int64
}

func NewAbsenceStore(api AbsenceApi, notify Notifier) *AbsenceStore {
	return &AbsenceStore{api: api, notify: notify}
}

func (store *AbsenceStore) Load(ctx context.Context) error {
	token := store.token.Add(1)
	fullDay, err := store.api.ListFullDay(ctx)
	if err != nil {
		return store.reportLoadFailure(ctx, err)
	}
	partialDay, err := store.api.ListPartialDay(ctx)
	if err != nil {
		return store.reportLoadFailure(ctx, err)
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	if token != store.token.Load() {
		return nil
	}
	store.fullDay = fullDay
	store.partialDay = partialDay
	return nil
}

func (store *AbsenceStore) reportLoadFailure(ctx context.Context, err error) error {
	logging.Error("failed to load absences", "err", err.Error())
	if notifyErr := store.notify.Notify(ctx, fmt.Sprintf("❌ Failed to load absences: %s", err)); notifyErr != nil {
		logging.Error(notifyErr.Error())
	}
	return err
}

// FullDay returns the full-day records, most recent date first. The sort is
// stable: records sharing a date keep the server's relative order.
func (store *AbsenceStore) FullDay() []entities.Absence {
	store.mu.Lock()
	defer store.mu.Unlock()
	return sortedByDateDesc(store.fullDay)
}

func (store *AbsenceStore) PartialDay() []entities.Absence {
	store.mu.Lock()
	defer store.mu.Unlock()
	return sortedByDateDesc(store.partialDay)
}

func sortedByDateDesc(records []entities.Absence) []entities.Absence {
	result := slices.Clone(records)
	slices.SortStableFunc(result, func(a, b entities.Absence) int {
		return b.Date.Time().Compare(a.Date.Time())
	})
	return result
}

// SubmitFullDay validates locally, marks the absence and reloads. The
// returned status string comes from the server.
func (store *AbsenceStore) SubmitFullDay(ctx context.Context, record *entities.Absence) (string, error) {
	if err := store.checkRequired(ctx, record); err != nil {
		return "", err
	}
	status, err := store.api.MarkFullDay(ctx, record)
	if err != nil {
		return "", store.reportSubmitFailure(ctx, err)
	}
	return status, store.Load(ctx)
}

// SubmitPartialDay additionally requires a non-empty period selection; an
// empty one is rejected here, before any network call.
func (store *AbsenceStore) SubmitPartialDay(ctx context.Context, record *entities.Absence) (string, error) {
	if err := store.checkRequired(ctx, record); err != nil {
		return "", err
	}
	if len(record.Periods) == 0 {
		if notifyErr := store.notify.Notify(ctx, "❌ Select at least one period for a partial-day absence."); notifyErr != nil {
			logging.Error(notifyErr.Error())
		}
		return "", ErrNoPeriods
	}
	status, err := store.api.MarkPartialDay(ctx, record)
	if err != nil {
		return "", store.reportSubmitFailure(ctx, err)
	}
	return status, store.Load(ctx)
}

func (store *AbsenceStore) checkRequired(ctx context.Context, record *entities.Absence) error {
	var err error
	switch {
	case strings.TrimSpace(record.TeacherName) == "":
		err = ErrMissingTeacher
	case record.Date.IsZero():
		err = ErrMissingDate
	default:
		return nil
	}
	if notifyErr := store.notify.Notify(ctx, fmt.Sprintf("❌ %s.", capitalize(err.Error()))); notifyErr != nil {
		logging.Error(notifyErr.Error())
	}
	return err
}

func (store *AbsenceStore) reportSubmitFailure(ctx context.Context, err error) error {
	logging.Error("failed to mark absence", "err", err.Error())
	if notifyErr := store.notify.Notify(ctx, fmt.Sprintf("❌ Failed to mark absence: %s", err)); notifyErr != nil {
		logging.Error(notifyErr.Error())
	}
	return err
}

// Rows derives the display fields: weekday and formatted date from the
// record date, periods joined in the order they were submitted.
func Rows(records []entities.Absence) []AbsenceRow {
	rows := make([]AbsenceRow, 0, len(records))
	for i := range records {
		rows = append(rows, AbsenceRow{
			TeacherName: records[i].TeacherName,
			Date:        records[i].Date.Display(),
			Weekday:     records[i].Date.Weekday(),
			Periods:     strings.Join(records[i].Periods, ", "),
		})
	}
	return rows
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
