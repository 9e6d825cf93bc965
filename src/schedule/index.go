package schedule

import (
	"fmt"
	"slices"
	"time"

	"github.com/mgowdara/school_timetable_bot/src/logging"
	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
	datastructures "github.com/mgowdara/school_timetable_bot/src/utils/data_structures"
)

// Entry is a schedule entry normalized once per fetch: the weekday and the
// display date are derived here and nowhere else.
type Entry struct {
	Date          time.Time
	Weekday       string
	DisplayDate   string
	PeriodName    string
	ClassroomName string
	SubjectName   string
	TeacherName   string
	TeacherId     int64
}

type Dimension int8

const (
	ByClassroom Dimension = iota + 1
	ByTeacher
	BySubject
)

// EntryIndex holds the normalized entries every view reads from. Entries keep
// the order the server returned them in; nothing re-sorts the shared slice.
type EntryIndex struct {
	entries []Entry
}

func NewEntryIndex(raw []entities.ScheduleEntry) *EntryIndex {
	index := &EntryIndex{entries: make([]Entry, 0, len(raw))}
	for i := range raw {
		entry := &raw[i]
		index.entries = append(index.entries, Entry{
			Date:          entry.Date.Time(),
			Weekday:       entry.Date.Weekday(),
			DisplayDate:   entry.Date.Display(),
			PeriodName:    entry.PeriodName(),
			ClassroomName: entry.ClassroomName(),
			SubjectName:   entry.SubjectName(),
			TeacherName:   entry.TeacherName(),
			TeacherId:     entry.TeacherId(),
		})
	}
	index.warnDuplicates()
	return index
}

// Entries exposes the shared normalized sequence. Callers must not mutate it.
func (index *EntryIndex) Entries() []Entry {
	return index.entries
}

// UniqueNames lists the distinct non-empty names seen along one dimension, in
// first-seen order. Used to populate selection keyboards and filter options.
func (index *EntryIndex) UniqueNames(dim Dimension) []string {
	names := []string{}
	for i := range index.entries {
		var name string
		switch dim {
		case ByClassroom:
			name = index.entries[i].ClassroomName
		case ByTeacher:
			name = index.entries[i].TeacherName
		case BySubject:
			name = index.entries[i].SubjectName
		}
		if name == "" || slices.Contains(names, name) {
			continue
		}
		names = append(names, name)
	}
	return names
}

// warnDuplicates flags entries sharing a (classroom, date, period) or
// (teacher, date, period) key. The server is supposed to never emit such
// pairs; when it does, the grid keeps the first entry in order and the
// conflict is reported instead of being lost silently.
func (index *EntryIndex) warnDuplicates() {
	if len(index.entries) == 0 {
		return
	}
	filter := datastructures.NewOptimalBloomFilter(len(index.entries)*2, 0.01)
	seen := []string{}
	for i := range index.entries {
		entry := &index.entries[i]
		date := entry.Date.Format(time.DateOnly)
		for _, key := range []string{
			"c|" + entry.ClassroomName + "|" + date + "|" + entry.PeriodName,
			"t|" + fmt.Sprint(entry.TeacherId) + "|" + date + "|" + entry.PeriodName,
		} {
			if filter.Check(key) && slices.Contains(seen, key) {
				logging.Warn("duplicate schedule entry, first match wins", "key", key)
				continue
			}
			filter.Add(key)
			seen = append(seen, key)
		}
	}
}
