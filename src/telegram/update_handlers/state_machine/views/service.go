package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/logging"
	"github.com/mgowdara/school_timetable_bot/src/schedule"
	"github.com/mgowdara/school_timetable_bot/src/timetable_api"
	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Service renders read-only projections of the server's timetable into
// chat messages. It never caches: every view is rebuilt from a fresh fetch.
type Service struct {
	bot        *tgutils.Bot
	timetable  *timetable_api.TimetableService
	classrooms *timetable_api.ResourceService[entities.Classroom]
	periods    *timetable_api.ResourceService[entities.Period]
	teachers   *timetable_api.ResourceService[entities.Teacher]
}

func NewService(
	bot *tgutils.Bot,
	timetable *timetable_api.TimetableService,
	classrooms *timetable_api.ResourceService[entities.Classroom],
	periods *timetable_api.ResourceService[entities.Period],
	teachers *timetable_api.ResourceService[entities.Teacher],
) *Service {
	return &Service{bot: bot, timetable: timetable, classrooms: classrooms, periods: periods, teachers: teachers}
}

// entries fetches the full multi-week timetable. Only the filter list reads
// it; the grid views are week-scoped and go through classWeek/teacherWeek.
func (srv *Service) entries(ctx context.Context) ([]schedule.Entry, error) {
	raw, err := srv.timetable.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timetable: %w", err)
	}
	return schedule.NewEntryIndex(raw).Entries(), nil
}

// classWeek fetches the current week of one classroom. Mixing weeks into a
// grid would let entries from different Mondays fight over the same cell.
func (srv *Service) classWeek(ctx context.Context, className string) ([]schedule.Entry, error) {
	raw, err := srv.timetable.WeekByClass(ctx, className)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch week for classroom %s: %w", className, err)
	}
	return schedule.NewEntryIndex(raw).Entries(), nil
}

func (srv *Service) teacherWeek(ctx context.Context, teacherId int64) ([]schedule.Entry, error) {
	raw, err := srv.timetable.WeekByTeacher(ctx, teacherId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch week for teacher %d: %w", teacherId, err)
	}
	return schedule.NewEntryIndex(raw).Entries(), nil
}

// periodNames is the row order of every grid. Falls back to the default
// naming when the server has no periods configured yet.
func (srv *Service) periodNames(ctx context.Context) []string {
	periods, err := srv.periods.List(ctx)
	if err != nil || len(periods) == 0 {
		return schedule.DefaultPeriodNames
	}
	return entities.PeriodNames(periods)
}

func (srv *Service) ClassroomNames(ctx context.Context) ([]string, error) {
	classrooms, err := srv.classrooms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classrooms: %w", err)
	}
	names := make([]string, 0, len(classrooms))
	for _, classroom := range classrooms {
		names = append(names, classroom.Name)
	}
	return names, nil
}

func (srv *Service) TeacherNames(ctx context.Context) ([]string, error) {
	teachers, err := srv.teachers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	names := make([]string, 0, len(teachers))
	for _, teacher := range teachers {
		names = append(names, teacher.Name)
	}
	return names, nil
}

func (srv *Service) findTeacher(ctx context.Context, name string) (*entities.Teacher, error) {
	teachers, err := srv.teachers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	for _, teacher := range teachers {
		if strings.EqualFold(teacher.Name, name) {
			return &teacher, nil
		}
	}
	return nil, nil
}

func (srv *Service) SendClassroomGrid(ctx context.Context, chatId int64, className string) error {
	entries, err := srv.classWeek(ctx, className)
	if err != nil {
		return err
	}
	grid := schedule.ProjectByClassroom(entries, srv.periodNames(ctx), className)
	return srv.sendGrid(ctx, chatId, &grid)
}

func (srv *Service) SendTeacherGrid(ctx context.Context, chatId int64, teacherName string) error {
	teacher, err := srv.findTeacher(ctx, teacherName)
	if err != nil {
		return err
	}
	if teacher == nil {
		_, err = srv.bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, fmt.Sprintf("❌ No teacher named %q", teacherName)))
		return err
	}
	entries, err := srv.teacherWeek(ctx, teacher.Id)
	if err != nil {
		return err
	}
	grid := schedule.ProjectByTeacher(entries, srv.periodNames(ctx), teacher.Id, teacher.Name)
	return srv.sendGrid(ctx, chatId, &grid)
}

func (srv *Service) sendGrid(ctx context.Context, chatId int64, grid *schedule.Grid) error {
	msg := tgbotapi.NewMessage(chatId, "```\n"+grid.Render()+"\n```")
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := srv.bot.SendCtx(ctx, msg); err != nil {
		return fmt.Errorf("failed to send grid to chat %d: %w", chatId, err)
	}
	return nil
}

// SendSubjectLoads prefers the server's aggregate endpoint and recomputes
// from the raw timetable when it is unavailable.
func (srv *Service) SendSubjectLoads(ctx context.Context, chatId int64, className string) error {
	var loads []schedule.SubjectLoad
	counts, err := srv.timetable.SubjectCounts(ctx, className)
	if err == nil {
		loads = schedule.LoadsFromCounts(counts)
	} else {
		entries, entriesErr := srv.classWeek(ctx, className)
		if entriesErr != nil {
			return fmt.Errorf("failed to compute subject loads: %w", entriesErr)
		}
		loads = schedule.SubjectLoads(entries, className)
	}
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("Weekly load for %s\n", className))
	for _, load := range loads {
		builder.WriteString(fmt.Sprintf("%s: %d\n", load.SubjectName, load.Count))
	}
	builder.WriteString(fmt.Sprintf("Total: %d", schedule.TotalLoad(loads)))
	if _, err = srv.bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, builder.String())); err != nil {
		return fmt.Errorf("failed to send subject loads to chat %d: %w", chatId, err)
	}
	return nil
}

func (srv *Service) SendFiltered(ctx context.Context, chatId int64, filter schedule.Filter) error {
	entries, err := srv.entries(ctx)
	if err != nil {
		return err
	}
	filtered := filter.Apply(entries)
	if len(filtered) == 0 {
		_, err = srv.bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, "No lessons match the filter"))
		return err
	}
	builder := strings.Builder{}
	for _, entry := range filtered {
		builder.WriteString(fmt.Sprintf("%s %s %s: %s, %s, %s\n",
			entry.DisplayDate, entry.Weekday, entry.PeriodName,
			entry.SubjectName, entry.ClassroomName, entry.TeacherName))
	}
	if _, err = srv.bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, builder.String())); err != nil {
		return fmt.Errorf("failed to send filtered timetable to chat %d: %w", chatId, err)
	}
	return nil
}

// AllGrids projects one weekly grid per known classroom, falling back to
// the classrooms seen in the timetable itself when the list is unavailable.
func (srv *Service) AllGrids(ctx context.Context) ([]schedule.Grid, error) {
	names, err := srv.ClassroomNames(ctx)
	if err != nil || len(names) == 0 {
		raw, allErr := srv.timetable.All(ctx)
		if allErr != nil {
			return nil, fmt.Errorf("failed to fetch timetable: %w", allErr)
		}
		names = schedule.NewEntryIndex(raw).UniqueNames(schedule.ByClassroom)
	}
	periods := srv.periodNames(ctx)
	grids := make([]schedule.Grid, 0, len(names))
	for _, name := range names {
		entries, err := srv.classWeek(ctx, name)
		if err != nil {
			return nil, err
		}
		grids = append(grids, schedule.ProjectByClassroom(entries, periods, name))
	}
	return grids, nil
}

// FilterOptions lists the values one filter dimension can take, drawn from
// the same full timetable the filter list itself is built over. An empty
// slice just means no buttons; the chat can always type the value.
func (srv *Service) FilterOptions(ctx context.Context, dim schedule.Dimension) []string {
	raw, err := srv.timetable.All(ctx)
	if err != nil {
		logging.Warn("failed to fetch filter options", "err", err.Error())
		return nil
	}
	return schedule.NewEntryIndex(raw).UniqueNames(dim)
}
