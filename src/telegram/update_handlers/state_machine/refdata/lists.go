package refdata

import (
	"context"
	"fmt"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/logging"
	"github.com/mgowdara/school_timetable_bot/src/stores"
	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
	"github.com/mgowdara/school_timetable_bot/src/utils"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	CLASSROOM_RESOURCE = "classroom"
	SUBJECT_RESOURCE   = "subject"
	PERIOD_RESOURCE    = "period"
	TEACHER_RESOURCE   = "teacher"
)

// FallbackSubject is what legacy teacher records get paired with when
// their payload predates per-subject class assignments.
const FallbackSubject = "General"

type listRow struct {
	id    int64
	label string
}

func SendClassroomList(ctx context.Context, bot *tgutils.Bot, set *stores.ChatStores, chatId int64, isOwner bool) error {
	if err := set.Classrooms.Load(ctx); err != nil {
		// The store already surfaced the failure to the chat.
		logging.Error(err.Error(), "chat", chatId)
		return nil
	}
	rows := []listRow{}
	for _, classroom := range set.Classrooms.Items() {
		rows = append(rows, listRow{id: classroom.Id, label: classroom.Name})
	}
	return sendList(ctx, bot, chatId, "Classrooms", CLASSROOM_RESOURCE, rows, isOwner)
}

func SendSubjectList(ctx context.Context, bot *tgutils.Bot, set *stores.ChatStores, chatId int64, isOwner bool) error {
	if err := set.Subjects.Load(ctx); err != nil {
		logging.Error(err.Error(), "chat", chatId)
		return nil
	}
	rows := []listRow{}
	for _, subject := range set.Subjects.Items() {
		rows = append(rows, listRow{id: subject.Id, label: subject.Name})
	}
	return sendList(ctx, bot, chatId, "Subjects", SUBJECT_RESOURCE, rows, isOwner)
}

func SendPeriodList(ctx context.Context, bot *tgutils.Bot, set *stores.ChatStores, chatId int64, isOwner bool) error {
	if err := set.Periods.Load(ctx); err != nil {
		logging.Error(err.Error(), "chat", chatId)
		return nil
	}
	rows := []listRow{}
	for _, period := range set.Periods.Items() {
		rows = append(rows, listRow{id: period.Id, label: formatPeriod(&period)})
	}
	return sendList(ctx, bot, chatId, "Periods", PERIOD_RESOURCE, rows, isOwner)
}

func SendTeacherList(ctx context.Context, bot *tgutils.Bot, set *stores.ChatStores, chatId int64, isOwner bool) error {
	if err := set.Teachers.Load(ctx); err != nil {
		logging.Error(err.Error(), "chat", chatId)
		return nil
	}
	rows := []listRow{}
	for _, teacher := range set.Teachers.Items() {
		if teacher.MigrateLegacyClasses(FallbackSubject) {
			logging.Warn("teacher record carried legacy class list", "teacher", teacher.Name)
		}
		rows = append(rows, listRow{id: teacher.Id, label: formatTeacher(&teacher)})
	}
	return sendList(ctx, bot, chatId, "Teachers", TEACHER_RESOURCE, rows, isOwner)
}

func formatPeriod(period *entities.Period) string {
	return fmt.Sprintf("%s (%d min, %s)", period.Name, period.DurationMinutes, period.Session)
}

func formatTeacher(teacher *entities.Teacher) string {
	pairs := make([]string, 0, len(teacher.SubjectsAndClasses))
	for _, pair := range teacher.SubjectsAndClasses {
		pairs = append(pairs, fmt.Sprintf("%s (%s)", pair.Subject, pair.ClassLabel))
	}
	return utils.JoinNonEmpty([]string{
		teacher.Name,
		strings.Join(teacher.AvailablePeriods, ", "),
		strings.Join(pairs, ", "),
	}, " — ")
}

func sendList(ctx context.Context, bot *tgutils.Bot, chatId int64, title, resource string, rows []listRow, isOwner bool) error {
	builder := strings.Builder{}
	builder.WriteString(title)
	builder.WriteByte('\n')
	if len(rows) == 0 {
		builder.WriteString("Nothing here yet")
	}
	for _, row := range rows {
		builder.WriteString("• ")
		builder.WriteString(row.label)
		builder.WriteByte('\n')
	}
	msg := tgbotapi.NewMessage(chatId, builder.String())
	if isOwner {
		msg.ReplyMarkup = createListKeyboard(resource, rows)
	}
	if _, err := bot.SendCtx(ctx, msg); err != nil {
		return fmt.Errorf("failed to send %s list to chat %d: %w", resource, chatId, err)
	}
	return nil
}

func createListKeyboard(resource string, rows []listRow) *tgbotapi.InlineKeyboardMarkup {
	markup := [][]tgbotapi.InlineKeyboardButton{}
	for _, row := range rows {
		label := row.label
		if cut, _, found := strings.Cut(label, " — "); found {
			label = cut
		}
		markup = append(markup, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("✏️ "+label, createRefdataCallback(resource, editAction, row.id)),
			tgbotapi.NewInlineKeyboardButtonData("🗑 "+label, createRefdataCallback(resource, deleteAction, row.id)),
		})
	}
	markup = append(markup, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("➕ Add", createRefdataCallback(resource, addAction, 0)),
	})
	keyboard := tgbotapi.NewInlineKeyboardMarkup(markup...)
	return &keyboard
}
