package absences

import (
	"context"
	"fmt"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/logging"
	"github.com/mgowdara/school_timetable_bot/src/stores"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func SendFullDayList(ctx context.Context, bot *tgutils.Bot, set *stores.ChatStores, chatId int64) error {
	if err := set.Absences.Load(ctx); err != nil {
		// The store already surfaced the failure to the chat.
		logging.Error(err.Error(), "chat", chatId)
		return nil
	}
	return sendRows(ctx, bot, chatId, "Full-day absences", stores.Rows(set.Absences.FullDay()))
}

func SendPartialDayList(ctx context.Context, bot *tgutils.Bot, set *stores.ChatStores, chatId int64) error {
	if err := set.Absences.Load(ctx); err != nil {
		logging.Error(err.Error(), "chat", chatId)
		return nil
	}
	return sendRows(ctx, bot, chatId, "Partial-day absences", stores.Rows(set.Absences.PartialDay()))
}

func sendRows(ctx context.Context, bot *tgutils.Bot, chatId int64, title string, rows []stores.AbsenceRow) error {
	builder := strings.Builder{}
	builder.WriteString(title)
	builder.WriteByte('\n')
	if len(rows) == 0 {
		builder.WriteString("Nothing recorded")
	}
	for _, row := range rows {
		builder.WriteString(fmt.Sprintf("• %s — %s (%s)", row.TeacherName, row.Date, row.Weekday))
		if row.Periods != "" {
			builder.WriteString(": ")
			builder.WriteString(row.Periods)
		}
		builder.WriteByte('\n')
	}
	if _, err := bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, builder.String())); err != nil {
		return fmt.Errorf("failed to send absence list to chat %d: %w", chatId, err)
	}
	return nil
}
