package cron

import (
	"context"
	"fmt"

	"github.com/mgowdara/school_timetable_bot/src/logging"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var _ Task = (*ReminderTask)(nil)

// ReminderTask nudges the owners once a week to regenerate the timetable,
// so absences recorded during the week actually make it into the plan.
type ReminderTask struct {
	bot    *tgutils.Bot
	owners []int64
}

func NewReminderTask(bot *tgutils.Bot, owners []int64) *ReminderTask {
	return &ReminderTask{bot: bot, owners: owners}
}

func (task *ReminderTask) Run(ctx context.Context) {
	msg := tgbotapi.NewMessage(0, fmt.Sprintf(
		"📅 Weekly reminder: review absences and run %s to refresh the timetable", constants.GENERATE_COMMAND))
	if err := tgutils.SendMessageToOwners(ctx, msg, task.owners, task.bot); err != nil {
		logging.Error(fmt.Errorf("failed to send weekly reminder: %w", err).Error())
	}
}
