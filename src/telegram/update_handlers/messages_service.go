package update_handlers

import (
	"context"
	"log/slog"
	"runtime/debug"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var commands = []tgbotapi.BotCommand{
	{Command: constants.HELP_COMMAND, Description: "Commands and their short description"},
	{Command: constants.CLASSROOMS_COMMAND, Description: "Manage classrooms"},
	{Command: constants.PERIODS_COMMAND, Description: "Manage lesson periods"},
	{Command: constants.SUBJECTS_COMMAND, Description: "Manage subjects"},
	{Command: constants.TEACHERS_COMMAND, Description: "Manage teachers"},
	{Command: constants.ABSENCES_COMMAND, Description: "Full-day absences, `add` records one"},
	{Command: constants.HALFDAY_COMMAND, Description: "Partial-day absences, `add` records one"},
	{Command: constants.GRID_COMMAND, Description: "Weekly grid for a classroom"},
	{Command: constants.TEACHER_GRID_COMMAND, Description: "Weekly grid for a teacher"},
	{Command: constants.LOAD_COMMAND, Description: "Subject load totals for a classroom"},
	{Command: constants.FILTER_COMMAND, Description: "Filter the full timetable"},
	{Command: constants.GENERATE_COMMAND, Description: "Generate the timetable"},
	{Command: constants.GENERATE_BETWEEN_COMMAND, Description: "Generate for a date range"},
	{Command: constants.EXCEL_COMMAND, Description: "Download the latest Excel export"},
	{Command: constants.ARCHIVES_COMMAND, Description: "Browse archived exports"},
	{Command: constants.PUBLISH_COMMAND, Description: "Publish grids to Google Sheets"},
	{Command: constants.CANCEL_COMMAND, Description: "Abandon the current form"},
}

func CommandList() string {
	builder := strings.Builder{}
	for _, command := range commands {
		builder.WriteString(command.Command)
		builder.WriteString(" - ")
		builder.WriteString(command.Description)
		builder.WriteByte('\n')
	}
	return builder.String()
}

type StateMachine interface {
	Handle(ctx context.Context, message *tgbotapi.Message) error
}

type MessagesService struct {
	cache        interfaces.HandlersCache
	stateMachine StateMachine
	bot          *tgutils.Bot
}

func NewMessagesService(stateMachine StateMachine, cache interfaces.HandlersCache, bot *tgutils.Bot) *MessagesService {
	// setMyCommands wants the bare command names, without the slash.
	registered := make([]tgbotapi.BotCommand, len(commands))
	for i, command := range commands {
		registered[i] = tgbotapi.BotCommand{
			Command:     strings.TrimPrefix(command.Command, "/"),
			Description: command.Description,
		}
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(registered...)); err != nil {
		slog.Error("failed to register bot commands", "err", err.Error())
	}
	return &MessagesService{cache: cache, stateMachine: stateMachine, bot: bot}
}

func (srv *MessagesService) HandleMessages(update *tgbotapi.Update, bot *tgutils.Bot) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered from panic", "err", r)
			debug.PrintStack()
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), constants.DEFAULT_TIMEOUT)
	defer cancel()

	chatId := update.Message.Chat.ID
	mu := srv.cache.AcquireLock(ctx, chatId)
	mu.Lock()
	defer mu.Unlock()

	err := srv.stateMachine.Handle(ctx, update.Message)
	if err != nil {
		slog.Error(err.Error(), "chat", chatId)
		if _, sendErr := bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, "❌ Something went wrong, the action was not applied")); sendErr != nil {
			slog.Error(sendErr.Error(), "chat", chatId)
		}
	}
}
