package stateMachine

import (
	"context"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/config"
	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	"github.com/mgowdara/school_timetable_bot/src/stores"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine/absences"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine/generation"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine/refdata"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine/views"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var _ update_handlers.State = (*idleState)(nil)

const ADD_ARGUMENT = "add"

type idleState struct {
	cache      interfaces.HandlersCache
	bot        *tgutils.Bot
	registry   *stores.Registry
	cfg        *config.Config
	views      *views.Service
	generation *generation.Service
}

func newIdleState(conf *statesConfig) *idleState {
	return &idleState{
		cache:      conf.cache,
		bot:        conf.bot,
		registry:   conf.registry,
		cfg:        conf.cfg,
		views:      conf.views,
		generation: conf.generation,
	}
}

func (*idleState) StateName() string {
	return constants.IDLE_STATE
}

func (state *idleState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	chatId := message.Chat.ID
	isOwner := state.cfg.IsOwner(chatId)
	command := "/" + message.Command()
	argument := strings.TrimSpace(message.CommandArguments())

	switch command {
	case constants.START_COMMAND, constants.HELP_COMMAND:
		_, err := state.bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, update_handlers.CommandList()))
		return err

	case constants.CLASSROOMS_COMMAND:
		return refdata.SendClassroomList(ctx, state.bot, state.registry.ForChat(chatId), chatId, isOwner)
	case constants.SUBJECTS_COMMAND:
		return refdata.SendSubjectList(ctx, state.bot, state.registry.ForChat(chatId), chatId, isOwner)
	case constants.PERIODS_COMMAND:
		return refdata.SendPeriodList(ctx, state.bot, state.registry.ForChat(chatId), chatId, isOwner)
	case constants.TEACHERS_COMMAND:
		return refdata.SendTeacherList(ctx, state.bot, state.registry.ForChat(chatId), chatId, isOwner)

	case constants.ABSENCES_COMMAND:
		if argument == ADD_ARGUMENT {
			if !isOwner {
				return state.ownersOnly(ctx, chatId)
			}
			return absences.StartFullDay(ctx, state.cache, state.bot, chatId)
		}
		return absences.SendFullDayList(ctx, state.bot, state.registry.ForChat(chatId), chatId)
	case constants.HALFDAY_COMMAND:
		if argument == ADD_ARGUMENT {
			if !isOwner {
				return state.ownersOnly(ctx, chatId)
			}
			return absences.StartPartialDay(ctx, state.cache, state.bot, chatId)
		}
		return absences.SendPartialDayList(ctx, state.bot, state.registry.ForChat(chatId), chatId)

	case constants.GRID_COMMAND:
		if argument != "" {
			return state.views.SendClassroomGrid(ctx, chatId, argument)
		}
		return views.SendClassroomChoice(ctx, state.bot, state.views, chatId,
			"Which classroom?", views.CreateClassGridCallback)
	case constants.TEACHER_GRID_COMMAND:
		if argument != "" {
			return state.views.SendTeacherGrid(ctx, chatId, argument)
		}
		return views.SendTeacherChoice(ctx, state.bot, state.views, chatId, "Which teacher?")
	case constants.LOAD_COMMAND:
		if argument != "" {
			return state.views.SendSubjectLoads(ctx, chatId, argument)
		}
		return views.SendClassroomChoice(ctx, state.bot, state.views, chatId,
			"Which classroom?", views.CreateLoadCallback)
	case constants.FILTER_COMMAND:
		return views.StartFilter(ctx, state.cache, state.bot, state.views, chatId)

	case constants.GENERATE_COMMAND:
		if !isOwner {
			return state.ownersOnly(ctx, chatId)
		}
		return state.generation.Generate(ctx, chatId)
	case constants.GENERATE_BETWEEN_COMMAND:
		if !isOwner {
			return state.ownersOnly(ctx, chatId)
		}
		return generation.StartGenerateBetween(ctx, state.cache, state.bot, chatId)
	case constants.EXCEL_COMMAND:
		return state.generation.SendExcel(ctx, chatId)
	case constants.ARCHIVES_COMMAND:
		return state.generation.SendArchives(ctx, chatId)
	case constants.PUBLISH_COMMAND:
		if !isOwner {
			return state.ownersOnly(ctx, chatId)
		}
		return state.generation.Publish(ctx, chatId)

	default:
		if message.IsCommand() {
			_, err := state.bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, "Unknown command, see /help"))
			return err
		}
		_, err := state.bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, "I only answer to commands, see /help"))
		return err
	}
}

func (state *idleState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	_, err := state.bot.SendCtx(ctx, tgbotapi.NewMessage(message.Chat.ID, "Nothing to cancel"))
	return err
}

func (state *idleState) ownersOnly(ctx context.Context, chatId int64) error {
	_, err := state.bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, "Only bot owners can do that"))
	return err
}
