package refdata

import (
	"context"
	"strconv"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	"github.com/mgowdara/school_timetable_bot/src/stores"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type periodNameState struct {
	cache    interfaces.HandlersCache
	bot      *tgutils.Bot
	registry *stores.Registry
}

func NewPeriodNameState(bot *tgutils.Bot, cache interfaces.HandlersCache, registry *stores.Registry) *periodNameState {
	return &periodNameState{cache: cache, bot: bot, registry: registry}
}

func (*periodNameState) StateName() string {
	return constants.PERIOD_NAME_STATE
}

func (state *periodNameState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	name := strings.TrimSpace(message.Text)
	if name == "" {
		_, err := state.bot.SendCtx(ctx, tgbotapi.NewMessage(message.Chat.ID, "Please send a non-empty name"))
		return err
	}
	state.registry.ForChat(message.Chat.ID).Periods.Draft().Name = name
	return update_handlers.Transition(ctx, state.cache, state.bot, message.Chat.ID,
		constants.PERIOD_DURATION_STATE, "Duration in minutes:")
}

func (state *periodNameState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	state.registry.ForChat(message.Chat.ID).Periods.CancelEdit()
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}

type periodDurationState struct {
	cache    interfaces.HandlersCache
	bot      *tgutils.Bot
	registry *stores.Registry
}

func NewPeriodDurationState(bot *tgutils.Bot, cache interfaces.HandlersCache, registry *stores.Registry) *periodDurationState {
	return &periodDurationState{cache: cache, bot: bot, registry: registry}
}

func (*periodDurationState) StateName() string {
	return constants.PERIOD_DURATION_STATE
}

func (state *periodDurationState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	minutes, err := strconv.Atoi(strings.TrimSpace(message.Text))
	if err != nil || minutes <= 0 || minutes > 24*60 {
		_, err = state.bot.SendCtx(ctx, tgbotapi.NewMessage(message.Chat.ID, "Please send the duration as a positive number of minutes"))
		return err
	}
	state.registry.ForChat(message.Chat.ID).Periods.Draft().DurationMinutes = minutes
	if err = state.cache.SaveState(ctx, *interfaces.NewCachedInfo(message.Chat.ID, constants.PERIOD_SESSION_STATE)); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(message.Chat.ID, "Which session does it belong to?")
	msg.ReplyMarkup = tgutils.CreateReplyKeyboard(string(entities.MorningSession), string(entities.AfternoonSession))
	_, err = state.bot.SendCtx(ctx, msg)
	return err
}

func (state *periodDurationState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	state.registry.ForChat(message.Chat.ID).Periods.CancelEdit()
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}

type periodSessionState struct {
	cache    interfaces.HandlersCache
	bot      *tgutils.Bot
	registry *stores.Registry
}

func NewPeriodSessionState(bot *tgutils.Bot, cache interfaces.HandlersCache, registry *stores.Registry) *periodSessionState {
	return &periodSessionState{cache: cache, bot: bot, registry: registry}
}

func (*periodSessionState) StateName() string {
	return constants.PERIOD_SESSION_STATE
}

func (state *periodSessionState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	session := entities.Session(strings.TrimSpace(message.Text))
	if session != entities.MorningSession && session != entities.AfternoonSession {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Please pick Morning or Afternoon")
		msg.ReplyMarkup = tgutils.CreateReplyKeyboard(string(entities.MorningSession), string(entities.AfternoonSession))
		_, err := state.bot.SendCtx(ctx, msg)
		return err
	}
	set := state.registry.ForChat(message.Chat.ID)
	set.Periods.Draft().Session = session
	return finishSubmit(ctx, state.cache, state.bot, set.Periods.Submit, message.Chat.ID, PERIOD_RESOURCE)
}

func (state *periodSessionState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	state.registry.ForChat(message.Chat.ID).Periods.CancelEdit()
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}
