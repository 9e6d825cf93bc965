package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	datetime "github.com/mgowdara/school_timetable_bot/src/utils/date_time"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type generateForm struct {
	Start string `json:"start,omitempty"`
}

// StartGenerateBetween opens the date-range generation form.
func StartGenerateBetween(ctx context.Context, cache interfaces.HandlersCache, bot *tgutils.Bot, chatId int64) error {
	form, err := json.Marshal(&generateForm{})
	if err != nil {
		return fmt.Errorf("failed to marshal empty generate form: %w", err)
	}
	if err = cache.SaveInfo(ctx, chatId, string(form)); err != nil {
		return fmt.Errorf("failed to save generate form for chat %d: %w", chatId, err)
	}
	return update_handlers.Transition(ctx, cache, bot, chatId,
		constants.GENERATE_START_DATE_STATE, "First day of the range, DD/MM/YYYY:")
}

type generateStartDateState struct {
	cache interfaces.HandlersCache
	bot   *tgutils.Bot
}

func NewGenerateStartDateState(bot *tgutils.Bot, cache interfaces.HandlersCache) *generateStartDateState {
	return &generateStartDateState{cache: cache, bot: bot}
}

func (*generateStartDateState) StateName() string {
	return constants.GENERATE_START_DATE_STATE
}

func (state *generateStartDateState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	date, err := datetime.ParseDisplay(strings.TrimSpace(message.Text))
	if err != nil {
		_, err = state.bot.SendCtx(ctx, tgbotapi.NewMessage(message.Chat.ID, "Please send the date as DD/MM/YYYY"))
		return err
	}
	form := &generateForm{Start: date.Display()}
	raw, _ := json.Marshal(form)
	if err = state.cache.SaveInfo(ctx, message.Chat.ID, string(raw)); err != nil {
		return fmt.Errorf("failed to save generate form for chat %d: %w", message.Chat.ID, err)
	}
	return update_handlers.Transition(ctx, state.cache, state.bot, message.Chat.ID,
		constants.GENERATE_END_DATE_STATE, "Last day of the range, DD/MM/YYYY:")
}

func (state *generateStartDateState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}

type generateEndDateState struct {
	cache   interfaces.HandlersCache
	bot     *tgutils.Bot
	service *Service
}

func NewGenerateEndDateState(bot *tgutils.Bot, cache interfaces.HandlersCache, service *Service) *generateEndDateState {
	return &generateEndDateState{cache: cache, bot: bot, service: service}
}

func (*generateEndDateState) StateName() string {
	return constants.GENERATE_END_DATE_STATE
}

func (state *generateEndDateState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	end, err := datetime.ParseDisplay(strings.TrimSpace(message.Text))
	if err != nil {
		_, err = state.bot.SendCtx(ctx, tgbotapi.NewMessage(message.Chat.ID, "Please send the date as DD/MM/YYYY"))
		return err
	}
	raw, err := state.cache.GetInfo(ctx, message.Chat.ID)
	if err != nil {
		return fmt.Errorf("failed to get generate form for chat %d: %w", message.Chat.ID, err)
	}
	form := &generateForm{}
	if err = json.Unmarshal([]byte(raw), form); err != nil {
		return fmt.Errorf("failed to unmarshal generate form for chat %d: %w", message.Chat.ID, err)
	}
	start, err := datetime.ParseDisplay(form.Start)
	if err != nil {
		return fmt.Errorf("failed to restore range start for chat %d: %w", message.Chat.ID, err)
	}
	if end.Time().Before(start.Time()) {
		_, err = state.bot.SendCtx(ctx, tgbotapi.NewMessage(message.Chat.ID,
			fmt.Sprintf("The last day has to be on or after %s", start.Display())))
		return err
	}
	if err = state.cache.RemoveInfo(ctx, message.Chat.ID); err != nil {
		return fmt.Errorf("failed to drop generate form for chat %d: %w", message.Chat.ID, err)
	}
	if err = state.cache.SaveState(ctx, *interfaces.NewCachedInfo(message.Chat.ID, constants.IDLE_STATE)); err != nil {
		return fmt.Errorf("failed to reset state for chat %d: %w", message.Chat.ID, err)
	}
	return state.service.GenerateBetween(ctx, message.Chat.ID, start, end)
}

func (state *generateEndDateState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}
