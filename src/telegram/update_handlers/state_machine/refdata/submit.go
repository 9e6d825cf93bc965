package refdata

import (
	"context"
	"errors"
	"fmt"

	"github.com/mgowdara/school_timetable_bot/src/logging"
	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	"github.com/mgowdara/school_timetable_bot/src/stores"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// finishSubmit pushes the draft and routes the chat accordingly: an invalid
// draft keeps the chat in place so the admin can fix the answer, a transport
// failure keeps the draft for a retry, success goes back to idle.
func finishSubmit(ctx context.Context, cache interfaces.HandlersCache, bot *tgutils.Bot, submit func(context.Context) error, chatId int64, label string) error {
	err := submit(ctx)
	if errors.Is(err, stores.ErrInvalidDraft) {
		// The store already told the chat what is missing.
		return nil
	}
	if err != nil {
		logging.Error(err.Error(), "chat", chatId)
		return update_handlers.Transition(ctx, cache, bot, chatId, constants.IDLE_STATE, "")
	}
	if err = cache.SaveState(ctx, *interfaces.NewCachedInfo(chatId, constants.IDLE_STATE)); err != nil {
		return fmt.Errorf("failed to reset state for chat %d: %w", chatId, err)
	}
	if _, err = bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, "✅ Saved "+label)); err != nil {
		return fmt.Errorf("failed to send save notice to chat %d: %w", chatId, err)
	}
	return nil
}
