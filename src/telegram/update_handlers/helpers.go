package update_handlers

import (
	"context"
	"fmt"

	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// CancelForm drops whatever form the chat was filling in and returns it
// to the idle state.
func CancelForm(ctx context.Context, cache interfaces.HandlersCache, bot *tgutils.Bot, chatId int64) error {
	if err := cache.RemoveInfo(ctx, chatId); err != nil {
		return fmt.Errorf("failed to drop form for chat %d: %w", chatId, err)
	}
	if err := cache.SaveState(ctx, *interfaces.NewCachedInfo(chatId, constants.IDLE_STATE)); err != nil {
		return fmt.Errorf("failed to reset state for chat %d: %w", chatId, err)
	}
	if _, err := bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, "Form abandoned")); err != nil {
		return fmt.Errorf("failed to send cancel notice to chat %d: %w", chatId, err)
	}
	return nil
}

// Transition saves the chat's next state and sends its prompt.
func Transition(ctx context.Context, cache interfaces.HandlersCache, bot *tgutils.Bot, chatId int64, stateName, prompt string) error {
	if err := cache.SaveState(ctx, *interfaces.NewCachedInfo(chatId, stateName)); err != nil {
		return fmt.Errorf("failed to transition chat %d to %q: %w", chatId, stateName, err)
	}
	if prompt == "" {
		return nil
	}
	if _, err := bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, prompt)); err != nil {
		return fmt.Errorf("failed to prompt chat %d in %q: %w", chatId, stateName, err)
	}
	return nil
}
