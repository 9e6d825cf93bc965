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

type CallbacksService struct {
	cache  interfaces.HandlersCache
	router *tgutils.CallbackRouter
}

func NewCallbacksService(cache interfaces.HandlersCache, router *tgutils.CallbackRouter) *CallbacksService {
	return &CallbacksService{cache: cache, router: router}
}

func (serv *CallbacksService) HandleCallbacks(update *tgbotapi.Update, bot *tgutils.Bot) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered from panic", "err", r)
			debug.PrintStack()
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), constants.DEFAULT_TIMEOUT)
	defer cancel()
	if update.CallbackQuery == nil {
		slog.Error("no callback in update")
		return
	}
	msg := update.CallbackQuery.Message
	if msg == nil {
		return
	}

	// Confirmation answers resolve a question some handler is blocked on
	// while holding the chat lock, so they must not take it themselves.
	if !strings.HasPrefix(update.CallbackData(), tgutils.CONFIRM_CALLBACKS+"|") {
		mu := serv.cache.AcquireLock(ctx, msg.Chat.ID)
		if !mu.TryLock() {
			return
		}
		defer mu.Unlock()
	}

	if err := serv.router.Route(ctx, update, bot); err != nil {
		slog.Error(err.Error(), "chat", msg.Chat.ID, "callback", update.CallbackData())
		if _, sendErr := bot.SendCtx(ctx, tgbotapi.NewMessage(msg.Chat.ID, "❌ Something went wrong, the action was not applied")); sendErr != nil {
			slog.Error(sendErr.Error(), "chat", msg.Chat.ID)
		}
	}
}
