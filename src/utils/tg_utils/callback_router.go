package tgutils

import (
	"context"
	"errors"

	datastructures "github.com/mgowdara/school_timetable_bot/src/utils/data_structures"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrNoRoute = errors.New("no handler registered for callback")

type CallbackHandler interface {
	HandleCallback(ctx context.Context, update *tgbotapi.Update, bot *Bot) error
}

type CallbackHandlerFunc func(ctx context.Context, update *tgbotapi.Update, bot *Bot) error

func (f CallbackHandlerFunc) HandleCallback(ctx context.Context, update *tgbotapi.Update, bot *Bot) error {
	return f(ctx, update, bot)
}

// CallbackRouter dispatches callback queries to the handler registered
// under the longest matching prefix of the callback data.
type CallbackRouter struct {
	routes datastructures.TrieNode[CallbackHandler]
}

func NewCallbackRouter() *CallbackRouter {
	return &CallbackRouter{routes: datastructures.NewTrieNode[CallbackHandler]()}
}

func (router *CallbackRouter) Register(prefix string, handler CallbackHandler) {
	router.routes.Insert(prefix, handler)
}

func (router *CallbackRouter) Route(ctx context.Context, update *tgbotapi.Update, bot *Bot) error {
	handler := router.routes.Search(update.CallbackData())
	if handler == nil {
		return ErrNoRoute
	}
	return handler.HandleCallback(ctx, update, bot)
}
