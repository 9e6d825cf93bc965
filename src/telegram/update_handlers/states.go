package update_handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// State is one step of a chat conversation. Handle consumes the next
// message, Revert abandons the step when the chat sends /cancel.
type State interface {
	StateName() string
	Handle(ctx context.Context, message *tgbotapi.Message) error
	Revert(ctx context.Context, message *tgbotapi.Message) error
}
