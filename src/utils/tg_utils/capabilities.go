package tgutils

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	CONFIRM_CALLBACKS = "confirm"
	CONFIRM_YES       = "yes"
	CONFIRM_NO        = "no"
)

// ChatNotifier sends plain status messages to a single chat.
type ChatNotifier struct {
	bot    *Bot
	chatId int64
}

func NewChatNotifier(bot *Bot, chatId int64) *ChatNotifier {
	return &ChatNotifier{bot: bot, chatId: chatId}
}

func (notifier *ChatNotifier) Notify(ctx context.Context, message string) error {
	_, err := notifier.bot.SendCtx(ctx, tgbotapi.NewMessage(notifier.chatId, message))
	if err != nil {
		return fmt.Errorf("failed to notify chat %d: %w", notifier.chatId, err)
	}
	return nil
}

// ChatConfirmer asks a yes/no question with an inline keyboard and blocks
// until the answer callback arrives or the context expires. Resolve must be
// reachable without holding the chat lock, otherwise the question deadlocks.
type ChatConfirmer struct {
	bot     *Bot
	chatId  int64
	pending *PendingConfirmations
}

func NewChatConfirmer(bot *Bot, chatId int64, pending *PendingConfirmations) *ChatConfirmer {
	return &ChatConfirmer{bot: bot, chatId: chatId, pending: pending}
}

func (confirmer *ChatConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	token := uuid.NewString()
	answers := confirmer.pending.register(token)
	defer confirmer.pending.forget(token)

	msg := tgbotapi.NewMessage(confirmer.chatId, message)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✅ Yes", createConfirmCallback(token, CONFIRM_YES)),
		tgbotapi.NewInlineKeyboardButtonData("❌ No", createConfirmCallback(token, CONFIRM_NO)),
	))
	sent, err := confirmer.bot.SendCtx(ctx, msg)
	if err != nil {
		return false, fmt.Errorf("failed to send confirmation to chat %d: %w", confirmer.chatId, err)
	}

	select {
	case answer := <-answers:
		edit := tgbotapi.NewEditMessageReplyMarkup(confirmer.chatId, sent.MessageID,
			tgbotapi.NewInlineKeyboardMarkup([]tgbotapi.InlineKeyboardButton{}))
		if _, err = confirmer.bot.SendCtx(ctx, edit); err != nil {
			return answer, fmt.Errorf("failed to remove confirmation markup in chat %d: %w", confirmer.chatId, err)
		}
		return answer, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// PendingConfirmations holds the channels open questions wait on,
// keyed by a one-shot token baked into the callback data.
type PendingConfirmations struct {
	answers sync.Map
}

func NewPendingConfirmations() *PendingConfirmations {
	return &PendingConfirmations{}
}

func (pending *PendingConfirmations) register(token string) chan bool {
	answers := make(chan bool, 1)
	pending.answers.Store(token, answers)
	return answers
}

func (pending *PendingConfirmations) forget(token string) {
	pending.answers.Delete(token)
}

// Resolve delivers a confirmation callback to its waiting question.
// Unknown tokens are answers to questions that already timed out.
func (pending *PendingConfirmations) Resolve(ctx context.Context, update *tgbotapi.Update, bot *Bot) error {
	token, answer, ok := parseConfirmCallback(update.CallbackData())
	if !ok {
		return fmt.Errorf("malformed confirmation callback %q", update.CallbackData())
	}
	callback := tgbotapi.NewCallback(update.CallbackQuery.ID, "")
	if _, err := bot.Request(callback); err != nil {
		return fmt.Errorf("failed to answer confirmation callback: %w", err)
	}
	if answers, loaded := pending.answers.Load(token); loaded {
		select {
		case answers.(chan bool) <- answer:
		default:
		}
	}
	return nil
}

func (pending *PendingConfirmations) HandleCallback(ctx context.Context, update *tgbotapi.Update, bot *Bot) error {
	return pending.Resolve(ctx, update, bot)
}

var _ CallbackHandler = (*PendingConfirmations)(nil)

func createConfirmCallback(token, answer string) string {
	builder := strings.Builder{}
	builder.Grow(64)
	builder.WriteString(CONFIRM_CALLBACKS)
	builder.WriteString("|")
	builder.WriteString(token)
	builder.WriteString("|")
	builder.WriteString(answer)
	return builder.String()
}

func parseConfirmCallback(callback string) (token string, answer bool, ok bool) {
	callback, found := strings.CutPrefix(callback, CONFIRM_CALLBACKS+"|")
	if !found {
		return "", false, false
	}
	token, after, found := strings.Cut(callback, "|")
	if !found {
		return "", false, false
	}
	return token, after == CONFIRM_YES, true
}

// SendMessageToOwners fans one message out to every configured owner chat.
func SendMessageToOwners(ctx context.Context, msg tgbotapi.MessageConfig, owners []int64, bot *Bot) error {
	for _, owner := range owners {
		msg.ChatID = owner
		if _, err := bot.SendCtx(ctx, msg); err != nil {
			return fmt.Errorf("failed to send message to owner %s: %w", strconv.FormatInt(owner, 10), err)
		}
	}
	return nil
}
