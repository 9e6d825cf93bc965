package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ArchiveCallbackHandler struct {
	service *Service
}

func NewArchiveCallbackHandler(service *Service) *ArchiveCallbackHandler {
	return &ArchiveCallbackHandler{service: service}
}

var _ tgutils.CallbackHandler = (*ArchiveCallbackHandler)(nil)

func (handler *ArchiveCallbackHandler) HandleCallback(ctx context.Context, update *tgbotapi.Update, bot *tgutils.Bot) error {
	name, found := strings.CutPrefix(update.CallbackData(), constants.ARCHIVE_CALLBACKS+"|")
	if !found || name == "" {
		return fmt.Errorf("malformed archive callback %q", update.CallbackData())
	}
	if _, err := bot.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
		return fmt.Errorf("failed to answer archive callback: %w", err)
	}
	return handler.service.SendArchive(ctx, update.CallbackQuery.Message.Chat.ID, name)
}
