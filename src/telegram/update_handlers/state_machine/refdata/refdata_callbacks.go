package refdata

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/config"
	"github.com/mgowdara/school_timetable_bot/src/logging"
	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	"github.com/mgowdara/school_timetable_bot/src/stores"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	"github.com/mgowdara/school_timetable_bot/src/timetable_api"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	addAction    = "add"
	editAction   = "edit"
	deleteAction = "del"
)

func createRefdataCallback(resource, action string, id int64) string {
	builder := strings.Builder{}
	builder.Grow(32)
	builder.WriteString(constants.REFDATA_CALLBACKS)
	builder.WriteString("|")
	builder.WriteString(resource)
	builder.WriteString("|")
	builder.WriteString(action)
	builder.WriteString("|")
	builder.WriteString(strconv.FormatInt(id, 10))
	return builder.String()
}

func parseRefdataCallback(callback string) (resource, action string, id int64, ok bool) {
	callback, found := strings.CutPrefix(callback, constants.REFDATA_CALLBACKS+"|")
	if !found {
		return "", "", 0, false
	}
	parts := strings.Split(callback, "|")
	if len(parts) != 3 {
		return "", "", 0, false
	}
	id, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return "", "", 0, false
	}
	return parts[0], parts[1], id, true
}

type RefdataCallbackHandler struct {
	cache    interfaces.HandlersCache
	registry *stores.Registry
	cfg      *config.Config
}

func NewRefdataCallbackHandler(cache interfaces.HandlersCache, registry *stores.Registry, cfg *config.Config) *RefdataCallbackHandler {
	return &RefdataCallbackHandler{cache: cache, registry: registry, cfg: cfg}
}

var _ tgutils.CallbackHandler = (*RefdataCallbackHandler)(nil)

func (handler *RefdataCallbackHandler) HandleCallback(ctx context.Context, update *tgbotapi.Update, bot *tgutils.Bot) error {
	resource, action, id, ok := parseRefdataCallback(update.CallbackData())
	if !ok {
		return fmt.Errorf("malformed refdata callback %q", update.CallbackData())
	}
	chatId := update.CallbackQuery.Message.Chat.ID
	if !handler.cfg.IsOwner(chatId) {
		alert := tgbotapi.NewCallbackWithAlert(update.CallbackQuery.ID, "Only bot owners can change reference data")
		if _, err := bot.Request(alert); err != nil {
			return fmt.Errorf("failed to send owners-only alert: %w", err)
		}
		return nil
	}
	if _, err := bot.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
		return fmt.Errorf("failed to answer refdata callback: %w", err)
	}

	set := handler.registry.ForChat(chatId)
	switch resource {
	case CLASSROOM_RESOURCE:
		return handleResource(ctx, handler.cache, bot, set.Classrooms, chatId, action, id,
			CLASSROOM_RESOURCE, constants.CLASSROOM_NAME_STATE, "Classroom name:")
	case SUBJECT_RESOURCE:
		return handleResource(ctx, handler.cache, bot, set.Subjects, chatId, action, id,
			SUBJECT_RESOURCE, constants.SUBJECT_NAME_STATE, "Subject name:")
	case PERIOD_RESOURCE:
		return handleResource(ctx, handler.cache, bot, set.Periods, chatId, action, id,
			PERIOD_RESOURCE, constants.PERIOD_NAME_STATE, "Period name:")
	case TEACHER_RESOURCE:
		return handleResource(ctx, handler.cache, bot, set.Teachers, chatId, action, id,
			TEACHER_RESOURCE, constants.TEACHER_NAME_STATE, "Teacher name:")
	default:
		return fmt.Errorf("unknown refdata resource %q", resource)
	}
}

func handleResource[E timetable_api.Identifiable](
	ctx context.Context,
	cache interfaces.HandlersCache,
	bot *tgutils.Bot,
	store *stores.Store[E],
	chatId int64,
	action string,
	id int64,
	label, startState, prompt string,
) error {
	switch action {
	case addAction:
		store.CancelEdit()
		return update_handlers.Transition(ctx, cache, bot, chatId, startState, prompt)
	case editAction:
		item, found := store.FindById(id)
		if !found {
			if err := store.Load(ctx); err != nil {
				logging.Error(err.Error(), "chat", chatId)
				return nil
			}
			if item, found = store.FindById(id); !found {
				_, err := bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, "That record is gone, the list was stale"))
				return err
			}
		}
		store.BeginEdit(item)
		return update_handlers.Transition(ctx, cache, bot, chatId, startState, prompt+" (send a new value)")
	case deleteAction:
		err := store.Remove(ctx, id, label)
		if errors.Is(err, stores.ErrDeclined) {
			_, err = bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, "Nothing was deleted"))
			return err
		}
		if err != nil {
			logging.Error(err.Error(), "chat", chatId)
			return nil
		}
		_, err = bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, "🗑 Deleted"))
		return err
	default:
		return fmt.Errorf("unknown refdata action %q", action)
	}
}
