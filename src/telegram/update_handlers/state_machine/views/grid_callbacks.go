package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	classGridAction   = "class"
	teacherGridAction = "teacher"
	loadAction        = "load"
)

func CreateClassGridCallback(className string) string {
	return strings.Join([]string{constants.GRID_CALLBACKS, classGridAction, className}, "|")
}

func CreateTeacherGridCallback(teacherName string) string {
	return strings.Join([]string{constants.GRID_CALLBACKS, teacherGridAction, teacherName}, "|")
}

func CreateLoadCallback(className string) string {
	return strings.Join([]string{constants.GRID_CALLBACKS, loadAction, className}, "|")
}

func parseGridCallback(callback string) (action, name string, ok bool) {
	callback, found := strings.CutPrefix(callback, constants.GRID_CALLBACKS+"|")
	if !found {
		return "", "", false
	}
	action, name, found = strings.Cut(callback, "|")
	return action, name, found
}

type GridCallbackHandler struct {
	views *Service
}

func NewGridCallbackHandler(views *Service) *GridCallbackHandler {
	return &GridCallbackHandler{views: views}
}

var _ tgutils.CallbackHandler = (*GridCallbackHandler)(nil)

func (handler *GridCallbackHandler) HandleCallback(ctx context.Context, update *tgbotapi.Update, bot *tgutils.Bot) error {
	action, name, ok := parseGridCallback(update.CallbackData())
	if !ok {
		return fmt.Errorf("malformed grid callback %q", update.CallbackData())
	}
	if _, err := bot.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
		return fmt.Errorf("failed to answer grid callback: %w", err)
	}
	chatId := update.CallbackQuery.Message.Chat.ID
	switch action {
	case classGridAction:
		return handler.views.SendClassroomGrid(ctx, chatId, name)
	case teacherGridAction:
		return handler.views.SendTeacherGrid(ctx, chatId, name)
	case loadAction:
		return handler.views.SendSubjectLoads(ctx, chatId, name)
	default:
		return fmt.Errorf("unknown grid callback action %q", action)
	}
}

// SendClassroomChoice offers every classroom as a button whose callback
// runs action (one of the Create*Callback builders) for the chosen name.
func SendClassroomChoice(ctx context.Context, bot *tgutils.Bot, views *Service, chatId int64, prompt string, action func(name string) string) error {
	names, err := views.ClassroomNames(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		_, err = bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, "No classrooms configured yet"))
		return err
	}
	msg := tgbotapi.NewMessage(chatId, prompt)
	msg.ReplyMarkup = tgutils.CreateChoiceKeyboard(names, action)
	_, err = bot.SendCtx(ctx, msg)
	return err
}

func SendTeacherChoice(ctx context.Context, bot *tgutils.Bot, views *Service, chatId int64, prompt string) error {
	names, err := views.TeacherNames(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		_, err = bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, "No teachers configured yet"))
		return err
	}
	msg := tgbotapi.NewMessage(chatId, prompt)
	msg.ReplyMarkup = tgutils.CreateChoiceKeyboard(names, CreateTeacherGridCallback)
	_, err = bot.SendCtx(ctx, msg)
	return err
}
