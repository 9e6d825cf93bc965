package views

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	"github.com/mgowdara/school_timetable_bot/src/schedule"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SKIP_ANSWER is what the chat sends to leave a filter dimension open.
const SKIP_ANSWER = "-"

type filterForm struct {
	Classroom string `json:"classroom,omitempty"`
	Teacher   string `json:"teacher,omitempty"`
	Subject   string `json:"subject,omitempty"`
}

// StartFilter opens the guided filter form for a chat.
func StartFilter(ctx context.Context, cache interfaces.HandlersCache, bot *tgutils.Bot, views *Service, chatId int64) error {
	form, err := json.Marshal(&filterForm{})
	if err != nil {
		return fmt.Errorf("failed to marshal empty filter form: %w", err)
	}
	if err = cache.SaveInfo(ctx, chatId, string(form)); err != nil {
		return fmt.Errorf("failed to save filter form for chat %d: %w", chatId, err)
	}
	return promptFilter(ctx, cache, bot, views, chatId, constants.FILTER_CLASSROOM_STATE,
		"Classroom to filter by (or "+SKIP_ANSWER+" for any):", schedule.ByClassroom)
}

// promptFilter moves the chat into the next filter state and sends its
// prompt. The values already present in the timetable come along as
// one-time reply buttons; typing a value by hand still works.
func promptFilter(ctx context.Context, cache interfaces.HandlersCache, bot *tgutils.Bot, views *Service, chatId int64, stateName, prompt string, dim schedule.Dimension) error {
	if err := update_handlers.Transition(ctx, cache, bot, chatId, stateName, ""); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatId, prompt)
	if options := views.FilterOptions(ctx, dim); len(options) > 0 {
		msg.ReplyMarkup = tgutils.CreateReplyKeyboard(append(options, SKIP_ANSWER)...)
	}
	if _, err := bot.SendCtx(ctx, msg); err != nil {
		return fmt.Errorf("failed to prompt chat %d in %q: %w", chatId, stateName, err)
	}
	return nil
}

func loadFilterForm(ctx context.Context, cache interfaces.HandlersCache, chatId int64) (*filterForm, error) {
	raw, err := cache.GetInfo(ctx, chatId)
	if err != nil {
		return nil, fmt.Errorf("failed to get filter form for chat %d: %w", chatId, err)
	}
	form := &filterForm{}
	if err = json.Unmarshal([]byte(raw), form); err != nil {
		return nil, fmt.Errorf("failed to unmarshal filter form for chat %d: %w", chatId, err)
	}
	return form, nil
}

func saveFilterForm(ctx context.Context, cache interfaces.HandlersCache, chatId int64, form *filterForm) error {
	// A form that unmarshalled will marshal back.
	raw, _ := json.Marshal(form)
	if err := cache.SaveInfo(ctx, chatId, string(raw)); err != nil {
		return fmt.Errorf("failed to save filter form for chat %d: %w", chatId, err)
	}
	return nil
}

func answer(message *tgbotapi.Message) string {
	text := strings.TrimSpace(message.Text)
	if text == SKIP_ANSWER {
		return ""
	}
	return text
}

type filterClassroomState struct {
	cache interfaces.HandlersCache
	bot   *tgutils.Bot
	views *Service
}

func NewFilterClassroomState(bot *tgutils.Bot, cache interfaces.HandlersCache, views *Service) *filterClassroomState {
	return &filterClassroomState{cache: cache, bot: bot, views: views}
}

func (*filterClassroomState) StateName() string {
	return constants.FILTER_CLASSROOM_STATE
}

func (state *filterClassroomState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	form, err := loadFilterForm(ctx, state.cache, message.Chat.ID)
	if err != nil {
		return err
	}
	form.Classroom = answer(message)
	if err = saveFilterForm(ctx, state.cache, message.Chat.ID, form); err != nil {
		return err
	}
	return promptFilter(ctx, state.cache, state.bot, state.views, message.Chat.ID,
		constants.FILTER_TEACHER_STATE, "Teacher to filter by (or "+SKIP_ANSWER+" for any):", schedule.ByTeacher)
}

func (state *filterClassroomState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}

type filterTeacherState struct {
	cache interfaces.HandlersCache
	bot   *tgutils.Bot
	views *Service
}

func NewFilterTeacherState(bot *tgutils.Bot, cache interfaces.HandlersCache, views *Service) *filterTeacherState {
	return &filterTeacherState{cache: cache, bot: bot, views: views}
}

func (*filterTeacherState) StateName() string {
	return constants.FILTER_TEACHER_STATE
}

func (state *filterTeacherState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	form, err := loadFilterForm(ctx, state.cache, message.Chat.ID)
	if err != nil {
		return err
	}
	form.Teacher = answer(message)
	if err = saveFilterForm(ctx, state.cache, message.Chat.ID, form); err != nil {
		return err
	}
	return promptFilter(ctx, state.cache, state.bot, state.views, message.Chat.ID,
		constants.FILTER_SUBJECT_STATE, "Subject to filter by (or "+SKIP_ANSWER+" for any):", schedule.BySubject)
}

func (state *filterTeacherState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}

type filterSubjectState struct {
	cache interfaces.HandlersCache
	bot   *tgutils.Bot
	views *Service
}

func NewFilterSubjectState(bot *tgutils.Bot, cache interfaces.HandlersCache, views *Service) *filterSubjectState {
	return &filterSubjectState{cache: cache, bot: bot, views: views}
}

func (*filterSubjectState) StateName() string {
	return constants.FILTER_SUBJECT_STATE
}

func (state *filterSubjectState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	form, err := loadFilterForm(ctx, state.cache, message.Chat.ID)
	if err != nil {
		return err
	}
	form.Subject = answer(message)
	filter := schedule.Filter{
		ClassroomName: form.Classroom,
		TeacherName:   form.Teacher,
		SubjectName:   form.Subject,
	}
	if err = state.cache.RemoveInfo(ctx, message.Chat.ID); err != nil {
		return fmt.Errorf("failed to drop filter form for chat %d: %w", message.Chat.ID, err)
	}
	if err = state.cache.SaveState(ctx, *interfaces.NewCachedInfo(message.Chat.ID, constants.IDLE_STATE)); err != nil {
		return fmt.Errorf("failed to reset state for chat %d: %w", message.Chat.ID, err)
	}
	return state.views.SendFiltered(ctx, message.Chat.ID, filter)
}

func (state *filterSubjectState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}
