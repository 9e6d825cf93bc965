package absences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/logging"
	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	"github.com/mgowdara/school_timetable_bot/src/stores"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
	"github.com/mgowdara/school_timetable_bot/src/utils"
	datetime "github.com/mgowdara/school_timetable_bot/src/utils/date_time"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const DATE_PROMPT = "Date, DD/MM/YYYY:"

type absenceForm struct {
	TeacherName string `json:"teacherName,omitempty"`
	Date        string `json:"date,omitempty"`
}

// StartFullDay opens the full-day absence form for a chat.
func StartFullDay(ctx context.Context, cache interfaces.HandlersCache, bot *tgutils.Bot, chatId int64) error {
	return start(ctx, cache, bot, chatId, constants.ABSENCE_TEACHER_STATE)
}

// StartPartialDay opens the partial-day form, which additionally collects
// the affected periods.
func StartPartialDay(ctx context.Context, cache interfaces.HandlersCache, bot *tgutils.Bot, chatId int64) error {
	return start(ctx, cache, bot, chatId, constants.HALFDAY_TEACHER_STATE)
}

func start(ctx context.Context, cache interfaces.HandlersCache, bot *tgutils.Bot, chatId int64, stateName string) error {
	form, err := json.Marshal(&absenceForm{})
	if err != nil {
		return fmt.Errorf("failed to marshal empty absence form: %w", err)
	}
	if err = cache.SaveInfo(ctx, chatId, string(form)); err != nil {
		return fmt.Errorf("failed to save absence form for chat %d: %w", chatId, err)
	}
	return update_handlers.Transition(ctx, cache, bot, chatId, stateName, "Which teacher is absent?")
}

func loadForm(ctx context.Context, cache interfaces.HandlersCache, chatId int64) (*absenceForm, error) {
	raw, err := cache.GetInfo(ctx, chatId)
	if err != nil {
		return nil, fmt.Errorf("failed to get absence form for chat %d: %w", chatId, err)
	}
	form := &absenceForm{}
	if err = json.Unmarshal([]byte(raw), form); err != nil {
		return nil, fmt.Errorf("failed to unmarshal absence form for chat %d: %w", chatId, err)
	}
	return form, nil
}

func saveForm(ctx context.Context, cache interfaces.HandlersCache, chatId int64, form *absenceForm) error {
	raw, _ := json.Marshal(form)
	if err := cache.SaveInfo(ctx, chatId, string(raw)); err != nil {
		return fmt.Errorf("failed to save absence form for chat %d: %w", chatId, err)
	}
	return nil
}

// handleTeacherAnswer is shared by both flows; they differ only in the
// state the date question is asked from.
func handleTeacherAnswer(ctx context.Context, cache interfaces.HandlersCache, bot *tgutils.Bot, message *tgbotapi.Message, dateState string) error {
	name := strings.TrimSpace(message.Text)
	if name == "" {
		_, err := bot.SendCtx(ctx, tgbotapi.NewMessage(message.Chat.ID, "Please send the teacher's name"))
		return err
	}
	form, err := loadForm(ctx, cache, message.Chat.ID)
	if err != nil {
		return err
	}
	form.TeacherName = name
	if err = saveForm(ctx, cache, message.Chat.ID, form); err != nil {
		return err
	}
	return update_handlers.Transition(ctx, cache, bot, message.Chat.ID, dateState, DATE_PROMPT)
}

func parseDateAnswer(ctx context.Context, bot *tgutils.Bot, message *tgbotapi.Message) (datetime.DateOnly, bool, error) {
	date, err := datetime.ParseDisplay(strings.TrimSpace(message.Text))
	if err != nil {
		_, err = bot.SendCtx(ctx, tgbotapi.NewMessage(message.Chat.ID, "Please send the date as DD/MM/YYYY, e.g. 07/09/2026"))
		return datetime.DateOnly{}, false, err
	}
	return date, true, nil
}

type absenceTeacherState struct {
	cache interfaces.HandlersCache
	bot   *tgutils.Bot
}

func NewAbsenceTeacherState(bot *tgutils.Bot, cache interfaces.HandlersCache) *absenceTeacherState {
	return &absenceTeacherState{cache: cache, bot: bot}
}

func (*absenceTeacherState) StateName() string {
	return constants.ABSENCE_TEACHER_STATE
}

func (state *absenceTeacherState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	return handleTeacherAnswer(ctx, state.cache, state.bot, message, constants.ABSENCE_DATE_STATE)
}

func (state *absenceTeacherState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}

type absenceDateState struct {
	cache    interfaces.HandlersCache
	bot      *tgutils.Bot
	registry *stores.Registry
}

func NewAbsenceDateState(bot *tgutils.Bot, cache interfaces.HandlersCache, registry *stores.Registry) *absenceDateState {
	return &absenceDateState{cache: cache, bot: bot, registry: registry}
}

func (*absenceDateState) StateName() string {
	return constants.ABSENCE_DATE_STATE
}

func (state *absenceDateState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	date, ok, err := parseDateAnswer(ctx, state.bot, message)
	if !ok {
		return err
	}
	form, err := loadForm(ctx, state.cache, message.Chat.ID)
	if err != nil {
		return err
	}
	record := entities.Absence{TeacherName: form.TeacherName, Date: date}
	set := state.registry.ForChat(message.Chat.ID)
	status, err := set.Absences.SubmitFullDay(ctx, &record)
	return finishSubmit(ctx, state.cache, state.bot, message.Chat.ID, status, err)
}

func (state *absenceDateState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}

type halfdayTeacherState struct {
	cache interfaces.HandlersCache
	bot   *tgutils.Bot
}

func NewHalfdayTeacherState(bot *tgutils.Bot, cache interfaces.HandlersCache) *halfdayTeacherState {
	return &halfdayTeacherState{cache: cache, bot: bot}
}

func (*halfdayTeacherState) StateName() string {
	return constants.HALFDAY_TEACHER_STATE
}

func (state *halfdayTeacherState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	return handleTeacherAnswer(ctx, state.cache, state.bot, message, constants.HALFDAY_DATE_STATE)
}

func (state *halfdayTeacherState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}

type halfdayDateState struct {
	cache interfaces.HandlersCache
	bot   *tgutils.Bot
}

func NewHalfdayDateState(bot *tgutils.Bot, cache interfaces.HandlersCache) *halfdayDateState {
	return &halfdayDateState{cache: cache, bot: bot}
}

func (*halfdayDateState) StateName() string {
	return constants.HALFDAY_DATE_STATE
}

func (state *halfdayDateState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	date, ok, err := parseDateAnswer(ctx, state.bot, message)
	if !ok {
		return err
	}
	form, err := loadForm(ctx, state.cache, message.Chat.ID)
	if err != nil {
		return err
	}
	form.Date = date.Display()
	if err = saveForm(ctx, state.cache, message.Chat.ID, form); err != nil {
		return err
	}
	return update_handlers.Transition(ctx, state.cache, state.bot, message.Chat.ID,
		constants.HALFDAY_PERIODS_STATE,
		"Affected periods, comma separated (AM or PM picks a whole session):")
}

func (state *halfdayDateState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}

type halfdayPeriodsState struct {
	cache    interfaces.HandlersCache
	bot      *tgutils.Bot
	registry *stores.Registry
}

func NewHalfdayPeriodsState(bot *tgutils.Bot, cache interfaces.HandlersCache, registry *stores.Registry) *halfdayPeriodsState {
	return &halfdayPeriodsState{cache: cache, bot: bot, registry: registry}
}

func (*halfdayPeriodsState) StateName() string {
	return constants.HALFDAY_PERIODS_STATE
}

func (state *halfdayPeriodsState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	form, err := loadForm(ctx, state.cache, message.Chat.ID)
	if err != nil {
		return err
	}
	date, err := datetime.ParseDisplay(form.Date)
	if err != nil {
		return fmt.Errorf("failed to restore absence date for chat %d: %w", message.Chat.ID, err)
	}
	set := state.registry.ForChat(message.Chat.ID)

	periods := utils.SplitTrimmed(message.Text)
	if expanded, expandErr := state.expandLegacySession(ctx, message, periods); expandErr != nil {
		return expandErr
	} else if expanded == nil {
		// The session answer did not resolve; the chat was re-prompted.
		return nil
	} else {
		periods = expanded
	}

	record := entities.Absence{TeacherName: form.TeacherName, Date: date, Periods: periods}
	status, err := set.Absences.SubmitPartialDay(ctx, &record)
	if errors.Is(err, stores.ErrNoPeriods) {
		// Stay in this state, the store told the chat what is wrong.
		return nil
	}
	return finishSubmit(ctx, state.cache, state.bot, message.Chat.ID, status, err)
}

// expandLegacySession maps the retired AM/PM shorthand onto the current
// period collection. A nil, nil return means the answer was a session
// keyword that matched nothing and the chat got a fresh prompt.
func (state *halfdayPeriodsState) expandLegacySession(ctx context.Context, message *tgbotapi.Message, periods []string) ([]string, error) {
	if len(periods) != 1 {
		return periods, nil
	}
	session := strings.ToUpper(periods[0])
	if session != "AM" && session != "PM" {
		return periods, nil
	}
	set := state.registry.ForChat(message.Chat.ID)
	if err := set.Periods.Load(ctx); err != nil {
		logging.Error(err.Error(), "chat", message.Chat.ID)
		return nil, nil
	}
	expanded := entities.PeriodsForLegacySession(session, set.Periods.Items())
	if len(expanded) == 0 {
		_, err := state.bot.SendCtx(ctx, tgbotapi.NewMessage(message.Chat.ID,
			fmt.Sprintf("No periods belong to the %s session, list them explicitly", session)))
		return nil, err
	}
	return expanded, nil
}

func (state *halfdayPeriodsState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}

func finishSubmit(ctx context.Context, cache interfaces.HandlersCache, bot *tgutils.Bot, chatId int64, status string, err error) error {
	if errors.Is(err, stores.ErrMissingTeacher) || errors.Is(err, stores.ErrMissingDate) {
		return update_handlers.CancelForm(ctx, cache, bot, chatId)
	}
	if err != nil {
		logging.Error(err.Error(), "chat", chatId)
		if resetErr := cache.SaveState(ctx, *interfaces.NewCachedInfo(chatId, constants.IDLE_STATE)); resetErr != nil {
			return resetErr
		}
		return cache.RemoveInfo(ctx, chatId)
	}
	if err = cache.RemoveInfo(ctx, chatId); err != nil {
		return fmt.Errorf("failed to drop absence form for chat %d: %w", chatId, err)
	}
	if err = cache.SaveState(ctx, *interfaces.NewCachedInfo(chatId, constants.IDLE_STATE)); err != nil {
		return fmt.Errorf("failed to reset state for chat %d: %w", chatId, err)
	}
	if status == "" {
		status = "Absence recorded"
	}
	if _, err = bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, "✅ "+status)); err != nil {
		return fmt.Errorf("failed to send absence status to chat %d: %w", chatId, err)
	}
	return nil
}
