package refdata

import (
	"context"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	"github.com/mgowdara/school_timetable_bot/src/stores"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
	"github.com/mgowdara/school_timetable_bot/src/utils"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type teacherNameState struct {
	cache    interfaces.HandlersCache
	bot      *tgutils.Bot
	registry *stores.Registry
}

func NewTeacherNameState(bot *tgutils.Bot, cache interfaces.HandlersCache, registry *stores.Registry) *teacherNameState {
	return &teacherNameState{cache: cache, bot: bot, registry: registry}
}

func (*teacherNameState) StateName() string {
	return constants.TEACHER_NAME_STATE
}

func (state *teacherNameState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	name := strings.TrimSpace(message.Text)
	if name == "" {
		_, err := state.bot.SendCtx(ctx, tgbotapi.NewMessage(message.Chat.ID, "Please send a non-empty name"))
		return err
	}
	state.registry.ForChat(message.Chat.ID).Teachers.Draft().Name = name
	return update_handlers.Transition(ctx, state.cache, state.bot, message.Chat.ID,
		constants.TEACHER_PERIODS_STATE, "Available periods, comma separated (or - for every period):")
}

func (state *teacherNameState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	state.registry.ForChat(message.Chat.ID).Teachers.CancelEdit()
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}

type teacherPeriodsState struct {
	cache    interfaces.HandlersCache
	bot      *tgutils.Bot
	registry *stores.Registry
}

func NewTeacherPeriodsState(bot *tgutils.Bot, cache interfaces.HandlersCache, registry *stores.Registry) *teacherPeriodsState {
	return &teacherPeriodsState{cache: cache, bot: bot, registry: registry}
}

func (*teacherPeriodsState) StateName() string {
	return constants.TEACHER_PERIODS_STATE
}

func (state *teacherPeriodsState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	draft := state.registry.ForChat(message.Chat.ID).Teachers.Draft()
	if answer := strings.TrimSpace(message.Text); answer == "-" {
		draft.AvailablePeriods = nil
	} else {
		draft.AvailablePeriods = utils.SplitTrimmed(answer)
	}
	return update_handlers.Transition(ctx, state.cache, state.bot, message.Chat.ID,
		constants.TEACHER_SUBJECTS_STATE, "Subject and class pairs, comma separated, e.g. Math:5A, Physics:6B")
}

func (state *teacherPeriodsState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	state.registry.ForChat(message.Chat.ID).Teachers.CancelEdit()
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}

type teacherSubjectsState struct {
	cache    interfaces.HandlersCache
	bot      *tgutils.Bot
	registry *stores.Registry
}

func NewTeacherSubjectsState(bot *tgutils.Bot, cache interfaces.HandlersCache, registry *stores.Registry) *teacherSubjectsState {
	return &teacherSubjectsState{cache: cache, bot: bot, registry: registry}
}

func (*teacherSubjectsState) StateName() string {
	return constants.TEACHER_SUBJECTS_STATE
}

func (state *teacherSubjectsState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	pairs, ok := parseSubjectClasses(message.Text)
	if !ok {
		_, err := state.bot.SendCtx(ctx, tgbotapi.NewMessage(message.Chat.ID,
			"Please send at least one Subject:Class pair, e.g. Math:5A, Physics:6B"))
		return err
	}
	set := state.registry.ForChat(message.Chat.ID)
	set.Teachers.Draft().SubjectsAndClasses = pairs
	return finishSubmit(ctx, state.cache, state.bot, set.Teachers.Submit, message.Chat.ID, TEACHER_RESOURCE)
}

func (state *teacherSubjectsState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	state.registry.ForChat(message.Chat.ID).Teachers.CancelEdit()
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}

func parseSubjectClasses(input string) ([]entities.SubjectClass, bool) {
	parts := utils.SplitTrimmed(input)
	if len(parts) == 0 {
		return nil, false
	}
	pairs := make([]entities.SubjectClass, 0, len(parts))
	for _, part := range parts {
		subject, classLabel, found := strings.Cut(part, ":")
		subject, classLabel = strings.TrimSpace(subject), strings.TrimSpace(classLabel)
		if !found || subject == "" || classLabel == "" {
			return nil, false
		}
		pairs = append(pairs, entities.SubjectClass{Subject: subject, ClassLabel: classLabel})
	}
	return pairs, true
}
