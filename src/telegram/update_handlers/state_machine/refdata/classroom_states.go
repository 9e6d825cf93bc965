package refdata

import (
	"context"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	"github.com/mgowdara/school_timetable_bot/src/stores"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
)

type classroomNameState struct {
	cache    interfaces.HandlersCache
	bot      *tgutils.Bot
	registry *stores.Registry
}

func NewClassroomNameState(bot *tgutils.Bot, cache interfaces.HandlersCache, registry *stores.Registry) *classroomNameState {
	return &classroomNameState{cache: cache, bot: bot, registry: registry}
}

func (*classroomNameState) StateName() string {
	return constants.CLASSROOM_NAME_STATE
}

func (state *classroomNameState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	name := strings.TrimSpace(message.Text)
	if name == "" {
		_, err := state.bot.SendCtx(ctx, tgbotapi.NewMessage(message.Chat.ID, "Please send a non-empty name"))
		return err
	}
	set := state.registry.ForChat(message.Chat.ID)
	set.Classrooms.Draft().Name = name
	return finishSubmit(ctx, state.cache, state.bot, set.Classrooms.Submit, message.Chat.ID, CLASSROOM_RESOURCE)
}

func (state *classroomNameState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	state.registry.ForChat(message.Chat.ID).Classrooms.CancelEdit()
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}

type subjectNameState struct {
	cache    interfaces.HandlersCache
	bot      *tgutils.Bot
	registry *stores.Registry
}

func NewSubjectNameState(bot *tgutils.Bot, cache interfaces.HandlersCache, registry *stores.Registry) *subjectNameState {
	return &subjectNameState{cache: cache, bot: bot, registry: registry}
}

func (*subjectNameState) StateName() string {
	return constants.SUBJECT_NAME_STATE
}

func (state *subjectNameState) Handle(ctx context.Context, message *tgbotapi.Message) error {
	name := strings.TrimSpace(message.Text)
	if name == "" {
		_, err := state.bot.SendCtx(ctx, tgbotapi.NewMessage(message.Chat.ID, "Please send a non-empty name"))
		return err
	}
	set := state.registry.ForChat(message.Chat.ID)
	set.Subjects.Draft().Name = name
	return finishSubmit(ctx, state.cache, state.bot, set.Subjects.Submit, message.Chat.ID, SUBJECT_RESOURCE)
}

func (state *subjectNameState) Revert(ctx context.Context, message *tgbotapi.Message) error {
	state.registry.ForChat(message.Chat.ID).Subjects.CancelEdit()
	return update_handlers.CancelForm(ctx, state.cache, state.bot, message.Chat.ID)
}
