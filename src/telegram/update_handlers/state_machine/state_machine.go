package stateMachine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mgowdara/school_timetable_bot/src/config"
	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	"github.com/mgowdara/school_timetable_bot/src/stores"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine/absences"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine/generation"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine/refdata"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine/views"
	datastructures "github.com/mgowdara/school_timetable_bot/src/utils/data_structures"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type StateMachine struct {
	cache interfaces.HandlersCache
	bot   *tgutils.Bot
}

var _ update_handlers.StateMachine = (*StateMachine)(nil)

type statesConfig struct {
	cache      interfaces.HandlersCache
	bot        *tgutils.Bot
	registry   *stores.Registry
	cfg        *config.Config
	views      *views.Service
	generation *generation.Service
}

func NewStatesConfig(
	cache interfaces.HandlersCache,
	bot *tgutils.Bot,
	registry *stores.Registry,
	cfg *config.Config,
	viewsService *views.Service,
	generationService *generation.Service,
) *statesConfig {
	return &statesConfig{
		cache:      cache,
		bot:        bot,
		registry:   registry,
		cfg:        cfg,
		views:      viewsService,
		generation: generationService,
	}
}

func NewStateMachine(conf *statesConfig) *StateMachine {
	machine := &StateMachine{cache: conf.cache, bot: conf.bot}
	InitStates(conf)
	return machine
}

func (machine *StateMachine) Handle(ctx context.Context, message *tgbotapi.Message) error {
	info, err := machine.cache.GetState(ctx, message.Chat.ID)
	if err != nil {
		return fmt.Errorf("couldn't get state in state machine: %w", err)
	}
	state, ok := getStateByName(info.State())
	if !ok {
		// A state name left over from an older build falls back to idle.
		state, _ = getStateByName(constants.IDLE_STATE)
	}
	if message.Command() == strings.Trim(constants.CANCEL_COMMAND, "/") {
		return state.Revert(ctx, message)
	}
	return state.Handle(ctx, message)
}

var once sync.Once
var states = datastructures.NewTrieNode[update_handlers.State]()

func InitStates(conf *statesConfig) {
	once.Do(func() {
		for _, state := range []update_handlers.State{
			newIdleState(conf),

			refdata.NewClassroomNameState(conf.bot, conf.cache, conf.registry),
			refdata.NewSubjectNameState(conf.bot, conf.cache, conf.registry),
			refdata.NewPeriodNameState(conf.bot, conf.cache, conf.registry),
			refdata.NewPeriodDurationState(conf.bot, conf.cache, conf.registry),
			refdata.NewPeriodSessionState(conf.bot, conf.cache, conf.registry),
			refdata.NewTeacherNameState(conf.bot, conf.cache, conf.registry),
			refdata.NewTeacherPeriodsState(conf.bot, conf.cache, conf.registry),
			refdata.NewTeacherSubjectsState(conf.bot, conf.cache, conf.registry),

			absences.NewAbsenceTeacherState(conf.bot, conf.cache),
			absences.NewAbsenceDateState(conf.bot, conf.cache, conf.registry),
			absences.NewHalfdayTeacherState(conf.bot, conf.cache),
			absences.NewHalfdayDateState(conf.bot, conf.cache),
			absences.NewHalfdayPeriodsState(conf.bot, conf.cache, conf.registry),

			views.NewFilterClassroomState(conf.bot, conf.cache, conf.views),
			views.NewFilterTeacherState(conf.bot, conf.cache, conf.views),
			views.NewFilterSubjectState(conf.bot, conf.cache, conf.views),

			generation.NewGenerateStartDateState(conf.bot, conf.cache),
			generation.NewGenerateEndDateState(conf.bot, conf.cache, conf.generation),
		} {
			states.Insert(state.StateName(), state)
		}
	})
}

func getStateByName(name string) (update_handlers.State, bool) {
	return states.SearchExact(name)
}
