package ioc

import (
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers"
	stateMachine "github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine"
)

var useStateMachine = provider(
	func() update_handlers.StateMachine {
		return stateMachine.NewStateMachine(
			stateMachine.NewStatesConfig(
				useHandlersCache(), useTgBot(),
				useStoresRegistry(), useConfig(),
				useViewsService(), useGenerationService(),
			),
		)
	},
)
