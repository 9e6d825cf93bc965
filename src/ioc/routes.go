package ioc

import (
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine/generation"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine/refdata"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine/views"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
)

var useCallbackRouter = provider(
	func() *tgutils.CallbackRouter {
		router := tgutils.NewCallbackRouter()
		RegisterRoutes(router)
		return router
	},
)

func RegisterRoutes(router *tgutils.CallbackRouter) {
	router.Register(tgutils.CONFIRM_CALLBACKS, usePendingConfirmations())
	router.Register(constants.REFDATA_CALLBACKS, useRefdataCallbackHandler())
	router.Register(constants.GRID_CALLBACKS, useGridCallbackHandler())
	router.Register(constants.ARCHIVE_CALLBACKS, useArchiveCallbackHandler())
}

var useRefdataCallbackHandler = provider(
	func() *refdata.RefdataCallbackHandler {
		return refdata.NewRefdataCallbackHandler(useHandlersCache(), useStoresRegistry(), useConfig())
	},
)

var useGridCallbackHandler = provider(
	func() *views.GridCallbackHandler {
		return views.NewGridCallbackHandler(useViewsService())
	},
)

var useArchiveCallbackHandler = provider(
	func() *generation.ArchiveCallbackHandler {
		return generation.NewArchiveCallbackHandler(useGenerationService())
	},
)
