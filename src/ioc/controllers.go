package ioc

import (
	"github.com/mgowdara/school_timetable_bot/src/cron"
	"github.com/mgowdara/school_timetable_bot/src/logging"
	"github.com/mgowdara/school_timetable_bot/src/telegram/bot"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var useTgBot = provider(
	func() *tgutils.Bot {
		cfg := useConfig()
		api, err := tgbotapi.NewBotAPI(cfg.BotToken)
		if err != nil {
			logging.FatalLog(err.Error())
		}
		api.Debug = cfg.Debug
		return tgutils.NewBot(api)
	},
)

var UseBotController = provider(
	func() *bot.BotController {
		return bot.NewBotController(useTgBot(), UseMessagesService(), UseCallbacksService())
	},
)

var UseTasksController = provider(
	func() *cron.TasksController {
		return cron.NewTasksController(
			useViewsService(), UseSheetsApiService(),
			useTasksRepository(), useTgBot(), useConfig().Owners,
		)
	},
)
