package bot

import (
	"fmt"

	"github.com/mgowdara/school_timetable_bot/src/logging"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type BotController struct {
	bot         *tgutils.Bot
	msgSrv      MessagesService
	callbackSrv CallbacksService
}

func NewBotController(bot *tgutils.Bot, msgSrv MessagesService, callbackSrv CallbacksService) *BotController {
	return &BotController{
		bot:         bot,
		msgSrv:      msgSrv,
		callbackSrv: callbackSrv,
	}
}

func (controller *BotController) Start() {
	logging.Info(fmt.Sprintf("authorized on account %s", controller.bot.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message", "callback_query"}

	updates := controller.bot.GetUpdatesChan(u)

	// Services serialize per chat through the handlers cache lock, so each
	// update can run on its own goroutine.
	for update := range updates {
		if update.Message != nil {
			go controller.msgSrv.HandleMessages(&update, controller.bot)
		} else if update.CallbackQuery != nil {
			go controller.callbackSrv.HandleCallbacks(&update, controller.bot)
		}
	}
}
