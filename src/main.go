package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/mgowdara/school_timetable_bot/src/ioc"
	"github.com/mgowdara/school_timetable_bot/src/logging"

	"github.com/joho/godotenv"
)

func main() {
	logging.InitLogging()

	if err := godotenv.Load(); err != nil {
		logging.Warn("no .env file found, relying on the environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go ioc.UseTasksController().InitTasks(ctx)

	ioc.UseBotController().Start()
}
