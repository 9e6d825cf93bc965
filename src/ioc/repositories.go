package ioc

import (
	"database/sql"

	"github.com/mgowdara/school_timetable_bot/src/config"
	"github.com/mgowdara/school_timetable_bot/src/logging"
	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	"github.com/mgowdara/school_timetable_bot/src/repository/sqlite"
)

var useConfig = provider(
	func() *config.Config {
		return config.Load()
	},
)

var useSqliteConnection = provider(
	func() *sql.DB {
		conn, err := sqlite.NewDatabase(useConfig().SqlitePath)
		if err != nil {
			logging.FatalLog(err.Error())
		}
		return conn
	},
)

var useHandlersCache = provider(
	func() interfaces.HandlersCache {
		return sqlite.NewHandlersCacheRepository(useSqliteConnection())
	},
)

var useTasksRepository = provider(
	func() interfaces.TasksRepository {
		return sqlite.NewTasksRepository(useSqliteConnection())
	},
)
