package sheetsapi

import (
	"context"

	"github.com/mgowdara/school_timetable_bot/src/schedule"
)

type SheetUrl = string

type SheetsApi interface {
	PublishAll(ctx context.Context, grids []schedule.Grid) (SheetUrl, error)
}
