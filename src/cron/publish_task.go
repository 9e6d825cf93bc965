package cron

import (
	"context"
	"fmt"

	"github.com/mgowdara/school_timetable_bot/src/logging"
	"github.com/mgowdara/school_timetable_bot/src/schedule"
)

type Task interface {
	Run(context.Context)
}

type GridSource interface {
	AllGrids(ctx context.Context) ([]schedule.Grid, error)
}

type GridsPublisher interface {
	PublishAll(ctx context.Context, grids []schedule.Grid) (string, error)
}

var _ Task = (*PublishTask)(nil)

// PublishTask pushes the night's timetable to the public spreadsheet, so
// the published copy never drifts more than a day behind the server.
type PublishTask struct {
	grids     GridSource
	publisher GridsPublisher
}

func NewPublishTask(grids GridSource, publisher GridsPublisher) *PublishTask {
	return &PublishTask{grids: grids, publisher: publisher}
}

func (task *PublishTask) Run(ctx context.Context) {
	grids, err := task.grids.AllGrids(ctx)
	if err != nil {
		logging.Error(fmt.Errorf("failed to fetch grids for nightly publish: %w", err).Error())
		return
	}
	url, err := task.publisher.PublishAll(ctx, grids)
	if err != nil {
		logging.Error(fmt.Errorf("failed to publish grids: %w", err).Error())
		return
	}
	logging.Info("published timetable", "url", url, "grids", len(grids))
}
