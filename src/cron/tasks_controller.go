package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/mgowdara/school_timetable_bot/src/logging"
	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

const (
	PUBLISH_TASK_NAME  = "sheets publish"
	REMINDER_TASK_NAME = "generation reminder"

	// Nightly at 02:00 local, weekly on Monday 08:00 local.
	PUBLISH_SCHEDULE  = "0 2 * * *"
	REMINDER_SCHEDULE = "0 8 * * 1"
)

type TasksController struct {
	grids     GridSource
	publisher GridsPublisher
	bot       *tgutils.Bot
	owners    []int64
	tasksRepo interfaces.TasksRepository
	jobs      []gocron.Job
	maxAges   map[string]time.Duration
}

func NewTasksController(grids GridSource, publisher GridsPublisher, tasks interfaces.TasksRepository, bot *tgutils.Bot, owners []int64) *TasksController {
	return &TasksController{
		grids:     grids,
		publisher: publisher,
		bot:       bot,
		owners:    owners,
		tasksRepo: tasks,
		maxAges: map[string]time.Duration{
			PUBLISH_TASK_NAME:  24 * time.Hour,
			REMINDER_TASK_NAME: 7 * 24 * time.Hour,
		},
	}
}

func (controller *TasksController) InitTasks(ctx context.Context) {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		logging.Error(fmt.Errorf("failed to init cron scheduler: %w", err).Error())
		return
	}

	publish := NewPublishTask(controller.grids, controller.publisher)
	controller.addJob(ctx, scheduler, PUBLISH_SCHEDULE, PUBLISH_TASK_NAME, publish)

	reminder := NewReminderTask(controller.bot, controller.owners)
	controller.addJob(ctx, scheduler, REMINDER_SCHEDULE, REMINDER_TASK_NAME, reminder)

	scheduler.Start()
	controller.runMissed(ctx)
	<-ctx.Done()
	if err = scheduler.Shutdown(); err != nil {
		logging.Error(fmt.Errorf("failed to shutdown cron scheduler: %w", err).Error())
	}
}

func (controller *TasksController) addJob(ctx context.Context, scheduler gocron.Scheduler, schedule, name string, task Task) {
	job, err := scheduler.NewJob(
		gocron.CronJob(schedule, false),
		gocron.NewTask(func() { task.Run(ctx) }),
		gocron.WithName(name),
		gocron.WithEventListeners(gocron.AfterJobRuns(func(jobID uuid.UUID, jobName string) {
			if saveErr := controller.tasksRepo.SaveCompletedTask(ctx, jobName, time.Now()); saveErr != nil {
				logging.Error("failed to record completed task", "task", jobName, "err", saveErr.Error())
			}
		})),
	)
	if err != nil {
		logging.Error(fmt.Errorf("failed to schedule %s: %w", name, err).Error())
		return
	}
	controller.jobs = append(controller.jobs, job)
}

// runMissed catches up on tasks whose last completion is older than their
// schedule allows, which happens when the bot was down at fire time.
func (controller *TasksController) runMissed(ctx context.Context) {
	for _, job := range controller.jobs {
		maxAge, known := controller.maxAges[job.Name()]
		if !known {
			continue
		}
		last, err := controller.tasksRepo.GetLastCompleted(ctx, job.Name())
		if err != nil {
			logging.Error("failed to get last completion", "task", job.Name(), "err", err.Error())
			continue
		}
		if !last.IsZero() && time.Since(last) <= maxAge {
			continue
		}
		if err = job.RunNow(); err != nil {
			logging.Error("failed to run missed task", "task", job.Name(), "err", err.Error())
		}
	}
}
