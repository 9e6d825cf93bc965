package interfaces

import (
	"context"
	"time"
)

// TasksRepository records when each scheduled task last ran, so missed
// runs can be caught up after downtime.
type TasksRepository interface {
	SaveCompletedTask(ctx context.Context, taskName string, timestamp time.Time) error
	GetLastCompleted(ctx context.Context, taskName string) (time.Time, error)
}
