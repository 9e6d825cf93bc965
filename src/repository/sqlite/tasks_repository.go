package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
)

type TasksRepository struct {
	db *sql.DB
}

var _ interfaces.TasksRepository = (*TasksRepository)(nil)

func NewTasksRepository(db *sql.DB) *TasksRepository {
	return &TasksRepository{db: db}
}

func (repo *TasksRepository) SaveCompletedTask(ctx context.Context, taskName string, timestamp time.Time) error {
	query := `INSERT INTO tasks (task_name, task_timestamp) VALUES ($1, $2)`
	if _, err := repo.db.ExecContext(ctx, query, taskName, timestamp.UTC()); err != nil {
		return fmt.Errorf("failed to save completed task: %w", err)
	}
	return nil
}

func (repo *TasksRepository) GetLastCompleted(ctx context.Context, taskName string) (time.Time, error) {
	query := `SELECT task_timestamp FROM tasks WHERE task_name = $1 ORDER BY task_timestamp DESC LIMIT 1`
	row := repo.db.QueryRowContext(ctx, query, taskName)

	var timestamp time.Time
	if err := row.Scan(&timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to get last completed task: %w", err)
	}
	return timestamp, nil
}
