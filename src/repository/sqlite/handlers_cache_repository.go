package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
)

type HandlersCacheRepository struct {
	db    *sql.DB
	locks sync.Map
}

var _ interfaces.HandlersCache = (*HandlersCacheRepository)(nil)

func NewHandlersCacheRepository(db *sql.DB) *HandlersCacheRepository {
	return &HandlersCacheRepository{db: db}
}

func (repo *HandlersCacheRepository) SaveState(ctx context.Context, info interfaces.CachedInfo) error {
	query := `INSERT OR REPLACE INTO states (chat_id, state) VALUES ($1, $2)`
	if _, err := repo.db.ExecContext(ctx, query, info.ChatId(), info.State()); err != nil {
		return fmt.Errorf("failed to save chat state: %w", err)
	}
	return nil
}

func (repo *HandlersCacheRepository) GetState(ctx context.Context, chatId int64) (*interfaces.CachedInfo, error) {
	query := `SELECT state FROM states WHERE chat_id = $1`
	row := repo.db.QueryRowContext(ctx, query, chatId)

	var state string
	if err := row.Scan(&state); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return interfaces.NewCachedInfo(chatId, ""), nil
		}
		return nil, fmt.Errorf("failed to get chat state: %w", err)
	}
	return interfaces.NewCachedInfo(chatId, state), nil
}

func (repo *HandlersCacheRepository) SaveInfo(ctx context.Context, chatId int64, json string) error {
	query := `INSERT OR REPLACE INTO info (chat_id, info) VALUES ($1, $2)`
	if _, err := repo.db.ExecContext(ctx, query, chatId, json); err != nil {
		return fmt.Errorf("failed to save chat info: %w", err)
	}
	return nil
}

func (repo *HandlersCacheRepository) GetInfo(ctx context.Context, chatId int64) (string, error) {
	query := `SELECT info FROM info WHERE chat_id = $1`
	row := repo.db.QueryRowContext(ctx, query, chatId)

	var info string
	if err := row.Scan(&info); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get chat info: %w", err)
	}
	return info, nil
}

func (repo *HandlersCacheRepository) RemoveInfo(ctx context.Context, chatId int64) error {
	query := `DELETE FROM info WHERE chat_id = $1`
	if _, err := repo.db.ExecContext(ctx, query, chatId); err != nil {
		return fmt.Errorf("failed to remove chat info: %w", err)
	}
	return nil
}

// AcquireLock hands out the chat's serialization mutex. Locking is left
// to the caller so callback handlers can TryLock instead.
func (repo *HandlersCacheRepository) AcquireLock(ctx context.Context, chatId int64) *sync.Mutex {
	lock, _ := repo.locks.LoadOrStore(chatId, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
