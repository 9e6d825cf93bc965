package memory

import (
	"context"
	"sync"

	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
)

// HandlersCacheRepository keeps conversation state in process memory.
// Used in tests and when no database path is configured.
type HandlersCacheRepository struct {
	mu     sync.RWMutex
	states map[int64]string
	infos  map[int64]string
	locks  sync.Map
}

var _ interfaces.HandlersCache = (*HandlersCacheRepository)(nil)

func NewHandlersCacheRepository() *HandlersCacheRepository {
	return &HandlersCacheRepository{
		states: make(map[int64]string),
		infos:  make(map[int64]string),
	}
}

func (repo *HandlersCacheRepository) SaveState(ctx context.Context, info interfaces.CachedInfo) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.states[info.ChatId()] = info.State()
	return nil
}

func (repo *HandlersCacheRepository) GetState(ctx context.Context, chatId int64) (*interfaces.CachedInfo, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return interfaces.NewCachedInfo(chatId, repo.states[chatId]), nil
}

func (repo *HandlersCacheRepository) SaveInfo(ctx context.Context, chatId int64, json string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.infos[chatId] = json
	return nil
}

func (repo *HandlersCacheRepository) GetInfo(ctx context.Context, chatId int64) (string, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.infos[chatId], nil
}

func (repo *HandlersCacheRepository) RemoveInfo(ctx context.Context, chatId int64) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	delete(repo.infos, chatId)
	return nil
}

func (repo *HandlersCacheRepository) AcquireLock(ctx context.Context, chatId int64) *sync.Mutex {
	lock, _ := repo.locks.LoadOrStore(chatId, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
