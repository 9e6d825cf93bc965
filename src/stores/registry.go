package stores

import (
	"sync"

	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
)

// ChatStores is the full store set one chat works with. Each chat gets its
// own drafts; the server stays the single authority behind all of them.
type ChatStores struct {
	Classrooms *Store[entities.Classroom]
	Periods    *Store[entities.Period]
	Subjects   *Store[entities.Subject]
	Teachers   *Store[entities.Teacher]
	Absences   *AbsenceStore
}

// Registry lazily builds the store set for a chat on first use. The builder
// binds the chat's notification and confirmation capabilities.
type Registry struct {
	mu    sync.Mutex
	chats map[int64]*ChatStores
	build func(chatId int64) *ChatStores
}

func NewRegistry(build func(chatId int64) *ChatStores) *Registry {
	return &Registry{chats: map[int64]*ChatStores{}, build: build}
}

func (registry *Registry) ForChat(chatId int64) *ChatStores {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if set, ok := registry.chats[chatId]; ok {
		return set
	}
	set := registry.build(chatId)
	registry.chats[chatId] = set
	return set
}
