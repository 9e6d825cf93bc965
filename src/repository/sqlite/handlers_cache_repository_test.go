package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/mgowdara/school_timetable_bot/src/repository/interfaces"
	"github.com/mgowdara/school_timetable_bot/src/repository/sqlite"
)

func newTestCache(t *testing.T) *sqlite.HandlersCacheRepository {
	t.Helper()
	db, err := sqlite.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf(`NewDatabase = %v, want nil`, err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlite.NewHandlersCacheRepository(db)
}

func TestStateRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.SaveState(ctx, *interfaces.NewCachedInfo(42, "classroom_name")); err != nil {
		t.Fatalf(`SaveState = %v, want nil`, err)
	}
	info, err := cache.GetState(ctx, 42)
	if err != nil {
		t.Fatalf(`GetState = %v, want nil`, err)
	}
	if info.State() != "classroom_name" || info.ChatId() != 42 {
		t.Errorf(`got state %q for chat %d`, info.State(), info.ChatId())
	}
}

func TestSaveStateReplacesExisting(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.SaveState(ctx, *interfaces.NewCachedInfo(42, "classroom_name"))
	cache.SaveState(ctx, *interfaces.NewCachedInfo(42, ""))

	info, err := cache.GetState(ctx, 42)
	if err != nil {
		t.Fatalf(`GetState = %v, want nil`, err)
	}
	if info.State() != "" {
		t.Errorf(`State() = %q, want the replacing empty state`, info.State())
	}
}

func TestGetStateUnknownChatIsIdle(t *testing.T) {
	cache := newTestCache(t)
	info, err := cache.GetState(context.Background(), 999)
	if err != nil {
		t.Fatalf(`GetState = %v, want nil`, err)
	}
	if info.State() != "" {
		t.Errorf(`State() = %q for an unknown chat, want ""`, info.State())
	}
}

func TestInfoRoundTripAndRemove(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.SaveInfo(ctx, 42, `{"teacherName":"Rao"}`); err != nil {
		t.Fatalf(`SaveInfo = %v, want nil`, err)
	}
	stored, err := cache.GetInfo(ctx, 42)
	if err != nil || stored != `{"teacherName":"Rao"}` {
		t.Errorf(`GetInfo = %q, %v`, stored, err)
	}

	if err := cache.RemoveInfo(ctx, 42); err != nil {
		t.Fatalf(`RemoveInfo = %v, want nil`, err)
	}
	stored, err = cache.GetInfo(ctx, 42)
	if err != nil || stored != "" {
		t.Errorf(`GetInfo after remove = %q, %v, want ""`, stored, err)
	}
}

func TestAcquireLockIsPerChat(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	first := cache.AcquireLock(ctx, 1)
	if again := cache.AcquireLock(ctx, 1); again != first {
		t.Error(`the same chat got two different mutexes`)
	}
	if other := cache.AcquireLock(ctx, 2); other == first {
		t.Error(`two chats share one mutex`)
	}

	first.Lock()
	if other := cache.AcquireLock(ctx, 2); !other.TryLock() {
		t.Error(`locking chat 1 blocked chat 2`)
	} else {
		other.Unlock()
	}
	first.Unlock()
}

func TestTasksRepositoryLatestWins(t *testing.T) {
	db, err := sqlite.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf(`NewDatabase = %v, want nil`, err)
	}
	t.Cleanup(func() { db.Close() })
	repo := sqlite.NewTasksRepository(db)
	ctx := context.Background()

	last, err := repo.GetLastCompleted(ctx, "sheets publish")
	if err != nil {
		t.Fatalf(`GetLastCompleted = %v, want nil`, err)
	}
	if !last.IsZero() {
		t.Errorf(`GetLastCompleted for a never-run task = %v, want zero`, last)
	}

	earlier := time.Date(2026, time.September, 1, 2, 0, 0, 0, time.UTC)
	later := earlier.Add(24 * time.Hour)
	repo.SaveCompletedTask(ctx, "sheets publish", earlier)
	repo.SaveCompletedTask(ctx, "sheets publish", later)
	repo.SaveCompletedTask(ctx, "generation reminder", earlier)

	last, err = repo.GetLastCompleted(ctx, "sheets publish")
	if err != nil {
		t.Fatalf(`GetLastCompleted = %v, want nil`, err)
	}
	if !last.Equal(later) {
		t.Errorf(`GetLastCompleted = %v, want %v`, last, later)
	}
}
