package stores

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-playground/validator/v10"

	"github.com/mgowdara/school_timetable_bot/src/logging"
	"github.com/mgowdara/school_timetable_bot/src/timetable_api"
)

var (
	ErrNoDraft      = errors.New("no draft to submit")
	ErrInvalidDraft = errors.New("draft is missing required fields")
	ErrDeclined     = errors.New("removal declined")
)

// ResourceApi is what a store needs from the server client for one
// reference-data collection.
type ResourceApi[E timetable_api.Identifiable] interface {
	List(ctx context.Context) ([]E, error)
	Create(ctx context.Context, item *E) error
	Update(ctx context.Context, item *E) error
	Delete(ctx context.Context, id int64) error
}

// Store keeps one collection in sync with the server: items always hold the
// last successfully fetched snapshot, the draft is the one record currently
// being created or edited. Nothing is inserted or removed locally; every
// mutation is followed by a wholesale refetch.
type Store[E timetable_api.Identifiable] struct {
	api      ResourceApi[E]
	validate *validator.Validate
	notify   Notifier
	confirm  Confirmer
	label    string

	mu    sync.Mutex
	items []E
	draft *E

	// token guards against a slow response overwriting a newer one.
	token atomic.Int64
}

func NewStore[E timetable_api.Identifiable](api ResourceApi[E], validate *validator.Validate, notify Notifier, confirm Confirmer, label string) *Store[E] {
	return &Store[E]{api: api, validate: validate, notify: notify, confirm: confirm, label: label}
}

// Load replaces the snapshot wholesale. A response that resolves after a
// newer load started is discarded without touching state. On failure the
// previous snapshot stays visible and the driver is told.
func (store *Store[E]) Load(ctx context.Context) error {
	token := store.token.Add(1)
	items, err := store.api.List(ctx)
	if err != nil {
		logging.Error("failed to load collection", "collection", store.label, "err", err.Error())
		if notifyErr := store.notify.Notify(ctx, fmt.Sprintf("❌ Failed to load %s: %s", store.label, err)); notifyErr != nil {
			logging.Error(notifyErr.Error())
		}
		return err
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	if token != store.token.Load() {
		return nil
	}
	store.items = items
	return nil
}

func (store *Store[E]) Items() []E {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.items
}

func (store *Store[E]) FindById(id int64) (E, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for _, item := range store.items {
		if item.GetId() == id {
			return item, true
		}
	}
	var zero E
	return zero, false
}

// BeginEdit pre-fills the draft from an existing record. No lock is taken on
// the record itself; a concurrent editor elsewhere simply wins at the server.
func (store *Store[E]) BeginEdit(item E) {
	store.mu.Lock()
	defer store.mu.Unlock()
	copied := item
	store.draft = &copied
}

// CancelEdit resets the draft back to the blank "creating new" template.
func (store *Store[E]) CancelEdit() {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.draft = nil
}

// Draft hands out the current draft, allocating the blank template on first
// use so callers can fill it field by field.
func (store *Store[E]) Draft() *E {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.draft == nil {
		store.draft = new(E)
	}
	return store.draft
}

func (store *Store[E]) HasDraft() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.draft != nil
}

// Submit validates the draft locally, then creates (zero id) or replaces
// (existing id) the record. On success the draft is cleared and the snapshot
// reloaded exactly once; on any failure the draft stays untouched so the
// admin can fix and retry, and no reload happens.
func (store *Store[E]) Submit(ctx context.Context) error {
	store.mu.Lock()
	draft := store.draft
	store.mu.Unlock()
	if draft == nil {
		return ErrNoDraft
	}

	if err := store.validate.Struct(draft); err != nil {
		if notifyErr := store.notify.Notify(ctx, fmt.Sprintf("❌ %s is incomplete: fill in every required field before submitting.", store.label)); notifyErr != nil {
			logging.Error(notifyErr.Error())
		}
		return fmt.Errorf("%w: %s", ErrInvalidDraft, err)
	}

	var err error
	if (*draft).GetId() == 0 {
		err = store.api.Create(ctx, draft)
	} else {
		err = store.api.Update(ctx, draft)
	}
	if err != nil {
		logging.Error("failed to submit draft", "collection", store.label, "err", err.Error())
		if notifyErr := store.notify.Notify(ctx, fmt.Sprintf("❌ Failed to save %s: %s", store.label, err)); notifyErr != nil {
			logging.Error(notifyErr.Error())
		}
		return err
	}

	store.mu.Lock()
	store.draft = nil
	store.mu.Unlock()
	return store.Load(ctx)
}

// Remove asks for confirmation, deletes the record and refetches. Declining
// leaves everything as it was.
func (store *Store[E]) Remove(ctx context.Context, id int64, what string) error {
	confirmed, err := store.confirm.Confirm(ctx, fmt.Sprintf("Delete %s?", what))
	if err != nil {
		return fmt.Errorf("failed to confirm removal of %s: %w", what, err)
	}
	if !confirmed {
		return ErrDeclined
	}
	if err := store.api.Delete(ctx, id); err != nil {
		logging.Error("failed to delete record", "collection", store.label, "err", err.Error())
		if notifyErr := store.notify.Notify(ctx, fmt.Sprintf("❌ Failed to delete %s: %s", what, err)); notifyErr != nil {
			logging.Error(notifyErr.Error())
		}
		return err
	}
	return store.Load(ctx)
}
