package stores_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mgowdara/school_timetable_bot/src/stores"
	"github.com/mgowdara/school_timetable_bot/src/timetable_api"
	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
)

type classroomApiMock struct {
	items []entities.Classroom

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	listErr   error
	createErr error
	deleteErr error
}

func (api *classroomApiMock) List(ctx context.Context) ([]entities.Classroom, error) {
	api.listCalls++
	if api.listErr != nil {
		return nil, api.listErr
	}
	return api.items, nil
}

func (api *classroomApiMock) Create(ctx context.Context, item *entities.Classroom) error {
	api.createCalls++
	return api.createErr
}

func (api *classroomApiMock) Update(ctx context.Context, item *entities.Classroom) error {
	api.updateCalls++
	return nil
}

func (api *classroomApiMock) Delete(ctx context.Context, id int64) error {
	api.deleteCalls++
	return api.deleteErr
}

func silentNotifier() stores.Notifier {
	return stores.NotifierFunc(func(ctx context.Context, message string) error { return nil })
}

func answeringConfirmer(answer bool) stores.Confirmer {
	return stores.ConfirmerFunc(func(ctx context.Context, message string) (bool, error) { return answer, nil })
}

func newClassroomStore(api *classroomApiMock, confirm bool) *stores.Store[entities.Classroom] {
	return stores.NewStore[entities.Classroom](api, validator.New(), silentNotifier(), answeringConfirmer(confirm), "classroom")
}

func TestSubmitWithoutDraft(t *testing.T) {
	store := newClassroomStore(&classroomApiMock{}, true)
	if err := store.Submit(context.Background()); !errors.Is(err, stores.ErrNoDraft) {
		t.Errorf(`Submit() = %v, want ErrNoDraft`, err)
	}
}

func TestSubmitInvalidDraftKeepsDraft(t *testing.T) {
	api := &classroomApiMock{}
	store := newClassroomStore(api, true)
	store.Draft() // blank template misses the required name

	err := store.Submit(context.Background())
	if !errors.Is(err, stores.ErrInvalidDraft) {
		t.Fatalf(`Submit() = %v, want ErrInvalidDraft`, err)
	}
	if api.createCalls != 0 || api.listCalls != 0 {
		t.Errorf(`invalid draft still reached the server: %d creates, %d lists`, api.createCalls, api.listCalls)
	}
	if !store.HasDraft() {
		t.Error(`draft was cleared on validation failure`)
	}
}

func TestSubmitCreatesAndReloadsOnce(t *testing.T) {
	api := &classroomApiMock{items: []entities.Classroom{{Id: 1, Name: "5A"}}}
	store := newClassroomStore(api, true)
	store.Draft().Name = "5A"

	if err := store.Submit(context.Background()); err != nil {
		t.Fatalf(`Submit() = %v, want nil`, err)
	}
	if api.createCalls != 1 {
		t.Errorf(`Create called %d times, want 1`, api.createCalls)
	}
	if api.listCalls != 1 {
		t.Errorf(`List called %d times after submit, want 1`, api.listCalls)
	}
	if store.HasDraft() {
		t.Error(`draft survived a successful submit`)
	}
	if _, found := store.FindById(1); !found {
		t.Error(`snapshot was not refreshed after submit`)
	}
}

func TestSubmitUpdatesExistingRecord(t *testing.T) {
	api := &classroomApiMock{}
	store := newClassroomStore(api, true)
	store.BeginEdit(entities.Classroom{Id: 7, Name: "5A"})
	store.Draft().Name = "5A renamed"

	if err := store.Submit(context.Background()); err != nil {
		t.Fatalf(`Submit() = %v, want nil`, err)
	}
	if api.updateCalls != 1 || api.createCalls != 0 {
		t.Errorf(`got %d updates and %d creates, want 1 and 0`, api.updateCalls, api.createCalls)
	}
}

func TestSubmitServerFailureKeepsDraft(t *testing.T) {
	api := &classroomApiMock{createErr: errors.New("boom")}
	store := newClassroomStore(api, true)
	store.Draft().Name = "5A"

	if err := store.Submit(context.Background()); err == nil {
		t.Fatal(`Submit() = nil, want the server error`)
	}
	if !store.HasDraft() {
		t.Error(`draft was cleared on server failure`)
	}
	if api.listCalls != 0 {
		t.Errorf(`List called %d times after a failed submit, want 0`, api.listCalls)
	}
}

func TestRemoveDeclined(t *testing.T) {
	api := &classroomApiMock{}
	store := newClassroomStore(api, false)

	if err := store.Remove(context.Background(), 1, "classroom 5A"); !errors.Is(err, stores.ErrDeclined) {
		t.Errorf(`Remove() = %v, want ErrDeclined`, err)
	}
	if api.deleteCalls != 0 {
		t.Errorf(`Delete called %d times after a declined confirmation, want 0`, api.deleteCalls)
	}
}

func TestRemoveConfirmedReloads(t *testing.T) {
	api := &classroomApiMock{}
	store := newClassroomStore(api, true)

	if err := store.Remove(context.Background(), 1, "classroom 5A"); err != nil {
		t.Fatalf(`Remove() = %v, want nil`, err)
	}
	if api.deleteCalls != 1 || api.listCalls != 1 {
		t.Errorf(`got %d deletes and %d lists, want 1 and 1`, api.deleteCalls, api.listCalls)
	}
}

func TestLoadFailureKeepsSnapshot(t *testing.T) {
	api := &classroomApiMock{items: []entities.Classroom{{Id: 1, Name: "5A"}}}
	store := newClassroomStore(api, true)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf(`Load() = %v, want nil`, err)
	}

	api.listErr = errors.New("server down")
	if err := store.Load(context.Background()); err == nil {
		t.Fatal(`Load() = nil, want the server error`)
	}
	if _, found := store.FindById(1); !found {
		t.Error(`previous snapshot was dropped on a failed load`)
	}
}

// End-to-end against a real HTTP server: the store drives the actual API
// client instead of a mock.
func TestStoreRoundTripOverHttp(t *testing.T) {
	var (
		mu    sync.Mutex
		rooms = []entities.Classroom{}
		next  = int64(1)
	)
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case request.Method == http.MethodGet:
			json.NewEncoder(writer).Encode(rooms)
		case request.Method == http.MethodPost:
			room := entities.Classroom{}
			json.NewDecoder(request.Body).Decode(&room)
			room.Id = next
			next++
			rooms = append(rooms, room)
			writer.Write([]byte("Classroom created"))
		case request.Method == http.MethodDelete:
			rooms = rooms[:0]
			writer.Write([]byte("Classroom deleted"))
		default:
			writer.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer server.Close()

	client := timetable_api.NewClient(server.URL, time.Second)
	api := timetable_api.NewResourceService[entities.Classroom](client, "/api/classrooms")
	store := stores.NewStore[entities.Classroom](api, validator.New(), silentNotifier(), answeringConfirmer(true), "classroom")

	store.Draft().Name = "5A"
	if err := store.Submit(context.Background()); err != nil {
		t.Fatalf(`Submit() = %v, want nil`, err)
	}
	created, found := store.FindById(1)
	if !found || created.Name != "5A" {
		t.Fatalf(`FindById(1) = %+v, %t, want classroom "5A"`, created, found)
	}

	if err := store.Remove(context.Background(), 1, "classroom 5A"); err != nil {
		t.Fatalf(`Remove() = %v, want nil`, err)
	}
	if _, found := store.FindById(1); found {
		t.Error(`classroom still listed after a confirmed delete`)
	}
}
