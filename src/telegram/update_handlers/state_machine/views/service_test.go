package views_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mgowdara/school_timetable_bot/src/repository/memory"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine/views"
	"github.com/mgowdara/school_timetable_bot/src/timetable_api"
	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// fakeTelegram stands in for the bot API: it answers getMe so the client
// constructor succeeds and records every sendMessage call.
type fakeTelegram struct {
	mu   sync.Mutex
	sent []url.Values
}

func (fake *fakeTelegram) handler() http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		request.ParseForm()
		writer.Header().Set("Content-Type", "application/json")
		switch path.Base(request.URL.Path) {
		case "getMe":
			fmt.Fprint(writer, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"bot"}}`)
		case "sendMessage":
			fake.mu.Lock()
			fake.sent = append(fake.sent, request.PostForm)
			fake.mu.Unlock()
			fmt.Fprint(writer, `{"ok":true,"result":{"message_id":1,"chat":{"id":1}}}`)
		default:
			fmt.Fprint(writer, `{"ok":true,"result":{}}`)
		}
	}
}

func (fake *fakeTelegram) lastMessage(t *testing.T) url.Values {
	t.Helper()
	fake.mu.Lock()
	defer fake.mu.Unlock()
	if len(fake.sent) == 0 {
		t.Fatal(`no message was sent`)
	}
	return fake.sent[len(fake.sent)-1]
}

// schedulingServer serves canned endpoint bodies and records which paths
// were requested.
type schedulingServer struct {
	mu        sync.Mutex
	requested []string
	bodies    map[string]string
}

func (server *schedulingServer) handler() http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		server.mu.Lock()
		server.requested = append(server.requested, request.URL.Path)
		body, known := server.bodies[request.URL.Path]
		server.mu.Unlock()
		if !known {
			writer.WriteHeader(http.StatusNotFound)
			return
		}
		writer.Header().Set("Content-Type", "application/json")
		fmt.Fprint(writer, body)
	}
}

func (server *schedulingServer) sawRequest(path string) bool {
	server.mu.Lock()
	defer server.mu.Unlock()
	for _, requested := range server.requested {
		if requested == path {
			return true
		}
	}
	return false
}

// The full timetable spans two weeks: History on Monday 2026-09-07 and
// Maths on Monday 2026-09-14, both P1 in 5A with teacher Rao. The week
// endpoints return only the current week.
const (
	pastWeekEntry    = `{"id":1,"date":"2026-09-07","period":{"id":1,"name":"P1"},"classroom":{"id":1,"name":"5A"},"subject":{"id":1,"name":"History"},"teacher":{"id":7,"name":"Rao"}}`
	currentWeekEntry = `{"id":2,"date":"2026-09-14","period":{"id":1,"name":"P1"},"classroom":{"id":1,"name":"5A"},"subject":{"id":2,"name":"Maths"},"teacher":{"id":7,"name":"Rao"}}`
)

func newViewsFixture(t *testing.T) (*views.Service, *tgutils.Bot, *fakeTelegram, *schedulingServer) {
	t.Helper()
	telegram := &fakeTelegram{}
	telegramServer := httptest.NewServer(telegram.handler())
	t.Cleanup(telegramServer.Close)
	botApi, err := tgbotapi.NewBotAPIWithAPIEndpoint("test-token", telegramServer.URL+"/bot%s/%s")
	if err != nil {
		t.Fatalf(`NewBotAPIWithAPIEndpoint() = %v, want nil`, err)
	}
	bot := tgutils.NewBot(botApi)

	backend := &schedulingServer{bodies: map[string]string{
		"/api/timetable":                "[" + pastWeekEntry + "," + currentWeekEntry + "]",
		"/api/timetable/week/class/5A":  "[" + currentWeekEntry + "]",
		"/api/timetable/week/teacher/7": "[" + currentWeekEntry + "]",
		"/api/teachers":                 `[{"id":7,"name":"Rao","availablePeriods":[],"subjectsAndClasses":[{"subject":"Maths","classLabel":"5A"}]}]`,
	}}
	backendServer := httptest.NewServer(backend.handler())
	t.Cleanup(backendServer.Close)

	client := timetable_api.NewClient(backendServer.URL, time.Second)
	service := views.NewService(bot,
		timetable_api.NewTimetableService(client),
		timetable_api.NewResourceService[entities.Classroom](client, "/api/classrooms"),
		timetable_api.NewResourceService[entities.Period](client, "/api/periods"),
		timetable_api.NewResourceService[entities.Teacher](client, "/api/teachers"))
	return service, bot, telegram, backend
}

func chatMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{Text: text, Chat: &tgbotapi.Chat{ID: 99}}
}

func TestClassroomGridIsWeekScoped(t *testing.T) {
	service, _, telegram, backend := newViewsFixture(t)

	if err := service.SendClassroomGrid(context.Background(), 99, "5A"); err != nil {
		t.Fatalf(`SendClassroomGrid() = %v, want nil`, err)
	}
	if !backend.sawRequest("/api/timetable/week/class/5A") {
		t.Error(`the grid did not come from the classroom week endpoint`)
	}
	text := telegram.lastMessage(t).Get("text")
	if !strings.Contains(text, "Maths (Rao)") {
		t.Errorf(`grid %q is missing the current week's lesson`, text)
	}
	if strings.Contains(text, "History") {
		t.Errorf(`grid %q shows a lesson from another week`, text)
	}
}

func TestTeacherGridIsWeekScoped(t *testing.T) {
	service, _, telegram, backend := newViewsFixture(t)

	if err := service.SendTeacherGrid(context.Background(), 99, "Rao"); err != nil {
		t.Fatalf(`SendTeacherGrid() = %v, want nil`, err)
	}
	if !backend.sawRequest("/api/timetable/week/teacher/7") {
		t.Error(`the grid did not come from the teacher week endpoint`)
	}
	text := telegram.lastMessage(t).Get("text")
	if !strings.Contains(text, "Maths (5A)") {
		t.Errorf(`grid %q is missing the current week's lesson`, text)
	}
	if strings.Contains(text, "History") {
		t.Errorf(`grid %q shows a lesson from another week`, text)
	}
}

func TestSubjectLoadsFallbackIsWeekScoped(t *testing.T) {
	service, _, telegram, backend := newViewsFixture(t)

	// No subject-count endpoint configured, so the service recomputes
	// locally; the recomputation must cover one week, not the whole
	// timetable.
	if err := service.SendSubjectLoads(context.Background(), 99, "5A"); err != nil {
		t.Fatalf(`SendSubjectLoads() = %v, want nil`, err)
	}
	if !backend.sawRequest("/api/timetable/week/class/5A") {
		t.Error(`the fallback did not use the classroom week endpoint`)
	}
	text := telegram.lastMessage(t).Get("text")
	if !strings.Contains(text, "Maths: 1") || !strings.Contains(text, "Total: 1") {
		t.Errorf(`loads message %q, want one Maths lesson and a total of 1`, text)
	}
	if strings.Contains(text, "History") {
		t.Errorf(`loads message %q counts a lesson from another week`, text)
	}
}

func TestFilterFormFlow(t *testing.T) {
	service, bot, telegram, _ := newViewsFixture(t)
	cache := memory.NewHandlersCacheRepository()
	ctx := context.Background()

	if err := views.StartFilter(ctx, cache, bot, service, 99); err != nil {
		t.Fatalf(`StartFilter() = %v, want nil`, err)
	}
	info, err := cache.GetState(ctx, 99)
	if err != nil || info.State() != constants.FILTER_CLASSROOM_STATE {
		t.Fatalf(`state after StartFilter = %q, %v, want %q`, info.State(), err, constants.FILTER_CLASSROOM_STATE)
	}
	markup := telegram.lastMessage(t).Get("reply_markup")
	if !strings.Contains(markup, "5A") || !strings.Contains(markup, views.SKIP_ANSWER) {
		t.Errorf(`classroom prompt keyboard %q is missing the known options`, markup)
	}

	if err = views.NewFilterClassroomState(bot, cache, service).Handle(ctx, chatMessage("5A")); err != nil {
		t.Fatalf(`classroom Handle() = %v, want nil`, err)
	}
	if markup = telegram.lastMessage(t).Get("reply_markup"); !strings.Contains(markup, "Rao") {
		t.Errorf(`teacher prompt keyboard %q is missing the known teachers`, markup)
	}
	if err = views.NewFilterTeacherState(bot, cache, service).Handle(ctx, chatMessage(views.SKIP_ANSWER)); err != nil {
		t.Fatalf(`teacher Handle() = %v, want nil`, err)
	}
	if err = views.NewFilterSubjectState(bot, cache, service).Handle(ctx, chatMessage("History")); err != nil {
		t.Fatalf(`subject Handle() = %v, want nil`, err)
	}

	text := telegram.lastMessage(t).Get("text")
	if !strings.Contains(text, "History") || strings.Contains(text, "Maths") {
		t.Errorf(`filtered list %q, want only the History lesson`, text)
	}
	if info, err = cache.GetState(ctx, 99); err != nil || info.State() != constants.IDLE_STATE {
		t.Errorf(`state after the form = %q, %v, want idle`, info.State(), err)
	}
	if saved, _ := cache.GetInfo(ctx, 99); saved != "" {
		t.Errorf(`form %q was left behind in the cache`, saved)
	}
}
