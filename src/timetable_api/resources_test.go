package timetable_api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mgowdara/school_timetable_bot/src/timetable_api"
	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
)

func TestResourceServiceCrudPaths(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"id":1,"name":"5A"}]`))
		case http.MethodPost:
			var payload entities.Classroom
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name != "5B" {
				t.Errorf(`POST body decoded to %+v, %v`, payload, err)
			}
			w.Write([]byte("Created"))
		default:
			w.Write([]byte("OK"))
		}
	}))
	t.Cleanup(server.Close)

	client := timetable_api.NewClient(server.URL, 5*time.Second)
	service := timetable_api.NewResourceService[entities.Classroom](client, "/api/classrooms")
	ctx := context.Background()

	items, err := service.List(ctx)
	if err != nil || len(items) != 1 || items[0].Name != "5A" {
		t.Errorf(`List = %v, %v`, items, err)
	}
	if gotPath != "/api/classrooms" {
		t.Errorf(`List hit %q`, gotPath)
	}

	if err = service.Create(ctx, &entities.Classroom{Name: "5B"}); err != nil {
		t.Errorf(`Create = %v, want nil`, err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/classrooms" {
		t.Errorf(`Create issued %s %s`, gotMethod, gotPath)
	}

	if err = service.Update(ctx, &entities.Classroom{Id: 7, Name: "5B"}); err != nil {
		t.Errorf(`Update = %v, want nil`, err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/classrooms/7" {
		t.Errorf(`Update issued %s %s, want PUT /api/classrooms/7`, gotMethod, gotPath)
	}

	if err = service.Delete(ctx, 7); err != nil {
		t.Errorf(`Delete = %v, want nil`, err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/classrooms/7" {
		t.Errorf(`Delete issued %s %s, want DELETE /api/classrooms/7`, gotMethod, gotPath)
	}
}

func TestResourceServiceSurfacesErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "name already taken", http.StatusConflict)
	}))
	t.Cleanup(server.Close)

	client := timetable_api.NewClient(server.URL, 5*time.Second)
	service := timetable_api.NewResourceService[entities.Classroom](client, "/api/classrooms")

	err := service.Create(context.Background(), &entities.Classroom{Name: "5A"})
	if err == nil {
		t.Fatal(`Create = nil on a 409 answer, want an error`)
	}
	if got := err.Error(); !strings.Contains(got, "409") || !strings.Contains(got, "name already taken") {
		t.Errorf(`error %q does not carry the status and body`, got)
	}
}
