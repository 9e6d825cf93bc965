package timetable_api

import (
	"context"
	"net/http"

	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
)

type AbsencesService struct {
	client *Client
}

func NewAbsencesService(client *Client) *AbsencesService {
	return &AbsencesService{client: client}
}

func (serv *AbsencesService) ListFullDay(ctx context.Context) ([]entities.Absence, error) {
	records := []entities.Absence{}
	if err := serv.client.getJson(ctx, "/api/absences", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (serv *AbsencesService) ListPartialDay(ctx context.Context) ([]entities.Absence, error) {
	records := []entities.Absence{}
	if err := serv.client.getJson(ctx, "/api/absences/halfday", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// MarkFullDay records a whole-day absence. The status string comes from the
// server and is shown to the admin verbatim.
func (serv *AbsencesService) MarkFullDay(ctx context.Context, record *entities.Absence) (string, error) {
	return serv.client.sendJson(ctx, http.MethodPost, "/api/absences/mark", record)
}

func (serv *AbsencesService) MarkPartialDay(ctx context.Context, record *entities.Absence) (string, error) {
	return serv.client.sendJson(ctx, http.MethodPost, "/api/absences/halfday", record)
}
