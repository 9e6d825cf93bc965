package timetable_api

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
)

const DefaultExcelName = "timetable.xlsx"

type TimetableService struct {
	client *Client
}

func NewTimetableService(client *Client) *TimetableService {
	return &TimetableService{client: client}
}

func (serv *TimetableService) All(ctx context.Context) ([]entities.ScheduleEntry, error) {
	result := []entities.ScheduleEntry{}
	if err := serv.client.getJson(ctx, "/api/timetable", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (serv *TimetableService) WeekByClass(ctx context.Context, className string) ([]entities.ScheduleEntry, error) {
	result := []entities.ScheduleEntry{}
	path := "/api/timetable/week/class/" + url.PathEscape(className)
	if err := serv.client.getJson(ctx, path, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (serv *TimetableService) WeekByTeacher(ctx context.Context, teacherId int64) ([]entities.ScheduleEntry, error) {
	result := []entities.ScheduleEntry{}
	path := fmt.Sprintf("/api/timetable/week/teacher/%d", teacherId)
	if err := serv.client.getJson(ctx, path, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SubjectCounts is the server-side aggregate of one classroom's week,
// subject name to number of occurrences.
func (serv *TimetableService) SubjectCounts(ctx context.Context, className string) (map[string]int, error) {
	counts := map[string]int{}
	path := "/api/timetable/subject-count?className=" + url.QueryEscape(className)
	if err := serv.client.getJson(ctx, path, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (serv *TimetableService) Generate(ctx context.Context) (string, error) {
	return serv.client.sendJson(ctx, http.MethodPost, "/api/timetable/generate", nil)
}

func (serv *TimetableService) GenerateBetween(ctx context.Context, startDate, endDate string) (string, error) {
	path := fmt.Sprintf("/api/timetable/generate-between?startDate=%s&endDate=%s",
		url.QueryEscape(startDate), url.QueryEscape(endDate))
	return serv.client.sendJson(ctx, http.MethodPost, path, nil)
}

// DownloadLatestExcel fetches the newest generated spreadsheet. The file name
// comes from the content-disposition header when one is present and parsable.
func (serv *TimetableService) DownloadLatestExcel(ctx context.Context) (string, []byte, error) {
	content, headers, err := serv.client.download(ctx, "/api/timetable/download-latest-excel")
	if err != nil {
		return "", nil, err
	}
	return fileNameFromDisposition(headers.Get("Content-Disposition")), content, nil
}

func (serv *TimetableService) Archives(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := serv.client.getJson(ctx, "/api/timetable/archives", &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (serv *TimetableService) DownloadArchive(ctx context.Context, fileName string) ([]byte, error) {
	content, _, err := serv.client.download(ctx, "/api/timetable/download/"+url.PathEscape(fileName))
	return content, err
}

func fileNameFromDisposition(header string) string {
	if header == "" {
		return DefaultExcelName
	}
	if _, params, err := mime.ParseMediaType(header); err == nil {
		if name := params["filename"]; name != "" {
			return name
		}
	}
	// Fall back to a crude scan for servers that emit bare filename=... values.
	if _, after, found := strings.Cut(header, "filename="); found {
		name := strings.Trim(strings.TrimSpace(after), `"`)
		if name != "" {
			return name
		}
	}
	return DefaultExcelName
}
