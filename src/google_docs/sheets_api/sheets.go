package sheetsapi

import (
	"context"
	"fmt"

	driveapi "github.com/mgowdara/school_timetable_bot/src/google_docs/drive_api"
	"github.com/mgowdara/school_timetable_bot/src/schedule"
	"google.golang.org/api/sheets/v4"
)

const PUBLISHED_TITLE = "School timetable"

var _ SheetsApi = (*SheetsApiService)(nil)

// SheetsApiService maintains one public spreadsheet with a sheet per
// classroom grid. Publishing is idempotent: the spreadsheet is created on
// first use and rewritten in place afterwards.
type SheetsApiService struct {
	api   *sheets.Service
	drive driveapi.DriveApi
}

func NewSheetsApiService(api *sheets.Service, drive driveapi.DriveApi) *SheetsApiService {
	return &SheetsApiService{api: api, drive: drive}
}

func (serv *SheetsApiService) PublishAll(ctx context.Context, grids []schedule.Grid) (SheetUrl, error) {
	if len(grids) == 0 {
		return "", fmt.Errorf("nothing to publish")
	}
	spreadsheetId, err := serv.findOrCreateSpreadsheet(ctx, grids)
	if err != nil {
		return "", err
	}
	if err = serv.ensureSheets(ctx, spreadsheetId, grids); err != nil {
		return "", err
	}
	for i := range grids {
		if err = serv.writeGrid(ctx, spreadsheetId, &grids[i]); err != nil {
			return "", err
		}
	}
	return serv.createSheetUrl(spreadsheetId), nil
}

func (serv *SheetsApiService) findOrCreateSpreadsheet(ctx context.Context, grids []schedule.Grid) (string, error) {
	result, err := serv.drive.DoesSheetExist(ctx, PUBLISHED_TITLE)
	if err != nil {
		return "", fmt.Errorf("failed to look up published spreadsheet: %w", err)
	}
	if result.DoesExist() {
		return result.SpreadsheetId(), nil
	}

	newSheet := sheets.Spreadsheet{Properties: &sheets.SpreadsheetProperties{Title: PUBLISHED_TITLE}}
	for i := range grids {
		newSheet.Sheets = append(newSheet.Sheets, &sheets.Sheet{
			Properties: &sheets.SheetProperties{Title: grids[i].Title},
		})
	}
	created, err := serv.api.Spreadsheets.Create(&newSheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create published spreadsheet: %w", err)
	}
	if err = serv.drive.SetSpreadsheetPermissions(ctx, created.SpreadsheetId); err != nil {
		return "", err
	}
	return created.SpreadsheetId, nil
}

// ensureSheets adds sheets for classrooms that appeared since the
// spreadsheet was created. Stale sheets are left alone.
func (serv *SheetsApiService) ensureSheets(ctx context.Context, spreadsheetId string, grids []schedule.Grid) error {
	spreadsheet, err := serv.api.Spreadsheets.Get(spreadsheetId).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get published spreadsheet: %w", err)
	}
	existing := map[string]bool{}
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			existing[sheet.Properties.Title] = true
		}
	}

	update := sheets.BatchUpdateSpreadsheetRequest{}
	for i := range grids {
		if existing[grids[i].Title] {
			continue
		}
		update.Requests = append(update.Requests, &sheets.Request{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: grids[i].Title},
			},
		})
	}
	if len(update.Requests) == 0 {
		return nil
	}
	if _, err = serv.api.Spreadsheets.BatchUpdate(spreadsheetId, &update).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to add sheets to published spreadsheet: %w", err)
	}
	return nil
}

func (serv *SheetsApiService) writeGrid(ctx context.Context, spreadsheetId string, grid *schedule.Grid) error {
	values := [][]any{}
	header := []any{grid.Title}
	for _, day := range grid.Days {
		header = append(header, day)
	}
	values = append(values, header)
	for i, period := range grid.Periods {
		row := []any{period}
		for _, cell := range grid.Cells[i] {
			row = append(row, cell)
		}
		values = append(values, row)
	}

	valueRange := sheets.ValueRange{Values: values}
	_, err := serv.api.Spreadsheets.Values.
		Update(spreadsheetId, fmt.Sprintf("'%s'!A1", grid.Title), &valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write grid %s: %w", grid.Title, err)
	}
	return nil
}

func (serv *SheetsApiService) createSheetUrl(spreadsheetId string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit#gid=0", spreadsheetId)
}
