package driveapi

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
)

var _ DriveApi = (*DriveApiService)(nil)

type DriveApiService struct {
	api *drive.Service
}

func NewDriveApiService(api *drive.Service) *DriveApiService {
	return &DriveApiService{api: api}
}

const SHEETS_MIME_TYPE = "application/vnd.google-apps.spreadsheet"

func (serv *DriveApiService) DoesSheetExist(ctx context.Context, name string) (SpreadsheetResult, error) {
	files, err := serv.api.Files.List().Context(ctx).Do()
	if err != nil {
		return SpreadsheetResult{}, err
	}
	nextPage := true
	for nextPage {
		for _, file := range files.Files {
			if file.MimeType == SHEETS_MIME_TYPE && file.Name == name {
				return SpreadsheetResult{doesExist: true, spreadsheetId: file.Id}, nil
			}
		}
		if files.NextPageToken == "" {
			nextPage = false
		} else {
			files, err = serv.api.Files.List().Context(ctx).PageToken(files.NextPageToken).Do()
			if err != nil {
				return SpreadsheetResult{}, err
			}
		}
	}
	return SpreadsheetResult{}, nil
}

func (serv *DriveApiService) SetSpreadsheetPermissions(ctx context.Context, spreadsheetId string) error {
	_, err := serv.api.Permissions.Create(spreadsheetId, &drive.Permission{Type: "anyone", Role: "reader"}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to set spreadsheet permissions: %w", err)
	}
	return nil
}
