package excel

import (
	"fmt"
	"strings"

	"github.com/mgowdara/school_timetable_bot/src/schedule"
	"github.com/xuri/excelize/v2"
)

// Exporter writes projected weekly grids into an xlsx workbook, one sheet
// per grid.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

func (*Exporter) BuildWorkbook(grids []schedule.Grid) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	for i, grid := range grids {
		sheet := sheetName(grid.Title, i)
		if i == 0 {
			if err := file.SetSheetName(file.GetSheetName(0), sheet); err != nil {
				return nil, fmt.Errorf("failed to rename first sheet: %w", err)
			}
		} else {
			if _, err := file.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("failed to add sheet %s: %w", sheet, err)
			}
		}
		if err := writeGrid(file, sheet, &grid); err != nil {
			return nil, err
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeGrid(file *excelize.File, sheet string, grid *schedule.Grid) error {
	header := append([]string{grid.Title}, grid.Days...)
	if err := writeRow(file, sheet, 1, header); err != nil {
		return err
	}
	for i, period := range grid.Periods {
		row := append([]string{period}, grid.Cells[i]...)
		if err := writeRow(file, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(file *excelize.File, sheet string, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to name cell (%d,%d): %w", col+1, row, err)
		}
		if err = file.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s on %s: %w", cell, sheet, err)
		}
	}
	return nil
}

// sheetName keeps titles within the 31-char xlsx limit and strips the
// characters the format forbids.
func sheetName(title string, index int) string {
	replacer := strings.NewReplacer(":", "", "\\", "", "/", "", "?", "", "*", "", "[", "", "]", "")
	name := strings.TrimSpace(replacer.Replace(title))
	if name == "" {
		name = fmt.Sprintf("Sheet%d", index+1)
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
