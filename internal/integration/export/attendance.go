// Package export renders reports into spreadsheet files.
package export

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/hubmanager/backend/internal/application/adapter"
)

const (
	gridSheet    = "Asistencia"
	summarySheet = "Resumen"
)

var summaryHeader = []interface{}{
	"Empleado", "Trabajados", "Descanso", "Ausencias", "Baja", "Otros", "Horas extra", "Dietas",
}

// AttendanceExporter writes an xlsx workbook with a daily grid and a summary tab.
type AttendanceExporter struct{}

// NewAttendanceExporter creates a new exporter.
func NewAttendanceExporter() *AttendanceExporter {
	return &AttendanceExporter{}
}

// Export renders sheet into the bytes of an xlsx file.
func (e *AttendanceExporter) Export(sheet adapter.AttendanceSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", gridSheet); err != nil {
		return nil, err
	}
	if err := writeGrid(f, sheet); err != nil {
		return nil, fmt.Errorf("export: attendance grid: %w", err)
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	if err := writeSummary(f, sheet); err != nil {
		return nil, fmt.Errorf("export: attendance summary: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeGrid lays out one row per employee and one column per day of the month.
// Cells hold the status code, with the extra hours appended when present.
func writeGrid(f *excelize.File, sheet adapter.AttendanceSheet) error {
	title := fmt.Sprintf("%s - %04d/%02d", sheet.HubName, sheet.Month.Year, sheet.Month.Month)
	if err := f.SetCellValue(gridSheet, "A1", title); err != nil {
		return err
	}

	days := sheet.Month.Days()
	header := make([]interface{}, 0, days+1)
	header = append(header, "Empleado")
	for day := 1; day <= days; day++ {
		header = append(header, day)
	}
	if err := f.SetSheetRow(gridSheet, "A3", &header); err != nil {
		return err
	}

	type key struct {
		employee uuid.UUID
		date     string
	}
	cells := make(map[key]string, len(sheet.Entries))
	for _, entry := range sheet.Entries {
		value := string(entry.Status)
		if entry.ExtraHours > 0 {
			value = fmt.Sprintf("%s +%gh", value, entry.ExtraHours)
		}
		cells[key{entry.EmployeeID, entry.Date}] = value
	}

	for i, emp := range sheet.Employees {
		row := make([]interface{}, 0, days+1)
		row = append(row, emp.Name)
		for day := 1; day <= days; day++ {
			row = append(row, cells[key{emp.ID, sheet.Month.DateOf(day)}])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+4)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(gridSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(gridSheet, "A", "A", 28)
}

func writeSummary(f *excelize.File, sheet adapter.AttendanceSheet) error {
	if err := f.SetSheetRow(summarySheet, "A1", &summaryHeader); err != nil {
		return err
	}
	for i, s := range sheet.Summary {
		row := []interface{}{
			s.EmployeeName, s.DaysWorked, s.DaysRest, s.DaysAbsent, s.DaysSick, s.DaysOther, s.TotalExtraHours, s.TotalDiets,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(summarySheet, "A", "A", 28)
}

var _ adapter.AttendanceExporter = (*AttendanceExporter)(nil)
