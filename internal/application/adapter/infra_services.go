package adapter

import (
	"context"
	"time"

	"github.com/hubmanager/backend/internal/domain/entity"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// PhoneNormalizer formats contact phone numbers.
type PhoneNormalizer interface {
	// Normalize returns the E.164 form of a valid number, or the trimmed input otherwise.
	Normalize(raw string) string
}

// RateLimitStore counts attempts per key inside a fixed window.
type RateLimitStore interface {
	// Increment adds one attempt for key and returns the count inside the current window.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)

	// Reset clears the attempts of key.
	Reset(ctx context.Context, key string) error
}

// AttendanceSheet is the data of a monthly attendance export.
type AttendanceSheet struct {
	HubName   string
	Month     valueobject.MonthRange
	Employees []*entity.Employee
	Entries   []*entity.AttendanceEntry
	Summary   []AttendanceSheetRow
}

// AttendanceSheetRow is one employee line of the summary tab.
type AttendanceSheetRow struct {
	EmployeeName    string
	DaysWorked      int
	DaysRest        int
	DaysAbsent      int
	DaysSick        int
	DaysOther       int
	TotalExtraHours float64
	TotalDiets      int
}

// AttendanceExporter renders an attendance sheet into a spreadsheet file.
type AttendanceExporter interface {
	Export(sheet AttendanceSheet) ([]byte, error)
}
