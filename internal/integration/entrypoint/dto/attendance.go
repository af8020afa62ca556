package dto

import (
	"time"

	"github.com/hubmanager/backend/internal/application/usecase/attendance"
	"github.com/hubmanager/backend/internal/domain/entity"
)

// MonthQuery binds the year and month query parameters of monthly views.
// Absent values resolve to the current month. Range checks happen in the use cases.
type MonthQuery struct {
	Year    *int   `form:"year"`
	Month   *int   `form:"month"`
	RouteID string `form:"route_id" binding:"omitempty,uuid"`
}

// Resolve fills the missing year or month from now.
func (q MonthQuery) Resolve(now time.Time) (year, month int) {
	year, month = now.Year(), int(now.Month())
	if q.Year != nil {
		year = *q.Year
	}
	if q.Month != nil {
		month = *q.Month
	}
	return year, month
}

// AttendanceEntryRequest is one employee day of a bulk attendance save.
type AttendanceEntryRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required"`
	Status     string  `json:"status"`
	ExtraHours float64 `json:"extra_hours" binding:"min=0"`
	Diet       int     `json:"diet" binding:"oneof=0 1"`
}

// SaveAttendanceRequest represents the request body for a bulk attendance save.
type SaveAttendanceRequest struct {
	Entries []AttendanceEntryRequest `json:"entries" binding:"dive"`
}

// AttendanceEntryResponse represents one stored attendance day.
type AttendanceEntryResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	HubID      string    `json:"hub_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	ExtraHours float64   `json:"extra_hours"`
	Diet       int       `json:"diet"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AttendanceMonthResponse is the attendance grid of a month.
type AttendanceMonthResponse struct {
	Employees   []EmployeeResponse                 `json:"employees"`
	Attendance  map[string]AttendanceEntryResponse `json:"attendance"`
	DaysInMonth int                                `json:"days_in_month"`
}

// CountResponse reports how many items a bulk operation stored.
type CountResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// AttendanceSummaryRow is the monthly totals of one employee.
type AttendanceSummaryRow struct {
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	DaysWorked      int     `json:"days_worked"`
	DaysRest        int     `json:"days_rest"`
	DaysAbsent      int     `json:"days_absent"`
	DaysSick        int     `json:"days_sick"`
	DaysOther       int     `json:"days_other"`
	TotalExtraHours float64 `json:"total_extra_hours"`
	TotalDiets      int     `json:"total_diets"`
}

// AttendanceSummaryResponse wraps the monthly summary rows.
type AttendanceSummaryResponse struct {
	Year    int                    `json:"year"`
	Month   int                    `json:"month"`
	Summary []AttendanceSummaryRow `json:"summary"`
}

// ToAttendanceEntryResponse converts a domain AttendanceEntry.
func ToAttendanceEntryResponse(a *entity.AttendanceEntry) AttendanceEntryResponse {
	return AttendanceEntryResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		HubID:      a.HubID.String(),
		Date:       a.Date,
		Status:     string(a.Status),
		ExtraHours: a.ExtraHours,
		Diet:       a.Diet,
		UpdatedAt:  a.UpdatedAt,
	}
}

// ToAttendanceMonthResponse converts the month listing output.
func ToAttendanceMonthResponse(out *attendance.ListAttendanceOutput) AttendanceMonthResponse {
	grid := make(map[string]AttendanceEntryResponse, len(out.Entries))
	for key, entry := range out.Entries {
		grid[key] = ToAttendanceEntryResponse(entry)
	}
	return AttendanceMonthResponse{
		Employees:   ToEmployeeListResponse(out.Employees),
		Attendance:  grid,
		DaysInMonth: out.Month.Days(),
	}
}

// ToAttendanceSummaryResponse converts the summary output.
func ToAttendanceSummaryResponse(out *attendance.SummaryOutput) AttendanceSummaryResponse {
	rows := make([]AttendanceSummaryRow, 0, len(out.Summary))
	for _, s := range out.Summary {
		rows = append(rows, AttendanceSummaryRow{
			EmployeeID:      s.EmployeeID.String(),
			EmployeeName:    s.EmployeeName,
			DaysWorked:      s.DaysWorked,
			DaysRest:        s.DaysRest,
			DaysAbsent:      s.DaysAbsent,
			DaysSick:        s.DaysSick,
			DaysOther:       s.DaysOther,
			TotalExtraHours: s.TotalExtraHours,
			TotalDiets:      s.TotalDiets,
		})
	}
	return AttendanceSummaryResponse{Year: out.Month.Year, Month: out.Month.Month, Summary: rows}
}
