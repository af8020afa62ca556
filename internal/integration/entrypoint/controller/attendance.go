package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/usecase/attendance"
	"github.com/hubmanager/backend/internal/integration/entrypoint/dto"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AttendanceController handles the monthly attendance grid of a hub.
type AttendanceController struct {
	listUseCase    *attendance.ListAttendanceUseCase
	saveUseCase    *attendance.SaveAttendanceUseCase
	summaryUseCase *attendance.SummaryUseCase
	exportUseCase  *attendance.ExportUseCase
	now            func() time.Time
}

// NewAttendanceController creates a new attendance controller instance.
func NewAttendanceController(
	listUseCase *attendance.ListAttendanceUseCase,
	saveUseCase *attendance.SaveAttendanceUseCase,
	summaryUseCase *attendance.SummaryUseCase,
	exportUseCase *attendance.ExportUseCase,
) *AttendanceController {
	return &AttendanceController{
		listUseCase:    listUseCase,
		saveUseCase:    saveUseCase,
		summaryUseCase: summaryUseCase,
		exportUseCase:  exportUseCase,
		now:            time.Now,
	}
}

// monthInput binds the hub id and month query shared by every read endpoint.
func (c *AttendanceController) monthInput(ctx *gin.Context) (attendance.MonthInput, bool) {
	id, ok := hubID(ctx)
	if !ok {
		return attendance.MonthInput{}, false
	}
	var query dto.MonthQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		bindError(ctx, err)
		return attendance.MonthInput{}, false
	}
	year, month := query.Resolve(c.now())
	return attendance.MonthInput{HubID: id, Year: year, Month: month}, true
}

// List handles GET /hubs/:id/attendance requests.
func (c *AttendanceController) List(ctx *gin.Context) {
	input, ok := c.monthInput(ctx)
	if !ok {
		return
	}
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAttendanceMonthResponse(output))
}

// Save handles POST /hubs/:id/attendance requests.
func (c *AttendanceController) Save(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req dto.SaveAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	entries := make([]attendance.EntryInput, 0, len(req.Entries))
	for _, e := range req.Entries {
		employeeID, _ := uuid.Parse(e.EmployeeID)
		entries = append(entries, attendance.EntryInput{
			EmployeeID: employeeID,
			Date:       e.Date,
			Status:     e.Status,
			ExtraHours: e.ExtraHours,
			Diet:       e.Diet,
		})
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), attendance.SaveAttendanceInput{
		HubID:   id,
		Entries: entries,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Message: "Asistencia guardada", Count: output.Count})
}

// Summary handles GET /hubs/:id/attendance/summary requests.
func (c *AttendanceController) Summary(ctx *gin.Context) {
	input, ok := c.monthInput(ctx)
	if !ok {
		return
	}
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAttendanceSummaryResponse(output))
}

// Export handles GET /hubs/:id/attendance/export requests with an XLSX attachment.
func (c *AttendanceController) Export(ctx *gin.Context) {
	input, ok := c.monthInput(ctx)
	if !ok {
		return
	}
	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+output.FileName+`"`)
	ctx.Data(http.StatusOK, xlsxContentType, output.Content)
}

// SetClock replaces the clock used to default the month query.
func (c *AttendanceController) SetClock(now func() time.Time) {
	c.now = now
}
