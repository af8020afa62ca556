// Package valueobject contains domain value objects for the Hub Manager system.
package valueobject

import (
	"fmt"
	"time"

	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// DateLayout is the zero padded layout every dated entry is stored with.
// Zero padding makes lexicographic and chronological order identical.
const DateLayout = "2006-01-02"

// DateRange is an inclusive [Start, End] span of YYYY-MM-DD dates.
type DateRange struct {
	Start string
	End   string
}

// Contains reports whether the YYYY-MM-DD date falls inside the range.
func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

// MonthRange is the inclusive date range of one calendar month.
type MonthRange struct {
	DateRange
	Year  int
	Month int
}

// NewMonthRange resolves [YYYY-MM-01, YYYY-MM-<last day>] for the given month.
func NewMonthRange(year, month int) (MonthRange, error) {
	if month < 1 || month > 12 {
		return MonthRange{}, domainerror.NewInvalidMonthError()
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return MonthRange{
		DateRange: DateRange{Start: first.Format(DateLayout), End: last.Format(DateLayout)},
		Year:      year,
		Month:     month,
	}, nil
}

// Days returns the number of days in the month.
func (r MonthRange) Days() int {
	last, _ := time.Parse(DateLayout, r.End)
	return last.Day()
}

// DateOf returns the YYYY-MM-DD string of the given day of the month.
func (r MonthRange) DateOf(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", r.Year, r.Month, day)
}

// YearRange is the inclusive [YYYY-01-01, YYYY-12-31] range.
func YearRange(year int) DateRange {
	return DateRange{Start: fmt.Sprintf("%04d-01-01", year), End: fmt.Sprintf("%04d-12-31", year)}
}

// ValidateDate checks that value is a real calendar date in YYYY-MM-DD form.
func ValidateDate(value string) error {
	if _, err := time.Parse(DateLayout, value); err != nil {
		return domainerror.NewInvalidDateFormatError(value)
	}
	return nil
}
