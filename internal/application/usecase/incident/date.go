package incident

import (
	"strings"
	"time"

	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

var incidentDateLayouts = []string{"02/01/2006", "2006-01-02"}

// ParseDate parses an incident date written as DD/MM/YYYY or YYYY-MM-DD.
// A value matching neither layout yields a *domainerror.DateParseError.
func ParseDate(value, recordID string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range incidentDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &domainerror.DateParseError{RecordID: recordID, Value: value}
}
