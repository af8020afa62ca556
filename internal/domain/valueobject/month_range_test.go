package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

func TestNewMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantStart string
		wantEnd   string
	}{
		{"leap february", 2024, 2, "2024-02-01", "2024-02-29"},
		{"common february", 2023, 2, "2023-02-01", "2023-02-28"},
		{"century non leap", 1900, 2, "1900-02-01", "1900-02-28"},
		{"thirty day month", 2025, 4, "2025-04-01", "2025-04-30"},
		{"december", 2025, 12, "2025-12-01", "2025-12-31"},
		{"january", 2026, 1, "2026-01-01", "2026-01-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewMonthRange(tt.year, tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, r.Start)
			assert.Equal(t, tt.wantEnd, r.End)
		})
	}
}

func TestNewMonthRange_InvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, err := NewMonthRange(2024, month)
		require.Error(t, err)
		assert.True(t, domainerror.IsKind(err, domainerror.KindInvalidDate), "month %d", month)
	}
}

func TestMonthRange_Contains(t *testing.T) {
	r, err := NewMonthRange(2024, 2)
	require.NoError(t, err)

	assert.True(t, r.Contains("2024-02-01"))
	assert.True(t, r.Contains("2024-02-29"))
	assert.False(t, r.Contains("2024-01-31"))
	assert.False(t, r.Contains("2024-03-01"))
	assert.Equal(t, 29, r.Days())
	assert.Equal(t, "2024-02-09", r.DateOf(9))
}

func TestYearRange(t *testing.T) {
	r := YearRange(2026)
	assert.Equal(t, "2026-01-01", r.Start)
	assert.Equal(t, "2026-12-31", r.End)
	assert.True(t, r.Contains("2026-12-31"))
	assert.False(t, r.Contains("2027-01-01"))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2026-05-15"))
	assert.Error(t, ValidateDate("15/05/2026"))
	assert.Error(t, ValidateDate("2026-02-30"))
	assert.Error(t, ValidateDate(""))
}
