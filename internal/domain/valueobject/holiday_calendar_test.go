package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/domain/entity"
)

func TestHolidayCalendar_ResolveLocation(t *testing.T) {
	calendar := SpanishHolidayCalendar()

	tests := []struct {
		name     string
		hubName  string
		expected string
	}{
		{"puerta toledo is madrid", "Hub Puerta Toledo", "madrid"},
		{"dibecesa is madrid", "Dibecesa", "madrid"},
		{"explicit madrid", "Almacén MADRID Norte", "madrid"},
		{"caceres with accent", "Hub Cáceres", "caceres"},
		{"cordoba without accent", "Hub Cordoba", "cordoba"},
		{"cartagena", "Hub Cartagena", "cartagena"},
		{"cadiz", "hub cadiz", "cadiz"},
		{"unknown falls back to madrid", "Hub Bilbao", "madrid"},
		{"empty falls back to madrid", "", "madrid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calendar.ResolveLocation(tt.hubName))
		})
	}
}

func TestHolidayCalendar_ResolveLocationUsesLaterCandidates(t *testing.T) {
	calendar := SpanishHolidayCalendar()
	assert.Equal(t, "cordoba", calendar.ResolveLocation("Hub Sur", "Córdoba"))
}

func TestHolidayCalendar_MadridPresets2026(t *testing.T) {
	calendar := SpanishHolidayCalendar()
	presets := calendar.Presets(2026, "madrid")

	counts := map[entity.HolidayType]int{}
	dates := map[string]bool{}
	for _, p := range presets {
		counts[p.Type]++
		dates[p.Date] = true
		assert.True(t, IsPresetID(p.ID), p.ID)
	}

	assert.GreaterOrEqual(t, counts[entity.HolidayNacional], 11)
	assert.GreaterOrEqual(t, counts[entity.HolidayAutonomico], 2)
	assert.GreaterOrEqual(t, counts[entity.HolidayLocal], 2)
	for _, date := range []string{"2026-01-01", "2026-01-06", "2026-05-01", "2026-05-02", "2026-05-15", "2026-12-25"} {
		assert.True(t, dates[date], date)
	}

	for i := 1; i < len(presets); i++ {
		assert.LessOrEqual(t, presets[i-1].Date, presets[i].Date)
	}
}

func TestHolidayCalendar_OtherYearHasNoPresets(t *testing.T) {
	calendar := SpanishHolidayCalendar()
	assert.Empty(t, calendar.Presets(2025, "madrid"))
	assert.Equal(t, 2026, calendar.Year())
}

func TestHolidayCalendar_PresetsAreCopies(t *testing.T) {
	calendar := SpanishHolidayCalendar()
	first := calendar.Presets(2026, "madrid")
	require.NotEmpty(t, first)
	first[0].Name = "mutated"

	second := calendar.Presets(2026, "madrid")
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestFoldText(t *testing.T) {
	assert.Equal(t, "caceres", FoldText("  Cáceres "))
	assert.Equal(t, "cordoba", FoldText("CÓRDOBA"))
	assert.Equal(t, "cadiz", FoldText("Cádiz"))
}

func TestCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Len(t, catalog.Categories(), 8)
	assert.True(t, catalog.IsCategory("Flota"))
	assert.False(t, catalog.IsCategory("flota"))
	assert.True(t, catalog.IsVehicleType("Camión"))
	assert.False(t, catalog.IsVehicleType("Bicicleta"))

	types := catalog.VehicleTypes()
	types[0] = "changed"
	assert.Equal(t, "Moto", catalog.VehicleTypes()[0])
}
