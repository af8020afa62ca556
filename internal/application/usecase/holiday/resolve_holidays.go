// Package holiday contains the hub holiday calendar use cases.
package holiday

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// ResolvedHoliday is one entry of the merged calendar view.
type ResolvedHoliday struct {
	ID       string
	Date     string
	Name     string
	Type     entity.HolidayType
	IsPreset bool
}

// ResolveInput represents the input for resolving a hub calendar.
type ResolveInput struct {
	HubID uuid.UUID
	Year  int
}

// ResolveOutput is the merged holiday view of a hub year.
type ResolveOutput struct {
	Year     int
	Location string
	Holidays []ResolvedHoliday
}

// Merge combines preset and custom holidays sorted by date. Custom entries outside year are dropped.
func Merge(year int, presets []valueobject.PresetHoliday, custom []*entity.Holiday) []ResolvedHoliday {
	span := valueobject.YearRange(year)
	out := make([]ResolvedHoliday, 0, len(presets)+len(custom))
	for _, p := range presets {
		out = append(out, ResolvedHoliday{ID: p.ID, Date: p.Date, Name: p.Name, Type: p.Type, IsPreset: true})
	}
	for _, h := range custom {
		if !span.Contains(h.Date) {
			continue
		}
		out = append(out, ResolvedHoliday{ID: h.ID.String(), Date: h.Date, Name: h.Name, Type: h.Type})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ResolveUseCase merges static and custom holidays for a hub.
type ResolveUseCase struct {
	hubRepo     adapter.HubRepository
	holidayRepo adapter.HolidayRepository
	calendar    *valueobject.HolidayCalendar
}

// NewResolveUseCase creates a new ResolveUseCase instance.
func NewResolveUseCase(hubRepo adapter.HubRepository, holidayRepo adapter.HolidayRepository, calendar *valueobject.HolidayCalendar) *ResolveUseCase {
	return &ResolveUseCase{hubRepo: hubRepo, holidayRepo: holidayRepo, calendar: calendar}
}

// Execute resolves the calendar. The location comes from the hub name, then its location field.
func (uc *ResolveUseCase) Execute(ctx context.Context, input ResolveInput) (*ResolveOutput, error) {
	hub, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID)
	if err != nil {
		return nil, err
	}

	span := valueobject.YearRange(input.Year)
	custom, err := uc.holidayRepo.ListByHubAndRange(ctx, hub.ID, span.Start, span.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	location := uc.calendar.ResolveLocation(hub.Name, hub.Location)
	return &ResolveOutput{
		Year:     input.Year,
		Location: location,
		Holidays: Merge(input.Year, uc.calendar.Presets(input.Year, location), custom),
	}, nil
}
