package holiday

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/application/adapter/adaptertest"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

func TestMerge(t *testing.T) {
	hubID := uuid.New()
	presets := []valueobject.PresetHoliday{
		{ID: "preset-a", Date: "2026-12-25", Name: "Navidad", Type: entity.HolidayNacional},
		{ID: "preset-b", Date: "2026-01-01", Name: "Año Nuevo", Type: entity.HolidayNacional},
	}
	custom := []*entity.Holiday{
		entity.NewHoliday(hubID, "2026-06-24", "San Juan", entity.HolidayLocal),
		entity.NewHoliday(hubID, "2025-06-24", "San Juan", entity.HolidayLocal),
	}

	merged := Merge(2026, presets, custom)
	require.Len(t, merged, 3)
	assert.Equal(t, []string{"2026-01-01", "2026-06-24", "2026-12-25"}, []string{merged[0].Date, merged[1].Date, merged[2].Date})
	assert.True(t, merged[0].IsPreset)
	assert.False(t, merged[1].IsPreset)
	assert.Equal(t, custom[0].ID.String(), merged[1].ID)
}

type holidayFixture struct {
	store *adaptertest.Store
	hub   *entity.Hub
}

func newHolidayFixture(t *testing.T) *holidayFixture {
	t.Helper()
	store := adaptertest.NewStore()
	hub := entity.NewHub("Hub Puerta Toledo", "", "")
	require.NoError(t, store.Hubs.Create(context.Background(), hub))
	return &holidayFixture{store: store, hub: hub}
}

func TestResolveUseCase_Madrid2026(t *testing.T) {
	f := newHolidayFixture(t)
	ctx := context.Background()

	_, err := NewCreateUseCase(f.store.Hubs, f.store.Holidays).Execute(ctx, CreateInput{HubID: f.hub.ID, Date: "2026-07-25", Name: "Santiago"})
	require.NoError(t, err)

	out, err := NewResolveUseCase(f.store.Hubs, f.store.Holidays, valueobject.SpanishHolidayCalendar()).
		Execute(ctx, ResolveInput{HubID: f.hub.ID, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, "madrid", out.Location)
	counts := map[bool]int{}
	for i, h := range out.Holidays {
		counts[h.IsPreset]++
		if i > 0 {
			assert.LessOrEqual(t, out.Holidays[i-1].Date, h.Date)
		}
	}
	assert.Equal(t, 15, counts[true])
	assert.Equal(t, 1, counts[false])
}

func TestCreateUseCase(t *testing.T) {
	f := newHolidayFixture(t)
	ctx := context.Background()
	uc := NewCreateUseCase(f.store.Hubs, f.store.Holidays)

	created, err := uc.Execute(ctx, CreateInput{HubID: f.hub.ID, Date: "2026-12-25", Name: " Cena "})
	require.NoError(t, err, "a custom holiday may share a date with a preset")
	assert.Equal(t, entity.HolidayLocal, created.Type)
	assert.Equal(t, "Cena", created.Name)

	tests := []struct {
		name  string
		input CreateInput
		kind  domainerror.Kind
	}{
		{"same date again", CreateInput{HubID: f.hub.ID, Date: "2026-12-25", Name: "Otra"}, domainerror.KindConflict},
		{"bad date", CreateInput{HubID: f.hub.ID, Date: "25/12/2026", Name: "Otra"}, domainerror.KindInvalidDate},
		{"missing name", CreateInput{HubID: f.hub.ID, Date: "2026-12-26"}, domainerror.KindInvalidInput},
		{"bad type", CreateInput{HubID: f.hub.ID, Date: "2026-12-26", Name: "X", Type: "regional"}, domainerror.KindInvalidInput},
		{"unknown hub", CreateInput{HubID: uuid.New(), Date: "2026-12-26", Name: "X"}, domainerror.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			assert.True(t, domainerror.IsKind(err, tt.kind), "got %v", err)
		})
	}
}

func TestDeleteUseCase(t *testing.T) {
	f := newHolidayFixture(t)
	ctx := context.Background()
	created, err := NewCreateUseCase(f.store.Hubs, f.store.Holidays).Execute(ctx, CreateInput{HubID: f.hub.ID, Date: "2026-07-25", Name: "Santiago"})
	require.NoError(t, err)

	uc := NewDeleteUseCase(f.store.Holidays)

	presets := valueobject.SpanishHolidayCalendar().Presets(2026, "madrid")
	require.NotEmpty(t, presets)
	err = uc.Execute(ctx, f.hub.ID, presets[0].ID)
	domainErr, ok := domainerror.As(err)
	require.True(t, ok)
	assert.Equal(t, domainerror.ErrCodePresetHolidayImmutable, domainErr.Code)

	assert.True(t, domainerror.IsKind(uc.Execute(ctx, f.hub.ID, "not-a-uuid"), domainerror.KindNotFound))
	require.NoError(t, uc.Execute(ctx, f.hub.ID, created.ID.String()))
	assert.True(t, domainerror.IsKind(uc.Execute(ctx, f.hub.ID, created.ID.String()), domainerror.KindNotFound))
}
