package holiday

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// CreateInput represents the input for custom holiday creation.
type CreateInput struct {
	HubID uuid.UUID
	Date  string
	Name  string
	Type  entity.HolidayType
}

// CreateUseCase handles custom holiday creation.
type CreateUseCase struct {
	hubRepo     adapter.HubRepository
	holidayRepo adapter.HolidayRepository
}

// NewCreateUseCase creates a new CreateUseCase instance.
func NewCreateUseCase(hubRepo adapter.HubRepository, holidayRepo adapter.HolidayRepository) *CreateUseCase {
	return &CreateUseCase{hubRepo: hubRepo, holidayRepo: holidayRepo}
}

// Execute creates the holiday. Only another custom holiday on the same date conflicts;
// a preset on that date does not.
func (uc *CreateUseCase) Execute(ctx context.Context, input CreateInput) (*entity.Holiday, error) {
	if err := valueobject.ValidateDate(input.Date); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingHolidayName, "Holiday name is required", nil)
	}
	holidayType := input.Type
	if holidayType == "" {
		holidayType = entity.HolidayLocal
	}
	if !holidayType.IsValid() {
		return nil, domainerror.InvalidInput(
			domainerror.ErrCodeInvalidHolidayType,
			fmt.Sprintf("Invalid holiday type %q", holidayType),
			domainerror.ErrInvalidHolidayType,
		)
	}
	if _, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID); err != nil {
		return nil, err
	}

	exists, err := uc.holidayRepo.ExistsByDate(ctx, input.HubID, input.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check holiday date: %w", err)
	}
	if exists {
		return nil, newDateExistsError()
	}

	holiday := entity.NewHoliday(input.HubID, input.Date, name, holidayType)
	if err := uc.holidayRepo.Create(ctx, holiday); err != nil {
		if errors.Is(err, domainerror.ErrHolidayDateExists) {
			return nil, newDateExistsError()
		}
		return nil, fmt.Errorf("failed to create holiday: %w", err)
	}
	return holiday, nil
}

// DeleteUseCase deletes a custom holiday.
type DeleteUseCase struct {
	holidayRepo adapter.HolidayRepository
}

// NewDeleteUseCase creates a new DeleteUseCase instance.
func NewDeleteUseCase(holidayRepo adapter.HolidayRepository) *DeleteUseCase {
	return &DeleteUseCase{holidayRepo: holidayRepo}
}

// Execute deletes the holiday. Preset identifiers are rejected as InvalidInput.
func (uc *DeleteUseCase) Execute(ctx context.Context, hubID uuid.UUID, holidayID string) error {
	if valueobject.IsPresetID(holidayID) {
		return domainerror.InvalidInput(
			domainerror.ErrCodePresetHolidayImmutable,
			"Preset holidays cannot be deleted",
			domainerror.ErrPresetHolidayImmutable,
		)
	}
	id, err := uuid.Parse(holidayID)
	if err != nil {
		return domainerror.NewHolidayNotFoundError()
	}
	if err := uc.holidayRepo.Delete(ctx, hubID, id); err != nil {
		return scope.MapNotFound(err, domainerror.ErrHolidayNotFound, domainerror.NewHolidayNotFoundError, "delete holiday")
	}
	return nil
}

func newDateExistsError() *domainerror.DomainError {
	return domainerror.Conflict(domainerror.ErrCodeHolidayDateExists, "A holiday already exists on this date", domainerror.ErrHolidayDateExists)
}
