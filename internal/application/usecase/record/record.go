// Package record contains generic hub record use cases.
package record

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// ListUseCase lists records, optionally filtered by hub and category.
type ListUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewListUseCase creates a new ListUseCase instance.
func NewListUseCase(recordRepo adapter.RecordRepository) *ListUseCase {
	return &ListUseCase{recordRepo: recordRepo}
}

// Execute returns the matching records, newest first.
func (uc *ListUseCase) Execute(ctx context.Context, filter adapter.RecordFilter) ([]*entity.Record, error) {
	records, err := uc.recordRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// CreateInput represents the input for record creation.
type CreateInput struct {
	HubID       uuid.UUID
	Category    string
	Title       string
	Description string
	Data        map[string]interface{}
	CreatedBy   uuid.UUID
}

// CreateUseCase handles record creation.
type CreateUseCase struct {
	hubRepo    adapter.HubRepository
	recordRepo adapter.RecordRepository
	catalog    *valueobject.Catalog
}

// NewCreateUseCase creates a new CreateUseCase instance.
func NewCreateUseCase(hubRepo adapter.HubRepository, recordRepo adapter.RecordRepository, catalog *valueobject.Catalog) *CreateUseCase {
	return &CreateUseCase{hubRepo: hubRepo, recordRepo: recordRepo, catalog: catalog}
}

// Execute creates the record.
func (uc *CreateUseCase) Execute(ctx context.Context, input CreateInput) (*entity.Record, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingRecordTitle, "Title is required", nil)
	}
	if err := validateCategory(uc.catalog, input.Category); err != nil {
		return nil, err
	}
	if _, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID); err != nil {
		return nil, err
	}

	record := entity.NewRecord(input.HubID, input.Category, title, strings.TrimSpace(input.Description), input.Data, input.CreatedBy)
	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	return record, nil
}

// UpdateInput represents the input for record update. Nil fields are left untouched.
type UpdateInput struct {
	RecordID uuid.UUID
	// HubID, when set, restricts the update to records of that hub.
	HubID       *uuid.UUID
	Category    *string
	Title       *string
	Description *string
	Data        map[string]interface{}
}

// UpdateUseCase handles partial record updates.
type UpdateUseCase struct {
	recordRepo adapter.RecordRepository
	catalog    *valueobject.Catalog
}

// NewUpdateUseCase creates a new UpdateUseCase instance.
func NewUpdateUseCase(recordRepo adapter.RecordRepository, catalog *valueobject.Catalog) *UpdateUseCase {
	return &UpdateUseCase{recordRepo: recordRepo, catalog: catalog}
}

// Execute applies the update. Data replaces the stored map as a whole.
func (uc *UpdateUseCase) Execute(ctx context.Context, input UpdateInput) (*entity.Record, error) {
	if input.Category == nil && input.Title == nil && input.Description == nil && input.Data == nil {
		return nil, domainerror.NewEmptyUpdateError()
	}

	record, err := findScoped(ctx, uc.recordRepo, input.RecordID, input.HubID)
	if err != nil {
		return nil, err
	}

	if input.Category != nil {
		if err := validateCategory(uc.catalog, *input.Category); err != nil {
			return nil, err
		}
		record.Category = *input.Category
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingRecordTitle, "Title is required", nil)
		}
		record.Title = title
	}
	if input.Description != nil {
		record.Description = strings.TrimSpace(*input.Description)
	}
	if input.Data != nil {
		record.Data = input.Data
	}
	record.UpdatedAt = time.Now().UTC()

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}
	return record, nil
}

// DeleteUseCase deletes a record.
type DeleteUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewDeleteUseCase creates a new DeleteUseCase instance.
func NewDeleteUseCase(recordRepo adapter.RecordRepository) *DeleteUseCase {
	return &DeleteUseCase{recordRepo: recordRepo}
}

// DeleteInput identifies the record to delete. HubID, when set, scopes the lookup.
type DeleteInput struct {
	RecordID uuid.UUID
	HubID    *uuid.UUID
}

// Execute deletes the record.
func (uc *DeleteUseCase) Execute(ctx context.Context, input DeleteInput) error {
	if input.HubID != nil {
		if _, err := findScoped(ctx, uc.recordRepo, input.RecordID, input.HubID); err != nil {
			return err
		}
	}
	if err := uc.recordRepo.Delete(ctx, input.RecordID); err != nil {
		return scope.MapNotFound(err, domainerror.ErrRecordNotFound, domainerror.NewRecordNotFoundError, "delete record")
	}
	return nil
}

// UploadInput represents a file attached to a record.
type UploadInput struct {
	RecordID uuid.UUID
	FileName string
	Content  []byte
}

// UploadOutput acknowledges an upload.
type UploadOutput struct {
	FileName string
}

// UploadUseCase stores a file inline on a record, base64 encoded.
type UploadUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewUploadUseCase creates a new UploadUseCase instance.
func NewUploadUseCase(recordRepo adapter.RecordRepository) *UploadUseCase {
	return &UploadUseCase{recordRepo: recordRepo}
}

// Execute attaches the file, replacing any previous one.
func (uc *UploadUseCase) Execute(ctx context.Context, input UploadInput) (*UploadOutput, error) {
	if len(input.Content) == 0 {
		return nil, domainerror.InvalidInput(domainerror.ErrCodeEmptyUpload, "Uploaded file is empty", domainerror.ErrEmptyUpload)
	}

	record, err := uc.recordRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		return nil, scope.MapNotFound(err, domainerror.ErrRecordNotFound, domainerror.NewRecordNotFoundError, "find record")
	}

	record.Attach(input.FileName, base64.StdEncoding.EncodeToString(input.Content))
	if err := uc.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to attach file: %w", err)
	}
	return &UploadOutput{FileName: input.FileName}, nil
}

func validateCategory(catalog *valueobject.Catalog, category string) error {
	if !catalog.IsCategory(category) {
		return domainerror.InvalidInput(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("Invalid category %q", category),
			domainerror.ErrInvalidCategory,
		)
	}
	return nil
}

// findScoped loads a record, reporting records of another hub as not found.
func findScoped(ctx context.Context, recordRepo adapter.RecordRepository, recordID uuid.UUID, hubID *uuid.UUID) (*entity.Record, error) {
	record, err := recordRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, scope.MapNotFound(err, domainerror.ErrRecordNotFound, domainerror.NewRecordNotFoundError, "find record")
	}
	if hubID != nil && record.HubID != *hubID {
		return nil, domainerror.NewRecordNotFoundError()
	}
	return record, nil
}
