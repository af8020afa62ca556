// Package contact contains hub phone book use cases.
package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// ListContactsUseCase lists the contacts of a hub.
type ListContactsUseCase struct {
	hubRepo     adapter.HubRepository
	contactRepo adapter.ContactRepository
}

// NewListContactsUseCase creates a new ListContactsUseCase instance.
func NewListContactsUseCase(hubRepo adapter.HubRepository, contactRepo adapter.ContactRepository) *ListContactsUseCase {
	return &ListContactsUseCase{hubRepo: hubRepo, contactRepo: contactRepo}
}

// Execute returns the hub contacts ordered by name.
func (uc *ListContactsUseCase) Execute(ctx context.Context, hubID uuid.UUID) ([]*entity.Contact, error) {
	if _, err := scope.RequireHub(ctx, uc.hubRepo, hubID); err != nil {
		return nil, err
	}
	contacts, err := uc.contactRepo.ListByHub(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// CreateContactInput represents the input for contact creation.
type CreateContactInput struct {
	HubID    uuid.UUID
	Name     string
	Position string
	Phone    string
}

// CreateContactUseCase handles contact creation.
type CreateContactUseCase struct {
	hubRepo     adapter.HubRepository
	contactRepo adapter.ContactRepository
	phones      adapter.PhoneNormalizer
}

// NewCreateContactUseCase creates a new CreateContactUseCase instance.
func NewCreateContactUseCase(hubRepo adapter.HubRepository, contactRepo adapter.ContactRepository, phones adapter.PhoneNormalizer) *CreateContactUseCase {
	return &CreateContactUseCase{hubRepo: hubRepo, contactRepo: contactRepo, phones: phones}
}

// Execute creates the contact with a normalized phone.
func (uc *CreateContactUseCase) Execute(ctx context.Context, input CreateContactInput) (*entity.Contact, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingContact, "Contact name is required", nil)
	}
	if _, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID); err != nil {
		return nil, err
	}

	contact := entity.NewContact(input.HubID, name, strings.TrimSpace(input.Position), uc.phones.Normalize(input.Phone))
	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

// UpdateContactInput represents the input for contact update. Nil fields are left untouched.
type UpdateContactInput struct {
	HubID     uuid.UUID
	ContactID uuid.UUID
	Name      *string
	Position  *string
	Phone     *string
}

// UpdateContactUseCase handles partial contact updates.
type UpdateContactUseCase struct {
	contactRepo adapter.ContactRepository
	phones      adapter.PhoneNormalizer
}

// NewUpdateContactUseCase creates a new UpdateContactUseCase instance.
func NewUpdateContactUseCase(contactRepo adapter.ContactRepository, phones adapter.PhoneNormalizer) *UpdateContactUseCase {
	return &UpdateContactUseCase{contactRepo: contactRepo, phones: phones}
}

// Execute applies the update.
func (uc *UpdateContactUseCase) Execute(ctx context.Context, input UpdateContactInput) (*entity.Contact, error) {
	if input.Name == nil && input.Position == nil && input.Phone == nil {
		return nil, domainerror.NewEmptyUpdateError()
	}

	contact, err := uc.contactRepo.FindByID(ctx, input.HubID, input.ContactID)
	if err != nil {
		return nil, scope.MapNotFound(err, domainerror.ErrContactNotFound, domainerror.NewContactNotFoundError, "find contact")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingContact, "Contact name is required", nil)
		}
		contact.Name = name
	}
	if input.Position != nil {
		contact.Position = strings.TrimSpace(*input.Position)
	}
	if input.Phone != nil {
		contact.Phone = uc.phones.Normalize(*input.Phone)
	}

	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

// DeleteContactUseCase deletes a contact.
type DeleteContactUseCase struct {
	contactRepo adapter.ContactRepository
}

// NewDeleteContactUseCase creates a new DeleteContactUseCase instance.
func NewDeleteContactUseCase(contactRepo adapter.ContactRepository) *DeleteContactUseCase {
	return &DeleteContactUseCase{contactRepo: contactRepo}
}

// Execute deletes the contact.
func (uc *DeleteContactUseCase) Execute(ctx context.Context, hubID, contactID uuid.UUID) error {
	if err := uc.contactRepo.Delete(ctx, hubID, contactID); err != nil {
		return scope.MapNotFound(err, domainerror.ErrContactNotFound, domainerror.NewContactNotFoundError, "delete contact")
	}
	return nil
}
