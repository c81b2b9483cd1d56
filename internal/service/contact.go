package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	errs "github.com/nukleohub/commercial/internal/errors"
	"github.com/nukleohub/commercial/internal/model"
	"github.com/nukleohub/commercial/internal/repository"
)

// ContactService provides API to work with contacts
type ContactService interface {
	FindAll(ctx context.Context, filter repository.ContactFilter) ([]*model.Contact, error)
	FindByID(ctx context.Context, id string) (*model.Contact, error)
	Create(ctx context.Context, nc model.NewContact) (*model.Contact, error)
	Update(ctx context.Context, patch model.PatchContact) (*model.Contact, error)
	DeleteByID(ctx context.Context, id string) error
}

type contactService struct {
	contactRps     repository.ContactRepository
	companyRps     repository.CompanyRepository
	opportunityRps repository.OpportunityRepository
}

// NewContactService builds contact service
func NewContactService(contactRps repository.ContactRepository, companyRps repository.CompanyRepository, opportunityRps repository.OpportunityRepository) ContactService {
	return &contactService{
		contactRps:     contactRps,
		companyRps:     companyRps,
		opportunityRps: opportunityRps,
	}
}

func (s *contactService) FindAll(ctx context.Context, filter repository.ContactFilter) ([]*model.Contact, error) {
	return s.contactRps.FindAll(ctx, filter)
}

func (s *contactService) FindByID(ctx context.Context, id string) (*model.Contact, error) {
	contact, err := s.contactRps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if contact == nil {
		return nil, errs.NewNotFoundErr("Contact")
	}
	return contact, nil
}

func (s *contactService) Create(ctx context.Context, nc model.NewContact) (*model.Contact, error) {
	if err := s.checkEmailIsVacant(ctx, nc.Email, ""); err != nil {
		return nil, err
	}

	if err := s.checkCompanyExists(ctx, nc.CompanyID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	contact := &model.Contact{
		ID:        fmt.Sprintf("contact_%s", uuid.NewString()),
		FirstName: nc.FirstName,
		LastName:  nc.LastName,
		Email:     nc.Email,
		Phone:     nc.Phone,
		CompanyID: nc.CompanyID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.contactRps.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) Update(ctx context.Context, patch model.PatchContact) (*model.Contact, error) {
	existing, err := s.contactRps.FindByID(ctx, patch.ID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return nil, errs.NewNotFoundErr("Contact")
	}

	merged := existing.MergePatch(patch)

	if merged.Email != existing.Email {
		if err := s.checkEmailIsVacant(ctx, merged.Email, existing.ID); err != nil {
			return nil, err
		}
	}

	if merged.CompanyID != existing.CompanyID {
		if err := s.checkCompanyExists(ctx, merged.CompanyID); err != nil {
			return nil, err
		}
	}

	merged.UpdatedAt = time.Now().UTC()

	updated, err := s.contactRps.Update(ctx, &merged)
	if err != nil {
		return nil, err
	}

	if !updated {
		return nil, errs.NewNotFoundErr("Contact")
	}
	return &merged, nil
}

// DeleteByID removes the contact together with its opportunities
func (s *contactService) DeleteByID(ctx context.Context, id string) error {
	deleted, err := s.contactRps.DeleteByID(ctx, id)
	if err != nil {
		return err
	}

	if !deleted {
		return errs.NewNotFoundErr("Contact")
	}

	opportunities, err := s.opportunityRps.FindAll(ctx, repository.OpportunityFilter{ContactID: id})
	if err != nil {
		return err
	}

	for _, opportunity := range opportunities {
		if _, err := s.opportunityRps.DeleteByID(ctx, opportunity.ID); err != nil {
			return err
		}
	}
	return nil
}

// checkEmailIsVacant enforces the collection-wide email uniqueness rule.
// Comparison is case-sensitive, excludeID skips the record being updated.
func (s *contactService) checkEmailIsVacant(ctx context.Context, email string, excludeID string) error {
	existing, err := s.contactRps.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if existing != nil && existing.ID != excludeID {
		return errs.NewValidationErr("email", "Contact with this email already exists")
	}
	return nil
}

func (s *contactService) checkCompanyExists(ctx context.Context, companyID string) error {
	company, err := s.companyRps.FindByID(ctx, companyID)
	if err != nil {
		return err
	}

	if company == nil {
		return errs.NewValidationErr("companyId", "Referenced company does not exist")
	}
	return nil
}
