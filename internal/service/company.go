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

// CompanyService provides API to work with companies
type CompanyService interface {
	FindAll(ctx context.Context, filter repository.CompanyFilter) ([]*model.Company, error)
	FindByID(ctx context.Context, id string) (*model.Company, error)
	Create(ctx context.Context, nc model.NewCompany) (*model.Company, error)
	Update(ctx context.Context, patch model.PatchCompany) (*model.Company, error)
	DeleteByID(ctx context.Context, id string) error
}

type companyService struct {
	companyRps     repository.CompanyRepository
	contactRps     repository.ContactRepository
	opportunityRps repository.OpportunityRepository
}

// NewCompanyService builds company service. Contact and opportunity
// repositories are needed for the cascading delete.
func NewCompanyService(companyRps repository.CompanyRepository, contactRps repository.ContactRepository, opportunityRps repository.OpportunityRepository) CompanyService {
	return &companyService{
		companyRps:     companyRps,
		contactRps:     contactRps,
		opportunityRps: opportunityRps,
	}
}

func (s *companyService) FindAll(ctx context.Context, filter repository.CompanyFilter) ([]*model.Company, error) {
	return s.companyRps.FindAll(ctx, filter)
}

func (s *companyService) FindByID(ctx context.Context, id string) (*model.Company, error) {
	company, err := s.companyRps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if company == nil {
		return nil, errs.NewNotFoundErr("Company")
	}
	return company, nil
}

func (s *companyService) Create(ctx context.Context, nc model.NewCompany) (*model.Company, error) {
	now := time.Now().UTC()
	company := &model.Company{
		ID:        fmt.Sprintf("company_%s", uuid.NewString()),
		Name:      nc.Name,
		Address:   nc.Address,
		Website:   nc.Website,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.companyRps.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) Update(ctx context.Context, patch model.PatchCompany) (*model.Company, error) {
	existing, err := s.companyRps.FindByID(ctx, patch.ID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return nil, errs.NewNotFoundErr("Company")
	}

	merged := existing.MergePatch(patch)
	merged.UpdatedAt = time.Now().UTC()

	updated, err := s.companyRps.Update(ctx, &merged)
	if err != nil {
		return nil, err
	}

	if !updated {
		return nil, errs.NewNotFoundErr("Company")
	}
	return &merged, nil
}

// DeleteByID removes the company together with its contacts and
// opportunities, dangling references are never left behind
func (s *companyService) DeleteByID(ctx context.Context, id string) error {
	deleted, err := s.companyRps.DeleteByID(ctx, id)
	if err != nil {
		return err
	}

	if !deleted {
		return errs.NewNotFoundErr("Company")
	}

	contacts, err := s.contactRps.FindAll(ctx, repository.ContactFilter{CompanyID: id})
	if err != nil {
		return err
	}

	for _, contact := range contacts {
		if _, err := s.contactRps.DeleteByID(ctx, contact.ID); err != nil {
			return err
		}
	}

	opportunities, err := s.opportunityRps.FindAll(ctx, repository.OpportunityFilter{CompanyID: id})
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
