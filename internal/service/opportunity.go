package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	errs "github.com/nukleohub/commercial/internal/errors"
	"github.com/nukleohub/commercial/internal/model"
	"github.com/nukleohub/commercial/internal/pipeline"
	"github.com/nukleohub/commercial/internal/repository"
)

// OpportunityService provides API to work with opportunities and the
// pipeline views derived from them
type OpportunityService interface {
	FindAll(ctx context.Context, filter repository.OpportunityFilter) ([]*model.Opportunity, error)
	FindByID(ctx context.Context, id string) (*model.Opportunity, error)
	Create(ctx context.Context, no model.NewOpportunity) (*model.Opportunity, error)
	Update(ctx context.Context, patch model.PatchOpportunity) (*model.Opportunity, error)
	DeleteByID(ctx context.Context, id string) error
	MoveStage(ctx context.Context, id string, stage model.Stage) (*model.Opportunity, error)
	Stats(ctx context.Context, filter repository.OpportunityFilter) (pipeline.Stats, error)
	Board(ctx context.Context) ([]pipeline.Column, error)
}

type opportunityService struct {
	opportunityRps repository.OpportunityRepository
	contactRps     repository.ContactRepository
	companyRps     repository.CompanyRepository
}

// NewOpportunityService builds opportunity service
func NewOpportunityService(opportunityRps repository.OpportunityRepository, contactRps repository.ContactRepository, companyRps repository.CompanyRepository) OpportunityService {
	return &opportunityService{
		opportunityRps: opportunityRps,
		contactRps:     contactRps,
		companyRps:     companyRps,
	}
}

func (s *opportunityService) FindAll(ctx context.Context, filter repository.OpportunityFilter) ([]*model.Opportunity, error) {
	return s.opportunityRps.FindAll(ctx, filter)
}

func (s *opportunityService) FindByID(ctx context.Context, id string) (*model.Opportunity, error) {
	opportunity, err := s.opportunityRps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if opportunity == nil {
		return nil, errs.NewNotFoundErr("Opportunity")
	}
	return opportunity, nil
}

func (s *opportunityService) Create(ctx context.Context, no model.NewOpportunity) (*model.Opportunity, error) {
	if !no.Stage.Valid() {
		return nil, errs.NewValidationErr("stage", fmt.Sprintf("Unknown stage %q", no.Stage))
	}

	if err := s.checkReferences(ctx, no.ContactID, no.CompanyID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	opportunity := &model.Opportunity{
		ID:          fmt.Sprintf("opp_%s", uuid.NewString()),
		Name:        no.Name,
		Stage:       no.Stage,
		Amount:      no.Amount,
		ClosingDate: no.ClosingDate,
		OwnerID:     no.OwnerID,
		ContactID:   no.ContactID,
		CompanyID:   no.CompanyID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.opportunityRps.Create(ctx, opportunity); err != nil {
		return nil, err
	}
	return opportunity, nil
}

func (s *opportunityService) Update(ctx context.Context, patch model.PatchOpportunity) (*model.Opportunity, error) {
	existing, err := s.opportunityRps.FindByID(ctx, patch.ID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return nil, errs.NewNotFoundErr("Opportunity")
	}

	merged := existing.MergePatch(patch)

	if !merged.Stage.Valid() {
		return nil, errs.NewValidationErr("stage", fmt.Sprintf("Unknown stage %q", merged.Stage))
	}

	if merged.ContactID != existing.ContactID || merged.CompanyID != existing.CompanyID {
		if err := s.checkReferences(ctx, merged.ContactID, merged.CompanyID); err != nil {
			return nil, err
		}
	}

	merged.UpdatedAt = time.Now().UTC()

	updated, err := s.opportunityRps.Update(ctx, &merged)
	if err != nil {
		return nil, err
	}

	if !updated {
		return nil, errs.NewNotFoundErr("Opportunity")
	}
	return &merged, nil
}

func (s *opportunityService) DeleteByID(ctx context.Context, id string) error {
	deleted, err := s.opportunityRps.DeleteByID(ctx, id)
	if err != nil {
		return err
	}

	if !deleted {
		return errs.NewNotFoundErr("Opportunity")
	}
	return nil
}

// MoveStage commits a Kanban move gesture. Any stage can move to any other
// stage, there is no transition graph.
func (s *opportunityService) MoveStage(ctx context.Context, id string, stage model.Stage) (*model.Opportunity, error) {
	if !stage.Valid() {
		return nil, errs.NewValidationErr("stage", fmt.Sprintf("Unknown stage %q", stage))
	}

	return s.Update(ctx, model.PatchOpportunity{ID: id, Stage: &stage})
}

func (s *opportunityService) Stats(ctx context.Context, filter repository.OpportunityFilter) (pipeline.Stats, error) {
	opportunities, err := s.opportunityRps.FindAll(ctx, filter)
	if err != nil {
		return pipeline.Stats{}, err
	}
	return pipeline.ComputeStats(opportunities), nil
}

func (s *opportunityService) Board(ctx context.Context) ([]pipeline.Column, error) {
	opportunities, err := s.opportunityRps.FindAll(ctx, repository.OpportunityFilter{})
	if err != nil {
		return nil, err
	}
	return pipeline.GroupByStage(opportunities), nil
}

func (s *opportunityService) checkReferences(ctx context.Context, contactID string, companyID string) error {
	contact, err := s.contactRps.FindByID(ctx, contactID)
	if err != nil {
		return err
	}

	if contact == nil {
		return errs.NewValidationErr("contactId", "Referenced contact does not exist")
	}

	company, err := s.companyRps.FindByID(ctx, companyID)
	if err != nil {
		return err
	}

	if company == nil {
		return errs.NewValidationErr("companyId", "Referenced company does not exist")
	}
	return nil
}
