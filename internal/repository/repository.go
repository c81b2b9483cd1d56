package repository

import (
	"context"

	"github.com/nukleohub/commercial/internal/model"
)

// CompanyFilter narrows down company listing. Name is matched as a
// case-insensitive substring.
type CompanyFilter struct {
	Name string
}

// ContactFilter narrows down contact listing, all fields are exact match
type ContactFilter struct {
	CompanyID string
	Email     string
}

// OpportunityFilter narrows down opportunity listing, all fields are exact match
type OpportunityFilter struct {
	Stage     model.Stage
	OwnerID   string
	ContactID string
	CompanyID string
}

// CompanyRepository provides access to the company collection.
// FindByID returns nil, nil when no record matches.
type CompanyRepository interface {
	FindAll(ctx context.Context, filter CompanyFilter) ([]*model.Company, error)
	FindByID(ctx context.Context, id string) (*model.Company, error)
	Create(ctx context.Context, c *model.Company) error
	Update(ctx context.Context, c *model.Company) (bool, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// ContactRepository provides access to the contact collection.
// FindByID returns nil, nil when no record matches.
type ContactRepository interface {
	FindAll(ctx context.Context, filter ContactFilter) ([]*model.Contact, error)
	FindByID(ctx context.Context, id string) (*model.Contact, error)
	FindByEmail(ctx context.Context, email string) (*model.Contact, error)
	Create(ctx context.Context, c *model.Contact) error
	Update(ctx context.Context, c *model.Contact) (bool, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// OpportunityRepository provides access to the opportunity collection.
// FindByID returns nil, nil when no record matches.
type OpportunityRepository interface {
	FindAll(ctx context.Context, filter OpportunityFilter) ([]*model.Opportunity, error)
	FindByID(ctx context.Context, id string) (*model.Opportunity, error)
	Create(ctx context.Context, o *model.Opportunity) error
	Update(ctx context.Context, o *model.Opportunity) (bool, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
