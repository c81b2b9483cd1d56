package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/nukleohub/commercial/internal/model"
)

// The in-memory repositories below are the current datastore: process-wide
// collections living for the lifetime of the server. Nothing survives a
// restart. A persistent engine can replace them behind the same interfaces.
//
// Handlers run on concurrent goroutines, so every collection is guarded by
// its own RWMutex; each operation either fully applies or leaves the
// collection untouched.

type inMemoryCompanyRepository struct {
	mu        sync.RWMutex
	companies []model.Company
}

// NewInMemoryCompanyRepository builds company repository over a process-local collection
func NewInMemoryCompanyRepository() CompanyRepository {
	return &inMemoryCompanyRepository{companies: make([]model.Company, 0)}
}

func (r *inMemoryCompanyRepository) FindAll(_ context.Context, filter CompanyFilter) ([]*model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	companies := make([]*model.Company, 0, len(r.companies))
	for i := range r.companies {
		c := r.companies[i]
		if filter.Name != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter.Name)) {
			continue
		}
		companies = append(companies, &c)
	}

	sortNewestFirst(companies, func(c *model.Company) int64 { return c.CreatedAt.UnixNano() })
	return companies, nil
}

func (r *inMemoryCompanyRepository) FindByID(_ context.Context, id string) (*model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.companies {
		if r.companies[i].ID == id {
			c := r.companies[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *inMemoryCompanyRepository) Create(_ context.Context, c *model.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.companies = append(r.companies, *c)
	return nil
}

func (r *inMemoryCompanyRepository) Update(_ context.Context, c *model.Company) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.companies {
		if r.companies[i].ID == c.ID {
			r.companies[i] = *c
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryCompanyRepository) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.companies {
		if r.companies[i].ID == id {
			r.companies = append(r.companies[:i], r.companies[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type inMemoryContactRepository struct {
	mu       sync.RWMutex
	contacts []model.Contact
}

// NewInMemoryContactRepository builds contact repository over a process-local collection
func NewInMemoryContactRepository() ContactRepository {
	return &inMemoryContactRepository{contacts: make([]model.Contact, 0)}
}

func (r *inMemoryContactRepository) FindAll(_ context.Context, filter ContactFilter) ([]*model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contacts := make([]*model.Contact, 0, len(r.contacts))
	for i := range r.contacts {
		c := r.contacts[i]
		if filter.CompanyID != "" && c.CompanyID != filter.CompanyID {
			continue
		}
		if filter.Email != "" && c.Email != filter.Email {
			continue
		}
		contacts = append(contacts, &c)
	}

	sortNewestFirst(contacts, func(c *model.Contact) int64 { return c.CreatedAt.UnixNano() })
	return contacts, nil
}

func (r *inMemoryContactRepository) FindByID(_ context.Context, id string) (*model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.contacts {
		if r.contacts[i].ID == id {
			c := r.contacts[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *inMemoryContactRepository) FindByEmail(_ context.Context, email string) (*model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.contacts {
		if r.contacts[i].Email == email {
			c := r.contacts[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *inMemoryContactRepository) Create(_ context.Context, c *model.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contacts = append(r.contacts, *c)
	return nil
}

func (r *inMemoryContactRepository) Update(_ context.Context, c *model.Contact) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.contacts {
		if r.contacts[i].ID == c.ID {
			r.contacts[i] = *c
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryContactRepository) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.contacts {
		if r.contacts[i].ID == id {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type inMemoryOpportunityRepository struct {
	mu            sync.RWMutex
	opportunities []model.Opportunity
}

// NewInMemoryOpportunityRepository builds opportunity repository over a process-local collection
func NewInMemoryOpportunityRepository() OpportunityRepository {
	return &inMemoryOpportunityRepository{opportunities: make([]model.Opportunity, 0)}
}

func (r *inMemoryOpportunityRepository) FindAll(_ context.Context, filter OpportunityFilter) ([]*model.Opportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opportunities := make([]*model.Opportunity, 0, len(r.opportunities))
	for i := range r.opportunities {
		o := r.opportunities[i]
		if filter.Stage != "" && o.Stage != filter.Stage {
			continue
		}
		if filter.OwnerID != "" && o.OwnerID != filter.OwnerID {
			continue
		}
		if filter.ContactID != "" && o.ContactID != filter.ContactID {
			continue
		}
		if filter.CompanyID != "" && o.CompanyID != filter.CompanyID {
			continue
		}
		opportunities = append(opportunities, &o)
	}

	sortNewestFirst(opportunities, func(o *model.Opportunity) int64 { return o.CreatedAt.UnixNano() })
	return opportunities, nil
}

func (r *inMemoryOpportunityRepository) FindByID(_ context.Context, id string) (*model.Opportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.opportunities {
		if r.opportunities[i].ID == id {
			o := r.opportunities[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *inMemoryOpportunityRepository) Create(_ context.Context, o *model.Opportunity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.opportunities = append(r.opportunities, *o)
	return nil
}

func (r *inMemoryOpportunityRepository) Update(_ context.Context, o *model.Opportunity) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.opportunities {
		if r.opportunities[i].ID == o.ID {
			r.opportunities[i] = *o
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryOpportunityRepository) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.opportunities {
		if r.opportunities[i].ID == id {
			r.opportunities = append(r.opportunities[:i], r.opportunities[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// sortNewestFirst orders records by creation time descending, keeping
// insertion order for equal timestamps
func sortNewestFirst[T any](records []T, createdAt func(T) int64) {
	sort.SliceStable(records, func(i, j int) bool {
		return createdAt(records[i]) > createdAt(records[j])
	})
}
