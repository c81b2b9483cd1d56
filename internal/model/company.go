package model

import "time"

// Company is a commercial account. Contacts and opportunities reference it
// by CompanyID.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	Website   *string   `json:"website"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCompany is the payload for company creation
type NewCompany struct {
	Name    string  `json:"name" validate:"required"`
	Address *string `json:"address"`
	Website *string `json:"website"`
}

// PatchCompany is a partial company update, absent fields stay untouched
type PatchCompany struct {
	ID      string  `param:"id"`
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Address *string `json:"address"`
	Website *string `json:"website"`
}

// MergePatch applies provided patch fields on top of the company
func (c Company) MergePatch(patch PatchCompany) Company {
	if patch.Name != nil {
		c.Name = *patch.Name
	}

	if patch.Address != nil {
		s := *patch.Address
		c.Address = &s
	}

	if patch.Website != nil {
		s := *patch.Website
		c.Website = &s
	}
	return c
}
