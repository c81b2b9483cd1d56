package model

import "time"

// Contact is a person attached to exactly one company. Email is unique
// across the whole contact collection.
type Contact struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CompanyID string    `json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewContact is the payload for contact creation
type NewContact struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
	CompanyID string  `json:"companyId" validate:"required"`
}

// PatchContact is a partial contact update, absent fields stay untouched
type PatchContact struct {
	ID        string  `param:"id"`
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	CompanyID *string `json:"companyId" validate:"omitempty,min=1"`
}

// MergePatch applies provided patch fields on top of the contact
func (c Contact) MergePatch(patch PatchContact) Contact {
	if patch.FirstName != nil {
		c.FirstName = *patch.FirstName
	}

	if patch.LastName != nil {
		c.LastName = *patch.LastName
	}

	if patch.Email != nil {
		c.Email = *patch.Email
	}

	if patch.Phone != nil {
		s := *patch.Phone
		c.Phone = &s
	}

	if patch.CompanyID != nil {
		c.CompanyID = *patch.CompanyID
	}
	return c
}
