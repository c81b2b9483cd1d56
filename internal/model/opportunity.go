package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Stage is one of the six fixed pipeline states an opportunity occupies
type Stage string

const (
	// StageNew means opportunity has just entered the pipeline
	StageNew Stage = "New"
	// StageQualification means opportunity is being qualified
	StageQualification Stage = "Qualification"
	// StageProposal means a proposal has been sent
	StageProposal Stage = "Proposal"
	// StageNegotiation means terms are being negotiated
	StageNegotiation Stage = "Negotiation"
	// StageWon means opportunity has been closed won
	StageWon Stage = "Won"
	// StageLost means opportunity has been closed lost
	StageLost Stage = "Lost"
)

// Stages returns all pipeline stages in display order
func Stages() []Stage {
	return []Stage{StageNew, StageQualification, StageProposal, StageNegotiation, StageWon, StageLost}
}

// Valid reports whether s is one of the six pipeline stages
func (s Stage) Valid() bool {
	switch s {
	case StageNew, StageQualification, StageProposal, StageNegotiation, StageWon, StageLost:
		return true
	}
	return false
}

const dateOnlyLayout = "2006-01-02"

// Date is a closing date. Plain dates ("2006-01-02") and RFC3339 timestamps
// are both accepted on input, output is always RFC3339.
type Date struct {
	time.Time
}

// NewDate builds Date from t
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse(dateOnlyLayout, s)
		if err != nil {
			return fmt.Errorf("invalid date %q - expected %q or RFC3339", s, dateOnlyLayout)
		}
	}

	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// Opportunity is a deal moving through the pipeline. It references exactly
// one contact and one company; OwnerID points to an external user identity.
type Opportunity struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Stage       Stage     `json:"stage"`
	Amount      float64   `json:"amount"`
	ClosingDate Date      `json:"closingDate"`
	OwnerID     string    `json:"ownerId"`
	ContactID   string    `json:"contactId"`
	CompanyID   string    `json:"companyId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewOpportunity is the payload for opportunity creation
type NewOpportunity struct {
	Name        string  `json:"name" validate:"required"`
	Stage       Stage   `json:"stage" validate:"required,oneof=New Qualification Proposal Negotiation Won Lost"`
	Amount      float64 `json:"amount" validate:"required,gte=0"`
	ClosingDate Date    `json:"closingDate" validate:"required"`
	OwnerID     string  `json:"ownerId" validate:"required"`
	ContactID   string  `json:"contactId" validate:"required"`
	CompanyID   string  `json:"companyId" validate:"required"`
}

// PatchOpportunity is a partial opportunity update, absent fields stay untouched
type PatchOpportunity struct {
	ID          string   `param:"id"`
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Stage       *Stage   `json:"stage" validate:"omitempty,oneof=New Qualification Proposal Negotiation Won Lost"`
	Amount      *float64 `json:"amount" validate:"omitempty,gte=0"`
	ClosingDate *Date    `json:"closingDate"`
	OwnerID     *string  `json:"ownerId" validate:"omitempty,min=1"`
	ContactID   *string  `json:"contactId" validate:"omitempty,min=1"`
	CompanyID   *string  `json:"companyId" validate:"omitempty,min=1"`
}

// MergePatch applies provided patch fields on top of the opportunity
func (o Opportunity) MergePatch(patch PatchOpportunity) Opportunity {
	if patch.Name != nil {
		o.Name = *patch.Name
	}

	if patch.Stage != nil {
		o.Stage = *patch.Stage
	}

	if patch.Amount != nil {
		o.Amount = *patch.Amount
	}

	if patch.ClosingDate != nil {
		o.ClosingDate = *patch.ClosingDate
	}

	if patch.OwnerID != nil {
		o.OwnerID = *patch.OwnerID
	}

	if patch.ContactID != nil {
		o.ContactID = *patch.ContactID
	}

	if patch.CompanyID != nil {
		o.CompanyID = *patch.CompanyID
	}
	return o
}
