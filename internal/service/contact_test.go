package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	errs "github.com/nukleohub/commercial/internal/errors"
	"github.com/nukleohub/commercial/internal/model"
	"github.com/nukleohub/commercial/internal/repository"
)

type contactServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	contactRps     repository.ContactRepository
	opportunityRps repository.OpportunityRepository
	companySvc     CompanyService
	contactSvc     ContactService
	opportunitySvc OpportunityService
	company        *model.Company
}

func (s *contactServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	companyRps := repository.NewInMemoryCompanyRepository()
	s.contactRps = repository.NewInMemoryContactRepository()
	s.opportunityRps = repository.NewInMemoryOpportunityRepository()

	s.companySvc = NewCompanyService(companyRps, s.contactRps, s.opportunityRps)
	s.contactSvc = NewContactService(s.contactRps, companyRps, s.opportunityRps)
	s.opportunitySvc = NewOpportunityService(s.opportunityRps, s.contactRps, companyRps)

	company, err := s.companySvc.Create(s.ctx, model.NewCompany{Name: "Acme"})
	s.Require().NoError(err)
	s.company = company
}

func (s *contactServiceTestSuite) newContact(email string) model.NewContact {
	return model.NewContact{FirstName: "John", LastName: "Walls", Email: email, CompanyID: s.company.ID}
}

func (s *contactServiceTestSuite) TestCreateAssignsIDAndTimestamps() {
	contact, err := s.contactSvc.Create(s.ctx, s.newContact("john.walls@acme.com"))
	s.Require().NoError(err)

	s.Assert().Contains(contact.ID, "contact_")
	s.Assert().Nil(contact.Phone)
	s.Assert().Equal(contact.CreatedAt, contact.UpdatedAt)
}

func (s *contactServiceTestSuite) TestCreateRejectsDuplicateEmail() {
	_, err := s.contactSvc.Create(s.ctx, s.newContact("john.walls@acme.com"))
	s.Require().NoError(err)

	_, err = s.contactSvc.Create(s.ctx, s.newContact("john.walls@acme.com"))
	s.Require().Error(err)

	var validationErr *errs.ValidationErr
	s.Require().ErrorAs(err, &validationErr)
	s.Assert().Equal("Contact with this email already exists", validationErr.Error())

	s.T().Log("rejected create must leave the collection unchanged")
	contacts, err := s.contactRps.FindAll(s.ctx, repository.ContactFilter{})
	s.Require().NoError(err)
	s.Assert().Len(contacts, 1)
}

func (s *contactServiceTestSuite) TestCreateEmailComparisonIsCaseSensitive() {
	_, err := s.contactSvc.Create(s.ctx, s.newContact("john.walls@acme.com"))
	s.Require().NoError(err)

	_, err = s.contactSvc.Create(s.ctx, s.newContact("John.Walls@acme.com"))
	s.Assert().NoError(err, "differently cased email is a different email")
}

func (s *contactServiceTestSuite) TestCreateRejectsUnknownCompany() {
	nc := s.newContact("john.walls@acme.com")
	nc.CompanyID = "company_missing"

	_, err := s.contactSvc.Create(s.ctx, nc)

	var validationErr *errs.ValidationErr
	s.Require().ErrorAs(err, &validationErr)
}

func (s *contactServiceTestSuite) TestUpdateRejectsDuplicateEmail() {
	_, err := s.contactSvc.Create(s.ctx, s.newContact("john.walls@acme.com"))
	s.Require().NoError(err)

	other, err := s.contactSvc.Create(s.ctx, s.newContact("jane.doe@acme.com"))
	s.Require().NoError(err)

	email := "john.walls@acme.com"
	_, err = s.contactSvc.Update(s.ctx, model.PatchContact{ID: other.ID, Email: &email})

	var validationErr *errs.ValidationErr
	s.Require().ErrorAs(err, &validationErr)

	unchanged, err := s.contactRps.FindByID(s.ctx, other.ID)
	s.Require().NoError(err)
	s.Assert().Equal("jane.doe@acme.com", unchanged.Email, "rejected update must leave the record untouched")
}

func (s *contactServiceTestSuite) TestUpdateOwnEmailIsAllowed() {
	contact, err := s.contactSvc.Create(s.ctx, s.newContact("john.walls@acme.com"))
	s.Require().NoError(err)

	email := "john.walls@acme.com"
	_, err = s.contactSvc.Update(s.ctx, model.PatchContact{ID: contact.ID, Email: &email})
	s.Assert().NoError(err, "record being updated is excluded from the uniqueness check")
}

func (s *contactServiceTestSuite) TestUpdatePhoneOnly() {
	contact, err := s.contactSvc.Create(s.ctx, s.newContact("john.walls@acme.com"))
	s.Require().NoError(err)

	phone := "+1 555 0100"
	updated, err := s.contactSvc.Update(s.ctx, model.PatchContact{ID: contact.ID, Phone: &phone})
	s.Require().NoError(err)

	s.Require().NotNil(updated.Phone)
	s.Assert().Equal(phone, *updated.Phone)
	s.Assert().Equal(contact.FirstName, updated.FirstName)
	s.Assert().Equal(contact.LastName, updated.LastName)
	s.Assert().Equal(contact.Email, updated.Email)
	s.Assert().Equal(contact.CompanyID, updated.CompanyID)
	s.Assert().True(updated.UpdatedAt.After(contact.UpdatedAt), "updatedAt must move forward")
}

func (s *contactServiceTestSuite) TestDeleteByIDCascadesOpportunities() {
	contact, err := s.contactSvc.Create(s.ctx, s.newContact("john.walls@acme.com"))
	s.Require().NoError(err)

	_, err = s.opportunitySvc.Create(s.ctx, model.NewOpportunity{
		Name:        "Acme rollout",
		Stage:       model.StageNew,
		Amount:      1500,
		ClosingDate: model.NewDate(time.Now().UTC().AddDate(0, 1, 0)),
		OwnerID:     "user_1",
		ContactID:   contact.ID,
		CompanyID:   s.company.ID,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.contactSvc.DeleteByID(s.ctx, contact.ID))

	opportunities, err := s.opportunityRps.FindAll(s.ctx, repository.OpportunityFilter{})
	s.Require().NoError(err)
	s.Assert().Empty(opportunities)
}

func (s *contactServiceTestSuite) TestDeleteByIDNotFound() {
	err := s.contactSvc.DeleteByID(s.ctx, "contact_missing")

	var notFoundErr *errs.NotFoundErr
	s.Require().ErrorAs(err, &notFoundErr)
	s.Assert().Equal("Contact not found", notFoundErr.Error())
}

// start contact service test suite
func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(contactServiceTestSuite))
}
