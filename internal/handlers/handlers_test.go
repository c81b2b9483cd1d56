package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/nukleohub/commercial/internal/handlers"
	"github.com/nukleohub/commercial/internal/infra"
	"github.com/nukleohub/commercial/internal/model"
	"github.com/nukleohub/commercial/internal/pipeline"
)

type handlersTestSuite struct {
	suite.Suite
	app *echo.Echo
}

func (s *handlersTestSuite) SetupTest() {
	app, err := infra.Router()
	s.Require().NoError(err, "failed to build application")
	s.app = app
}

func (s *handlersTestSuite) request(method, target, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.app.ServeHTTP(rec, req)
	return rec
}

func (s *handlersTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *handlersTestSuite) createCompany(name string) model.Company {
	rec := s.request(http.MethodPost, "/commercial/companies", fmt.Sprintf(`{"name":%q}`, name))
	s.Require().Equal(http.StatusCreated, rec.Code)

	var company model.Company
	s.decode(rec, &company)
	return company
}

func (s *handlersTestSuite) createContact(email, companyID string) model.Contact {
	payload := fmt.Sprintf(`{"firstName":"John","lastName":"Walls","email":%q,"companyId":%q}`, email, companyID)
	rec := s.request(http.MethodPost, "/commercial/contacts", payload)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var contact model.Contact
	s.decode(rec, &contact)
	return contact
}

func (s *handlersTestSuite) createOpportunity(stage string, amount float64, contactID, companyID string) model.Opportunity {
	payload := fmt.Sprintf(
		`{"name":"Acme rollout","stage":%q,"amount":%v,"closingDate":"2026-10-15","ownerId":"user_1","contactId":%q,"companyId":%q}`,
		stage, amount, contactID, companyID,
	)
	rec := s.request(http.MethodPost, "/commercial/opportunities", payload)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var opportunity model.Opportunity
	s.decode(rec, &opportunity)
	return opportunity
}

func (s *handlersTestSuite) TestCompanyRoundTrip() {
	created := s.createCompany("Acme")

	s.Assert().True(strings.HasPrefix(created.ID, "company_"))
	s.Assert().Nil(created.Address)
	s.Assert().Nil(created.Website)
	s.Assert().Equal(created.CreatedAt, created.UpdatedAt)

	rec := s.request(http.MethodGet, "/commercial/companies/"+created.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var fetched model.Company
	s.decode(rec, &fetched)
	s.Assert().Equal("Acme", fetched.Name)
	s.Assert().Equal(created.ID, fetched.ID)
}

func (s *handlersTestSuite) TestCompanyPostMissingName() {
	rec := s.request(http.MethodPost, "/commercial/companies", `{"website":"https://acme.example"}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var body handlers.ErrorResponse
	s.decode(rec, &body)
	s.Assert().NotEmpty(body.Error)
}

func (s *handlersTestSuite) TestCompanyListNameFilter() {
	s.createCompany("Acme Industries")
	s.createCompany("Globex")

	rec := s.request(http.MethodGet, "/commercial/companies?name=acme", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var companies []model.Company
	s.decode(rec, &companies)
	s.Require().Len(companies, 1)
	s.Assert().Equal("Acme Industries", companies[0].Name)

	s.T().Log("repeated listing without mutations must be identical")
	again := s.request(http.MethodGet, "/commercial/companies?name=acme", "")
	s.Assert().Equal(rec.Body.String(), again.Body.String())
}

func (s *handlersTestSuite) TestCompanyDeleteTwice() {
	created := s.createCompany("Acme")

	rec := s.request(http.MethodDelete, "/commercial/companies/"+created.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var ack handlers.DeleteResponse
	s.decode(rec, &ack)
	s.Assert().True(ack.Success)

	rec = s.request(http.MethodDelete, "/commercial/companies/"+created.ID, "")
	s.Require().Equal(http.StatusNotFound, rec.Code)

	var body handlers.ErrorResponse
	s.decode(rec, &body)
	s.Assert().Equal("Company not found", body.Error)
}

func (s *handlersTestSuite) TestContactDuplicateEmail() {
	company := s.createCompany("Acme")
	s.createContact("john.walls@acme.com", company.ID)

	payload := fmt.Sprintf(`{"firstName":"Jane","lastName":"Doe","email":"john.walls@acme.com","companyId":%q}`, company.ID)
	rec := s.request(http.MethodPost, "/commercial/contacts", payload)
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var body handlers.ErrorResponse
	s.decode(rec, &body)
	s.Assert().Equal("Contact with this email already exists", body.Error)

	listRec := s.request(http.MethodGet, "/commercial/contacts", "")
	s.Require().Equal(http.StatusOK, listRec.Code)

	var contacts []model.Contact
	s.decode(listRec, &contacts)
	s.Assert().Len(contacts, 1, "rejected create must leave the collection unchanged")
}

func (s *handlersTestSuite) TestContactPutPhoneOnly() {
	company := s.createCompany("Acme")
	contact := s.createContact("john.walls@acme.com", company.ID)

	rec := s.request(http.MethodPut, "/commercial/contacts/"+contact.ID, `{"phone":"+1 555 0100"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated model.Contact
	s.decode(rec, &updated)

	s.Require().NotNil(updated.Phone)
	s.Assert().Equal("+1 555 0100", *updated.Phone)
	s.Assert().Equal(contact.FirstName, updated.FirstName)
	s.Assert().Equal(contact.LastName, updated.LastName)
	s.Assert().Equal(contact.Email, updated.Email)
	s.Assert().Equal(contact.CompanyID, updated.CompanyID)
	s.Assert().True(updated.UpdatedAt.After(contact.UpdatedAt))
}

func (s *handlersTestSuite) TestContactListByCompany() {
	acme := s.createCompany("Acme")
	globex := s.createCompany("Globex")
	s.createContact("john.walls@acme.com", acme.ID)
	s.createContact("bob@globex.com", globex.ID)

	rec := s.request(http.MethodGet, "/commercial/contacts?companyId="+globex.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var contacts []model.Contact
	s.decode(rec, &contacts)
	s.Require().Len(contacts, 1)
	s.Assert().Equal("bob@globex.com", contacts[0].Email)
}

func (s *handlersTestSuite) TestOpportunityCreateAndFilterByStage() {
	company := s.createCompany("Acme")
	contact := s.createContact("john.walls@acme.com", company.ID)

	created := s.createOpportunity("Negotiation", 5000, contact.ID, company.ID)
	s.Assert().True(strings.HasPrefix(created.ID, "opp_"), "id prefix must not depend on the stage")
	s.Assert().Equal(float64(5000), created.Amount)

	rec := s.request(http.MethodGet, "/commercial/opportunities?stage=Negotiation", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var opportunities []model.Opportunity
	s.decode(rec, &opportunities)
	s.Require().Len(opportunities, 1)
	s.Assert().Equal(created.ID, opportunities[0].ID)
}

func (s *handlersTestSuite) TestOpportunityPostMissingFields() {
	rec := s.request(http.MethodPost, "/commercial/opportunities", `{"name":"No deal"}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlersTestSuite) TestOpportunityPostDanglingReferences() {
	rec := s.request(
		http.MethodPost,
		"/commercial/opportunities",
		`{"name":"Ghost","stage":"New","amount":100,"closingDate":"2026-10-15","ownerId":"user_1","contactId":"contact_missing","companyId":"company_missing"}`,
	)
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var body handlers.ErrorResponse
	s.decode(rec, &body)
	s.Assert().Equal("Referenced contact does not exist", body.Error)
}

func (s *handlersTestSuite) TestOpportunityMoveStage() {
	company := s.createCompany("Acme")
	contact := s.createContact("john.walls@acme.com", company.ID)
	created := s.createOpportunity("New", 100, contact.ID, company.ID)

	rec := s.request(http.MethodPatch, "/commercial/opportunities/"+created.ID+"/stage", `{"stage":"Won"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var moved model.Opportunity
	s.decode(rec, &moved)
	s.Assert().Equal(model.StageWon, moved.Stage)

	listRec := s.request(http.MethodGet, "/commercial/opportunities?stage=Won", "")
	var opportunities []model.Opportunity
	s.decode(listRec, &opportunities)
	s.Require().Len(opportunities, 1)
	s.Assert().Equal(created.ID, opportunities[0].ID)
}

func (s *handlersTestSuite) TestOpportunityMoveStageUnknownValue() {
	company := s.createCompany("Acme")
	contact := s.createContact("john.walls@acme.com", company.ID)
	created := s.createOpportunity("New", 100, contact.ID, company.ID)

	rec := s.request(http.MethodPatch, "/commercial/opportunities/"+created.ID+"/stage", `{"stage":"Recycled"}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlersTestSuite) TestPipelineStatsEmpty() {
	rec := s.request(http.MethodGet, "/commercial/opportunities/stats", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var stats pipeline.Stats
	s.decode(rec, &stats)

	s.Assert().Equal(0, stats.TotalOpportunities)
	s.Assert().Equal(float64(0), stats.TotalAmount)
	s.Assert().Equal(float64(0), stats.ConversionRate)
	s.Require().Len(stats.OpportunitiesByStage, 6, "all six stages must be reported even when empty")
	for _, stage := range model.Stages() {
		s.Assert().Equal(0, stats.OpportunitiesByStage[stage])
	}
}

func (s *handlersTestSuite) TestPipelineStats() {
	company := s.createCompany("Acme")
	contact := s.createContact("john.walls@acme.com", company.ID)
	s.createOpportunity("Won", 4000, contact.ID, company.ID)
	s.createOpportunity("New", 1000, contact.ID, company.ID)

	rec := s.request(http.MethodGet, "/commercial/opportunities/stats", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var stats pipeline.Stats
	s.decode(rec, &stats)

	s.Assert().Equal(2, stats.TotalOpportunities)
	s.Assert().Equal(float64(5000), stats.TotalAmount)
	s.Assert().Equal(1, stats.WonOpportunities)
	s.Assert().Equal(float64(4000), stats.WonAmount)
	s.Assert().Equal(float64(50), stats.ConversionRate)
}

func (s *handlersTestSuite) TestPipelineBoard() {
	company := s.createCompany("Acme")
	contact := s.createContact("john.walls@acme.com", company.ID)
	s.createOpportunity("Proposal", 700, contact.ID, company.ID)
	s.createOpportunity("Proposal", 300, contact.ID, company.ID)

	rec := s.request(http.MethodGet, "/commercial/opportunities/board", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var board []pipeline.Column
	s.decode(rec, &board)
	s.Require().Len(board, 6)

	for i, stage := range model.Stages() {
		s.Assert().Equal(stage, board[i].Stage, "columns must follow display order")
	}

	proposal := board[2]
	s.Assert().Len(proposal.Opportunities, 2)
	s.Assert().Equal(float64(1000), proposal.TotalAmount)
}

func (s *handlersTestSuite) TestGetUnknownIDs() {
	for entity, target := range map[string]string{
		"Company":     "/commercial/companies/company_missing",
		"Contact":     "/commercial/contacts/contact_missing",
		"Opportunity": "/commercial/opportunities/opp_missing",
	} {
		rec := s.request(http.MethodGet, target, "")
		s.Require().Equal(http.StatusNotFound, rec.Code)

		var body handlers.ErrorResponse
		s.decode(rec, &body)
		s.Assert().Equal(entity+" not found", body.Error)
	}
}

func (s *handlersTestSuite) TestCompanyDeleteCascades() {
	company := s.createCompany("Acme")
	contact := s.createContact("john.walls@acme.com", company.ID)
	s.createOpportunity("New", 100, contact.ID, company.ID)

	rec := s.request(http.MethodDelete, "/commercial/companies/"+company.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	contactsRec := s.request(http.MethodGet, "/commercial/contacts", "")
	var contacts []model.Contact
	s.decode(contactsRec, &contacts)
	s.Assert().Empty(contacts)

	opportunitiesRec := s.request(http.MethodGet, "/commercial/opportunities", "")
	var opportunities []model.Opportunity
	s.decode(opportunitiesRec, &opportunities)
	s.Assert().Empty(opportunities)
}

// start handlers test suite
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(handlersTestSuite))
}
