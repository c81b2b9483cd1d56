package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nukleohub/commercial/internal/model"
	"github.com/nukleohub/commercial/internal/repository"
	"github.com/nukleohub/commercial/internal/service"
)

// CompanyHTTPHandler is http handler for company endpoints
type CompanyHTTPHandler struct {
	companySvc service.CompanyService
}

// NewCompanyHTTPHandler builds new CompanyHTTPHandler
func NewCompanyHTTPHandler(companySvc service.CompanyService) *CompanyHTTPHandler {
	return &CompanyHTTPHandler{companySvc: companySvc}
}

// GetAll lists companies
// @Summary     List companies
// @Description Returns companies, optionally narrowed by a case-insensitive name substring
// @Tags        companies
// @Produce     json
// @Param       name   query    string false "Name substring"
// @Success     200    {array}  model.Company
// @Failure     500    {object} ErrorResponse
// @Router      /commercial/companies [get]
func (h *CompanyHTTPHandler) GetAll(c echo.Context) error {
	filter := repository.CompanyFilter{Name: c.QueryParam("name")}

	companies, err := h.companySvc.FindAll(c.Request().Context(), filter)
	if err != nil {
		return httpError(err, "Failed to fetch companies")
	}
	return c.JSON(http.StatusOK, companies)
}

// Get gets single company
// @Summary     Get single company by id
// @Description Returns single company with provided id
// @Tags        companies
// @Produce     json
// @Param       id     path     string true "Company id"
// @Success     200    {object} model.Company
// @Failure     404    {object} ErrorResponse
// @Failure     500    {object} ErrorResponse
// @Router      /commercial/companies/{id} [get]
func (h *CompanyHTTPHandler) Get(c echo.Context) error {
	company, err := h.companySvc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err, "Failed to fetch company")
	}
	return c.JSON(http.StatusOK, company)
}

// Post creates new company
// @Summary     New company
// @Description Creates new company
// @Tags        companies
// @Accept      json
// @Produce     json
// @Param       newCompany body     model.NewCompany true "Data for new company"
// @Success     201        {object} model.Company
// @Failure     400        {object} ErrorResponse
// @Failure     500        {object} ErrorResponse
// @Router      /commercial/companies [post]
func (h *CompanyHTTPHandler) Post(c echo.Context) error {
	var nc model.NewCompany
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	company, err := h.companySvc.Create(c.Request().Context(), nc)
	if err != nil {
		return httpError(err, "Failed to create company")
	}
	return c.JSON(http.StatusCreated, company)
}

// Put updates company
// @Summary     Update company
// @Description Merges provided fields onto the existing company
// @Tags        companies
// @Accept      json
// @Produce     json
// @Param       id           path     string             true "Company id"
// @Param       patchCompany body     model.PatchCompany true "Company fields to change"
// @Success     200          {object} model.Company
// @Failure     400          {object} ErrorResponse
// @Failure     404          {object} ErrorResponse
// @Failure     500          {object} ErrorResponse
// @Router      /commercial/companies/{id} [put]
func (h *CompanyHTTPHandler) Put(c echo.Context) error {
	var patch model.PatchCompany
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&patch); err != nil {
		return err
	}

	company, err := h.companySvc.Update(c.Request().Context(), patch)
	if err != nil {
		return httpError(err, "Failed to update company")
	}
	return c.JSON(http.StatusOK, company)
}

// DeleteByID deletes company
// @Summary     Delete company by id
// @Description Deletes company with provided id together with its contacts and opportunities
// @Tags        companies
// @Produce     json
// @Param       id     path     string true "Company id"
// @Success     200    {object} DeleteResponse
// @Failure     404    {object} ErrorResponse
// @Failure     500    {object} ErrorResponse
// @Router      /commercial/companies/{id} [delete]
func (h *CompanyHTTPHandler) DeleteByID(c echo.Context) error {
	if err := h.companySvc.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err, "Failed to delete company")
	}
	return c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
