package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nukleohub/commercial/internal/model"
	"github.com/nukleohub/commercial/internal/repository"
	"github.com/nukleohub/commercial/internal/service"
)

// ContactHTTPHandler is http handler for contact endpoints
type ContactHTTPHandler struct {
	contactSvc service.ContactService
}

// NewContactHTTPHandler builds new ContactHTTPHandler
func NewContactHTTPHandler(contactSvc service.ContactService) *ContactHTTPHandler {
	return &ContactHTTPHandler{contactSvc: contactSvc}
}

// GetAll lists contacts
// @Summary     List contacts
// @Description Returns contacts, optionally narrowed by company and/or exact email
// @Tags        contacts
// @Produce     json
// @Param       companyId query    string false "Company id"
// @Param       email     query    string false "Exact email"
// @Success     200       {array}  model.Contact
// @Failure     500       {object} ErrorResponse
// @Router      /commercial/contacts [get]
func (h *ContactHTTPHandler) GetAll(c echo.Context) error {
	filter := repository.ContactFilter{
		CompanyID: c.QueryParam("companyId"),
		Email:     c.QueryParam("email"),
	}

	contacts, err := h.contactSvc.FindAll(c.Request().Context(), filter)
	if err != nil {
		return httpError(err, "Failed to fetch contacts")
	}
	return c.JSON(http.StatusOK, contacts)
}

// Get gets single contact
// @Summary     Get single contact by id
// @Description Returns single contact with provided id
// @Tags        contacts
// @Produce     json
// @Param       id     path     string true "Contact id"
// @Success     200    {object} model.Contact
// @Failure     404    {object} ErrorResponse
// @Failure     500    {object} ErrorResponse
// @Router      /commercial/contacts/{id} [get]
func (h *ContactHTTPHandler) Get(c echo.Context) error {
	contact, err := h.contactSvc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err, "Failed to fetch contact")
	}
	return c.JSON(http.StatusOK, contact)
}

// Post creates new contact
// @Summary     New contact
// @Description Creates new contact, email must be vacant across the whole collection
// @Tags        contacts
// @Accept      json
// @Produce     json
// @Param       newContact body     model.NewContact true "Data for new contact"
// @Success     201        {object} model.Contact
// @Failure     400        {object} ErrorResponse
// @Failure     500        {object} ErrorResponse
// @Router      /commercial/contacts [post]
func (h *ContactHTTPHandler) Post(c echo.Context) error {
	var nc model.NewContact
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	contact, err := h.contactSvc.Create(c.Request().Context(), nc)
	if err != nil {
		return httpError(err, "Failed to create contact")
	}
	return c.JSON(http.StatusCreated, contact)
}

// Put updates contact
// @Summary     Update contact
// @Description Merges provided fields onto the existing contact, email uniqueness is re-checked on change
// @Tags        contacts
// @Accept      json
// @Produce     json
// @Param       id           path     string             true "Contact id"
// @Param       patchContact body     model.PatchContact true "Contact fields to change"
// @Success     200          {object} model.Contact
// @Failure     400          {object} ErrorResponse
// @Failure     404          {object} ErrorResponse
// @Failure     500          {object} ErrorResponse
// @Router      /commercial/contacts/{id} [put]
func (h *ContactHTTPHandler) Put(c echo.Context) error {
	var patch model.PatchContact
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&patch); err != nil {
		return err
	}

	contact, err := h.contactSvc.Update(c.Request().Context(), patch)
	if err != nil {
		return httpError(err, "Failed to update contact")
	}
	return c.JSON(http.StatusOK, contact)
}

// DeleteByID deletes contact
// @Summary     Delete contact by id
// @Description Deletes contact with provided id together with its opportunities
// @Tags        contacts
// @Produce     json
// @Param       id     path     string true "Contact id"
// @Success     200    {object} DeleteResponse
// @Failure     404    {object} ErrorResponse
// @Failure     500    {object} ErrorResponse
// @Router      /commercial/contacts/{id} [delete]
func (h *ContactHTTPHandler) DeleteByID(c echo.Context) error {
	if err := h.contactSvc.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err, "Failed to delete contact")
	}
	return c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
