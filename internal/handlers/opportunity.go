package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nukleohub/commercial/internal/model"
	"github.com/nukleohub/commercial/internal/repository"
	"github.com/nukleohub/commercial/internal/service"
)

type moveStage struct {
	ID    string      `param:"id"`
	Stage model.Stage `json:"stage" validate:"required"`
}

// OpportunityHTTPHandler is http handler for opportunity and pipeline endpoints
type OpportunityHTTPHandler struct {
	opportunitySvc service.OpportunityService
}

// NewOpportunityHTTPHandler builds new OpportunityHTTPHandler
func NewOpportunityHTTPHandler(opportunitySvc service.OpportunityService) *OpportunityHTTPHandler {
	return &OpportunityHTTPHandler{opportunitySvc: opportunitySvc}
}

func opportunityFilter(c echo.Context) repository.OpportunityFilter {
	return repository.OpportunityFilter{
		Stage:     model.Stage(c.QueryParam("stage")),
		OwnerID:   c.QueryParam("ownerId"),
		ContactID: c.QueryParam("contactId"),
		CompanyID: c.QueryParam("companyId"),
	}
}

// GetAll lists opportunities
// @Summary     List opportunities
// @Description Returns opportunities, optionally narrowed by stage, owner, contact and/or company
// @Tags        opportunities
// @Produce     json
// @Param       stage     query    string false "Pipeline stage"
// @Param       ownerId   query    string false "Owner id"
// @Param       contactId query    string false "Contact id"
// @Param       companyId query    string false "Company id"
// @Success     200       {array}  model.Opportunity
// @Failure     500       {object} ErrorResponse
// @Router      /commercial/opportunities [get]
func (h *OpportunityHTTPHandler) GetAll(c echo.Context) error {
	opportunities, err := h.opportunitySvc.FindAll(c.Request().Context(), opportunityFilter(c))
	if err != nil {
		return httpError(err, "Failed to fetch opportunities")
	}
	return c.JSON(http.StatusOK, opportunities)
}

// Get gets single opportunity
// @Summary     Get single opportunity by id
// @Description Returns single opportunity with provided id
// @Tags        opportunities
// @Produce     json
// @Param       id     path     string true "Opportunity id"
// @Success     200    {object} model.Opportunity
// @Failure     404    {object} ErrorResponse
// @Failure     500    {object} ErrorResponse
// @Router      /commercial/opportunities/{id} [get]
func (h *OpportunityHTTPHandler) Get(c echo.Context) error {
	opportunity, err := h.opportunitySvc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err, "Failed to fetch opportunity")
	}
	return c.JSON(http.StatusOK, opportunity)
}

// Post creates new opportunity
// @Summary     New opportunity
// @Description Creates new opportunity referencing an existing contact and company
// @Tags        opportunities
// @Accept      json
// @Produce     json
// @Param       newOpportunity body     model.NewOpportunity true "Data for new opportunity"
// @Success     201            {object} model.Opportunity
// @Failure     400            {object} ErrorResponse
// @Failure     500            {object} ErrorResponse
// @Router      /commercial/opportunities [post]
func (h *OpportunityHTTPHandler) Post(c echo.Context) error {
	var no model.NewOpportunity
	if err := c.Bind(&no); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&no); err != nil {
		return err
	}

	opportunity, err := h.opportunitySvc.Create(c.Request().Context(), no)
	if err != nil {
		return httpError(err, "Failed to create opportunity")
	}
	return c.JSON(http.StatusCreated, opportunity)
}

// Put updates opportunity
// @Summary     Update opportunity
// @Description Merges provided fields onto the existing opportunity
// @Tags        opportunities
// @Accept      json
// @Produce     json
// @Param       id               path     string                 true "Opportunity id"
// @Param       patchOpportunity body     model.PatchOpportunity true "Opportunity fields to change"
// @Success     200              {object} model.Opportunity
// @Failure     400              {object} ErrorResponse
// @Failure     404              {object} ErrorResponse
// @Failure     500              {object} ErrorResponse
// @Router      /commercial/opportunities/{id} [put]
func (h *OpportunityHTTPHandler) Put(c echo.Context) error {
	var patch model.PatchOpportunity
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&patch); err != nil {
		return err
	}

	opportunity, err := h.opportunitySvc.Update(c.Request().Context(), patch)
	if err != nil {
		return httpError(err, "Failed to update opportunity")
	}
	return c.JSON(http.StatusOK, opportunity)
}

// DeleteByID deletes opportunity
// @Summary     Delete opportunity by id
// @Description Deletes opportunity with provided id
// @Tags        opportunities
// @Produce     json
// @Param       id     path     string true "Opportunity id"
// @Success     200    {object} DeleteResponse
// @Failure     404    {object} ErrorResponse
// @Failure     500    {object} ErrorResponse
// @Router      /commercial/opportunities/{id} [delete]
func (h *OpportunityHTTPHandler) DeleteByID(c echo.Context) error {
	if err := h.opportunitySvc.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err, "Failed to delete opportunity")
	}
	return c.JSON(http.StatusOK, DeleteResponse{Success: true})
}

// PatchStage commits a Kanban move gesture
// @Summary     Move opportunity to another stage
// @Description Sets the pipeline stage, any stage can move to any other stage
// @Tags        opportunities
// @Accept      json
// @Produce     json
// @Param       id        path     string    true "Opportunity id"
// @Param       moveStage body     moveStage true "Target stage"
// @Success     200       {object} model.Opportunity
// @Failure     400       {object} ErrorResponse
// @Failure     404       {object} ErrorResponse
// @Failure     500       {object} ErrorResponse
// @Router      /commercial/opportunities/{id}/stage [patch]
func (h *OpportunityHTTPHandler) PatchStage(c echo.Context) error {
	var ms moveStage
	if err := c.Bind(&ms); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ms); err != nil {
		return err
	}

	opportunity, err := h.opportunitySvc.MoveStage(c.Request().Context(), ms.ID, ms.Stage)
	if err != nil {
		return httpError(err, "Failed to update opportunity")
	}
	return c.JSON(http.StatusOK, opportunity)
}

// GetStats computes pipeline statistics
// @Summary     Pipeline statistics
// @Description Aggregates opportunities into dashboard statistics, same filters as the list
// @Tags        opportunities
// @Produce     json
// @Param       stage     query    string false "Pipeline stage"
// @Param       ownerId   query    string false "Owner id"
// @Param       contactId query    string false "Contact id"
// @Param       companyId query    string false "Company id"
// @Success     200       {object} pipeline.Stats
// @Failure     500       {object} ErrorResponse
// @Router      /commercial/opportunities/stats [get]
func (h *OpportunityHTTPHandler) GetStats(c echo.Context) error {
	stats, err := h.opportunitySvc.Stats(c.Request().Context(), opportunityFilter(c))
	if err != nil {
		return httpError(err, "Failed to fetch pipeline stats")
	}
	return c.JSON(http.StatusOK, stats)
}

// GetBoard groups opportunities into Kanban columns
// @Summary     Pipeline board
// @Description Returns six stage columns in display order with amount subtotals
// @Tags        opportunities
// @Produce     json
// @Success     200    {array}  pipeline.Column
// @Failure     500    {object} ErrorResponse
// @Router      /commercial/opportunities/board [get]
func (h *OpportunityHTTPHandler) GetBoard(c echo.Context) error {
	board, err := h.opportunitySvc.Board(c.Request().Context())
	if err != nil {
		return httpError(err, "Failed to fetch pipeline board")
	}
	return c.JSON(http.StatusOK, board)
}
