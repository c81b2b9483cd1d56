package infra

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/nukleohub/commercial/docs"
	"github.com/nukleohub/commercial/internal/handlers"
	"github.com/nukleohub/commercial/internal/repository"
	"github.com/nukleohub/commercial/internal/service"
	"github.com/nukleohub/commercial/internal/validation"
)

// Router assembles the echo application: in-memory repositories, services,
// handlers and the /commercial route families
func Router() (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	vld, trans, err := buildValidator()
	if err != nil {
		return nil, err
	}

	e.Validator = validation.Echo(vld, trans)
	e.HTTPErrorHandler = errorHandler

	// Repositories
	companyRps := repository.NewInMemoryCompanyRepository()
	contactRps := repository.NewInMemoryContactRepository()
	opportunityRps := repository.NewInMemoryOpportunityRepository()

	// Services
	companySvc := service.NewCompanyService(companyRps, contactRps, opportunityRps)
	contactSvc := service.NewContactService(contactRps, companyRps, opportunityRps)
	opportunitySvc := service.NewOpportunityService(opportunityRps, contactRps, companyRps)

	// Handlers
	companyHandler := handlers.NewCompanyHTTPHandler(companySvc)
	contactHandler := handlers.NewContactHTTPHandler(contactSvc)
	opportunityHandler := handlers.NewOpportunityHTTPHandler(opportunitySvc)

	commercial := e.Group("/commercial")

	// companies
	companiesAPI := commercial.Group("/companies")
	companiesAPI.GET("", companyHandler.GetAll)
	companiesAPI.GET("/:id", companyHandler.Get)
	companiesAPI.POST("", companyHandler.Post)
	companiesAPI.PUT("/:id", companyHandler.Put)
	companiesAPI.DELETE("/:id", companyHandler.DeleteByID)

	// contacts
	contactsAPI := commercial.Group("/contacts")
	contactsAPI.GET("", contactHandler.GetAll)
	contactsAPI.GET("/:id", contactHandler.Get)
	contactsAPI.POST("", contactHandler.Post)
	contactsAPI.PUT("/:id", contactHandler.Put)
	contactsAPI.DELETE("/:id", contactHandler.DeleteByID)

	// opportunities and pipeline views
	opportunitiesAPI := commercial.Group("/opportunities")
	opportunitiesAPI.GET("", opportunityHandler.GetAll)
	opportunitiesAPI.GET("/stats", opportunityHandler.GetStats)
	opportunitiesAPI.GET("/board", opportunityHandler.GetBoard)
	opportunitiesAPI.GET("/:id", opportunityHandler.Get)
	opportunitiesAPI.POST("", opportunityHandler.Post)
	opportunitiesAPI.PUT("/:id", opportunityHandler.Put)
	opportunitiesAPI.PATCH("/:id/stage", opportunityHandler.PatchStage)
	opportunitiesAPI.DELETE("/:id", opportunityHandler.DeleteByID)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

func buildValidator() (*validator.Validate, ut.Translator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)

	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, nil, errors.New("missing en translations for validator")
	}

	vld := validator.New()
	if err := entranslations.RegisterDefaultTranslations(vld, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register en validator translations - %w", err)
	}
	return vld, trans, nil
}

// errorHandler shapes every failure into the wire contract {"error": message}
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	switch e := err.(type) {
	case *echo.HTTPError:
		status = e.Code
		message = fmt.Sprintf("%v", e.Message)
	case *validation.PayloadError:
		status = http.StatusBadRequest
		message = e.Error()
	default:
		logrus.WithError(err).Error("unhandled error on request processing")
	}

	if jsonErr := c.JSON(status, handlers.ErrorResponse{Error: message}); jsonErr != nil {
		logrus.WithError(jsonErr).Error("failed to write error response")
	}
}
