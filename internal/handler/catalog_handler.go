package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"festiva/internal/model"
	"festiva/internal/service"
)

// CatalogHandler serves the public catalog and the admin catalog mutations.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// VenueRequest represents a venue create or update.
type VenueRequest struct {
	Name     string          `json:"name" validate:"required"`
	Location string          `json:"location" validate:"required"`
	Capacity int             `json:"capacity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
}

// ServiceRequest represents an event-service create or update.
type ServiceRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Themes      []string        `json:"themes"`
	ImageURL    string          `json:"imageUrl"`
}

// OptionsResponse lists the fixed booking form options.
type OptionsResponse struct {
	CateringPackages       []string `json:"cateringPackages"`
	FoodPresentationStyles []string `json:"foodPresentationStyles"`
}

// ListVenues godoc
// @Summary List venues
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Venue
// @Router /venues [get]
func (h *CatalogHandler) ListVenues(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalogService.ListVenues(c.Request().Context()))
}

// ListServices godoc
// @Summary List event services
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Service
// @Router /services [get]
func (h *CatalogHandler) ListServices(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalogService.ListServices(c.Request().Context()))
}

// Options godoc
// @Summary List catering packages and presentation styles
// @Tags catalog
// @Produce json
// @Success 200 {object} OptionsResponse
// @Router /options [get]
func (h *CatalogHandler) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, OptionsResponse{
		CateringPackages:       model.CateringPackages,
		FoodPresentationStyles: model.FoodPresentationStyles,
	})
}

// CreateVenue godoc
// @Summary Create a venue
// @Tags admin
// @Accept json
// @Produce json
// @Param request body VenueRequest true "Venue data"
// @Success 201 {object} model.Venue
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/venues [post]
func (h *CatalogHandler) CreateVenue(c echo.Context) error {
	venue, err := h.bindVenue(c, "")
	if err != nil {
		return err
	}
	saved, serr := h.catalogService.SaveVenue(c.Request().Context(), venue)
	if serr != nil {
		return httpError(serr)
	}
	return c.JSON(http.StatusCreated, saved)
}

// UpdateVenue godoc
// @Summary Update a venue
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Venue id"
// @Param request body VenueRequest true "Venue data"
// @Success 200 {object} model.Venue
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/venues/{id} [put]
func (h *CatalogHandler) UpdateVenue(c echo.Context) error {
	venue, err := h.bindVenue(c, c.Param("id"))
	if err != nil {
		return err
	}
	saved, serr := h.catalogService.SaveVenue(c.Request().Context(), venue)
	if serr != nil {
		return httpError(serr)
	}
	return c.JSON(http.StatusOK, saved)
}

// DeleteVenue godoc
// @Summary Delete a venue
// @Tags admin
// @Produce json
// @Param id path string true "Venue id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/venues/{id} [delete]
func (h *CatalogHandler) DeleteVenue(c echo.Context) error {
	if err := h.catalogService.DeleteVenue(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "venue deleted"})
}

// CreateService godoc
// @Summary Create an event service
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ServiceRequest true "Service data"
// @Success 201 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/services [post]
func (h *CatalogHandler) CreateService(c echo.Context) error {
	svc, err := h.bindService(c, "")
	if err != nil {
		return err
	}
	saved, serr := h.catalogService.SaveService(c.Request().Context(), svc)
	if serr != nil {
		return httpError(serr)
	}
	return c.JSON(http.StatusCreated, saved)
}

// UpdateService godoc
// @Summary Update an event service
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Service id"
// @Param request body ServiceRequest true "Service data"
// @Success 200 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/services/{id} [put]
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	svc, err := h.bindService(c, c.Param("id"))
	if err != nil {
		return err
	}
	saved, serr := h.catalogService.SaveService(c.Request().Context(), svc)
	if serr != nil {
		return httpError(serr)
	}
	return c.JSON(http.StatusOK, saved)
}

// DeleteService godoc
// @Summary Delete an event service
// @Tags admin
// @Produce json
// @Param id path string true "Service id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	if err := h.catalogService.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "service deleted"})
}

func (h *CatalogHandler) bindVenue(c echo.Context, id string) (model.Venue, error) {
	var req VenueRequest
	if err := c.Bind(&req); err != nil {
		return model.Venue{}, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return model.Venue{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return model.Venue{
		ID:       id,
		Name:     req.Name,
		Location: req.Location,
		Capacity: req.Capacity,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	}, nil
}

func (h *CatalogHandler) bindService(c echo.Context, id string) (model.Service, error) {
	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return model.Service{}, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return model.Service{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return model.Service{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Themes:      req.Themes,
		ImageURL:    req.ImageURL,
	}, nil
}
