package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "festiva/internal/errors"
	"festiva/internal/model"
	"festiva/internal/service"
)

// OrderHandler handles booking confirmation and the order lifecycle.
type OrderHandler struct {
	bookingService service.BookingService
	orderService   service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(bookingService service.BookingService, orderService service.OrderService) *OrderHandler {
	return &OrderHandler{bookingService: bookingService, orderService: orderService}
}

// OrderRequest represents a booking draft submitted for confirmation.
// Event date, theme and venue are checked by the booking flow itself so an
// incomplete draft answers with INCOMPLETE_BOOKING rather than a bind error.
type OrderRequest struct {
	EventType        string `json:"eventType" validate:"required"`
	EventDate        string `json:"eventDate"`
	VenueID          string `json:"venueId"`
	Theme            string `json:"theme"`
	Catering         string `json:"catering"`
	FoodPresentation string `json:"foodPresentation"`
}

// StatusUpdateRequest represents an admin status change.
type StatusUpdateRequest struct {
	Status model.OrderStatus `json:"status" validate:"required,oneof=Pending Confirmed Completed Cancelled"`
}

// Create godoc
// @Summary Confirm a new booking
// @Tags orders
// @Accept json
// @Produce json
// @Param request body OrderRequest true "Booking draft"
// @Success 201 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return httpError(apperrors.ErrUnauthorized)
	}
	draft, err := h.bindDraft(c, user)
	if err != nil {
		return err
	}

	order, serr := h.bookingService.Confirm(c.Request().Context(), draft)
	if serr != nil {
		return httpError(serr)
	}
	return c.JSON(http.StatusCreated, order)
}

// Update godoc
// @Summary Edit an existing booking
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order id"
// @Param request body OrderRequest true "Booking draft"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return httpError(apperrors.ErrUnauthorized)
	}

	existing, err := h.orderService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if existing.ClientID != user.ID {
		return httpError(apperrors.ErrForbidden)
	}

	draft, herr := h.bindDraft(c, user)
	if herr != nil {
		return herr
	}
	draft.ID = existing.ID

	order, serr := h.bookingService.Confirm(c.Request().Context(), draft)
	if serr != nil {
		return httpError(serr)
	}
	return c.JSON(http.StatusOK, order)
}

// List godoc
// @Summary List the session user's orders
// @Tags orders
// @Produce json
// @Success 200 {array} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return httpError(apperrors.ErrUnauthorized)
	}
	return c.JSON(http.StatusOK, h.orderService.ListByClient(c.Request().Context(), user.ID))
}

// Cancel godoc
// @Summary Cancel a booking (removes the order)
// @Tags orders
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [delete]
func (h *OrderHandler) Cancel(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return httpError(apperrors.ErrUnauthorized)
	}
	if err := h.orderService.Cancel(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "booking cancelled"})
}

// ListAll godoc
// @Summary List all orders, optionally filtered by status
// @Tags admin
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {array} model.Order
// @Router /admin/orders [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	status := model.OrderStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
	}
	return c.JSON(http.StatusOK, h.orderService.ListAll(c.Request().Context(), status))
}

// UpdateStatus godoc
// @Summary Set an order's status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Order id"
// @Param request body StatusUpdateRequest true "New status"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) bindDraft(c echo.Context, user model.User) (model.Order, error) {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return model.Order{}, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return model.Order{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Catering == "" {
		req.Catering = model.CateringPackages[0]
	}
	if req.FoodPresentation == "" {
		req.FoodPresentation = model.FoodPresentationStyles[0]
	}
	return model.Order{
		ClientID:         user.ID,
		ClientName:       user.Name,
		EventType:        req.EventType,
		EventDate:        req.EventDate,
		VenueID:          req.VenueID,
		Theme:            req.Theme,
		Catering:         req.Catering,
		FoodPresentation: req.FoodPresentation,
	}, nil
}
