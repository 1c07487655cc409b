package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "festiva/internal/errors"
	"festiva/internal/service"
)

// FeedbackHandler handles feedback submission and the admin listing.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// FeedbackRequest represents a feedback submission.
type FeedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// Submit godoc
// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body FeedbackRequest true "Feedback"
// @Success 201 {object} model.Feedback
// @Failure 400 {object} errors.ErrorResponse
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return httpError(apperrors.ErrUnauthorized)
	}

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.feedbackService.Submit(c.Request().Context(), service.FeedbackInput{
		ClientID:   user.ID,
		ClientName: user.Name,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// List godoc
// @Summary List all feedback
// @Tags admin
// @Produce json
// @Success 200 {array} model.Feedback
// @Router /admin/feedback [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.feedbackService.List(c.Request().Context()))
}
