package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"festiva/internal/suggest"
)

const defaultGuestCount = 100

// SuggestHandler exposes the theme suggestion provider.
type SuggestHandler struct {
	provider suggest.Provider
}

// NewSuggestHandler creates a new suggestion handler.
func NewSuggestHandler(provider suggest.Provider) *SuggestHandler {
	return &SuggestHandler{provider: provider}
}

// Suggestions godoc
// @Summary Suggest event themes
// @Description Best-effort enrichment; provider failures answer with an empty list.
// @Tags orders
// @Produce json
// @Param eventType query string false "Event type" default(Event)
// @Param guestCount query int false "Guest count" default(100)
// @Success 200 {array} suggest.Suggestion
// @Router /suggestions [get]
func (h *SuggestHandler) Suggestions(c echo.Context) error {
	eventType := c.QueryParam("eventType")
	if eventType == "" {
		eventType = "Event"
	}
	guestCount := defaultGuestCount
	if raw := c.QueryParam("guestCount"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			guestCount = parsed
		}
	}

	// Inherits the request context: a client that navigates away cancels
	// the provider call and the late result is dropped.
	suggestions := h.provider.Suggest(c.Request().Context(), eventType, guestCount)
	return c.JSON(http.StatusOK, suggestions)
}
