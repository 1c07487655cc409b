package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"festiva/internal/model"
	"festiva/internal/repository"
	"festiva/internal/service"
)

// AdminHandler serves the admin dashboard analytics and the client roster.
type AdminHandler struct {
	statsService service.StatsService
	users        repository.UserRepository
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(statsService service.StatsService, users repository.UserRepository) *AdminHandler {
	return &AdminHandler{statsService: statsService, users: users}
}

// Stats godoc
// @Summary Dashboard analytics
// @Tags admin
// @Produce json
// @Success 200 {object} service.Stats
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.statsService.Stats(c.Request().Context()))
}

// Clients godoc
// @Summary List client accounts
// @Tags admin
// @Produce json
// @Success 200 {array} model.User
// @Router /admin/clients [get]
func (h *AdminHandler) Clients(c echo.Context) error {
	clients := []model.User{}
	for _, u := range h.users.GetAll(c.Request().Context()) {
		if u.Role == model.RoleClient {
			u.Password = ""
			clients = append(clients, u)
		}
	}
	return c.JSON(http.StatusOK, clients)
}
