package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"festiva/internal/auth"
	"festiva/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions auth.SessionStore,
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	orderHandler *handler.OrderHandler,
	feedbackHandler *handler.FeedbackHandler,
	suggestHandler *handler.SuggestHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/venues", catalogHandler.ListVenues)
	api.GET("/services", catalogHandler.ListServices)
	api.GET("/options", catalogHandler.Options)

	// Routes that require an active session
	secured := api.Group("", RequireSession(sessions))
	secured.GET("/me", authHandler.Me)
	secured.PUT("/profile", authHandler.UpdateProfile)
	secured.POST("/orders", orderHandler.Create)
	secured.GET("/orders", orderHandler.List)
	secured.PUT("/orders/:id", orderHandler.Update)
	secured.DELETE("/orders/:id", orderHandler.Cancel)
	secured.POST("/feedback", feedbackHandler.Submit)
	secured.GET("/suggestions", suggestHandler.Suggestions)

	// Admin-only routes
	admin := secured.Group("/admin", RequireAdmin())
	admin.GET("/orders", orderHandler.ListAll)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	admin.POST("/venues", catalogHandler.CreateVenue)
	admin.PUT("/venues/:id", catalogHandler.UpdateVenue)
	admin.DELETE("/venues/:id", catalogHandler.DeleteVenue)
	admin.POST("/services", catalogHandler.CreateService)
	admin.PUT("/services/:id", catalogHandler.UpdateService)
	admin.DELETE("/services/:id", catalogHandler.DeleteService)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/clients", adminHandler.Clients)
	admin.GET("/feedback", feedbackHandler.List)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
