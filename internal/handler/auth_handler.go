package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "festiva/internal/errors"
	"festiva/internal/model"
	"festiva/internal/service"
)

// SessionUserKey is the echo context key under which the session middleware
// stores the authenticated user.
const SessionUserKey = "sessionUser"

// currentUser returns the user placed on the context by the session middleware.
func currentUser(c echo.Context) (model.User, bool) {
	user, ok := c.Get(SessionUserKey).(model.User)
	return user, ok
}

// httpError converts a domain error into an echo HTTP error.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// AuthHandler handles authentication and profile endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdateRequest represents a profile update. Email cannot change.
type ProfileUpdateRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is a user with the password blanked.
type UserResponse struct {
	User model.User `json:"user"`
}

func userResponse(user model.User) UserResponse {
	user.Password = ""
	return UserResponse{User: user}
}

// Signup godoc
// @Summary Create a client account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Signup(c.Request().Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, userResponse(user))
}

// Login godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, userResponse(user))
}

// Logout godoc
// @Summary Clear the active session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context()); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "signed out"})
}

// Me godoc
// @Summary Return the active session user
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return httpError(apperrors.ErrUnauthorized)
	}
	return c.JSON(http.StatusOK, userResponse(user))
}

// UpdateProfile godoc
// @Summary Update name, phone and password of the session user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ProfileUpdateRequest true "Profile data"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return httpError(apperrors.ErrUnauthorized)
	}

	var req ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.authService.UpdateProfile(c.Request().Context(), service.ProfileUpdateInput{
		ID:       user.ID,
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, userResponse(updated))
}
