package router

import (
	"github.com/labstack/echo/v4"

	"festiva/internal/auth"
	apperrors "festiva/internal/errors"
	"festiva/internal/handler"
	"festiva/internal/model"
)

// RequireSession loads the persisted session and places the user on the
// request context. Requests without an active session are rejected.
func RequireSession(sessions auth.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := sessions.Current(c.Request().Context())
			if !ok {
				he := apperrors.MapErrorToHTTP(apperrors.ErrUnauthorized)
				return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
			}
			c.Set(handler.SessionUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin rejects session users without the admin role. Must run
// after RequireSession.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(handler.SessionUserKey).(model.User)
			if !ok || !user.IsAdmin() {
				he := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
				return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
			}
			return next(c)
		}
	}
}
