package controller

import (
	"gigflow-api/internal/entity"
	"gigflow-api/internal/service"
	"strings"

	"github.com/labstack/echo"
)

const (
	tokenCookieName  = "gigflow.token"
	callerContextKey = "caller"
	bearerPrefix     = "Bearer "
)

// authMiddleware resolves the caller from the token cookie, falling back to
// the Authorization header, and rejects the request when there is none.
func authMiddleware(auth service.Auth) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, err := auth.ResolveCaller(tokenFromRequest(c))
			if err != nil {
				return respondError(c, "authenticate", err)
			}

			c.Set(callerContextKey, caller)

			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(tokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	return ""
}

// callerFrom returns the zero Caller on routes without authMiddleware;
// services reject it.
func callerFrom(c echo.Context) entity.Caller {
	caller, _ := c.Get(callerContextKey).(entity.Caller)

	return caller
}
