package controller

import (
	_ "gigflow-api/docs"
	"gigflow-api/internal/service"
	"net/http"
	"time"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const docsPath = "/api/docs"

type RouterOptions struct {
	// SecureCookies marks the token cookie Secure (production).
	SecureCookies bool
	TokenTTL      time.Duration
}

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, opts RouterOptions) {
	handler.Use(middleware.Logger())
	handler.Use(middleware.Recover())

	validate := newValidator()
	requireAuth := authMiddleware(services.Auth)

	// Swagger documentation endpoint
	handler.GET(docsPath, func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, docsPath+"/index.html")
	})
	handler.GET(docsPath+"/*", echo.WrapHandler(httpSwagger.Handler(httpSwagger.URL(docsPath+"/doc.json"))))

	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newUserRoutesHandler(api.Group("/auth"), services, validate, opts, requireAuth)
	newGigRoutesHandler(api.Group("/gigs", requireAuth), services, validate)
	newBidRoutesHandler(api.Group("/bids", requireAuth), services, validate)
}
