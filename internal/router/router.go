package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/office-seat-advisor/internal/handler"
	"github.com/iliyamo/office-seat-advisor/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication:
// the health check and employee registration/login.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler) {
	e.GET("/healthz", handler.Health)
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterProtected registers every endpoint that needs an access
// token. The JWT middleware injects the employee identity used as the
// default occupant for reservations.
func RegisterProtected(e *echo.Echo, jwtSecret string, a *handler.AuthHandler, rec *handler.RecommendHandler, res *handler.ReservationHandler, seats *handler.SeatHandler) {
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(jwtSecret))

	v1.GET("/me", a.Me)
	v1.POST("/recommendations", rec.Recommendations)
	v1.GET("/seats", seats.List)
	v1.POST("/seats/reset", res.Reset)
	v1.POST("/seats/:id/reserve", res.Reserve)
	v1.POST("/seats/:id/release", res.Release)
	v1.GET("/stats", seats.Stats)
	v1.GET("/history/export", seats.ExportHistory)
}
