// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RegisterRoutes registers routes that need no authentication and no
// handler state.  Currently that is only the health check, used by
// load balancers to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers authentication routes.  Unauthenticated
// operations live under /v1/auth; /v1/me and the all-sessions logout
// sit behind the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Single-session logout by refresh token; no JWT required so a
	// client with an expired access token can still end its session.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleCustomer, model.RoleAdmin))
	auth.GET("/me", a.Me)
	// With a bearer and no refresh_token in the body this revokes all
	// of the user's sessions.
	auth.POST("/logout", a.Logout)
}

// RegisterCatalog registers the hotel/room catalog.  Reads are public
// and cached; writes require an ADMIN access token.
func RegisterCatalog(e *echo.Echo, pub *handler.CatalogHandler, adm *handler.AdminCatalogHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	read := e.Group("/v1")
	if cache != nil {
		read.Use(cache)
	}
	read.GET("/hotels", pub.ListHotels)
	read.GET("/hotels/:id", pub.GetHotel)
	read.GET("/hotels/:id/rooms", pub.ListHotelRooms)
	read.GET("/rooms", pub.ListRooms)
	read.GET("/rooms/:id", pub.GetRoom)
	read.GET("/rooms/:id/availability", pub.RoomAvailability)

	write := e.Group("/v1")
	write.Use(middleware.JWTAuth(jwtSecret))
	write.Use(middleware.RequireRole(model.RoleAdmin))
	write.POST("/hotels", adm.CreateHotel)
	write.PUT("/hotels/:id", adm.UpdateHotel)
	write.DELETE("/hotels/:id", adm.DeleteHotel)
	write.POST("/rooms", adm.CreateRoom)
	write.PUT("/rooms/:id", adm.UpdateRoom)
	write.DELETE("/rooms/:id", adm.DeleteRoom)
}

// RegisterReservations registers the booking endpoints.  Every route
// requires an authenticated user; both roles may book.
func RegisterReservations(e *echo.Echo, r *handler.ReservationHandler, jwtSecret string) {
	g := e.Group("/v1/reservations")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleCustomer, model.RoleAdmin))
	g.POST("", r.Create)
	g.GET("", r.List)
	g.GET("/:id", r.Get)
	g.DELETE("/:id", r.Delete)
}
