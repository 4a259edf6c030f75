package main

import (
	"github.com/gin-gonic/gin"

	"github.com/skybook/skybook-web/internal/guard"
	"github.com/skybook/skybook-web/internal/handlers"
	"github.com/skybook/skybook-web/internal/middleware"
)

type pageHandlers struct {
	public   *handlers.PublicHandler
	auth     *handlers.AuthHandler
	search   *handlers.SearchHandler
	bookings *handlers.BookingsHandler
	booking  *handlers.BookingHandler
	admin    *handlers.AdminHandler
	toasts   *handlers.ToastHandler
}

// registerPublicRoutes registers the pages anyone may visit
func registerPublicRoutes(router *gin.Engine, h pageHandlers, formLimit gin.HandlerFunc) {
	router.GET("/", h.public.Home)
	router.GET("/about", h.public.About)
	router.GET("/contact", h.public.Contact)
	router.POST("/contact", formLimit, h.public.SubmitContact)

	router.GET("/login", h.auth.LoginPage)
	router.POST("/login", formLimit, h.auth.Login)
	router.GET("/register", h.auth.RegisterPage)
	router.POST("/register", formLimit, h.auth.Register)
	router.POST("/logout", h.auth.Logout)

	router.GET("/toasts", h.toasts.List)
	router.DELETE("/toasts/:id", h.toasts.Dismiss)
}

// registerUserRoutes registers the traveller pages behind the user guard
func registerUserRoutes(router *gin.Engine, h pageHandlers, userGuard *guard.Guard, formLimit gin.HandlerFunc) {
	user := router.Group("/")
	user.Use(middleware.Protected(userGuard))

	user.GET("/search", h.search.Search)
	user.GET("/search/all", h.search.All)

	user.GET("/bookings", h.bookings.List)
	user.POST("/bookings/refresh", h.bookings.Refresh)
	user.GET("/bookings/:id", h.bookings.Details)
	user.POST("/bookings/:id/cancel", h.bookings.Cancel)

	// The provider return URL is registered before the wizard's :flightId routes
	user.GET("/booking/confirmation", h.booking.Confirmation)
	user.GET("/booking/:flightId", h.booking.Show)
	user.DELETE("/booking/:flightId", h.booking.Discard)
	user.POST("/booking/:flightId/passenger", formLimit, h.booking.SetPassenger)
	user.POST("/booking/:flightId/seat", formLimit, h.booking.SelectSeat)
	user.POST("/booking/:flightId/card", formLimit, h.booking.SetCard)
	user.POST("/booking/:flightId/next", h.booking.Next)
	user.POST("/booking/:flightId/back", h.booking.Back)
}

// registerAdminRoutes registers the back office behind the admin guard
func registerAdminRoutes(router *gin.Engine, h pageHandlers, adminGuard *guard.Guard, formLimit gin.HandlerFunc) {
	admin := router.Group("/admin")
	admin.Use(middleware.Protected(adminGuard))

	admin.GET("", h.admin.Dashboard)
	admin.GET("/stats", h.admin.Stats)

	admin.GET("/flights", h.admin.Flights)
	admin.POST("/flights", formLimit, h.admin.CreateFlight)
	admin.PUT("/flights/:id", formLimit, h.admin.UpdateFlight)
	admin.DELETE("/flights/:id", h.admin.DeleteFlight)
	admin.POST("/flights/:id/cancel", h.admin.CancelFlight)

	admin.GET("/bookings", h.admin.Bookings)
	admin.POST("/bookings/:id/cancel", h.admin.CancelBooking)

	admin.GET("/payments", h.admin.Payments)
	admin.POST("/payments/:id/refund", formLimit, h.admin.Refund)
}
