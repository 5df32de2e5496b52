package routes

import (
	"erable/agenda"
	"erable/analytics"
	"erable/auth"
	"erable/booking"
	"erable/floorplan"
	"erable/middleware"
	"erable/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/register", middleware.Authenticate(middleware.RequireRole("manager", auth.Register)))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddTableRoutes(router *httprouter.Router) {
	router.GET("/api/tables", ratelim.RateLimit(floorplan.GetTables))
}

func AddBookingRoutes(router *httprouter.Router) {
	// Guest-facing
	router.GET("/api/availability", ratelim.RateLimit(booking.CheckAvailability))
	router.POST("/api/bookings", ratelim.RateLimit(booking.CreateBooking))

	// Manager dashboard
	router.GET("/api/bookings", middleware.Authenticate(booking.GetBookings))
	router.GET("/api/bookings/:id", middleware.Authenticate(booking.GetBooking))
	router.POST("/api/bookings/:id/checkin", middleware.Authenticate(booking.CheckIn))
	router.POST("/api/bookings/:id/cancel", middleware.Authenticate(booking.CancelBooking))
	router.PUT("/api/bookings/:id/tables", middleware.Authenticate(booking.AssignTables))
	router.GET("/api/bookings/:id/qr", middleware.Authenticate(agenda.BookingQR))
}

func AddDashboardRoutes(router *httprouter.Router) {
	router.GET("/ws/bookings", booking.HandleWS)
}

func AddAnalyticsRoutes(router *httprouter.Router) {
	router.GET("/api/analytics", middleware.Authenticate(analytics.GetAnalytics))
}

func AddAgendaRoutes(router *httprouter.Router) {
	router.GET("/api/agenda/:date/print", middleware.Authenticate(agenda.PrintAgenda))
}
