package routers

import (
	"skinbloom-service/internal/app/delivery/http/controllers"
	"skinbloom-service/internal/app/delivery/http/middlewares"
	"skinbloom-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	// Slot discovery is public; everything else requires a session.
	router.Get("/slots", bookingController.GetAvailableSlots)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)

		r.Post("/", bookingController.CreateBooking)
		r.Get("/", bookingController.ListBookings)
		r.Get("/{bookingID}", bookingController.GetBooking)
		r.Patch("/{bookingID}/status", bookingController.UpdateBookingStatus)
		r.Post("/{bookingID}/payment-session", bookingController.CreatePaymentSession)
		r.Post("/payment/verify", bookingController.VerifyPayment)

		r.With(middlewares.RequireRoles(constvars.RoleTypeDermatologist)).
			Post("/{bookingID}/start", bookingController.StartConsultation)
	})
}
