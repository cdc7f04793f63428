package routers

import (
	"skinbloom-service/internal/app/delivery/http/controllers"
	"skinbloom-service/internal/app/delivery/http/middlewares"
	"skinbloom-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachTicketRoutes(router chi.Router, middlewares *middlewares.Middlewares, ticketController *controllers.TicketController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", ticketController.SubmitTicket)
	router.Get("/", ticketController.ListTickets)
	router.Get("/{ticketID}", ticketController.GetTicket)
	router.Post("/{ticketID}/messages", ticketController.AddMessage)
	router.Post("/{ticketID}/payment-session", ticketController.CreatePaymentSession)
	router.Post("/payment/verify", ticketController.VerifyPayment)

	router.With(middlewares.RequireRoles(constvars.RoleTypeDermatologist)).
		Post("/{ticketID}/assign", ticketController.AssignTicket)
	router.With(middlewares.RequireRoles(constvars.RoleTypeDermatologist)).
		Post("/{ticketID}/consultation", ticketController.ProvideConsultation)
	router.With(middlewares.RequireRoles(constvars.RoleTypeDermatologist)).
		Post("/{ticketID}/solve", ticketController.MarkSolved)
	router.With(middlewares.RequireRoles(constvars.RoleTypeAdmin)).
		Post("/{ticketID}/close", ticketController.CloseTicket)
}
