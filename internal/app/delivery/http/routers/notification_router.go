package routers

import (
	"skinbloom-service/internal/app/delivery/http/controllers"
	"skinbloom-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *controllers.NotificationController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", notificationController.ListNotifications)
	router.Patch("/{notificationID}/read", notificationController.MarkRead)
	router.Delete("/{notificationID}", notificationController.DeleteNotification)
}
