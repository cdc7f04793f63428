package contracts

import (
	"context"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/dto/responses"
)

// NotificationDispatcher emits a notification as a fire-and-forget event
// after the primary state change commits. Implementations must never return
// delivery failures to the caller; they log and move on.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, notification *models.Notification)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) (string, error)
	FindByRecipientID(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID, recipientID string) error
	DeleteNotification(ctx context.Context, notificationID, recipientID string) error
}

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, sessionData string) ([]responses.Notification, error)
	MarkRead(ctx context.Context, sessionData, notificationID string) error
	DeleteNotification(ctx context.Context, sessionData, notificationID string) error
}
