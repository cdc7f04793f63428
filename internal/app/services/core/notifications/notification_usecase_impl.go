package notifications

import (
	"context"
	"skinbloom-service/internal/app/contracts"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/dto/responses"
	"skinbloom-service/internal/pkg/utils"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
}

func NewNotificationUsecase(notificationRepository contracts.NotificationRepository) contracts.NotificationUsecase {
	return &notificationUsecase{
		NotificationRepository: notificationRepository,
	}
}

func (uc *notificationUsecase) ListNotifications(ctx context.Context, sessionData string) ([]responses.Notification, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}

	notifications, err := uc.NotificationRepository.FindByRecipientID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Notification, 0, len(notifications))
	for _, notification := range notifications {
		result = append(result, buildNotificationResponse(&notification))
	}
	return result, nil
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, sessionData, notificationID string) error {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return err
	}
	return uc.NotificationRepository.MarkRead(ctx, notificationID, session.UserID)
}

func (uc *notificationUsecase) DeleteNotification(ctx context.Context, sessionData, notificationID string) error {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return err
	}
	return uc.NotificationRepository.DeleteNotification(ctx, notificationID, session.UserID)
}

func buildNotificationResponse(notification *models.Notification) responses.Notification {
	return responses.Notification{
		ID:         notification.ID,
		Type:       notification.Type,
		Title:      notification.Title,
		Message:    notification.Message,
		ResourceID: notification.ResourceID,
		Read:       notification.Read,
		CreatedAt:  notification.CreatedAt,
	}
}
