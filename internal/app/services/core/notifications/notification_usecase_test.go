package notifications

import (
	"context"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	args := m.Called(ctx, notification)
	return args.String(0), args.Error(1)
}

func (m *MockNotificationRepository) FindByRecipientID(ctx context.Context, recipientID string) ([]models.Notification, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, notificationID, recipientID string) error {
	args := m.Called(ctx, notificationID, recipientID)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteNotification(ctx context.Context, notificationID, recipientID string) error {
	args := m.Called(ctx, notificationID, recipientID)
	return args.Error(0)
}

func sessionDataFor(t *testing.T, userID, role string) string {
	t.Helper()
	sessionData, err := utils.MarshalSessionData(&models.Session{UserID: userID, Role: role})
	assert.NoError(t, err)
	return sessionData
}

func TestNotificationUsecase(t *testing.T) {
	patientSession := sessionDataFor(t, "patient-1", "patient")

	t.Run("list returns the recipient's notifications", func(t *testing.T) {
		createdAt := time.Now()
		repository := new(MockNotificationRepository)
		repository.On("FindByRecipientID", mock.Anything, "patient-1").Return([]models.Notification{
			{
				ID:          "notification-1",
				RecipientID: "patient-1",
				Type:        models.NotificationTypeTicket,
				Title:       "Ticket solved",
				Message:     "Your consultation ticket has been marked as solved.",
				ResourceID:  "ticket-1",
				TimeModel:   models.TimeModel{CreatedAt: createdAt},
			},
		}, nil)
		uc := NewNotificationUsecase(repository)

		notifications, err := uc.ListNotifications(context.Background(), patientSession)

		assert.NoError(t, err)
		assert.Len(t, notifications, 1)
		assert.Equal(t, "notification-1", notifications[0].ID)
		assert.Equal(t, "Ticket solved", notifications[0].Title)
		assert.Equal(t, createdAt, notifications[0].CreatedAt)
		assert.False(t, notifications[0].Read)
	})

	t.Run("mark read is scoped to the session owner", func(t *testing.T) {
		repository := new(MockNotificationRepository)
		repository.On("MarkRead", mock.Anything, "notification-1", "patient-1").Return(nil)
		uc := NewNotificationUsecase(repository)

		err := uc.MarkRead(context.Background(), patientSession, "notification-1")

		assert.NoError(t, err)
		repository.AssertExpectations(t)
	})

	t.Run("delete is scoped to the session owner", func(t *testing.T) {
		repository := new(MockNotificationRepository)
		repository.On("DeleteNotification", mock.Anything, "notification-1", "patient-1").Return(nil)
		uc := NewNotificationUsecase(repository)

		err := uc.DeleteNotification(context.Background(), patientSession, "notification-1")

		assert.NoError(t, err)
		repository.AssertExpectations(t)
	})

	t.Run("garbage session data is rejected", func(t *testing.T) {
		repository := new(MockNotificationRepository)
		uc := NewNotificationUsecase(repository)

		_, err := uc.ListNotifications(context.Background(), "{not json")

		assert.Error(t, err)
		repository.AssertNotCalled(t, "FindByRecipientID")
	})
}
