package contracts

import (
	"context"
	"skinbloom-service/internal/app/models"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindActiveDermatologists(ctx context.Context) ([]models.User, error)
}
