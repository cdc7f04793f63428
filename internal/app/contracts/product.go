package contracts

import (
	"context"
	"skinbloom-service/internal/app/models"
)

type ProductRepository interface {
	FindActiveByIDs(ctx context.Context, productIDs []string) ([]models.Product, error)
}
