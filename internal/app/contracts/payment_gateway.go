package contracts

import (
	"context"
	"skinbloom-service/internal/pkg/dto/requests"
	"skinbloom-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	CreateCheckoutSession(ctx context.Context, request *requests.CheckoutSessionRequest) (*responses.CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*responses.CheckoutSession, error)
}
