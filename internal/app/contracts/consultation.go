package contracts

import (
	"context"
	"skinbloom-service/internal/app/models"
)

type ConsultationRepository interface {
	CreateConsultation(ctx context.Context, consultation *models.Consultation) (string, error)
	FindByTicketID(ctx context.Context, ticketID string) (*models.Consultation, error)
	UpdateConsultation(ctx context.Context, consultation *models.Consultation) error
}
