package contracts

import (
	"context"
	"skinbloom-service/internal/app/models"
)

// DocumentService renders downloadable artifacts (consultation reports,
// payment receipts) and stores them, returning the storage path.
type DocumentService interface {
	RenderConsultationReport(ctx context.Context, ticket *models.Ticket, consultation *models.Consultation) (string, error)
	RenderTicketReceipt(ctx context.Context, ticket *models.Ticket) (string, error)
	RenderBookingReceipt(ctx context.Context, booking *models.Booking) (string, error)
}
