package contracts

import (
	"context"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/dto/requests"
	"skinbloom-service/internal/pkg/dto/responses"
	"time"
)

type TicketUsecase interface {
	SubmitTicket(ctx context.Context, sessionData string, request *requests.SubmitTicket) (*responses.Ticket, error)
	GetTicket(ctx context.Context, sessionData, ticketID string) (*responses.Ticket, error)
	ListTickets(ctx context.Context, sessionData string) ([]responses.Ticket, error)
	AssignTicket(ctx context.Context, sessionData, ticketID string) (*responses.Ticket, error)
	ProvideConsultation(ctx context.Context, sessionData, ticketID string, request *requests.ProvideConsultation) (*responses.Ticket, error)
	MarkSolved(ctx context.Context, sessionData, ticketID string) (*responses.Ticket, error)
	AddMessage(ctx context.Context, sessionData, ticketID string, request *requests.TicketMessage) (*responses.Ticket, error)
	CloseTicket(ctx context.Context, sessionData, ticketID string) (*responses.Ticket, error)
	CreatePaymentSession(ctx context.Context, sessionData, ticketID string) (*responses.PaymentSession, error)
	VerifyPayment(ctx context.Context, sessionData string, request *requests.VerifyPayment) (*responses.Ticket, error)
}

type TicketRepository interface {
	CreateTicket(ctx context.Context, ticket *models.Ticket) (string, error)
	FindByID(ctx context.Context, ticketID string) (*models.Ticket, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Ticket, error)
	FindByDermatologistID(ctx context.Context, dermatologistID string) ([]models.Ticket, error)
	FindAll(ctx context.Context) ([]models.Ticket, error)
	UpdateTicket(ctx context.Context, ticket *models.Ticket) error
	PushMessage(ctx context.Context, ticketID string, message models.TicketMessage) error

	// Conditional transitions. Each returns the updated document, or nil when
	// the precondition no longer held (caller maps that to Conflict).
	ClaimTicket(ctx context.Context, ticketID, dermatologistID string) (*models.Ticket, error)
	MarkSolved(ctx context.Context, ticketID, dermatologistID string, solvedAt time.Time) (*models.Ticket, error)
	MarkPaid(ctx context.Context, ticketID, paymentID string, paidAt time.Time) (*models.Ticket, error)
	CloseTicket(ctx context.Context, ticketID string, closedAt time.Time) (*models.Ticket, error)
}
