package contracts

import (
	"context"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/dto/requests"
	"skinbloom-service/internal/pkg/dto/responses"
	"time"
)

type BookingUsecase interface {
	GetAvailableSlots(ctx context.Context, request *requests.AvailableSlots) ([]responses.Slot, error)
	CreateBooking(ctx context.Context, sessionData string, request *requests.CreateBooking) (*responses.Booking, error)
	GetBooking(ctx context.Context, sessionData, bookingID string) (*responses.Booking, error)
	ListBookings(ctx context.Context, sessionData string) ([]responses.Booking, error)
	UpdateBookingStatus(ctx context.Context, sessionData, bookingID string, request *requests.UpdateBookingStatus) (*responses.Booking, error)
	StartConsultation(ctx context.Context, sessionData, bookingID string) (*responses.Booking, error)
	CreatePaymentSession(ctx context.Context, sessionData, bookingID string) (*responses.PaymentSession, error)
	VerifyPayment(ctx context.Context, sessionData string, request *requests.VerifyPayment) (*responses.Booking, error)
}

type BookingRepository interface {
	// CreateIfSlotFree atomically inserts the booking unless an active booking
	// already occupies the same dermatologist and start time. It returns the
	// new booking id, or "" when the slot was taken.
	CreateIfSlotFree(ctx context.Context, booking *models.Booking) (string, error)

	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Booking, error)
	FindByDermatologistID(ctx context.Context, dermatologistID string) ([]models.Booking, error)
	FindAll(ctx context.Context) ([]models.Booking, error)

	// FindActiveStartTimesByDate returns the start times of scheduled,
	// confirmed and in_progress bookings on the given calendar day.
	FindActiveStartTimesByDate(ctx context.Context, dermatologistID string, dayStart, dayEnd time.Time) ([]time.Time, error)

	UpdateBooking(ctx context.Context, booking *models.Booking) error

	// Conditional transitions; nil result means the precondition was gone.
	StartIfConfirmed(ctx context.Context, bookingID, meetingID, meetingLink string) (*models.Booking, error)
	MarkPaid(ctx context.Context, bookingID, paymentID string, paidAt time.Time) (*models.Booking, error)
}
