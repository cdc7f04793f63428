package tickets

import (
	"context"
	"skinbloom-service/internal/app/config"
	"skinbloom-service/internal/app/contracts"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/constvars"
	"skinbloom-service/internal/pkg/dto/requests"
	"skinbloom-service/internal/pkg/dto/responses"
	"skinbloom-service/internal/pkg/exceptions"
	"skinbloom-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) CreateTicket(ctx context.Context, ticket *models.Ticket) (string, error) {
	args := m.Called(ctx, ticket)
	return args.String(0), args.Error(1)
}

func (m *MockTicketRepository) FindByID(ctx context.Context, ticketID string) (*models.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Ticket, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByDermatologistID(ctx context.Context, dermatologistID string) ([]models.Ticket, error) {
	args := m.Called(ctx, dermatologistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindAll(ctx context.Context) ([]models.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ticket), args.Error(1)
}

func (m *MockTicketRepository) UpdateTicket(ctx context.Context, ticket *models.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) PushMessage(ctx context.Context, ticketID string, message models.TicketMessage) error {
	args := m.Called(ctx, ticketID, message)
	return args.Error(0)
}

func (m *MockTicketRepository) ClaimTicket(ctx context.Context, ticketID, dermatologistID string) (*models.Ticket, error) {
	args := m.Called(ctx, ticketID, dermatologistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *MockTicketRepository) MarkSolved(ctx context.Context, ticketID, dermatologistID string, solvedAt time.Time) (*models.Ticket, error) {
	args := m.Called(ctx, ticketID, dermatologistID, solvedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *MockTicketRepository) MarkPaid(ctx context.Context, ticketID, paymentID string, paidAt time.Time) (*models.Ticket, error) {
	args := m.Called(ctx, ticketID, paymentID, paidAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *MockTicketRepository) CloseTicket(ctx context.Context, ticketID string, closedAt time.Time) (*models.Ticket, error) {
	args := m.Called(ctx, ticketID, closedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) CreateConsultation(ctx context.Context, consultation *models.Consultation) (string, error) {
	args := m.Called(ctx, consultation)
	return args.String(0), args.Error(1)
}

func (m *MockConsultationRepository) FindByTicketID(ctx context.Context, ticketID string) (*models.Consultation, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) UpdateConsultation(ctx context.Context, consultation *models.Consultation) error {
	args := m.Called(ctx, consultation)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindActiveDermatologists(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindActiveByIDs(ctx context.Context, productIDs []string) ([]models.Product, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCheckoutSession(ctx context.Context, request *requests.CheckoutSessionRequest) (*responses.CheckoutSession, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CheckoutSession), args.Error(1)
}

func (m *MockPaymentGateway) RetrieveSession(ctx context.Context, sessionID string) (*responses.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CheckoutSession), args.Error(1)
}

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) RenderConsultationReport(ctx context.Context, ticket *models.Ticket, consultation *models.Consultation) (string, error) {
	args := m.Called(ctx, ticket, consultation)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) RenderTicketReceipt(ctx context.Context, ticket *models.Ticket) (string, error) {
	args := m.Called(ctx, ticket)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) RenderBookingReceipt(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, notification *models.Notification) {
	m.Called(ctx, notification)
}

type ticketTestDeps struct {
	ticketRepo       *MockTicketRepository
	consultationRepo *MockConsultationRepository
	userRepo         *MockUserRepository
	productRepo      *MockProductRepository
	gateway          *MockPaymentGateway
	documents        *MockDocumentService
	locker           *MockLockerService
	dispatcher       *MockDispatcher
}

func newTicketTestDeps() *ticketTestDeps {
	return &ticketTestDeps{
		ticketRepo:       new(MockTicketRepository),
		consultationRepo: new(MockConsultationRepository),
		userRepo:         new(MockUserRepository),
		productRepo:      new(MockProductRepository),
		gateway:          new(MockPaymentGateway),
		documents:        new(MockDocumentService),
		locker:           new(MockLockerService),
		dispatcher:       new(MockDispatcher),
	}
}

func (d *ticketTestDeps) usecase() contracts.TicketUsecase {
	internalConfig := &config.InternalConfig{
		PaymentGateway: config.PaymentGateway{Currency: "usd"},
		Fees: config.ConsultationFees{
			VideoCall: 100,
			FollowUp:  30,
			Default:   50,
		},
	}
	return NewTicketUsecase(
		d.ticketRepo,
		d.consultationRepo,
		d.userRepo,
		d.productRepo,
		d.gateway,
		d.documents,
		d.locker,
		d.dispatcher,
		internalConfig,
		zap.NewNop(),
	)
}

func sessionDataFor(t *testing.T, userID, role string) string {
	t.Helper()
	sessionData, err := utils.MarshalSessionData(&models.Session{UserID: userID, Role: role})
	assert.NoError(t, err)
	return sessionData
}

func assertStatusCode(t *testing.T, err error, expected int) {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, expected, customErr.StatusCode)
}

func TestTicketUsecase_SubmitTicket(t *testing.T) {
	patientSession := sessionDataFor(t, "patient-1", constvars.RoleTypePatient)

	t.Run("photo review requires at least one photo", func(t *testing.T) {
		deps := newTicketTestDeps()
		uc := deps.usecase()

		_, err := uc.SubmitTicket(context.Background(), patientSession, &requests.SubmitTicket{
			Concern:          "persistent acne",
			ConsultationType: models.SessionTypePhotoReview,
		})

		assertStatusCode(t, err, constvars.StatusBadRequest)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientPhotoRequired, customErr.ClientMessage)
		deps.ticketRepo.AssertNotCalled(t, "CreateTicket", mock.Anything, mock.Anything)
	})

	t.Run("fee comes from the shared table per session type", func(t *testing.T) {
		cases := []struct {
			consultationType string
			expectedFee      int64
		}{
			{models.SessionTypeVideoCall, 100},
			{models.SessionTypeFollowUp, 30},
			{models.SessionTypePhotoReview, 50},
		}
		for _, tc := range cases {
			t.Run(tc.consultationType, func(t *testing.T) {
				deps := newTicketTestDeps()
				deps.ticketRepo.On("CreateTicket", mock.Anything, mock.AnythingOfType("*models.Ticket")).Return("ticket-1", nil)
				deps.userRepo.On("FindActiveDermatologists", mock.Anything).Return([]models.User{}, nil)
				deps.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return()
				uc := deps.usecase()

				response, err := uc.SubmitTicket(context.Background(), patientSession, &requests.SubmitTicket{
					Concern:          "dry patches",
					ConsultationType: tc.consultationType,
					Photos:           []requests.TicketPhoto{{URL: "https://cdn.example.com/p.jpg"}},
				})

				assert.NoError(t, err)
				assert.Equal(t, tc.expectedFee, response.ConsultationFee)
				assert.Equal(t, models.TicketStatusSubmitted, response.Status)
				assert.Equal(t, models.PaymentStatusPending, response.PaymentStatus)
			})
		}
	})

	t.Run("preferred dermatologist fee override does not apply to tickets", func(t *testing.T) {
		deps := newTicketTestDeps()
		deps.userRepo.On("FindByID", mock.Anything, "derm-1").Return(&models.User{
			ID:               "derm-1",
			Role:             constvars.RoleTypeDermatologist,
			Active:           true,
			ConsultationFees: map[string]int64{models.SessionTypeVideoCall: 80},
		}, nil)
		deps.ticketRepo.On("CreateTicket", mock.Anything, mock.Anything).Return("ticket-1", nil)
		deps.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return()
		uc := deps.usecase()

		response, err := uc.SubmitTicket(context.Background(), patientSession, &requests.SubmitTicket{
			Concern:                "rosacea flare",
			ConsultationType:       models.SessionTypeVideoCall,
			PreferredDermatologist: "derm-1",
		})

		assert.NoError(t, err)
		// Ticket fees always come from the shared table; per-dermatologist
		// overrides only affect bookings.
		assert.Equal(t, int64(100), response.ConsultationFee)
		// Patient confirmation plus the preferred dermatologist, no broadcast.
		deps.dispatcher.AssertNumberOfCalls(t, "Dispatch", 2)
		deps.userRepo.AssertNotCalled(t, "FindActiveDermatologists", mock.Anything)
	})

	t.Run("unavailable preferred dermatologist falls back to broadcast", func(t *testing.T) {
		deps := newTicketTestDeps()
		deps.userRepo.On("FindByID", mock.Anything, "derm-1").Return(nil, nil)
		deps.ticketRepo.On("CreateTicket", mock.Anything, mock.Anything).Return("ticket-1", nil)
		deps.userRepo.On("FindActiveDermatologists", mock.Anything).Return([]models.User{
			{ID: "derm-2", Role: constvars.RoleTypeDermatologist, Active: true},
		}, nil)
		deps.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return()
		uc := deps.usecase()

		response, err := uc.SubmitTicket(context.Background(), patientSession, &requests.SubmitTicket{
			Concern:                "rosacea flare",
			ConsultationType:       models.SessionTypeVideoCall,
			PreferredDermatologist: "derm-1",
		})

		assert.NoError(t, err)
		assert.Equal(t, models.TicketStatusSubmitted, response.Status)
		// Patient confirmation plus the broadcast to the one active dermatologist.
		deps.dispatcher.AssertNumberOfCalls(t, "Dispatch", 2)
		deps.userRepo.AssertExpectations(t)
	})

	t.Run("non-patient cannot submit", func(t *testing.T) {
		deps := newTicketTestDeps()
		uc := deps.usecase()

		_, err := uc.SubmitTicket(context.Background(),
			sessionDataFor(t, "derm-1", constvars.RoleTypeDermatologist),
			&requests.SubmitTicket{Concern: "x", ConsultationType: models.SessionTypeVideoCall},
		)

		assertStatusCode(t, err, constvars.StatusForbidden)
	})
}

func TestTicketUsecase_AssignTicket(t *testing.T) {
	dermSession := sessionDataFor(t, "derm-1", constvars.RoleTypeDermatologist)
	dermatologist := &models.User{ID: "derm-1", Name: "Dr. Mora", Role: constvars.RoleTypeDermatologist, Active: true}

	t.Run("claims an unassigned ticket", func(t *testing.T) {
		deps := newTicketTestDeps()
		deps.userRepo.On("FindByID", mock.Anything, "derm-1").Return(dermatologist, nil)
		claimed := &models.Ticket{
			ID:              "ticket-1",
			PatientID:       "patient-1",
			DermatologistID: "derm-1",
			Status:          models.TicketStatusAssigned,
		}
		deps.ticketRepo.On("ClaimTicket", mock.Anything, "ticket-1", "derm-1").Return(claimed, nil)
		deps.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return()
		uc := deps.usecase()

		response, err := uc.AssignTicket(context.Background(), dermSession, "ticket-1")

		assert.NoError(t, err)
		assert.Equal(t, models.TicketStatusAssigned, response.Status)
		assert.Equal(t, "derm-1", response.DermatologistID)
	})

	t.Run("losing the claim race is a conflict", func(t *testing.T) {
		deps := newTicketTestDeps()
		deps.userRepo.On("FindByID", mock.Anything, "derm-1").Return(dermatologist, nil)
		deps.ticketRepo.On("ClaimTicket", mock.Anything, "ticket-1", "derm-1").Return(nil, nil)
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(&models.Ticket{
			ID:              "ticket-1",
			DermatologistID: "derm-2",
			Status:          models.TicketStatusAssigned,
		}, nil)
		uc := deps.usecase()

		_, err := uc.AssignTicket(context.Background(), dermSession, "ticket-1")

		assertStatusCode(t, err, constvars.StatusConflict)
	})

	t.Run("missing ticket is not found", func(t *testing.T) {
		deps := newTicketTestDeps()
		deps.userRepo.On("FindByID", mock.Anything, "derm-1").Return(dermatologist, nil)
		deps.ticketRepo.On("ClaimTicket", mock.Anything, "ticket-404", "derm-1").Return(nil, nil)
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-404").Return(nil, nil)
		uc := deps.usecase()

		_, err := uc.AssignTicket(context.Background(), dermSession, "ticket-404")

		assertStatusCode(t, err, constvars.StatusNotFound)
	})
}

func TestTicketUsecase_ProvideConsultation(t *testing.T) {
	dermSession := sessionDataFor(t, "derm-1", constvars.RoleTypeDermatologist)

	assignedTicket := func() *models.Ticket {
		return &models.Ticket{
			ID:              "ticket-1",
			PatientID:       "patient-1",
			DermatologistID: "derm-1",
			Status:          models.TicketStatusAssigned,
			ConsultationFee: 50,
			PaymentStatus:   models.PaymentStatusPending,
		}
	}

	t.Run("answers the ticket and records the consultation", func(t *testing.T) {
		deps := newTicketTestDeps()
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(assignedTicket(), nil)
		deps.productRepo.On("FindActiveByIDs", mock.Anything, []string{"product-1"}).
			Return([]models.Product{{ID: "product-1", Active: true}}, nil)
		deps.documents.On("RenderConsultationReport", mock.Anything, mock.Anything, mock.Anything).
			Return("skinbloom-documents/report.html", nil)
		deps.ticketRepo.On("UpdateTicket", mock.Anything, mock.Anything).Return(nil)
		deps.consultationRepo.On("FindByTicketID", mock.Anything, "ticket-1").Return(nil, nil)
		deps.consultationRepo.On("CreateConsultation", mock.Anything, mock.Anything).Return("consultation-1", nil)
		deps.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return()
		uc := deps.usecase()

		response, err := uc.ProvideConsultation(context.Background(), dermSession, "ticket-1", &requests.ProvideConsultation{
			Diagnosis:       "mild eczema",
			Recommendations: "moisturize twice daily",
			RecommendedProducts: []requests.RecommendedProduct{
				{ProductID: "product-1", Instructions: "apply nightly"},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, models.TicketStatusAnswered, response.Status)
		assert.Equal(t, "mild eczema", response.Diagnosis)
		assert.Equal(t, "skinbloom-documents/report.html", response.ReportPath)
		assert.NotNil(t, response.AnsweredAt)
	})

	t.Run("ticket assigned to someone else is forbidden", func(t *testing.T) {
		other := assignedTicket()
		other.DermatologistID = "derm-2"
		deps := newTicketTestDeps()
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(other, nil)
		uc := deps.usecase()

		_, err := uc.ProvideConsultation(context.Background(), dermSession, "ticket-1", &requests.ProvideConsultation{
			Diagnosis: "mild eczema",
		})

		assertStatusCode(t, err, constvars.StatusForbidden)
	})

	t.Run("inactive recommended product is rejected", func(t *testing.T) {
		deps := newTicketTestDeps()
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(assignedTicket(), nil)
		deps.productRepo.On("FindActiveByIDs", mock.Anything, []string{"product-9"}).
			Return([]models.Product{}, nil)
		uc := deps.usecase()

		_, err := uc.ProvideConsultation(context.Background(), dermSession, "ticket-1", &requests.ProvideConsultation{
			Diagnosis: "mild eczema",
			RecommendedProducts: []requests.RecommendedProduct{
				{ProductID: "product-9"},
			},
		})

		assertStatusCode(t, err, constvars.StatusNotFound)
	})

	t.Run("answering an unclaimed ticket claims it first", func(t *testing.T) {
		submitted := assignedTicket()
		submitted.Status = models.TicketStatusSubmitted
		submitted.DermatologistID = ""
		claimed := assignedTicket()

		deps := newTicketTestDeps()
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(submitted, nil)
		deps.ticketRepo.On("ClaimTicket", mock.Anything, "ticket-1", "derm-1").Return(claimed, nil)
		deps.documents.On("RenderConsultationReport", mock.Anything, mock.Anything, mock.Anything).Return("", assert.AnError)
		deps.ticketRepo.On("UpdateTicket", mock.Anything, mock.Anything).Return(nil)
		deps.consultationRepo.On("FindByTicketID", mock.Anything, "ticket-1").Return(nil, nil)
		deps.consultationRepo.On("CreateConsultation", mock.Anything, mock.Anything).Return("consultation-1", nil)
		deps.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return()
		uc := deps.usecase()

		response, err := uc.ProvideConsultation(context.Background(), dermSession, "ticket-1", &requests.ProvideConsultation{
			Diagnosis: "contact dermatitis",
		})

		// Report rendering failed, the consultation still goes through.
		assert.NoError(t, err)
		assert.Equal(t, models.TicketStatusAnswered, response.Status)
		assert.Empty(t, response.ReportPath)
	})

	t.Run("solved ticket cannot be re-answered", func(t *testing.T) {
		solved := assignedTicket()
		solved.Status = models.TicketStatusSolved
		deps := newTicketTestDeps()
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(solved, nil)
		uc := deps.usecase()

		_, err := uc.ProvideConsultation(context.Background(), dermSession, "ticket-1", &requests.ProvideConsultation{
			Diagnosis: "mild eczema",
		})

		assertStatusCode(t, err, constvars.StatusConflict)
	})
}

func TestTicketUsecase_PaymentFlow(t *testing.T) {
	patientSession := sessionDataFor(t, "patient-1", constvars.RoleTypePatient)

	solvedTicket := func() *models.Ticket {
		return &models.Ticket{
			ID:              "ticket-1",
			PatientID:       "patient-1",
			DermatologistID: "derm-1",
			Status:          models.TicketStatusSolved,
			ConsultationFee: 50,
			PaymentStatus:   models.PaymentStatusPending,
		}
	}

	t.Run("payment session requires solved status", func(t *testing.T) {
		answered := solvedTicket()
		answered.Status = models.TicketStatusAnswered
		deps := newTicketTestDeps()
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(answered, nil)
		uc := deps.usecase()

		_, err := uc.CreatePaymentSession(context.Background(), patientSession, "ticket-1")

		assertStatusCode(t, err, constvars.StatusConflict)
	})

	t.Run("payment session carries the ticket fee", func(t *testing.T) {
		deps := newTicketTestDeps()
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(solvedTicket(), nil)
		deps.gateway.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(r *requests.CheckoutSessionRequest) bool {
			return r.Amount == 50 && r.Metadata["ticket_id"] == "ticket-1"
		})).Return(&responses.CheckoutSession{ID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil)
		uc := deps.usecase()

		response, err := uc.CreatePaymentSession(context.Background(), patientSession, "ticket-1")

		assert.NoError(t, err)
		assert.Equal(t, "cs_1", response.SessionID)
		assert.Equal(t, int64(50), response.Amount)
	})

	t.Run("only the owner can start payment", func(t *testing.T) {
		deps := newTicketTestDeps()
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(solvedTicket(), nil)
		uc := deps.usecase()

		_, err := uc.CreatePaymentSession(context.Background(),
			sessionDataFor(t, "patient-2", constvars.RoleTypePatient), "ticket-1")

		assertStatusCode(t, err, constvars.StatusForbidden)
	})

	t.Run("verify marks paid and renders the receipt once", func(t *testing.T) {
		deps := newTicketTestDeps()
		deps.gateway.On("RetrieveSession", mock.Anything, "cs_1").Return(&responses.CheckoutSession{
			ID:            "cs_1",
			PaymentStatus: models.PaymentStatusPaid,
			Metadata:      map[string]string{"ticket_id": "ticket-1"},
		}, nil)
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(solvedTicket(), nil)
		deps.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-1", nil)
		deps.locker.On("Unlock", mock.Anything, mock.Anything, "lock-1").Return(nil)

		paid := solvedTicket()
		paid.Status = models.TicketStatusPaid
		paid.PaymentStatus = models.PaymentStatusPaid
		paid.PaymentID = "cs_1"
		deps.ticketRepo.On("MarkPaid", mock.Anything, "ticket-1", "cs_1", mock.Anything).Return(paid, nil)
		deps.documents.On("RenderTicketReceipt", mock.Anything, paid).Return("skinbloom-documents/receipt.html", nil)
		deps.ticketRepo.On("UpdateTicket", mock.Anything, paid).Return(nil)
		deps.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return()
		uc := deps.usecase()

		response, err := uc.VerifyPayment(context.Background(), patientSession, &requests.VerifyPayment{SessionID: "cs_1"})

		assert.NoError(t, err)
		assert.Equal(t, models.TicketStatusPaid, response.Status)
		assert.Equal(t, "skinbloom-documents/receipt.html", response.ReceiptPath)
		deps.documents.AssertNumberOfCalls(t, "RenderTicketReceipt", 1)
		deps.dispatcher.AssertNumberOfCalls(t, "Dispatch", 2)
	})

	t.Run("verifying an already paid ticket is a conflict", func(t *testing.T) {
		alreadyPaid := solvedTicket()
		alreadyPaid.Status = models.TicketStatusPaid
		alreadyPaid.PaymentStatus = models.PaymentStatusPaid

		deps := newTicketTestDeps()
		deps.gateway.On("RetrieveSession", mock.Anything, "cs_1").Return(&responses.CheckoutSession{
			ID:            "cs_1",
			PaymentStatus: models.PaymentStatusPaid,
			Metadata:      map[string]string{"ticket_id": "ticket-1"},
		}, nil)
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(alreadyPaid, nil)
		deps.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-1", nil)
		deps.locker.On("Unlock", mock.Anything, mock.Anything, "lock-1").Return(nil)
		deps.ticketRepo.On("MarkPaid", mock.Anything, "ticket-1", "cs_1", mock.Anything).Return(nil, nil)
		uc := deps.usecase()

		_, err := uc.VerifyPayment(context.Background(), patientSession, &requests.VerifyPayment{SessionID: "cs_1"})

		assertStatusCode(t, err, constvars.StatusConflict)
		deps.documents.AssertNotCalled(t, "RenderTicketReceipt", mock.Anything, mock.Anything)
	})

	t.Run("held lock yields a retryable conflict", func(t *testing.T) {
		deps := newTicketTestDeps()
		deps.gateway.On("RetrieveSession", mock.Anything, "cs_1").Return(&responses.CheckoutSession{
			ID:            "cs_1",
			PaymentStatus: models.PaymentStatusPaid,
			Metadata:      map[string]string{"ticket_id": "ticket-1"},
		}, nil)
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(solvedTicket(), nil)
		deps.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)
		uc := deps.usecase()

		_, err := uc.VerifyPayment(context.Background(), patientSession, &requests.VerifyPayment{SessionID: "cs_1"})

		assertStatusCode(t, err, constvars.StatusConflict)
		deps.ticketRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTicketUsecase_CloseTicket(t *testing.T) {
	adminSession := sessionDataFor(t, "admin-1", constvars.RoleTypeAdmin)

	t.Run("admin closes a paid ticket", func(t *testing.T) {
		closed := &models.Ticket{
			ID:        "ticket-1",
			PatientID: "patient-1",
			Status:    models.TicketStatusClosed,
		}
		deps := newTicketTestDeps()
		deps.ticketRepo.On("CloseTicket", mock.Anything, "ticket-1", mock.Anything).Return(closed, nil)
		deps.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return()
		uc := deps.usecase()

		response, err := uc.CloseTicket(context.Background(), adminSession, "ticket-1")

		assert.NoError(t, err)
		assert.Equal(t, models.TicketStatusClosed, response.Status)
	})

	t.Run("unpaid ticket cannot be closed", func(t *testing.T) {
		deps := newTicketTestDeps()
		deps.ticketRepo.On("CloseTicket", mock.Anything, "ticket-1", mock.Anything).Return(nil, nil)
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(&models.Ticket{
			ID:     "ticket-1",
			Status: models.TicketStatusSolved,
		}, nil)
		uc := deps.usecase()

		_, err := uc.CloseTicket(context.Background(), adminSession, "ticket-1")

		assertStatusCode(t, err, constvars.StatusConflict)
	})

	t.Run("non-admin cannot close", func(t *testing.T) {
		deps := newTicketTestDeps()
		uc := deps.usecase()

		_, err := uc.CloseTicket(context.Background(),
			sessionDataFor(t, "derm-1", constvars.RoleTypeDermatologist), "ticket-1")

		assertStatusCode(t, err, constvars.StatusForbidden)
	})
}

func TestTicketUsecase_MarkSolved(t *testing.T) {
	dermSession := sessionDataFor(t, "derm-1", constvars.RoleTypeDermatologist)

	t.Run("solves an answered ticket", func(t *testing.T) {
		now := time.Now()
		solved := &models.Ticket{
			ID:              "ticket-1",
			PatientID:       "patient-1",
			DermatologistID: "derm-1",
			Status:          models.TicketStatusSolved,
			SolvedAt:        &now,
		}
		deps := newTicketTestDeps()
		deps.ticketRepo.On("MarkSolved", mock.Anything, "ticket-1", "derm-1", mock.Anything).Return(solved, nil)
		deps.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return()
		uc := deps.usecase()

		response, err := uc.MarkSolved(context.Background(), dermSession, "ticket-1")

		assert.NoError(t, err)
		assert.Equal(t, models.TicketStatusSolved, response.Status)
	})

	t.Run("unanswered ticket cannot be solved", func(t *testing.T) {
		deps := newTicketTestDeps()
		deps.ticketRepo.On("MarkSolved", mock.Anything, "ticket-1", "derm-1", mock.Anything).Return(nil, nil)
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(&models.Ticket{
			ID:              "ticket-1",
			DermatologistID: "derm-1",
			Status:          models.TicketStatusAssigned,
		}, nil)
		uc := deps.usecase()

		_, err := uc.MarkSolved(context.Background(), dermSession, "ticket-1")

		assertStatusCode(t, err, constvars.StatusConflict)
	})
}

func TestTicketUsecase_AddMessage(t *testing.T) {
	t.Run("participant message notifies the other party", func(t *testing.T) {
		ticket := &models.Ticket{
			ID:              "ticket-1",
			PatientID:       "patient-1",
			DermatologistID: "derm-1",
			Status:          models.TicketStatusAssigned,
		}
		deps := newTicketTestDeps()
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(ticket, nil)
		deps.ticketRepo.On("PushMessage", mock.Anything, "ticket-1", mock.AnythingOfType("models.TicketMessage")).Return(nil)
		deps.dispatcher.On("Dispatch", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
			return n.RecipientID == "derm-1"
		})).Return()
		uc := deps.usecase()

		response, err := uc.AddMessage(context.Background(),
			sessionDataFor(t, "patient-1", constvars.RoleTypePatient),
			"ticket-1",
			&requests.TicketMessage{Text: "is the cream safe during pregnancy?"},
		)

		assert.NoError(t, err)
		assert.Len(t, response.Messages, 1)
		assert.Equal(t, "patient-1", response.Messages[0].SenderID)
	})

	t.Run("closed ticket rejects messages", func(t *testing.T) {
		deps := newTicketTestDeps()
		deps.ticketRepo.On("FindByID", mock.Anything, "ticket-1").Return(&models.Ticket{
			ID:        "ticket-1",
			PatientID: "patient-1",
			Status:    models.TicketStatusClosed,
		}, nil)
		uc := deps.usecase()

		_, err := uc.AddMessage(context.Background(),
			sessionDataFor(t, "patient-1", constvars.RoleTypePatient),
			"ticket-1",
			&requests.TicketMessage{Text: "hello?"},
		)

		assertStatusCode(t, err, constvars.StatusConflict)
	})
}
