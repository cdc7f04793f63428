package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"skinbloom-service/internal/app/config"
	"skinbloom-service/internal/app/delivery/http/controllers"
	"skinbloom-service/internal/app/delivery/http/middlewares"
	"skinbloom-service/internal/pkg/constvars"
	"skinbloom-service/internal/pkg/dto/requests"
	"skinbloom-service/internal/pkg/dto/responses"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockTicketUsecase struct {
	mock.Mock
}

func (m *MockTicketUsecase) SubmitTicket(ctx context.Context, sessionData string, request *requests.SubmitTicket) (*responses.Ticket, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Ticket), args.Error(1)
}

func (m *MockTicketUsecase) GetTicket(ctx context.Context, sessionData, ticketID string) (*responses.Ticket, error) {
	args := m.Called(ctx, sessionData, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Ticket), args.Error(1)
}

func (m *MockTicketUsecase) ListTickets(ctx context.Context, sessionData string) ([]responses.Ticket, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Ticket), args.Error(1)
}

func (m *MockTicketUsecase) AssignTicket(ctx context.Context, sessionData, ticketID string) (*responses.Ticket, error) {
	args := m.Called(ctx, sessionData, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Ticket), args.Error(1)
}

func (m *MockTicketUsecase) ProvideConsultation(ctx context.Context, sessionData, ticketID string, request *requests.ProvideConsultation) (*responses.Ticket, error) {
	args := m.Called(ctx, sessionData, ticketID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Ticket), args.Error(1)
}

func (m *MockTicketUsecase) MarkSolved(ctx context.Context, sessionData, ticketID string) (*responses.Ticket, error) {
	args := m.Called(ctx, sessionData, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Ticket), args.Error(1)
}

func (m *MockTicketUsecase) AddMessage(ctx context.Context, sessionData, ticketID string, request *requests.TicketMessage) (*responses.Ticket, error) {
	args := m.Called(ctx, sessionData, ticketID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Ticket), args.Error(1)
}

func (m *MockTicketUsecase) CloseTicket(ctx context.Context, sessionData, ticketID string) (*responses.Ticket, error) {
	args := m.Called(ctx, sessionData, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Ticket), args.Error(1)
}

func (m *MockTicketUsecase) CreatePaymentSession(ctx context.Context, sessionData, ticketID string) (*responses.PaymentSession, error) {
	args := m.Called(ctx, sessionData, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PaymentSession), args.Error(1)
}

func (m *MockTicketUsecase) VerifyPayment(ctx context.Context, sessionData string, request *requests.VerifyPayment) (*responses.Ticket, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Ticket), args.Error(1)
}

const testJWTSecret = "router-test-secret"

func bearerToken(t *testing.T, userID, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
	})
	tokenString, err := token.SignedString([]byte(testJWTSecret))
	assert.NoError(t, err)
	return "Bearer " + tokenString
}

func TestTicketRouter(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: testJWTSecret},
	}

	mockTicketUsecase := new(MockTicketUsecase)
	ticketController := controllers.NewTicketController(logger, mockTicketUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	router.Route("/tickets", func(r chi.Router) {
		attachTicketRoutes(r, middlewareInstance, ticketController)
	})

	t.Run("submit without token is unauthorized", func(t *testing.T) {
		body, _ := json.Marshal(requests.SubmitTicket{
			Concern:          "itchy rash",
			ConsultationType: "photo_review",
		})
		req := httptest.NewRequest("POST", "/tickets/", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockTicketUsecase.AssertNotCalled(t, "SubmitTicket")
	})

	t.Run("submit with patient token creates the ticket", func(t *testing.T) {
		mockTicketUsecase.On("SubmitTicket", mock.Anything, mock.Anything, mock.AnythingOfType("*requests.SubmitTicket")).
			Return(&responses.Ticket{ID: "ticket-1", Status: "submitted"}, nil).Once()

		body, _ := json.Marshal(requests.SubmitTicket{
			Concern:          "itchy rash",
			ConsultationType: "video_call",
		})
		req := httptest.NewRequest("POST", "/tickets/", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "patient-1", constvars.RoleTypePatient))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		mockTicketUsecase.AssertExpectations(t)
	})

	t.Run("submit with invalid consultation type fails validation", func(t *testing.T) {
		body, _ := json.Marshal(requests.SubmitTicket{
			Concern:          "itchy rash",
			ConsultationType: "house_call",
		})
		req := httptest.NewRequest("POST", "/tickets/", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "patient-1", constvars.RoleTypePatient))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("assign requires the dermatologist role", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/tickets/ticket-1/assign", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "patient-1", constvars.RoleTypePatient))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockTicketUsecase.AssertNotCalled(t, "AssignTicket")
	})

	t.Run("dermatologist can assign", func(t *testing.T) {
		mockTicketUsecase.On("AssignTicket", mock.Anything, mock.Anything, "ticket-1").
			Return(&responses.Ticket{ID: "ticket-1", Status: "assigned"}, nil).Once()

		req := httptest.NewRequest("POST", "/tickets/ticket-1/assign", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "derm-1", constvars.RoleTypeDermatologist))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockTicketUsecase.AssertExpectations(t)
	})

	t.Run("close requires the admin role", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/tickets/ticket-1/close", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "derm-1", constvars.RoleTypeDermatologist))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockTicketUsecase.AssertNotCalled(t, "CloseTicket")
	})

	t.Run("admin can close", func(t *testing.T) {
		mockTicketUsecase.On("CloseTicket", mock.Anything, mock.Anything, "ticket-1").
			Return(&responses.Ticket{ID: "ticket-1", Status: "closed"}, nil).Once()

		req := httptest.NewRequest("POST", "/tickets/ticket-1/close", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "admin-1", constvars.RoleTypeAdmin))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockTicketUsecase.AssertExpectations(t)
	})

	t.Run("get ticket passes the url param through", func(t *testing.T) {
		mockTicketUsecase.On("GetTicket", mock.Anything, mock.Anything, "ticket-7").
			Return(&responses.Ticket{ID: "ticket-7", Status: "answered"}, nil).Once()

		req := httptest.NewRequest("GET", "/tickets/ticket-7", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "patient-1", constvars.RoleTypePatient))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockTicketUsecase.AssertExpectations(t)
	})
}
