package payment_gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"skinbloom-service/internal/app/config"
	"skinbloom-service/internal/app/contracts"
	"skinbloom-service/internal/pkg/constvars"
	"skinbloom-service/internal/pkg/dto/requests"
	"skinbloom-service/internal/pkg/dto/responses"
	"skinbloom-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

// checkoutService talks to a Stripe-style checkout API over HTTP: create a
// session, retrieve it later to inspect payment_status.
type checkoutService struct {
	BaseUrl    string
	SecretKey  string
	SuccessUrl string
	CancelUrl  string
	Currency   string
	client     *http.Client
}

func NewCheckoutService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	return &checkoutService{
		BaseUrl:    internalConfig.PaymentGateway.BaseUrl,
		SecretKey:  internalConfig.PaymentGateway.SecretKey,
		SuccessUrl: internalConfig.PaymentGateway.SuccessUrl,
		CancelUrl:  internalConfig.PaymentGateway.CancelUrl,
		Currency:   internalConfig.PaymentGateway.Currency,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *checkoutService) CreateCheckoutSession(ctx context.Context, request *requests.CheckoutSessionRequest) (*responses.CheckoutSession, error) {
	if request.Currency == "" {
		request.Currency = s.Currency
	}
	if request.SuccessUrl == "" {
		request.SuccessUrl = s.SuccessUrl
	}
	if request.CancelUrl == "" {
		request.CancelUrl = s.CancelUrl
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrPaymentGatewayRequest(err)
	}

	url := fmt.Sprintf("%s/v1/checkout/sessions", s.BaseUrl)
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, exceptions.ErrPaymentGatewayRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpRequest.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.SecretKey)

	return s.doSessionRequest(httpRequest)
}

func (s *checkoutService) RetrieveSession(ctx context.Context, sessionID string) (*responses.CheckoutSession, error) {
	url := fmt.Sprintf("%s/v1/checkout/sessions/%s", s.BaseUrl, sessionID)
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrPaymentGatewayRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.SecretKey)

	return s.doSessionRequest(httpRequest)
}

func (s *checkoutService) doSessionRequest(httpRequest *http.Request) (*responses.CheckoutSession, error) {
	httpResponse, err := s.client.Do(httpRequest)
	if err != nil {
		return nil, exceptions.ErrPaymentGatewayRequest(err)
	}
	defer httpResponse.Body.Close()

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, exceptions.ErrPaymentGatewayResponse(err)
	}

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		return nil, exceptions.ErrPaymentGatewayResponse(fmt.Errorf("status %d: %s", httpResponse.StatusCode, string(body)))
	}

	var session responses.CheckoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, exceptions.ErrPaymentGatewayResponse(err)
	}
	return &session, nil
}
