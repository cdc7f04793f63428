package requests

// CheckoutSessionRequest is what the service sends to the payment gateway.
type CheckoutSessionRequest struct {
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	SuccessUrl  string            `json:"success_url"`
	CancelUrl   string            `json:"cancel_url"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// VerifyPayment carries the gateway session id back from the client after
// checkout completes.
type VerifyPayment struct {
	SessionID string `json:"session_id" validate:"required"`
}
