package responses

import "time"

type TicketPhoto struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type TicketMessage struct {
	SenderID string    `json:"sender_id"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sent_at"`
}

type RecommendedProduct struct {
	ProductID    string `json:"product_id"`
	Instructions string `json:"instructions,omitempty"`
	Priority     string `json:"priority,omitempty"`
}

type Ticket struct {
	ID               string        `json:"id"`
	PatientID        string        `json:"patient_id"`
	DermatologistID  string        `json:"dermatologist_id,omitempty"`
	Concern          string        `json:"concern"`
	SkinType         string        `json:"skin_type,omitempty"`
	Symptoms         []string      `json:"symptoms,omitempty"`
	Duration         string        `json:"duration,omitempty"`
	PriorTreatments  string        `json:"prior_treatments,omitempty"`
	Allergies        string        `json:"allergies,omitempty"`
	Photos           []TicketPhoto `json:"photos,omitempty"`
	ConsultationType string        `json:"consultation_type"`
	Priority         string        `json:"priority,omitempty"`

	Diagnosis           string               `json:"diagnosis,omitempty"`
	Recommendations     string               `json:"recommendations,omitempty"`
	RecommendedProducts []RecommendedProduct `json:"recommended_products,omitempty"`
	FollowUpRequired    bool                 `json:"follow_up_required,omitempty"`
	FollowUpDate        *time.Time           `json:"follow_up_date,omitempty"`
	ReportPath          string               `json:"report_path,omitempty"`

	ConsultationFee int64      `json:"consultation_fee"`
	PaymentStatus   string     `json:"payment_status"`
	PaymentDate     *time.Time `json:"payment_date,omitempty"`
	ReceiptPath     string     `json:"receipt_path,omitempty"`

	Status     string          `json:"status"`
	AnsweredAt *time.Time      `json:"answered_at,omitempty"`
	SolvedAt   *time.Time      `json:"solved_at,omitempty"`
	Messages   []TicketMessage `json:"messages,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
