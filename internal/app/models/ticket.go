package models

import "time"

// Ticket statuses. A ticket moves submitted → assigned → answered → solved
// → paid, and an admin may archive a paid ticket as closed.
const (
	TicketStatusSubmitted = "submitted"
	TicketStatusAssigned  = "assigned"
	TicketStatusAnswered  = "answered"
	TicketStatusSolved    = "solved"
	TicketStatusPaid      = "paid"
	TicketStatusClosed    = "closed"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

const (
	SessionTypePhotoReview = "photo_review"
	SessionTypeVideoCall   = "video_call"
	SessionTypeFollowUp    = "follow_up"
)

type TicketPhoto struct {
	URL         string `json:"url" bson:"url"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

type TicketMessage struct {
	SenderID string    `json:"senderId" bson:"senderId"`
	Text     string    `json:"text" bson:"text"`
	SentAt   time.Time `json:"sentAt" bson:"sentAt"`
}

type RecommendedProduct struct {
	ProductID    string `json:"productId" bson:"productId"`
	Instructions string `json:"instructions,omitempty" bson:"instructions,omitempty"`
	Priority     string `json:"priority,omitempty" bson:"priority,omitempty"`
}

type Ticket struct {
	ID                     string `bson:"_id,omitempty"`
	PatientID              string `bson:"patientId"`
	DermatologistID        string `bson:"dermatologistId,omitempty"`
	PreferredDermatologist string `bson:"preferredDermatologist,omitempty"`

	// Intake
	Concern          string        `bson:"concern"`
	SkinType         string        `bson:"skinType,omitempty"`
	Symptoms         []string      `bson:"symptoms,omitempty"`
	Duration         string        `bson:"duration,omitempty"`
	PriorTreatments  string        `bson:"priorTreatments,omitempty"`
	Allergies        string        `bson:"allergies,omitempty"`
	Photos           []TicketPhoto `bson:"photos,omitempty"`
	ConsultationType string        `bson:"consultationType"`
	Priority         string        `bson:"priority,omitempty"`

	// Outcome
	Diagnosis           string               `bson:"diagnosis,omitempty"`
	Recommendations     string               `bson:"recommendations,omitempty"`
	RecommendedProducts []RecommendedProduct `bson:"recommendedProducts,omitempty"`
	FollowUpRequired    bool                 `bson:"followUpRequired,omitempty"`
	FollowUpDate        *time.Time           `bson:"followUpDate,omitempty"`
	ReportPath          string               `bson:"reportPath,omitempty"`

	// Commercial
	ConsultationFee int64      `bson:"consultationFee"`
	PaymentStatus   string     `bson:"paymentStatus"`
	PaymentID       string     `bson:"paymentId,omitempty"`
	PaymentDate     *time.Time `bson:"paymentDate,omitempty"`
	ReceiptPath     string     `bson:"receiptPath,omitempty"`

	// Workflow and audit
	Status     string          `bson:"status"`
	AnsweredBy string          `bson:"answeredBy,omitempty"`
	AnsweredAt *time.Time      `bson:"answeredAt,omitempty"`
	SolvedAt   *time.Time      `bson:"solvedAt,omitempty"`
	ClosedAt   *time.Time      `bson:"closedAt,omitempty"`
	Messages   []TicketMessage `bson:"messages,omitempty"`

	TimeModel `bson:",inline"`
}

func (t *Ticket) IsAssignedTo(dermatologistID string) bool {
	return t.DermatologistID != "" && t.DermatologistID == dermatologistID
}
