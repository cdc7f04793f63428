package responses

import "time"

// Slot is one bookable candidate emitted by the slot allocator. Available is
// always true for emitted slots; filtering already happened.
type Slot struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	DateTime  time.Time `json:"date_time"`
	Available bool      `json:"available"`
}

type Booking struct {
	ID              string     `json:"id"`
	PatientID       string     `json:"patient_id"`
	DermatologistID string     `json:"dermatologist_id"`
	SessionType     string     `json:"session_type"`
	ScheduledAt     time.Time  `json:"scheduled_at"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	ConsultationFee int64      `json:"consultation_fee"`
	PaymentStatus   string     `json:"payment_status"`
	PaymentDate     *time.Time `json:"payment_date,omitempty"`
	ReceiptPath     string     `json:"receipt_path,omitempty"`
	MeetingID       string     `json:"meeting_id,omitempty"`
	MeetingLink     string     `json:"meeting_link,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
