package models

import "time"

// Booking statuses. scheduled → confirmed → in_progress → completed, with
// cancelled and no_show as side exits from any non-terminal state.
const (
	BookingStatusScheduled  = "scheduled"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
	BookingStatusNoShow     = "no_show"
)

type Booking struct {
	ID              string `bson:"_id,omitempty"`
	PatientID       string `bson:"patientId"`
	DermatologistID string `bson:"dermatologistId"`

	SessionType     string    `bson:"sessionType"`
	ScheduledAt     time.Time `bson:"scheduledAt"`
	DurationMinutes int       `bson:"durationMinutes"`

	Status string `bson:"status"`

	ConsultationFee int64      `bson:"consultationFee"`
	PaymentStatus   string     `bson:"paymentStatus"`
	PaymentID       string     `bson:"paymentId,omitempty"`
	PaymentDate     *time.Time `bson:"paymentDate,omitempty"`
	ReceiptPath     string     `bson:"receiptPath,omitempty"`

	// Populated when a video_call booking transitions to in_progress.
	MeetingID   string `bson:"meetingId,omitempty"`
	MeetingLink string `bson:"meetingLink,omitempty"`

	Notes string `bson:"notes,omitempty"`

	TimeModel `bson:",inline"`
}

// ActiveBookingStatuses are the statuses that occupy a slot.
var ActiveBookingStatuses = []string{
	BookingStatusScheduled,
	BookingStatusConfirmed,
	BookingStatusInProgress,
}

func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

// SessionDurationMinutes resolves the slot length for a session type:
// video calls take a full hour, everything else half an hour.
func SessionDurationMinutes(sessionType string) int {
	if sessionType == SessionTypeVideoCall {
		return 60
	}
	return 30
}
