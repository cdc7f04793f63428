package models

const (
	NotificationTypeTicket  = "ticket"
	NotificationTypeBooking = "booking"
	NotificationTypePayment = "payment"
)

type Notification struct {
	ID          string `bson:"_id,omitempty"`
	RecipientID string `bson:"recipientId"`
	Type        string `bson:"type"`
	Title       string `bson:"title"`
	Message     string `bson:"message"`
	ResourceID  string `bson:"resourceId,omitempty"`
	Read        bool   `bson:"read"`

	TimeModel `bson:",inline"`
}
