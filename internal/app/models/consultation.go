package models

import "time"

// Consultation is the companion record created when a dermatologist answers
// a ticket. It summarizes the clinical outcome independently of the ticket's
// workflow state.
type Consultation struct {
	ID              string `bson:"_id,omitempty"`
	TicketID        string `bson:"ticketId"`
	PatientID       string `bson:"patientId"`
	DermatologistID string `bson:"dermatologistId"`

	Diagnosis           string               `bson:"diagnosis"`
	Recommendations     string               `bson:"recommendations,omitempty"`
	RecommendedProducts []RecommendedProduct `bson:"recommendedProducts,omitempty"`
	FollowUpRequired    bool                 `bson:"followUpRequired,omitempty"`
	FollowUpDate        *time.Time           `bson:"followUpDate,omitempty"`
	ReportPath          string               `bson:"reportPath,omitempty"`

	TimeModel `bson:",inline"`
}
