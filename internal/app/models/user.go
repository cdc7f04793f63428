package models

// AvailabilityWindow is one configured block of bookable time on a weekday,
// expressed as "15:04" clock strings.
type AvailabilityWindow struct {
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
}

type User struct {
	ID     string `bson:"_id,omitempty"`
	Name   string `bson:"name"`
	Email  string `bson:"email"`
	Role   string `bson:"role"`
	Active bool   `bson:"active"`

	// Dermatologist-only fields. Availability is keyed by lowercase weekday
	// name ("monday".."sunday"). ConsultationFees overrides the shared fee
	// table per session type; zero means "use the shared table".
	Availability     map[string][]AvailabilityWindow `bson:"availability,omitempty"`
	ConsultationFees map[string]int64                `bson:"consultationFees,omitempty"`
	Specialization   string                          `bson:"specialization,omitempty"`

	TimeModel `bson:",inline"`
}

func (u *User) IsActiveDermatologist() bool {
	return u != nil && u.Active && u.Role == "dermatologist"
}
