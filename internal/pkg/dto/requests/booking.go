package requests

type AvailableSlots struct {
	DermatologistID string `json:"dermatologist_id" validate:"required"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	SessionType     string `json:"session_type" validate:"omitempty,session_type"`
}

type CreateBooking struct {
	DermatologistID string `json:"dermatologist_id" validate:"required"`
	SessionType     string `json:"session_type" validate:"required,session_type"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string `json:"time" validate:"required,datetime=15:04"`
	Notes           string `json:"notes"`
}

type UpdateBookingStatus struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed in_progress completed cancelled no_show"`
}
