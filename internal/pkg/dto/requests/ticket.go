package requests

type TicketPhoto struct {
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description"`
}

type SubmitTicket struct {
	Concern                string        `json:"concern" validate:"required"`
	SkinType               string        `json:"skin_type"`
	Symptoms               []string      `json:"symptoms"`
	Duration               string        `json:"duration"`
	PriorTreatments        string        `json:"prior_treatments"`
	Allergies              string        `json:"allergies"`
	Photos                 []TicketPhoto `json:"photos" validate:"dive"`
	ConsultationType       string        `json:"consultation_type" validate:"required,consultation_type"`
	Priority               string        `json:"priority"`
	PreferredDermatologist string        `json:"preferred_dermatologist"`
}

type RecommendedProduct struct {
	ProductID    string `json:"product_id" validate:"required"`
	Instructions string `json:"instructions"`
	Priority     string `json:"priority"`
}

type ProvideConsultation struct {
	Diagnosis           string               `json:"diagnosis" validate:"required"`
	Recommendations     string               `json:"recommendations"`
	RecommendedProducts []RecommendedProduct `json:"recommended_products" validate:"dive"`
	FollowUpRequired    bool                 `json:"follow_up_required"`
	FollowUpDate        string               `json:"follow_up_date" validate:"omitempty,datetime=2006-01-02"`
}

type TicketMessage struct {
	Text string `json:"text" validate:"required"`
}
