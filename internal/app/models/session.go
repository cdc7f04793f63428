package models

// Session is the decoded content of the signed credential attached to
// every authenticated request: who the actor is and which role they carry.
type Session struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
}
