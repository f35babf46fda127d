package models

import "time"

// ContactModel is immutable after creation except for the Read flag.
type ContactModel struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type DashboardStats struct {
	PortfolioCount int `json:"portfolioCount"`
	ContactCount   int `json:"contactCount"`
	UnreadContacts int `json:"unreadContacts"`
}
