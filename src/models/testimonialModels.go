package models

type TestimonialModel struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Quote   string `json:"quote"`
	Avatar  string `json:"avatar"`
}
