package models

type ServiceModel struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Order int    `json:"order"`
}

// ServiceInput carries a create request. Slug is derived from Name when
// absent; Order defaults to the current record count plus one.
type ServiceInput struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Order int    `json:"order"`
}
