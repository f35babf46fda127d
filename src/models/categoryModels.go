package models

// CategoryModel groups portfolio items inside a service. ServiceID may point
// at a deleted service; dependents are never cascaded.
type CategoryModel struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ServiceID int    `json:"serviceId"`
	Order     int    `json:"order"`
}

// CategoryInput carries a create request. Order defaults to the count of
// categories already in the target service plus one.
type CategoryInput struct {
	Name      string `json:"name"`
	ServiceID int    `json:"serviceId"`
	Order     int    `json:"order"`
}
