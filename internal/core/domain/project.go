package domain

// Project is a named cost centre that claims are booked against.
type Project struct {
	Name string `json:"name"`
}
