package dto

// SelectCategoryRequest - switch a session to another category
type SelectCategoryRequest struct {
	Category string `json:"category" validate:"required,category"`
}

// SearchRequest - one keystroke of the search box
type SearchRequest struct {
	Term string `json:"term" validate:"max=200"`
}

// FilterRequest - status and type dropdowns. Omitted fields keep their value.
type FilterRequest struct {
	Status *string `json:"status,omitempty" validate:"omitempty,max=64"`
	Type   *string `json:"type,omitempty" validate:"omitempty,max=64"`
}

// SelectRequest - list row click
type SelectRequest struct {
	ID string `json:"id" validate:"required,max=128"`
}

// EventsQuery - stateless filter over one category
type EventsQuery struct {
	Category string `json:"category" validate:"required,category"`
	Query    string `json:"q" validate:"max=200"`
	Status   string `json:"status" validate:"omitempty,max=64"`
	Type     string `json:"type" validate:"omitempty,max=64"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=100"`
}
