package dto

// PagedResponse wraps a list payload with pagination totals
type PagedResponse struct {
	Items any   `json:"items"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}
