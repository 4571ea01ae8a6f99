package dto

import "github.com/event-dashboard/internal/domain"

// SessionResponse - id of a newly created session
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// CategoriesResponse - category picker catalogue
type CategoriesResponse struct {
	Categories []domain.CategoryInfo `json:"categories"`
}
