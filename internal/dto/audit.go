package dto

import (
	"time"

	"bank-console/internal/models"
)

// AuditQuery filters the audit trail listing
type AuditQuery struct {
	Actor   string     `query:"actor" validate:"omitempty,max=255"`
	Action  string     `query:"action" validate:"omitempty,max=100"`
	Entity  string     `query:"entity" validate:"omitempty,max=100"`
	Outcome string     `query:"outcome" validate:"omitempty,oneof=success failure"`
	Since   *time.Time `query:"since"`
	Until   *time.Time `query:"until"`
	Page    int        `query:"page" validate:"omitempty,min=1"`
	Limit   int        `query:"limit" validate:"omitempty,min=1,max=500"`
}

// PaginationMeta represents pagination metadata
type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// AuditListResponse is one page of audit entries
type AuditListResponse struct {
	Entries    []*models.AuditLog `json:"entries"`
	Pagination PaginationMeta     `json:"pagination"`
}
