package dto

import "bank-console/internal/models"

// EditorSearchRequest looks a user up by identity. ID may be a string, a
// number or an object carrying id/userId/user_id/accountId.
type EditorSearchRequest struct {
	ID interface{} `json:"id"`
}

// EditorPatchRequest applies local edits to the draft
type EditorPatchRequest struct {
	Fields map[string]interface{} `json:"fields" validate:"required,min=1"`
}

// EditorResponse is the editor state together with the draft
type EditorResponse struct {
	State string         `json:"state"`
	Draft *models.Record `json:"draft,omitempty"`
}

// UpdateProfileRequest is the body of PUT /admin/user/{id}
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Role     string `json:"role"`
}

// PatchBalanceRequest is the body of PATCH /admin/balance/
type PatchBalanceRequest struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
}

// LoanDetailsRequest opens the applicant of a loan row in the editor
type LoanDetailsRequest struct {
	Username string `json:"username"`
}
