package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionLogin          = "login"
	AuditActionLogout         = "logout"
	AuditActionProfileUpdated = "profile_updated"
	AuditActionBalanceUpdated = "balance_updated"
	AuditActionUserDeleted    = "user_deleted"
	AuditActionAccountDeleted = "account_deleted"
	AuditActionBlockToggled   = "block_toggled"
	AuditActionLoanApproved   = "loan_approved"
	AuditActionLoanApplied    = "loan_applied"
	AuditActionRepaymentMade  = "repayment_made"
	AuditActionTransferMade   = "transfer_made"
	AuditActionExported       = "csv_exported"

	AuditActionSignup                 = "signup"
	AuditActionPasswordResetRequested = "password_reset_requested"
	AuditActionPasswordReset          = "password_reset"
)

const (
	AuditOutcomeSuccess = "success"
	AuditOutcomeFailure = "failure"
)

// AuditLog records one console action performed against the backend.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	SessionID  *uuid.UUID `gorm:"type:uuid;index" json:"session_id,omitempty"`
	Actor      string     `gorm:"type:varchar(255);index" json:"actor"`
	Role       string     `gorm:"type:varchar(100)" json:"role"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Entity     string     `gorm:"type:varchar(100);not null" json:"entity"`
	ResourceID string     `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	Outcome    string     `gorm:"type:varchar(20);not null" json:"outcome"`
	Metadata   JSONBMap   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) GetMetadata(key string, defaultValue interface{}) interface{} {
	if al.Metadata == nil {
		return defaultValue
	}

	if value, exists := al.Metadata[key]; exists {
		return value
	}

	return defaultValue
}

// ToRecord converts the entry into a console record so audit entries can be
// browsed through the same table controller as backend collections.
func (al *AuditLog) ToRecord() *Record {
	r := RecordOf(
		"id", al.ID.String(),
		"created_at", al.CreatedAt.UTC().Format(time.RFC3339),
		"actor", al.Actor,
		"role", al.Role,
		"action", al.Action,
		"entity", al.Entity,
		"resource_id", al.ResourceID,
		"outcome", al.Outcome,
	)
	if len(al.Metadata) > 0 {
		r.Set("metadata", recordFromMap(al.Metadata))
	}
	return r
}

func (al *AuditLog) String() string {
	actor := al.Actor
	if actor == "" {
		actor = "anonymous"
	}

	return fmt.Sprintf("AuditLog[Actor: %s, Action: %s, Entity: %s/%s, Outcome: %s, Time: %s]",
		actor, al.Action, al.Entity, al.ResourceID, al.Outcome, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "console_audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}

	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	if al.Outcome == "" {
		al.Outcome = AuditOutcomeSuccess
	}
	return nil
}

// JSONBMap represents a JSONB map field for PostgreSQL
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
