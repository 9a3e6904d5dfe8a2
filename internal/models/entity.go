package models

import (
	"fmt"
	"strings"
)

// EntityType names one list screen of the console
type EntityType string

const (
	EntityTransactions  EntityType = "transactions"
	EntityUsers         EntityType = "users"
	EntityAccounts      EntityType = "accounts"
	EntityLoans         EntityType = "loans"
	EntityRepayments    EntityType = "repayments"
	EntityApprovedLoans EntityType = "approved-loans"
	EntityMyRepayments  EntityType = "my-repayments"
	EntityAudit         EntityType = "audit"
)

// ViewHome is the active view before any list has been loaded
const ViewHome EntityType = "home"

// AdminEntities are the list screens of the admin console
var AdminEntities = []EntityType{
	EntityTransactions,
	EntityUsers,
	EntityAccounts,
	EntityLoans,
	EntityRepayments,
}

// DashboardEntities are the list screens of the user dashboard
var DashboardEntities = []EntityType{
	EntityApprovedLoans,
	EntityMyRepayments,
}

var entityLabels = map[EntityType]string{
	EntityTransactions:  "transactions",
	EntityUsers:         "users",
	EntityAccounts:      "accounts",
	EntityLoans:         "pending loans",
	EntityRepayments:    "repayments",
	EntityApprovedLoans: "approved loans",
	EntityMyRepayments:  "repayments",
	EntityAudit:         "audit entries",
}

// ParseEntityType validates a path parameter against the known entity types.
func ParseEntityType(s string) (EntityType, error) {
	e := EntityType(s)
	if _, ok := entityLabels[e]; !ok {
		return "", fmt.Errorf("unknown entity type %q", s)
	}
	return e, nil
}

// Label is the lower-case human name used in alerts ("pending loans")
func (e EntityType) Label() string {
	if l, ok := entityLabels[e]; ok {
		return l
	}
	return string(e)
}

// LoadedMessage is the success alert text after a fetch ("Users loaded")
func (e EntityType) LoadedMessage() string {
	l := e.Label()
	if l == "" {
		return "Loaded"
	}
	return strings.ToUpper(l[:1]) + l[1:] + " loaded"
}

// FailedMessage is the danger alert text after a failed fetch
func (e EntityType) FailedMessage() string {
	if e == EntityRepayments {
		return "Could not load repayments. Please try again."
	}
	return "Failed to load " + e.Label()
}

// IsAdminOnly reports whether the entity is only reachable from the admin console.
func (e EntityType) IsAdminOnly() bool {
	for _, a := range AdminEntities {
		if a == e {
			return true
		}
	}
	return e == EntityAudit
}

// FetchState is the lifecycle of one entity view
type FetchState string

const (
	FetchIdle    FetchState = "idle"
	FetchLoading FetchState = "loading"
	FetchLoaded  FetchState = "loaded"
	FetchFailed  FetchState = "failed"
)

// EditorState is the lifecycle of the single-record editor
type EditorState string

const (
	EditorEmpty      EditorState = "empty"
	EditorSearching  EditorState = "searching"
	EditorLoaded     EditorState = "loaded"
	EditorNotFound   EditorState = "not_found"
	EditorSaving     EditorState = "saving"
	EditorSaveFailed EditorState = "save_failed"
)

// IsFraudFlagged mirrors the backend's several spellings of the fraud marker.
func IsFraudFlagged(r *Record) bool {
	for _, key := range []string{"is_fraud", "isFraud", "fraud"} {
		v, ok := r.Get(key)
		if !ok {
			continue
		}
		if b, ok := v.(bool); ok && b {
			return true
		}
		if f, ok := AsFloat(v); ok && f == 1 && key != "fraud" {
			return true
		}
	}
	return false
}

// IsBlocked reports the account blocked flag under either spelling.
func IsBlocked(r *Record) bool {
	for _, key := range []string{"blocked", "isBlocked"} {
		if v, ok := r.Get(key); ok {
			return truthy(v)
		}
	}
	return false
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	if f, ok := AsFloat(v); ok {
		return f != 0
	}
	return true
}
