package domain

import "time"

type ChangeType string

const (
	ChangeCreate ChangeType = "create"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// AllFields is the audit field of whole-record creates and deletes.
const AllFields = "*"

type AuditLog struct {
	ID             string     `json:"id"`
	KPIID          string     `json:"kpiId"`
	KPIName        string     `json:"kpiName"`
	KPICategory    string     `json:"kpiCategory"`
	Field          string     `json:"field"`
	OldValue       string     `json:"oldValue"`
	NewValue       string     `json:"newValue"`
	ChangedBy      string     `json:"changedBy"`
	ChangedByEmail string     `json:"changedByEmail"`
	ChangedByName  string     `json:"changedByName"`
	ChangedAt      time.Time  `json:"changedAt"`
	ChangeType     ChangeType `json:"changeType"`
}

type AuditFilter struct {
	UserEmail string
	KPIID     string
	Field     string
	Start     *time.Time
	End       *time.Time
	Limit     int
}

type AuditStats struct {
	TotalChanges int            `json:"totalChanges"`
	UniqueUsers  int            `json:"uniqueUsers"`
	UniqueKPIs   int            `json:"uniqueKPIs"`
	Creates      int            `json:"creates"`
	Updates      int            `json:"updates"`
	Deletes      int            `json:"deletes"`
	UserChanges  map[string]int `json:"userChanges"`
}

// Actor is who makes a change, taken from the access token.
type Actor struct {
	UID     string
	Email   string
	Name    string
	IsAdmin bool
}
