package domain

import (
	"slices"
	"strings"
	"time"
)

// ColumnPermission lists who besides the admin may edit a KPI column.
type ColumnPermission struct {
	ID                string    `json:"id"`
	ColumnName        Column    `json:"columnName"`
	ColumnDisplayName string    `json:"columnDisplayName"`
	AssignedUsers     []string  `json:"assignedUsers"`
	CreatedBy         string    `json:"createdBy"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Allows reports whether email is assigned, ignoring case.
func (p ColumnPermission) Allows(email string) bool {
	email = strings.ToLower(email)
	return slices.ContainsFunc(p.AssignedUsers, func(u string) bool {
		return strings.ToLower(u) == email
	})
}
