package domain

import "time"

type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// TrustLevel is what an email domain earns a registrant.
type TrustLevel string

const (
	TrustAuto   TrustLevel = "auto"   // approved once verified
	TrustReview TrustLevel = "review" // approved by an admin after verification
	TrustNone   TrustLevel = "none"   // rejected at registration
)

// SystemActor is recorded in approved_by / rejected_by for policy decisions.
const SystemActor = "system"

// UserProfile is the per-user record the dashboard reads. Approved implies
// EmailVerified.
type UserProfile struct {
	UID              string         `json:"uid"`
	Email            string         `json:"email"`
	DisplayName      string         `json:"displayName"`
	EmailVerified    bool           `json:"emailVerified"`
	ApprovalStatus   ApprovalStatus `json:"approvalStatus"`
	Domain           string         `json:"domain"`
	ApprovedBy       string         `json:"approvedBy,omitempty"`
	ApprovedAt       *time.Time     `json:"approvedAt,omitempty"`
	RejectedBy       string         `json:"rejectedBy,omitempty"`
	RejectedAt       *time.Time     `json:"rejectedAt,omitempty"`
	TwoFactorEnabled bool           `json:"twoFactorEnabled"`
	CreatedAt        time.Time      `json:"createdAt"`
	LastLoginAt      *time.Time     `json:"lastLoginAt,omitempty"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// Usable reports whether the profile may enter the application.
func (p UserProfile) Usable() bool {
	return p.EmailVerified && p.ApprovalStatus == StatusApproved
}

// AccessReason explains an AccessDecision to the client so it can route the
// user to the right screen.
type AccessReason string

const (
	AccessGranted      AccessReason = "granted"
	AccessVerifyEmail  AccessReason = "verify_email"
	AccessDomainDenied AccessReason = "domain_denied"
	AccessPendingAdmin AccessReason = "pending_admin"
	AccessRejected     AccessReason = "rejected"
	AccessNoProfile    AccessReason = "no_profile"
)

type AccessDecision struct {
	Allowed bool         `json:"allowed"`
	Reason  AccessReason `json:"reason"`
	Message string       `json:"message"`
}
