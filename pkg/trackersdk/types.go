package trackersdk

import (
	"time"

	"github.com/aussiebroadwan/tracker/pkg/jwtx"
)

// ============================================================================
// Accounts & Sessions
// ============================================================================

type RegisterRequest struct {
	Email           string `json:"email" example:"ann@example.com"`
	Password        string `json:"password" example:"secret1"`
	ConfirmPassword string `json:"confirmPassword" example:"secret1"`
	DisplayName     string `json:"displayName,omitempty" example:"Ann"`
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" example:"ann@example.com"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"ann@example.com"`
	Password string `json:"password" example:"secret1"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse is returned by a completed login or a refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type" example:"Bearer"`
	ExpiresIn    int    `json:"expires_in" example:"900"`
}

// ============================================================================
// Two-Factor
// ============================================================================

type TwoFactorVerifyRequest struct {
	Challenge string `json:"challenge"`
	Code      string `json:"code" example:"042917"`
}

type TwoFactorResendRequest struct {
	Challenge string `json:"challenge"`
}

type TwoFactorChallengeResponse struct {
	TwoFactorRequired bool   `json:"two_factor_required"`
	Challenge         string `json:"challenge"`
	ExpiresIn         int    `json:"expires_in" example:"600"`
}

type TwoFactorRemainingResponse struct {
	Seconds int `json:"seconds" example:"431"`
}

type TwoFactorToggleRequest struct {
	Enabled bool `json:"enabled"`
}

// ============================================================================
// Profiles & Access
// ============================================================================

type Profile struct {
	UID              string     `json:"uid"`
	Email            string     `json:"email"`
	DisplayName      string     `json:"displayName"`
	EmailVerified    bool       `json:"emailVerified"`
	ApprovalStatus   string     `json:"approvalStatus" example:"pending"`
	Domain           string     `json:"domain"`
	ApprovedBy       string     `json:"approvedBy,omitempty"`
	ApprovedAt       *time.Time `json:"approvedAt,omitempty"`
	RejectedBy       string     `json:"rejectedBy,omitempty"`
	RejectedAt       *time.Time `json:"rejectedAt,omitempty"`
	TwoFactorEnabled bool       `json:"twoFactorEnabled"`
	CreatedAt        time.Time  `json:"createdAt"`
	LastLoginAt      *time.Time `json:"lastLoginAt,omitempty"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type AccessDecision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason" example:"granted"`
	Message string `json:"message"`
}

type MeResponse struct {
	Profile *Profile       `json:"profile,omitempty"`
	Access  AccessDecision `json:"access"`
}

// ============================================================================
// Admin
// ============================================================================

type OrphanScanRequest struct {
	DryRun bool `json:"dryRun"`
}

type OrphanReport struct {
	DryRun           bool     `json:"dryRun,omitempty"`
	Success          bool     `json:"success,omitempty"`
	OrphanedProfiles []string `json:"orphanedProfiles"`
	DeletedCount     *int     `json:"deletedCount,omitempty"`
	Message          string   `json:"message,omitempty"`
}

type SweepReport struct {
	TwoFactorCodes     int64 `json:"twoFactorCodes"`
	VerificationTokens int64 `json:"verificationTokens"`
	LoginChallenges    int64 `json:"loginChallenges"`
	RefreshTokens      int64 `json:"refreshTokens"`
}

// ============================================================================
// Tasks
// ============================================================================

type TaskRequest struct {
	Title       string `json:"title" example:"Write weekly report"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty" example:"pending"`
	Date        string `json:"date" example:"2026-05-01"`
}

type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	UserEmail   string    `json:"userEmail"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TaskStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// ============================================================================
// KPIs, Permissions & Audit
// ============================================================================

// KPIUpdateRequest maps column names to their new text value.
type KPIUpdateRequest map[string]string

type PermissionRequest struct {
	ColumnDisplayName string   `json:"columnDisplayName,omitempty"`
	AssignedUsers     []string `json:"assignedUsers"`
}

type AuditLog struct {
	ID             string    `json:"id"`
	KPIID          string    `json:"kpiId"`
	KPIName        string    `json:"kpiName"`
	KPICategory    string    `json:"kpiCategory"`
	Field          string    `json:"field"`
	OldValue       string    `json:"oldValue"`
	NewValue       string    `json:"newValue"`
	ChangedBy      string    `json:"changedBy"`
	ChangedByEmail string    `json:"changedByEmail"`
	ChangedByName  string    `json:"changedByName"`
	ChangedAt      time.Time `json:"changedAt"`
	ChangeType     string    `json:"changeType"`
}

// ============================================================================
// System
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

type JWKSResponse jwtx.JWKS
