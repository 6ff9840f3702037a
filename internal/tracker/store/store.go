package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Repositories hang off it so that
// the same code runs against the database or inside a transaction.
type Store interface {
	Accounts() Accounts
	Profiles() Profiles
	TwoFactorCodes() TwoFactorCodes
	VerificationTokens() VerificationTokens
	LoginChallenges() LoginChallenges
	RefreshTokens() RefreshTokens
	Tasks() Tasks
	UserStats() UserStats
	KPIs() KPIs
	AuditLogs() AuditLogs
	Permissions() Permissions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	// fn must only use the tx it is given.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// CreateAccount fails with ErrAlreadyExists when the email is taken.
	CreateAccount(ctx context.Context, a domain.Account) error
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)
	MarkAccountVerified(ctx context.Context, id string, at time.Time) error
	DeleteAccount(ctx context.Context, id string) error
}

type Profiles interface {
	CreateProfile(ctx context.Context, p domain.UserProfile) error
	GetProfile(ctx context.Context, uid string) (domain.UserProfile, error)

	// SaveApprovalState writes email_verified, approval_status and the
	// approved/rejected audit fields of p.
	SaveApprovalState(ctx context.Context, p domain.UserProfile) error

	// ApproveProfile and RejectProfile are single unconditional updates.
	ApproveProfile(ctx context.Context, uid, by string, at time.Time) error
	RejectProfile(ctx context.Context, uid, by string, at time.Time) error

	TouchLastLogin(ctx context.Context, uid string, at time.Time) error
	SetTwoFactorEnabled(ctx context.Context, uid string, enabled bool, at time.Time) error

	// ListProfiles returns every profile, newest first.
	ListProfiles(ctx context.Context) ([]domain.UserProfile, error)

	// ListPendingVerified is the admin approval queue.
	ListPendingVerified(ctx context.Context) ([]domain.UserProfile, error)

	// ListOrphanUIDs returns profiles whose account no longer exists.
	ListOrphanUIDs(ctx context.Context) ([]string, error)

	DeleteProfile(ctx context.Context, uid string) (int64, error)
}

type TwoFactorCodes interface {
	// UpsertCode replaces any previous code of the user.
	UpsertCode(ctx context.Context, c domain.TwoFactorCode) error
	GetCode(ctx context.Context, userID string) (domain.TwoFactorCode, error)
	// MarkCodeVerified consumes the code of userID only while it is still the
	// stored, unverified and unexpired code with fingerprint codeHash.
	// Otherwise it fails with ErrNotFound.
	MarkCodeVerified(ctx context.Context, userID, codeHash string, now time.Time) error
	DeleteCode(ctx context.Context, userID string) (int64, error)
	DeleteExpiredCodes(ctx context.Context, now time.Time) (int64, error)
}

type VerificationTokens interface {
	CreateVerificationToken(ctx context.Context, t domain.VerificationToken) error
	GetVerificationTokenByHash(ctx context.Context, hash string) (domain.VerificationToken, error)
	MarkVerificationTokenUsed(ctx context.Context, id string, at time.Time) error
	DeleteUserVerificationTokens(ctx context.Context, userID string) (int64, error)
	DeleteExpiredVerificationTokens(ctx context.Context, now time.Time) (int64, error)
}

type LoginChallenges interface {
	CreateChallenge(ctx context.Context, c domain.LoginChallenge) error
	GetChallenge(ctx context.Context, id string) (domain.LoginChallenge, error)

	// IncrementChallengeAttempts returns the challenge with the new count.
	IncrementChallengeAttempts(ctx context.Context, id string) (domain.LoginChallenge, error)
	DeleteChallenge(ctx context.Context, id string) error
	DeleteUserChallenges(ctx context.Context, userID string) (int64, error)
	DeleteExpiredChallenges(ctx context.Context, now time.Time) (int64, error)
}

type RefreshTokens interface {
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	// GetRefreshTokenByHash returns the token by its fingerprint.
	GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, hash string, at time.Time) error

	// RevokeSession revokes every token of a session (logout, reuse detection).
	RevokeSession(ctx context.Context, sessionID string, at time.Time) error
	DeleteUserRefreshTokens(ctx context.Context, userID string) (int64, error)
	DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}

// TaskCounts is a per-status tally of one user's tasks.
type TaskCounts struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
}

type Tasks interface {
	CreateTask(ctx context.Context, t domain.Task) error
	GetTask(ctx context.Context, id string) (domain.Task, error)

	// ListUserTasks orders by date, newest first.
	ListUserTasks(ctx context.Context, userID string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, t domain.Task) error
	DeleteTask(ctx context.Context, id string) error
	DeleteUserTasks(ctx context.Context, userID string) (int64, error)
	CountUserTasks(ctx context.Context, userID string) (TaskCounts, error)
}

type UserStats interface {
	UpsertUserStats(ctx context.Context, s domain.UserStats) error
	GetUserStats(ctx context.Context, userID string) (domain.UserStats, error)
	ListUserStats(ctx context.Context) ([]domain.UserStats, error)
	DeleteUserStats(ctx context.Context, userID string) (int64, error)
}

type KPIs interface {
	CreateKPI(ctx context.Context, k domain.KPI) error
	GetKPI(ctx context.Context, id string) (domain.KPI, error)

	// ListKPIs orders by category, then name.
	ListKPIs(ctx context.Context) ([]domain.KPI, error)

	// UpdateKPI writes every column of k.
	UpdateKPI(ctx context.Context, k domain.KPI) error
	DeleteKPI(ctx context.Context, id string) error
}

type AuditLogs interface {
	CreateAuditLog(ctx context.Context, a domain.AuditLog) error

	// ListAuditLogs applies f, newest first. A negative limit means no limit.
	ListAuditLogs(ctx context.Context, f domain.AuditFilter) ([]domain.AuditLog, error)
	ListKPIAuditLogs(ctx context.Context, kpiID string) ([]domain.AuditLog, error)
}

type Permissions interface {
	// UpsertPermission creates or replaces the permission of a column.
	UpsertPermission(ctx context.Context, p domain.ColumnPermission) error
	GetPermission(ctx context.Context, column domain.Column) (domain.ColumnPermission, error)
	ListPermissions(ctx context.Context) ([]domain.ColumnPermission, error)
	DeletePermission(ctx context.Context, column domain.Column) error
}
