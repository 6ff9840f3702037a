package domain

// DeletedDocuments counts the rows removed per table by a cascade.
type DeletedDocuments struct {
	Profile            int64 `json:"profile"`
	Tasks              int64 `json:"tasks"`
	TwoFactorCode      int64 `json:"twoFactorCode"`
	UserStats          int64 `json:"userStats"`
	VerificationTokens int64 `json:"verificationTokens"`
	LoginChallenges    int64 `json:"loginChallenges"`
	RefreshTokens      int64 `json:"refreshTokens"`
}

func (d DeletedDocuments) Total() int64 {
	return d.Profile + d.Tasks + d.TwoFactorCode + d.UserStats +
		d.VerificationTokens + d.LoginChallenges + d.RefreshTokens
}

// CleanupReport is the outcome of cascading a deleted user.
type CleanupReport struct {
	Success          bool              `json:"success"`
	UID              string            `json:"uid"`
	Email            string            `json:"email,omitempty"`
	DeletedDocuments int64             `json:"deletedDocuments"`
	Breakdown        *DeletedDocuments `json:"breakdown,omitempty"`
	Error            string            `json:"error,omitempty"`
}

// OrphanReport covers both modes of the orphan scan. Dry runs fill Message;
// live runs fill Success and DeletedCount.
type OrphanReport struct {
	DryRun           bool     `json:"dryRun,omitempty"`
	Success          bool     `json:"success,omitempty"`
	OrphanedProfiles []string `json:"orphanedProfiles"` // uids
	DeletedCount     *int     `json:"deletedCount,omitempty"`
	Message          string   `json:"message,omitempty"`
}
