package service

import (
	"strings"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
)

// ApprovalPolicy maps email domains to a trust level. Domains absent from
// the table are untrusted.
type ApprovalPolicy struct {
	Domains    map[string]domain.TrustLevel
	AdminEmail string
}

// NewApprovalPolicy builds the table from the trusted (auto approved) and
// reviewed (admin approved) domain lists. A domain in both lists is trusted.
func NewApprovalPolicy(trusted, reviewed []string, adminEmail string) *ApprovalPolicy {
	p := &ApprovalPolicy{
		Domains:    make(map[string]domain.TrustLevel, len(trusted)+len(reviewed)),
		AdminEmail: normalizeEmail(adminEmail),
	}
	for _, d := range reviewed {
		if d = normalizeDomain(d); d != "" {
			p.Domains[d] = domain.TrustReview
		}
	}
	for _, d := range trusted {
		if d = normalizeDomain(d); d != "" {
			p.Domains[d] = domain.TrustAuto
		}
	}
	return p
}

// Classify returns the lower-cased domain of email and its trust level.
// Malformed emails are untrusted. The administrator address gets no special
// treatment; config validation keeps it on an allowed domain.
func (p *ApprovalPolicy) Classify(email string) (string, domain.TrustLevel) {
	email = normalizeEmail(email)
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", domain.TrustNone
	}
	d := email[at+1:]
	if lvl, ok := p.Domains[d]; ok {
		return d, lvl
	}
	return d, domain.TrustNone
}

// InitialStatus is the approval status of a freshly registered profile.
func (p *ApprovalPolicy) InitialStatus(trust domain.TrustLevel) domain.ApprovalStatus {
	if trust == domain.TrustNone {
		return domain.StatusRejected
	}
	return domain.StatusPending
}

// Reconcile brings a profile in line with its verification state and the
// policy. Rejections are final and an unverified profile is never approved.
func (p *ApprovalPolicy) Reconcile(u domain.UserProfile, now time.Time) domain.UserProfile {
	if u.ApprovalStatus == domain.StatusRejected {
		return u
	}

	if !u.EmailVerified {
		if u.ApprovalStatus == domain.StatusApproved {
			u.ApprovalStatus = domain.StatusPending
			u.ApprovedBy = ""
			u.ApprovedAt = nil
			u.UpdatedAt = now
		}
		return u
	}

	if _, trust := p.Classify(u.Email); trust == domain.TrustAuto && u.ApprovalStatus != domain.StatusApproved {
		at := now
		u.ApprovalStatus = domain.StatusApproved
		u.ApprovedBy = domain.SystemActor
		u.ApprovedAt = &at
		u.RejectedBy = ""
		u.RejectedAt = nil
		u.UpdatedAt = now
	}
	return u
}

// IsAdmin reports whether email belongs to the configured administrator.
func (p *ApprovalPolicy) IsAdmin(email string) bool {
	return p.AdminEmail != "" && normalizeEmail(email) == p.AdminEmail
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeDomain(d string) string {
	return strings.TrimPrefix(normalizeEmail(d), "@")
}
