package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
)

const (
	msgGranted      = "Access granted."
	msgVerifyEmail  = "Please verify your email address before continuing. Check your inbox for the verification link."
	msgDomainDenied = "Your email domain is not authorised to use this application. Please contact the administrator."
	msgPendingAdmin = "Your account is awaiting administrator approval."
	msgRejected     = "Your account request has been rejected. Please contact the administrator."
	msgNoProfile    = "Your profile could not be loaded. Please sign in again."
)

// ApprovalService holds the admin decisions on profiles and the access gate.
type ApprovalService struct {
	Store  store.Store
	Policy *ApprovalPolicy
	Now    Clock
}

// Approve marks uid approved by the admin actor. Untrusted domains and
// unverified profiles cannot be approved.
func (s *ApprovalService) Approve(ctx context.Context, actor domain.Actor, uid string) (domain.UserProfile, error) {
	if err := s.AuthorizeAdmin(ctx, actor); err != nil {
		return domain.UserProfile{}, err
	}

	p, err := s.profile(ctx, uid)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if _, trust := s.Policy.Classify(p.Email); trust == domain.TrustNone {
		return domain.UserProfile{}, ErrDomainNotAllowed
	}
	if !p.EmailVerified {
		return domain.UserProfile{}, ErrNotVerified
	}

	if err := s.Store.Profiles().ApproveProfile(ctx, uid, normalizeEmail(actor.Email), s.Now.now()); err != nil {
		return domain.UserProfile{}, err
	}
	slogx.FromContext(ctx).Info("profile approved", slog.String("target_uid", uid))
	return s.profile(ctx, uid)
}

// Reject marks uid rejected by the admin actor.
func (s *ApprovalService) Reject(ctx context.Context, actor domain.Actor, uid string) (domain.UserProfile, error) {
	if err := s.AuthorizeAdmin(ctx, actor); err != nil {
		return domain.UserProfile{}, err
	}
	if _, err := s.profile(ctx, uid); err != nil {
		return domain.UserProfile{}, err
	}

	if err := s.Store.Profiles().RejectProfile(ctx, uid, normalizeEmail(actor.Email), s.Now.now()); err != nil {
		return domain.UserProfile{}, err
	}
	slogx.FromContext(ctx).Info("profile rejected", slog.String("target_uid", uid))
	return s.profile(ctx, uid)
}

// PendingQueue lists verified profiles waiting on an admin, oldest first.
func (s *ApprovalService) PendingQueue(ctx context.Context, actor domain.Actor) ([]domain.UserProfile, error) {
	if err := s.AuthorizeAdmin(ctx, actor); err != nil {
		return nil, err
	}
	return s.Store.Profiles().ListPendingVerified(ctx)
}

func (s *ApprovalService) ListUsers(ctx context.Context, actor domain.Actor) ([]domain.UserProfile, error) {
	if err := s.AuthorizeAdmin(ctx, actor); err != nil {
		return nil, err
	}
	return s.Store.Profiles().ListProfiles(ctx)
}

// AuthorizeAdmin fails with ErrForbidden unless actor is the administrator
// with a verified account and profile.
func (s *ApprovalService) AuthorizeAdmin(ctx context.Context, actor domain.Actor) error {
	return authorizeAdmin(ctx, s.Store, s.Policy, actor)
}

// CheckAccess decides whether uid may use the application. Load failures deny.
func (s *ApprovalService) CheckAccess(ctx context.Context, uid string) domain.AccessDecision {
	p, err := s.Store.Profiles().GetProfile(ctx, uid)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Error("failed to load profile for access check", slog.Any("error", err))
		}
		return domain.AccessDecision{Reason: domain.AccessNoProfile, Message: msgNoProfile}
	}
	return s.Decide(p)
}

// Decide is CheckAccess for an already loaded profile.
func (s *ApprovalService) Decide(p domain.UserProfile) domain.AccessDecision {
	if _, trust := s.Policy.Classify(p.Email); trust == domain.TrustNone {
		return domain.AccessDecision{Reason: domain.AccessDomainDenied, Message: msgDomainDenied}
	}
	switch {
	case p.ApprovalStatus == domain.StatusRejected:
		return domain.AccessDecision{Reason: domain.AccessRejected, Message: msgRejected}
	case !p.EmailVerified:
		return domain.AccessDecision{Reason: domain.AccessVerifyEmail, Message: msgVerifyEmail}
	case p.ApprovalStatus != domain.StatusApproved:
		return domain.AccessDecision{Reason: domain.AccessPendingAdmin, Message: msgPendingAdmin}
	}
	return domain.AccessDecision{Allowed: true, Reason: domain.AccessGranted, Message: msgGranted}
}

func (s *ApprovalService) profile(ctx context.Context, uid string) (domain.UserProfile, error) {
	p, err := s.Store.Profiles().GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.UserProfile{}, ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}
	return p, nil
}
