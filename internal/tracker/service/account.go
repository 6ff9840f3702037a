package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/cryptox"
	"github.com/aussiebroadwan/tracker/pkg/eventx"
	"github.com/aussiebroadwan/tracker/pkg/idx"
	"github.com/aussiebroadwan/tracker/pkg/jwtx"
	"github.com/aussiebroadwan/tracker/pkg/mailx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
)

const (
	MinPasswordLength = 6

	// VerificationTTL is how long a verification link stays valid.
	VerificationTTL = 24 * time.Hour
)

type RegisterInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	DisplayName     string `json:"displayName"`
}

// LoginResult carries either tokens or, when a code is due, a challenge.
type LoginResult struct {
	Tokens    *domain.TokenPair
	Challenge *domain.ChallengeResponse
}

type AccountService struct {
	Store     store.Store
	Policy    *ApprovalPolicy
	Mailer    mailx.Mailer
	Events    eventx.Publisher
	Tokens    *TokenService
	TwoFactor *TwoFactorService

	// PublicURL is the externally reachable base of verification links.
	PublicURL string
	Now       Clock
}

// Register creates the account and its profile. Registrants from domains
// outside the policy are stored as rejected, get no email, and receive
// ErrDomainNotAllowed alongside the stored profile.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (domain.UserProfile, error) {
	l := slogx.FromContext(ctx)

	email := normalizeEmail(in.Email)
	if err := validateRegistration(email, in.Password, in.ConfirmPassword); err != nil {
		return domain.UserProfile{}, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.Now.now()
	d, trust := s.Policy.Classify(email)

	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		name = email[:strings.LastIndex(email, "@")]
	}

	acct := domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := domain.UserProfile{
		UID:            acct.ID,
		Email:          email,
		DisplayName:    name,
		ApprovalStatus: s.Policy.InitialStatus(trust),
		Domain:         d,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if profile.ApprovalStatus == domain.StatusRejected {
		at := now
		profile.RejectedBy = domain.SystemActor
		profile.RejectedAt = &at
	}

	if err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx, acct); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}
		return tx.Profiles().CreateProfile(ctx, profile)
	}); err != nil {
		return domain.UserProfile{}, err
	}

	l.Info("account registered",
		slog.String("uid", acct.ID),
		slog.String("domain", d),
		slog.String("trust", string(trust)),
	)

	if trust == domain.TrustNone {
		return profile, ErrDomainNotAllowed
	}

	if err := s.sendVerification(ctx, acct); err != nil {
		l.Error("failed to send verification email", slog.String("uid", acct.ID), slog.Any("error", err))
	}
	return profile, nil
}

// VerifyEmail consumes a verification token and reconciles the profile.
func (s *AccountService) VerifyEmail(ctx context.Context, token string) (domain.UserProfile, error) {
	now := s.Now.now()

	token = strings.TrimSpace(token)
	if token == "" {
		return domain.UserProfile{}, ErrInvalidToken
	}

	vt, err := s.Store.VerificationTokens().GetVerificationTokenByHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.UserProfile{}, ErrInvalidToken
		}
		return domain.UserProfile{}, err
	}
	if vt.UsedAt != nil || !now.Before(vt.ExpiresAt) {
		return domain.UserProfile{}, ErrInvalidToken
	}

	var profile domain.UserProfile
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.VerificationTokens().MarkVerificationTokenUsed(ctx, vt.ID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidToken
			}
			return err
		}
		if err := tx.Accounts().MarkAccountVerified(ctx, vt.UserID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidToken
			}
			return err
		}

		p, err := tx.Profiles().GetProfile(ctx, vt.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		p.EmailVerified = true
		p.UpdatedAt = now
		profile = s.Policy.Reconcile(p, now)
		return tx.Profiles().SaveApprovalState(ctx, profile)
	})
	if err != nil {
		return domain.UserProfile{}, err
	}

	slogx.FromContext(ctx).Info("email verified",
		slog.String("uid", profile.UID),
		slog.String("approval_status", string(profile.ApprovalStatus)),
	)
	return profile, nil
}

// ResendVerification mails a new link to an unverified, allow-listed
// account. Every other case succeeds silently so callers cannot probe for
// accounts.
func (s *AccountService) ResendVerification(ctx context.Context, email string) error {
	l := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	acct, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	if acct.EmailVerified {
		return nil
	}
	if _, trust := s.Policy.Classify(email); trust == domain.TrustNone {
		return nil
	}

	if _, err := s.Store.VerificationTokens().DeleteUserVerificationTokens(ctx, acct.ID); err != nil {
		return err
	}
	if err := s.sendVerification(ctx, acct); err != nil {
		l.Error("failed to resend verification email", slog.String("uid", acct.ID), slog.Any("error", err))
	}
	return nil
}

// Login checks the password, syncs the verification state of the account
// into the profile and either issues tokens or starts a code challenge.
func (s *AccountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := slogx.FromContext(ctx)
	now := s.Now.now()
	email = normalizeEmail(email)

	acct, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := cryptox.VerifyPassword(password, acct.PasswordHash); err != nil {
		l.Info("login failed", slog.String("uid", acct.ID))
		return nil, ErrInvalidCredentials
	}

	sub := Subject{UID: acct.ID, Email: acct.Email}

	p, err := s.Store.Profiles().GetProfile(ctx, acct.ID)
	switch {
	case err == nil:
		sub.Name = p.DisplayName
		p = s.syncProfile(ctx, acct, p, now)
	case errors.Is(err, store.ErrNotFound):
		l.Warn("login without profile", slog.String("uid", acct.ID))
	default:
		return nil, err
	}

	if err := s.Store.Profiles().TouchLastLogin(ctx, acct.ID, now); err != nil && !errors.Is(err, store.ErrNotFound) {
		l.Error("failed to record last login", slog.Any("error", err))
	}

	if p.TwoFactorEnabled {
		ch, err := s.TwoFactor.StartChallenge(ctx, acct)
		if err != nil {
			return nil, err
		}
		return &LoginResult{Challenge: ch}, nil
	}

	pair, err := s.Tokens.IssueSession(ctx, sub, []string{jwtx.AMRPassword})
	if err != nil {
		return nil, err
	}
	return &LoginResult{Tokens: pair}, nil
}

// DeleteAccount removes the identity record and announces it. Profile data
// is removed by the cleanup consumer of the event.
func (s *AccountService) DeleteAccount(ctx context.Context, uid string) error {
	l := slogx.FromContext(ctx)

	acct, err := s.Store.Accounts().GetAccountByID(ctx, uid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.Store.Accounts().DeleteAccount(ctx, uid); err != nil {
		return err
	}
	l.Info("account deleted", slog.String("uid", uid))

	ev := eventx.UserDeleted{UID: acct.ID, Email: acct.Email, DeletedAt: s.Now.now()}
	if err := s.Events.PublishUserDeleted(ctx, ev); err != nil {
		// The profile is now an orphan and the orphan scan will collect it.
		l.Error("failed to publish user deleted event", slog.String("uid", uid), slog.Any("error", err))
	}
	return nil
}

// syncProfile copies the authoritative verification flag onto the profile
// and persists the reconciled result when anything changed.
func (s *AccountService) syncProfile(ctx context.Context, acct domain.Account, p domain.UserProfile, now time.Time) domain.UserProfile {
	next := p
	if next.EmailVerified != acct.EmailVerified {
		next.EmailVerified = acct.EmailVerified
		next.UpdatedAt = now
	}
	next = s.Policy.Reconcile(next, now)

	if next.EmailVerified == p.EmailVerified && next.ApprovalStatus == p.ApprovalStatus {
		return p
	}
	if err := s.Store.Profiles().SaveApprovalState(ctx, next); err != nil {
		slogx.FromContext(ctx).Error("failed to sync profile", slog.String("uid", p.UID), slog.Any("error", err))
		return p
	}
	return next
}

func (s *AccountService) sendVerification(ctx context.Context, acct domain.Account) error {
	now := s.Now.now()

	opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return err
	}
	if err := s.Store.VerificationTokens().CreateVerificationToken(ctx, domain.VerificationToken{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(opaque),
		UserID:    acct.ID,
		Email:     acct.Email,
		ExpiresAt: now.Add(VerificationTTL),
		CreatedAt: now,
	}); err != nil {
		return err
	}

	link := strings.TrimRight(s.PublicURL, "/") + "/v1/accounts/verify?token=" + url.QueryEscape(opaque)
	return s.Mailer.Send(ctx, mailx.VerificationMessage(acct.Email, link, VerificationTTL))
}

func validateRegistration(email, password, confirm string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if at := strings.LastIndex(email, "@"); at <= 0 || !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	return nil
}
