package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/cryptox"
	"github.com/aussiebroadwan/tracker/pkg/idx"
	"github.com/aussiebroadwan/tracker/pkg/jwtx"
	"github.com/aussiebroadwan/tracker/pkg/mailx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
)

const (
	codeDigits = 6

	// MaxChallengeAttempts is the number of wrong codes a login challenge survives.
	MaxChallengeAttempts = 5

	// LoginChallengeTTL bounds a login waiting on its second factor, resends included.
	LoginChallengeTTL = 30 * time.Minute
)

var (
	ErrInvalidCode      = errors.New("invalid_code")
	ErrInvalidChallenge = errors.New("invalid_challenge")
	ErrTooManyAttempts  = errors.New("too_many_attempts")
)

type TwoFactorService struct {
	Store  store.Store
	Mailer mailx.Mailer
	Tokens *TokenService
	Now    Clock
}

// Issue creates a fresh 6 digit code for userID, replacing any previous one.
// Only the fingerprint is stored.
func (s *TwoFactorService) Issue(ctx context.Context, userID, email string) (string, error) {
	code, err := cryptox.GenerateNumericCode(codeDigits)
	if err != nil {
		return "", err
	}

	now := s.Now.now()
	if err := s.Store.TwoFactorCodes().UpsertCode(ctx, domain.TwoFactorCode{
		UserID:    userID,
		Email:     email,
		CodeHash:  cryptox.FingerprintToken(code),
		CreatedAt: now,
		ExpiresAt: now.Add(domain.TwoFactorCodeTTL),
	}); err != nil {
		return "", fmt.Errorf("failed to store code: %w", err)
	}

	slogx.FromContext(ctx).Info("two-factor code issued", slog.String("uid", userID))
	return code, nil
}

// Verify reports whether code is the live code of userID and consumes it.
// Missing, expired, wrong and already used codes all verify as false.
func (s *TwoFactorService) Verify(ctx context.Context, userID, code string) (bool, error) {
	l := slogx.FromContext(ctx)

	c, err := s.Store.TwoFactorCodes().GetCode(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	now := s.Now.now()
	if !now.Before(c.ExpiresAt) {
		if _, err := s.Store.TwoFactorCodes().DeleteCode(ctx, userID); err != nil {
			l.Error("failed to delete expired code", slog.Any("error", err))
		}
		return false, nil
	}

	if !cryptox.MatchesFingerprint(strings.TrimSpace(code), c.CodeHash) {
		return false, nil
	}

	if c.Verified {
		return false, nil
	}

	// The update only matches while the row still holds this fingerprint,
	// unused and unexpired. A racing verify or a reissue after the read
	// leaves nothing to update.
	if err := s.Store.TwoFactorCodes().MarkCodeVerified(ctx, userID, c.CodeHash, now); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remaining returns the whole seconds until the code of userID expires, or 0.
func (s *TwoFactorService) Remaining(ctx context.Context, userID string) (int, error) {
	c, err := s.Store.TwoFactorCodes().GetCode(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	left := c.ExpiresAt.Sub(s.Now.now())
	if left <= 0 {
		return 0, nil
	}
	return int(left / time.Second), nil
}

// SweepExpired deletes every expired code.
func (s *TwoFactorService) SweepExpired(ctx context.Context) (int64, error) {
	return s.Store.TwoFactorCodes().DeleteExpiredCodes(ctx, s.Now.now())
}

func (s *TwoFactorService) SetEnabled(ctx context.Context, userID string, enabled bool) error {
	err := s.Store.Profiles().SetTwoFactorEnabled(ctx, userID, enabled, s.Now.now())
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// StartChallenge opens a login challenge for acct and mails it a code.
func (s *TwoFactorService) StartChallenge(ctx context.Context, acct domain.Account) (*domain.ChallengeResponse, error) {
	now := s.Now.now()
	c := domain.LoginChallenge{
		ID:        idx.New().String(),
		UserID:    acct.ID,
		ExpiresAt: now.Add(LoginChallengeTTL),
		CreatedAt: now,
	}
	if err := s.Store.LoginChallenges().CreateChallenge(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	if err := s.sendCode(ctx, acct.ID, acct.Email); err != nil {
		return nil, err
	}

	return &domain.ChallengeResponse{
		TwoFactorRequired: true,
		Challenge:         c.ID,
		ExpiresIn:         int(domain.TwoFactorCodeTTL.Seconds()),
	}, nil
}

// VerifyLogin completes a login challenge with code. Wrong codes count
// against the challenge, which is dropped after MaxChallengeAttempts.
func (s *TwoFactorService) VerifyLogin(ctx context.Context, challengeID, code string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	c, err := s.liveChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	ok, err := s.Verify(ctx, c.UserID, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		c, err = s.Store.LoginChallenges().IncrementChallengeAttempts(ctx, c.ID)
		if err != nil {
			return nil, mapChallengeErr(err)
		}
		if c.Attempts >= MaxChallengeAttempts {
			l.Warn("login challenge exhausted", slog.String("uid", c.UserID))
			if err := s.Store.LoginChallenges().DeleteChallenge(ctx, c.ID); err != nil {
				l.Error("failed to delete challenge", slog.Any("error", err))
			}
			return nil, ErrTooManyAttempts
		}
		return nil, ErrInvalidCode
	}

	if err := s.Store.LoginChallenges().DeleteChallenge(ctx, c.ID); err != nil {
		return nil, err
	}

	acct, err := s.Store.Accounts().GetAccountByID(ctx, c.UserID)
	if err != nil {
		return nil, mapChallengeErr(err)
	}
	sub := Subject{UID: acct.ID, Email: acct.Email}
	if p, err := s.Store.Profiles().GetProfile(ctx, acct.ID); err == nil {
		sub.Name = p.DisplayName
	}

	return s.Tokens.IssueSession(ctx, sub, []string{jwtx.AMRPassword, jwtx.AMROTP})
}

// ResendChallenge mails a fresh code for the challenge. The old code stops working.
func (s *TwoFactorService) ResendChallenge(ctx context.Context, challengeID string) (*domain.ChallengeResponse, error) {
	c, err := s.liveChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	acct, err := s.Store.Accounts().GetAccountByID(ctx, c.UserID)
	if err != nil {
		return nil, mapChallengeErr(err)
	}
	if err := s.sendCode(ctx, acct.ID, acct.Email); err != nil {
		return nil, err
	}
	return &domain.ChallengeResponse{
		TwoFactorRequired: true,
		Challenge:         c.ID,
		ExpiresIn:         int(domain.TwoFactorCodeTTL.Seconds()),
	}, nil
}

// ChallengeRemaining is Remaining for the user behind a challenge.
func (s *TwoFactorService) ChallengeRemaining(ctx context.Context, challengeID string) (int, error) {
	c, err := s.liveChallenge(ctx, challengeID)
	if err != nil {
		return 0, err
	}
	return s.Remaining(ctx, c.UserID)
}

func (s *TwoFactorService) liveChallenge(ctx context.Context, challengeID string) (domain.LoginChallenge, error) {
	if !idx.Valid(challengeID) {
		return domain.LoginChallenge{}, ErrInvalidChallenge
	}
	c, err := s.Store.LoginChallenges().GetChallenge(ctx, challengeID)
	if err != nil {
		return domain.LoginChallenge{}, mapChallengeErr(err)
	}
	if !s.Now.now().Before(c.ExpiresAt) {
		if err := s.Store.LoginChallenges().DeleteChallenge(ctx, c.ID); err != nil {
			slogx.FromContext(ctx).Error("failed to delete expired challenge", slog.Any("error", err))
		}
		return domain.LoginChallenge{}, ErrInvalidChallenge
	}
	if c.Attempts >= MaxChallengeAttempts {
		return domain.LoginChallenge{}, ErrTooManyAttempts
	}
	return c, nil
}

func (s *TwoFactorService) sendCode(ctx context.Context, userID, email string) error {
	code, err := s.Issue(ctx, userID, email)
	if err != nil {
		return err
	}
	if err := s.Mailer.Send(ctx, mailx.LoginCodeMessage(email, code, domain.TwoFactorCodeTTL)); err != nil {
		return fmt.Errorf("failed to send code: %w", err)
	}
	return nil
}

func mapChallengeErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidChallenge
	}
	return err
}
