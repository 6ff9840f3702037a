package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/cryptox"
	"github.com/aussiebroadwan/tracker/pkg/idx"
	"github.com/aussiebroadwan/tracker/pkg/jwtx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
)

var ErrInvalidRefresh = errors.New("invalid_refresh_token")

// Subject is who a session is issued to.
type Subject struct {
	UID   string
	Email string
	Name  string
}

type TokenService struct {
	KeyManager *jwtx.KeyManager
	Store      store.Store
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Now        Clock
}

// IssueSession starts a new session for sub and returns its first token pair.
func (s *TokenService) IssueSession(ctx context.Context, sub Subject, amr []string) (*domain.TokenPair, error) {
	now := s.Now.now()
	sessionID := idx.New().String()
	amr = dedupe(amr)

	access, err := s.signAccess(sub, sessionID, amr, now)
	if err != nil {
		return nil, err
	}

	refreshOpaque, rt, err := s.newRefreshToken(sub.UID, sessionID, amr, now)
	if err != nil {
		return nil, err
	}
	if err := s.Store.RefreshTokens().CreateRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	return s.pair(access, refreshOpaque), nil
}

// Refresh rotates a refresh token. Presenting a revoked token revokes the
// whole session, since it means the token was copied.
func (s *TokenService) Refresh(ctx context.Context, refreshOpaque string) (*domain.TokenPair, error) {
	now := s.Now.now()
	l := slogx.FromContext(ctx)

	fp := cryptox.FingerprintToken(refreshOpaque)
	rt, err := s.Store.RefreshTokens().GetRefreshTokenByHash(ctx, fp)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	if rt.Revoked {
		l.Warn("refresh token reuse detected", slog.String("sid", rt.SessionID))
		if err := s.Store.RefreshTokens().RevokeSession(ctx, rt.SessionID, now); err != nil {
			l.Error("failed to revoke session", slog.Any("error", err))
		}
		return nil, ErrInvalidRefresh
	}
	if !now.Before(rt.ExpiresAt) {
		return nil, ErrInvalidRefresh
	}

	acct, err := s.Store.Accounts().GetAccountByID(ctx, rt.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	sub := Subject{UID: acct.ID, Email: acct.Email}
	if p, err := s.Store.Profiles().GetProfile(ctx, acct.ID); err == nil {
		sub.Name = p.DisplayName
	}

	amr := dedupe(append(rt.AMR, jwtx.AMRRefresh))
	access, err := s.signAccess(sub, rt.SessionID, amr, now)
	if err != nil {
		return nil, err
	}

	newOpaque, newRT, err := s.newRefreshToken(acct.ID, rt.SessionID, amr, now)
	if err != nil {
		return nil, err
	}

	if err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.RefreshTokens().RevokeRefreshToken(ctx, fp, now); err != nil {
			return err
		}
		return tx.RefreshTokens().CreateRefreshToken(ctx, newRT)
	}); err != nil {
		return nil, err
	}

	return s.pair(access, newOpaque), nil
}

// RevokeSession ends the session of the given refresh token. Unknown tokens
// are ignored.
func (s *TokenService) RevokeSession(ctx context.Context, refreshOpaque string) error {
	rt, err := s.Store.RefreshTokens().GetRefreshTokenByHash(ctx, cryptox.FingerprintToken(refreshOpaque))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	return s.Store.RefreshTokens().RevokeSession(ctx, rt.SessionID, s.Now.now())
}

// RevokeSessionID ends a session by id, as found in the sid claim.
func (s *TokenService) RevokeSessionID(ctx context.Context, sessionID string) error {
	return s.Store.RefreshTokens().RevokeSession(ctx, sessionID, s.Now.now())
}

func (s *TokenService) newRefreshToken(uid, sessionID string, amr []string, now time.Time) (string, domain.RefreshToken, error) {
	opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", domain.RefreshToken{}, err
	}
	return opaque, domain.RefreshToken{
		ID:        idx.New().String(),
		UserID:    uid,
		TokenHash: cryptox.FingerprintToken(opaque),
		SessionID: sessionID,
		AMR:       amr,
		ExpiresAt: now.Add(s.refreshTTL()),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *TokenService) signAccess(sub Subject, sessionID string, amr []string, now time.Time) (string, error) {
	claims := jwtx.NewAccessClaims(jwtx.AccessClaimsParams{
		Subject:   sub.UID,
		SessionID: sessionID,
		Email:     sub.Email,
		Name:      sub.Name,
		AMR:       amr,
		TTL:       s.accessTTL(),
		Issuer:    s.Issuer,
		Now:       now,
	})
	return s.KeyManager.Signer().Sign(claims)
}

func (s *TokenService) pair(access, refresh string) *domain.TokenPair {
	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int(s.accessTTL().Seconds()),
	}
}

func (s *TokenService) accessTTL() time.Duration {
	if s.AccessTTL <= 0 {
		return jwtx.DefaultAccessTokenTTL
	}
	return s.AccessTTL
}

func (s *TokenService) refreshTTL() time.Duration {
	if s.RefreshTTL <= 0 {
		return jwtx.DefaultRefreshTokenTTL
	}
	return s.RefreshTTL
}

func dedupe(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
