package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/store"
)

// SweepReport counts the expired rows removed by one housekeeping pass.
type SweepReport struct {
	TwoFactorCodes     int64 `json:"twoFactorCodes"`
	VerificationTokens int64 `json:"verificationTokens"`
	LoginChallenges    int64 `json:"loginChallenges"`
	RefreshTokens      int64 `json:"refreshTokens"`
}

// HousekeepingService removes expired codes, links, challenges and refresh
// tokens. Expiry is checked on read, so sweeping only bounds table growth.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Now      Clock

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates the ticker worker. Start is only called
// when an interval is configured.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the sweep every Interval until Stop.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until an in-progress sweep has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep runs one pass. Each table is independent, so a failure in one
// does not stop the others.
func (s *HousekeepingService) Sweep(ctx context.Context) SweepReport {
	now := s.Now.now()
	var r SweepReport
	var err error

	if r.TwoFactorCodes, err = s.Store.TwoFactorCodes().DeleteExpiredCodes(ctx, now); err != nil {
		s.Logger.Error("failed to delete expired two-factor codes", "error", err)
	}
	if r.VerificationTokens, err = s.Store.VerificationTokens().DeleteExpiredVerificationTokens(ctx, now); err != nil {
		s.Logger.Error("failed to delete expired verification tokens", "error", err)
	}
	if r.LoginChallenges, err = s.Store.LoginChallenges().DeleteExpiredChallenges(ctx, now); err != nil {
		s.Logger.Error("failed to delete expired login challenges", "error", err)
	}
	if r.RefreshTokens, err = s.Store.RefreshTokens().DeleteExpiredRefreshTokens(ctx, now); err != nil {
		s.Logger.Error("failed to delete expired refresh tokens", "error", err)
	}

	s.Logger.Info("housekeeping sweep completed",
		"two_factor_codes", r.TwoFactorCodes,
		"verification_tokens", r.VerificationTokens,
		"login_challenges", r.LoginChallenges,
		"refresh_tokens", r.RefreshTokens,
	)
	return r
}
