package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/eventx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
)

// CleanupService removes everything a deleted user leaves behind. KPIs and
// audit logs belong to the team and are kept.
type CleanupService struct {
	Store  store.Store
	Policy *ApprovalPolicy
}

// HandleUserDeleted cascades the deletion of ev.UID in one transaction. It
// never fails; the outcome is in the report.
func (s *CleanupService) HandleUserDeleted(ctx context.Context, ev eventx.UserDeleted) domain.CleanupReport {
	l := slogx.FromContext(ctx).With(slog.String("target_uid", ev.UID))

	var d domain.DeletedDocuments
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if d.Profile, err = tx.Profiles().DeleteProfile(ctx, ev.UID); err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		if d.Tasks, err = tx.Tasks().DeleteUserTasks(ctx, ev.UID); err != nil {
			return fmt.Errorf("tasks: %w", err)
		}
		if d.TwoFactorCode, err = tx.TwoFactorCodes().DeleteCode(ctx, ev.UID); err != nil {
			return fmt.Errorf("two-factor code: %w", err)
		}
		if d.UserStats, err = tx.UserStats().DeleteUserStats(ctx, ev.UID); err != nil {
			return fmt.Errorf("user stats: %w", err)
		}
		if d.VerificationTokens, err = tx.VerificationTokens().DeleteUserVerificationTokens(ctx, ev.UID); err != nil {
			return fmt.Errorf("verification tokens: %w", err)
		}
		if d.LoginChallenges, err = tx.LoginChallenges().DeleteUserChallenges(ctx, ev.UID); err != nil {
			return fmt.Errorf("login challenges: %w", err)
		}
		if d.RefreshTokens, err = tx.RefreshTokens().DeleteUserRefreshTokens(ctx, ev.UID); err != nil {
			return fmt.Errorf("refresh tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		l.Error("user cleanup failed", slog.Any("error", err))
		return domain.CleanupReport{UID: ev.UID, Email: ev.Email, Error: err.Error()}
	}

	l.Info("user cleanup completed", slog.Int64("deleted_documents", d.Total()))
	return domain.CleanupReport{
		Success:          true,
		UID:              ev.UID,
		Email:            ev.Email,
		DeletedDocuments: d.Total(),
		Breakdown:        &d,
	}
}

// Handler adapts HandleUserDeleted to the event transports.
func (s *CleanupService) Handler() eventx.Handler {
	return func(ctx context.Context, ev eventx.UserDeleted) {
		_ = s.HandleUserDeleted(ctx, ev)
	}
}

// ScanOrphans finds profiles whose account is gone. A live run cascades
// each of them; a dry run only reports.
func (s *CleanupService) ScanOrphans(ctx context.Context, actor domain.Actor, dryRun bool) (domain.OrphanReport, error) {
	if err := authorizeAdmin(ctx, s.Store, s.Policy, actor); err != nil {
		return domain.OrphanReport{}, err
	}
	return s.scan(ctx, dryRun)
}

func (s *CleanupService) scan(ctx context.Context, dryRun bool) (domain.OrphanReport, error) {
	uids, err := s.Store.Profiles().ListOrphanUIDs(ctx)
	if err != nil {
		return domain.OrphanReport{}, err
	}

	if dryRun {
		return domain.OrphanReport{
			DryRun:           true,
			OrphanedProfiles: uids,
			Message:          fmt.Sprintf("Found %d orphaned profiles. Set dryRun=false to delete them.", len(uids)),
		}, nil
	}

	deleted := 0
	for _, uid := range uids {
		if r := s.HandleUserDeleted(ctx, eventx.UserDeleted{UID: uid}); r.Success {
			deleted++
		}
	}
	slogx.FromContext(ctx).Info("orphan scan completed", slog.Int("orphans", len(uids)), slog.Int("deleted", deleted))

	return domain.OrphanReport{
		Success:          deleted == len(uids),
		OrphanedProfiles: uids,
		DeletedCount:     &deleted,
	}, nil
}
