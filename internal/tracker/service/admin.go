package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
)

// authorizeAdmin checks actor against the stored records, not just the
// email claim: the account and profile behind actor.UID must carry the
// administrator address, both must be verified, and the profile must not
// be rejected. Pending is accepted so an administrator on a reviewed
// domain is not locked out of approving themselves.
func authorizeAdmin(ctx context.Context, st store.Store, p *ApprovalPolicy, actor domain.Actor) error {
	if actor.UID == "" || !p.IsAdmin(actor.Email) {
		return ErrForbidden
	}

	acct, err := st.Accounts().GetAccountByID(ctx, actor.UID)
	if err != nil {
		return adminLookupErr(ctx, err)
	}
	prof, err := st.Profiles().GetProfile(ctx, actor.UID)
	if err != nil {
		return adminLookupErr(ctx, err)
	}

	switch {
	case !p.IsAdmin(acct.Email), !p.IsAdmin(prof.Email):
		return ErrForbidden
	case !acct.EmailVerified, !prof.EmailVerified:
		slogx.FromContext(ctx).Warn("unverified admin denied", slog.String("uid", actor.UID))
		return ErrForbidden
	case prof.ApprovalStatus == domain.StatusRejected:
		return ErrForbidden
	}
	return nil
}

func adminLookupErr(ctx context.Context, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrForbidden
	}
	slogx.FromContext(ctx).Error("failed to load admin records", slog.Any("error", err))
	return err
}
