package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/idx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
)

var (
	ErrKPINotFound     = errors.New("kpi_not_found")
	ErrColumnForbidden = errors.New("column_forbidden")
)

// KPIService owns KPI rows. Every write leaves audit rows in the same
// transaction.
type KPIService struct {
	Store       store.Store
	Permissions *PermissionService
	Now         Clock
}

func (s *KPIService) Create(ctx context.Context, actor domain.Actor, in domain.KPI) (domain.KPI, error) {
	in.Category = strings.TrimSpace(in.Category)
	in.Name = strings.TrimSpace(in.Name)
	if in.Category == "" || in.Name == "" {
		return domain.KPI{}, fmt.Errorf("%w: category and name are required", ErrValidation)
	}
	for _, c := range []int{in.DevCompletion, in.SITCompletion, in.UATCompletion, in.ProdCompletion} {
		if c < 0 || c > 100 {
			return domain.KPI{}, fmt.Errorf("%w: %v", ErrValidation, domain.ErrCompletionRange)
		}
	}
	in.ApplyDefaults()

	now := s.Now.now()
	in.ID = idx.New().String()
	in.CreatedBy = actor.UID
	in.CreatedAt = now
	in.UpdatedAt = now

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.KPIs().CreateKPI(ctx, in); err != nil {
			return err
		}
		return tx.AuditLogs().CreateAuditLog(ctx, auditEntry(actor, in, domain.AllFields, "", in.Name, domain.ChangeCreate, now))
	})
	if err != nil {
		return domain.KPI{}, err
	}
	return in, nil
}

func (s *KPIService) Get(ctx context.Context, id string) (domain.KPI, error) {
	k, err := s.Store.KPIs().GetKPI(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.KPI{}, ErrKPINotFound
	}
	return k, err
}

// List orders by category, then name.
func (s *KPIService) List(ctx context.Context) ([]domain.KPI, error) {
	return s.Store.KPIs().ListKPIs(ctx)
}

func (s *KPIService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	now := s.Now.now()
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		k, err := tx.KPIs().GetKPI(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrKPINotFound
			}
			return err
		}
		if err := tx.KPIs().DeleteKPI(ctx, id); err != nil {
			return err
		}
		return tx.AuditLogs().CreateAuditLog(ctx, auditEntry(actor, k, domain.AllFields, k.Name, "", domain.ChangeDelete, now))
	})
}

// UpdateColumns applies changes to the KPI. The actor must be allowed to
// edit every named column. Only columns whose value actually changes are
// written, each with one audit row.
func (s *KPIService) UpdateColumns(ctx context.Context, actor domain.Actor, id string, changes map[domain.Column]string) (domain.KPI, error) {
	l := slogx.FromContext(ctx)

	if len(changes) == 0 {
		return domain.KPI{}, fmt.Errorf("%w: no columns to update", ErrValidation)
	}
	for c := range changes {
		if !c.Valid() {
			return domain.KPI{}, fmt.Errorf("%w: %s", ErrUnknownColumn, c)
		}
	}
	for _, c := range domain.EditableColumns {
		if _, ok := changes[c]; !ok {
			continue
		}
		ok, err := s.Permissions.CanEdit(ctx, actor.Email, c, actor.IsAdmin)
		if err != nil {
			return domain.KPI{}, err
		}
		if !ok {
			l.Info("column edit denied", slog.String("column", string(c)))
			return domain.KPI{}, fmt.Errorf("%w: %s", ErrColumnForbidden, c)
		}
	}

	now := s.Now.now()
	var out domain.KPI
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		k, err := tx.KPIs().GetKPI(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrKPINotFound
			}
			return err
		}

		var entries []domain.AuditLog
		for _, c := range domain.EditableColumns {
			v, ok := changes[c]
			if !ok {
				continue
			}
			old := k.Get(c)
			if err := k.Set(c, strings.TrimSpace(v)); err != nil {
				return fmt.Errorf("%w: %v", ErrValidation, err)
			}
			if next := k.Get(c); next != old {
				entries = append(entries, auditEntry(actor, k, string(c), old, next, domain.ChangeUpdate, now))
			}
		}

		if len(entries) == 0 {
			out = k
			return nil
		}

		k.UpdatedAt = now
		if err := tx.KPIs().UpdateKPI(ctx, k); err != nil {
			return err
		}
		for _, e := range entries {
			if err := tx.AuditLogs().CreateAuditLog(ctx, e); err != nil {
				return err
			}
		}
		out = k
		return nil
	})
	if err != nil {
		return domain.KPI{}, err
	}
	return out, nil
}

// Summary counts KPIs by dev status and averages each phase's completion.
func (s *KPIService) Summary(ctx context.Context) (domain.KPISummary, error) {
	kpis, err := s.Store.KPIs().ListKPIs(ctx)
	if err != nil {
		return domain.KPISummary{}, err
	}

	sum := domain.KPISummary{Total: len(kpis)}
	if sum.Total == 0 {
		return sum, nil
	}

	var dev, sit, uat, prod int
	for _, k := range kpis {
		switch k.DevStatus {
		case domain.DevNotStarted:
			sum.NotStarted++
		case domain.DevInProgress:
			sum.InProgress++
		case domain.DevCompleted:
			sum.Completed++
		}
		dev += k.DevCompletion
		sit += k.SITCompletion
		uat += k.UATCompletion
		prod += k.ProdCompletion
	}

	n := float64(sum.Total)
	sum.AvgDevCompletion = int(math.Round(float64(dev) / n))
	sum.AvgSITCompletion = int(math.Round(float64(sit) / n))
	sum.AvgUATCompletion = int(math.Round(float64(uat) / n))
	sum.AvgProdCompletion = int(math.Round(float64(prod) / n))
	return sum, nil
}

func auditEntry(actor domain.Actor, k domain.KPI, field, old, next string, ct domain.ChangeType, now time.Time) domain.AuditLog {
	name := actor.Name
	if name == "" {
		name = actor.Email
	}
	return domain.AuditLog{
		ID:             idx.NewAt(now).String(),
		KPIID:          k.ID,
		KPIName:        k.Name,
		KPICategory:    k.Category,
		Field:          field,
		OldValue:       old,
		NewValue:       next,
		ChangedBy:      actor.UID,
		ChangedByEmail: normalizeEmail(actor.Email),
		ChangedByName:  name,
		ChangedAt:      now,
		ChangeType:     ct,
	}
}
