package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
)

func TestRenderCSV(t *testing.T) {
	logs := []domain.AuditLog{
		{
			KPIName:       `Uptime "core"`,
			KPICategory:   "Ops, infra",
			Field:         "devCompletion",
			OldValue:      "0",
			NewValue:      "40",
			ChangedByName: "Ann",
			ChangedAt:     time.Date(2026, 5, 1, 23, 30, 5, 0, time.FixedZone("AEST", 10*3600)),
			ChangeType:    domain.ChangeUpdate,
		},
	}

	out := RenderCSV(logs)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "Date,Time,User,KPI,Category,Field,Old Value,New Value,Action", lines[0])
	require.Equal(t, `"2026-05-01","13:30:05","Ann","Uptime ""core""","Ops, infra","devCompletion","0","40","update"`, lines[1])
	require.False(t, strings.HasSuffix(out, "\n"))

	require.Equal(t, "Date,Time,User,KPI,Category,Field,Old Value,New Value,Action", RenderCSV(nil))
}

func TestCSVFilename(t *testing.T) {
	now := time.Date(2026, 5, 2, 1, 0, 0, 0, time.FixedZone("AEST", 10*3600))
	require.Equal(t, "audit-log-2026-05-01.csv", CSVFilename(now))
}

func seedAudit(t *testing.T, env *testEnv) (domain.Actor, domain.Actor, domain.KPI) {
	t.Helper()
	ctx := context.Background()
	admin := env.admin(t)
	ann := actorOf(env.registerVerified(t, "ann@trusted.test"))

	k, err := env.kpis.Create(ctx, admin, domain.KPI{Category: "Ops", Name: "Uptime"})
	require.NoError(t, err)
	env.clock.Advance(time.Minute)
	_, err = env.permissions.Set(ctx, admin, domain.ColRemarks, "", []string{ann.Email})
	require.NoError(t, err)
	_, err = env.kpis.UpdateColumns(ctx, ann, k.ID, map[domain.Column]string{domain.ColRemarks: "on track"})
	require.NoError(t, err)
	env.clock.Advance(time.Minute)
	other, err := env.kpis.Create(ctx, ann, domain.KPI{Category: "Ops", Name: "Latency"})
	require.NoError(t, err)
	env.clock.Advance(time.Minute)
	require.NoError(t, env.kpis.Delete(ctx, ann, other.ID))
	return admin, ann, k
}

func TestAuditListFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, ann, k := seedAudit(t, env)

	all, err := env.audit.List(ctx, domain.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, domain.ChangeDelete, all[0].ChangeType) // newest first

	mine, err := env.audit.List(ctx, domain.AuditFilter{UserEmail: "ANN@trusted.test"})
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for _, l := range mine {
		require.Equal(t, ann.Email, l.ChangedByEmail)
	}

	byKPI, err := env.audit.List(ctx, domain.AuditFilter{KPIID: k.ID})
	require.NoError(t, err)
	require.Len(t, byKPI, 2)

	limited, err := env.audit.List(ctx, domain.AuditFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestAuditStats(t *testing.T) {
	env := newTestEnv(t)
	admin, ann, _ := seedAudit(t, env)

	st, err := env.audit.Stats(context.Background(), domain.AuditFilter{Limit: 1})
	require.NoError(t, err)
	require.Equal(t, domain.AuditStats{
		TotalChanges: 4,
		UniqueUsers:  2,
		UniqueKPIs:   2,
		Creates:      2,
		Updates:      1,
		Deletes:      1,
		UserChanges:  map[string]int{admin.Email: 1, ann.Email: 3},
	}, st)
}

func TestAuditExport(t *testing.T) {
	env := newTestEnv(t)
	seedAudit(t, env)

	name, body, err := env.audit.Export(context.Background(), domain.AuditFilter{Field: string(domain.ColRemarks)})
	require.NoError(t, err)
	require.Equal(t, CSVFilename(env.clock.Now()), name)

	lines := strings.Split(body, "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], `"","on track","update"`)
	require.Contains(t, lines[1], `"ann"`)
}
