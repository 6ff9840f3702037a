package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
)

func TestKPICreateAndDeleteAreAudited(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ann := actorOf(env.registerVerified(t, "ann@trusted.test"))

	_, err := env.kpis.Create(ctx, ann, domain.KPI{Category: "Ops"})
	require.ErrorIs(t, err, ErrValidation)
	_, err = env.kpis.Create(ctx, ann, domain.KPI{Category: "Ops", Name: "Uptime", DevCompletion: 101})
	require.ErrorIs(t, err, ErrValidation)

	k, err := env.kpis.Create(ctx, ann, domain.KPI{Category: " Ops ", Name: "Uptime"})
	require.NoError(t, err)
	require.Equal(t, "Ops", k.Category)
	require.Equal(t, domain.DevNotStarted, k.DevStatus)
	require.Equal(t, "None", k.CustomerDependencyStatus)
	require.Equal(t, ann.UID, k.CreatedBy)

	require.NoError(t, env.kpis.Delete(ctx, ann, k.ID))
	_, err = env.kpis.Get(ctx, k.ID)
	require.ErrorIs(t, err, ErrKPINotFound)
	require.ErrorIs(t, env.kpis.Delete(ctx, ann, k.ID), ErrKPINotFound)

	logs, err := env.audit.History(ctx, k.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	byType := map[domain.ChangeType]domain.AuditLog{}
	for _, l := range logs {
		byType[l.ChangeType] = l
	}
	require.Equal(t, domain.AllFields, byType[domain.ChangeCreate].Field)
	require.Equal(t, "Uptime", byType[domain.ChangeCreate].NewValue)
	require.Equal(t, domain.AllFields, byType[domain.ChangeDelete].Field)
	require.Equal(t, "Uptime", byType[domain.ChangeDelete].OldValue)
	require.Equal(t, ann.Email, byType[domain.ChangeDelete].ChangedByEmail)
}

func TestUpdateColumnsRequiresPermission(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.admin(t)
	ann := actorOf(env.registerVerified(t, "ann@trusted.test"))
	bob := actorOf(env.registerVerified(t, "bob@trusted.test"))

	k, err := env.kpis.Create(ctx, admin, domain.KPI{Category: "Ops", Name: "Uptime"})
	require.NoError(t, err)

	// Nobody but the admin may edit a column without a permission row.
	_, err = env.kpis.UpdateColumns(ctx, ann, k.ID, map[domain.Column]string{domain.ColOwner: "ann"})
	require.ErrorIs(t, err, ErrColumnForbidden)

	_, err = env.permissions.Set(ctx, admin, domain.ColOwner, "", []string{"ANN@trusted.test", "ann@trusted.test"})
	require.NoError(t, err)

	updated, err := env.kpis.UpdateColumns(ctx, ann, k.ID, map[domain.Column]string{domain.ColOwner: "ann"})
	require.NoError(t, err)
	require.Equal(t, "ann", updated.Owner)

	_, err = env.kpis.UpdateColumns(ctx, bob, k.ID, map[domain.Column]string{domain.ColOwner: "bob"})
	require.ErrorIs(t, err, ErrColumnForbidden)

	// One forbidden column fails the whole update.
	_, err = env.kpis.UpdateColumns(ctx, ann, k.ID, map[domain.Column]string{
		domain.ColOwner:   "ann2",
		domain.ColRemarks: "hello",
	})
	require.ErrorIs(t, err, ErrColumnForbidden)

	stored, err := env.kpis.Get(ctx, k.ID)
	require.NoError(t, err)
	require.Equal(t, "ann", stored.Owner)
	require.Empty(t, stored.Remarks)
}

func TestUpdateColumnsAuditsEachChangedColumn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.admin(t)

	k, err := env.kpis.Create(ctx, admin, domain.KPI{Category: "Ops", Name: "Uptime", Owner: "ann"})
	require.NoError(t, err)

	updated, err := env.kpis.UpdateColumns(ctx, admin, k.ID, map[domain.Column]string{
		domain.ColOwner:         "ann", // unchanged
		domain.ColDevStatus:     domain.DevInProgress,
		domain.ColDevCompletion: "40",
	})
	require.NoError(t, err)
	require.Equal(t, domain.DevInProgress, updated.DevStatus)
	require.Equal(t, 40, updated.DevCompletion)

	logs, err := env.audit.List(ctx, domain.AuditFilter{KPIID: k.ID, Field: string(domain.ColDevCompletion)})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, "0", logs[0].OldValue)
	require.Equal(t, "40", logs[0].NewValue)
	require.Equal(t, "Uptime", logs[0].KPIName)
	require.Equal(t, domain.ChangeUpdate, logs[0].ChangeType)

	all, err := env.audit.History(ctx, k.ID)
	require.NoError(t, err)
	require.Len(t, all, 3) // create, devStatus, devCompletion

	// A no-op update writes nothing.
	_, err = env.kpis.UpdateColumns(ctx, admin, k.ID, map[domain.Column]string{domain.ColOwner: "ann"})
	require.NoError(t, err)
	all, err = env.audit.History(ctx, k.ID)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestUpdateColumnsRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.admin(t)

	k, err := env.kpis.Create(ctx, admin, domain.KPI{Category: "Ops", Name: "Uptime"})
	require.NoError(t, err)

	_, err = env.kpis.UpdateColumns(ctx, admin, k.ID, nil)
	require.ErrorIs(t, err, ErrValidation)
	_, err = env.kpis.UpdateColumns(ctx, admin, k.ID, map[domain.Column]string{"colour": "red"})
	require.ErrorIs(t, err, ErrUnknownColumn)
	_, err = env.kpis.UpdateColumns(ctx, admin, k.ID, map[domain.Column]string{domain.ColSITCompletion: "150"})
	require.ErrorIs(t, err, ErrValidation)
	_, err = env.kpis.UpdateColumns(ctx, admin, "missing", map[domain.Column]string{domain.ColOwner: "x"})
	require.ErrorIs(t, err, ErrKPINotFound)
}

func TestKPISummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.admin(t)

	sum, err := env.kpis.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.KPISummary{}, sum)

	for _, k := range []domain.KPI{
		{Category: "Ops", Name: "A", DevStatus: domain.DevCompleted, DevCompletion: 100, SITCompletion: 50},
		{Category: "Ops", Name: "B", DevStatus: domain.DevInProgress, DevCompletion: 50, SITCompletion: 0},
		{Category: "Ops", Name: "C", DevCompletion: 1, SITCompletion: 1},
	} {
		_, err := env.kpis.Create(ctx, admin, k)
		require.NoError(t, err)
	}

	sum, err = env.kpis.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.KPISummary{
		Total:            3,
		NotStarted:       1,
		InProgress:       1,
		Completed:        1,
		AvgDevCompletion: 50, // 151/3
		AvgSITCompletion: 17, // 51/3
	}, sum)
}

func TestPermissions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.admin(t)
	ann := actorOf(env.registerVerified(t, "ann@trusted.test"))

	_, err := env.permissions.Set(ctx, ann, domain.ColOwner, "", []string{ann.Email})
	require.ErrorIs(t, err, ErrForbidden)
	_, err = env.permissions.Set(ctx, admin, "colour", "", nil)
	require.ErrorIs(t, err, ErrUnknownColumn)
	_, err = env.permissions.Set(ctx, admin, domain.ColOwner, "", []string{"not-an-email"})
	require.ErrorIs(t, err, ErrValidation)

	p, err := env.permissions.Set(ctx, admin, domain.ColOwner, "", []string{" Ann@trusted.test", "ann@trusted.test", ""})
	require.NoError(t, err)
	require.Equal(t, domain.ColOwner.DisplayName(), p.ColumnDisplayName)
	require.Equal(t, []string{"ann@trusted.test"}, p.AssignedUsers)

	p2, err := env.permissions.Set(ctx, admin, domain.ColOwner, "Owner (team)", []string{"bob@trusted.test"})
	require.NoError(t, err)
	require.Equal(t, p.ID, p2.ID)
	require.Equal(t, "Owner (team)", p2.ColumnDisplayName)

	_, err = env.permissions.Set(ctx, admin, domain.ColRemarks, "", []string{"ann@trusted.test"})
	require.NoError(t, err)

	cols, err := env.permissions.EditableColumns(ctx, ann.Email, false)
	require.NoError(t, err)
	require.Equal(t, []domain.Column{domain.ColRemarks}, cols)

	cols, err = env.permissions.EditableColumns(ctx, admin.Email, true)
	require.NoError(t, err)
	require.Equal(t, domain.EditableColumns, cols)

	list, err := env.permissions.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.ErrorIs(t, env.permissions.Delete(ctx, ann, domain.ColRemarks), ErrForbidden)
	require.NoError(t, env.permissions.Delete(ctx, admin, domain.ColRemarks))
	require.ErrorIs(t, env.permissions.Delete(ctx, admin, domain.ColRemarks), ErrPermissionNotFound)
	_, err = env.permissions.Get(ctx, domain.ColRemarks)
	require.ErrorIs(t, err, ErrPermissionNotFound)

	ok, err := env.permissions.CanEdit(ctx, ann.Email, domain.ColRemarks, false)
	require.NoError(t, err)
	require.False(t, ok)
}
