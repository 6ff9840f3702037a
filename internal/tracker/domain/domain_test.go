package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKPIColumnsRoundTrip(t *testing.T) {
	for _, c := range EditableColumns {
		t.Run(string(c), func(t *testing.T) {
			var k KPI
			v := "42"
			require.NoError(t, k.Set(c, v))
			require.Equal(t, v, k.Get(c))
			require.NotEmpty(t, c.DisplayName())
		})
	}
	require.Len(t, EditableColumns, 16)
}

func TestKPISetCompletionRange(t *testing.T) {
	var k KPI
	for _, bad := range []string{"-1", "101", "abc", "", "50.5"} {
		require.ErrorIs(t, k.Set(ColDevCompletion, bad), ErrCompletionRange, bad)
	}
	require.NoError(t, k.Set(ColProdCompletion, "100"))
	require.Equal(t, 100, k.ProdCompletion)

	require.Error(t, k.Set(Column("jiraTicket"), "X-1"), "supplementary fields are not editable columns")
	require.False(t, Column("jiraTicket").Valid())
}

func TestKPIApplyDefaults(t *testing.T) {
	k := KPI{Name: "Billing"}
	k.ApplyDefaults()
	require.Equal(t, "None", k.CustomerDependencyStatus)
	require.Equal(t, DevNotStarted, k.RevisedDevStatus)
	require.Equal(t, DevNotStarted, k.DevStatus)
}

func TestProfileUsable(t *testing.T) {
	require.True(t, UserProfile{EmailVerified: true, ApprovalStatus: StatusApproved}.Usable())
	require.False(t, UserProfile{EmailVerified: false, ApprovalStatus: StatusApproved}.Usable())
	require.False(t, UserProfile{EmailVerified: true, ApprovalStatus: StatusPending}.Usable())
}

func TestColumnPermissionAllows(t *testing.T) {
	p := ColumnPermission{AssignedUsers: []string{"Alice@Example.com"}}
	require.True(t, p.Allows("alice@example.com"))
	require.False(t, p.Allows("bob@example.com"))
}
