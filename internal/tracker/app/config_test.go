package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"TRACKER_ISSUER", "TRACKER_TRUSTED_DOMAINS", "TRACKER_ADMIN_EMAIL",
		"TRACKER_KAFKA_BROKERS", "HOUSEKEEPING_INTERVAL", "PORT",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "tracker", cfg.Issuer)
	require.Equal(t, "EdDSA", cfg.Algorithm)
	require.Equal(t, 1, cfg.NumKeys)
	require.Equal(t, "http://localhost:8080", cfg.PublicURL)
	require.Equal(t, "/login?verified=true", cfg.VerifyRedirect)
	require.Equal(t, "log", cfg.Mailer)
	require.Equal(t, "tracker.user-deleted", cfg.KafkaTopic)
	require.Empty(t, cfg.TrustedDomains)
	require.Empty(t, cfg.KafkaBrokers)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Zero(t, cfg.HousekeepingInterval)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TRACKER_TRUSTED_DOMAINS", " a.test, ,b.test ")
	t.Setenv("TRACKER_ADMIN_EMAIL", " Admin@A.test ")
	t.Setenv("TRACKER_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("HOUSEKEEPING_INTERVAL", "30")
	t.Setenv("PORT", "not-a-number")

	cfg := LoadConfig()
	require.Equal(t, []string{"a.test", "b.test"}, cfg.TrustedDomains)
	require.Equal(t, "admin@a.test", cfg.AdminEmail)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, 30*time.Minute, cfg.HousekeepingInterval)
	require.Equal(t, 8080, cfg.Port)
}

func TestConfigValidateAdminDomain(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "no admin", cfg: Config{}},
		{
			name: "trusted",
			cfg:  Config{TrustedDomains: []string{"a.test"}, AdminEmail: "admin@a.test"},
		},
		{
			name: "reviewed",
			cfg:  Config{ReviewedDomains: []string{"B.test"}, AdminEmail: "admin@b.test"},
		},
		{
			name:    "outside allow list",
			cfg:     Config{TrustedDomains: []string{"a.test"}, AdminEmail: "root@elsewhere.test"},
			wantErr: `"elsewhere.test"`,
		},
		{
			name:    "no domains at all",
			cfg:     Config{AdminEmail: "admin@a.test"},
			wantErr: "TRACKER_TRUSTED_DOMAINS",
		},
		{
			name:    "malformed",
			cfg:     Config{TrustedDomains: []string{"a.test"}, AdminEmail: "admin"},
			wantErr: "not an email address",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewRejectsAdminOutsideAllowList(t *testing.T) {
	cfg := Config{
		DatabaseFile:   t.TempDir() + "/tracker.db",
		TrustedDomains: []string{"a.test"},
		AdminEmail:     "root@elsewhere.test",
	}
	_, err := New(cfg)
	require.ErrorContains(t, err, "invalid configuration")
}
