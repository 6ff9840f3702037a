package service

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite"
	"github.com/aussiebroadwan/tracker/pkg/cryptox"
	"github.com/aussiebroadwan/tracker/pkg/eventx"
	"github.com/aussiebroadwan/tracker/pkg/jwtx"
	"github.com/aussiebroadwan/tracker/pkg/mailx"
)

const (
	adminEmail    = "admin@trusted.test"
	trustedDomain = "trusted.test"
	reviewDomain  = "review.test"
	testPassword  = "hunter22"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// captureMailer records every message instead of sending it.
type captureMailer struct {
	mu   sync.Mutex
	sent []mailx.Message
}

func (m *captureMailer) Send(_ context.Context, msg mailx.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *captureMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *captureMailer) last(t *testing.T) mailx.Message {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent, "no mail sent")
	return m.sent[len(m.sent)-1]
}

var (
	tokenRe = regexp.MustCompile(`token=([A-Za-z0-9_-]+)`)
	codeRe  = regexp.MustCompile(`code is: (\d{6})`)
)

func (m *captureMailer) lastToken(t *testing.T) string {
	t.Helper()
	match := tokenRe.FindStringSubmatch(m.last(t).Body)
	require.Len(t, match, 2)
	return match[1]
}

func (m *captureMailer) lastCode(t *testing.T) string {
	t.Helper()
	match := codeRe.FindStringSubmatch(m.last(t).Body)
	require.Len(t, match, 2)
	return match[1]
}

// testClock is a settable clock.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	store  *sqlite.Store
	clock  *testClock
	mailer *captureMailer
	bus    *eventx.LocalBus
	policy *ApprovalPolicy

	accounts    *AccountService
	approvals   *ApprovalService
	twoFactor   *TwoFactorService
	tokens      *TokenService
	cleanup     *CleanupService
	tasks       *TaskService
	kpis        *KPIService
	permissions *PermissionService
	audit       *AuditService
	keys        *jwtx.KeyManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "tracker-test"})
	require.NoError(t, err)

	// Issued access tokens are checked against the wall clock.
	clock := &testClock{now: time.Now().UTC().Truncate(time.Second)}
	now := Clock(clock.Now)
	mailer := &captureMailer{}
	bus := eventx.NewLocalBus()
	policy := NewApprovalPolicy([]string{trustedDomain}, []string{reviewDomain}, adminEmail)

	tokens := &TokenService{KeyManager: km, Store: st, Issuer: "tracker-test", Now: now}
	twoFactor := &TwoFactorService{Store: st, Mailer: mailer, Tokens: tokens, Now: now}
	permissions := &PermissionService{Store: st, Policy: policy, Now: now}
	cleanup := &CleanupService{Store: st, Policy: policy}
	bus.Subscribe(cleanup.Handler())

	return &testEnv{
		store:  st,
		clock:  clock,
		mailer: mailer,
		bus:    bus,
		policy: policy,
		accounts: &AccountService{
			Store:     st,
			Policy:    policy,
			Mailer:    mailer,
			Events:    bus,
			Tokens:    tokens,
			TwoFactor: twoFactor,
			PublicURL: "http://tracker.test",
			Now:       now,
		},
		approvals:   &ApprovalService{Store: st, Policy: policy, Now: now},
		twoFactor:   twoFactor,
		tokens:      tokens,
		cleanup:     cleanup,
		tasks:       &TaskService{Store: st, Now: now},
		kpis:        &KPIService{Store: st, Permissions: permissions, Now: now},
		permissions: permissions,
		audit:       &AuditService{Store: st, Now: now},
		keys:        km,
	}
}

func (e *testEnv) register(t *testing.T, email string) domain.UserProfile {
	t.Helper()
	p, err := e.accounts.Register(context.Background(), RegisterInput{
		Email:           email,
		Password:        testPassword,
		ConfirmPassword: testPassword,
	})
	require.NoError(t, err)
	return p
}

// registerVerified registers email and follows the mailed link.
func (e *testEnv) registerVerified(t *testing.T, email string) domain.UserProfile {
	t.Helper()
	e.register(t, email)
	p, err := e.accounts.VerifyEmail(context.Background(), e.mailer.lastToken(t))
	require.NoError(t, err)
	return p
}

func (e *testEnv) admin(t *testing.T) domain.Actor {
	t.Helper()
	p := e.registerVerified(t, adminEmail)
	return domain.Actor{UID: p.UID, Email: p.Email, Name: p.DisplayName, IsAdmin: true}
}

func actorOf(p domain.UserProfile) domain.Actor {
	return domain.Actor{UID: p.UID, Email: p.Email, Name: p.DisplayName}
}
