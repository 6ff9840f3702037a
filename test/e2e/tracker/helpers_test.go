package tracker_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"testing"
	"time"

	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and mailbox helpers for the tracker end-to-end tests.
 * The container runs the log mailer, so mail is read back from its log.
 */

const (
	testImageName = "tracker-test:latest"

	trustedDomain  = "trusted.test"
	reviewedDomain = "review.test"
	adminEmail     = "admin@trusted.test"
	password       = "Secret123!"
)

var (
	linkRe = regexp.MustCompile(`token=([A-Za-z0-9_-]+)`)
	codeRe = regexp.MustCompile(`code is: (\d{6})`)
)

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Tracker Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Tracker Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/tracker/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

type trackerContainer struct {
	testcontainers.Container
	client *trackersdk.Client
}

// setupTrackerContainer starts the service with relaxed rate limits and the
// log mailer.
func setupTrackerContainer(t *testing.T) *trackerContainer {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"TRACKER_DATABASE_FILE":    "/data/tracker.db",
			"TRACKER_PEPPER_FILE":      "/data/pepper",
			"TRACKER_ISSUER":           "tracker-e2e",
			"TRACKER_TRUSTED_DOMAINS":  trustedDomain,
			"TRACKER_REVIEWED_DOMAINS": reviewedDomain,
			"TRACKER_ADMIN_EMAIL":      adminEmail,
			"TRACKER_PUBLIC_URL":       "http://tracker.test",
			"TRACKER_MAILER":           "log",
			"ENV":                      "test",
			"LOG_LEVEL":                "info",
			"LOG_FORMAT":               "json",

			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	return &trackerContainer{
		Container: container,
		client:    trackersdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port())),
	}
}

type mailEntry struct {
	Msg  string `json:"msg"`
	To   string `json:"to"`
	Body string `json:"body"`
}

// mails returns every message the log mailer has written for to, oldest
// first.
func (c *trackerContainer) mails(t *testing.T, to string) []mailEntry {
	t.Helper()

	rc, err := c.Logs(context.Background())
	require.NoError(t, err)
	defer rc.Close()

	var out []mailEntry
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		// Docker multiplexed log frames carry an 8 byte header.
		if i := indexJSON(line); i >= 0 {
			line = line[i:]
		}
		var e mailEntry
		if json.Unmarshal(line, &e) != nil || e.Msg != "mail_sent" || e.To != to {
			continue
		}
		out = append(out, e)
	}
	require.NoError(t, sc.Err())
	return out
}

func indexJSON(b []byte) int {
	for i, c := range b {
		if c == '{' {
			return i
		}
	}
	return -1
}

// lastMatch polls the log until a mail for to matches re and returns the
// first submatch of the newest such mail.
func (c *trackerContainer) lastMatch(t *testing.T, to string, re *regexp.Regexp) string {
	t.Helper()

	var found string
	require.Eventually(t, func() bool {
		mails := c.mails(t, to)
		for i := len(mails) - 1; i >= 0; i-- {
			if m := re.FindStringSubmatch(mails[i].Body); len(m) == 2 {
				found = m[1]
				return true
			}
		}
		return false
	}, 10*time.Second, 200*time.Millisecond, "no matching mail for %s", to)
	return found
}

func (c *trackerContainer) register(t *testing.T, email string) *trackersdk.Profile {
	t.Helper()
	p, err := c.client.Register(t.Context(), trackersdk.RegisterRequest{
		Email: email, Password: password, ConfirmPassword: password,
	})
	require.NoError(t, err)
	return p
}

// signup registers email, opens the mailed link and signs in.
func (c *trackerContainer) signup(t *testing.T, email string) *trackersdk.Session {
	t.Helper()
	c.register(t, email)

	token := c.lastMatch(t, email, linkRe)
	_, err := c.client.FollowVerificationLink(t.Context(), token)
	require.NoError(t, err)

	s, err := c.client.Login(t.Context(), email, password)
	require.NoError(t, err)
	return s
}

func requireAPIError(t *testing.T, err error, status int, code string) *trackersdk.APIError {
	t.Helper()
	var apiErr *trackersdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *trackersdk.APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}
