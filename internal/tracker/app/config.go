package app

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/pkg/mailx"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer    string // Optional: issuer claim for tokens (default: tracker)
	Algorithm string // Optional: JWT signing algorithm (EdDSA, ES256) (default: EdDSA)
	NumKeys   int    // Optional: number of ephemeral signing keys (default: 1, max: 10)

	DatabaseFile string // Optional: path to SQLite database file (default: ./tracker.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	TrustedDomains  []string // Domains approved as soon as the email is verified
	ReviewedDomains []string // Domains approved by the admin after verification
	AdminEmail      string   // The single administrator

	PublicURL      string // Base of the links in verification emails (default: http://localhost:8080)
	VerifyRedirect string // Where a clicked verification link lands (default: /login?verified=true)

	Mailer string           // log or smtp (default: log)
	SMTP   mailx.SMTPConfig // Used when Mailer is smtp

	KafkaBrokers []string // Optional: enables Kafka for user deleted events
	KafkaTopic   string   // default: tracker.user-deleted
	KafkaGroup   string   // default: tracker-cleanup

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Sweep interval, 0 disables the ticker (default: 0)
}

// LoadConfig reads the environment. A .env file in the working directory is
// loaded first; variables already set take precedence.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("tracker: no .env file found, relying on system env vars")
	}

	cfg := Config{
		Issuer:       getEnvOrDefault("TRACKER_ISSUER", "tracker"),
		Algorithm:    getEnvOrDefault("TRACKER_ALGORITHM", "EdDSA"),
		NumKeys:      getEnvIntOrDefault("TRACKER_NUM_KEYS", 1),
		DatabaseFile: getEnvOrDefault("TRACKER_DATABASE_FILE", "tracker.db"),
		PepperFile:   getEnvOrDefault("TRACKER_PEPPER_FILE", "pepper"),

		TrustedDomains:  getEnvList("TRACKER_TRUSTED_DOMAINS"),
		ReviewedDomains: getEnvList("TRACKER_REVIEWED_DOMAINS"),
		AdminEmail:      strings.ToLower(strings.TrimSpace(os.Getenv("TRACKER_ADMIN_EMAIL"))),

		PublicURL:      getEnvOrDefault("TRACKER_PUBLIC_URL", "http://localhost:8080"),
		VerifyRedirect: getEnvOrDefault("TRACKER_VERIFY_REDIRECT", "/login?verified=true"),

		Mailer: getEnvOrDefault("TRACKER_MAILER", "log"),
		SMTP: mailx.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvIntOrDefault("SMTP_PORT", 587),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},

		KafkaBrokers: getEnvList("TRACKER_KAFKA_BROKERS"),
		KafkaTopic:   getEnvOrDefault("TRACKER_KAFKA_TOPIC", "tracker.user-deleted"),
		KafkaGroup:   getEnvOrDefault("TRACKER_KAFKA_GROUP", "tracker-cleanup"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 0),
	}

	return cfg
}

// Validate rejects configurations the service cannot run safely with. The
// administrator must sit on a trusted or reviewed domain; the approval policy
// has no exception for the admin address.
func (c Config) Validate() error {
	if c.AdminEmail == "" {
		return nil
	}
	p := service.NewApprovalPolicy(c.TrustedDomains, c.ReviewedDomains, c.AdminEmail)
	d, trust := p.Classify(c.AdminEmail)
	if d == "" {
		return fmt.Errorf("TRACKER_ADMIN_EMAIL %q is not an email address", c.AdminEmail)
	}
	if trust == domain.TrustNone {
		return fmt.Errorf("TRACKER_ADMIN_EMAIL domain %q is in neither TRACKER_TRUSTED_DOMAINS nor TRACKER_REVIEWED_DOMAINS", d)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

// getEnvList splits a comma separated variable, dropping empty entries.
func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
