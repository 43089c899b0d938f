package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=accounts_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultCustomerServiceURL = "http://localhost:8080"
const defaultChannelID = "AccountsAdmin"
const defaultChannelKey = "AccountsAdminKey001"
const defaultPort = "8083"
const defaultKafkaTopic = "account-events"

type Config struct {
	Port                   string
	DatabaseDSN            string
	MigrationsDir          string
	CustomerServiceURL     string
	CustomerTimeoutSeconds int
	ChannelID              string
	ChannelKey             string
	RedisAddr              string
	KafkaBroker            string
	KafkaTopic             string
}

func (c Config) CustomerTimeout() time.Duration {
	return time.Duration(c.CustomerTimeoutSeconds) * time.Second
}

func Load() (Config, error) {
	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}

	customerURL := strings.TrimSpace(os.Getenv("CUSTOMER_SERVICE_URL"))
	if customerURL == "" {
		customerURL = defaultCustomerServiceURL
	}

	customerTimeout := 10
	if raw := strings.TrimSpace(os.Getenv("CUSTOMER_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			customerTimeout = parsed
		}
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	channelKey := strings.TrimSpace(os.Getenv("CHANNEL_KEY"))
	if channelKey == "" {
		channelKey = defaultChannelKey
	}

	kafkaTopic := strings.TrimSpace(os.Getenv("KAFKA_TOPIC"))
	if kafkaTopic == "" {
		kafkaTopic = defaultKafkaTopic
	}

	return Config{
		Port:                   port,
		DatabaseDSN:            normalizeConnectionString(conn),
		MigrationsDir:          "migrations",
		CustomerServiceURL:     strings.TrimRight(customerURL, "/"),
		CustomerTimeoutSeconds: customerTimeout,
		ChannelID:              channelID,
		ChannelKey:             channelKey,
		RedisAddr:              strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		KafkaBroker:            strings.TrimSpace(os.Getenv("KAFKA_BROKER")),
		KafkaTopic:             kafkaTopic,
	}, nil
}

func normalizeConnectionString(raw string) string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
