package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// RedisConfig holds Redis configuration for the distributed rate limiter
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// VotingConfig holds the recruitment voting rules
type VotingConfig struct {
	// Period is how long a voting window stays open
	Period time.Duration `mapstructure:"period"`
	// MinimumVotes is the vote count below which an application is rejected
	MinimumVotes int `mapstructure:"minimum_votes"`
	// ApprovalThreshold is the weighted approval percentage required to pass
	ApprovalThreshold float64 `mapstructure:"approval_threshold"`
	// EligibilityThreshold is the minimum 30-day attendance rate, in percent,
	// required to cast a vote
	EligibilityThreshold float64 `mapstructure:"eligibility_threshold"`
	// ReminderTiers are the deadline-reminder lead times in hours, largest first
	ReminderTiers []int `mapstructure:"reminder_tiers"`
}

// RecruitmentConfig holds post-approval provisioning settings
type RecruitmentConfig struct {
	// StartingPoints seeds each new member's DKP ledger
	StartingPoints float64 `mapstructure:"starting_points"`
	// DefaultRank is the rank assigned to newly provisioned members
	DefaultRank string `mapstructure:"default_rank"`
	// DefaultGroups are the membership groups joined during provisioning
	DefaultGroups []string `mapstructure:"default_groups"`
	// BatchSize caps how many approved applications one sweep processes
	BatchSize int `mapstructure:"batch_size"`
}

// DiscordConfig holds Discord webhook delivery configuration
type DiscordConfig struct {
	// Webhooks maps notification channel names to webhook URLs
	Webhooks map[string]string `mapstructure:"webhooks"`
	// DefaultWebhookURL receives notifications for unmapped channels
	DefaultWebhookURL string        `mapstructure:"default_webhook_url"`
	HTTPTimeout       time.Duration `mapstructure:"http_timeout"`
	MaxRetries        int           `mapstructure:"max_retries"`
	RetryBaseDelay    time.Duration `mapstructure:"retry_base_delay"`
	RetryMaxDelay     time.Duration `mapstructure:"retry_max_delay"`
	// BreakerThreshold is the consecutive-failure count that opens the circuit
	BreakerThreshold int `mapstructure:"breaker_threshold"`
	// BreakerRecovery is how long the circuit stays open before a probe
	BreakerRecovery time.Duration `mapstructure:"breaker_recovery"`
}

// RateLimitConfig holds the webhook rate limiter settings. Every webhook gets
// its own token bucket with the same Rate/Period/Burst; Discord rate limits
// each webhook independently.
type RateLimitConfig struct {
	// Rate is the number of requests allowed per Period
	Rate   int           `mapstructure:"rate"`
	Period time.Duration `mapstructure:"period"`
	Burst  int           `mapstructure:"burst"`
	// KeyPrefix namespaces the limiter keys in Redis
	KeyPrefix string `mapstructure:"key_prefix"`
	// MaxWorkers and MaxQueueSize bound the delivery worker pool
	MaxWorkers   int `mapstructure:"max_workers"`
	MaxQueueSize int `mapstructure:"max_queue_size"`
	// MaxQueueTime is how long a delivery may wait for a token
	MaxQueueTime time.Duration `mapstructure:"max_queue_time"`
	// EnableLocalFallback permits in-process limiting when Redis is down
	EnableLocalFallback bool `mapstructure:"enable_local_fallback"`
	// LocalFallbackMultiplier scales the local rate down so multiple notifier
	// instances stay under the shared webhook limit without Redis
	LocalFallbackMultiplier float64 `mapstructure:"local_fallback_multiplier"`
}

// OutboxConfig holds notification outbox dispatch configuration
type OutboxConfig struct {
	// SweepInterval is how often the sweeper looks for undispatched rows
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	// StaleAfter is how long a delivering claim holds before the sweeper may steal it
	StaleAfter time.Duration `mapstructure:"stale_after"`
	BatchSize  int           `mapstructure:"batch_size"`
	// MaxAttempts caps delivery attempts before a row is finalized as failed
	MaxAttempts int `mapstructure:"max_attempts"`
	// RetryBase and RetryMax bound the between-attempt backoff schedule
	RetryBase time.Duration `mapstructure:"retry_base"`
	RetryMax  time.Duration `mapstructure:"retry_max"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	NATS        NATSConfig        `mapstructure:"nats"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Voting      VotingConfig      `mapstructure:"voting"`
	Recruitment RecruitmentConfig `mapstructure:"recruitment"`
}

// SchedulerConfig holds configuration for the scheduler program
type SchedulerConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig    `mapstructure:"database"`
	NATS        NATSConfig        `mapstructure:"nats"`
	Worker      WorkerConfig      `mapstructure:"worker"`
	Voting      VotingConfig      `mapstructure:"voting"`
	Recruitment RecruitmentConfig `mapstructure:"recruitment"`
	// AttendanceInterval is the cadence of attendance snapshot recomputation
	AttendanceInterval time.Duration `mapstructure:"attendance_interval"`
	// VotingInterval is the cadence of voting-period closing and reminders
	VotingInterval time.Duration `mapstructure:"voting_interval"`
	// RecruitmentInterval is the cadence of approved-application processing
	RecruitmentInterval time.Duration `mapstructure:"recruitment_interval"`
	// DailySummaryHour is the UTC hour the daily summary is posted
	DailySummaryHour int `mapstructure:"daily_summary_hour"`
}

// NotifierConfig holds configuration for the notifier program
type NotifierConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig  `mapstructure:"database"`
	NATS       NATSConfig      `mapstructure:"nats"`
	Redis      RedisConfig     `mapstructure:"redis"`
	Discord    DiscordConfig   `mapstructure:"discord"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
	Outbox     OutboxConfig    `mapstructure:"outbox"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "GUILD_NOTIFICATIONS")
	setVotingDefaults(v)
	setRecruitmentDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSchedulerConfig loads configuration for the scheduler program
func LoadSchedulerConfig(configFile string, envPath string) (*SchedulerConfig, error) {
	v := configureViper("scheduler", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "GUILD_NOTIFICATIONS")
	v.SetDefault("worker.pool_size", 20)
	v.SetDefault("worker.queue_size", 2048)
	v.SetDefault("attendance_interval", "1h")
	v.SetDefault("voting_interval", "5m")
	v.SetDefault("recruitment_interval", "2m")
	v.SetDefault("daily_summary_hour", 8)
	setVotingDefaults(v)
	setRecruitmentDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg SchedulerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

// LoadNotifierConfig loads configuration for the notifier program
func LoadNotifierConfig(configFile string, envPath string) (*NotifierConfig, error) {
	v := configureViper("notifier", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "GUILD_NOTIFICATIONS")
	v.SetDefault("nats.consumer_name", "notifier")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 3)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("discord.http_timeout", "10s")
	v.SetDefault("discord.max_retries", 3)
	v.SetDefault("discord.retry_base_delay", "1s")
	v.SetDefault("discord.retry_max_delay", "60s")
	v.SetDefault("discord.breaker_threshold", 5)
	v.SetDefault("discord.breaker_recovery", "60s")
	v.SetDefault("rate_limit.rate", 30)
	v.SetDefault("rate_limit.period", "1m")
	v.SetDefault("rate_limit.burst", 5)
	v.SetDefault("rate_limit.key_prefix", "guild:notifier:limiter:")
	v.SetDefault("rate_limit.max_workers", 8)
	v.SetDefault("rate_limit.max_queue_size", 1024)
	v.SetDefault("rate_limit.max_queue_time", "2m")
	v.SetDefault("rate_limit.enable_local_fallback", true)
	v.SetDefault("rate_limit.local_fallback_multiplier", 0.5)
	v.SetDefault("outbox.sweep_interval", "30s")
	v.SetDefault("outbox.stale_after", "2m")
	v.SetDefault("outbox.batch_size", 100)
	v.SetDefault("outbox.max_attempts", 3)
	v.SetDefault("outbox.retry_base", "30s")
	v.SetDefault("outbox.retry_max", "1h")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg NotifierConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setVotingDefaults(v *viper.Viper) {
	v.SetDefault("voting.period", "48h")
	v.SetDefault("voting.minimum_votes", 3)
	v.SetDefault("voting.approval_threshold", 60)
	v.SetDefault("voting.eligibility_threshold", 15)
	v.SetDefault("voting.reminder_tiers", []int{24, 6, 1})
}

func setRecruitmentDefaults(v *viper.Viper) {
	v.SetDefault("recruitment.starting_points", 0)
	v.SetDefault("recruitment.default_rank", "Trial Member")
	v.SetDefault("recruitment.default_groups", []string{"Guild Members", "Voting Members"})
	v.SetDefault("recruitment.batch_size", 10)
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/scheduler/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("GUILD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	// Common config keys
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.read_host",
		"database.read_port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Voting
		"voting.period",
		"voting.minimum_votes",
		"voting.approval_threshold",
		"voting.eligibility_threshold",
		"voting.reminder_tiers",
		// Recruitment
		"recruitment.starting_points",
		"recruitment.default_rank",
		"recruitment.default_groups",
		"recruitment.batch_size",
		// Discord
		"discord.default_webhook_url",
		"discord.http_timeout",
		"discord.max_retries",
		"discord.retry_base_delay",
		"discord.retry_max_delay",
		"discord.breaker_threshold",
		"discord.breaker_recovery",
		// Rate limiting
		"rate_limit.rate",
		"rate_limit.period",
		"rate_limit.burst",
		"rate_limit.key_prefix",
		"rate_limit.max_workers",
		"rate_limit.max_queue_size",
		"rate_limit.max_queue_time",
		"rate_limit.enable_local_fallback",
		"rate_limit.local_fallback_multiplier",
		// Outbox
		"outbox.sweep_interval",
		"outbox.stale_after",
		"outbox.batch_size",
		"outbox.max_attempts",
		"outbox.retry_base",
		"outbox.retry_max",
		// Worker config
		"worker.pool_size",
		"worker.queue_size",
		// Scheduler cadence
		"attendance_interval",
		"voting_interval",
		"recruitment_interval",
		"daily_summary_hour",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	// Create candidates list
	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ReadDSN returns the read-replica database connection string.
// If ReadPort is not configured, it falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}
