package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 180
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
auth:
  jwt_public_key: "test-public-key"
  api_keys:
    - "key1"
    - "key2"
voting:
  period: "72h"
  minimum_votes: 5
  approval_threshold: 75
  reminder_tiers:
    - 48
    - 12
recruitment:
  starting_points: 25
  default_rank: "Recruit"
  default_groups:
    - "Guild Members"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.ReadTimeout)
				assert.Equal(t, 180, cfg.Server.IdleTimeout)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "test-public-key", cfg.Auth.JWTPublicKey)
				assert.Len(t, cfg.Auth.APIKeys, 2)
				assert.Equal(t, 72*time.Hour, cfg.Voting.Period)
				assert.Equal(t, 5, cfg.Voting.MinimumVotes)
				assert.Equal(t, 75.0, cfg.Voting.ApprovalThreshold)
				assert.Equal(t, []int{48, 12}, cfg.Voting.ReminderTiers)
				assert.Equal(t, 25.0, cfg.Recruitment.StartingPoints)
				assert.Equal(t, "Recruit", cfg.Recruitment.DefaultRank)
				assert.Equal(t, []string{"Guild Members"}, cfg.Recruitment.DefaultGroups)
			},
		},
		{
			name:        "missing config file - should work with env vars",
			configFile:  "",
			expectError: false, // API config allows missing config file
			validate: func(t *testing.T, cfg *APIConfig) {
				// Should use defaults
				assert.NotNil(t, cfg)
				assert.False(t, cfg.Debug)                  // default
				assert.Equal(t, "0.0.0.0", cfg.Server.Host) // default
				assert.Equal(t, 8080, cfg.Server.Port)      // default
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)                   // default
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)  // default
				assert.Equal(t, 8080, cfg.Server.Port)       // default
				assert.Equal(t, 10, cfg.Server.ReadTimeout)  // default
				assert.Equal(t, 10, cfg.Server.WriteTimeout) // default
				assert.Equal(t, 120, cfg.Server.IdleTimeout) // default
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "GUILD_NOTIFICATIONS", cfg.NATS.StreamName)
				assert.Equal(t, 48*time.Hour, cfg.Voting.Period)
				assert.Equal(t, 3, cfg.Voting.MinimumVotes)
				assert.Equal(t, 60.0, cfg.Voting.ApprovalThreshold)
				assert.Equal(t, []int{24, 6, 1}, cfg.Voting.ReminderTiers)
				assert.Equal(t, 0.0, cfg.Recruitment.StartingPoints)
				assert.Equal(t, "Trial Member", cfg.Recruitment.DefaultRank)
				assert.Equal(t, []string{"Guild Members", "Voting Members"}, cfg.Recruitment.DefaultGroups)
				assert.Equal(t, 10, cfg.Recruitment.BatchSize)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var configFile string

			if tt.configFile != "" {
				tmpDir := t.TempDir()
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				// For missing config file, use empty string to let viper search in config/ directory
				// or use a non-existent path that viper will handle gracefully
				configFile = ""
			}

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadSchedulerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *SchedulerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
worker:
  pool_size: 10
  queue_size: 500
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  max_reconnects: 5
  reconnect_wait: "5s"
attendance_interval: "30m"
voting_interval: "1m"
recruitment_interval: "90s"
daily_summary_hour: 6
`,
			expectError: false,
			validate: func(t *testing.T, cfg *SchedulerConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, 10, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 500, cfg.Worker.WorkerQueueSize)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, 30*time.Minute, cfg.AttendanceInterval)
				assert.Equal(t, time.Minute, cfg.VotingInterval)
				assert.Equal(t, 90*time.Second, cfg.RecruitmentInterval)
				assert.Equal(t, 6, cfg.DailySummaryHour)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *SchedulerConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 5, cfg.Database.MaxOpenConns)
				assert.Equal(t, 2, cfg.Database.MaxIdleConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "GUILD_NOTIFICATIONS", cfg.NATS.StreamName)
				assert.Equal(t, 20, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 2048, cfg.Worker.WorkerQueueSize)
				assert.Equal(t, time.Hour, cfg.AttendanceInterval)
				assert.Equal(t, 5*time.Minute, cfg.VotingInterval)
				assert.Equal(t, 2*time.Minute, cfg.RecruitmentInterval)
				assert.Equal(t, 8, cfg.DailySummaryHour)
				assert.Equal(t, 48*time.Hour, cfg.Voting.Period)
				assert.Equal(t, []int{24, 6, 1}, cfg.Voting.ReminderTiers)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  user: testuser
  dbname: testdb
`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadSchedulerConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadNotifierConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *NotifierConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: false
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
  stream_name: "CUSTOM_STREAM"
  consumer_name: "custom-consumer"
  ack_wait: "60s"
  max_deliver: 5
redis:
  addr: "redis.example.com:6379"
  password: "redispass"
  db: 2
discord:
  default_webhook_url: "https://discord.com/api/webhooks/1/default"
  webhooks:
    recruitment: "https://discord.com/api/webhooks/2/recruitment"
    officers: "https://discord.com/api/webhooks/3/officers"
  http_timeout: "15s"
  max_retries: 5
  breaker_threshold: 10
rate_limit:
  rate: 20
  period: "30s"
  burst: 2
outbox:
  sweep_interval: "10s"
  stale_after: "5m"
  batch_size: 50
  max_attempts: 4
`,
			expectError: false,
			validate: func(t *testing.T, cfg *NotifierConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "CUSTOM_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "custom-consumer", cfg.NATS.ConsumerName)
				assert.Equal(t, 60*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 5, cfg.NATS.MaxDeliver)
				assert.Equal(t, "redis.example.com:6379", cfg.Redis.Addr)
				assert.Equal(t, "redispass", cfg.Redis.Password)
				assert.Equal(t, 2, cfg.Redis.DB)
				assert.Equal(t, "https://discord.com/api/webhooks/1/default", cfg.Discord.DefaultWebhookURL)
				assert.Equal(t, "https://discord.com/api/webhooks/2/recruitment", cfg.Discord.Webhooks["recruitment"])
				assert.Equal(t, "https://discord.com/api/webhooks/3/officers", cfg.Discord.Webhooks["officers"])
				assert.Equal(t, 15*time.Second, cfg.Discord.HTTPTimeout)
				assert.Equal(t, 5, cfg.Discord.MaxRetries)
				assert.Equal(t, 10, cfg.Discord.BreakerThreshold)
				assert.Equal(t, 20, cfg.RateLimit.Rate)
				assert.Equal(t, 30*time.Second, cfg.RateLimit.Period)
				assert.Equal(t, 2, cfg.RateLimit.Burst)
				assert.Equal(t, 10*time.Second, cfg.Outbox.SweepInterval)
				assert.Equal(t, 5*time.Minute, cfg.Outbox.StaleAfter)
				assert.Equal(t, 50, cfg.Outbox.BatchSize)
				assert.Equal(t, 4, cfg.Outbox.MaxAttempts)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
discord:
  default_webhook_url: "https://discord.com/api/webhooks/1/default"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *NotifierConfig) {
				// Check defaults
				assert.Equal(t, "GUILD_NOTIFICATIONS", cfg.NATS.StreamName)
				assert.Equal(t, "notifier", cfg.NATS.ConsumerName)
				assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 3, cfg.NATS.MaxDeliver)
				assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
				assert.Equal(t, 10*time.Second, cfg.Discord.HTTPTimeout)
				assert.Equal(t, 3, cfg.Discord.MaxRetries)
				assert.Equal(t, time.Second, cfg.Discord.RetryBaseDelay)
				assert.Equal(t, 60*time.Second, cfg.Discord.RetryMaxDelay)
				assert.Equal(t, 5, cfg.Discord.BreakerThreshold)
				assert.Equal(t, 60*time.Second, cfg.Discord.BreakerRecovery)
				assert.Equal(t, 30, cfg.RateLimit.Rate)
				assert.Equal(t, time.Minute, cfg.RateLimit.Period)
				assert.Equal(t, 5, cfg.RateLimit.Burst)
				assert.Equal(t, "guild:notifier:limiter:", cfg.RateLimit.KeyPrefix)
				assert.True(t, cfg.RateLimit.EnableLocalFallback)
				assert.Equal(t, 0.5, cfg.RateLimit.LocalFallbackMultiplier)
				assert.Equal(t, 30*time.Second, cfg.Outbox.SweepInterval)
				assert.Equal(t, 2*time.Minute, cfg.Outbox.StaleAfter)
				assert.Equal(t, 100, cfg.Outbox.BatchSize)
				assert.Equal(t, 3, cfg.Outbox.MaxAttempts)
				assert.Equal(t, 30*time.Second, cfg.Outbox.RetryBase)
				assert.Equal(t, time.Hour, cfg.Outbox.RetryMax)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadNotifierConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
		{
			name: "minimal config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "user",
				Password: "pass",
				DBName:   "db",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=user password=pass dbname=db sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := tt.config.DSN()
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestDatabaseConfig_ReadDSN(t *testing.T) {
	config := DatabaseConfig{
		Host:     "primary",
		Port:     5432,
		ReadHost: "replica",
		User:     "user",
		Password: "pass",
		DBName:   "db",
		SSLMode:  "disable",
	}

	// ReadPort falls back to Port when unset
	assert.Equal(t, "host=replica port=5432 user=user password=pass dbname=db sslmode=disable", config.ReadDSN())

	config.ReadPort = 5433
	assert.Equal(t, "host=replica port=5433 user=user password=pass dbname=db sslmode=disable", config.ReadDSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Create .env file with environment variables
	// Note: Viper uses GUILD_ prefix, so env vars need the prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `GUILD_DEBUG=true
GUILD_DATABASE_HOST=env-host
GUILD_DATABASE_PORT=3306
GUILD_DATABASE_USER=env-user
GUILD_DATABASE_PASSWORD=env-pass
GUILD_DATABASE_DBNAME=env-db
GUILD_DATABASE_SSLMODE=require
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	// Load config with envPath pointing to the temporary env directory
	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify that environment variables from .env file override config file values
	// The .env file is loaded via godotenv.Overload, which sets actual environment variables
	// Viper's AutomaticEnv then picks them up with GUILD_ prefix
	assert.True(t, cfg.Debug)                          // Should be true from .env file, not false from config
	assert.Equal(t, "env-host", cfg.Database.Host)     // Should be from .env file
	assert.Equal(t, 3306, cfg.Database.Port)           // Should be from .env file
	assert.Equal(t, "env-user", cfg.Database.User)     // Should be from .env file
	assert.Equal(t, "env-pass", cfg.Database.Password) // Should be from .env file
	assert.Equal(t, "env-db", cfg.Database.DBName)     // Should be from .env file
	assert.Equal(t, "require", cfg.Database.SSLMode)   // Should be from .env file
}
