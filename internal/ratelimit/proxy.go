package ratelimit

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/config"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
)

// RequestFunc is a function that performs the actual webhook request
// It receives a context and returns the result and any error
type RequestFunc func(ctx context.Context) (interface{}, error)

// requestResult wraps the result and error of a request
type requestResult struct {
	value interface{}
	err   error
}

// Proxy defines the interface for the rate-limiting proxy. Discord enforces
// its webhook limits per webhook URL, so each configured webhook gets its own
// token bucket shared across notifier instances through Redis.
//
//go:generate mockgen -source=proxy.go -destination=../mocks/ratelimit_proxy.go -package=mocks -mock_names=Proxy=MockRateLimitProxy
type Proxy interface {
	// Request submits a rate-limited request for execution
	Request(ctx context.Context, webhookName string, fn RequestFunc) (interface{}, error)

	// Close gracefully shuts down the proxy
	Close() error
}

// proxy is the concrete implementation of the rate-limiting proxy
type proxy struct {
	config         config.RateLimitConfig
	pool           pond.ResultPool[*requestResult]
	limiters       map[string]*webhookLimiter
	redis          adapter.RedisClient
	clock          adapter.Clock
	closed         atomic.Bool
	closeOnce      sync.Once
	redisAvailable atomic.Bool
}

// webhookLimiter holds the rate limiting state for a single webhook
type webhookLimiter struct {
	name               string
	limit              redis_rate.Limit
	distributedLimiter adapter.RedisRateLimiter
	localLimiter       *rate.Limiter
	preFilterLimiter   *rate.Limiter
}

// NewProxy creates a new rate-limiting proxy with one bucket per webhook name
func NewProxy(cfg config.RateLimitConfig, webhookNames []string, rc adapter.RedisClient, clock adapter.Clock) (Proxy, error) {
	// Validate and set defaults
	if err := validateConfig(&cfg, webhookNames); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Test Redis connectivity
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisAvailable := true
	if err := rc.Ping(ctx).Err(); err != nil {
		redisAvailable = false
		if !cfg.EnableLocalFallback {
			return nil, fmt.Errorf("redis unavailable and fallback disabled: %w", err)
		}
		logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
	}

	// Create distributed rate limiter
	distributedLimiter := rc.NewRateLimiter()

	// All webhooks share the same limit; Discord applies it per webhook URL
	limit := redis_rate.Limit{
		Rate:   cfg.Rate,
		Burst:  cfg.Burst,
		Period: cfg.Period,
	}
	perSecond := float64(cfg.Rate) / cfg.Period.Seconds()

	// Create webhook limiters
	limiters := make(map[string]*webhookLimiter)
	for _, name := range webhookNames {
		// Local fallback limiter runs at a fraction of the shared rate so
		// several instances without Redis still stay under the webhook limit.
		// Minimum rate of one request per period.
		localRate := max(perSecond*cfg.LocalFallbackMultiplier, 1.0/cfg.Period.Seconds())
		localLimiter := rate.NewLimiter(rate.Limit(localRate), cfg.Burst)

		// Pre-filter limiter runs at the full rate to reduce Redis pressure
		// while maintaining full throughput
		preFilterLimiter := rate.NewLimiter(rate.Limit(perSecond), cfg.Burst)

		limiters[name] = &webhookLimiter{
			name:               name,
			limit:              limit,
			distributedLimiter: distributedLimiter,
			localLimiter:       localLimiter,
			preFilterLimiter:   preFilterLimiter,
		}
	}

	// Create worker pool with result support
	pool := pond.NewResultPool[*requestResult](
		cfg.MaxWorkers,
		pond.WithQueueSize(cfg.MaxQueueSize),
	)

	p := &proxy{
		config:   cfg,
		pool:     pool,
		limiters: limiters,
		redis:    rc,
		clock:    clock,
	}
	p.redisAvailable.Store(redisAvailable)

	// Start Redis health check goroutine
	go p.monitorRedisHealth()

	logger.Info("Rate limit proxy initialized",
		zap.Int("max_workers", cfg.MaxWorkers),
		zap.Int("max_queue_size", cfg.MaxQueueSize),
		zap.Int("webhooks", len(limiters)),
		zap.Bool("local_fallback", cfg.EnableLocalFallback),
	)

	return p, nil
}

// Request submits a rate-limited request for execution and returns the result with type safety
func Request[T any](ctx context.Context, p Proxy, webhookName string, fn func(ctx context.Context) (T, error)) (T, error) {
	// If proxy is nil, execute the function directly
	if p == nil {
		return fn(ctx)
	}

	// Execute the request
	var zero T
	result, err := p.Request(ctx, webhookName, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

// Request submits a rate-limited request for execution and returns the result as interface{}
// The function blocks until:
// 1. A token is acquired and the request completes
// 2. The context is canceled
// 3. The maximum queue time is exceeded
func (p *proxy) Request(ctx context.Context, webhookName string, fn RequestFunc) (interface{}, error) {
	// Check if proxy is closed
	if p.closed.Load() {
		return nil, fmt.Errorf("proxy is closed")
	}

	// Get webhook limiter
	limiter, ok := p.limiters[webhookName]
	if !ok {
		return nil, fmt.Errorf("webhook '%s' not configured", webhookName)
	}

	// Create context with timeout for queue waiting
	queueCtx, cancel := context.WithTimeout(ctx, p.config.MaxQueueTime)
	defer cancel()

	// Submit task to worker pool
	resultTask := p.pool.Submit(func() *requestResult {
		value, err := p.executeWithRateLimit(queueCtx, limiter, fn)
		return &requestResult{value: value, err: err}
	})

	// Wait for result
	result, err := resultTask.Wait()
	if err != nil {
		return nil, err
	}
	if result.err != nil {
		return nil, result.err
	}
	return result.value, nil
}

// executeWithRateLimit executes the request after acquiring a rate limit token
func (p *proxy) executeWithRateLimit(ctx context.Context, limiter *webhookLimiter, fn RequestFunc) (interface{}, error) {
	// Acquire rate limit token (with retry loop)
	if err := p.acquireToken(ctx, limiter); err != nil {
		return nil, err
	}

	// Execute the request - no timeout wrapper here, let the HTTP client handle it
	return fn(ctx)
}

// acquireToken acquires a rate limit token, blocking until one is available
func (p *proxy) acquireToken(ctx context.Context, limiter *webhookLimiter) error {
	// Retry loop for token acquisition
	for {
		// Check context before attempting
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Try distributed limiter first if Redis is available
		if p.redisAvailable.Load() {
			allowed, retryAfter, err := p.tryDistributedLimit(ctx, limiter)
			if err != nil {
				// Check if this is a context error (from pre-filter or Redis call)
				if ctx.Err() != nil {
					return ctx.Err()
				}

				// Redis error - mark as unavailable and fall back to local if enabled
				p.redisAvailable.Store(false)

				if !p.config.EnableLocalFallback {
					return fmt.Errorf("redis rate limiter unavailable: %w", err)
				}

				logger.Warn("Redis rate limiter error, falling back to local",
					zap.String("webhook", limiter.name),
					zap.Error(err),
				)
				// Continue to local limiter
			} else if allowed {
				// Token acquired successfully
				return nil
			} else if retryAfter > 0 {
				// Rate limited - sleep with jitter and retry
				// Add jitter to spread out retry attempts (50-150% of retryAfter)
				jitter := time.Duration(float64(retryAfter) * (0.5 + rand.Float64())) //nolint:gosec,G404
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-p.clock.After(jitter):
					// Retry
					continue
				}
			}
		}

		// Use local limiter as fallback or when Redis is unavailable
		if !p.redisAvailable.Load() && p.config.EnableLocalFallback {
			// Block until token is available
			if err := limiter.localLimiter.Wait(ctx); err != nil {
				return err
			}
			return nil
		}

		// If we get here without acquiring a token, sleep briefly and retry
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.clock.After(100 * time.Millisecond):
			// Retry
		}
	}
}

// tryDistributedLimit attempts to acquire a token from the distributed limiter
// Returns: (allowed bool, retryAfter duration, error)
func (p *proxy) tryDistributedLimit(ctx context.Context, limiter *webhookLimiter) (bool, time.Duration, error) {
	if limiter.distributedLimiter == nil {
		return false, 0, fmt.Errorf("distributed limiter not available")
	}

	// Pre-filter requests to reduce Redis pressure
	if err := limiter.preFilterLimiter.Wait(ctx); err != nil {
		// Context error during pre-filter - not a Redis error
		return false, 0, err
	}

	redisKey := fmt.Sprintf("%s%s", p.config.KeyPrefix, limiter.name)

	res, err := limiter.distributedLimiter.Allow(ctx, redisKey, limiter.limit)
	if err != nil {
		return false, 0, err
	}

	if res.Allowed == 0 {
		// Rate limit exceeded
		logger.Debug("Rate limit token unavailable, waiting",
			zap.String("webhook", limiter.name),
			zap.Duration("retry_after", res.RetryAfter),
			zap.Int("remaining", res.Remaining),
		)
		return false, res.RetryAfter, nil
	}

	// Token acquired successfully
	return true, 0, nil
}

// monitorRedisHealth periodically checks Redis health and updates availability status
func (p *proxy) monitorRedisHealth() {
	ticker := p.clock.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		if p.closed.Load() {
			return
		}

		<-ticker.C

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := p.redis.Ping(ctx).Err()
		cancel()

		redisAvailable := err == nil
		wasAvailable := p.redisAvailable.Load()
		p.redisAvailable.Store(redisAvailable)

		if !wasAvailable && redisAvailable {
			logger.Info("Redis connection restored")
		}
	}
}

// Close gracefully shuts down the proxy
// It waits for in-flight requests to complete with a timeout
func (p *proxy) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.closed.Store(true)

		logger.Info("Shutting down rate limit proxy")

		// Stop the pool and wait for tasks to complete
		tasks := p.pool.Stop()
		if errTasks := tasks.Wait(); errTasks != nil {
			logger.Warn("Error waiting for pool tasks to complete", zap.Error(errTasks))
			err = errTasks
		}

		// Close Redis connection
		if closeErr := p.redis.Close(); closeErr != nil {
			logger.Warn("Error closing Redis connection", zap.Error(closeErr))
			err = closeErr
		}

		logger.Info("Rate limit proxy shutdown complete")
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimitConfig, webhookNames []string) error {
	if len(webhookNames) == 0 {
		return fmt.Errorf("at least one webhook must be configured")
	}

	if cfg.Rate <= 0 {
		return fmt.Errorf("rate must be positive")
	}

	if cfg.Period <= 0 {
		cfg.Period = time.Minute
	}

	if cfg.Burst <= 0 {
		cfg.Burst = cfg.Rate
	}

	if cfg.MaxQueueTime <= 0 {
		cfg.MaxQueueTime = 2 * time.Minute
	}

	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "guild:notifier:limiter:"
	}

	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = runtime.NumCPU() * 2
	}

	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 1024
	}

	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = 0.5
	}

	return nil
}
