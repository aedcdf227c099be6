package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/bimakw/wallet-scorer/internal/config"
)

// maxBodyBytes caps how much of a source response is read
const maxBodyBytes = 1 << 20

// Client issues GET requests against the analytics host. All sources share
// one outbound rate limiter; each source gets its own circuit breaker so a
// flapping platform cannot poison the others.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	limiter       *rate.Limiter
	breakers      map[string]*gobreaker.CircuitBreaker
	sourceTimeout time.Duration
	maxRetries    int
	retryDelay    time.Duration
	logger        *zap.Logger
}

// NewClient creates an analytics client from config
func NewClient(cfg config.AnalyticsConfig, logger *zap.Logger) *Client {
	breakers := make(map[string]*gobreaker.CircuitBreaker, len(AllSources()))
	for _, source := range AllSources() {
		source := source
		breakers[source] = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:     source,
			Interval: 60 * time.Second,
			Timeout:  30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Source circuit breaker state changed",
					zap.String("source", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		})
	}

	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:    &http.Client{Timeout: cfg.RequestTimeout},
		limiter:       rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		breakers:      breakers,
		sourceTimeout: cfg.SourceTimeout,
		maxRetries:    cfg.MaxRetries,
		retryDelay:    cfg.RetryDelay,
		logger:        logger,
	}
}

// GetJSON fetches path and decodes the response into dest. The whole
// operation, retries included, is bounded by the source timeout; an open
// breaker fails immediately.
func (c *Client) GetJSON(ctx context.Context, source, path string, dest interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.sourceTimeout)
	defer cancel()

	start := time.Now()
	breaker, ok := c.breakers[source]
	if !ok {
		return fmt.Errorf("unknown source: %s", source)
	}

	_, err := breaker.Execute(func() (interface{}, error) {
		return nil, c.getWithRetry(ctx, path, dest)
	})
	observeFetch(source, start, err)

	if err != nil {
		return fmt.Errorf("source %s: %w", source, err)
	}
	return nil
}

func (c *Client) getWithRetry(ctx context.Context, path string, dest interface{}) error {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		if lastErr = c.getOnce(ctx, path, dest); lastErr == nil {
			return nil
		}
	}
	return lastErr
}

func (c *Client) getOnce(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return fmt.Errorf("empty response body")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
