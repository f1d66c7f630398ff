// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package biotools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dome-metrics/biotools/pkg/defaults"
	apperrors "github.com/dome-metrics/biotools/pkg/errors"
	"github.com/dome-metrics/biotools/pkg/serializer"
)

// Option configures a Client.
type Option func(*Client)

// Client fetches tool records from the registry.
// It is safe for concurrent use; the rate limiter is shared by all callers.
type Client struct {
	baseURL     string
	reader      *serializer.HttpReader
	limiter     *rate.Limiter
	maxAttempts int

	connectTimeout time.Duration
	requestTimeout time.Duration

	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// WithBaseURL overrides the registry base URL, e.g. for a mirror or a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHttpReader sets the HTTP reader used for page requests.
func WithHttpReader(r *serializer.HttpReader) Option {
	return func(c *Client) {
		if r != nil {
			c.reader = r
		}
	}
}

// WithConnectTimeout bounds dialing the registry. It is ignored when a
// reader is supplied with WithHttpReader.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.connectTimeout = timeout
		}
	}
}

// WithRateLimit sets the sustained request rate and burst. A limit of
// rate.Inf disables pacing.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithMaxAttempts sets the number of attempts per page, including the first.
func WithMaxAttempts(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithRetryInterval sets the initial and maximum backoff delay between attempts.
func WithRetryInterval(initial, maxInterval time.Duration) Option {
	return func(c *Client) {
		if initial > 0 {
			c.initialInterval = initial
		}
		if maxInterval > 0 {
			c.maxInterval = maxInterval
		}
	}
}

// NewClient creates a registry client with production defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:         defaults.RegistryBaseURL,
		limiter:         rate.NewLimiter(rate.Limit(defaults.FetchRateLimit), defaults.FetchRateBurst),
		maxAttempts:     defaults.FetchMaxAttempts,
		connectTimeout:  defaults.HTTPConnectTimeout,
		requestTimeout:  defaults.HTTPClientTimeout,
		initialInterval: defaults.FetchRetryInitialInterval,
		maxInterval:     defaults.FetchRetryMaxInterval,
		multiplier:      defaults.FetchRetryMultiplier,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.reader == nil {
		c.reader = serializer.NewHttpReader(
			serializer.WithConnectTimeout(c.connectTimeout),
			serializer.WithTotalTimeout(c.requestTimeout),
		)
	}
	if c.maxInterval < c.initialInterval {
		c.maxInterval = c.initialInterval
	}
	return c
}

// TopicURL returns the search URL of one page of a topic.
func (c *Client) TopicURL(topicID string, page int) string {
	return fmt.Sprintf("%s/api/tool/?topicID=%%22topic_%s%%22&format=json&page=%d", c.baseURL, topicID, page)
}

// FetchTopic returns all tools annotated with the given EDAM topic.
//
// Pages are requested sequentially starting at 1. A malformed page ends the
// topic early with the records collected so far and a nil error. A page that
// still fails after all retry attempts fails the topic.
func (c *Client) FetchTopic(ctx context.Context, topicID string) ([]Tool, error) {
	start := time.Now()
	defer func() {
		topicFetchDuration.Observe(time.Since(start).Seconds())
	}()

	var tools []Tool
	maxPages := 0

	for page := 1; ; page++ {
		total := "?"
		if maxPages > 0 {
			total = fmt.Sprint(maxPages)
		}
		slog.Info("fetching page", "topic", topicID, "page", page, "of", total)

		body, err := c.fetchPage(ctx, topicID, page)
		if err != nil {
			topicFetchTotal.WithLabelValues("error").Inc()
			return tools, err
		}

		var p Page
		if err := json.Unmarshal(body, &p); err != nil {
			slog.Error("failed to decode registry response",
				"topic", topicID, "page", page, "error", err)
			malformedPagesTotal.Inc()
			topicFetchTotal.WithLabelValues("partial").Inc()
			return tools, nil
		}
		if p.List == nil {
			slog.Error("registry response has no list", "topic", topicID, "page", page)
			malformedPagesTotal.Inc()
			topicFetchTotal.WithLabelValues("partial").Inc()
			return tools, nil
		}

		tools = append(tools, *p.List...)
		toolsFetchedTotal.Add(float64(len(*p.List)))

		if !p.HasNext() {
			break
		}
		if n := len(*p.List); n > 0 && p.Count > 0 {
			maxPages = int(math.Ceil(float64(p.Count) / float64(n)))
		}
	}

	topicFetchTotal.WithLabelValues("success").Inc()
	slog.Debug("topic fetched", "topic", topicID, "tools", len(tools))
	return tools, nil
}

// fetchPage requests one page, retrying transient failures with backoff.
func (c *Client) fetchPage(ctx context.Context, topicID string, page int) ([]byte, error) {
	url := c.TopicURL(topicID, page)

	var lastStatus *serializer.StatusError
	attempt := 0

	op := func() ([]byte, error) {
		attempt++
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, backoff.Permanent(err)
		}

		hdr := http.Header{}
		hdr.Set("Accept", "application/json")
		hdr.Set("X-Request-Id", uuid.New().String())

		pageRequestsTotal.Inc()
		data, err := c.reader.ReadWithHeaders(ctx, url, hdr)
		if err == nil {
			return data, nil
		}
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}

		var se *serializer.StatusError
		if !errors.As(err, &se) {
			lastStatus = nil
			return nil, err
		}
		lastStatus = se
		pageErrorsTotal.WithLabelValues(statusClass(se.StatusCode)).Inc()

		switch {
		case se.IsServerError():
			return nil, err
		case se.StatusCode == http.StatusTooManyRequests:
			if se.RetryAfter > 0 {
				return nil, backoff.RetryAfter(int(se.RetryAfter / time.Second))
			}
			return nil, err
		default:
			return nil, backoff.Permanent(err)
		}
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval
	b.MaxInterval = c.maxInterval
	b.Multiplier = c.multiplier

	data, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(c.maxAttempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			pageRetriesTotal.Inc()
			slog.Warn("registry request failed, retrying",
				"topic", topicID,
				"page", page,
				"attempt", attempt,
				"retryIn", next.String(),
				"error", err)
		}),
	)
	if err == nil {
		return data, nil
	}

	return nil, c.classify(ctx, err, lastStatus, topicID, page, attempt)
}

func (c *Client) classify(ctx context.Context, err error, last *serializer.StatusError, topicID string, page, attempts int) error {
	errCtx := map[string]any{
		"topic":    topicID,
		"page":     page,
		"attempts": attempts,
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return apperrors.WrapWithContext(apperrors.ErrCodeTimeout, "registry fetch deadline exceeded", ctxErr, errCtx)
		}
		return fmt.Errorf("registry fetch for topic %s canceled: %w", topicID, ctxErr)
	}

	if last == nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeUnavailable, "registry unreachable", err, errCtx)
	}

	errCtx["status"] = last.StatusCode
	switch {
	case last.IsServerError():
		return apperrors.WrapWithContext(apperrors.ErrCodeUnavailable, "registry server error", last, errCtx)
	case last.StatusCode == http.StatusTooManyRequests:
		return apperrors.WrapWithContext(apperrors.ErrCodeRateLimitExceeded, "registry throttled requests", last, errCtx)
	default:
		return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest, "registry rejected request", last, errCtx)
	}
}

func statusClass(code int) string {
	switch {
	case code == http.StatusTooManyRequests:
		return "429"
	case code >= 500:
		return "5xx"
	default:
		return "4xx"
	}
}
