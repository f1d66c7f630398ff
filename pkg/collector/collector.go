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

package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dome-metrics/biotools/pkg/biotools"
	"github.com/dome-metrics/biotools/pkg/defaults"
)

// Fetcher returns all registry records annotated with one topic.
type Fetcher interface {
	FetchTopic(ctx context.Context, topicID string) ([]biotools.Tool, error)
}

// Option configures a Collector.
type Option func(*Collector)

// Collector fetches a list of topics and merges the results.
type Collector struct {
	Fetcher     Fetcher
	Topics      []string
	Concurrency int
}

// WithTopics sets the EDAM topic IDs to fetch, in merge order.
func WithTopics(topics []string) Option {
	return func(c *Collector) {
		c.Topics = topics
	}
}

// WithConcurrency sets how many topics are fetched at the same time.
func WithConcurrency(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.Concurrency = n
		}
	}
}

// New creates a Collector backed by the given Fetcher.
func New(f Fetcher, opts ...Option) *Collector {
	c := &Collector{
		Fetcher:     f,
		Concurrency: defaults.FetchConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect fetches every topic and returns the deduplicated aggregate.
func (c *Collector) Collect(ctx context.Context) ([]biotools.Tool, error) {
	if c.Fetcher == nil {
		return nil, fmt.Errorf("collector has no fetcher")
	}

	slog.Debug("starting collection",
		slog.Int("topics", len(c.Topics)),
		slog.Int("concurrency", c.Concurrency))

	start := time.Now()
	defer func() {
		collectDuration.Observe(time.Since(start).Seconds())
	}()

	// One slot per topic; the merge below walks them in topic order.
	results := make([][]biotools.Tool, len(c.Topics))

	g, gctx := errgroup.WithContext(ctx)
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}

	for i, topic := range c.Topics {
		g.Go(func() error {
			tools, err := c.Fetcher.FetchTopic(gctx, topic)
			if err != nil {
				slog.Error("failed to fetch topic",
					slog.String("topic", topic),
					slog.String("error", err.Error()))
				return fmt.Errorf("failed to fetch topic %s: %w", topic, err)
			}
			results[i] = tools
			slog.Debug("fetched topic",
				slog.String("topic", topic),
				slog.Int("tools", len(tools)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		collectTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]biotools.Tool, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}

	unique := Deduplicate(all)

	collectTotal.WithLabelValues("success").Inc()
	collectedTools.Set(float64(len(unique)))
	slog.Info("collection complete",
		slog.Int("fetched", len(all)),
		slog.Int("unique", len(unique)))

	return unique, nil
}
