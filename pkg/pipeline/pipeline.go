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

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dome-metrics/biotools/pkg/biotools"
	"github.com/dome-metrics/biotools/pkg/collector"
	"github.com/dome-metrics/biotools/pkg/defaults"
	apperrors "github.com/dome-metrics/biotools/pkg/errors"
	"github.com/dome-metrics/biotools/pkg/serializer"
	"github.com/dome-metrics/biotools/pkg/table"
	"github.com/dome-metrics/biotools/pkg/taxonomy"
)

// Cache layer names used in logs and metrics.
const (
	layerTable = "table"
	layerRaw   = "raw"
)

// Source reports where the returned table came from.
type Source string

const (
	SourceTableCache Source = "table-cache"
	SourceRawCache   Source = "raw-cache"
	SourceRegistry   Source = "registry"
)

// Aggregator returns the deduplicated records of all configured topics.
type Aggregator interface {
	Collect(ctx context.Context) ([]biotools.Tool, error)
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// Pipeline loads or builds the classified tool table.
type Pipeline struct {
	RawCachePath   string
	TableCachePath string
	Refresh        bool
	Aggregator     Aggregator
	Taxonomy       *taxonomy.Taxonomy

	// Source is set by Run.
	Source Source
}

// WithRawCachePath sets the location of the raw record cache.
func WithRawCachePath(path string) Option {
	return func(p *Pipeline) {
		if path != "" {
			p.RawCachePath = path
		}
	}
}

// WithTableCachePath sets the location of the derived table cache.
func WithTableCachePath(path string) Option {
	return func(p *Pipeline) {
		if path != "" {
			p.TableCachePath = path
		}
	}
}

// WithRefresh ignores existing cache files.
func WithRefresh(refresh bool) Option {
	return func(p *Pipeline) {
		p.Refresh = refresh
	}
}

// WithTaxonomy sets the taxonomy used for classification.
func WithTaxonomy(t *taxonomy.Taxonomy) Option {
	return func(p *Pipeline) {
		if t != nil {
			p.Taxonomy = t
		}
	}
}

// New creates a Pipeline with default cache locations in the working directory.
func New(agg Aggregator, opts ...Option) *Pipeline {
	p := &Pipeline{
		RawCachePath:   defaults.RawCacheFile,
		TableCachePath: defaults.TableCacheFile,
		Aggregator:     agg,
		Taxonomy:       taxonomy.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run returns the classified table, using the caches when present.
func (p *Pipeline) Run(ctx context.Context) (table.Table, error) {
	start := time.Now()
	defer func() {
		runDuration.Observe(time.Since(start).Seconds())
	}()

	if p.Taxonomy == nil {
		p.Taxonomy = taxonomy.Default()
	}

	if !p.Refresh && serializer.FileExists(p.TableCachePath) {
		rows, err := serializer.FromFileWithFormat[table.Table](p.TableCachePath, serializer.FormatTSV)
		if err != nil {
			return nil, fmt.Errorf("failed to load table cache: %w", err)
		}
		cacheLookups.WithLabelValues(layerTable, "hit").Inc()
		p.Source = SourceTableCache
		slog.Info("loaded table from cache",
			slog.String("path", p.TableCachePath),
			slog.Int("rows", len(*rows)))
		return *rows, nil
	}
	cacheLookups.WithLabelValues(layerTable, "miss").Inc()

	tools, err := p.records(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := table.FromTools(tools, p.Taxonomy)
	if err != nil {
		return nil, err
	}

	if err := serializer.WriteFile(ctx, p.TableCachePath, serializer.FormatTSV, rows); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write table cache", err)
	}
	slog.Info("wrote table cache",
		slog.String("path", p.TableCachePath),
		slog.Int("rows", len(rows)))

	return rows, nil
}

// records returns the deduplicated raw records from the cache or the registry.
func (p *Pipeline) records(ctx context.Context) ([]biotools.Tool, error) {
	if !p.Refresh && serializer.FileExists(p.RawCachePath) {
		tools, err := serializer.FromFileWithFormat[[]biotools.Tool](p.RawCachePath, serializer.FormatJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to load raw cache: %w", err)
		}
		cacheLookups.WithLabelValues(layerRaw, "hit").Inc()
		p.Source = SourceRawCache
		slog.Info("loaded records from cache",
			slog.String("path", p.RawCachePath),
			slog.Int("records", len(*tools)))
		return collector.Deduplicate(*tools), nil
	}
	cacheLookups.WithLabelValues(layerRaw, "miss").Inc()

	if p.Aggregator == nil {
		return nil, fmt.Errorf("no raw cache at %q and no aggregator configured", p.RawCachePath)
	}

	tools, err := p.Aggregator.Collect(ctx)
	if err != nil {
		return nil, err
	}
	p.Source = SourceRegistry

	if err := serializer.WriteFile(ctx, p.RawCachePath, serializer.FormatJSON, tools); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write raw cache", err)
	}
	slog.Info("wrote raw cache",
		slog.String("path", p.RawCachePath),
		slog.Int("records", len(tools)))

	return tools, nil
}
