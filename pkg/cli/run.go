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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/dome-metrics/biotools/pkg/biotools"
	"github.com/dome-metrics/biotools/pkg/collector"
	"github.com/dome-metrics/biotools/pkg/pipeline"
	"github.com/dome-metrics/biotools/pkg/table"
	"github.com/dome-metrics/biotools/pkg/taxonomy"
)

func runAction(ctx context.Context, cmd *cli.Command) (err error) {
	if path := cmd.String("metrics-file"); path != "" {
		defer func() {
			if werr := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); werr != nil {
				slog.Warn("failed to write metrics file", "path", path, "error", werr)
			}
		}()
	}

	p, err := buildPipeline(cmd)
	if err != nil {
		return err
	}

	rows, err := p.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to build tool table: %w", err)
	}

	s := summarize(rows)
	slog.Info("tool table ready",
		"source", string(p.Source),
		"path", p.TableCachePath,
		"tools", s.Tools,
		"genomics", s.Genomics,
		"proteomics", s.Proteomics,
		"machineLearning", s.MachineLearning,
		"withRepository", s.WithRepository)
	return nil
}

// buildPipeline wires the registry client, collector and pipeline from flags.
func buildPipeline(cmd *cli.Command) (*pipeline.Pipeline, error) {
	tax, err := taxonomy.Load(cmd.String("taxonomy"))
	if err != nil {
		return nil, err
	}

	concurrency := int(cmd.Int("concurrency"))
	if concurrency < 1 {
		return nil, fmt.Errorf("concurrency must be at least 1, got %d", concurrency)
	}
	attempts := int(cmd.Int("max-attempts"))
	if attempts < 1 {
		return nil, fmt.Errorf("max-attempts must be at least 1, got %d", attempts)
	}

	limit := rate.Inf
	if r := cmd.Float("rate"); r > 0 {
		limit = rate.Limit(r)
	}

	client := biotools.NewClient(
		biotools.WithBaseURL(cmd.String("base-url")),
		biotools.WithRateLimit(limit, 1),
		biotools.WithMaxAttempts(attempts),
	)

	col := collector.New(client,
		collector.WithTopics(tax.FetchOrder()),
		collector.WithConcurrency(concurrency),
	)

	return pipeline.New(col,
		pipeline.WithTaxonomy(tax),
		pipeline.WithRawCachePath(cmd.String("raw-cache")),
		pipeline.WithTableCachePath(cmd.String("table-cache")),
		pipeline.WithRefresh(cmd.Bool("refresh")),
	), nil
}

type summary struct {
	Tools           int
	Genomics        int
	Proteomics      int
	MachineLearning int
	WithRepository  int
}

func summarize(rows table.Table) summary {
	s := summary{Tools: len(rows)}
	for _, r := range rows {
		if r.IsGenomics {
			s.Genomics++
		}
		if r.IsProteomics {
			s.Proteomics++
		}
		if r.IsMachineLearning {
			s.MachineLearning++
		}
		if r.Repository != "" {
			s.WithRepository++
		}
	}
	return s
}
