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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dome-metrics/biotools/pkg/defaults"
	"github.com/dome-metrics/biotools/pkg/serializer"
)

func envVar(flag string) cli.ValueSourceChain {
	return cli.EnvVars(envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_")))
}

func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "raw-cache",
			Usage:   "Path of the raw registry records cache (JSON)",
			Value:   defaults.RawCacheFile,
			Sources: envVar("raw-cache"),
		},
		&cli.StringFlag{
			Name:    "table-cache",
			Usage:   "Path of the derived tool table cache (TSV)",
			Value:   defaults.TableCacheFile,
			Sources: envVar("table-cache"),
		},
		&cli.BoolFlag{
			Name:    "refresh",
			Usage:   "Ignore existing cache files and fetch from the registry",
			Sources: envVar("refresh"),
		},
		&cli.StringFlag{
			Name:    "base-url",
			Usage:   "Registry base URL",
			Value:   defaults.RegistryBaseURL,
			Sources: envVar("base-url"),
		},
		&cli.IntFlag{
			Name:    "concurrency",
			Usage:   "Number of topics fetched in parallel",
			Value:   defaults.FetchConcurrency,
			Sources: envVar("concurrency"),
		},
		&cli.FloatFlag{
			Name:    "rate",
			Usage:   "Maximum registry requests per second",
			Value:   defaults.FetchRateLimit,
			Sources: envVar("rate"),
		},
		&cli.IntFlag{
			Name:    "max-attempts",
			Usage:   "Attempts per page request before the topic fails",
			Value:   defaults.FetchMaxAttempts,
			Sources: envVar("max-attempts"),
		},
		&cli.StringFlag{
			Name:    "taxonomy",
			Aliases: []string{"t"},
			Usage: `Path/URL to a YAML or JSON file overriding the topic sets
	(keys: genomics, proteomics, machineLearning). Defaults to the built-in sets.`,
			Sources: envVar("taxonomy"),
		},
		&cli.StringFlag{
			Name:    "metrics-file",
			Usage:   "Write Prometheus metrics in text format to this file on exit",
			Sources: envVar("metrics-file"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (debug, info, warn, error)",
			Value:   "info",
			Sources: cli.EnvVars(envPrefix+"LOG_LEVEL", "LOG_LEVEL"),
		},
	}
}

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "Output file path (default: stdout)",
}

var formatFlag = &cli.StringFlag{
	Name:  "format",
	Value: string(serializer.FormatYAML),
	Usage: fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
}

// parseOutputFormat returns the --format value of cmd as a writable format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", cmd.String("format"))
	}
	return f, nil
}
