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

	"github.com/urfave/cli/v3"

	"github.com/dome-metrics/biotools/pkg/serializer"
	"github.com/dome-metrics/biotools/pkg/taxonomy"
)

func topicsCmd() *cli.Command {
	return &cli.Command{
		Name:  "topics",
		Usage: "Print the EDAM topic sets used for fetching and classification",
		Description: `Print the genomics, proteomics and machine learning topic sets.
Honors --taxonomy, so an override file can be checked before a run.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			if outFormat == serializer.FormatTSV {
				return fmt.Errorf("format %q is not supported for topics", outFormat)
			}

			tax, err := taxonomy.Load(cmd.String("taxonomy"))
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, tax)
		},
	}
}
