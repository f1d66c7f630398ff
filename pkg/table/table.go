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

package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dome-metrics/biotools/pkg/biotools"
	apperrors "github.com/dome-metrics/biotools/pkg/errors"
	"github.com/dome-metrics/biotools/pkg/taxonomy"
)

// RepositoryLinkType is matched as a substring of link types.
const RepositoryLinkType = "Repository"

// Separator joins URL lists within one column.
const Separator = ","

// Column names of the derived table, in order.
const (
	ColumnID                = "id"
	ColumnName              = "name"
	ColumnIsGenomics        = "is_genomics"
	ColumnIsProteomics      = "is_proteomics"
	ColumnIsMachineLearning = "is_machine_learning"
	ColumnDocumentation     = "documentation"
	ColumnRepository        = "repository"
)

// Columns is the header of the derived table.
var Columns = []string{
	ColumnID,
	ColumnName,
	ColumnIsGenomics,
	ColumnIsProteomics,
	ColumnIsMachineLearning,
	ColumnDocumentation,
	ColumnRepository,
}

// Row is the classified view of one tool.
type Row struct {
	ID                string `json:"id" yaml:"id"`
	Name              string `json:"name" yaml:"name"`
	IsGenomics        bool   `json:"is_genomics" yaml:"is_genomics"`
	IsProteomics      bool   `json:"is_proteomics" yaml:"is_proteomics"`
	IsMachineLearning bool   `json:"is_machine_learning" yaml:"is_machine_learning"`
	Documentation     string `json:"documentation" yaml:"documentation"`
	Repository        string `json:"repository" yaml:"repository"`
}

// Table is an ordered list of rows.
type Table []Row

// FromTool classifies a single record.
// A record without a topic list is rejected with ErrCodeMalformedData.
func FromTool(t *biotools.Tool, tax *taxonomy.Taxonomy) (Row, error) {
	if !t.HasTopic() {
		return Row{}, apperrors.NewWithContext(apperrors.ErrCodeMalformedData,
			"tool record has no topic list",
			map[string]any{"biotoolsID": t.BiotoolsID})
	}

	uris := t.TopicURIs()

	docs := make([]string, 0, len(t.Documentation))
	for _, d := range t.Documentation {
		docs = append(docs, d.URL)
	}

	repos := make([]string, 0, len(t.Link))
	for _, l := range t.Link {
		if l.Type.Contains(RepositoryLinkType) {
			repos = append(repos, l.URL)
		}
	}

	return Row{
		ID:                t.BiotoolsID,
		Name:              t.Name,
		IsGenomics:        tax.Genomics.Matches(uris),
		IsProteomics:      tax.Proteomics.Matches(uris),
		IsMachineLearning: tax.MachineLearning.Matches(uris),
		Documentation:     strings.Join(docs, Separator),
		Repository:        strings.Join(repos, Separator),
	}, nil
}

// FromTools classifies records in order. The first malformed record fails
// the whole conversion.
func FromTools(tools []biotools.Tool, tax *taxonomy.Taxonomy) (Table, error) {
	if tax == nil {
		tax = taxonomy.Default()
	}

	out := make(Table, 0, len(tools))
	for i := range tools {
		row, err := FromTool(&tools[i], tax)
		if err != nil {
			if se, ok := err.(*apperrors.StructuredError); ok && se.Context != nil {
				se.Context["index"] = i
			}
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

// Header implements serializer.Tabular.
func (t Table) Header() []string {
	h := make([]string, len(Columns))
	copy(h, Columns)
	return h
}

// Records implements serializer.Tabular.
func (t Table) Records() [][]string {
	recs := make([][]string, 0, len(t))
	for _, r := range t {
		recs = append(recs, []string{
			r.ID,
			r.Name,
			strconv.FormatBool(r.IsGenomics),
			strconv.FormatBool(r.IsProteomics),
			strconv.FormatBool(r.IsMachineLearning),
			r.Documentation,
			r.Repository,
		})
	}
	return recs
}

// DecodeRecords implements serializer.TabularDecoder.
// Columns are located by name, so their order in the input does not matter.
func (t *Table) DecodeRecords(header []string, records [][]string) error {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}
	for _, c := range Columns {
		if _, ok := pos[c]; !ok {
			return fmt.Errorf("table is missing column %q", c)
		}
	}

	out := make(Table, 0, len(records))
	for n, rec := range records {
		if len(rec) != len(header) {
			return fmt.Errorf("row %d has %d fields, header has %d", n+1, len(rec), len(header))
		}

		row := Row{
			ID:            rec[pos[ColumnID]],
			Name:          rec[pos[ColumnName]],
			Documentation: rec[pos[ColumnDocumentation]],
			Repository:    rec[pos[ColumnRepository]],
		}

		var err error
		if row.IsGenomics, err = parseBool(rec[pos[ColumnIsGenomics]]); err != nil {
			return fmt.Errorf("row %d: %s: %w", n+1, ColumnIsGenomics, err)
		}
		if row.IsProteomics, err = parseBool(rec[pos[ColumnIsProteomics]]); err != nil {
			return fmt.Errorf("row %d: %s: %w", n+1, ColumnIsProteomics, err)
		}
		if row.IsMachineLearning, err = parseBool(rec[pos[ColumnIsMachineLearning]]); err != nil {
			return fmt.Errorf("row %d: %s: %w", n+1, ColumnIsMachineLearning, err)
		}

		out = append(out, row)
	}

	*t = out
	return nil
}

// parseBool accepts the forms written by this package and by other tools
// producing the same table (True/False).
func parseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}
