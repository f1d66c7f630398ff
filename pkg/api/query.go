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

package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dome-metrics/biotools/pkg/table"
	"github.com/dome-metrics/biotools/pkg/taxonomy"
)

// Query selects rows from the table.
type Query struct {
	// Subdomain keeps only rows classified under it. Empty keeps all.
	Subdomain taxonomy.Subdomain `json:"subdomain,omitempty"`

	// HasRepository keeps rows with (true) or without (false) a repository
	// link. Nil keeps all.
	HasRepository *bool `json:"hasRepository,omitempty"`

	// Limit caps the number of returned rows. Zero means no cap.
	Limit int `json:"limit,omitempty"`

	// Offset skips that many matching rows.
	Offset int `json:"offset,omitempty"`
}

// ParseQuery reads a Query from the request URL.
func ParseQuery(r *http.Request) (*Query, error) {
	if r == nil || r.URL == nil {
		return nil, fmt.Errorf("request is nil")
	}
	return parseValues(r.URL.Query())
}

func parseValues(v url.Values) (*Query, error) {
	q := &Query{}

	if s := strings.TrimSpace(v.Get("subdomain")); s != "" {
		d, err := parseSubdomain(s)
		if err != nil {
			return nil, err
		}
		q.Subdomain = d
	}

	if s := strings.TrimSpace(v.Get("hasRepository")); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hasRepository %q: %w", s, err)
		}
		q.HasRepository = &b
	}

	var err error
	if q.Limit, err = parseNonNegative(v, "limit"); err != nil {
		return nil, err
	}
	if q.Offset, err = parseNonNegative(v, "offset"); err != nil {
		return nil, err
	}

	return q, nil
}

func parseSubdomain(s string) (taxonomy.Subdomain, error) {
	for _, d := range []taxonomy.Subdomain{taxonomy.Genomics, taxonomy.Proteomics, taxonomy.MachineLearning} {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid subdomain %q: must be one of %s, %s, %s",
		s, taxonomy.Genomics, taxonomy.Proteomics, taxonomy.MachineLearning)
}

func parseNonNegative(v url.Values, key string) (int, error) {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", key, s)
	}
	return n, nil
}

// Matches reports whether the row passes the subdomain and repository filters.
func (q *Query) Matches(row table.Row) bool {
	switch q.Subdomain {
	case taxonomy.Genomics:
		if !row.IsGenomics {
			return false
		}
	case taxonomy.Proteomics:
		if !row.IsProteomics {
			return false
		}
	case taxonomy.MachineLearning:
		if !row.IsMachineLearning {
			return false
		}
	}

	if q.HasRepository != nil && (row.Repository != "") != *q.HasRepository {
		return false
	}

	return true
}

// Apply filters rows in table order, then applies offset and limit.
// The total count of matching rows is returned alongside the page.
func (q *Query) Apply(rows table.Table) (table.Table, int) {
	matched := make(table.Table, 0, len(rows))
	for _, row := range rows {
		if q.Matches(row) {
			matched = append(matched, row)
		}
	}

	total := len(matched)
	if q.Offset >= total {
		return table.Table{}, total
	}
	page := matched[q.Offset:]
	if q.Limit > 0 && q.Limit < len(page) {
		page = page[:q.Limit]
	}
	return page, total
}
