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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/dome-metrics/biotools/pkg/errors"
	"github.com/dome-metrics/biotools/pkg/header"
	"github.com/dome-metrics/biotools/pkg/server"
	"github.com/dome-metrics/biotools/pkg/table"
)

func sampleRows() table.Table {
	return table.Table{
		{ID: "bwa", Name: "BWA", IsGenomics: true, Repository: "https://github.com/lh3/bwa"},
		{ID: "maxquant", Name: "MaxQuant", IsProteomics: true},
		{ID: "deepvariant", Name: "DeepVariant", IsGenomics: true, IsMachineLearning: true,
			Documentation: "https://example.org/docs", Repository: "https://github.com/google/deepvariant"},
		{ID: "alphafold", Name: "AlphaFold", IsProteomics: true, IsMachineLearning: true,
			Repository: "https://github.com/deepmind/alphafold"},
	}
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	return NewServer(sampleRows(), "v0.0.1-test").Handler()
}

func getList(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, ListResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var resp ListResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	}
	return w, resp
}

func ids(rows table.Table) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestHandleList(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name      string
		target    string
		wantIDs   []string
		wantTotal int
	}{
		{
			name:      "all rows in table order",
			target:    "/v1/tools",
			wantIDs:   []string{"bwa", "maxquant", "deepvariant", "alphafold"},
			wantTotal: 4,
		},
		{
			name:      "genomics",
			target:    "/v1/tools?subdomain=genomics",
			wantIDs:   []string{"bwa", "deepvariant"},
			wantTotal: 2,
		},
		{
			name:      "subdomain is case insensitive",
			target:    "/v1/tools?subdomain=MachineLearning",
			wantIDs:   []string{"deepvariant", "alphafold"},
			wantTotal: 2,
		},
		{
			name:      "without repository",
			target:    "/v1/tools?hasRepository=false",
			wantIDs:   []string{"maxquant"},
			wantTotal: 1,
		},
		{
			name:      "combined filters",
			target:    "/v1/tools?subdomain=proteomics&hasRepository=true",
			wantIDs:   []string{"alphafold"},
			wantTotal: 1,
		},
		{
			name:      "limit and offset",
			target:    "/v1/tools?offset=1&limit=2",
			wantIDs:   []string{"maxquant", "deepvariant"},
			wantTotal: 4,
		},
		{
			name:      "offset past end",
			target:    "/v1/tools?offset=10",
			wantIDs:   []string{},
			wantTotal: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := getList(t, h, tt.target)
			require.Equal(t, http.StatusOK, w.Code)

			assert.Equal(t, tt.wantIDs, ids(resp.Tools))
			assert.Equal(t, tt.wantTotal, resp.Total)
			assert.Equal(t, len(tt.wantIDs), resp.Count)
			assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))
			assert.Equal(t, header.KindToolList, resp.Kind)
		})
	}
}

func TestHandleList_InvalidQuery(t *testing.T) {
	h := newTestServer(t)

	targets := []string{
		"/v1/tools?subdomain=metabolomics",
		"/v1/tools?hasRepository=maybe",
		"/v1/tools?limit=-1",
		"/v1/tools?offset=abc",
	}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

			require.Equal(t, http.StatusBadRequest, w.Code)

			var body server.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, string(apperrors.ErrCodeInvalidRequest), body.Code)
			assert.False(t, body.Retryable)
			assert.NotEmpty(t, body.RequestID)
		})
	}
}

func TestHandleGet(t *testing.T) {
	h := newTestServer(t)

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/tools/deepvariant", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp ToolResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, sampleRows()[2], resp.Tool)
		assert.Equal(t, header.KindTool, resp.Kind)
		assert.Equal(t, header.APIVersion, resp.APIVersion)
		assert.Equal(t, "v0.0.1-test", resp.Metadata["version"])
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/tools/missing", nil))

		require.Equal(t, http.StatusNotFound, w.Code)

		var body server.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, string(apperrors.ErrCodeNotFound), body.Code)
		assert.Equal(t, "missing", body.Details["id"])
	})
}

func TestHandle_MethodNotAllowed(t *testing.T) {
	h := newTestServer(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/tools", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestNewToolsHandler_DuplicateIDLastWins(t *testing.T) {
	rows := table.Table{
		{ID: "dup", Name: "first"},
		{ID: "dup", Name: "second"},
	}
	h := NewToolsHandler(rows)

	req := httptest.NewRequest(http.MethodGet, "/v1/tools/dup", nil)
	req.SetPathValue("id", "dup")
	w := httptest.NewRecorder()
	h.HandleGet(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ToolResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "second", resp.Tool.Name)
}

func TestHandleList_EmptyTable(t *testing.T) {
	h := NewServer(nil, "").Handler()

	w, resp := getList(t, h, "/v1/tools")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Tools)
}

func TestNewServer_WithConfigKeepsIdentity(t *testing.T) {
	cfg := server.NewConfig()
	cfg.Port = 9999

	h := NewServer(sampleRows(), "v9.9.9", server.WithConfig(cfg)).Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, Name, body.Name)
	assert.Equal(t, "v9.9.9", body.Version)
}
