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
	"log/slog"
	"net/http"

	apperrors "github.com/dome-metrics/biotools/pkg/errors"
	"github.com/dome-metrics/biotools/pkg/header"
	"github.com/dome-metrics/biotools/pkg/serializer"
	"github.com/dome-metrics/biotools/pkg/server"
	"github.com/dome-metrics/biotools/pkg/table"
)

// ListResponse is the body of GET /v1/tools.
type ListResponse struct {
	header.Header
	Query *Query      `json:"query"`
	Total int         `json:"total"`
	Count int         `json:"count"`
	Tools table.Table `json:"tools"`
}

// ToolResponse is the body of GET /v1/tools/{id}.
type ToolResponse struct {
	header.Header
	Tool table.Row `json:"tool"`
}

// ToolsHandler serves a fixed table.
type ToolsHandler struct {
	rows  table.Table
	index map[string]int

	// CacheTTL is the max-age in seconds sent with successful responses.
	CacheTTL int

	// Version is stamped into response metadata.
	Version string
}

// NewToolsHandler indexes rows by ID. Rows are deduplicated upstream, but
// should a duplicate ID appear the last row is served by HandleGet.
func NewToolsHandler(rows table.Table) *ToolsHandler {
	index := make(map[string]int, len(rows))
	for i, row := range rows {
		index[row.ID] = i
	}
	return &ToolsHandler{
		rows:     rows,
		index:    index,
		CacheTTL: 300,
	}
}

// Routes returns the handlers keyed by ServeMux pattern.
func (h *ToolsHandler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /v1/tools":      h.HandleList,
		"GET /v1/tools/{id}": h.HandleGet,
	}
}

// HandleList handles GET /v1/tools.
func (h *ToolsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q, err := ParseQuery(r)
	if err != nil {
		slog.Debug("failed to parse query", "error", err)
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			err.Error(), false, nil)
		return
	}

	page, total := q.Apply(h.rows)

	resp := ListResponse{
		Query: q,
		Total: total,
		Count: len(page),
		Tools: page,
	}
	resp.Init(header.KindToolList, h.Version)

	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /v1/tools/{id}.
func (h *ToolsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	i, ok := h.index[id]
	if !ok {
		server.WriteError(w, r, http.StatusNotFound, apperrors.ErrCodeNotFound,
			fmt.Sprintf("tool %q not found", id), false, map[string]any{"id": id})
		return
	}

	resp := ToolResponse{Tool: h.rows[i]}
	resp.Init(header.KindTool, h.Version)

	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, resp)
}

func (h *ToolsHandler) setCacheHeaders(w http.ResponseWriter) {
	if h.CacheTTL > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", h.CacheTTL))
	}
}
