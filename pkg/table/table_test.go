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
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dome-metrics/biotools/pkg/biotools"
	apperrors "github.com/dome-metrics/biotools/pkg/errors"
	"github.com/dome-metrics/biotools/pkg/serializer"
	"github.com/dome-metrics/biotools/pkg/taxonomy"
)

func decodeTool(t *testing.T, s string) biotools.Tool {
	t.Helper()
	var tool biotools.Tool
	require.NoError(t, json.Unmarshal([]byte(s), &tool))
	return tool
}

func TestFromTool_Classification(t *testing.T) {
	tests := []struct {
		name     string
		topics   []string
		wantGen  bool
		wantProt bool
		wantML   bool
	}{
		{"genomics only", []string{"0622"}, true, false, false},
		{"proteomics only", []string{"0121"}, false, true, false},
		{"shared topic", []string{"3922"}, true, true, false},
		{"machine learning", []string{"3474"}, false, false, true},
		{"all three", []string{"0797", "0121", "3474"}, true, true, true},
		{"unrelated", []string{"0091"}, false, false, false},
		{"no topics", []string{}, false, false, false},
	}

	tax := taxonomy.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := biotools.Tool{BiotoolsID: "x", Name: "X", Topic: []biotools.Topic{}}
			for _, id := range tt.topics {
				tool.Topic = append(tool.Topic, biotools.Topic{URI: taxonomy.TopicURI(id)})
			}

			row, err := FromTool(&tool, tax)
			require.NoError(t, err)
			assert.Equal(t, tt.wantGen, row.IsGenomics)
			assert.Equal(t, tt.wantProt, row.IsProteomics)
			assert.Equal(t, tt.wantML, row.IsMachineLearning)
		})
	}
}

func TestFromTool_Links(t *testing.T) {
	tool := decodeTool(t, `{
		"biotoolsID": "x",
		"name": "X",
		"topic": [{"uri": "http://edamontology.org/topic_0622"}],
		"documentation": [
			{"url": "https://docs/1", "type": ["General"]},
			{"url": "https://docs/2", "type": ["Manual"]}
		],
		"link": [
			{"type": "Repository", "url": "A"},
			{"type": "Other", "url": "B"},
			{"type": "SourceRepository", "url": "C"}
		]
	}`)

	row, err := FromTool(&tool, taxonomy.Default())
	require.NoError(t, err)

	assert.Equal(t, "x", row.ID)
	assert.Equal(t, "X", row.Name)
	assert.Equal(t, "https://docs/1,https://docs/2", row.Documentation)
	assert.Equal(t, "A,C", row.Repository)
}

func TestFromTool_MissingFieldsDefaultEmpty(t *testing.T) {
	tool := decodeTool(t, `{"topic": []}`)

	row, err := FromTool(&tool, taxonomy.Default())
	require.NoError(t, err)
	assert.Equal(t, Row{}, row)
}

func TestFromTools_MissingTopic(t *testing.T) {
	tools := []biotools.Tool{
		decodeTool(t, `{"biotoolsID": "ok", "topic": []}`),
		decodeTool(t, `{"biotoolsID": "broken"}`),
	}

	table, err := FromTools(tools, taxonomy.Default())
	require.Error(t, err)
	assert.Nil(t, table)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeMalformedData))

	var se *apperrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "broken", se.Context["biotoolsID"])
	assert.Equal(t, 1, se.Context["index"])
}

func TestFromTools_PreservesOrder(t *testing.T) {
	tools := []biotools.Tool{
		{BiotoolsID: "b", Topic: []biotools.Topic{}},
		{BiotoolsID: "a", Topic: []biotools.Topic{}},
	}

	table, err := FromTools(tools, nil)
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, "b", table[0].ID)
	assert.Equal(t, "a", table[1].ID)
}

func TestTable_TSV(t *testing.T) {
	table := Table{
		{ID: "a", Name: "Alpha", IsGenomics: true, Documentation: "d1,d2", Repository: "r"},
		{ID: "b", Name: "Beta", IsProteomics: true, IsMachineLearning: true},
	}

	var buf bytes.Buffer
	require.NoError(t, serializer.NewWriter(serializer.FormatTSV, &buf).Serialize(context.Background(), table))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id\tname\tis_genomics\tis_proteomics\tis_machine_learning\tdocumentation\trepository", lines[0])
	assert.Equal(t, "a\tAlpha\ttrue\tfalse\tfalse\td1,d2\tr", lines[1])
	assert.Equal(t, "b\tBeta\tfalse\ttrue\ttrue\t\t", lines[2])
}

func TestTable_DecodeRecords(t *testing.T) {
	t.Run("capitalized booleans and reordered columns", func(t *testing.T) {
		header := []string{"name", "id", "is_genomics", "is_proteomics", "is_machine_learning", "repository", "documentation"}
		records := [][]string{{"Alpha", "a", "True", "False", "false", "r", "d"}}

		var got Table
		require.NoError(t, got.DecodeRecords(header, records))
		assert.Equal(t, Table{{ID: "a", Name: "Alpha", IsGenomics: true, Documentation: "d", Repository: "r"}}, got)
	})

	t.Run("missing column", func(t *testing.T) {
		var got Table
		err := got.DecodeRecords([]string{"id", "name"}, nil)
		assert.ErrorContains(t, err, "is_genomics")
	})

	t.Run("bad boolean", func(t *testing.T) {
		var got Table
		err := got.DecodeRecords(Columns, [][]string{{"a", "A", "yes", "false", "false", "", ""}})
		assert.ErrorContains(t, err, "is_genomics")
	})
}

func TestTable_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.dataframe.tsv")
	table := Table{
		{ID: "a", Name: "Alpha", IsGenomics: true, Repository: "https://github.com/a/a"},
		{ID: "b", Name: "Name with \"quotes\"", Documentation: "x,y"},
	}

	require.NoError(t, serializer.WriteFile(context.Background(), path, serializer.FormatTSV, table))

	got, err := serializer.FromFile[Table](path)
	require.NoError(t, err)
	assert.Equal(t, table, *got)
}

func TestFromTools_Properties(t *testing.T) {
	tax := taxonomy.Default()
	ids := append(append(tax.Genomics.URIs(), tax.Proteomics.URIs()...), tax.MachineLearning.URIs()...)
	ids = append(ids, taxonomy.TopicURI("0091"), taxonomy.TopicURI("3070"))

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		tools := make([]biotools.Tool, n)
		for i := range tools {
			uris := rapid.SliceOfN(rapid.SampledFrom(ids), 0, 5).Draw(rt, "topics")
			topics := make([]biotools.Topic, 0, len(uris))
			for _, u := range uris {
				topics = append(topics, biotools.Topic{URI: u})
			}
			nLinks := rapid.IntRange(0, 4).Draw(rt, "links")
			links := make([]biotools.Link, 0, nLinks)
			wantRepos := 0
			for j := 0; j < nLinks; j++ {
				typ := rapid.SampledFrom([]string{"Repository", "Mirror", "Source code Repository", "Issue tracker"}).Draw(rt, "type")
				if strings.Contains(typ, "Repository") {
					wantRepos++
				}
				links = append(links, biotools.Link{URL: "u", Type: biotools.TypeList{typ}})
			}
			tools[i] = biotools.Tool{BiotoolsID: rapid.StringMatching(`[a-z]{1,8}`).Draw(rt, "id"), Topic: topics, Link: links}

			row, err := FromTool(&tools[i], tax)
			if err != nil {
				rt.Fatalf("unexpected error: %v", err)
			}
			set := tools[i].TopicURIs()
			if row.IsGenomics != tax.Genomics.Matches(set) {
				rt.Fatalf("genomics flag mismatch for %v", uris)
			}
			if got := len(strings.Split(row.Repository, Separator)); wantRepos > 0 && got != wantRepos {
				rt.Fatalf("repository has %d entries, want %d", got, wantRepos)
			}
			if wantRepos == 0 && row.Repository != "" {
				rt.Fatalf("repository should be empty, got %q", row.Repository)
			}
		}

		table, err := FromTools(tools, tax)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		if len(table) != len(tools) {
			rt.Fatalf("got %d rows, want %d", len(table), len(tools))
		}
		for i := range tools {
			if table[i].ID != tools[i].BiotoolsID {
				rt.Fatalf("row %d out of order", i)
			}
		}
	})
}
