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
	"github.com/dome-metrics/biotools/pkg/biotools"
)

// Deduplicate returns one record per biotoolsID.
//
// For an ID that occurs more than once the last record wins and is placed
// where the ID first occurred. The input is not modified.
func Deduplicate(tools []biotools.Tool) []biotools.Tool {
	index := make(map[string]int, len(tools))
	out := make([]biotools.Tool, 0, len(tools))

	for _, t := range tools {
		if i, ok := index[t.BiotoolsID]; ok {
			out[i] = t
			continue
		}
		index[t.BiotoolsID] = len(out)
		out = append(out, t)
	}

	return out
}
