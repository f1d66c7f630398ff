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

package serializer

import "context"

// Serializer is an interface for serializing data.
// Implementations of this interface can serialize data to various formats
// such as JSON, YAML, TSV or plain text.
//
// The context parameter is used for cancellation and timeouts for implementations
// that perform slow I/O.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}

// Tabular is implemented by values that can be written in FormatTSV.
// Header returns the column names and Records one string slice per row,
// each with the same length as the header.
type Tabular interface {
	Header() []string
	Records() [][]string
}

// TabularDecoder is implemented by pointers that can be populated from FormatTSV
// input. The header is passed as read from the first line of the input.
type TabularDecoder interface {
	DecodeRecords(header []string, records [][]string) error
}
