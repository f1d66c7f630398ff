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

// Package table derives the classified tool table from registry records.
//
// Each record becomes one Row holding its identifier and name, one flag per
// taxonomy subdomain and two comma-joined URL lists:
//
//	id  name  is_genomics  is_proteomics  is_machine_learning  documentation  repository
//
// A flag is set when the record declares at least one topic of that
// subdomain. The documentation column joins every documentation URL; the
// repository column joins the URLs of links whose type contains
// "Repository". Both keep the order of the record.
//
// Table implements serializer.Tabular and *Table implements
// serializer.TabularDecoder, so the table is written and read back with the
// serializer package in FormatTSV.
package table
