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

// Package taxonomy defines the EDAM topic sets used to classify registry tools
// into scientific subdomains.
//
// A tool belongs to a subdomain when one of its declared topic URIs equals
// EDAMTopicPrefix followed by one of the subdomain's topic identifiers.
// Identifiers are compared as strings ("0622"), never as numbers.
//
// Sets may overlap: proteogenomics (3922) is listed under both genomics and
// proteomics and therefore sets both flags.
package taxonomy
