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

package taxonomy

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/dome-metrics/biotools/pkg/serializer"
)

// EDAMTopicPrefix is the namespace of EDAM topic URIs.
const EDAMTopicPrefix = "http://edamontology.org/topic_"

var topicIDPattern = regexp.MustCompile(`^[0-9]{4}$`)

// Subdomain names a classification column.
type Subdomain string

const (
	Genomics        Subdomain = "genomics"
	Proteomics      Subdomain = "proteomics"
	MachineLearning Subdomain = "machineLearning"
)

// TopicURI returns the EDAM URI of a topic identifier.
func TopicURI(id string) string {
	return EDAMTopicPrefix + id
}

// Set is an ordered list of EDAM topic identifiers.
type Set []string

// URIs returns the topic URIs of the set in order.
func (s Set) URIs() []string {
	out := make([]string, len(s))
	for i, id := range s {
		out[i] = TopicURI(id)
	}
	return out
}

// Contains reports whether uri is the URI of one of the set's topics.
func (s Set) Contains(uri string) bool {
	for _, id := range s {
		if TopicURI(id) == uri {
			return true
		}
	}
	return false
}

// Matches reports whether any of the given URIs belongs to the set.
func (s Set) Matches(uris map[string]struct{}) bool {
	for _, id := range s {
		if _, ok := uris[TopicURI(id)]; ok {
			return true
		}
	}
	return false
}

// Taxonomy groups the three subdomain topic sets.
type Taxonomy struct {
	Genomics        Set `json:"genomics" yaml:"genomics"`
	Proteomics      Set `json:"proteomics" yaml:"proteomics"`
	MachineLearning Set `json:"machineLearning" yaml:"machineLearning"`
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	return &Taxonomy{
		Genomics: Set{
			"0622", // genomics
			"0797", // comparative genomics
			"3173", // epigenomics
			"3974", // epistasis
			"0085", // functional genomics
			"3174", // metagenomics
			"3943", // paleogenomics
			"0208", // pharmacogenomics
			"0194", // phylogenomics
			"3796", // population genomics
			"3922", // proteogenomics
			"0122", // structural genomics
			"3308", // transcriptomics
			"3941", // metatranscriptomics
		},
		Proteomics: Set{
			"0121", // proteomics
			"3922", // proteogenomics, filed under genomics in EDAM but counts for both
		},
		MachineLearning: Set{
			"3474", // machine learning
		},
	}
}

// FetchOrder returns the topics queried against the registry: proteomics
// topics first, then genomics topics. Topics present in both sets are queried
// twice, matching the order in which results are merged.
func (t *Taxonomy) FetchOrder() []string {
	out := make([]string, 0, len(t.Proteomics)+len(t.Genomics))
	out = append(out, t.Proteomics...)
	out = append(out, t.Genomics...)
	return out
}

// Set returns the topic set of a subdomain.
func (t *Taxonomy) Set(d Subdomain) (Set, error) {
	switch d {
	case Genomics:
		return t.Genomics, nil
	case Proteomics:
		return t.Proteomics, nil
	case MachineLearning:
		return t.MachineLearning, nil
	default:
		return nil, fmt.Errorf("unknown subdomain: %q", d)
	}
}

// Validate checks that every set is non-empty and holds 4-digit identifiers
// without duplicates.
func (t *Taxonomy) Validate() error {
	sets := []struct {
		name Subdomain
		set  Set
	}{
		{Genomics, t.Genomics},
		{Proteomics, t.Proteomics},
		{MachineLearning, t.MachineLearning},
	}

	for _, s := range sets {
		if len(s.set) == 0 {
			return fmt.Errorf("taxonomy %s: no topics", s.name)
		}
		for i, id := range s.set {
			if !topicIDPattern.MatchString(id) {
				return fmt.Errorf("taxonomy %s: invalid topic id %q", s.name, id)
			}
			if slices.Contains(s.set[:i], id) {
				return fmt.Errorf("taxonomy %s: duplicate topic id %q", s.name, id)
			}
		}
	}
	return nil
}

// Load reads a taxonomy from a YAML or JSON file (or URL) and validates it.
// An empty path returns the default taxonomy.
func Load(path string) (*Taxonomy, error) {
	if path == "" {
		return Default(), nil
	}

	t, err := serializer.FromFile[Taxonomy](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
