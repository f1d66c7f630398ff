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

package biotools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Topic is an EDAM topic annotation.
type Topic struct {
	URI  string `json:"uri"`
	Term string `json:"term,omitempty"`
}

// Documentation is a documentation link of a tool.
type Documentation struct {
	URL  string   `json:"url"`
	Type TypeList `json:"type,omitempty"`
}

// Link is a miscellaneous link of a tool, such as its source repository.
type Link struct {
	URL  string   `json:"url"`
	Type TypeList `json:"type,omitempty"`
}

// TypeList holds the "type" of a link. The registry serves it as an array of
// strings; older exports use a single string. Both decode into TypeList.
type TypeList []string

// UnmarshalJSON accepts a string, an array of strings or null.
func (l *TypeList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = TypeList{s}
		return nil
	}
	var ss []string
	if err := json.Unmarshal(data, &ss); err != nil {
		return fmt.Errorf("link type must be a string or a list of strings: %w", err)
	}
	*l = ss
	return nil
}

// Contains reports whether any type value contains substr (case-sensitive).
func (l TypeList) Contains(substr string) bool {
	for _, t := range l {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}

// Tool is one registry entry.
//
// Topic is nil when the record had no "topic" field (or it was null) and
// non-nil, possibly empty, otherwise.
type Tool struct {
	BiotoolsID    string          `json:"biotoolsID"`
	Name          string          `json:"name"`
	Topic         []Topic         `json:"topic"`
	Documentation []Documentation `json:"documentation"`
	Link          []Link          `json:"link"`

	raw json.RawMessage
}

// toolFields has Tool's fields without its methods.
type toolFields struct {
	BiotoolsID    string          `json:"biotoolsID"`
	Name          string          `json:"name"`
	Topic         *[]Topic        `json:"topic"`
	Documentation []Documentation `json:"documentation"`
	Link          []Link          `json:"link"`
}

// HasTopic reports whether the record declared a topic list.
func (t *Tool) HasTopic() bool {
	return t.Topic != nil
}

// TopicURIs returns the set of topic URIs declared on the tool.
func (t *Tool) TopicURIs() map[string]struct{} {
	out := make(map[string]struct{}, len(t.Topic))
	for _, tp := range t.Topic {
		out[tp.URI] = struct{}{}
	}
	return out
}

// UnmarshalJSON decodes the modelled fields and keeps the original object.
func (t *Tool) UnmarshalJSON(data []byte) error {
	var f toolFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	t.BiotoolsID = f.BiotoolsID
	t.Name = f.Name
	t.Topic = nil
	if f.Topic != nil {
		t.Topic = *f.Topic
		if t.Topic == nil {
			t.Topic = []Topic{}
		}
	}
	t.Documentation = f.Documentation
	t.Link = f.Link
	t.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes the original registry object when the tool was decoded
// from one, and the modelled fields otherwise.
func (t Tool) MarshalJSON() ([]byte, error) {
	if len(t.raw) > 0 {
		return t.raw, nil
	}
	f := toolFields{
		BiotoolsID:    t.BiotoolsID,
		Name:          t.Name,
		Documentation: t.Documentation,
		Link:          t.Link,
	}
	if t.Topic != nil {
		f.Topic = &t.Topic
	}
	return json.Marshal(f)
}

// Page is one page of the registry search endpoint.
type Page struct {
	List  *[]Tool `json:"list"`
	Count int     `json:"count"`
	Next  *string `json:"next"`
}

// HasNext reports whether another page follows.
func (p *Page) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}
