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
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dome-metrics/biotools/pkg/biotools"
)

type fakeFetcher struct {
	mu      sync.Mutex
	results map[string][]biotools.Tool
	errs    map[string]error
	delay   map[string]time.Duration
	calls   []string

	inFlight    int
	maxInFlight int
}

func (f *fakeFetcher) FetchTopic(ctx context.Context, topicID string) ([]biotools.Tool, error) {
	f.mu.Lock()
	f.calls = append(f.calls, topicID)
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	d := f.delay[topicID]
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := f.errs[topicID]; err != nil {
		return nil, err
	}
	return f.results[topicID], nil
}

func TestNew_Defaults(t *testing.T) {
	c := New(&fakeFetcher{})
	assert.Equal(t, 2, c.Concurrency)
	assert.Empty(t, c.Topics)

	c = New(&fakeFetcher{}, WithConcurrency(0), WithTopics([]string{"0622"}))
	assert.Equal(t, 2, c.Concurrency)
	assert.Equal(t, []string{"0622"}, c.Topics)
}

func TestCollector_Collect_MergesInTopicOrder(t *testing.T) {
	f := &fakeFetcher{
		results: map[string][]biotools.Tool{
			"0121": {tool("a", "from-proteomics"), tool("b", "B")},
			"0622": {tool("c", "C"), tool("a", "from-genomics")},
		},
		// the first topic finishes last
		delay: map[string]time.Duration{"0121": 20 * time.Millisecond},
	}

	c := New(f, WithTopics([]string{"0121", "0622"}), WithConcurrency(2))
	got, err := c.Collect(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].BiotoolsID)
	assert.Equal(t, "from-genomics", got[0].Name)
	assert.Equal(t, "b", got[1].BiotoolsID)
	assert.Equal(t, "c", got[2].BiotoolsID)
}

func TestCollector_Collect_RespectsConcurrency(t *testing.T) {
	topics := []string{"1", "2", "3", "4", "5", "6"}
	f := &fakeFetcher{delay: map[string]time.Duration{}}
	for _, tp := range topics {
		f.delay[tp] = 5 * time.Millisecond
	}

	_, err := New(f, WithTopics(topics), WithConcurrency(2)).Collect(context.Background())
	require.NoError(t, err)

	assert.Len(t, f.calls, len(topics))
	assert.LessOrEqual(t, f.maxInFlight, 2)
}

func TestCollector_Collect_DuplicateTopic(t *testing.T) {
	f := &fakeFetcher{
		results: map[string][]biotools.Tool{
			"3922": {tool("x", "X")},
		},
	}

	got, err := New(f, WithTopics([]string{"3922", "3922"})).Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Len(t, f.calls, 2)
}

func TestCollector_Collect_Error(t *testing.T) {
	boom := errors.New("registry down")
	f := &fakeFetcher{
		errs: map[string]error{"0622": boom},
		results: map[string][]biotools.Tool{
			"0121": {tool("a", "A")},
		},
	}

	got, err := New(f, WithTopics([]string{"0121", "0622"})).Collect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "0622")
	assert.Nil(t, got)
}

func TestCollector_Collect_NoFetcher(t *testing.T) {
	_, err := (&Collector{Topics: []string{"0622"}}).Collect(context.Background())
	assert.Error(t, err)
}

func TestCollector_Collect_NoTopics(t *testing.T) {
	got, err := New(&fakeFetcher{}).Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
