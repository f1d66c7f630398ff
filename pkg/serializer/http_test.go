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

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHttpReader_Defaults(t *testing.T) {
	r := NewHttpReader()

	if r.UserAgent != HttpReaderUserAgent {
		t.Errorf("UserAgent = %q", r.UserAgent)
	}
	if r.Client.Timeout != HttpReaderDefaultTimeout {
		t.Errorf("Client.Timeout = %v", r.Client.Timeout)
	}
}

func TestNewHttpReader_WithOptions(t *testing.T) {
	r := NewHttpReader(
		WithUserAgent("custom/1.0"),
		WithTotalTimeout(3*time.Second),
		WithResponseHeaderTimeout(2*time.Second),
	)

	if r.UserAgent != "custom/1.0" {
		t.Errorf("UserAgent = %q", r.UserAgent)
	}
	if r.Client.Timeout != 3*time.Second {
		t.Errorf("Client.Timeout = %v", r.Client.Timeout)
	}
	tr, ok := r.Client.Transport.(*http.Transport)
	if !ok {
		t.Fatal("expected *http.Transport")
	}
	if tr.ResponseHeaderTimeout != 2*time.Second {
		t.Errorf("ResponseHeaderTimeout = %v", tr.ResponseHeaderTimeout)
	}
}

func TestNewHttpReader_WithCustomClient(t *testing.T) {
	custom := &http.Client{Timeout: 42 * time.Second}
	r := NewHttpReader(WithClient(custom))

	if r.Client != custom {
		t.Error("expected custom client to be used")
	}
	if r.Client.Timeout != 42*time.Second {
		t.Errorf("custom client timeout overridden: %v", r.Client.Timeout)
	}
}

func TestHttpReader_ReadWithHeaders(t *testing.T) {
	var gotUA, gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotID = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	r := NewHttpReader()
	data, err := r.ReadWithHeaders(context.Background(), srv.URL, http.Header{"X-Request-Id": {"abc"}})
	if err != nil {
		t.Fatalf("ReadWithHeaders failed: %v", err)
	}
	if string(data) != "ok" {
		t.Errorf("body = %q", data)
	}
	if gotUA != HttpReaderUserAgent {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if gotID != "abc" {
		t.Errorf("X-Request-Id = %q", gotID)
	}
}

func TestHttpReader_StatusError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		retryAfter string
		wantServer bool
		wantDelay  time.Duration
	}{
		{"not found", http.StatusNotFound, "", false, 0},
		{"bad gateway", http.StatusBadGateway, "", true, 0},
		{"throttled", http.StatusTooManyRequests, "7", false, 7 * time.Second},
		{"bad retry-after", http.StatusServiceUnavailable, "soon", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := NewHttpReader().ReadWithContext(context.Background(), srv.URL)

			var se *StatusError
			if !errors.As(err, &se) {
				t.Fatalf("expected *StatusError, got %v", err)
			}
			if se.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", se.StatusCode, tt.status)
			}
			if se.IsServerError() != tt.wantServer {
				t.Errorf("IsServerError() = %v, want %v", se.IsServerError(), tt.wantServer)
			}
			if se.RetryAfter != tt.wantDelay {
				t.Errorf("RetryAfter = %v, want %v", se.RetryAfter, tt.wantDelay)
			}
		})
	}
}

func TestHttpReader_ReadWithContext_Errors(t *testing.T) {
	r := NewHttpReader()

	if _, err := r.ReadWithContext(context.Background(), ""); err == nil {
		t.Error("expected error for empty url")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	defer srv.Close()
	if _, err := r.ReadWithContext(ctx, srv.URL); err == nil {
		t.Error("expected error for canceled context")
	}
}
