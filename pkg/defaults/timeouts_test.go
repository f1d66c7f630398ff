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

package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"HTTPClientTimeout", HTTPClientTimeout, 10 * time.Second, 60 * time.Second},
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 15 * time.Second},
		{"HTTPResponseHeaderTimeout", HTTPResponseHeaderTimeout, 5 * time.Second, 30 * time.Second},
		{"FetchRetryInitialInterval", FetchRetryInitialInterval, 1 * time.Second, 30 * time.Second},
		{"FetchRetryMaxInterval", FetchRetryMaxInterval, 10 * time.Second, 5 * time.Minute},
		{"ServerReadTimeout", ServerReadTimeout, 1 * time.Second, 60 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 5 * time.Second, 2 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestHTTPClientTimeoutRelationships(t *testing.T) {
	if HTTPConnectTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPConnectTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPConnectTimeout, HTTPClientTimeout)
	}

	if HTTPResponseHeaderTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPResponseHeaderTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPResponseHeaderTimeout, HTTPClientTimeout)
	}
}

func TestRetryRelationships(t *testing.T) {
	if FetchRetryInitialInterval > FetchRetryMaxInterval {
		t.Errorf("FetchRetryInitialInterval (%v) should not exceed FetchRetryMaxInterval (%v)",
			FetchRetryInitialInterval, FetchRetryMaxInterval)
	}
	if FetchRetryMultiplier <= 1 {
		t.Errorf("FetchRetryMultiplier (%v) should grow the interval", FetchRetryMultiplier)
	}
	if FetchMaxAttempts < 1 {
		t.Errorf("FetchMaxAttempts (%d) must allow at least one attempt", FetchMaxAttempts)
	}
}

func TestFetchPacing(t *testing.T) {
	if FetchRateLimit <= 0 {
		t.Errorf("FetchRateLimit (%v) must be positive", FetchRateLimit)
	}
	if FetchRateBurst < 1 {
		t.Errorf("FetchRateBurst (%d) must be at least 1", FetchRateBurst)
	}
	if FetchConcurrency < 1 {
		t.Errorf("FetchConcurrency (%d) must be at least 1", FetchConcurrency)
	}
}

func TestServerTimeoutRelationships(t *testing.T) {
	if ServerReadHeaderTimeout >= ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) should be less than ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}
}
