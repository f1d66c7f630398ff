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

import "time"

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the total timeout for a single registry page request.
	HTTPClientTimeout = 20 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	// Search pages are rendered server side and can take a while.
	HTTPResponseHeaderTimeout = 15 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// Fetch retry parameters for transient registry failures.
const (
	// FetchRetryInitialInterval is the delay before the first retry of a page.
	FetchRetryInitialInterval = 5 * time.Second

	// FetchRetryMaxInterval caps the exponential growth of the retry delay.
	FetchRetryMaxInterval = 60 * time.Second

	// FetchRetryMultiplier is the growth factor between consecutive retries.
	FetchRetryMultiplier = 2.0

	// FetchMaxAttempts is the number of attempts per page, including the first one.
	FetchMaxAttempts = 5
)

// Server timeouts for the table API.
const (
	// ServerReadTimeout is the maximum duration for reading a request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the grace period for in-flight requests on shutdown.
	ServerShutdownTimeout = 30 * time.Second
)
