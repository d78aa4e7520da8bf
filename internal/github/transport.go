// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package github

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/sirseerhq/sirseer-testers/internal/giterror"
	"github.com/sirseerhq/sirseer-testers/pkg/version"
)

// maxResponseSize caps a single GraphQL response body.
const maxResponseSize = 10 * 1024 * 1024

// newHTTPClient builds the transport stack used for GraphQL requests:
// oauth2 bearer auth, then apiTransport, then a pooled http.Transport.
func newHTTPClient(token string) *http.Client {
	base := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        2,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   &apiTransport{base: base},
		},
	}
}

// apiTransport adds standard headers, rejects non-200 responses and limits
// response size.
type apiTransport struct {
	base http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *apiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	logger.WithField("status", resp.StatusCode).Debug("GraphQL response received")

	if resp.StatusCode != http.StatusOK {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		resp.Body.Close()
		return nil, giterror.NewStatusError(resp)
	}

	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      maxResponseSize,
		}
	}

	return resp, nil
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	// Calculate how much we can read
	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}
