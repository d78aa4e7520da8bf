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

package giterror

import (
	"errors"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// StatusError is returned by the API transport when GitHub answers with a
// non-200 status. It carries only the status, never request headers.
type StatusError struct {
	StatusCode int
	Status     string
}

// NewStatusError captures the status of resp.
func NewStatusError(resp *http.Response) *StatusError {
	return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
}

func (e *StatusError) Error() string {
	return "unexpected status " + strconv.Itoa(e.StatusCode) + " " + e.Reason()
}

// Reason returns the reason phrase of the status line, e.g. "Unauthorized".
func (e *StatusError) Reason() string {
	reason := strings.TrimSpace(strings.TrimPrefix(e.Status, strconv.Itoa(e.StatusCode)))
	if reason == "" {
		reason = http.StatusText(e.StatusCode)
	}
	return reason
}

// Inspector provides methods for analyzing GitHub API errors.
type Inspector interface {
	// StatusError returns the HTTP status failure in err's chain, if any.
	StatusError(err error) (*StatusError, bool)

	// IsAuthError returns true if the error represents an authentication or authorization failure.
	IsAuthError(err error) bool

	// IsNetworkError returns true if the error represents a network connectivity error.
	IsNetworkError(err error) bool
}

// GitHubErrorInspector implements the Inspector interface for GitHub API errors.
type GitHubErrorInspector struct{}

// NewInspector creates a new GitHubErrorInspector.
func NewInspector() Inspector {
	return &GitHubErrorInspector{}
}

// StatusError unwraps a *StatusError from err.
func (i *GitHubErrorInspector) StatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// IsAuthError checks if the error is an authentication or authorization error.
func (i *GitHubErrorInspector) IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	if statusErr, ok := i.StatusError(err); ok {
		return statusErr.StatusCode == http.StatusUnauthorized ||
			statusErr.StatusCode == http.StatusForbidden
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "bad credentials") ||
		strings.Contains(errStr, "unauthorized")
}

// IsNetworkError checks if the error is a network connectivity error.
// Status failures travel inside *url.Error too, so they are excluded first.
func (i *GitHubErrorInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := i.StatusError(err); ok {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "tls handshake") ||
		strings.Contains(errStr, "network is unreachable")
}
