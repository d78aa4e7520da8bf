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
	"fmt"
	"net/http"
	"net/url"
	"testing"
)

func TestStatusError_Reason(t *testing.T) {
	tests := []struct {
		name string
		err  *StatusError
		want string
	}{
		{
			name: "status line reason",
			err:  &StatusError{StatusCode: 401, Status: "401 Unauthorized"},
			want: "Unauthorized",
		},
		{
			name: "custom reason phrase",
			err:  &StatusError{StatusCode: 502, Status: "502 Upstream Went Away"},
			want: "Upstream Went Away",
		},
		{
			name: "empty status falls back to StatusText",
			err:  &StatusError{StatusCode: 503},
			want: "Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Reason(); got != tt.want {
				t.Errorf("Reason() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewStatusError(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusForbidden, Status: "403 Forbidden"}
	err := NewStatusError(resp)
	if got, want := err.Error(), "unexpected status 403 Forbidden"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestGitHubErrorInspector_StatusError(t *testing.T) {
	inspector := NewInspector()
	statusErr := &StatusError{StatusCode: 500, Status: "500 Internal Server Error"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "direct",
			err:  statusErr,
			want: true,
		},
		{
			name: "inside url.Error",
			err:  &url.Error{Op: "Post", URL: "https://api.github.com/graphql", Err: statusErr},
			want: true,
		},
		{
			name: "plain error",
			err:  errors.New("something went wrong"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := inspector.StatusError(tt.err)
			if ok != tt.want {
				t.Fatalf("StatusError() ok = %v, want %v", ok, tt.want)
			}
			if ok && got.StatusCode != 500 {
				t.Errorf("StatusCode = %d, want 500", got.StatusCode)
			}
		})
	}
}

func TestGitHubErrorInspector_IsAuthError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "401 status",
			err:  &StatusError{StatusCode: 401, Status: "401 Unauthorized"},
			want: true,
		},
		{
			name: "403 status",
			err:  fmt.Errorf("post: %w", &StatusError{StatusCode: 403, Status: "403 Forbidden"}),
			want: true,
		},
		{
			name: "500 status",
			err:  &StatusError{StatusCode: 500, Status: "500 Internal Server Error"},
			want: false,
		},
		{
			name: "bad credentials message",
			err:  errors.New("Bad credentials"),
			want: true,
		},
		{
			name: "not an auth error",
			err:  errors.New("something went wrong"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsNetworkError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "connection refused",
			err:  errors.New("dial tcp 127.0.0.1:443: connection refused"),
			want: true,
		},
		{
			name: "no such host",
			err:  errors.New("dial tcp: lookup api.github.com: no such host"),
			want: true,
		},
		{
			name: "tls handshake error",
			err:  errors.New("tls handshake timeout"),
			want: true,
		},
		{
			name: "url error",
			err:  &url.Error{Op: "Post", URL: "https://api.github.com/graphql", Err: errors.New("EOF")},
			want: true,
		},
		{
			name: "status error inside url error",
			err:  &url.Error{Op: "Post", URL: "https://api.github.com/graphql", Err: &StatusError{StatusCode: 502}},
			want: false,
		},
		{
			name: "graphql error message",
			err:  errors.New("Could not resolve to a Repository"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNetworkError(tt.err); got != tt.want {
				t.Errorf("IsNetworkError() = %v, want %v", got, tt.want)
			}
		})
	}
}
