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

// Package testutil provides common test helpers for sirseer-testers
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// GraphQLRequest is a request received by a MockServer.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	Authorization string                 `json:"-"`
	UserAgent     string                 `json:"-"`
	ContentType   string                 `json:"-"`
	Method        string                 `json:"-"`
}

// MockServer records GraphQL requests and answers them from a script.
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []GraphQLRequest
}

// Requests returns a copy of the requests received so far.
func (s *MockServer) Requests() []GraphQLRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]GraphQLRequest(nil), s.requests...)
}

// GraphQLURL is the endpoint clients should be pointed at.
func (s *MockServer) GraphQLURL() string {
	return s.URL + "/graphql"
}

func (s *MockServer) record(t *testing.T, r *http.Request) int {
	t.Helper()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		t.Errorf("Failed to read request body: %v", err)
	}

	var req GraphQLRequest
	if err := json.Unmarshal(body, &req); err != nil {
		t.Errorf("Request body is not JSON: %v", err)
	}
	req.Authorization = r.Header.Get("Authorization")
	req.UserAgent = r.Header.Get("User-Agent")
	req.ContentType = r.Header.Get("Content-Type")
	req.Method = r.Method

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return len(s.requests)
}

// NewPagedServer serves responses[i] to the i-th request. Requests beyond the
// script get the last response again.
func NewPagedServer(t *testing.T, responses ...map[string]interface{}) *MockServer {
	t.Helper()

	s := &MockServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := s.record(t, r)
		if len(responses) == 0 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if n > len(responses) {
			n = len(responses)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(responses[n-1])
	}))
	t.Cleanup(s.Close)

	return s
}

// NewErrorServer creates a mock server that always returns the specified status
func NewErrorServer(t *testing.T, statusCode int) *MockServer {
	t.Helper()

	s := &MockServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.record(t, r)
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(`{"message": "` + http.StatusText(statusCode) + `"}`))
	}))
	t.Cleanup(s.Close)

	return s
}
