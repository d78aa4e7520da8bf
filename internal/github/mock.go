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
	"context"
	"fmt"

	apperrors "github.com/sirseerhq/sirseer-testers/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
// It serves Pages in order, one per call, linking them with generated cursors.
type MockClient struct {
	// Pages to return, in order
	Pages [][]PullRequest

	// Error to return
	Error error

	// FailOnCall makes the n-th call (1-based) return Error; 0 fails every call.
	FailOnCall int

	// Track calls for verification
	CallCount int
	Queries   []string
	Cursors   []string
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Pages: [][]PullRequest{generateTestPRs()},
	}
}

// SearchPullRequests implements the Client interface
func (m *MockClient) SearchPullRequests(ctx context.Context, query string, opts FetchOptions) (*PullRequestPage, error) {
	// Track the call
	m.CallCount++
	m.Queries = append(m.Queries, query)
	m.Cursors = append(m.Cursors, opts.After)

	// Check for context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.Error != nil && (m.FailOnCall == 0 || m.FailOnCall == m.CallCount) {
		return nil, m.Error
	}

	index := 0
	if opts.After != "" {
		if _, err := fmt.Sscanf(opts.After, "cursor-%d", &index); err != nil {
			return nil, apperrors.NewFetchError(apperrors.ErrAPI, "invalid cursor "+opts.After, err)
		}
	}
	if index >= len(m.Pages) {
		return &PullRequestPage{}, nil
	}

	page := &PullRequestPage{
		PullRequests: m.Pages[index],
		HasNextPage:  index < len(m.Pages)-1,
	}
	if page.HasNextPage {
		page.EndCursor = fmt.Sprintf("cursor-%d", index+1)
	}

	return page, nil
}

// generateTestPRs creates sample pull request data for testing
func generateTestPRs() []PullRequest {
	return []PullRequest{
		{
			Number:    1234,
			Title:     "Add new feature for data processing",
			Milestone: "Joomla! 6.0.0",
			Comments: []Comment{
				{Author: &Author{Login: "alice"}, Body: "I have tested this item successfully", CreatedAt: "2025-01-10T09:00:00Z"},
				{Author: &Author{Login: "bob"}, Body: "Looks good to me", CreatedAt: "2025-01-10T10:00:00Z"},
			},
		},
		{
			Number:    1233,
			Title:     "Fix memory leak in parser",
			Milestone: "Joomla! 6.0.0",
			Comments: []Comment{
				{Author: nil, Body: "I have tested this item successfully", CreatedAt: "2025-01-09T08:00:00Z"},
				{Author: &Author{Login: "Charlie"}, Body: "I HAVE TESTED this item successfully", CreatedAt: "2025-01-09T09:30:00Z"},
			},
		},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithPages sets the pages to serve
func WithPages(pages ...[]PullRequest) MockClientOption {
	return func(m *MockClient) {
		m.Pages = pages
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
