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

// Package github provides types and interfaces for interacting with the GitHub API.
package github

// SearchParameters are the resolved inputs of the pull request search.
type SearchParameters struct {
	Owner     string
	Repo      string
	Base      string
	Milestone string

	// MergedSince is an already validated YYYY-MM-DD date, or empty.
	MergedSince string

	// Keywords must all appear in a comment for it to count.
	Keywords []string
}

// PullRequest represents a merged pull request returned by the search, with
// the comments requested alongside it.
type PullRequest struct {
	Number    int
	Title     string
	Milestone string
	Comments  []Comment
}

// Comment is a single issue comment on a pull request.
type Comment struct {
	// Author is nil when the account no longer exists (shown as "ghost" on GitHub).
	Author    *Author
	Body      string
	CreatedAt string
}

// Author represents the author of a comment.
type Author struct {
	Login string
}

// PullRequestPage represents a page of pull requests from a search query.
// HasNextPage and EndCursor drive the pagination loop.
type PullRequestPage struct {
	PullRequests []PullRequest
	HasNextPage  bool
	EndCursor    string
}

// FetchOptions configures a single page request.
type FetchOptions struct {
	// After is the cursor for pagination.
	// Empty string sends a null cursor and fetches the first page.
	After string
}
