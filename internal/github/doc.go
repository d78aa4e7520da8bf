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

// Package github provides a client for GitHub's GraphQL search API, tailored
// to collecting comments on merged pull requests of a milestone.
//
// The package includes:
//   - BuildSearchQuery, which turns SearchParameters into a search string
//   - A Client interface and its GraphQL implementation on shurcooL/graphql
//   - FetchAll, which follows the search cursor until the last page
//   - A mock client for testing
//
// Basic usage:
//
//	client := github.NewGraphQLClient("your-github-token", "https://api.github.com/graphql")
//	query := github.BuildSearchQuery(params)
//	prs, err := github.FetchAll(ctx, client, query, func(page *github.PullRequestPage) {
//	    fmt.Printf("Found %d PRs\n", len(page.PullRequests))
//	})
//	if err != nil {
//	    // Handle error
//	}
package github
