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
	"errors"

	apperrors "github.com/sirseerhq/sirseer-testers/internal/errors"
)

// FetchAll follows the search cursor from a null start until hasNextPage is
// false and returns every pull request in the order received. onPage, if
// non-nil, is called once per page before its nodes are accumulated. The
// first error aborts the traversal and is returned as is.
func FetchAll(ctx context.Context, client Client, query string, onPage func(*PullRequestPage)) ([]PullRequest, error) {
	var (
		all     []PullRequest
		cursor  = ""
		hasMore = true
		pageNum = 0
	)

	for hasMore {
		pageNum++
		page, err := client.SearchPullRequests(ctx, query, FetchOptions{After: cursor})
		if err != nil {
			return nil, err
		}

		logger.WithField("page", pageNum).
			WithField("count", len(page.PullRequests)).
			WithField("has_next", page.HasNextPage).
			Debug("Fetched search page")

		if onPage != nil {
			onPage(page)
		}
		all = append(all, page.PullRequests...)

		if page.HasNextPage && page.EndCursor == "" {
			return nil, apperrors.NewFetchError(apperrors.ErrAPI,
				"search reported another page without an end cursor",
				errors.New("missing endCursor"))
		}

		cursor = page.EndCursor
		hasMore = page.HasNextPage
	}

	return all, nil
}
