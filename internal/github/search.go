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

	"github.com/shurcooL/graphql"
)

// BuildSearchQuery constructs a GitHub search query for merged pull requests.
// It filters by repository, base branch and milestone, and optionally by merge date.
// The query uses GitHub's search syntax to enable server-side filtering.
func BuildSearchQuery(p SearchParameters) string {
	query := fmt.Sprintf(`repo:%s/%s is:pr is:merged base:%s milestone:"%s"`,
		p.Owner, p.Repo, p.Base, p.Milestone)

	if p.MergedSince != "" {
		query += " merged:>=" + p.MergedSince
	}

	return query
}

// searchQuery is the single GraphQL document used by the tool. Only the
// queryString and after variables change between requests.
type searchQuery struct {
	Search struct {
		PageInfo struct {
			HasNextPage graphql.Boolean
			EndCursor   graphql.String
		}
		Nodes []struct {
			PullRequest struct {
				Number    graphql.Int
				Title     graphql.String
				Milestone *struct {
					Title graphql.String
				}
				Comments struct {
					Nodes []struct {
						Author *struct {
							Login graphql.String
						}
						Body      graphql.String
						CreatedAt graphql.String
					}
				} `graphql:"comments(last: 100)"`
			} `graphql:"... on PullRequest"`
		}
	} `graphql:"search(query: $queryString, type: ISSUE, last: 100, after: $after)"`
}

// SearchPullRequests executes the search query for one page.
// A null after cursor is sent for the first page.
func (c *GraphQLClient) SearchPullRequests(ctx context.Context, query string, opts FetchOptions) (*PullRequestPage, error) {
	var after *graphql.String
	if opts.After != "" {
		cursor := graphql.String(opts.After)
		after = &cursor
	}

	variables := map[string]interface{}{
		"queryString": graphql.String(query),
		"after":       after,
	}

	logger.WithField("after", opts.After).Debug("Searching pull requests")

	var q searchQuery
	if err := c.client.Query(ctx, &q, variables); err != nil {
		return nil, c.mapError(err)
	}

	return convertSearchPage(&q), nil
}

// convertSearchPage converts the GraphQL response to our domain model.
func convertSearchPage(q *searchQuery) *PullRequestPage {
	page := &PullRequestPage{
		HasNextPage:  bool(q.Search.PageInfo.HasNextPage),
		EndCursor:    string(q.Search.PageInfo.EndCursor),
		PullRequests: make([]PullRequest, 0, len(q.Search.Nodes)),
	}

	for _, node := range q.Search.Nodes {
		n := node.PullRequest
		pr := PullRequest{
			Number:   int(n.Number),
			Title:    string(n.Title),
			Comments: make([]Comment, 0, len(n.Comments.Nodes)),
		}
		if n.Milestone != nil {
			pr.Milestone = string(n.Milestone.Title)
		}

		for _, cn := range n.Comments.Nodes {
			comment := Comment{
				Body:      string(cn.Body),
				CreatedAt: string(cn.CreatedAt),
			}
			if cn.Author != nil {
				comment.Author = &Author{Login: string(cn.Author.Login)}
			}
			pr.Comments = append(pr.Comments, comment)
		}

		page.PullRequests = append(page.PullRequests, pr)
	}

	return page
}
