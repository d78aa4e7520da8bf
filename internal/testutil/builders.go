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

package testutil

import (
	"fmt"
	"time"
)

// PullRequestBuilder provides a fluent API for creating search result nodes
type PullRequestBuilder struct {
	number    int
	title     string
	milestone string
	comments  []map[string]interface{}
	createdAt time.Time
}

// NewPullRequestBuilder creates a new PR builder with defaults
func NewPullRequestBuilder(number int) *PullRequestBuilder {
	return &PullRequestBuilder{
		number:    number,
		title:     fmt.Sprintf("PR %d", number),
		milestone: "Joomla! 6.0.0",
		createdAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// WithTitle sets the PR title
func (b *PullRequestBuilder) WithTitle(title string) *PullRequestBuilder {
	b.title = title
	return b
}

// WithMilestone sets the milestone title
func (b *PullRequestBuilder) WithMilestone(milestone string) *PullRequestBuilder {
	b.milestone = milestone
	return b
}

// WithComment adds a comment by author
func (b *PullRequestBuilder) WithComment(author, body string) *PullRequestBuilder {
	b.comments = append(b.comments, map[string]interface{}{
		"author":    map[string]interface{}{"login": author},
		"body":      body,
		"createdAt": b.nextTimestamp(),
	})
	return b
}

// WithGhostComment adds a comment whose author account no longer exists
func (b *PullRequestBuilder) WithGhostComment(body string) *PullRequestBuilder {
	b.comments = append(b.comments, map[string]interface{}{
		"author":    nil,
		"body":      body,
		"createdAt": b.nextTimestamp(),
	})
	return b
}

func (b *PullRequestBuilder) nextTimestamp() string {
	ts := b.createdAt.Add(time.Duration(len(b.comments)) * time.Hour)
	return ts.Format(time.RFC3339)
}

// Build returns the node as the search API would encode it
func (b *PullRequestBuilder) Build() map[string]interface{} {
	var milestone interface{}
	if b.milestone != "" {
		milestone = map[string]interface{}{"title": b.milestone}
	}

	comments := b.comments
	if comments == nil {
		comments = []map[string]interface{}{}
	}

	return map[string]interface{}{
		"number":    b.number,
		"title":     b.title,
		"milestone": milestone,
		"comments": map[string]interface{}{
			"nodes": comments,
		},
	}
}

// SearchResponse wraps nodes in a search response page
func SearchResponse(hasNextPage bool, endCursor string, nodes ...map[string]interface{}) map[string]interface{} {
	if nodes == nil {
		nodes = []map[string]interface{}{}
	}

	return map[string]interface{}{
		"data": map[string]interface{}{
			"search": map[string]interface{}{
				"pageInfo": map[string]interface{}{
					"hasNextPage": hasNextPage,
					"endCursor":   endCursor,
				},
				"nodes": nodes,
			},
		},
	}
}

// ErrorResponse builds a GraphQL errors payload
func ErrorResponse(messages ...string) map[string]interface{} {
	errs := make([]map[string]interface{}, 0, len(messages))
	for _, msg := range messages {
		errs = append(errs, map[string]interface{}{"message": msg})
	}

	return map[string]interface{}{
		"errors": errs,
	}
}
