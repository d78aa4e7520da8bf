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
	"testing"
)

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name     string
		params   SearchParameters
		expected string
	}{
		{
			name: "basic query without date",
			params: SearchParameters{
				Owner:     "joomla",
				Repo:      "joomla-cms",
				Base:      "6.0-dev",
				Milestone: "Joomla! 6.0.0",
			},
			expected: `repo:joomla/joomla-cms is:pr is:merged base:6.0-dev milestone:"Joomla! 6.0.0"`,
		},
		{
			name: "query with merged since date",
			params: SearchParameters{
				Owner:       "joomla",
				Repo:        "joomla-cms",
				Base:        "6.0-dev",
				Milestone:   "Joomla! 6.0.0",
				MergedSince: "2024-02-29",
			},
			expected: `repo:joomla/joomla-cms is:pr is:merged base:6.0-dev milestone:"Joomla! 6.0.0" merged:>=2024-02-29`,
		},
		{
			name: "keywords do not affect the search string",
			params: SearchParameters{
				Owner:     "octocat",
				Repo:      "hello-world",
				Base:      "main",
				Milestone: "v1",
				Keywords:  []string{"tested"},
			},
			expected: `repo:octocat/hello-world is:pr is:merged base:main milestone:"v1"`,
		},
		{
			name: "org with special characters",
			params: SearchParameters{
				Owner:     "org-with-dash",
				Repo:      "repo.with.dots",
				Base:      "release/2.x",
				Milestone: "2.0 GA",
			},
			expected: `repo:org-with-dash/repo.with.dots is:pr is:merged base:release/2.x milestone:"2.0 GA"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildSearchQuery(tt.params)
			if result != tt.expected {
				t.Errorf("BuildSearchQuery() = %q, want %q", result, tt.expected)
			}
		})
	}
}
