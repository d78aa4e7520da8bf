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

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirseerhq/sirseer-testers/internal/config"
	apperrors "github.com/sirseerhq/sirseer-testers/internal/errors"
	"github.com/sirseerhq/sirseer-testers/internal/github"
	"github.com/sirseerhq/sirseer-testers/internal/testutil"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Token: "test-token",
		Search: github.SearchParameters{
			Owner:     "joomla",
			Repo:      "joomla-cms",
			Base:      config.DefaultBase,
			Milestone: config.DefaultMilestone,
			Keywords:  []string{"tested"},
		},
		GraphQLEndpoint: config.DefaultGraphQLEndpoint,
		SummaryPath:     filepath.Join(dir, config.DefaultSummaryPath),
		FullPath:        filepath.Join(dir, config.DefaultFullPath),
	}
}

func TestRunCollect_MockClient(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	client := github.NewMockClient()

	var out bytes.Buffer
	require.NoError(t, runCollect(context.Background(), &out, nil, cfg, client))

	want := "Found 2 PRs in joomla/joomla-cms with milestone 'Joomla! 6.0.0':\n" +
		"Tests by alice:\n" +
		" - PR #1234: Add new feature for data processing\n" +
		"Tests by Charlie:\n" +
		" - PR #1233: Fix memory leak in parser\n"
	assert.Equal(t, want, out.String())

	summary, err := os.ReadFile(cfg.SummaryPath)
	require.NoError(t, err)
	assert.Contains(t, string(summary), "@alice (1), @Charlie (1)\n")

	full, err := os.ReadFile(cfg.FullPath)
	require.NoError(t, err)
	assert.Contains(t, string(full), "- @Charlie (1)\n    - PR #1233: Fix memory leak in parser\n")

	require.Len(t, client.Queries, 1)
	assert.Equal(t, `repo:joomla/joomla-cms is:pr is:merged base:6.0-dev milestone:"Joomla! 6.0.0"`, client.Queries[0])
}

func TestRunCollect_ProgressPerPage(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Search.MergedSince = "2025-01-01"
	cfg.Search.Keywords = nil

	client := github.NewMockClientWithOptions(github.WithPages(
		[]github.PullRequest{{Number: 1, Title: "One"}, {Number: 2, Title: "Two"}},
		[]github.PullRequest{{Number: 3, Title: "Three"}},
	))

	var out bytes.Buffer
	require.NoError(t, runCollect(context.Background(), &out, nil, cfg, client))

	want := "Found 2 PRs merged since 2025-01-01 in joomla/joomla-cms with milestone 'Joomla! 6.0.0':\n" +
		"Found 1 PRs merged since 2025-01-01 in joomla/joomla-cms with milestone 'Joomla! 6.0.0':\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, []string{"", "cursor-1"}, client.Cursors)
}

func TestRunCollect_ErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.ExportPath = filepath.Join(dir, "export.yaml")

	fetchErr := apperrors.NewFetchError(apperrors.ErrAPI, "rate limited", nil)
	client := github.NewMockClientWithOptions(
		github.WithPages([]github.PullRequest{{Number: 1}}, []github.PullRequest{{Number: 2}}),
		github.WithError(fetchErr),
	)
	client.FailOnCall = 2

	var out bytes.Buffer
	err := runCollect(context.Background(), &out, nil, cfg, client)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAPI))
	assert.Equal(t, "Error fetching data: rate limited", err.Error())

	testutil.AssertFileNotExists(t, cfg.SummaryPath, cfg.FullPath, cfg.ExportPath)
}

func TestRunCollect_NoMatchesStillWritesReports(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Search.Keywords = []string{"nothing-matches-this"}

	var out bytes.Buffer
	require.NoError(t, runCollect(context.Background(), &out, nil, cfg, github.NewMockClient()))

	testutil.AssertFileContent(t, cfg.SummaryPath, "## :technologist: Test contributions\n\n"+
		"Thank you to all the testers who help us maintain high quality standards and deliver a robust product.\n\n\n")
}

func TestRunCollect_Export(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.ExportPath = filepath.Join(dir, "testers.yaml")

	var out bytes.Buffer
	require.NoError(t, runCollect(context.Background(), &out, nil, cfg, github.NewMockClient()))

	data, err := os.ReadFile(cfg.ExportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "login: alice")
	assert.Contains(t, string(data), "comment: I have tested this item successfully")
	assert.Contains(t, string(data), "total_prs: 2")
	assert.Contains(t, string(data), "ghost_comments_skipped: 1")
}

func TestPrintProgress(t *testing.T) {
	tests := []struct {
		name   string
		params github.SearchParameters
		count  int
		want   string
	}{
		{
			name:   "without date",
			params: github.SearchParameters{Owner: "o", Repo: "r", Milestone: "M 1"},
			count:  3,
			want:   "Found 3 PRs in o/r with milestone 'M 1':\n",
		},
		{
			name:   "with date",
			params: github.SearchParameters{Owner: "o", Repo: "r", Milestone: "M 1", MergedSince: "2024-02-29"},
			count:  0,
			want:   "Found 0 PRs merged since 2024-02-29 in o/r with milestone 'M 1':\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printProgress(&buf, tt.params, tt.count)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunCollect_DiagnosticsMetadata(t *testing.T) {
	cfg := testConfig(t.TempDir())

	var out, diag bytes.Buffer
	require.NoError(t, runCollect(context.Background(), &out, &diag, cfg, github.NewMockClient()))

	assert.Contains(t, diag.String(), "total_prs: 2")
	assert.Contains(t, diag.String(), "comments_matched: 3")
	assert.Contains(t, diag.String(), "ghost_comments_skipped: 1")
	assert.NotContains(t, out.String(), "total_prs", "metadata stays off stdout")
}

func TestRunCollect_ReportsWrittenTogether(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.FullPath = filepath.Join(dir, "missing", config.DefaultFullPath)

	var out bytes.Buffer
	err := runCollect(context.Background(), &out, nil, cfg, github.NewMockClient())
	require.Error(t, err)

	testutil.AssertFileNotExists(t, cfg.SummaryPath, cfg.FullPath)
}
