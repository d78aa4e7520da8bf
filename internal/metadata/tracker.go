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

// Package metadata tracks statistics about a collection run: pages and API
// calls made, pull requests seen, and how many comments were scanned,
// matched, deduplicated or skipped.
//
// Create a Tracker before pagination starts, record every page as it
// arrives, then call GenerateMetadata once aggregation is done.
package metadata

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sirseerhq/sirseer-testers/internal/collector"
)

const (
	// MethodVersion identifies the GraphQL search document in use.
	MethodVersion = "graphql-search-comments-v1"
)

// Tracker collects statistics during a run.
type Tracker struct {
	startTime    time.Time
	apiCallCount int
	pages        int
	totalPRs     int
	now          func() time.Time
}

// New creates a tracker started at the current time.
func New() *Tracker {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Tracker {
	return &Tracker{
		startTime: now(),
		now:       now,
	}
}

// RecordPage records one successful search request returning prCount pull requests.
func (t *Tracker) RecordPage(prCount int) {
	t.apiCallCount++
	t.pages++
	t.totalPRs += prCount
}

// GenerateMetadata creates the run record from the tracked counters and the
// aggregation stats.
func (t *Tracker) GenerateMetadata(version, query string, stats collector.Stats) *RunMetadata {
	completedAt := t.now()
	duration := completedAt.Sub(t.startTime)

	return &RunMetadata{
		Version:       version,
		MethodVersion: MethodVersion,
		RunID:         fmt.Sprintf("run-%d", t.startTime.Unix()),
		Query:         query,
		Results: RunResults{
			Pages:           t.pages,
			APICallCount:    t.apiCallCount,
			TotalPRs:        t.totalPRs,
			CommentsScanned: stats.Scanned,
			CommentsMatched: stats.Matched,
			Entries:         stats.Collected,
			Duplicates:      stats.Duplicates,
			GhostComments:   stats.Ghosts,
			Duration:        duration.String(),
			StartedAt:       t.startTime,
			CompletedAt:     completedAt,
		},
	}
}

// WriteMetadataToWriter serializes metadata as YAML to w. Verbose runs
// print it on stderr.
func WriteMetadataToWriter(metadata *RunMetadata, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(metadata); err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	return encoder.Close()
}
