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

// Package metadata types describe the statistics recorded for one collection
// run. They are logged in verbose mode and embedded in the YAML export.
package metadata

import (
	"time"
)

// RunMetadata is the complete record of a single collection run.
type RunMetadata struct {
	Version       string     `yaml:"version"`
	MethodVersion string     `yaml:"method_version"`
	RunID         string     `yaml:"run_id"`
	Query         string     `yaml:"query"`
	Results       RunResults `yaml:"results"`
}

// RunResults holds what was fetched and what the aggregation kept.
type RunResults struct {
	Pages           int       `yaml:"pages_fetched"`
	APICallCount    int       `yaml:"api_calls_made"`
	TotalPRs        int       `yaml:"total_prs"`
	CommentsScanned int       `yaml:"comments_scanned"`
	CommentsMatched int       `yaml:"comments_matched"`
	Entries         int       `yaml:"entries_collected"`
	Duplicates      int       `yaml:"duplicates_dropped"`
	GhostComments   int       `yaml:"ghost_comments_skipped"`
	Duration        string    `yaml:"duration"`
	StartedAt       time.Time `yaml:"started_at"`
	CompletedAt     time.Time `yaml:"completed_at"`
}
