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

// Package config types define the configuration structures used throughout
// sirseer-testers. Options carries what the user typed; Config is the single
// immutable result of resolving those options against the environment.
package config

import "github.com/sirseerhq/sirseer-testers/internal/github"

// Environment variables consulted when the matching option is absent.
const (
	EnvToken           = "GITHUB_TOKEN"
	EnvOwner           = "GITHUB_OWNER"
	EnvRepo            = "GITHUB_REPO"
	EnvBase            = "GITHUB_BASE"
	EnvMilestone       = "GITHUB_MILESTONE"
	EnvKeywords        = "GITHUB_KEYWORDS"
	EnvGraphQLEndpoint = "GITHUB_GRAPHQL_ENDPOINT"
)

// Built-in defaults.
const (
	DefaultBase            = "6.0-dev"
	DefaultMilestone       = "Joomla! 6.0.0"
	DefaultGraphQLEndpoint = "https://api.github.com/graphql"
	DefaultSummaryPath     = "collaborator-tester.md"
	DefaultFullPath        = "collaborator-tester-full.md"
	DefaultEnvFile         = ".env"
)

// Options holds the command-line values. A nil pointer means the option was
// not given, which is different from an option given with an empty value.
type Options struct {
	Token       *string
	Owner       *string
	Repo        *string
	Base        *string
	Milestone   *string
	MergedSince *string

	// Keywords are the repeated --keyword values, in command-line order.
	Keywords []string

	// ExportPath, when set, receives a YAML dump of the collected entries.
	ExportPath string
}

// Config represents the complete, resolved configuration for one run.
type Config struct {
	Token           string
	Search          github.SearchParameters
	GraphQLEndpoint string

	// Report destinations, fully replaced on every successful run.
	SummaryPath string
	FullPath    string
	ExportPath  string
}

// Redacted returns a copy of c that is safe to log.
func (c Config) Redacted() Config {
	if c.Token != "" {
		c.Token = "****"
	}
	c.Search.Keywords = append([]string(nil), c.Search.Keywords...)
	return c
}
