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

// Package config resolves the run configuration for sirseer-testers from
// command-line options and the environment.
//
// Each value is taken from, in precedence order:
//  1. The command-line option, when given
//  2. The process environment
//  3. The .env file (values already in the environment win)
//  4. A built-in default, where one exists
//
// Resolution also acts as the validation gate: a bad --merged-since date or a
// missing token, owner or repository fails the run before any API request.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	apperrors "github.com/sirseerhq/sirseer-testers/internal/errors"
	"github.com/sirseerhq/sirseer-testers/internal/github"
)

const dateLayout = "2006-01-02"

// LookupFunc returns the environment value for key and whether it was set.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Resolve merges opts with the values visible through lookup and returns the
// run configuration. Empty environment values count as unset.
func Resolve(opts Options, lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	mergedSince := ""
	if opts.MergedSince != nil {
		mergedSince = *opts.MergedSince
	}
	if mergedSince != "" {
		if err := ValidateDate(mergedSince); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Token: pick(opts.Token, lookup, EnvToken, ""),
		Search: github.SearchParameters{
			Owner:       pick(opts.Owner, lookup, EnvOwner, ""),
			Repo:        pick(opts.Repo, lookup, EnvRepo, ""),
			Base:        pick(opts.Base, lookup, EnvBase, DefaultBase),
			Milestone:   pick(opts.Milestone, lookup, EnvMilestone, DefaultMilestone),
			MergedSince: mergedSince,
			Keywords:    resolveKeywords(opts.Keywords, lookup),
		},
		GraphQLEndpoint: pick(nil, lookup, EnvGraphQLEndpoint, DefaultGraphQLEndpoint),
		SummaryPath:     DefaultSummaryPath,
		FullPath:        DefaultFullPath,
		ExportPath:      opts.ExportPath,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the values needed to build a request are present.
func (c *Config) Validate() error {
	required := []struct {
		value, option, env string
	}{
		{c.Token, "--token", EnvToken},
		{c.Search.Owner, "--owner", EnvOwner},
		{c.Search.Repo, "--repo", EnvRepo},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: set %s or %s", apperrors.ErrMissingParameter, r.option, r.env)
		}
	}
	if c.GraphQLEndpoint == "" {
		return fmt.Errorf("GitHub GraphQL endpoint cannot be empty")
	}
	return nil
}

// ValidateDate accepts only real calendar dates written exactly as YYYY-MM-DD.
func ValidateDate(s string) error {
	t, err := time.Parse(dateLayout, s)
	if err != nil || t.Format(dateLayout) != s {
		return apperrors.ErrInvalidDate
	}
	return nil
}

// EnvLookup returns a LookupFunc over the process environment backed by the
// values in envFile. Non-empty process values win. A missing envFile is
// ignored unless required is set.
func EnvLookup(envFile string, required bool) (LookupFunc, error) {
	fileValues := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileValues = values
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	}, nil
}

// pick applies option > environment > default for a single value.
func pick(option *string, lookup LookupFunc, env, def string) string {
	if option != nil {
		return *option
	}
	if v, ok := lookup(env); ok && v != "" {
		return v
	}
	return def
}

// resolveKeywords prefers explicit --keyword values, then the comma-separated
// environment list.
func resolveKeywords(explicit []string, lookup LookupFunc) []string {
	if len(explicit) > 0 {
		return append([]string(nil), explicit...)
	}

	keywords := []string{}
	if v, ok := lookup(EnvKeywords); ok && v != "" {
		for _, kw := range strings.Split(v, ",") {
			kw = strings.TrimSpace(kw)
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}
	}
	return keywords
}
