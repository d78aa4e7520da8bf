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
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-testers/internal/collector"
	"github.com/sirseerhq/sirseer-testers/internal/config"
	"github.com/sirseerhq/sirseer-testers/internal/github"
	"github.com/sirseerhq/sirseer-testers/internal/metadata"
	"github.com/sirseerhq/sirseer-testers/internal/output"
	"github.com/sirseerhq/sirseer-testers/internal/report"
	"github.com/sirseerhq/sirseer-testers/pkg/version"
)

var logger = log.WithField("package", "main")

type collectFlags struct {
	token       string
	owner       string
	repo        string
	base        string
	milestone   string
	mergedSince string
	keywords    []string
	envFile     string
	export      string
}

func newCollectCommand() *cobra.Command {
	var f collectFlags

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collect tester comments and write the credit reports",
		Long: `Collect searches merged pull requests of a milestone and credits every
author whose comment contains all the given keywords, once per pull request.

Each option falls back to an environment variable when not given:
  --token      GITHUB_TOKEN
  --owner      GITHUB_OWNER
  --repo       GITHUB_REPO
  --base       GITHUB_BASE       (default 6.0-dev)
  --milestone  GITHUB_MILESTONE  (default "Joomla! 6.0.0")
  --keyword    GITHUB_KEYWORDS   (comma-separated)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lookup, err := config.EnvLookup(f.envFile, cmd.Flags().Changed("env-file"))
			if err != nil {
				return err
			}

			cfg, err := config.Resolve(f.options(cmd), lookup)
			if err != nil {
				return err
			}
			logger.WithField("config", fmt.Sprintf("%+v", cfg.Redacted())).Debug("resolved configuration")

			var diag io.Writer
			if log.IsLevelEnabled(log.DebugLevel) {
				diag = cmd.ErrOrStderr()
			}

			client := github.NewGraphQLClient(cfg.Token, cfg.GraphQLEndpoint)
			return runCollect(cmd.Context(), cmd.OutOrStdout(), diag, cfg, client)
		},
	}

	cmd.Flags().StringVar(&f.token, "token", "", "GitHub token (overrides GITHUB_TOKEN)")
	cmd.Flags().StringVar(&f.owner, "owner", "", "Repository owner (overrides GITHUB_OWNER)")
	cmd.Flags().StringVar(&f.repo, "repo", "", "Repository name (overrides GITHUB_REPO)")
	cmd.Flags().StringVar(&f.base, "base", "", "Base branch of the pull requests (overrides GITHUB_BASE)")
	cmd.Flags().StringVar(&f.milestone, "milestone", "", "Milestone title (overrides GITHUB_MILESTONE)")
	cmd.Flags().StringArrayVar(&f.keywords, "keyword", nil, "Keyword a comment must contain, repeatable (overrides GITHUB_KEYWORDS)")
	cmd.Flags().StringVar(&f.mergedSince, "merged-since", "", "Only pull requests merged on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.envFile, "env-file", config.DefaultEnvFile, "File with GITHUB_* values used when the environment lacks them")
	cmd.Flags().StringVar(&f.export, "export", "", "Also write every collected entry as YAML to this path")

	return cmd
}

// options maps the flags the user actually set onto config.Options.
func (f *collectFlags) options(cmd *cobra.Command) config.Options {
	given := func(name string, v *string) *string {
		if cmd.Flags().Changed(name) {
			return v
		}
		return nil
	}

	return config.Options{
		Token:       given("token", &f.token),
		Owner:       given("owner", &f.owner),
		Repo:        given("repo", &f.repo),
		Base:        given("base", &f.base),
		Milestone:   given("milestone", &f.milestone),
		MergedSince: given("merged-since", &f.mergedSince),
		Keywords:    f.keywords,
		ExportPath:  f.export,
	}
}

// runCollect fetches every page, aggregates the comments and writes the
// reports. Nothing is written unless the fetch succeeds. When diag is not nil
// the run metadata is printed there as YAML.
func runCollect(ctx context.Context, out, diag io.Writer, cfg *config.Config, client github.Client) error {
	query := github.BuildSearchQuery(cfg.Search)
	tracker := metadata.New()

	prs, err := github.FetchAll(ctx, client, query, func(page *github.PullRequestPage) {
		tracker.RecordPage(len(page.PullRequests))
		printProgress(out, cfg.Search, len(page.PullRequests))
	})
	if err != nil {
		return err
	}

	coll := collector.New(cfg.Search.Keywords)
	coll.AddAll(prs)
	testers := coll.Testers()

	if err := report.Console(out, testers); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	err = output.WriteFiles(
		output.File{Path: cfg.SummaryPath, Content: report.Summary(testers)},
		output.File{Path: cfg.FullPath, Content: report.Full(testers)},
	)
	if err != nil {
		return err
	}

	md := tracker.GenerateMetadata(version.Version, query, coll.Stats())
	logger.WithField("testers", coll.Len()).Debug("collection complete")
	if diag != nil {
		if err := metadata.WriteMetadataToWriter(md, diag); err != nil {
			return err
		}
	}

	if cfg.ExportPath != "" {
		if err := output.WriteExport(cfg.ExportPath, output.NewExport(md, testers)); err != nil {
			return err
		}
	}

	return nil
}

func printProgress(out io.Writer, p github.SearchParameters, count int) {
	if p.MergedSince != "" {
		fmt.Fprintf(out, "Found %d PRs merged since %s in %s/%s with milestone '%s':\n",
			count, p.MergedSince, p.Owner, p.Repo, p.Milestone)
		return
	}
	fmt.Fprintf(out, "Found %d PRs in %s/%s with milestone '%s':\n", count, p.Owner, p.Repo, p.Milestone)
}
