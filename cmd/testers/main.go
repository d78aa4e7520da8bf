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
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-testers/pkg/version"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "sirseer-testers",
		Short: "Credit testers from pull request comments on a GitHub milestone",
		Long: `SirSeer Testers searches the merged pull requests of a GitHub milestone,
picks out the comments left by testers and writes markdown credits for the
release notes.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.AddCommand(newCollectCommand())

	return rootCmd
}

func configureLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
		return
	}
	log.SetLevel(log.WarnLevel)
}
