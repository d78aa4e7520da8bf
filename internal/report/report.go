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

// Package report renders collected testers as markdown credits and as the
// plain console listing.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirseerhq/sirseer-testers/internal/collector"
)

const (
	header = "## :technologist: Test contributions\n\n"
	intro  = "Thank you to all the testers who help us maintain high quality standards and deliver a robust product.\n\n"
)

// Summary renders a single comma-separated line of "@login (count)" credits.
func Summary(testers []collector.Tester) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString(intro)

	for i, t := range testers {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "@%s (%d)", t.Login, len(t.Entries))
	}
	b.WriteString("\n")

	return b.String()
}

// Full renders one list item per tester with the pull requests nested below.
func Full(testers []collector.Tester) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString(intro)

	for _, t := range testers {
		fmt.Fprintf(&b, "- @%s (%d)\n", t.Login, len(t.Entries))
		for _, e := range t.Entries {
			fmt.Fprintf(&b, "    - PR #%d: %s\n", e.PR, e.Title)
		}
	}

	return b.String()
}

// Console writes the per-tester listing shown after a run.
func Console(w io.Writer, testers []collector.Tester) error {
	for _, t := range testers {
		if _, err := fmt.Fprintf(w, "Tests by %s:\n", t.Login); err != nil {
			return err
		}
		for _, e := range t.Entries {
			if _, err := fmt.Fprintf(w, " - PR #%d: %s\n", e.PR, e.Title); err != nil {
				return err
			}
		}
	}
	return nil
}
