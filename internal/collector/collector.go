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

// Package collector filters pull request comments by keyword and author and
// gathers, per tester, the pull requests they commented on.
//
// A tester is credited at most once per pull request: the first qualifying
// comment is kept and later ones on the same pull request are dropped.
// Testers come back sorted case-insensitively; each tester's entries keep the
// order in which they were collected.
package collector

import (
	"slices"
	"strings"

	"github.com/sirseerhq/sirseer-testers/internal/github"
)

// Entry is the first qualifying comment of a tester on a pull request.
type Entry struct {
	PR        int    `yaml:"pr"`
	Title     string `yaml:"title"`
	Comment   string `yaml:"comment"`
	CreatedAt string `yaml:"created_at"`
}

// Tester is a comment author with the entries credited to them.
type Tester struct {
	Login   string  `yaml:"login"`
	Entries []Entry `yaml:"entries"`
}

// Stats counts what happened to the scanned comments.
type Stats struct {
	PullRequests int `yaml:"pull_requests"`
	Scanned      int `yaml:"comments_scanned"`
	Matched      int `yaml:"comments_matched"`
	Collected    int `yaml:"entries_collected"`
	Duplicates   int `yaml:"duplicates_dropped"`
	Ghosts       int `yaml:"ghost_comments_skipped"`
}

type key struct {
	author string
	pr     int
}

// Collection accumulates entries for one run. It is not safe for concurrent use.
type Collection struct {
	keywords []string
	seen     map[key]struct{}
	byAuthor map[string]*Tester
	order    []string
	stats    Stats
}

// New returns an empty collection filtering on keywords.
func New(keywords []string) *Collection {
	return &Collection{
		keywords: append([]string(nil), keywords...),
		seen:     make(map[key]struct{}),
		byAuthor: make(map[string]*Tester),
	}
}

// Matches reports whether every keyword occurs in body, ignoring case.
// An empty keyword set matches everything.
func Matches(body string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}

	lower := strings.ToLower(body)
	for _, kw := range keywords {
		if !strings.Contains(lower, strings.ToLower(kw)) {
			return false
		}
	}
	return true
}

// Add scans the comments of pr in order.
func (c *Collection) Add(pr github.PullRequest) {
	c.stats.PullRequests++

	for _, comment := range pr.Comments {
		c.stats.Scanned++

		if !Matches(comment.Body, c.keywords) {
			continue
		}
		c.stats.Matched++

		if comment.Author == nil {
			c.stats.Ghosts++
			continue
		}

		login := comment.Author.Login
		k := key{author: login, pr: pr.Number}
		if _, dup := c.seen[k]; dup {
			c.stats.Duplicates++
			continue
		}
		c.seen[k] = struct{}{}

		tester, ok := c.byAuthor[login]
		if !ok {
			tester = &Tester{Login: login}
			c.byAuthor[login] = tester
			c.order = append(c.order, login)
		}
		tester.Entries = append(tester.Entries, Entry{
			PR:        pr.Number,
			Title:     pr.Title,
			Comment:   comment.Body,
			CreatedAt: comment.CreatedAt,
		})
		c.stats.Collected++
	}
}

// AddAll adds every pull request in order.
func (c *Collection) AddAll(prs []github.PullRequest) {
	for _, pr := range prs {
		c.Add(pr)
	}
}

// Len returns the number of testers collected.
func (c *Collection) Len() int {
	return len(c.order)
}

// Stats returns the counters gathered so far.
func (c *Collection) Stats() Stats {
	return c.stats
}

// Testers returns the testers sorted by login, ignoring ASCII case.
func (c *Collection) Testers() []Tester {
	testers := make([]Tester, 0, len(c.order))
	for _, login := range c.order {
		t := c.byAuthor[login]
		testers = append(testers, Tester{
			Login:   t.Login,
			Entries: append([]Entry(nil), t.Entries...),
		})
	}

	slices.SortStableFunc(testers, func(a, b Tester) int {
		return compareFold(a.Login, b.Login)
	})
	return testers
}

// compareFold compares ASCII-case-folded strings byte by byte, like strcasecmp.
func compareFold(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ca, cb := lowerASCII(a[i]), lowerASCII(b[i])
		if ca != cb {
			return int(ca) - int(cb)
		}
	}
	return len(a) - len(b)
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
