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

// Package main implements the sirseer-testers command-line interface.
// It searches a repository's merged pull requests for a milestone, keeps the
// first qualifying comment of each author per pull request and writes the
// "Test contributions" credits.
//
// Usage:
//
//	sirseer-testers collect [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	sirseer-testers collect --owner joomla --repo joomla-cms \
//	    --keyword tested --merged-since 2025-01-01
//
// Every option falls back to a GITHUB_* environment variable, which may also
// come from a .env file in the working directory. The reports are written to
// collaborator-tester.md and collaborator-tester-full.md.
//
// Exit codes:
//   - 0: Success
//   - 1: Invalid input, fetch failure or file write failure
package main
