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

package testutil

import (
	"os"
	"strings"
	"testing"
)

// WriteEnvFile writes KEY=value lines to path.
func WriteEnvFile(t *testing.T, path string, values map[string]string) {
	t.Helper()

	var b strings.Builder
	for k, v := range values {
		b.WriteString(k + "=" + v + "\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
}

// AssertFileNotExists checks that none of the files exist
func AssertFileNotExists(t *testing.T, paths ...string) {
	t.Helper()

	for _, path := range paths {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("Expected file to not exist: %s", path)
		}
	}
}

// AssertFileContent checks that a file holds exactly the expected content
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}

	if string(content) != expected {
		t.Errorf("File content mismatch\nGot:\n%s\nWant:\n%s", content, expected)
	}
}

// AssertFileContains checks that a file contains the expected substring
func AssertFileContains(t *testing.T, path, expected string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}

	if !strings.Contains(string(content), expected) {
		t.Errorf("File %s does not contain %q\nGot:\n%s", path, expected, content)
	}
}
