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

package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// File is a path and the complete content it should hold.
type File struct {
	Path    string
	Content string
}

// WriteFiles replaces every file in files. All contents are written and
// synced to temporary files next to their targets before the first rename,
// so a write failure leaves every target untouched and readers see either
// the old file or the complete new one.
func WriteFiles(files ...File) error {
	staged := make([]string, 0, len(files))
	discard := func(names []string) {
		for _, name := range names {
			_ = os.Remove(name)
		}
	}

	for _, f := range files {
		tmp, err := createTemp(f.Path)
		if err != nil {
			discard(staged)
			return err
		}
		if _, err := tmp.WriteString(f.Content); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
			discard(staged)
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
		if err := finish(tmp, f.Path); err != nil {
			discard(staged)
			return err
		}
		staged = append(staged, tmp.Name())
	}

	for i, f := range files {
		if err := os.Rename(staged[i], f.Path); err != nil {
			discard(staged[i:])
			return fmt.Errorf("failed to rename temp file: %w", err)
		}
	}
	return nil
}

func createTemp(path string) (*os.File, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file for %s: %w", path, err)
	}
	return tmp, nil
}

// finish syncs and closes tmp and gives it the final permissions, removing
// tmp on failure.
func finish(tmp *os.File, path string) error {
	tmpName := tmp.Name()

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	return nil
}

// commit finishes tmp and renames it onto path.
func commit(tmp *os.File, path string) error {
	if err := finish(tmp, path); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
