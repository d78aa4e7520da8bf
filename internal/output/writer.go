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

	"gopkg.in/yaml.v3"

	"github.com/sirseerhq/sirseer-testers/internal/collector"
	"github.com/sirseerhq/sirseer-testers/internal/metadata"
)

// Export is the document written by --export.
type Export struct {
	Metadata *metadata.RunMetadata `yaml:"metadata"`
	Testers  []collector.Tester    `yaml:"testers"`
}

// NewExport builds the export document for a finished run.
func NewExport(md *metadata.RunMetadata, testers []collector.Tester) *Export {
	if testers == nil {
		testers = []collector.Tester{}
	}
	return &Export{Metadata: md, Testers: testers}
}

// Writer encodes YAML documents into a temporary file that replaces path on
// Close. Abort discards it instead.
type Writer struct {
	encoder *yaml.Encoder
	file    *os.File
	path    string
}

// NewFileWriter creates a YAML writer for path.
func NewFileWriter(path string) (*Writer, error) {
	file, err := createTemp(path)
	if err != nil {
		return nil, err
	}

	enc := yaml.NewEncoder(file)
	enc.SetIndent(2)
	return &Writer{encoder: enc, file: file, path: path}, nil
}

// Write encodes a single record as a YAML document.
func (w *Writer) Write(record interface{}) error {
	if err := w.encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Close flushes the encoder and moves the file into place.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	file := w.file
	w.file = nil

	if err := w.encoder.Close(); err != nil {
		_ = file.Close()
		_ = os.Remove(file.Name())
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return commit(file, w.path)
}

// Abort discards the output, leaving any existing file untouched.
func (w *Writer) Abort() error {
	if w.file == nil {
		return nil
	}
	file := w.file
	w.file = nil
	_ = file.Close()
	return os.Remove(file.Name())
}

// WriteExport writes a single export document to path.
func WriteExport(path string, export *Export) error {
	w, err := NewFileWriter(path)
	if err != nil {
		return err
	}
	if err := w.Write(export); err != nil {
		_ = w.Abort()
		return err
	}
	return w.Close()
}
