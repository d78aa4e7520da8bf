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

// Package output writes the run's artifacts: the markdown reports, replaced
// atomically, and the optional YAML export of every collected entry.
//
// Example usage:
//
//	err := output.WriteFiles(
//	    output.File{Path: "collaborator-tester.md", Content: report.Summary(testers)},
//	    output.File{Path: "collaborator-tester-full.md", Content: report.Full(testers)},
//	)
//	if err != nil {
//	    return err
//	}
//
//	w, err := output.NewFileWriter("testers.yaml")
//	if err != nil {
//	    return err
//	}
//	if err := w.Write(output.NewExport(md, testers)); err != nil {
//	    _ = w.Abort()
//	    return err
//	}
//	return w.Close()
package output
