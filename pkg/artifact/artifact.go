// Copyright (c) 2025, ODC Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package artifact defines the produced-output model shared by all
// collectors. Artifacts are append-only: the engine writes them into the
// result tree and never reads them back.
package artifact

// Kind identifies the task kind that produced an artifact. Kind values
// double as result-tree directory names.
type Kind string

const (
	// KindFile marks artifacts produced by file collection tasks.
	KindFile Kind = "Files"
	// KindRegistry marks artifacts produced by registry export tasks.
	KindRegistry Kind = "RegistryKeys"
	// KindEventLog marks artifacts produced by event log collection tasks.
	KindEventLog Kind = "EventLogs"
	// KindCommand marks artifacts produced by command execution tasks.
	KindCommand Kind = "Commands"
)

// Artifact describes one file produced under the result tree.
type Artifact struct {
	// Path is the absolute path of the produced file.
	Path string `json:"path" yaml:"path"`
	// Package is the identifier of the owning manifest package.
	Package string `json:"package" yaml:"package"`
	// Kind is the task kind that produced the artifact.
	Kind Kind `json:"kind" yaml:"kind"`
	// Team is the organizational sub-grouping label.
	Team string `json:"team" yaml:"team"`
}
