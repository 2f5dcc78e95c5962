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

// Package collector defines the collection strategy interface and the
// factory that builds the four task-kind strategies.
//
// # Core Interface
//
// A Collector handles one task list of one package:
//
//	type Collector interface {
//	    Collect(ctx context.Context, tree *resulttree.Tree, pkgID string) ([]artifact.Artifact, int, error)
//	}
//
// The int return is the count of failed tasks or entries. Collectors
// isolate their own failures: a bad glob, an unreadable file, a non-zero
// registry export, or a crashing command is logged and counted, never
// propagated. The error return is reserved for context cancellation.
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing by
// abstracting collector creation:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithCommandTimeout(2 * time.Minute),
//	)
//	col := factory.CreateFileCollector(pkg.Files)
//
// # Subpackages
//
// The package is organized into subpackages by task kind:
//   - collector/file - file copy with glob expansion and zero-length exclusion
//   - collector/registry - registry key export via reg.exe (64-bit view)
//   - collector/eventlog - event log copy (no size filter)
//   - collector/command - shell/scripting-engine execution with output capture
package collector
