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

// Package runner coordinates a full collection run.
//
// The runner walks packages in manifest order, builds the four per-kind
// collectors for each package through the collector factory, and records
// progress and failure counts as tasks complete. Every reachable task is
// attempted exactly once; no task failure short-circuits the run.
//
// With Workers >= 2, packages are collected concurrently under an errgroup
// with a worker limit. This is safe because package IDs and team labels
// partition the result tree: concurrent collectors never write into the
// same leaf directory, and directory creation is idempotent.
//
// After all dispatch work completes the archiver runs as a strict barrier,
// producing <HOST>_CollectedData_<timestamp>.zip in the output directory
// and removing the staging tree.
//
//	r := &runner.Runner{Manifest: m, OutputDir: "."}
//	summary, err := r.Run(ctx)
package runner
