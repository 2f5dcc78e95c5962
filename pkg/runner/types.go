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

package runner

import "time"

// Summary reports the outcome of one collection run. Failed counts tasks
// and entries that were logged and skipped; a non-zero value with a
// populated ArchivePath means the run produced a partial archive.
type Summary struct {
	// Host is the identifier prefixed onto every artifact name.
	Host string `json:"host" yaml:"host"`
	// Packages is the number of packages in the manifest.
	Packages int `json:"packages" yaml:"packages"`
	// Collected is the number of artifacts produced.
	Collected int `json:"collected" yaml:"collected"`
	// Failed is the number of tasks or entries that failed and were skipped.
	Failed int `json:"failed" yaml:"failed"`
	// ArchivePath is the final archive location; empty when archiving failed.
	ArchivePath string `json:"archivePath,omitempty" yaml:"archivePath,omitempty"`
	// Duration is the total run time including archiving.
	Duration time.Duration `json:"duration" yaml:"duration"`
}
