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

package collector

import (
	"context"

	"github.com/odc-tools/odc/pkg/artifact"
	"github.com/odc-tools/odc/pkg/resulttree"
)

// Collector collects the artifacts for one task list of one package.
//
// Implementations isolate their own failures: a failed task or entry is
// logged, counted in failed, and never aborts sibling tasks. The returned
// error is reserved for context cancellation; everything else degrades to a
// failure count.
type Collector interface {
	Collect(ctx context.Context, tree *resulttree.Tree, pkgID string) (artifacts []artifact.Artifact, failed int, err error)
}
