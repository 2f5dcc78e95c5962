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

// Package registry exports registry keys through the OS registry-export
// facility (reg.exe). Exports always target the 64-bit registry view;
// silently falling back to the 32-bit view on a 64-bit host would collect
// the wrong hive.
package registry

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/odc-tools/odc/pkg/artifact"
	"github.com/odc-tools/odc/pkg/manifest"
	"github.com/odc-tools/odc/pkg/resolver"
	"github.com/odc-tools/odc/pkg/resulttree"
)

// ExportFunc performs one registry export of key into destPath, returning
// the tool's combined output for logging. The field exists so tests can
// substitute the external reg.exe invocation.
type ExportFunc func(ctx context.Context, key, destPath string) ([]byte, error)

// Collector exports the registry keys named by its tasks into the result
// tree.
type Collector struct {
	Tasks []manifest.RegistryTask

	// Export overrides the reg.exe invocation. Nil selects the default.
	Export ExportFunc
}

// Collect exports each task's key under <pkg>/RegistryKeys/<team>. The
// output file name is the explicit OutputFileName when present, otherwise
// derived from the key path with separators replaced, always suffixed
// .txt. A failing export is logged and skipped, never fatal to the run.
func (c *Collector) Collect(ctx context.Context, tree *resulttree.Tree, pkgID string) ([]artifact.Artifact, int, error) {
	export := c.Export
	if export == nil {
		export = regExport
	}

	var artifacts []artifact.Artifact
	failed := 0

	for _, task := range c.Tasks {
		if err := ctx.Err(); err != nil {
			return artifacts, failed, err
		}

		key := resolver.StripKeyWildcard(task.Value)
		team := task.TeamLabel()

		dest, err := tree.DestPath(pkgID, artifact.KindRegistry, team, outputName(task, key))
		if err != nil {
			slog.Error("failed to prepare destination", "package", pkgID, "key", key, "error", err)
			failed++
			continue
		}

		out, err := export(ctx, key, dest)
		if err != nil {
			slog.Error("registry export failed",
				"package", pkgID, "key", key,
				"output", strings.TrimSpace(string(out)), "error", err)
			// A failed export may leave a partial file behind.
			_ = os.Remove(dest)
			failed++
			continue
		}

		artifacts = append(artifacts, artifact.Artifact{
			Path:    dest,
			Package: pkgID,
			Kind:    artifact.KindRegistry,
			Team:    team,
		})
		slog.Info("exported registry key", "package", pkgID, "team", team, "key", key, "path", dest)
	}

	return artifacts, failed, nil
}

// outputName computes the destination file name for a task: the explicit
// OutputFileName when set, otherwise the key path with separators replaced
// by underscores. The .txt extension is always enforced.
func outputName(task manifest.RegistryTask, key string) string {
	name := strings.TrimSpace(task.OutputFileName)
	if name == "" {
		name = strings.ReplaceAll(key, `\`, "_")
	}
	if !strings.HasSuffix(strings.ToLower(name), ".txt") {
		name += ".txt"
	}
	return name
}

// regExport shells out to reg.exe. The /reg:64 switch pins the export to
// the 64-bit registry view and /y overwrites an existing destination file.
func regExport(ctx context.Context, key, destPath string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "reg", "export", key, destPath, "/y", "/reg:64")
	return cmd.CombinedOutput()
}
