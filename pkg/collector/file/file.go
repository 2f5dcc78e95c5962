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

package file

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/odc-tools/odc/pkg/artifact"
	"github.com/odc-tools/odc/pkg/manifest"
	"github.com/odc-tools/odc/pkg/resolver"
	"github.com/odc-tools/odc/pkg/resulttree"
)

// Collector copies file system entries matched by the tasks' path
// expressions into the result tree.
type Collector struct {
	Tasks []manifest.FileTask
}

// Collect resolves each task's path expression, expands the glob, and
// copies every matching regular file under <pkg>/Files/<team>. Zero-length
// files are skipped: they carry no diagnostic value. A failure on one entry
// is logged and does not abort sibling entries.
func (c *Collector) Collect(ctx context.Context, tree *resulttree.Tree, pkgID string) ([]artifact.Artifact, int, error) {
	var artifacts []artifact.Artifact
	failed := 0

	for _, task := range c.Tasks {
		if err := ctx.Err(); err != nil {
			return artifacts, failed, err
		}

		pattern := resolver.ExpandPath(task.Value)
		matches, err := filepath.Glob(pattern)
		if err != nil {
			slog.Error("invalid file pattern", "package", pkgID, "pattern", pattern, "error", err)
			failed++
			continue
		}
		if len(matches) == 0 {
			slog.Debug("no files matched", "package", pkgID, "pattern", pattern)
			continue
		}

		team := task.TeamLabel()
		for _, src := range matches {
			info, err := os.Stat(src)
			if err != nil {
				slog.Error("failed to stat source", "package", pkgID, "source", src, "error", err)
				failed++
				continue
			}
			if info.IsDir() {
				continue
			}
			if info.Size() == 0 {
				slog.Debug("skipping zero-length file", "package", pkgID, "source", src)
				continue
			}

			dest, err := tree.DestPath(pkgID, artifact.KindFile, team, filepath.Base(src))
			if err != nil {
				slog.Error("failed to prepare destination", "package", pkgID, "source", src, "error", err)
				failed++
				continue
			}
			if _, err := os.Stat(dest); err == nil {
				// Another task in this package/team matched a file with
				// the same basename. Last writer wins.
				slog.Warn("overwriting previously collected file", "package", pkgID, "source", src, "path", dest)
			}
			if err := copyFile(src, dest); err != nil {
				slog.Error("failed to copy file", "package", pkgID, "source", src, "error", err)
				failed++
				continue
			}

			artifacts = append(artifacts, artifact.Artifact{
				Path:    dest,
				Package: pkgID,
				Kind:    artifact.KindFile,
				Team:    team,
			})
			slog.Info("collected file", "package", pkgID, "team", team, "path", dest)
		}
	}

	return artifacts, failed, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %q to %q: %w", src, dest, err)
	}
	return out.Close()
}
