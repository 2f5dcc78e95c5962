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

// Package eventlog collects event log container files. It mirrors the file
// collector's path expansion and glob handling but copies matched entries
// regardless of size: an empty log container is itself diagnostic, since
// its presence shows the channel exists and recorded nothing.
package eventlog

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

// Collector copies event log files matched by the tasks' path expressions
// into the result tree.
type Collector struct {
	Tasks []manifest.EventLogTask
}

// Collect resolves each task's path expression, expands the glob, and
// copies every matching file under <pkg>/EventLogs/<team>. No size filter
// is applied. A failure on one entry is logged and does not abort sibling
// entries.
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
			slog.Error("invalid event log pattern", "package", pkgID, "pattern", pattern, "error", err)
			failed++
			continue
		}
		if len(matches) == 0 {
			slog.Debug("no event logs matched", "package", pkgID, "pattern", pattern)
			continue
		}

		team := task.TeamLabel()
		for _, src := range matches {
			info, err := os.Stat(src)
			if err != nil {
				slog.Error("failed to stat event log", "package", pkgID, "source", src, "error", err)
				failed++
				continue
			}
			if info.IsDir() {
				continue
			}

			dest, err := tree.DestPath(pkgID, artifact.KindEventLog, team, filepath.Base(src))
			if err != nil {
				slog.Error("failed to prepare destination", "package", pkgID, "source", src, "error", err)
				failed++
				continue
			}
			if _, err := os.Stat(dest); err == nil {
				// Another task in this package/team matched a log with
				// the same basename. Last writer wins.
				slog.Warn("overwriting previously collected event log", "package", pkgID, "source", src, "path", dest)
			}
			if err := copyFile(src, dest); err != nil {
				slog.Error("failed to copy event log", "package", pkgID, "source", src, "error", err)
				failed++
				continue
			}

			artifacts = append(artifacts, artifact.Artifact{
				Path:    dest,
				Package: pkgID,
				Kind:    artifact.KindEventLog,
				Team:    team,
			})
			slog.Info("collected event log", "package", pkgID, "team", team, "path", dest)
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
